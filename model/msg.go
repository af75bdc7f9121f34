package model

// Message is the envelope every http response uses. Code carries the
// application status, the transport status stays 200.
type Message struct {
	Code int64  `json:"code"`
	Msg  string `json:"msg,omitempty"`
	Data any    `json:"data,omitempty"`
}
