package model

// FilterInput is the document a monitor hands to the filter: one matched
// transaction wrapped in monitor_match plus script-style arguments.
type FilterInput struct {
	MonitorMatch *MonitorMatch `json:"monitor_match"`
	Args         []string      `json:"args"`
}

// MonitorMatch carries the chain-specific payload of a matched transaction.
// Only EVM matches are evaluable.
type MonitorMatch struct {
	EVM *EVMMatch `json:"EVM"`
}

type EVMMatch struct {
	Transaction EVMTransaction `json:"transaction"`
}

// EVMTransaction holds the transaction fields of an EVM match the filter
// reads. Values keep their wire encoding, hex strings included.
type EVMTransaction struct {
	BlockNumber string `json:"blockNumber"`
	Hash        string `json:"hash,omitempty"`
	From        string `json:"from,omitempty"`
	To          string `json:"to,omitempty"`
	Value       string `json:"value,omitempty"`
}
