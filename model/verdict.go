package model

import "math/big"

// Verdict is the outcome of one filter evaluation. Decision is the only
// machine-readable output of the stdin surface; the block number fields feed
// diagnostics and the http surface and stay empty when the evaluation failed.
type Verdict struct {
	Decision       bool     `json:"decision"`
	BlockNumber    *big.Int `json:"block_number,omitempty"`
	BlockNumberHex string   `json:"block_number_hex,omitempty"`
}
