package filter

import "math/big"

// BlockParityPolicy propagates matches mined in even-numbered blocks. It is
// the one policy this filter ships.
type BlockParityPolicy struct{}

func (bpp *BlockParityPolicy) Name() string {
	return "BlockParity"
}

// Allow reports whether the block number clears the policy, true iff even.
func (bpp *BlockParityPolicy) Allow(blockNumber *big.Int) bool {
	return blockNumber.Bit(0) == 0
}
