package filter

import (
	"math/big"
	"testing"

	"github.com/magiconair/properties/assert"
)

func TestBlockParityPolicy(t *testing.T) {
	bpp := BlockParityPolicy{}
	assert.Equal(t, bpp.Name(), "BlockParity")

	tests := []struct {
		in   string
		want bool
	}{
		{in: "0", want: true},
		{in: "1", want: false},
		{in: "2", want: true},
		{in: "100", want: true},
		{in: "101", want: false},
		{in: "18446744073709551616", want: true},
		{in: "18446744073709551617", want: false},
	}
	for _, tt := range tests {
		n, ok := new(big.Int).SetString(tt.in, 10)
		if !ok {
			t.Fatalf("parse %q as decimal", tt.in)
		}
		assert.Equal(t, bpp.Allow(n), tt.want, tt.in)
	}
}
