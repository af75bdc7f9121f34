package utils

import (
	"fmt"
	"math/big"
	"strings"
	"unicode"
)

// NormalizeHex strips whitespace and one optional 0x/0X prefix from a
// hexadecimal string.
func NormalizeHex(s string) string {
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}
	return s
}

// ParseHexBig converts a normalized hexadecimal string to a non-negative
// integer. Block numbers are not bounded to 64 bits.
func ParseHexBig(s string) (*big.Int, error) {
	if s == "" {
		return nil, fmt.Errorf("hex string is empty")
	}
	if s[0] == '+' || s[0] == '-' {
		return nil, fmt.Errorf("hex string %q has a sign character", s)
	}
	n, ok := new(big.Int).SetString(s, 16)
	if !ok {
		return nil, fmt.Errorf("%q is not a hex string", s)
	}
	return n, nil
}
