package bignum

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromDecimalMagnitude(t *testing.T) {
	testcases := []struct {
		digits string
		want   string
	}{
		{"0", "0"},
		{"1", "1"},
		{"123", "123"},
		{"1000000000", "1000000000"},
		{"999999999", "999999999"},
		{"1234567890", "1234567890"},
		{"123456789012345678901234567890", "123456789012345678901234567890"},
	}

	for _, tc := range testcases {
		t.Run(tc.digits, func(t *testing.T) {
			mag := fromDecimalMagnitude(tc.digits)
			require.Equal(t, tc.want, toDecimalString(mag))
		})
	}
}

func TestToDecimalStringRoundTrip(t *testing.T) {
	testcases := []string{
		"0",
		"4294967295",      // 2^32-1, one full limb
		"4294967296",      // 2^32, two limbs
		"281474976710656",  // 2^48
		"18446744073709551615", // 2^64-1
		"18446744073709551616", // 2^64
		"340282366920938463463374607431768211456", // 2^128
	}

	for _, tc := range testcases {
		t.Run(tc, func(t *testing.T) {
			mag := fromDecimalMagnitude(tc)
			require.Equal(t, tc, toDecimalString(mag))
		})
	}
}
