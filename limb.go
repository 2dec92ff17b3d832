package bignum

import "math/bits"

// A limb is a single 32-bit unsigned digit of a magnitude, little-endian
// indexed. A halfLimb is the 16-bit half used only inside the division
// kernel (div.go).
type limb = uint32
type halfLimb = uint16

// addWithCarry returns s = a+b+c (mod 2^32) and the carry-out bit, detected
// by unsigned wraparound exactly as original_source/bigint.c's algorithm_a:
// the two additions a+c and (a+c)+b each contribute at most one carry bit,
// and their sum is therefore at most 1.
func addWithCarry(a, b, c limb) (s, carryOut limb) {
	sumA := a + c
	carryA := limb(0)
	if sumA < a {
		carryA = 1
	}

	sumB := sumA + b
	carryB := limb(0)
	if sumB < sumA {
		carryB = 1
	}

	carry := carryA + carryB
	if carry > 1 {
		panic("bignum: carry invariant violated")
	}

	return sumB, carry
}

// subWithBorrow returns d = a-b-c (mod 2^32) and the borrow-out bit,
// detected by unsigned wraparound exactly as bigint.c's algorithm_s.
func subWithBorrow(a, b, c limb) (d, borrowOut limb) {
	diffA := a - c
	borrowA := limb(0)
	if diffA > a {
		borrowA = 1
	}

	diffB := diffA - b
	borrowB := limb(0)
	if diffB > diffA {
		borrowB = 1
	}

	borrow := borrowA + borrowB
	if borrow > 1 {
		panic("bignum: borrow invariant violated")
	}

	return diffB, borrow
}

// mulWide returns the 64-bit product x*y as (hi, lo). A plain uint64
// multiply already produces the full width on 32-bit operands, so unlike
// the teacher's u128.mul64Raw (which needs bits.Mul64 because its operands
// are themselves 64 bits) no math/bits call is necessary here.
func mulWide(x, y limb) (hi, lo limb) {
	p := uint64(x) * uint64(y)
	return limb(p >> 32), limb(p)
}

// divNarrow divides the 32-bit dividend (uHi<<16)|uLo by v, returning the
// quotient and remainder. The caller must ensure v > 0 and that the
// quotient fits in 16 bits; violating either is a contract bug and panics,
// mirroring bigint.c's div_32_by_16 assertions.
func divNarrow(uHi, uLo, v halfLimb) (q, r halfLimb) {
	if v == 0 {
		panic("bignum: division by zero in divNarrow")
	}

	u := uint32(uHi)<<16 | uint32(uLo)
	qq := u / uint32(v)
	if qq > 0xFFFF {
		panic("bignum: divNarrow quotient overflow")
	}

	return halfLimb(qq), halfLimb(u % uint32(v))
}

// nlz16 returns the number of leading zero bits in the 16-bit value x,
// which must be non-zero.
func nlz16(x halfLimb) int {
	if x == 0 {
		panic("bignum: nlz16 of zero")
	}

	return bits.LeadingZeros16(x)
}
