package bignum

// magnitude.go implements the unsigned-magnitude building blocks of spec.md
// §4.2–§4.3: Algorithm A (addition) and Algorithm S (subtraction), plus
// magnitude comparison and normalization. A magnitude is little-endian
// []uint32 with no trailing zero limb (the empty slice represents zero).
// Translated from original_source/bigint.c's algorithm_a/algorithm_s/cmp,
// with carry/borrow detection in the style of the teacher's u128.addRaw/
// u128.subRaw (wraparound comparison via bits.Add64/bits.Sub64, here
// reimplemented at limb width in limb.go since math/bits has no 32-bit
// carry-chain primitive).

// trimMag drops trailing zero limbs so the result satisfies the
// normalized-magnitude invariant (spec.md §3).
func trimMag(m []limb) []limb {
	n := len(m)
	for n > 0 && m[n-1] == 0 {
		n--
	}
	return m[:n:n]
}

// cmpMag compares two normalized magnitudes: shorter is smaller (both are
// normalized, so equal length is required before comparing digit by
// digit), then most-significant limb downward.
func cmpMag(u, v []limb) int {
	if len(u) != len(v) {
		if len(u) < len(v) {
			return -1
		}
		return 1
	}

	for i := len(u) - 1; i >= 0; i-- {
		if u[i] != v[i] {
			if u[i] < v[i] {
				return -1
			}
			return 1
		}
	}

	return 0
}

// addMag returns u+v as a normalized magnitude (Algorithm A). The shorter
// operand is implicitly padded with zero limbs to match the longer one.
func addMag(u, v []limb) []limb {
	if len(u) < len(v) {
		u, v = v, u
	}

	n := len(u)
	w := make([]limb, n+1)

	var carry limb
	for i := 0; i < n; i++ {
		var vi limb
		if i < len(v) {
			vi = v[i]
		}
		w[i], carry = addWithCarry(u[i], vi, carry)
	}
	w[n] = carry

	return trimMag(w)
}

// subMag returns u-v as a normalized magnitude (Algorithm S). Precondition:
// u >= v (cmpMag(u, v) >= 0); violating it is a contract bug and panics,
// matching bigint.c's algorithm_s assertion.
func subMag(u, v []limb) []limb {
	if cmpMag(u, v) < 0 {
		panic("bignum: subMag requires u >= v")
	}

	n := len(u)
	w := make([]limb, n)

	var borrow limb
	for i := 0; i < n; i++ {
		var vi limb
		if i < len(v) {
			vi = v[i]
		}
		w[i], borrow = subWithBorrow(u[i], vi, borrow)
	}

	if borrow != 0 {
		panic("bignum: residual borrow in subMag")
	}

	return trimMag(w)
}
