package bignum

// div.go implements Knuth's Algorithm D (TAOCP 4.3.1) on 16-bit half-limbs,
// translated directly from original_source/bigint.c's algorithm_d,
// algorithm_d_wrapper, and short_division. Operating on half-limbs keeps
// every intermediate division within the 32/16 hardware primitive
// (divNarrow in limb.go); see spec.md §4.5 and §9 for why.

// packHalfLimbs splits each 32-bit limb into two 16-bit half-limbs,
// little-endian (low half first), matching bigint.c's u32_to_u16.
func packHalfLimbs(m []limb) []halfLimb {
	h := make([]halfLimb, len(m)*2)
	for i, v := range m {
		h[2*i] = halfLimb(v)
		h[2*i+1] = halfLimb(v >> 16)
	}
	return h
}

// unpackHalfLimbs recombines half-limbs into 32-bit limbs, matching
// bigint.c's u16_to_u32. len(h) must be even.
func unpackHalfLimbs(h []halfLimb) []limb {
	if len(h)%2 != 0 {
		panic("bignum: unpackHalfLimbs given an odd-length half-limb slice")
	}

	m := make([]limb, len(h)/2)
	for i := range m {
		m[i] = limb(h[2*i]) | limb(h[2*i+1])<<16
	}
	return m
}

// shiftLeftHalf shifts u left by m bits in place (0<m<16), carrying the
// bits that fall out of one slot into the next. A non-zero final carry is
// a contract violation: the caller must have allocated an extra slot.
func shiftLeftHalf(u []halfLimb, m int) {
	if m <= 0 || m >= 16 {
		panic("bignum: shiftLeftHalf shift amount out of range")
	}

	var k halfLimb
	for i := 0; i < len(u); i++ {
		t := u[i] >> (16 - m)
		u[i] = u[i]<<m | k
		k = t
	}

	if k != 0 {
		panic("bignum: leftover carry in shiftLeftHalf")
	}
}

// shiftRightHalf shifts u right by m bits in place (0<m<16).
func shiftRightHalf(u []halfLimb, m int) {
	if m <= 0 || m >= 16 {
		panic("bignum: shiftRightHalf shift amount out of range")
	}

	var k halfLimb
	for i := len(u) - 1; i >= 0; i-- {
		t := u[i] << (16 - m)
		u[i] = u[i]>>m | k
		k = t
	}

	if k != 0 {
		panic("bignum: leftover carry in shiftRightHalf")
	}
}

// shortDivisionHalf divides the half-limb magnitude u by the scalar v,
// right to left, a single sweep of the 32/16 primitive. This is the n==1
// special case of Algorithm D.
func shortDivisionHalf(u []halfLimb, v halfLimb) (q []halfLimb, r halfLimb) {
	if v == 0 {
		panic("bignum: shortDivisionHalf division by zero")
	}

	q = make([]halfLimb, len(u))
	var k halfLimb
	for i := len(u) - 1; i >= 0; i-- {
		q[i], k = divNarrow(k, u[i], v)
	}

	return q, k
}

// algorithmD divides the (m+n)-half-limb dividend u (with one extra slot
// reserved at u[m+n] for normalization) by the n-half-limb divisor v,
// writing the (m+1)-half-limb quotient into q and leaving the n-half-limb
// remainder in u[0:n]. v[n-1] must be non-zero.
func algorithmD(m, n int, u, v, q []halfLimb) {
	if n <= 0 {
		panic("bignum: algorithmD divisor must be non-empty")
	}
	if v[n-1] == 0 {
		panic("bignum: algorithmD divisor has a leading zero half-limb")
	}
	if len(u) != m+n+1 || len(v) != n || len(q) != m+1 {
		panic("bignum: algorithmD buffer sizes inconsistent")
	}

	if n == 1 {
		qq, r := shortDivisionHalf(u[:m+1], v[0])
		copy(q, qq)
		u[0] = r
		return
	}

	// Normalize: left-shift both u and v so v's top half-limb has its high
	// bit set, which keeps the trial-quotient estimate within 1 of exact.
	u[m+n] = 0
	shift := nlz16(v[n-1])
	if shift > 0 {
		shiftLeftHalf(v, shift)
		shiftLeftHalf(u[:m+n+1], shift)
	}

	for j := m; j >= 0; j-- {
		// Calculate qhat, the trial quotient half-limb, and correct it.
		t := uint32(u[j+n])<<16 | uint32(u[j+n-1])
		qhat := t / uint32(v[n-1])
		rhat := t % uint32(v[n-1])

		for {
			needsCorrection := qhat > 0xFFFF
			if !needsCorrection {
				lhs := qhat * uint32(v[n-2])
				rhs := rhat<<16 | uint32(u[j+n-2])
				needsCorrection = lhs > rhs
			}

			if !needsCorrection {
				break
			}

			qhat--
			rhat += uint32(v[n-1])
			if rhat > 0xFFFF {
				// rhat no longer fits in a half-limb: per Knuth, qhat is
				// now guaranteed within range and further correction is
				// unnecessary. This is the O(1)-on-average exit.
				break
			}
		}

		// Multiply and subtract: u[j..j+n] -= qhat*v, tracking a combined
		// borrow/high-part carry k across the n+1 half-limbs (v[n] treated
		// as zero).
		var k halfLimb
		for i := 0; i <= n; i++ {
			var vi halfLimb
			if i < n {
				vi = v[i]
			}

			p := qhat * uint32(vi)
			k2 := halfLimb(p >> 16)

			d := u[j+i] - halfLimb(p)
			if d > u[j+i] {
				k2++
			}

			next := d - k
			if next > d {
				k2++
			}

			u[j+i] = next
			k = k2
		}

		q[j] = halfLimb(qhat)
		if k != 0 {
			// qhat was one too large: add v back and step q[j] down.
			q[j]--

			var carry uint32
			for i := 0; i < n; i++ {
				s := uint32(u[j+i]) + uint32(v[i]) + carry
				u[j+i] = halfLimb(s)
				carry = s >> 16
			}
			u[j+n] += halfLimb(carry)
		}
	}

	if shift > 0 {
		shiftRightHalf(u[:n], shift)
	}
}

// divMag divides the magnitude u by the magnitude v (len(u) >= len(v) > 0,
// v normalized with no trailing zero limb), returning normalized quotient
// and remainder magnitudes; a zero quotient or remainder is nil. This is algorithm_d_wrapper translated: the
// half-limb view is formed, Algorithm D is run (reducing n by one when v's
// top half-limb is zero, per spec.md §4.5), and the result is packed back.
func divMag(u, v []limb) (q, r []limb) {
	n := len(v)
	if n == 0 || v[n-1] == 0 {
		panic("bignum: divMag divisor must be non-empty and normalized")
	}

	m := len(u) - n
	if m < 0 {
		panic("bignum: divMag requires len(u) >= len(v)")
	}

	uh := make([]halfLimb, (m+n)*2+1)
	copy(uh, packHalfLimbs(u))
	vh := packHalfLimbs(v)

	vZero := vh[n*2-1] == 0

	mm, nn := m*2, n*2
	if vZero {
		mm++
		nn--
	}

	qh := make([]halfLimb, (m+1)*2)
	algorithmD(mm, nn, uh, vh[:nn], qh[:mm+1])

	if vZero {
		// The true remainder occupies n*2-1 half-limbs; the slot above it is
		// not part of Algorithm D's remainder (the short-division path leaves
		// dividend data there), so it must be zeroed explicitly.
		uh[n*2-1] = 0
	} else {
		qh[(m+1)*2-1] = 0
	}

	q = trimMag(unpackHalfLimbs(qh))
	r = trimMag(unpackHalfLimbs(uh[:n*2]))
	if len(q) == 0 {
		q = nil
	}
	if len(r) == 0 {
		r = nil
	}
	return q, r
}
