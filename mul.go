package bignum

// mul.go implements Algorithm M (spec.md §4.4), schoolbook multiplication
// of an m-limb magnitude by an n-limb magnitude into an (m+n)-limb result.
// Translated directly from original_source/bigint.c's algorithm_m; the
// two-carry-sum-per-step idiom mirrors the teacher's u128.MulToU256
// comment ("total carry = carry(hi+p1) + carry(hi+p1+p3)").

// mulMag returns u*v as a normalized magnitude.
func mulMag(u, v []limb) []limb {
	m, n := len(u), len(v)
	if m == 0 || n == 0 {
		return nil
	}

	w := make([]limb, m+n)

	for j := 0; j < n; j++ {
		if v[j] == 0 {
			w[j+m] = 0
			continue
		}

		var k limb
		for i := 0; i < m; i++ {
			hiProd, loProd := mulWide(u[i], v[j])

			loProd2 := loProd + k
			carryA := limb(0)
			if loProd2 < k {
				carryA = 1
			}

			sum := w[i+j] + loProd2
			carryB := limb(0)
			if sum < loProd2 {
				carryB = 1
			}
			w[i+j] = sum

			k = hiProd + carryA + carryB
			if k < hiProd {
				panic("bignum: multiply carry overflow")
			}
		}

		w[j+m] = k
	}

	return trimMag(w)
}

// mulAddScalar computes u*x+y in place, where u is a limb magnitude
// (little-endian, may grow by at most one limb), x is a scalar limb
// multiplier, and y is a scalar addend. It is Algorithm M specialized to a
// one-limb multiplier with an additive constant, used by decimal.go's
// string-to-magnitude conversion. Grounded on bigint.c's multiply_add.
func mulAddScalar(u []limb, x, y limb) []limb {
	k := y
	for i := range u {
		hiProd, loProd := mulWide(u[i], x)

		loProd += k
		carry := limb(0)
		if loProd < k {
			carry = 1
		}

		k = hiProd + carry
		u[i] = loProd
	}

	if k != 0 {
		u = append(u, k)
	}

	return u
}
