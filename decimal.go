package bignum

// decimal.go implements magnitude<->decimal-string conversion (spec.md
// §4.7), translated from original_source/bigint.c's from_string/to_string/
// multiply_add.

// pow10Limb[k] is 10^k for k in [0,9]; pow10Limb[9] is the largest power of
// ten that still fits in a 32-bit limb (10^9 < 2^32).
var pow10Limb = [10]limb{
	1, 10, 100, 1000, 10000, 100000, 1000000, 10000000, 100000000, 1000000000,
}

// fromDecimalMagnitude converts a non-empty run of ASCII decimal digits
// into a normalized magnitude. The caller is responsible for validating
// that digits is non-empty and consists only of '0'-'9'.
//
// Digits are consumed in chunks of up to 9 at a time (10^9 < 2^32), each
// folded in via mulAddScalar(u, 10^k, chunk) where k is the number of
// digits actually in that chunk — a full chunk uses 10^9, and a
// terminating k-digit chunk (1<=k<=8) uses 10^k directly. See spec.md §9's
// open question and DESIGN.md for why this is computed from the chunk's
// digit count rather than via the original's pow10s[i % 9] table.
func fromDecimalMagnitude(digits string) []limb {
	var u []limb
	var chunk limb
	var count int

	for i := 0; i < len(digits); i++ {
		chunk = chunk*10 + limb(digits[i]-'0')
		count++

		if count == 9 || i == len(digits)-1 {
			u = mulAddScalar(u, pow10Limb[count], chunk)
			chunk, count = 0, 0
		}
	}

	return trimMag(u)
}

// toDecimalString renders a normalized magnitude as canonical decimal text
// (no leading zeros; the empty magnitude renders as "0"). It works on a
// half-limb scratch copy, repeatedly extracting the next four least
// significant decimal digits via short division by 10^4, and fills a
// buffer back-to-front so no explicit reversal step is needed (the same
// idiom as the teacher's Decimal.fillBuffer in codec.go).
func toDecimalString(m []limb) string {
	if len(m) == 0 {
		return "0"
	}

	v := packHalfLimbs(m)
	n := len(v)
	for n > 0 && v[n-1] == 0 {
		n--
	}

	buf := make([]byte, len(m)*10)
	pos := len(buf)

	for n != 0 {
		q, k := shortDivisionHalf(v[:n], 10000)
		copy(v, q)

		for n > 0 && v[n-1] == 0 {
			n--
		}

		i := 0
		for (n != 0 && i < 4) || k != 0 {
			pos--
			buf[pos] = '0' + byte(k%10)
			k /= 10
			i++
		}
	}

	return string(buf[pos:])
}
