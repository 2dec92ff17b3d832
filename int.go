package bignum

// int.go implements the signed-value façade of spec.md §4.8: Int pairs a
// sign with a normalized magnitude and dispatches each signed operation to
// the unsigned magnitude kernels in magnitude.go/mul.go/div.go, fixing up
// signs per the dispatch table. Translated from
// original_source/bigint.c's bigint_add/bigint_sub/bigint_mul/bigint_div/
// bigint_rem/bigint_neg/bigint_cmp; the source's one-level recursive swap
// (sub(x,y) calling sub(y,x) and flipping sign when x<y) is inlined here as
// diffSigned, an early-out swap, per spec.md §9's design note.

// Int is an immutable arbitrary-precision signed integer. The zero value
// is the integer 0.
type Int struct {
	neg bool
	mag []limb
}

// newInt normalizes mag and constructs an Int, forcing the sign to
// non-negative when the trimmed magnitude is empty (spec.md §3: zero is
// uniquely represented).
func newInt(neg bool, mag []limb) Int {
	mag = trimMag(mag)
	if len(mag) == 0 {
		neg = false
		mag = nil
	}
	return Int{neg: neg, mag: mag}
}

// FromLimbs constructs an Int from a little-endian limb sequence and an
// explicit sign, copying the input and trimming any trailing zero limbs.
func FromLimbs(limbs []uint32, neg bool) Int {
	mag := make([]limb, len(limbs))
	copy(mag, limbs)
	return newInt(neg, mag)
}

// FromUint64 constructs a non-negative Int from v.
func FromUint64(v uint64) Int {
	if v == 0 {
		return Int{}
	}
	return newInt(false, []limb{limb(v), limb(v >> 32)})
}

// FromInt64 constructs an Int from v.
func FromInt64(v int64) Int {
	neg := v < 0
	u := uint64(v)
	if neg {
		u = -u
	}

	r := FromUint64(u)
	r.neg = neg && !r.IsZero()
	return r
}

// FromDecimal parses text matching -?[0-9]+ into an Int. An empty string
// is ErrEmptyString; a lone "-" or any non-digit is ErrInvalidFormat.
func FromDecimal(text string) (Int, error) {
	if text == "" {
		return Int{}, ErrEmptyString
	}

	neg := false
	digits := text
	if digits[0] == '-' {
		neg = true
		digits = digits[1:]
	}

	if len(digits) == 0 {
		return Int{}, ErrInvalidFormat
	}

	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return Int{}, ErrInvalidFormat
		}
	}

	return newInt(neg, fromDecimalMagnitude(digits)), nil
}

// MustFromDecimal is like FromDecimal but panics on error.
func MustFromDecimal(text string) Int {
	v, err := FromDecimal(text)
	if err != nil {
		panic(err)
	}
	return v
}

// String returns the canonical decimal representation: no leading zeros,
// "0" has no sign, negatives are prefixed with "-".
func (x Int) String() string {
	s := toDecimalString(x.mag)
	if x.neg {
		return "-" + s
	}
	return s
}

// MaxDecimalLength returns an upper bound (>= the actual length) on the
// decimal string produced by String, for callers sizing buffers.
func (x Int) MaxDecimalLength() int {
	if x.IsZero() {
		return 1
	}

	n := 10 * len(x.mag)
	if x.neg {
		n++
	}
	return n
}

// IsZero reports whether x is the integer 0.
func (x Int) IsZero() bool {
	return len(x.mag) == 0
}

// diffSigned returns p-q as a signed Int given two magnitudes, used for the
// "opposite signs" branches of Add/Sub: the result magnitude is |p-q| and
// its sign follows whichever of p, q is larger.
func diffSigned(p, q []limb) Int {
	switch cmpMag(p, q) {
	case 0:
		return Int{}
	case 1:
		return newInt(false, subMag(p, q))
	default:
		return newInt(true, subMag(q, p))
	}
}

// Add returns x+y.
func (x Int) Add(y Int) Int {
	switch {
	case x.neg && y.neg:
		return newInt(true, addMag(x.mag, y.mag))
	case x.neg && !y.neg:
		return diffSigned(y.mag, x.mag)
	case !x.neg && y.neg:
		return diffSigned(x.mag, y.mag)
	default:
		return newInt(false, addMag(x.mag, y.mag))
	}
}

// Sub returns x-y.
func (x Int) Sub(y Int) Int {
	switch {
	case x.neg && y.neg:
		return diffSigned(y.mag, x.mag)
	case x.neg && !y.neg:
		return newInt(true, addMag(x.mag, y.mag))
	case !x.neg && y.neg:
		return newInt(false, addMag(x.mag, y.mag))
	default:
		return diffSigned(x.mag, y.mag)
	}
}

// Mul returns x*y.
func (x Int) Mul(y Int) Int {
	return newInt(x.neg != y.neg, mulMag(x.mag, y.mag))
}

// Div returns x/y, truncated toward zero. It panics with ErrDivideByZero
// if y is zero — per spec.md §6/§7 the core must never be invoked with a
// zero divisor; catching a literal zero divisor is the external
// collaborator's job (cmd/bigcalc).
func (x Int) Div(y Int) Int {
	if y.IsZero() {
		panic(ErrDivideByZero)
	}

	if len(x.mag) < len(y.mag) {
		return Int{}
	}

	q, _ := divMag(x.mag, y.mag)
	return newInt(x.neg != y.neg, q)
}

// Rem returns the remainder of x/y, carrying the sign of x (the dividend).
// For y!=0: x = (x.Div(y)).Mul(y) + x.Rem(y), and |x.Rem(y)| < |y|. It
// panics with ErrDivideByZero if y is zero.
func (x Int) Rem(y Int) Int {
	if y.IsZero() {
		panic(ErrDivideByZero)
	}

	if len(x.mag) < len(y.mag) {
		mag := make([]limb, len(x.mag))
		copy(mag, x.mag)
		return newInt(x.neg, mag)
	}

	_, r := divMag(x.mag, y.mag)
	return newInt(x.neg, r)
}

// Neg returns -x. Negating zero returns zero.
func (x Int) Neg() Int {
	return newInt(!x.neg, x.mag)
}

// Cmp compares x and y, returning -1, 0, or 1.
func (x Int) Cmp(y Int) int {
	if x.neg != y.neg {
		if x.neg {
			return -1
		}
		return 1
	}

	c := cmpMag(x.mag, y.mag)
	if x.neg {
		return -c
	}
	return c
}
