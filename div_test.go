package bignum

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPackUnpackHalfLimbs(t *testing.T) {
	m := []limb{0x12345678, 0xFFFF0001}
	h := packHalfLimbs(m)
	require.Equal(t, []halfLimb{0x5678, 0x1234, 0x0001, 0xFFFF}, h)
	require.Equal(t, m, unpackHalfLimbs(h))
}

func TestShiftLeftRightHalf(t *testing.T) {
	u := []halfLimb{0x0001, 0x0000}
	shiftLeftHalf(u, 4)
	require.Equal(t, []halfLimb{0x0010, 0x0000}, u)

	shiftRightHalf(u, 4)
	require.Equal(t, []halfLimb{0x0001, 0x0000}, u)
}

func TestShortDivisionHalf(t *testing.T) {
	// 100 / 7 = 14 r 2, as a single half-limb magnitude.
	q, r := shortDivisionHalf([]halfLimb{100}, 7)
	require.Equal(t, []halfLimb{14}, q)
	require.Equal(t, halfLimb(2), r)
}

func TestDivMag(t *testing.T) {
	testcases := []struct {
		name    string
		u, v    []limb
		wantQ   []limb
		wantR   []limb
	}{
		{
			name:  "short division fast path",
			u:     []limb{100},
			v:     []limb{7},
			wantQ: []limb{14},
			wantR: []limb{2},
		},
		{
			// 2^128 / 2^32 = 2^96 r 0; divisor's top limb (value 1) has a
			// zero high half-limb, exercising the vZero reduction branch.
			name:  "power of two, vZero branch",
			u:     []limb{0, 0, 0, 0, 1},
			v:     []limb{0, 1},
			wantQ: []limb{0, 0, 0, 1},
			wantR: nil,
		},
		{
			name:  "equal operands",
			u:     []limb{0xFFFFFFFF, 0xFFFFFFFF},
			v:     []limb{0xFFFFFFFF, 0xFFFFFFFF},
			wantQ: []limb{1},
			wantR: nil,
		},
		{
			name:  "multi-limb dividend, one-limb divisor",
			u:     []limb{1849262357, 1186908593, 669260594},
			v:     []limb{987654321},
			wantQ: []limb{1905003366, 2910383019},
			wantR: []limb{156249999},
		},
		{
			name:  "two-limb divisor, vZero branch",
			u:     []limb{12345, 0, 64},
			v:     []limb{1, 8},
			wantQ: []limb{4294967295, 7},
			wantR: []limb{12346},
		},
		{
			name:  "two-limb divisor, remainder zero",
			u:     []limb{4294967295, 4294967295},
			v:     []limb{1, 1},
			wantQ: []limb{4294967295},
			wantR: nil,
		},
		{
			name:  "power of ten minus one, many limbs",
			u:     []limb{1073741823, 1182068202, 2670501072, 12},
			v:     []limb{3},
			wantQ: []limb{357913941, 394022734, 890167024, 4},
			wantR: nil,
		},
		{
			// divisor's top limb has its high half-limb set (>= 0x8000), so
			// the vZero reduction does not apply and Algorithm D runs its
			// general multi-half-limb trial-quotient-and-correct loop. These
			// inputs do not reach the add-back step.
			name:  "general path, non-trivial divisor, no vZero reduction",
			u:     []limb{4009829189, 1737075661, 4009829189, 1737075661, 74565},
			v:     []limb{2309737967, 4294840884},
			wantQ: []limb{856201382, 2573340313, 74567},
			wantR: []limb{2598089291, 729415362},
		},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			q, r := divMag(tc.u, tc.v)
			require.Equal(t, tc.wantQ, q)
			require.Equal(t, tc.wantR, r)
		})
	}
}

func TestAlgorithmDPanicsOnZeroDivisor(t *testing.T) {
	require.Panics(t, func() {
		algorithmD(0, 1, []halfLimb{1, 0}, []halfLimb{0}, []halfLimb{0, 0})
	})
}
