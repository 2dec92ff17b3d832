package bignum

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTrimMag(t *testing.T) {
	require.Equal(t, []limb{}, trimMag([]limb{0, 0, 0}))
	require.Equal(t, []limb{1, 2}, trimMag([]limb{1, 2, 0}))
	require.Equal(t, []limb{1, 2, 3}, trimMag([]limb{1, 2, 3}))
}

func TestCmpMag(t *testing.T) {
	require.Equal(t, 0, cmpMag([]limb{}, []limb{}))
	require.Equal(t, 0, cmpMag([]limb{1, 2}, []limb{1, 2}))
	require.Equal(t, -1, cmpMag([]limb{1}, []limb{1, 0, 1}))
	require.Equal(t, 1, cmpMag([]limb{1, 0, 1}, []limb{1}))
	require.Equal(t, -1, cmpMag([]limb{1, 2}, []limb{1, 3}))
	require.Equal(t, 1, cmpMag([]limb{1, 3}, []limb{1, 2}))
}

func TestAddMag(t *testing.T) {
	testcases := []struct {
		u, v []limb
		want []limb
	}{
		{[]limb{1}, []limb{2}, []limb{3}},
		{[]limb{0xFFFFFFFF}, []limb{1}, []limb{0, 1}}, // new high limb
		{[]limb{0xFFFFFFFF, 0xFFFFFFFF}, []limb{1}, []limb{0, 0, 1}},
		{[]limb{}, []limb{}, []limb{}},
		{[]limb{5}, []limb{}, []limb{5}},
	}

	for _, tc := range testcases {
		require.Equal(t, tc.want, addMag(tc.u, tc.v))
		require.Equal(t, tc.want, addMag(tc.v, tc.u))
	}
}

func TestSubMag(t *testing.T) {
	testcases := []struct {
		u, v []limb
		want []limb
	}{
		{[]limb{3}, []limb{2}, []limb{1}},
		{[]limb{0, 1}, []limb{1}, []limb{0xFFFFFFFF}}, // borrow across limb
		{[]limb{0, 0, 1}, []limb{1}, []limb{0xFFFFFFFF, 0xFFFFFFFF}},
		{[]limb{1, 1}, []limb{1}, []limb{0, 1}},
		{[]limb{5, 1}, []limb{1, 1}, []limb{4}}, // result shorter than either operand after trim
		{[]limb{5}, []limb{5}, []limb{}},
	}

	for _, tc := range testcases {
		require.Equal(t, tc.want, subMag(tc.u, tc.v))
	}
}

func TestSubMagPanicsOnNegativeResult(t *testing.T) {
	require.Panics(t, func() { subMag([]limb{1}, []limb{2}) })
}
