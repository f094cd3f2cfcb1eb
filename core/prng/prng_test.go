package prng

import (
	"hash/fnv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashString(t *testing.T) {
	tests := []struct {
		in   string
		want uint32
	}{
		{in: "", want: 2166136261},
		{in: "a", want: 3826002220},
		{in: "2024-06-01", want: 1279870326},
		{in: "héllo", want: 4058363231},
		{in: "日本", want: 1610399396},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, HashString(tt.in))
		})
	}
}

func TestHashStringMatchesFNV1aForASCII(t *testing.T) {
	for _, s := range []string{"", "a", "2024-06-01", "accept_throttle_17", "42_draft_reconnect_2"} {
		h := fnv.New32a()
		_, _ = h.Write([]byte(s))
		assert.Equal(t, h.Sum32(), HashString(s), s)
	}
}

func TestRandSequence(t *testing.T) {
	tests := []struct {
		seed uint32
		want []float64
	}{
		{seed: 0, want: []float64{0.26642920868471265, 0.0003297457005828619, 0.2232720274478197}},
		{seed: 42, want: []float64{0.6011037519201636, 0.44829055899754167, 0.8524657934904099}},
		{seed: 1279870326, want: []float64{0.5608991244807839, 0.42184274294413626, 0.5652511338703334}},
	}

	for _, tt := range tests {
		r := New(tt.seed)
		for i, want := range tt.want {
			assert.Equal(t, want, r.Float64(), "seed %d draw %d", tt.seed, i)
		}
	}
}

func TestRandUint32(t *testing.T) {
	r := New(0)
	assert.Equal(t, []uint32{1144304738, 1416247, 958946056}, []uint32{r.Uint32(), r.Uint32(), r.Uint32()})

	var zero Rand
	assert.Equal(t, uint32(1144304738), zero.Uint32())
}

func TestFreshGeneratorsRepeat(t *testing.T) {
	a, b := New(987654321), New(987654321)
	for i := 0; i < 1000; i++ {
		va := a.Float64()
		require.Equal(t, va, b.Float64())
		require.GreaterOrEqual(t, va, 0.0)
		require.Less(t, va, 1.0)
	}
}

func TestIntn(t *testing.T) {
	r := New(7)
	got := []int{r.Intn(10), r.Intn(10), r.Intn(10), r.Intn(10), r.Intn(10)}
	assert.Equal(t, []int{0, 0, 9, 6, 5}, got)

	assert.Panics(t, func() { New(1).Intn(0) })
}
