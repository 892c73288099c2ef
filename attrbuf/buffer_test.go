package attrbuf_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dracogo/dracogo/attrbuf"
)

func TestBufferPushGetRoundTrip(t *testing.T) {
	b := attrbuf.New(attrbuf.F32Kind, 3)
	idx, err := b.Push([]float64{1.5, -2, 3})
	require.NoError(t, err)
	require.Equal(t, 0, idx)
	require.Equal(t, 1, b.Len())
	got := b.Get(idx)
	require.InDeltaSlice(t, []float64{1.5, -2, 3}, got, 1e-6)
}

func TestBufferIntegerClampAndRoundTrip(t *testing.T) {
	b := attrbuf.New(attrbuf.U8Kind, 1)
	_, err := b.Push([]float64{300}) // clamps to 255
	require.NoError(t, err)
	require.Equal(t, []float64{255}, b.Get(0))

	_, err = b.Push([]float64{3.6}) // rounds to 4
	require.NoError(t, err)
	require.Equal(t, []float64{4}, b.Get(1))
}

func TestBufferPermute(t *testing.T) {
	b := attrbuf.New(attrbuf.I32Kind, 1)
	for _, v := range []float64{10, 20, 30} {
		_, err := b.Push([]float64{v})
		require.NoError(t, err)
	}
	// perm[i] = new position of old element i
	require.NoError(t, b.Permute([]int{2, 0, 1}))
	require.Equal(t, []float64{20}, b.Get(0))
	require.Equal(t, []float64{30}, b.Get(1))
	require.Equal(t, []float64{10}, b.Get(2))
}

func TestBufferRemoveShiftsLeft(t *testing.T) {
	b := attrbuf.New(attrbuf.I16Kind, 1)
	for _, v := range []float64{1, 2, 3} {
		_, err := b.Push([]float64{v})
		require.NoError(t, err)
	}
	require.NoError(t, b.Remove(1))
	require.Equal(t, 2, b.Len())
	require.Equal(t, []float64{1}, b.Get(0))
	require.Equal(t, []float64{3}, b.Get(1))
}

func TestBufferGrowsCapacity(t *testing.T) {
	b := attrbuf.New(attrbuf.F64Kind, 1)
	for i := 0; i < 100; i++ {
		_, err := b.Push([]float64{float64(i)})
		require.NoError(t, err)
	}
	require.Equal(t, 100, b.Len())
	for i := 0; i < 100; i++ {
		require.Equal(t, []float64{float64(i)}, b.Get(i))
	}
}

func TestMaybeInitFinish(t *testing.T) {
	mi := attrbuf.NewMaybeInit(attrbuf.F32Kind, 2, 3)
	require.NoError(t, mi.Set(0, []float64{1, 1}))
	require.NoError(t, mi.Set(2, []float64{3, 3}))
	_, err := mi.Finish()
	require.ErrorIs(t, err, attrbuf.ErrIncomplete)

	require.NoError(t, mi.Set(1, []float64{2, 2}))
	buf, err := mi.Finish()
	require.NoError(t, err)
	require.Equal(t, 3, buf.Len())
	require.Equal(t, []float64{2, 2}, buf.Get(1))
}
