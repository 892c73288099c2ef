package entropy

import (
	"testing"

	"github.com/dracogo/dracogo/iobit"
	"github.com/stretchr/testify/require"
)

// buildShuffledBits mirrors the bijection-shuffle construction used for the
// rABS testable property in spec.md §8: a biased but exhaustive bit stream
// derived from an arithmetic progression over a prime-ish stride, so every
// run length is exercised at least once.
func buildShuffledBits(length int) []uint8 {
	bits := make([]uint8, length)
	x := 0
	for i := 0; i < length; i++ {
		x = (x + 7) % 16
		if x < 3 {
			bits[i] = 1
		} else {
			bits[i] = 0
		}
	}
	return bits
}

func TestRabsCoder_RoundTrip(t *testing.T) {
	const length = 1 << 12
	const freq0 = 3 << (DefaultPrecision - 4) // zero-probability: 3/16 of the table

	bits := buildShuffledBits(length)

	enc := NewRabsEncoder(freq0, DefaultPrecision)
	for i := length - 1; i >= 0; i-- {
		enc.Write(bits[i])
	}
	payload, err := enc.Flush()
	require.NoError(t, err)

	reader := iobit.NewByteReader(payload)
	dec, err := NewRabsDecoder(reader, len(payload), freq0, DefaultPrecision)
	require.NoError(t, err)

	for i := 0; i < length; i++ {
		v, err := dec.Read()
		require.NoError(t, err)
		require.Equal(t, bits[i], v, "bit %d", i)
	}
}

func TestRabsCoder_AllZeros(t *testing.T) {
	const freq0 = 1 << (DefaultPrecision - 1)
	enc := NewRabsEncoder(freq0, DefaultPrecision)
	for i := 0; i < 64; i++ {
		enc.Write(0)
	}
	payload, err := enc.Flush()
	require.NoError(t, err)

	reader := iobit.NewByteReader(payload)
	dec, err := NewRabsDecoder(reader, len(payload), freq0, DefaultPrecision)
	require.NoError(t, err)
	for i := 0; i < 64; i++ {
		v, err := dec.Read()
		require.NoError(t, err)
		require.Equal(t, uint8(0), v)
	}
}
