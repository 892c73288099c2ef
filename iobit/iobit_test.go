package iobit_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dracogo/dracogo/iobit"
)

func TestByteWriterReaderRoundTrip(t *testing.T) {
	w := iobit.NewByteWriter(0)
	w.WriteU8(0xAB)
	w.WriteU16(0x1234)
	w.WriteU24(0x010203)
	w.WriteU32(0xDEADBEEF)
	w.WriteU64(0x0102030405060708)
	w.WriteBytes([]byte{1, 2, 3})

	r := iobit.NewByteReader(w.Bytes())
	u8, err := r.ReadU8()
	require.NoError(t, err)
	require.Equal(t, uint8(0xAB), u8)

	u16, err := r.ReadU16()
	require.NoError(t, err)
	require.Equal(t, uint16(0x1234), u16)

	u24, err := r.ReadU24()
	require.NoError(t, err)
	require.Equal(t, uint32(0x010203), u24)

	u32, err := r.ReadU32()
	require.NoError(t, err)
	require.Equal(t, uint32(0xDEADBEEF), u32)

	u64, err := r.ReadU64()
	require.NoError(t, err)
	require.Equal(t, uint64(0x0102030405060708), u64)

	raw, err := r.ReadBytes(3)
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3}, raw)

	require.Equal(t, 0, r.Remaining())
	_, err = r.ReadU8()
	require.ErrorIs(t, err, iobit.ErrShortRead)
}

func TestLEB128RoundTrip(t *testing.T) {
	values := []uint64{0, 1, 127, 128, 300, 16384, 1 << 40, ^uint64(0)}
	for _, v := range values {
		w := iobit.NewByteWriter(0)
		w.WriteLEB128(v)
		r := iobit.NewByteReader(w.Bytes())
		got, err := r.ReadLEB128()
		require.NoError(t, err)
		require.Equal(t, v, got)
		require.Equal(t, w.Len(), r.Pos())
	}
}

func TestBitReaderWriterRoundTrip(t *testing.T) {
	w := iobit.NewByteWriter(0)
	bw := iobit.NewBitWriter(w)
	bits := []uint8{1, 0, 1, 1, 0, 0, 1, 0, 1, 1}
	for _, b := range bits {
		bw.WriteBit(b)
	}
	bw.Release()

	r := iobit.NewByteReader(w.Bytes())
	br := iobit.NewBitReader(r)
	for i, want := range bits {
		got, err := br.ReadBit()
		require.NoError(t, err, "bit %d", i)
		require.Equal(t, want, got, "bit %d", i)
	}
}

func TestBitReaderReleasePreservesByteAlignment(t *testing.T) {
	w := iobit.NewByteWriter(0)
	w.WriteU8(0xFF)
	w.WriteU8(0x00)
	r := iobit.NewByteReader(w.Bytes())
	br := iobit.NewBitReader(r)
	_, err := br.ReadBits(3)
	require.NoError(t, err)
	br.Release()
	next, err := r.ReadU8()
	require.NoError(t, err)
	require.Equal(t, uint8(0x00), next)
}

func TestReverseByteReader(t *testing.T) {
	w := iobit.NewByteWriter(0)
	w.WriteBytes([]byte{1, 2, 3, 4, 5})
	r := iobit.NewByteReader(w.Bytes())
	rr, err := r.SpawnReverseReaderAt(5)
	require.NoError(t, err)
	for _, want := range []byte{5, 4, 3, 2, 1} {
		got, err := rr.NextByte()
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
	_, err = rr.NextByte()
	require.ErrorIs(t, err, iobit.ErrShortRead)
}

func TestReverseByteReaderMultiByteInvertsForwardWrite(t *testing.T) {
	w := iobit.NewByteWriter(0)
	w.WriteU16(0x1234)
	w.WriteU24(0x0A0B0C)
	w.WriteU32(0xAABBCCDD)

	r := iobit.NewByteReader(w.Bytes())
	rr, err := r.SpawnReverseReaderAt(w.Len())
	require.NoError(t, err)

	u32, err := rr.ReadU32Back()
	require.NoError(t, err)
	require.Equal(t, uint32(0xAABBCCDD), u32)

	u24, err := rr.ReadU24Back()
	require.NoError(t, err)
	require.Equal(t, uint32(0x0A0B0C), u24)

	u16, err := rr.ReadU16Back()
	require.NoError(t, err)
	require.Equal(t, uint32(0x1234), u16)

	require.Equal(t, 0, rr.Remaining())
}
