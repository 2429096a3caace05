package common

import (
	"encoding/binary"
	"math"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/require"
)

func TestUnitWidth(t *testing.T) {
	require.Equal(t, 1, UnitWidth[byte]())
	require.Equal(t, 2, UnitWidth[uint16]())
	require.Equal(t, 4, UnitWidth[rune]())
	require.Equal(t, 4, UnitWidth[uint32]())
}

func TestUnitBytes(t *testing.T) {
	require.Nil(t, UnitBytes[uint16](nil))
	require.Equal(t, []byte("abc"), UnitBytes([]byte("abc")))
	require.Len(t, UnitBytes([]uint16{1, 2, 3}), 6)
	require.Len(t, UnitBytes([]rune{1, 2}), 8)
}

func TestStringBytesAliasing(t *testing.T) {
	require.Equal(t, "", StringFromBytes(nil))
	require.Equal(t, "xyz", StringFromBytes([]byte("xyz")))
	require.Nil(t, BytesFromString(""))
	require.Equal(t, []byte("xyz"), BytesFromString("xyz"))
}

func TestVarUintRoundTrip(t *testing.T) {
	condition := func(x uint64) bool {
		b := WriteVarUintTo(nil, x)
		got, n := ReadVarUint(b)
		return got == x && n == len(b)
	}
	require.NoError(t, quick.Check(condition, &quick.Config{}))
}

func TestReadVarUintTruncated(t *testing.T) {
	_, n := ReadVarUint([]byte{0x80, 0x80})
	require.Zero(t, n)
	_, n = ReadVarUint(nil)
	require.Zero(t, n)
	overflow := []byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x01}
	_, n = ReadVarUint(overflow)
	require.Zero(t, n)
}

func TestReadVarUintOverflow(t *testing.T) {
	top := []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x01}
	x, n := ReadVarUint(top)
	require.Equal(t, uint64(math.MaxUint64), x)
	require.Equal(t, 10, n)

	for _, last := range []byte{0x02, 0x7F} {
		over := append(top[:9:9], last)
		x, n = ReadVarUint(over)
		require.Zero(t, x)
		require.Zero(t, n, "tenth byte %#x", last)

		ux, un := binary.Uvarint(over)
		require.Zero(t, ux)
		require.Negative(t, un)
	}
}

func TestUnitsLERoundTrip(t *testing.T) {
	src := []uint16{0x0102, 0xFFFF, 0}
	b := AppendUnitsLE(nil, src)
	require.Equal(t, []byte{0x02, 0x01, 0xFF, 0xFF, 0, 0}, b)
	dst := make([]uint16, 3)
	ReadUnitsLE(dst, b)
	require.Equal(t, src, dst)

	wide := []rune{'a', 0x1F600}
	dstw := make([]rune, 2)
	ReadUnitsLE(dstw, AppendUnitsLE(nil, wide))
	require.Equal(t, wide, dstw)

	narrow := []byte("hi")
	require.Equal(t, narrow, AppendUnitsLE(nil, narrow))
}
