package common

import (
	"encoding/binary"
	"unsafe"
)

// Unit is the set of fixed-width code unit representations.
type Unit interface {
	~uint8 | ~uint16 | ~int32 | ~uint32
}

// UnitWidth returns the byte width of U.
func UnitWidth[U Unit]() int {
	var u U
	return int(unsafe.Sizeof(u))
}

// UnitBytes aliases units as host-order bytes without copying.
// The caller must not write through the returned slice.
func UnitBytes[U Unit](units []U) []byte {
	if len(units) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&units[0])), len(units)*UnitWidth[U]())
}

// StringFromBytes converts b to a string sharing its memory.
// b must never be modified afterwards.
func StringFromBytes(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(&b[0], len(b))
}

// WriteVarUintTo appends varint-encoded x to dst using a small stack scratch.
func WriteVarUintTo(dst []byte, x uint64) []byte {
	var scratch [binary.MaxVarintLen64]byte
	i := 0
	for x >= 0x80 {
		scratch[i] = byte(x) | 0x80
		x >>= 7
		i++
	}
	scratch[i] = byte(x)
	i++
	return append(dst, scratch[:i]...)
}

// ReadVarUint decodes a varint from b returning value and bytes consumed.
// A zero count means b was truncated or the varint overflows 64 bits.
func ReadVarUint(b []byte) (uint64, int) {
	var x uint64
	var s uint
	for i, c := range b {
		// the tenth byte holds only the top bit
		if i == binary.MaxVarintLen64-1 && c > 1 {
			return 0, 0
		}
		x |= uint64(c&0x7F) << s
		if c&0x80 == 0 {
			return x, i + 1
		}
		s += 7
	}
	return 0, 0
}

// AppendUnitsLE appends units to dst in little-endian order.
func AppendUnitsLE[U Unit](dst []byte, units []U) []byte {
	switch UnitWidth[U]() {
	case 1:
		for _, u := range units {
			dst = append(dst, byte(u))
		}
	case 2:
		for _, u := range units {
			dst = binary.LittleEndian.AppendUint16(dst, uint16(u))
		}
	default:
		for _, u := range units {
			dst = binary.LittleEndian.AppendUint32(dst, uint32(u))
		}
	}
	return dst
}

// ReadUnitsLE decodes len(dst) little-endian units from b into dst.
// b must hold at least len(dst)*UnitWidth[U]() bytes.
func ReadUnitsLE[U Unit](dst []U, b []byte) {
	switch UnitWidth[U]() {
	case 1:
		for i := range dst {
			dst[i] = U(b[i])
		}
	case 2:
		for i := range dst {
			dst[i] = U(binary.LittleEndian.Uint16(b[2*i:]))
		}
	default:
		for i := range dst {
			dst[i] = U(binary.LittleEndian.Uint32(b[4*i:]))
		}
	}
}

// BytesFromString aliases the bytes of s without copying.
// The returned slice must never be modified.
func BytesFromString(s string) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}
