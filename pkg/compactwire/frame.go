// Package compactwire encodes sized strings into a compact binary form and
// batches them into CRC-checked data frames.
//
// Value: [width:1][varint N][N units, little-endian]
//
// Data frame:
//
//	magic "FS" | type | uint32 total length | flags
//	[uint16 count | uint32 offset * count]   when FlagHasOffsetTable
//	payload                                  zstd when FlagCompressed
//	uint32 CRC32-IEEE of everything after the magic
//
// Offsets index the uncompressed payload.
package compactwire

import (
	"bytes"
	"errors"
)

const (
	magic0 byte = 'F'
	magic1 byte = 'S'
)

// Frame types.
const (
	TypeData byte = 0x01
)

// Frame flags.
const (
	FlagHasOffsetTable byte = 1 << 0
	FlagCompressed     byte = 1 << 1
)

// DefaultMaxDecodedSize bounds the decompressed payload of a frame when
// Codec.MaxDecodedSize is zero.
const DefaultMaxDecodedSize uint64 = 64 << 20

const (
	preambleLen = 3
	headerLen   = preambleLen + 4 + 1
	crcLen      = 4
)

var (
	ErrNotDataFrame   = errors.New("not a data frame")
	ErrLengthMismatch = errors.New("length mismatch")
	ErrCRCMismatch    = errors.New("crc mismatch")
	ErrWidthMismatch  = errors.New("unit width mismatch")
	ErrTruncated      = errors.New("truncated input")
	ErrTooManyValues  = errors.New("too many values for offset table")
	ErrBadOffset      = errors.New("offset out of payload")
)

func writePreamble(buf *bytes.Buffer, t byte) {
	buf.WriteByte(magic0)
	buf.WriteByte(magic1)
	buf.WriteByte(t)
}

func readPreamble(r *bytes.Reader) (byte, error) {
	var p [preambleLen]byte
	if _, err := r.Read(p[:]); err != nil {
		return 0, ErrTruncated
	}
	if p[0] != magic0 || p[1] != magic1 {
		return 0, ErrNotDataFrame
	}
	return p[2], nil
}
