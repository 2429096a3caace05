package compactwire

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"hash/crc32"

	"github.com/klauspost/compress/zstd"

	"github.com/rawbytedev/fixedstr"
	"github.com/rawbytedev/fixedstr/internal/common"
)

// Decode decodes one value from the front of b and returns it with the
// number of bytes consumed.
func Decode[U fixedstr.Unit](b []byte) (fixedstr.Sized[U], int, error) {
	var zero fixedstr.Sized[U]
	if len(b) == 0 {
		return zero, 0, ErrTruncated
	}
	w := common.UnitWidth[U]()
	if int(b[0]) != w {
		return zero, 0, fmt.Errorf("%w: got %d, want %d", ErrWidthMismatch, b[0], w)
	}
	n, k := common.ReadVarUint(b[1:])
	if k == 0 {
		return zero, 0, ErrTruncated
	}
	rest := b[1+k:]
	if n > uint64(len(rest)/w) {
		return zero, 0, fmt.Errorf("%w: %d units declared, %d bytes left", ErrTruncated, n, len(rest))
	}
	units := make([]U, n)
	common.ReadUnitsLE(units, rest)
	return fixedstr.FromContainer[U](int(n), units), 1 + k + int(n)*w, nil
}

// DecodeFrame parses a data frame and returns its values and flags.
func (c *Codec[U]) DecodeFrame(data []byte) ([]fixedstr.Sized[U], byte, error) {
	if len(data) < headerLen+crcLen {
		return nil, 0, ErrTruncated
	}
	rdr := bytes.NewReader(data)
	t, err := readPreamble(rdr)
	if err != nil {
		return nil, 0, err
	}
	if t != TypeData {
		return nil, 0, ErrNotDataFrame
	}

	var length uint32
	binary.Read(rdr, binary.LittleEndian, &length)
	flags, _ := rdr.ReadByte()
	if int(length) != len(data) {
		return nil, 0, fmt.Errorf("%w: header says %d, got %d", ErrLengthMismatch, length, len(data))
	}

	payloadEnd := len(data) - crcLen
	want := binary.LittleEndian.Uint32(data[payloadEnd:])
	if crc32.ChecksumIEEE(data[2:payloadEnd]) != want {
		return nil, 0, ErrCRCMismatch
	}

	var offsets []uint32
	if flags&FlagHasOffsetTable != 0 {
		var cnt uint16
		if err := binary.Read(rdr, binary.LittleEndian, &cnt); err != nil {
			return nil, 0, ErrTruncated
		}
		offsets = make([]uint32, cnt)
		if err := binary.Read(rdr, binary.LittleEndian, offsets); err != nil {
			return nil, 0, ErrTruncated
		}
	}

	payloadStart := len(data) - rdr.Len()
	if payloadStart > payloadEnd {
		return nil, 0, ErrTruncated
	}
	payload := data[payloadStart:payloadEnd]
	if flags&FlagCompressed != 0 {
		dec, err := c.decoder()
		if err != nil {
			return nil, 0, err
		}
		if payload, err = dec.DecodeAll(payload, nil); err != nil {
			return nil, 0, fmt.Errorf("compactwire: decompress: %w", err)
		}
	}

	if offsets != nil {
		values := make([]fixedstr.Sized[U], len(offsets))
		for i, off := range offsets {
			if int(off) > len(payload) {
				return nil, 0, fmt.Errorf("%w: %d", ErrBadOffset, off)
			}
			v, _, err := Decode[U](payload[off:])
			if err != nil {
				return nil, 0, err
			}
			values[i] = v
		}
		return values, flags, nil
	}

	var values []fixedstr.Sized[U]
	for len(payload) > 0 {
		v, n, err := Decode[U](payload)
		if err != nil {
			return nil, 0, err
		}
		values = append(values, v)
		payload = payload[n:]
	}
	return values, flags, nil
}

func (c *Codec[U]) decoder() (*zstd.Decoder, error) {
	if c.dec == nil {
		limit := c.MaxDecodedSize
		if limit == 0 {
			limit = DefaultMaxDecodedSize
		}
		dec, err := zstd.NewReader(nil, zstd.WithDecoderMaxMemory(limit))
		if err != nil {
			return nil, fmt.Errorf("compactwire: zstd decoder: %w", err)
		}
		c.dec = dec
	}
	return c.dec, nil
}
