package compactwire

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"math"

	"github.com/klauspost/compress/zstd"

	"github.com/rawbytedev/fixedstr"
	"github.com/rawbytedev/fixedstr/internal/common"
)

// Append appends the encoding of s to dst.
func Append[U fixedstr.Unit](dst []byte, s fixedstr.Sized[U]) []byte {
	dst = append(dst, byte(common.UnitWidth[U]()))
	dst = common.WriteVarUintTo(dst, uint64(s.Len()))
	return common.AppendUnitsLE(dst, s.View().Units())
}

// Codec encodes and decodes data frames of sized strings with unit type U.
// A Codec reuses its buffers and is not safe for concurrent use. The zero
// value is ready to use.
type Codec[U fixedstr.Unit] struct {
	// MaxDecodedSize bounds the decompressed payload of a frame, in bytes.
	// Zero means DefaultMaxDecodedSize. It is read when the first
	// compressed frame is decoded.
	MaxDecodedSize uint64

	buf     *bytes.Buffer
	payload []byte
	enc     *zstd.Encoder
	dec     *zstd.Decoder
}

// NewCodec returns a Codec for unit type U.
func NewCodec[U fixedstr.Unit]() *Codec[U] {
	return &Codec[U]{buf: &bytes.Buffer{}}
}

// EncodeFrame serializes values into one data frame. The returned slice is
// owned by the caller.
func (c *Codec[U]) EncodeFrame(values []fixedstr.Sized[U], flags byte) ([]byte, error) {
	hasOffsets := flags&FlagHasOffsetTable != 0
	if hasOffsets && len(values) > math.MaxUint16 {
		return nil, fmt.Errorf("%w: %d", ErrTooManyValues, len(values))
	}

	c.payload = c.payload[:0]
	offsets := make([]uint32, 0, len(values))
	for _, v := range values {
		offsets = append(offsets, uint32(len(c.payload)))
		c.payload = Append(c.payload, v)
	}

	body := c.payload
	if flags&FlagCompressed != 0 {
		enc, err := c.encoder()
		if err != nil {
			return nil, err
		}
		body = enc.EncodeAll(c.payload, nil)
	}

	if c.buf == nil {
		c.buf = &bytes.Buffer{}
	}
	c.buf.Reset()
	writePreamble(c.buf, TypeData)
	// length placeholder
	binary.Write(c.buf, binary.LittleEndian, uint32(0))
	c.buf.WriteByte(flags)
	if hasOffsets {
		binary.Write(c.buf, binary.LittleEndian, uint16(len(offsets)))
		for _, off := range offsets {
			binary.Write(c.buf, binary.LittleEndian, off)
		}
	}
	c.buf.Write(body)

	out := make([]byte, c.buf.Len(), c.buf.Len()+crcLen)
	copy(out, c.buf.Bytes())
	binary.LittleEndian.PutUint32(out[preambleLen:], uint32(len(out)+crcLen))
	crc := crc32.ChecksumIEEE(out[2:])
	return binary.LittleEndian.AppendUint32(out, crc), nil
}

func (c *Codec[U]) encoder() (*zstd.Encoder, error) {
	if c.enc == nil {
		enc, err := zstd.NewWriter(nil)
		if err != nil {
			return nil, fmt.Errorf("compactwire: zstd encoder: %w", err)
		}
		c.enc = enc
	}
	return c.enc, nil
}

// Close releases the compression state.
func (c *Codec[U]) Close() error {
	var err error
	if c.enc != nil {
		err = c.enc.Close()
		c.enc = nil
	}
	if c.dec != nil {
		c.dec.Close()
		c.dec = nil
	}
	return err
}
