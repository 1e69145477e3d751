package chunk

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"unicode/utf8"
)

const (
	lengthSize = 4
	typeSize   = 4
	crcSize    = 4

	// minimum encoded size, with a zero-length payload.
	minSize = lengthSize + typeSize + crcSize
)

// Chunk is a length-prefixed, type-tagged record protected by a CRC.
//
// Encoded layout, all integers big-endian:
//
//	4 bytes  payload length (N)
//	4 bytes  type code
//	N bytes  payload
//	4 bytes  CRC-32/ISO-HDLC over type code and payload
type Chunk struct {
	length uint32
	typ    Type
	data   []byte
	crc    uint32
}

// New builds a chunk around the given type code and payload,
// computing the CRC over both.
func New(typ Type, data []byte) *Chunk {
	h := crc32.NewIEEE()
	h.Write(typ[:])
	h.Write(data)

	return &Chunk{
		length: uint32(len(data)),
		typ:    typ,
		data:   append([]byte(nil), data...),
		crc:    h.Sum32(),
	}
}

// Unmarshal decodes a chunk from the start of buf, verifying its CRC.
// Bytes beyond the end of the record are ignored; Size reports where
// the record ends.
func Unmarshal(buf []byte) (*Chunk, error) {
	if len(buf) < minSize {
		return nil, ErrTooShort
	}

	length := binary.BigEndian.Uint32(buf[:lengthSize])
	if uint64(length) > uint64(len(buf)-minSize) {
		return nil, TruncatedError{
			Declared:  length,
			Available: len(buf) - minSize,
		}
	}

	crcOff := lengthSize + typeSize + int(length)
	content := buf[lengthSize:crcOff]
	stored := binary.BigEndian.Uint32(buf[crcOff : crcOff+crcSize])

	computed := crc32.ChecksumIEEE(content)
	if computed != stored {
		return nil, CRCMismatchError{
			Expected: computed,
			Actual:   stored,
		}
	}

	var typ Type
	copy(typ[:], content[:typeSize])

	return &Chunk{
		length: length,
		typ:    typ,
		data:   append([]byte(nil), content[typeSize:]...),
		crc:    stored,
	}, nil
}

// Size returns the encoded size of the chunk.
func (c *Chunk) Size() int {
	return minSize + len(c.data)
}

// Marshal encodes the chunk. The output is the exact inverse of Unmarshal.
func (c *Chunk) Marshal() []byte {
	buf := make([]byte, c.Size())
	binary.BigEndian.PutUint32(buf, c.length)
	copy(buf[lengthSize:], c.typ[:])
	copy(buf[lengthSize+typeSize:], c.data)
	binary.BigEndian.PutUint32(buf[lengthSize+typeSize+len(c.data):], c.crc)
	return buf
}

// Length returns the payload length.
func (c *Chunk) Length() uint32 {
	return c.length
}

// Type returns the type code.
func (c *Chunk) Type() Type {
	return c.typ
}

// Data returns the payload. The returned slice must not be modified.
func (c *Chunk) Data() []byte {
	return c.data
}

// CRC returns the checksum stored in the chunk.
func (c *Chunk) CRC() uint32 {
	return c.crc
}

// DataString returns the payload decoded as UTF-8 text.
func (c *Chunk) DataString() (string, error) {
	if !utf8.Valid(c.data) {
		return "", ErrInvalidUTF8
	}
	return string(c.data), nil
}

// String implements fmt.Stringer.
func (c *Chunk) String() string {
	return fmt.Sprintf("%s (%d bytes, crc 0x%08x)", c.typ, c.length, c.crc)
}
