// Package png handles a PNG file as an ordered stream of chunks.
package png

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/pnghide/pnghide/internal/chunk"
)

// Signature is the 8-byte sequence that opens every PNG file.
var Signature = [8]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

// ErrInvalidSignature is returned when a buffer does not start with Signature.
var ErrInvalidSignature = errors.New("invalid PNG signature")

// ErrChunkNotFound is returned when no chunk with the requested type exists.
var ErrChunkNotFound = errors.New("chunk not found")

// Image is a PNG file, decoded down to chunk granularity.
// Chunk payloads are left opaque.
type Image struct {
	chunks []*chunk.Chunk
}

// FromChunks builds an image from an ordered chunk list.
func FromChunks(chunks []*chunk.Chunk) *Image {
	return &Image{chunks: chunks}
}

// Unmarshal decodes an image, checking the signature and the CRC of
// every chunk.
func Unmarshal(buf []byte) (*Image, error) {
	if len(buf) < len(Signature) || !bytes.Equal(buf[:len(Signature)], Signature[:]) {
		return nil, ErrInvalidSignature
	}

	p := &Image{}

	for off := len(Signature); off < len(buf); {
		c, err := chunk.Unmarshal(buf[off:])
		if err != nil {
			return nil, fmt.Errorf("chunk at offset %d: %w", off, err)
		}
		p.chunks = append(p.chunks, c)
		off += c.Size()
	}

	return p, nil
}

// Marshal encodes the image.
func (p *Image) Marshal() []byte {
	n := len(Signature)
	for _, c := range p.chunks {
		n += c.Size()
	}

	buf := make([]byte, 0, n)
	buf = append(buf, Signature[:]...)
	for _, c := range p.chunks {
		buf = append(buf, c.Marshal()...)
	}
	return buf
}

// Chunks returns the chunks of the image, in file order.
func (p *Image) Chunks() []*chunk.Chunk {
	return p.chunks
}

// ChunkByType returns the first chunk with the given type code, or nil.
func (p *Image) ChunkByType(typ chunk.Type) *chunk.Chunk {
	for _, c := range p.chunks {
		if c.Type() == typ {
			return c
		}
	}
	return nil
}

// AppendChunk adds a chunk at the end of the image.
func (p *Image) AppendChunk(c *chunk.Chunk) {
	p.chunks = append(p.chunks, c)
}

// RemoveFirstChunk removes and returns the first chunk with the given
// type code.
func (p *Image) RemoveFirstChunk(typ chunk.Type) (*chunk.Chunk, error) {
	for i, c := range p.chunks {
		if c.Type() == typ {
			p.chunks = append(p.chunks[:i], p.chunks[i+1:]...)
			return c, nil
		}
	}
	return nil, ErrChunkNotFound
}
