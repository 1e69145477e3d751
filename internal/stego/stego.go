// Package stego embeds, extracts and removes text messages carried by
// dedicated chunks of a PNG file.
package stego

import (
	"fmt"
	"os"

	"github.com/pnghide/pnghide/internal/chunk"
	"github.com/pnghide/pnghide/internal/png"
)

func loadImage(path string) (*png.Image, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	p, err := png.Unmarshal(buf)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Embed stores message inside a chunk with the given type code, appended
// to the image at inPath. The result is written to outPath, or back to
// inPath when outPath is empty. The type code must be fully valid, since
// it ends up in the output file.
func Embed(inPath string, typeStr string, message string, outPath string) error {
	typ, err := chunk.ParseType(typeStr)
	if err != nil {
		return err
	}
	if !typ.IsValid() {
		return chunk.InvalidTypeError{Value: typeStr, Reason: "reserved bit is not valid"}
	}

	p, err := loadImage(inPath)
	if err != nil {
		return err
	}

	p.AppendChunk(chunk.New(typ, []byte(message)))

	if outPath == "" {
		outPath = inPath
	}
	return os.WriteFile(outPath, p.Marshal(), 0o644)
}

// Extract returns the message stored in the first chunk with the given
// type code.
func Extract(path string, typeStr string) (string, error) {
	typ, err := chunk.ParseType(typeStr)
	if err != nil {
		return "", err
	}

	p, err := loadImage(path)
	if err != nil {
		return "", err
	}

	c := p.ChunkByType(typ)
	if c == nil {
		return "", fmt.Errorf("%s: %w", typeStr, png.ErrChunkNotFound)
	}
	return c.DataString()
}

// Remove deletes the first chunk with the given type code and rewrites
// the file in place.
func Remove(path string, typeStr string) error {
	typ, err := chunk.ParseType(typeStr)
	if err != nil {
		return err
	}

	p, err := loadImage(path)
	if err != nil {
		return err
	}

	if _, err = p.RemoveFirstChunk(typ); err != nil {
		return fmt.Errorf("%s: %w", typeStr, err)
	}
	return os.WriteFile(path, p.Marshal(), 0o644)
}

// List returns all the chunks of the image at path, in file order.
func List(path string) ([]*chunk.Chunk, error) {
	p, err := loadImage(path)
	if err != nil {
		return nil, err
	}
	return p.Chunks(), nil
}
