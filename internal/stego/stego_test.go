package stego

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pnghide/pnghide/internal/chunk"
	"github.com/pnghide/pnghide/internal/png"
)

func writeTestImage(t *testing.T, path string) {
	first, err := chunk.ParseType("FrSt")
	require.NoError(t, err)
	last, err := chunk.ParseType("LASt")
	require.NoError(t, err)

	p := png.FromChunks([]*chunk.Chunk{
		chunk.New(first, []byte("I am the first chunk")),
		chunk.New(last, []byte("I am the last chunk")),
	})

	err = os.WriteFile(path, p.Marshal(), 0o644)
	require.NoError(t, err)
}

func TestEmbedExtract(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.png")
	writeTestImage(t, path)

	err := Embed(path, "RuSt", "This is where your secret message will be!", "")
	require.NoError(t, err)

	msg, err := Extract(path, "RuSt")
	require.NoError(t, err)
	require.Equal(t, "This is where your secret message will be!", msg)
}

func TestEmbedToOutputFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.png")
	out := filepath.Join(dir, "out.png")
	writeTestImage(t, in)

	err := Embed(in, "RuSt", "secret", out)
	require.NoError(t, err)

	// the input file is left untouched
	_, err = Extract(in, "RuSt")
	require.ErrorIs(t, err, png.ErrChunkNotFound)

	msg, err := Extract(out, "RuSt")
	require.NoError(t, err)
	require.Equal(t, "secret", msg)
}

func TestEmbedInvalidType(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.png")
	writeTestImage(t, path)

	var typeErr chunk.InvalidTypeError

	// reserved bit not valid
	err := Embed(path, "rust", "secret", "")
	require.ErrorAs(t, err, &typeErr)

	err = Embed(path, "Ru1t", "secret", "")
	require.ErrorAs(t, err, &typeErr)
}

func TestRemove(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.png")
	writeTestImage(t, path)

	err := Embed(path, "RuSt", "secret", "")
	require.NoError(t, err)

	err = Remove(path, "RuSt")
	require.NoError(t, err)

	_, err = Extract(path, "RuSt")
	require.ErrorIs(t, err, png.ErrChunkNotFound)

	err = Remove(path, "RuSt")
	require.ErrorIs(t, err, png.ErrChunkNotFound)
}

func TestList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.png")
	writeTestImage(t, path)

	chunks, err := List(path)
	require.NoError(t, err)
	require.Len(t, chunks, 2)
	require.Equal(t, "FrSt", chunks[0].Type().String())
	require.Equal(t, "LASt", chunks[1].Type().String())
}

func TestMissingFile(t *testing.T) {
	_, err := Extract(filepath.Join(t.TempDir(), "none.png"), "RuSt")
	require.Error(t, err)
}

func TestNotAPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.png")
	err := os.WriteFile(path, []byte("not a png"), 0o644)
	require.NoError(t, err)

	_, err = List(path)
	require.ErrorIs(t, err, png.ErrInvalidSignature)
}
