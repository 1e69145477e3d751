package png

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pnghide/pnghide/internal/chunk"
)

func mustType(t *testing.T, s string) chunk.Type {
	typ, err := chunk.ParseType(s)
	require.NoError(t, err)
	return typ
}

func testImage(t *testing.T) *Image {
	return FromChunks([]*chunk.Chunk{
		chunk.New(mustType(t, "FrSt"), []byte("I am the first chunk")),
		chunk.New(mustType(t, "miDl"), []byte("I am another chunk")),
		chunk.New(mustType(t, "LASt"), []byte("I am the last chunk")),
	})
}

func TestMarshalUnmarshal(t *testing.T) {
	p1 := testImage(t)
	enc := p1.Marshal()
	require.Equal(t, Signature[:], enc[:len(Signature)])

	p2, err := Unmarshal(enc)
	require.NoError(t, err)
	require.Equal(t, p1, p2)
	require.Equal(t, enc, p2.Marshal())
}

func TestUnmarshalInvalidSignature(t *testing.T) {
	_, err := Unmarshal(Signature[:len(Signature)-1])
	require.ErrorIs(t, err, ErrInvalidSignature)

	enc := testImage(t).Marshal()
	enc[0] = 0x13
	_, err = Unmarshal(enc)
	require.ErrorIs(t, err, ErrInvalidSignature)
}

func TestUnmarshalCorruptChunk(t *testing.T) {
	enc := testImage(t).Marshal()
	enc[len(Signature)+8] ^= 0x01 // payload of the first chunk

	_, err := Unmarshal(enc)
	var crcErr chunk.CRCMismatchError
	require.ErrorAs(t, err, &crcErr)
}

func TestUnmarshalTruncatedChunk(t *testing.T) {
	enc := testImage(t).Marshal()

	_, err := Unmarshal(enc[:len(enc)-5])
	require.Error(t, err)
}

func TestChunkByType(t *testing.T) {
	p := testImage(t)

	c := p.ChunkByType(mustType(t, "miDl"))
	require.NotNil(t, c)
	require.Equal(t, "miDl", c.Type().String())

	require.Nil(t, p.ChunkByType(mustType(t, "noNe")))
}

func TestAppendChunk(t *testing.T) {
	p := testImage(t)
	p.AppendChunk(chunk.New(mustType(t, "RuSt"), []byte("hidden")))
	require.Len(t, p.Chunks(), 4)

	p2, err := Unmarshal(p.Marshal())
	require.NoError(t, err)

	c := p2.ChunkByType(mustType(t, "RuSt"))
	require.NotNil(t, c)

	msg, err := c.DataString()
	require.NoError(t, err)
	require.Equal(t, "hidden", msg)
}

func TestRemoveFirstChunk(t *testing.T) {
	p := testImage(t)

	c, err := p.RemoveFirstChunk(mustType(t, "miDl"))
	require.NoError(t, err)
	require.Equal(t, "miDl", c.Type().String())
	require.Len(t, p.Chunks(), 2)
	require.Nil(t, p.ChunkByType(mustType(t, "miDl")))

	_, err = p.RemoveFirstChunk(mustType(t, "miDl"))
	require.ErrorIs(t, err, ErrChunkNotFound)
}
