package blosc_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ygrebnov/cursorseries/codec/blosc"
)

func TestShuffleUnshuffleRoundTrip(t *testing.T) {
	src := []byte{
		0x01, 0x02, 0x03, 0x04,
		0x05, 0x06, 0x07, 0x08,
		0x09, 0x0A, 0x0B, 0x0C,
	}
	shuffled := make([]byte, len(src))
	blosc.Shuffle(shuffled, src, 4)
	require.False(t, bytes.Equal(shuffled, src))

	back := make([]byte, len(src))
	blosc.Unshuffle(back, shuffled, 4)
	require.Equal(t, src, back)
}

func TestShuffleTypesizeOneIsIdentity(t *testing.T) {
	src := []byte{1, 2, 3, 4, 5}
	dst := make([]byte, len(src))
	blosc.Shuffle(dst, src, 1)
	require.Equal(t, src, dst)
}

func testCodecRoundTrip(t *testing.T, bc blosc.BlockCodec) {
	t.Helper()
	payload := make([]byte, 800)
	for i := range payload {
		payload[i] = byte(i % 17)
	}

	block, err := bc.CompressCtx(9, true, 8, payload, 1)
	require.NoError(t, err)

	nbytes, cbytes, _, err := blosc.Sizes(block)
	require.NoError(t, err)
	require.Equal(t, len(payload), nbytes)
	require.Equal(t, len(block), cbytes)

	out, err := bc.DecompressCtx(block, 1)
	require.NoError(t, err)
	require.Equal(t, payload, out)
}

func TestZstdRoundTrip(t *testing.T) {
	bc, err := blosc.NewZstd()
	require.NoError(t, err)
	require.Equal(t, "zstd", bc.Name())
	testCodecRoundTrip(t, bc)
}

func TestLZ4RoundTrip(t *testing.T) {
	bc := blosc.NewLZ4()
	require.Equal(t, "lz4", bc.Name())
	testCodecRoundTrip(t, bc)
}

// A handful of bytes gives lz4's compressor nothing to exploit; it reports
// this via CompressBlock's documented (0, nil) rather than an error, and
// the codec must fall back to storing the block verbatim instead of
// failing the frame.
func TestLZ4StoresIncompressibleInput(t *testing.T) {
	bc := blosc.NewLZ4()
	payload := []byte{0x2A}

	block, err := bc.CompressCtx(9, true, 1, payload, 1)
	require.NoError(t, err)

	out, err := bc.DecompressCtx(block, 1)
	require.NoError(t, err)
	require.Equal(t, payload, out)
}

func TestRoundTripWithoutShuffle(t *testing.T) {
	bc, err := blosc.NewZstd()
	require.NoError(t, err)

	payload := bytes.Repeat([]byte{0xAB}, 256)
	block, err := bc.CompressCtx(9, false, 1, payload, 1)
	require.NoError(t, err)

	out, err := bc.DecompressCtx(block, 1)
	require.NoError(t, err)
	require.Equal(t, payload, out)
}
