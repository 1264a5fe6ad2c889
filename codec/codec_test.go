package codec_test

import (
	"context"
	"encoding/binary"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ygrebnov/cursorseries/codec"
	"github.com/ygrebnov/cursorseries/codec/blosc"
	"github.com/ygrebnov/cursorseries/metrics"
)

func newWriterReader(t *testing.T, bc blosc.BlockCodec) (*codec.Writer, *codec.Reader) {
	t.Helper()
	return codec.NewWriter(bc, 1), codec.NewReader(bc, 1)
}

func newBlockCodecs(t *testing.T) []blosc.BlockCodec {
	t.Helper()
	zstdBC, err := blosc.NewZstd()
	require.NoError(t, err)
	return []blosc.BlockCodec{zstdBC, blosc.NewLZ4()}
}

func TestEncodeDecodeInt64Array(t *testing.T) {
	for _, bc := range newBlockCodecs(t) {
		w, r := newWriterReader(t, bc)
		values := []int64{10, 20, 30, 25, 25, 40}
		frame, err := w.EncodeInt64Array(values, false)
		require.NoError(t, err)

		got, err := r.DecodeInt64Array(frame)
		require.NoError(t, err)
		require.Equal(t, values, got)
	}
}

func TestEncodeDecodeInt64ArrayDelta(t *testing.T) {
	for _, bc := range newBlockCodecs(t) {
		w, r := newWriterReader(t, bc)
		values := []int64{1000, 1001, 1003, 1002, 999}
		frame, err := w.EncodeInt64Array(values, true)
		require.NoError(t, err)

		got, err := r.DecodeInt64Array(frame)
		require.NoError(t, err)
		require.Equal(t, values, got)
	}
}

// Testable Property 5 names singletons explicitly: a single int64 is too
// short for lz4's compressor to find any redundancy in, which previously
// made CompressBlock's documented (0, nil) "store raw" signal fail the
// whole frame instead of falling back to an uncompressed block.
func TestEncodeDecodeInt64ArraySingleton(t *testing.T) {
	for _, bc := range newBlockCodecs(t) {
		w, r := newWriterReader(t, bc)
		values := []int64{42}
		frame, err := w.EncodeInt64Array(values, false)
		require.NoError(t, err)

		got, err := r.DecodeInt64Array(frame)
		require.NoError(t, err)
		require.Equal(t, values, got)
	}
}

func TestEncodeDecodeFloat64Array(t *testing.T) {
	for _, bc := range newBlockCodecs(t) {
		w, r := newWriterReader(t, bc)
		values := []float64{1.5, -2.25, 0, 3.14159, 100.0}
		frame, err := w.EncodeFloat64Array(values)
		require.NoError(t, err)

		got, err := r.DecodeFloat64Array(frame)
		require.NoError(t, err)
		require.Equal(t, values, got)
	}
}

func TestEncodeDecodeDateTimeArray(t *testing.T) {
	for _, bc := range newBlockCodecs(t) {
		w, r := newWriterReader(t, bc)
		base := time.Date(2026, 7, 31, 0, 0, 0, 0, time.UTC)
		values := []time.Time{
			base,
			base.Add(time.Second),
			base.Add(2 * time.Second),
			base.Add(10 * time.Second),
		}
		frame, err := w.EncodeDateTimeArray(values)
		require.NoError(t, err)

		got, err := r.DecodeDateTimeArray(frame)
		require.NoError(t, err)
		require.Len(t, got, len(values))
		for i := range values {
			require.True(t, values[i].Equal(got[i]), "index %d: want %v got %v", i, values[i], got[i])
		}
	}
}

func TestEncodeDecodeByteArray(t *testing.T) {
	for _, bc := range newBlockCodecs(t) {
		w, r := newWriterReader(t, bc)
		payload := []byte("the quick brown fox jumps over the lazy dog, repeatedly, for compressibility")
		frame, err := w.EncodeByteArray(payload)
		require.NoError(t, err)

		got, err := r.DecodeByteArray(frame)
		require.NoError(t, err)
		require.Equal(t, payload, got)
	}
}

// A non-primitive element type recurses into the byte codec: the caller
// serializes each struct to a fixed-width record itself, concatenates the
// records into one buffer, and hands that to EncodeByteArray/DecodeByteArray
// with element type byte — the boundary spec.md calls "the recursive,
// non-core path".
type point struct {
	X, Y int32
}

func encodePoints(points []point) []byte {
	out := make([]byte, len(points)*8)
	for i, p := range points {
		binary.LittleEndian.PutUint32(out[i*8:], uint32(p.X))
		binary.LittleEndian.PutUint32(out[i*8+4:], uint32(p.Y))
	}
	return out
}

func decodePoints(b []byte) []point {
	out := make([]point, len(b)/8)
	for i := range out {
		out[i] = point{
			X: int32(binary.LittleEndian.Uint32(b[i*8:])),
			Y: int32(binary.LittleEndian.Uint32(b[i*8+4:])),
		}
	}
	return out
}

func TestRecursiveByteSpecializationRoundTrip(t *testing.T) {
	bc, err := blosc.NewZstd()
	require.NoError(t, err)
	w, r := newWriterReader(t, bc)

	points := []point{{1, 2}, {3, 4}, {-5, 6}, {0, 0}}
	frame, err := w.EncodeByteArray(encodePoints(points))
	require.NoError(t, err)

	raw, err := r.DecodeByteArray(frame)
	require.NoError(t, err)
	require.Equal(t, points, decodePoints(raw))
}

// S5: an empty array encodes to exactly an 8-byte frame whose version/flags
// byte is 0x01 (version 0, flagCompressed set, no delta), and decodes back
// to an empty array.
func TestEmptyFrameScenario_S5(t *testing.T) {
	for _, bc := range newBlockCodecs(t) {
		w, r := newWriterReader(t, bc)
		frame, err := w.EncodeInt64Array(nil, false)
		require.NoError(t, err)
		require.Len(t, frame, 8)
		require.Equal(t, byte(0x01), frame[4])

		got, err := r.DecodeInt64Array(frame)
		require.NoError(t, err)
		require.Empty(t, got)
	}
}

// S6: a frame whose version byte names a version newer than this reader
// understands fails closed with ErrCorrupt.
func TestCorruptVersionScenario_S6(t *testing.T) {
	bc := newBlockCodecs(t)[0]
	w, r := newWriterReader(t, bc)
	frame, err := w.EncodeInt64Array([]int64{1, 2, 3}, false)
	require.NoError(t, err)

	corrupted := append([]byte(nil), frame...)
	corrupted[4] = (1 << 4) | (corrupted[4] & 0x0F) // bump version from 0 to 1

	_, err = r.DecodeInt64Array(corrupted)
	require.ErrorIs(t, err, codec.ErrCorrupt)
}

func TestDecodeTruncatedFrameIsCorrupt(t *testing.T) {
	bc := newBlockCodecs(t)[0]
	_, r := newWriterReader(t, bc)
	_, err := r.DecodeInt64Array([]byte{1, 2, 3})
	require.ErrorIs(t, err, codec.ErrCorrupt)
}

func TestFloat64ArrayRejectsDeltaFlagOnDecode(t *testing.T) {
	bc := newBlockCodecs(t)[0]
	w, r := newWriterReader(t, bc)
	frame, err := w.EncodeInt64Array([]int64{10, 11, 12}, true)
	require.NoError(t, err)

	_, err = r.DecodeFloat64Array(frame)
	require.ErrorIs(t, err, codec.ErrCorrupt)
}

// DecodeInt64ArraysParallel decodes several frames concurrently and returns
// them in the same order as the input, as if decoded sequentially.
func TestDecodeInt64ArraysParallel(t *testing.T) {
	bc, err := blosc.NewZstd()
	require.NoError(t, err)
	w, r := newWriterReader(t, bc)

	var frames [][]byte
	var want [][]int64
	for i := 0; i < 5; i++ {
		values := []int64{int64(i), int64(i + 1), int64(i + 2)}
		frame, err := w.EncodeInt64Array(values, false)
		require.NoError(t, err)
		frames = append(frames, frame)
		want = append(want, values)
	}

	got, err := r.DecodeInt64ArraysParallel(context.Background(), frames)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

// WithMetrics records frames written/read and a compression ratio, the D3
// instrumentation wiring the codec package carries per SPEC_FULL.md.
func TestWriterReaderMetrics(t *testing.T) {
	bc, err := blosc.NewZstd()
	require.NoError(t, err)

	provider := metrics.NewBasicProvider()
	w := codec.NewWriter(bc, 1).WithMetrics(provider)
	r := codec.NewReader(bc, 1).WithMetrics(provider)

	values := make([]int64, 200)
	for i := range values {
		values[i] = int64(i % 5)
	}
	frame, err := w.EncodeInt64Array(values, true)
	require.NoError(t, err)

	_, err = r.DecodeInt64Array(frame)
	require.NoError(t, err)

	written := provider.Counter(metrics.CodecFramesWritten).(*metrics.BasicCounter)
	read := provider.Counter(metrics.CodecFramesRead).(*metrics.BasicCounter)
	ratio := provider.Histogram(metrics.CodecCompressionRatio).(*metrics.BasicHistogram)

	require.EqualValues(t, 1, written.Snapshot())
	require.EqualValues(t, 1, read.Snapshot())
	require.Equal(t, int64(1), ratio.Snapshot().Count)
}
