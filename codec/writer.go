package codec

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/ygrebnov/cursorseries/codec/blosc"
	"github.com/ygrebnov/cursorseries/codec/bufpool"
	"github.com/ygrebnov/cursorseries/metrics"
)

// blockHeaderSize mirrors blosc's internal sub-header length; a non-empty
// frame can never be shorter than the frame header plus that sub-header.
const blockHeaderSize = 16

// Writer encodes arrays into EncodedArrayFrame payloads using bc as the
// block compressor. The zero-value metrics provider is a no-op and the
// zero-value buffer pool is a fresh bufpool.Pool; attach real ones with
// WithMetrics/WithPool before first use, the same chaining style
// gate.AutoSignal and parallel.Runner use.
type Writer struct {
	bc       blosc.BlockCodec
	pool     *bufpool.Pool
	metrics  metrics.Provider
	nthreads int
}

// NewWriter returns a Writer that compresses with bc using nthreads worker
// threads per block.
func NewWriter(bc blosc.BlockCodec, nthreads int) *Writer {
	return &Writer{
		bc:       bc,
		pool:     bufpool.New(),
		metrics:  metrics.NewNoopProvider(),
		nthreads: nthreads,
	}
}

// WithMetrics attaches a metrics.Provider instrumenting frames-written,
// bytes-compressed, and compression-ratio under the codec.* instrument
// names in package metrics.
func (w *Writer) WithMetrics(m metrics.Provider) *Writer {
	w.metrics = m
	return w
}

// WithPool attaches a shared buffer pool scratch buffers are rented from,
// instead of the private one NewWriter allocates.
func (w *Writer) WithPool(p *bufpool.Pool) *Writer {
	w.pool = p
	return w
}

// writeFrame runs the common write sequence (§4.5): reserve the header,
// invoke the block compressor if there's anything to compress, then fill
// in total length and version|flags.
func (w *Writer) writeFrame(payload []byte, typesize int, delta bool) ([]byte, error) {
	if len(payload) == 0 {
		out := make([]byte, headerSize)
		putHeader(out, headerSize, flagCompressed)
		w.metrics.Counter(metrics.CodecFramesWritten).Add(1)
		return out, nil
	}

	block, err := w.bc.CompressCtx(9, true, typesize, payload, w.nthreads)
	if err != nil {
		return nil, ErrInsufficientCapacity
	}

	total := headerSize + len(block)
	flags := byte(flagCompressed)
	if delta {
		flags |= flagDelta
	}

	out := make([]byte, total)
	putHeader(out, total, flags)
	copy(out[headerSize:], block)

	w.metrics.Counter(metrics.CodecFramesWritten).Add(1)
	w.metrics.Counter(metrics.CodecBytesCompressed).Add(int64(len(block)))
	w.metrics.Histogram(metrics.CodecCompressionRatio).Record(float64(len(payload)) / float64(len(block)))
	return out, nil
}

// EncodeInt64Array encodes values as a frame, optionally delta-from-first
// encoded (the generic delta path for signed integers).
func (w *Writer) EncodeInt64Array(values []int64, delta bool) ([]byte, error) {
	work := append([]int64(nil), values...)
	if delta {
		deltaFromFirst(work)
	}

	scratch := w.pool.Rent(len(work) * 8)
	defer w.pool.Return(scratch)
	putInt64s(scratch, work)

	return w.writeFrame(scratch, 8, delta)
}

// EncodeFloat64Array encodes values as a frame. Floats never take the delta
// path (see SignedInteger's doc comment).
func (w *Writer) EncodeFloat64Array(values []float64) ([]byte, error) {
	scratch := w.pool.Rent(len(values) * 8)
	defer w.pool.Return(scratch)
	putFloat64s(scratch, values)

	return w.writeFrame(scratch, 8, false)
}

// EncodeDateTimeArray encodes values as a frame using the DateTime
// specialization: ticks are delta-from-previous, not delta-from-first.
func (w *Writer) EncodeDateTimeArray(values []time.Time) ([]byte, error) {
	ticks := make([]int64, len(values))
	for i, t := range values {
		ticks[i] = t.UnixNano()
	}
	deltaFromPrevious(ticks)

	scratch := w.pool.Rent(len(ticks) * 8)
	defer w.pool.Return(scratch)
	putInt64s(scratch, ticks)

	return w.writeFrame(scratch, 8, true)
}

// EncodeByteArray writes a pre-serialized byte buffer through the frame
// format directly — the recursive path for a non-primitive element type:
// the caller serializes T to bytes with its own (non-core) serializer and
// recurses into this codec with element type byte.
func (w *Writer) EncodeByteArray(payload []byte) ([]byte, error) {
	return w.writeFrame(payload, 1, false)
}

func putInt64s(dst []byte, values []int64) {
	for i, v := range values {
		binary.LittleEndian.PutUint64(dst[i*8:], uint64(v))
	}
}

func putFloat64s(dst []byte, values []float64) {
	for i, v := range values {
		binary.LittleEndian.PutUint64(dst[i*8:], math.Float64bits(v))
	}
}
