package codec

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/ygrebnov/cursorseries/codec/blosc"
	"github.com/ygrebnov/cursorseries/metrics"
)

// Reader decodes EncodedArrayFrame payloads produced by a Writer using bc
// as the block compressor. Like Writer, attach a real metrics.Provider with
// WithMetrics before first use. Decompression buffers come from bc itself
// (DecompressCtx already sizes its own destination via blosc.Sizes), so
// Reader has no buffer pool of its own to configure.
type Reader struct {
	bc       blosc.BlockCodec
	metrics  metrics.Provider
	nthreads int
}

// NewReader returns a Reader that decompresses with bc using nthreads
// worker threads per block.
func NewReader(bc blosc.BlockCodec, nthreads int) *Reader {
	return &Reader{
		bc:       bc,
		metrics:  metrics.NewNoopProvider(),
		nthreads: nthreads,
	}
}

// WithMetrics attaches a metrics.Provider instrumenting frames-read counts
// under the codec.* instrument names in package metrics.
func (r *Reader) WithMetrics(m metrics.Provider) *Reader {
	r.metrics = m
	return r
}

// readFrame runs the common read sequence (§4.5): validate the header,
// recognize an empty frame without invoking the compressor at all, then
// decompress the remainder.
func (r *Reader) readFrame(src []byte) (payload []byte, delta bool, err error) {
	total, flags, err := readHeader(src)
	if err != nil {
		return nil, false, err
	}
	r.metrics.Counter(metrics.CodecFramesRead).Add(1)
	if total <= headerSize+blockHeaderSize {
		return []byte{}, false, nil
	}

	block := src[headerSize:total]
	payload, err = r.bc.DecompressCtx(block, r.nthreads)
	if err != nil {
		return nil, false, ErrCorrupt
	}
	return payload, flags&flagDelta != 0, nil
}

// DecodeInt64Array reverses Writer.EncodeInt64Array.
func (r *Reader) DecodeInt64Array(frame []byte) ([]int64, error) {
	payload, delta, err := r.readFrame(frame)
	if err != nil {
		return nil, err
	}
	values := bytesToInt64s(payload)
	if delta {
		undeltaFromFirst(values)
	}
	return values, nil
}

// DecodeFloat64Array reverses Writer.EncodeFloat64Array.
func (r *Reader) DecodeFloat64Array(frame []byte) ([]float64, error) {
	payload, delta, err := r.readFrame(frame)
	if err != nil {
		return nil, err
	}
	if delta {
		return nil, ErrCorrupt
	}
	return bytesToFloat64s(payload), nil
}

// DecodeDateTimeArray reverses Writer.EncodeDateTimeArray.
func (r *Reader) DecodeDateTimeArray(frame []byte) ([]time.Time, error) {
	payload, delta, err := r.readFrame(frame)
	if err != nil {
		return nil, err
	}
	if !delta && len(payload) > 0 {
		return nil, ErrCorrupt
	}
	ticks := bytesToInt64s(payload)
	undeltaFromPrevious(ticks)
	out := make([]time.Time, len(ticks))
	for i, t := range ticks {
		out[i] = time.Unix(0, t).UTC()
	}
	return out, nil
}

// DecodeByteArray reverses Writer.EncodeByteArray.
func (r *Reader) DecodeByteArray(frame []byte) ([]byte, error) {
	payload, delta, err := r.readFrame(frame)
	if err != nil {
		return nil, err
	}
	if delta {
		return nil, ErrCorrupt
	}
	return payload, nil
}

func bytesToInt64s(b []byte) []int64 {
	out := make([]int64, len(b)/8)
	for i := range out {
		out[i] = int64(binary.LittleEndian.Uint64(b[i*8:]))
	}
	return out
}

func bytesToFloat64s(b []byte) []float64 {
	out := make([]float64, len(b)/8)
	for i := range out {
		out[i] = math.Float64frombits(binary.LittleEndian.Uint64(b[i*8:]))
	}
	return out
}
