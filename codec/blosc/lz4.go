package blosc

import (
	"fmt"

	"github.com/pierrec/lz4/v4"
)

// lz4Codec compresses blocks with pierrec/lz4/v4. Its Compressor is
// pre-allocated and reused by every CompressCtx call, so concurrent
// CompressCtx calls on one lz4Codec are not safe; DecompressCtx keeps no
// state of its own.
type lz4Codec struct {
	compressor lz4.Compressor
}

// NewLZ4 returns a BlockCodec backed by lz4 block compression.
func NewLZ4() BlockCodec {
	return &lz4Codec{}
}

func (l *lz4Codec) Name() string { return "lz4" }

func (l *lz4Codec) CompressCtx(level int, shuffle bool, typesize int, src []byte, nthreads int) ([]byte, error) {
	shuffled := src
	if shuffle {
		shuffled = make([]byte, len(src))
		Shuffle(shuffled, src, typesize)
	}

	bound := lz4.CompressBlockBound(len(shuffled))
	dst := make([]byte, blockHeaderSize+bound)
	n, err := l.compressor.CompressBlock(shuffled, dst[blockHeaderSize:])
	if err != nil {
		return nil, fmt.Errorf("blosc: lz4 compress: %w", err)
	}
	// CompressBlock returns (0, nil) for input it judges incompressible
	// (too short, or no exploitable redundancy) rather than an error —
	// store the shuffled bytes verbatim instead of failing the frame.
	if n == 0 && len(shuffled) > 0 {
		out := make([]byte, blockHeaderSize+len(shuffled))
		copy(out[blockHeaderSize:], shuffled)
		putHeader(out, len(src), len(out), typesize, shuffle, true)
		return out, nil
	}

	out := dst[:blockHeaderSize+n]
	putHeader(out, len(src), len(out), typesize, shuffle, false)
	return out, nil
}

func (l *lz4Codec) DecompressCtx(block []byte, nthreads int) ([]byte, error) {
	nbytes, _, _, err := Sizes(block)
	if err != nil {
		return nil, err
	}
	shuffle := shuffleFlag(block)
	stored := storedFlag(block)
	typesize := typesizeOf(block)

	var shuffled []byte
	if stored {
		shuffled = block[blockHeaderSize:]
	} else {
		buf := make([]byte, nbytes)
		n, err := lz4.UncompressBlock(block[blockHeaderSize:], buf)
		if err != nil {
			return nil, fmt.Errorf("blosc: lz4 decompress: %w", err)
		}
		shuffled = buf[:n]
	}

	if !shuffle {
		return shuffled, nil
	}
	out := make([]byte, len(shuffled))
	Unshuffle(out, shuffled, typesize)
	return out, nil
}
