package blosc

import (
	"fmt"

	"github.com/klauspost/compress/zstd"
)

// zstdCodec compresses blocks with klauspost/compress/zstd at the best
// compression level — the frame format's fixed level 9 maps to zstd's
// highest ratio encoder level, since zstd exposes a level enum rather than
// a 1-9 integer scale.
type zstdCodec struct {
	encoder *zstd.Encoder
	decoder *zstd.Decoder
}

// NewZstd returns a BlockCodec backed by zstd. The returned codec reuses a
// single encoder/decoder pair across calls through EncodeAll and
// DecodeAll, which zstd allows to run concurrently; codec.Reader's
// parallel decode helpers share one codec this way.
func NewZstd() (BlockCodec, error) {
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	if err != nil {
		return nil, fmt.Errorf("blosc: new zstd encoder: %w", err)
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("blosc: new zstd decoder: %w", err)
	}
	return &zstdCodec{encoder: enc, decoder: dec}, nil
}

func (z *zstdCodec) Name() string { return "zstd" }

func (z *zstdCodec) CompressCtx(level int, shuffle bool, typesize int, src []byte, nthreads int) ([]byte, error) {
	shuffled := src
	if shuffle {
		shuffled = make([]byte, len(src))
		Shuffle(shuffled, src, typesize)
	}

	compressed := z.encoder.EncodeAll(shuffled, nil)

	out := make([]byte, blockHeaderSize+len(compressed))
	putHeader(out, len(src), len(out), typesize, shuffle, false)
	copy(out[blockHeaderSize:], compressed)
	return out, nil
}

func (z *zstdCodec) DecompressCtx(block []byte, nthreads int) ([]byte, error) {
	nbytes, _, _, err := Sizes(block)
	if err != nil {
		return nil, err
	}
	shuffle := shuffleFlag(block)
	typesize := typesizeOf(block)

	shuffled, err := z.decoder.DecodeAll(block[blockHeaderSize:], make([]byte, 0, nbytes))
	if err != nil {
		return nil, fmt.Errorf("blosc: zstd decode: %w", err)
	}

	if !shuffle {
		return shuffled, nil
	}
	out := make([]byte, len(shuffled))
	Unshuffle(out, shuffled, typesize)
	return out, nil
}
