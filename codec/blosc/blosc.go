package blosc

import (
	"encoding/binary"
	"fmt"
)

// blockHeaderSize is the size of the self-describing sub-header every
// BlockCodec prepends to its compressed output: nbytes (uncompressed
// length), cbytes (total block length including this header), blocksize
// (0, meaning "whole buffer is one block" — this package never splits
// multi-block chunks), a flags byte (shuffle, stored), a typesize byte, and
// two reserved bytes.
const blockHeaderSize = 16

// BlockCodec compresses and decompresses a single contiguous byte buffer
// representing count elements of typesize bytes each. It is the capability
// boundary codec.Writer/Reader consume; zstd and lz4 are the two adapters
// this package provides, matching the algorithm names the frame format
// recognizes ("zstd", "lz4").
type BlockCodec interface {
	// Name is the algorithm name, for diagnostics; it is not part of the
	// wire format. Neither the frame header nor the block header records
	// the algorithm, so a block must be decompressed with the same kind of
	// BlockCodec that compressed it.
	Name() string

	// CompressCtx shuffles (if shuffle is true) and compresses src, typed
	// as typesize-byte elements, returning a block: 16-byte header +
	// compressed payload.
	CompressCtx(level int, shuffle bool, typesize int, src []byte, nthreads int) ([]byte, error)

	// DecompressCtx reverses CompressCtx, returning the original bytes.
	DecompressCtx(block []byte, nthreads int) ([]byte, error)
}

// Sizes reads the self-describing header of a block produced by
// CompressCtx, without decompressing it — the probe codec.Reader uses to
// size its destination buffer before decompressing.
func Sizes(block []byte) (nbytes, cbytes, blocksize int, err error) {
	if len(block) < blockHeaderSize {
		return 0, 0, 0, fmt.Errorf("blosc: block too short for header: %d bytes", len(block))
	}
	nbytes = int(binary.LittleEndian.Uint32(block[0:4]))
	cbytes = int(binary.LittleEndian.Uint32(block[4:8]))
	blocksize = int(binary.LittleEndian.Uint32(block[8:12]))
	return nbytes, cbytes, blocksize, nil
}

func shuffleFlag(block []byte) bool {
	return block[12]&0x01 != 0
}

// storedFlag reports whether the block's payload is stored verbatim
// (uncompressed) rather than run through the codec's compressor — the
// fallback a BlockCodec takes when its compressor refuses input it judges
// incompressible.
func storedFlag(block []byte) bool {
	return block[12]&0x02 != 0
}

// typesizeOf reads the element size recorded by putHeader, so DecompressCtx
// can reverse Shuffle without the caller having to pass typesize back in.
func typesizeOf(block []byte) int {
	return int(block[13])
}

func putHeader(dst []byte, nbytes, cbytes, typesize int, shuffle, stored bool) {
	binary.LittleEndian.PutUint32(dst[0:4], uint32(nbytes))
	binary.LittleEndian.PutUint32(dst[4:8], uint32(cbytes))
	binary.LittleEndian.PutUint32(dst[8:12], 0) // blocksize: single block
	flags := byte(0)
	if shuffle {
		flags |= 0x01
	}
	if stored {
		flags |= 0x02
	}
	dst[12] = flags
	dst[13] = byte(typesize)
	dst[14], dst[15] = 0, 0
}
