// Package blosc adapts general-purpose byte compressors (zstd, lz4) behind
// a small, self-describing block format modeled on the byte-shuffle
// block-compressor call boundary the codec package treats as external (see
// the EXTERNAL INTERFACES discussion this module's design follows): level,
// shuffle-on/off, element size, and thread count are explicit parameters,
// the algorithm is chosen by constructor (NewZstd, NewLZ4), and every
// block carries a 16-byte header recording
// its uncompressed size so a reader can size its destination buffer before
// decompressing.
package blosc

// Shuffle rearranges src — logically n elements of typesize bytes each —
// so that all elements' byte 0 comes first, then all byte 1, and so on.
// Time-series columns are usually slowly varying, so each byte-plane of a
// shuffled buffer tends to be far more repetitive than the interleaved
// original, which is what lets a general-purpose compressor do better on
// it. dst must have the same length as src.
func Shuffle(dst, src []byte, typesize int) {
	if typesize <= 1 || len(src) == 0 {
		copy(dst, src)
		return
	}
	n := len(src) / typesize
	for i := 0; i < n; i++ {
		for b := 0; b < typesize; b++ {
			dst[b*n+i] = src[i*typesize+b]
		}
	}
	// Trailing partial element (len(src) not a multiple of typesize)
	// copies through unshuffled; callers only pass whole-element buffers.
	rem := len(src) - n*typesize
	copy(dst[n*typesize:], src[n*typesize:n*typesize+rem])
}

// Unshuffle reverses Shuffle.
func Unshuffle(dst, src []byte, typesize int) {
	if typesize <= 1 || len(src) == 0 {
		copy(dst, src)
		return
	}
	n := len(src) / typesize
	for i := 0; i < n; i++ {
		for b := 0; b < typesize; b++ {
			dst[i*typesize+b] = src[b*n+i]
		}
	}
	rem := len(src) - n*typesize
	copy(dst[n*typesize:], src[n*typesize:n*typesize+rem])
}
