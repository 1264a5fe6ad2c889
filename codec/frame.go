package codec

import "encoding/binary"

// Frame header layout (§3 of the column format this package implements):
//
//	bytes 0..4: total frame length, little-endian int32
//	byte  4:    packed version:4 | flags:4
//	bytes 5..8: reserved, zero
//	bytes 8..:  payload — a blosc.BlockCodec block, or nothing if empty
const (
	headerSize = 8

	// currentVersion is the only version this reader accepts. A frame
	// written by a future, incompatible version must fail closed rather
	// than be misread.
	currentVersion = 0

	flagCompressed = 0b01
	flagDelta      = 0b10
)

func packVersionFlags(flags byte) byte {
	return byte(currentVersion<<4) | (flags & 0x0F)
}

func unpackVersion(b byte) byte { return b >> 4 }
func unpackFlags(b byte) byte   { return b & 0x0F }

func putHeader(dst []byte, total int, flags byte) {
	binary.LittleEndian.PutUint32(dst[0:4], uint32(total))
	dst[4] = packVersionFlags(flags)
	dst[5], dst[6], dst[7] = 0, 0, 0
}

func readHeader(src []byte) (total int, flags byte, err error) {
	if len(src) < headerSize {
		return 0, 0, ErrCorrupt
	}
	total = int(binary.LittleEndian.Uint32(src[0:4]))
	if total < headerSize || total > len(src) {
		return 0, 0, ErrCorrupt
	}
	if unpackVersion(src[4]) != currentVersion {
		return 0, 0, ErrCorrupt
	}
	flags = unpackFlags(src[4])
	if flags&flagCompressed == 0 {
		return 0, 0, ErrCorrupt
	}
	return total, flags, nil
}
