// Command framedump inspects an EncodedArrayFrame on disk: it prints the
// header fields and, for a recognized element type, the decoded values.
// It exists to exercise the codec package end-to-end outside of tests, the
// way a library's own example binaries typically do.
package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"os"

	"github.com/ygrebnov/cursorseries/codec"
	"github.com/ygrebnov/cursorseries/codec/blosc"
)

func main() {
	path := flag.String("file", "", "path to an encoded frame")
	kind := flag.String("type", "int64", "element type: int64, float64, datetime, bytes")
	algo := flag.String("algo", "zstd", "block codec used to write the frame: zstd or lz4")
	flag.Parse()

	if *path == "" {
		fmt.Fprintln(os.Stderr, "framedump: -file is required")
		os.Exit(2)
	}

	data, err := os.ReadFile(*path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "framedump: %v\n", err)
		os.Exit(1)
	}

	if err := dump(data, *kind, *algo); err != nil {
		fmt.Fprintf(os.Stderr, "framedump: %v\n", err)
		os.Exit(1)
	}
}

func dump(data []byte, kind, algo string) error {
	if len(data) < 8 {
		return fmt.Errorf("frame too short: %d bytes", len(data))
	}
	total := binary.LittleEndian.Uint32(data[0:4])
	versionFlags := data[4]
	version := versionFlags >> 4
	flags := versionFlags & 0x0F

	fmt.Printf("total length:   %d\n", total)
	fmt.Printf("version:        %d\n", version)
	fmt.Printf("compressed:     %v\n", flags&0x01 != 0)
	fmt.Printf("delta-encoded:  %v\n", flags&0x02 != 0)

	bc, err := blockCodec(algo)
	if err != nil {
		return err
	}
	r := codec.NewReader(bc, 1)

	switch kind {
	case "int64":
		values, err := r.DecodeInt64Array(data)
		if err != nil {
			return err
		}
		fmt.Printf("values (%d):    %v\n", len(values), values)
	case "float64":
		values, err := r.DecodeFloat64Array(data)
		if err != nil {
			return err
		}
		fmt.Printf("values (%d):    %v\n", len(values), values)
	case "datetime":
		values, err := r.DecodeDateTimeArray(data)
		if err != nil {
			return err
		}
		fmt.Printf("values (%d):    %v\n", len(values), values)
	case "bytes":
		values, err := r.DecodeByteArray(data)
		if err != nil {
			return err
		}
		fmt.Printf("payload bytes:  %d\n", len(values))
	default:
		return fmt.Errorf("unknown -type %q", kind)
	}
	return nil
}

func blockCodec(name string) (blosc.BlockCodec, error) {
	switch name {
	case "zstd":
		return blosc.NewZstd()
	case "lz4":
		return blosc.NewLZ4(), nil
	default:
		return nil, fmt.Errorf("unknown -algo %q", name)
	}
}
