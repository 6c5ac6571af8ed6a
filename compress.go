// Compression for catalog snapshots.
//
// A snapshot is the previous catalog file, byte for byte, Zstd-compressed.
// Snapshots are standalone files so no text encoding is layered on top.
package shelf

import (
	"fmt"

	"github.com/klauspost/compress/zstd"
)

// Shared encoder/decoder. Both are documented as safe for concurrent use
// and are expensive to construct, so they are allocated once.
var (
	zstdEncoder, _ = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	zstdDecoder, _ = zstd.NewReader(nil)
)

func compress(data []byte) []byte {
	if len(data) == 0 {
		return nil
	}
	return zstdEncoder.EncodeAll(data, nil)
}

func decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	out, err := zstdDecoder.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: zstd: %w", ErrDecompress, err)
	}
	return out, nil
}
