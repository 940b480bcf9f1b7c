package ausar

import (
	"errors"

	quicklz "github.com/Hiroko103/go-quicklz"

	"github.com/slipspace-go/ausar/internal/kraken"
)

// Decompressor expands a compressed buffer into dst, which is sized to
// expectedSize bytes, and reports how many bytes of dst were filled. A
// mismatch between the returned count and expectedSize is treated by
// callers as ErrBufferSizeOverflow.
type Decompressor interface {
	Decompress(src, dst []byte, expectedSize int) (int, error)
}

// krakenDecompress is the function KrakenDecompressor.Decompress calls
// to invoke the native library; replaced in tests so the error-mapping
// below can be exercised without a cgo build or a linked library.
var krakenDecompress = kraken.Decompress

// KrakenDecompressor decompresses module blocks using the native Kraken
// library, the compressor the real game archives are built with. It
// requires a cgo build; in a !cgo build Decompress always fails.
type KrakenDecompressor struct{}

func (KrakenDecompressor) Decompress(src, dst []byte, expectedSize int) (int, error) {
	out, err := krakenDecompress(src, expectedSize)
	if err != nil {
		var decErr *kraken.DecompressionError
		switch {
		case errors.As(err, &decErr):
			return 0, &DecompressionFailedError{Code: decErr.Code}
		case errors.Is(err, kraken.ErrBufferSizeOverflow):
			return 0, ErrBufferSizeOverflow
		default:
			return 0, &DecompressionFailedError{Code: -1}
		}
	}
	n := copy(dst, out)
	return n, nil
}

// QuicklzDecompressor decompresses QuickLZ-compressed buffers. It exists
// as a pure-Go Decompressor so the block-assembly plumbing in FileEntry
// can be exercised in tests without the native Kraken library, using
// fixtures compressed with QuickLZ instead.
type QuicklzDecompressor struct{}

func (QuicklzDecompressor) Decompress(src, dst []byte, expectedSize int) (int, error) {
	qlz, err := quicklz.New(quicklz.COMPRESSION_LEVEL_1, quicklz.STREAMING_BUFFER_0)
	if err != nil {
		return 0, err
	}
	n, err := qlz.Decompress(&src, &dst)
	if err != nil {
		return 0, err
	}
	return n, nil
}
