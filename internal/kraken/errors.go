package kraken

import (
	"errors"
	"fmt"
)

// DecompressionError indicates the native decompressor returned a
// negative result code, distinct from a buffer-size overflow.
type DecompressionError struct {
	Code int
}

func (e *DecompressionError) Error() string {
	return fmt.Sprintf("kraken: decompression failed with code %d", e.Code)
}

// ErrBufferSizeOverflow indicates the native decompressor reported
// consuming more bytes than the destination scratch buffer held.
var ErrBufferSizeOverflow = errors.New("kraken: decompressed size exceeds scratch buffer")
