//go:build cgo

// Package kraken wraps the native Kraken_Decompress export used to
// decompress module block data, isolating the cgo boundary behind a
// narrow Go function so the rest of the module never touches cgo types.
package kraken

/*
#cgo LDFLAGS: -lkraken_static
#include <stddef.h>

extern int Kraken_Decompress(const unsigned char *src, size_t srcLen, unsigned char *dst, size_t dstLen);
*/
import "C"

import (
	"unsafe"
)

// Decompress expands src into a buffer sized to hold size bytes and
// returns the slice actually produced. It mirrors the upstream wrapper's
// 8-byte scratch padding, which keeps the destination pointer aligned
// for the native decompressor. A negative result from the native call
// is returned as *DecompressionError carrying that code; a result
// exceeding the scratch buffer's size is returned as
// ErrBufferSizeOverflow — the two are kept distinguishable so callers
// can map them to separate error kinds.
func Decompress(src []byte, size int) ([]byte, error) {
	buf := make([]byte, size+8)

	var srcPtr *C.uchar
	if len(src) > 0 {
		srcPtr = (*C.uchar)(unsafe.Pointer(&src[0]))
	}
	dstPtr := (*C.uchar)(unsafe.Pointer(&buf[0]))

	result := int(C.Kraken_Decompress(srcPtr, C.size_t(len(src)), dstPtr, C.size_t(size)))
	if result < 0 {
		return nil, &DecompressionError{Code: result}
	}
	if result > len(buf) {
		return nil, ErrBufferSizeOverflow
	}
	return buf[:result], nil
}
