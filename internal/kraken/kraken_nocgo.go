//go:build !cgo

package kraken

import "errors"

// ErrCGODisabled is returned when the module was built without cgo, so
// the native Kraken decompressor is unavailable.
var ErrCGODisabled = errors.New("kraken: native decompressor requires cgo")

// Decompress always fails in a non-cgo build; callers should fall back
// to a pure-Go Decompressor implementation instead.
func Decompress(src []byte, size int) ([]byte, error) {
	return nil, ErrCGODisabled
}
