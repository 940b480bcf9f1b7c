package ausar

import (
	"bufio"
	"bytes"
	"io"
)

// fixedFFString is the 4-byte all-0xFF sentinel pattern that a
// fixed-length string field uses to mean "empty".
var fixedFFString = [4]byte{0xFF, 0xFF, 0xFF, 0xFF}

// readFixedString reads exactly length bytes from r and interprets them
// as UTF-8, unless the bytes are the 4-byte 0xFFFFFFFF sentinel, in
// which case it returns the empty string.
func readFixedString(r io.Reader, length int) (string, error) {
	buf := make([]byte, length)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", err
	}
	if length == 4 && bytes.Equal(buf, fixedFFString[:]) {
		return "", nil
	}
	return string(buf), nil
}

// readNullTerminatedString reads bytes up to and including the first
// 0x00 byte and returns the bytes before the terminator as a string.
func readNullTerminatedString(r *bufio.Reader) (string, error) {
	buf, err := r.ReadBytes(0x00)
	if err != nil {
		return "", err
	}
	return string(buf[:len(buf)-1]), nil
}

// decoder is implemented by fixed-layout records that can read a single
// instance of themselves sequentially from a reader.
type decoder interface {
	decode(r io.Reader) error
}

// readSequence reads count instances of T (via its decoder implementation)
// in stream order.
func readSequence[T any, PT interface {
	*T
	decoder
}](r io.Reader, count int) ([]T, error) {
	out := make([]T, count)
	for i := range out {
		if err := PT(&out[i]).decode(r); err != nil {
			return nil, err
		}
	}
	return out, nil
}
