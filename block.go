package ausar

import (
	"encoding/binary"
	"io"
)

// blockEntry partitions a file payload into one contiguous decompressed
// range, sourced from either an inlined copy or a Kraken-compressed blob.
type blockEntry struct {
	compressedOffset   uint32
	compressedSize     uint32
	decompressedOffset uint32
	decompressedSize   uint32
	isCompressed       bool
}

func (b *blockEntry) decode(r io.Reader) error {
	fields := []any{&b.compressedOffset, &b.compressedSize, &b.decompressedOffset, &b.decompressedSize}
	for _, f := range fields {
		if err := binary.Read(r, binary.LittleEndian, f); err != nil {
			return err
		}
	}
	var compressedFlag uint32
	if err := binary.Read(r, binary.LittleEndian, &compressedFlag); err != nil {
		return err
	}
	if compressedFlag != 0 && compressedFlag != 1 {
		return &IncorrectCompressedValueError{Value: compressedFlag}
	}
	b.isCompressed = compressedFlag != 0
	return nil
}
