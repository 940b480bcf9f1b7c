package ausar

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func TestBlockEntryDecode(t *testing.T) {
	buf := &bytes.Buffer{}
	binary.Write(buf, binary.LittleEndian, uint32(0x10))
	binary.Write(buf, binary.LittleEndian, uint32(0x20))
	binary.Write(buf, binary.LittleEndian, uint32(0x30))
	binary.Write(buf, binary.LittleEndian, uint32(0x40))
	binary.Write(buf, binary.LittleEndian, uint32(1))

	var b blockEntry
	if err := b.decode(buf); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !b.isCompressed {
		t.Error("expected isCompressed true")
	}
	if b.compressedOffset != 0x10 || b.decompressedSize != 0x40 {
		t.Fatalf("got %+v", b)
	}
}

func TestBlockEntryInvalidCompressedFlag(t *testing.T) {
	buf := &bytes.Buffer{}
	binary.Write(buf, binary.LittleEndian, uint32(0))
	binary.Write(buf, binary.LittleEndian, uint32(0))
	binary.Write(buf, binary.LittleEndian, uint32(0))
	binary.Write(buf, binary.LittleEndian, uint32(0))
	binary.Write(buf, binary.LittleEndian, uint32(7))

	var b blockEntry
	err := b.decode(buf)
	if _, ok := err.(*IncorrectCompressedValueError); !ok {
		t.Fatalf("expected *IncorrectCompressedValueError, got %T: %v", err, err)
	}
}
