package ausar

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func writeTagHeader(h *TagHeader) []byte {
	buf := &bytes.Buffer{}
	binary.Write(buf, binary.LittleEndian, tagHeaderMagic)
	binary.Write(buf, binary.LittleEndian, tagHeaderVersion)
	fields := []any{
		h.RootStructGUID, h.Checksum,
		h.DependencyCount, h.DatablockCount, h.TagStructCount,
		h.DataReferenceCount, h.TagReferenceCount,
		h.StringTableSize, h.ZonesetSize, uint32(0),
		h.HeaderSize, h.DataSize, h.ResourceSize, h.ActualResourceSize,
		h.headerAlignment, h.tagAlignment, h.resourceAlignment, h.actualResourceAlignment,
	}
	for _, f := range fields {
		binary.Write(buf, binary.LittleEndian, f)
	}
	isResource := uint32(0)
	if h.IsResource {
		isResource = 1
	}
	binary.Write(buf, binary.LittleEndian, isResource)
	return buf.Bytes()
}

func TestTagHeaderReadRoundTrip(t *testing.T) {
	want := &TagHeader{
		DependencyCount: 1,
		DatablockCount:  2,
		TagStructCount:  3,
		DataSize:        0x100,
		ResourceSize:    0x40,
		IsResource:      true,
	}
	data := writeTagHeader(want)

	got := &TagHeader{}
	if err := got.read(bytes.NewReader(data)); err != nil {
		t.Fatalf("read: %v", err)
	}
	if got.DataSize != want.DataSize || got.ResourceSize != want.ResourceSize || got.IsResource != want.IsResource {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestTagHeaderWrongMagic(t *testing.T) {
	buf := &bytes.Buffer{}
	binary.Write(buf, binary.LittleEndian, uint32(0))
	h := &TagHeader{}
	err := h.read(buf)
	if _, ok := err.(*TagMagicError); !ok {
		t.Fatalf("expected *TagMagicError, got %T: %v", err, err)
	}
}

func TestTagHeaderWrongVersion(t *testing.T) {
	buf := &bytes.Buffer{}
	binary.Write(buf, binary.LittleEndian, tagHeaderMagic)
	binary.Write(buf, binary.LittleEndian, int32(1))
	h := &TagHeader{}
	err := h.read(buf)
	if _, ok := err.(*TagVersionError); !ok {
		t.Fatalf("expected *TagVersionError, got %T: %v", err, err)
	}
}
