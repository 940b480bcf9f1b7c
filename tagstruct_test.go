package ausar

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func TestTagStructDecode(t *testing.T) {
	buf := &bytes.Buffer{}
	var guid [16]byte
	for i := range guid {
		guid[i] = byte(i)
	}
	buf.Write(guid[:])
	binary.Write(buf, binary.LittleEndian, uint16(TagBlockKind))
	binary.Write(buf, binary.LittleEndian, uint16(LocationResource))
	binary.Write(buf, binary.LittleEndian, int32(5))
	binary.Write(buf, binary.LittleEndian, int32(-1))
	binary.Write(buf, binary.LittleEndian, uint32(0x40))

	var s TagStruct
	if err := s.decode(buf); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if s.Kind != TagBlockKind || s.Location != LocationResource {
		t.Fatalf("got %+v", s)
	}
	if s.TargetIndex != 5 || s.FieldBlock != -1 || s.FieldOffset != 0x40 {
		t.Fatalf("got %+v", s)
	}
	if s.GUID != guid {
		t.Fatalf("guid mismatch: %v", s.GUID)
	}
}

func TestTagStructInvalidKind(t *testing.T) {
	buf := &bytes.Buffer{}
	buf.Write(make([]byte, 16))
	binary.Write(buf, binary.LittleEndian, uint16(99))
	binary.Write(buf, binary.LittleEndian, uint16(LocationInternal))
	binary.Write(buf, binary.LittleEndian, int32(0))
	binary.Write(buf, binary.LittleEndian, int32(0))
	binary.Write(buf, binary.LittleEndian, uint32(0))

	var s TagStruct
	err := s.decode(buf)
	if _, ok := err.(*InvalidTagStructError); !ok {
		t.Fatalf("expected *InvalidTagStructError, got %T: %v", err, err)
	}
}

func TestDataReferenceDecode(t *testing.T) {
	buf := &bytes.Buffer{}
	binary.Write(buf, binary.LittleEndian, int32(2))
	binary.Write(buf, binary.LittleEndian, uint32(0x10))
	binary.Write(buf, binary.LittleEndian, int32(7))

	var d DataReference
	if err := d.decode(buf); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if d.FieldBlock != 2 || d.FieldOffset != 0x10 || d.TargetIndex != 7 {
		t.Fatalf("got %+v", d)
	}
}
