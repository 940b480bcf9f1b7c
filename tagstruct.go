package ausar

import (
	"encoding/binary"
	"io"
)

// TagStructType describes what a TagStruct entry's target points at.
type TagStructType uint16

const (
	// MainStructKind is the unique root of a tag's struct tree.
	MainStructKind TagStructType = iota
	// TagBlockKind is an array of items in the structure.
	TagBlockKind
	// ResourceKind is a reference to a child resource.
	ResourceKind
	// CustomKind is a reference to an "external" resource.
	CustomKind
	// LiteralKind is of unknown purpose; preserved for completeness.
	LiteralKind
)

func parseTagStructType(v uint16) (TagStructType, error) {
	if v > uint16(LiteralKind) {
		return 0, &InvalidTagStructError{Found: v}
	}
	return TagStructType(v), nil
}

// TagStructLocation describes where the data referenced by a Custom
// TagStruct is located.
type TagStructLocation uint16

const (
	LocationInternal TagStructLocation = iota
	LocationResource
	LocationDebug
)

func parseTagStructLocation(v uint16) (TagStructLocation, error) {
	if v > uint16(LocationDebug) {
		return 0, &InvalidTagStructLocationError{Found: v}
	}
	return TagStructLocation(v), nil
}

// TagStruct maps a logical struct (main, block, resource, custom) onto
// the datablock (or resource) that carries its data.
type TagStruct struct {
	GUID [16]byte
	Kind TagStructType
	// Location is only meaningful for Custom-kind structs.
	Location TagStructLocation
	// TargetIndex indexes into the tag's datablocks (or resources, for
	// Resource-kind structs). -1 means "empty / unresolved".
	TargetIndex int32
	// FieldBlock is the index of the datablock containing the tag field
	// that refers to this struct. -1 for the main struct.
	FieldBlock int32
	// FieldOffset is the byte offset of the tag field inside FieldBlock.
	FieldOffset uint32
}

func (s *TagStruct) decode(r io.Reader) error {
	if _, err := io.ReadFull(r, s.GUID[:]); err != nil {
		return err
	}
	var kind, location uint16
	if err := binary.Read(r, binary.LittleEndian, &kind); err != nil {
		return err
	}
	var err error
	if s.Kind, err = parseTagStructType(kind); err != nil {
		return err
	}
	if err := binary.Read(r, binary.LittleEndian, &location); err != nil {
		return err
	}
	if s.Location, err = parseTagStructLocation(location); err != nil {
		return err
	}
	fields := []any{&s.TargetIndex, &s.FieldBlock, &s.FieldOffset}
	for _, f := range fields {
		if err := binary.Read(r, binary.LittleEndian, f); err != nil {
			return err
		}
	}
	return nil
}

// DataReference pairs a site within a parent datablock (FieldBlock,
// FieldOffset) with a TargetIndex into the datablock table, supplying
// the location of a variable-length byte blob (opaque entry contents
// beyond these three fields are not modeled, per spec.md §4.6).
type DataReference struct {
	FieldBlock  int32
	FieldOffset uint32
	TargetIndex int32
}

func (d *DataReference) decode(r io.Reader) error {
	fields := []any{&d.FieldBlock, &d.FieldOffset, &d.TargetIndex}
	for _, f := range fields {
		if err := binary.Read(r, binary.LittleEndian, f); err != nil {
			return err
		}
	}
	return nil
}
