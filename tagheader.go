package ausar

import (
	"encoding/binary"
	"io"
)

const (
	tagHeaderMagic   uint32 = 0x6873_6375 // "ucsh"
	tagHeaderVersion int32  = 27
)

// TagHeader is the fixed-layout record at the start of a tag's payload.
type TagHeader struct {
	RootStructGUID      int64
	Checksum             int64
	DependencyCount      uint32
	DatablockCount       uint32
	TagStructCount       uint32
	DataReferenceCount   uint32
	TagReferenceCount    uint32
	StringTableSize      uint32
	ZonesetSize          uint32
	unknown              uint32
	HeaderSize           uint32
	DataSize             uint32
	ResourceSize         uint32
	ActualResourceSize   uint32
	headerAlignment      uint8
	tagAlignment         uint8
	resourceAlignment    uint8
	actualResourceAlignment uint8
	IsResource           bool
}

func (h *TagHeader) read(r io.Reader) error {
	var magic uint32
	if err := binary.Read(r, binary.LittleEndian, &magic); err != nil {
		return err
	}
	if magic != tagHeaderMagic {
		return &TagMagicError{Found: magic}
	}

	var version int32
	if err := binary.Read(r, binary.LittleEndian, &version); err != nil {
		return err
	}
	if version != tagHeaderVersion {
		return &TagVersionError{Found: version}
	}

	fields := []any{
		&h.RootStructGUID, &h.Checksum,
		&h.DependencyCount, &h.DatablockCount, &h.TagStructCount,
		&h.DataReferenceCount, &h.TagReferenceCount,
		&h.StringTableSize, &h.ZonesetSize, &h.unknown,
		&h.HeaderSize, &h.DataSize, &h.ResourceSize, &h.ActualResourceSize,
		&h.headerAlignment, &h.tagAlignment, &h.resourceAlignment, &h.actualResourceAlignment,
	}
	for _, f := range fields {
		if err := binary.Read(r, binary.LittleEndian, f); err != nil {
			return err
		}
	}

	var isResource uint32
	if err := binary.Read(r, binary.LittleEndian, &isResource); err != nil {
		return err
	}
	h.IsResource = isResource != 0
	return nil
}
