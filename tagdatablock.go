package ausar

import (
	"encoding/binary"
	"io"
)

// TagSectionType identifies which of a tag's four payload sections a
// TagDataBlock's offset is relative to.
type TagSectionType uint16

const (
	// SectionHeader is inside the tag header (metadata).
	SectionHeader TagSectionType = iota
	// SectionTagData is inside the main parent tag.
	SectionTagData
	// SectionResourceData is inside a resource child tag.
	SectionResourceData
	// SectionActualResource is inside "external" resource data (bitmaps,
	// Havok data, etc).
	SectionActualResource
)

func parseTagSectionType(v uint16) (TagSectionType, error) {
	if v > uint16(SectionActualResource) {
		return 0, &InvalidTagSectionError{Found: v}
	}
	return TagSectionType(v), nil
}

// TagDataBlock describes the location of a contiguous byte range within
// a tag's payload.
type TagDataBlock struct {
	EntrySize   uint32
	padding     uint16
	SectionType TagSectionType
	Offset      uint64
}

func (b *TagDataBlock) decode(r io.Reader) error {
	if err := binary.Read(r, binary.LittleEndian, &b.EntrySize); err != nil {
		return err
	}
	if err := binary.Read(r, binary.LittleEndian, &b.padding); err != nil {
		return err
	}
	var sectionType uint16
	if err := binary.Read(r, binary.LittleEndian, &sectionType); err != nil {
		return err
	}
	var err error
	if b.SectionType, err = parseTagSectionType(sectionType); err != nil {
		return err
	}
	return binary.Read(r, binary.LittleEndian, &b.Offset)
}

// fileOffset returns the effective byte position of this datablock
// within the materialized payload buffer: section_base(SectionType) +
// Offset, where TagData and Header share base 0 (they sit contiguously
// before the resource sections within one materialized payload).
func (b *TagDataBlock) fileOffset(tf *TagFile) uint64 {
	var sectionBase uint64
	switch b.SectionType {
	case SectionHeader, SectionTagData:
		sectionBase = 0
	case SectionResourceData:
		sectionBase = uint64(tf.Header.DataSize)
	case SectionActualResource:
		sectionBase = uint64(tf.Header.DataSize) + uint64(tf.Header.ResourceSize)
	}
	return sectionBase + b.Offset
}

// fieldBlockOffset returns the effective byte position of this datablock
// the way FieldBlock's collection loader computes it: for ResourceData,
// the section base is the sum of EntrySize over the tag's TagData-section
// datablocks specifically (not the header's DataSize, and not Header-section
// entries), rather than the section_base used by fileOffset. Replicated
// exactly from the upstream loader rather than reusing fileOffset.
func (b *TagDataBlock) fieldBlockOffset(tf *TagFile) uint64 {
	if b.SectionType != SectionResourceData {
		return b.fileOffset(tf)
	}
	var sum uint64
	for i := range tf.DataBlocks {
		if tf.DataBlocks[i].SectionType == SectionTagData {
			sum += uint64(tf.DataBlocks[i].EntrySize)
		}
	}
	return b.Offset + sum
}
