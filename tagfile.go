package ausar

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// dependency is an opaque reference to another tag, recorded by a tag's
// dependency table. Only the fields needed to resolve a tag path are
// kept; the remainder of the on-disk record is skipped.
type dependency struct {
	assetID    int64
	assetGroup uint32
	globalID   uint32
}

func (d *dependency) decode(r io.Reader) error {
	fields := []any{&d.assetID, &d.assetGroup}
	for _, f := range fields {
		if err := binary.Read(r, binary.LittleEndian, f); err != nil {
			return err
		}
	}
	// Two reserved 32-bit fields between assetGroup and globalID.
	var reserved [2]uint32
	if err := binary.Read(r, binary.LittleEndian, &reserved); err != nil {
		return err
	}
	return binary.Read(r, binary.LittleEndian, &d.globalID)
}

// TagFile is a single tag's fully-parsed metadata: its header, the
// dependency table, the datablock table, the struct table, the data
// reference table, and the raw zoneset / string table blobs. It does not
// itself hold the materialized field values of the tag's structures;
// callers decode those via Load using a TagStructure implementation.
type TagFile struct {
	Header         TagHeader
	Dependencies   []dependency
	DataBlocks     []TagDataBlock
	StructDefinitions []TagStruct
	DataReferences []DataReference
	// TagReferences records, for each TagReferenceCount entry, the index
	// into Dependencies the reference resolves to; unresolved or global
	// references are recorded as -1.
	TagReferences []int32
	StringTable    []byte
	Zoneset        []byte

	// payload holds TagData and ResourceData (and, for standalone
	// resource tags, ActualResourceData) concatenated in file order, so
	// that TagDataBlock.fileOffset can index directly into it.
	payload []byte
}

// readTagFile parses a tag's full metadata and payload out of r, which
// must be positioned at the start of the tag's header.
func readTagFile(r io.Reader) (*TagFile, error) {
	tf := &TagFile{}
	if err := tf.Header.read(r); err != nil {
		return nil, err
	}

	tf.Dependencies = make([]dependency, tf.Header.DependencyCount)
	for i := range tf.Dependencies {
		if err := tf.Dependencies[i].decode(r); err != nil {
			return nil, err
		}
	}

	var err error
	tf.DataBlocks, err = readSequence[TagDataBlock, *TagDataBlock](r, int(tf.Header.DatablockCount))
	if err != nil {
		return nil, err
	}

	tf.StructDefinitions, err = readSequence[TagStruct, *TagStruct](r, int(tf.Header.TagStructCount))
	if err != nil {
		return nil, err
	}

	tf.DataReferences, err = readSequence[DataReference, *DataReference](r, int(tf.Header.DataReferenceCount))
	if err != nil {
		return nil, err
	}

	tf.TagReferences = make([]int32, tf.Header.TagReferenceCount)
	for i := range tf.TagReferences {
		if err := binary.Read(r, binary.LittleEndian, &tf.TagReferences[i]); err != nil {
			return nil, err
		}
	}

	tf.StringTable = make([]byte, tf.Header.StringTableSize)
	if _, err := io.ReadFull(r, tf.StringTable); err != nil {
		return nil, err
	}

	tf.Zoneset = make([]byte, tf.Header.ZonesetSize)
	if _, err := io.ReadFull(r, tf.Zoneset); err != nil {
		return nil, err
	}

	payloadSize := tf.Header.DataSize + tf.Header.ResourceSize
	if tf.Header.IsResource {
		payloadSize += tf.Header.ActualResourceSize
	}
	tf.payload = make([]byte, payloadSize)
	if _, err := io.ReadFull(r, tf.payload); err != nil {
		return nil, err
	}

	return tf, nil
}

// mainStruct returns the tag's unique MainStructKind struct definition.
func (tf *TagFile) mainStruct() (*TagStruct, error) {
	for i := range tf.StructDefinitions {
		if tf.StructDefinitions[i].Kind == MainStructKind {
			return &tf.StructDefinitions[i], nil
		}
	}
	return nil, ErrMainStructNotFound
}

// payloadReader returns a seekable reader over the tag's entire
// materialized payload, positioned at the given datablock's fileOffset.
// TagStructure implementations seek within it by absolute offset, the
// same way the declarative field kinds reseek between sibling and child
// structures.
func (tf *TagFile) payloadReader(block *TagDataBlock) (io.ReadSeeker, error) {
	off := block.fileOffset(tf)
	if off > uint64(len(tf.payload)) {
		return nil, fmt.Errorf("ausar: datablock offset %d exceeds payload size %d", off, len(tf.payload))
	}
	sr := bytes.NewReader(tf.payload)
	if _, err := sr.Seek(int64(off), io.SeekStart); err != nil {
		return nil, err
	}
	return sr, nil
}

// Load decodes the tag's main structure into dst, which must satisfy
// TagStructure (normally via a pointer receiver on a generated or
// hand-written type). It then calls dst.LoadFieldBlocks, which resolves
// nested FieldBlock, FieldArray, FieldTagResource, and FieldData values;
// no limit is placed on how deep that recursion goes.
func (tf *TagFile) Load(dst TagStructure) error {
	main, err := tf.mainStruct()
	if err != nil {
		return err
	}
	if main.TargetIndex < 0 || int(main.TargetIndex) >= len(tf.DataBlocks) {
		return &InvalidDatablockIndexError{Value: main.TargetIndex}
	}
	block := &tf.DataBlocks[main.TargetIndex]
	r, err := tf.payloadReader(block)
	if err != nil {
		return err
	}
	if err := dst.Read(r); err != nil {
		return err
	}
	return dst.LoadFieldBlocks(main.TargetIndex, 0, 0, r, tf)
}
