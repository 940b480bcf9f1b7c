package ausar

import (
	"encoding/binary"
	"io"
)

// TagStructure is implemented by hand-written Go types that mirror a
// single declarative tag structure (the "struct" attribute in the
// original format's layout grammar). Size, Read, and Offsets describe
// the structure's fixed-width fields; LoadFieldBlocks resolves the
// variable-length children (FieldBlock, FieldArray, FieldTagResource,
// FieldData) that the fixed-width fields only reserve space for.
type TagStructure interface {
	// Size reports the fixed, on-disk byte width of the structure.
	Size() uint64
	// Read decodes the structure's fixed-width fields from r, which must
	// be positioned at the structure's start.
	Read(r io.ReadSeeker) error
	// Offsets maps each exported field's name to its byte offset inside
	// the structure, for callers that need to locate a field manually.
	Offsets() map[string]uint64
	// LoadFieldBlocks resolves this structure's variable-length children.
	// sourceIndex is the datablock index this structure's fixed-width
	// data was read from; parentIndex is this structure's position
	// within its containing FieldBlock (0 for a standalone structure and
	// for FieldArray elements; FieldTagResource passes the index of the
	// matching struct definition); adjustedBase is the byte offset, within
	// sourceIndex, that this particular structure instance starts at
	// (FieldArray passes its own adjustedBase unchanged to every element).
	LoadFieldBlocks(sourceIndex int32, parentIndex int, adjustedBase uint64, r io.ReadSeeker, tf *TagFile) error
}

// FieldBlock is a tag block: a counted, heap-allocated array of T whose
// elements live in their own datablock rather than inline.
type FieldBlock[T any, PT interface {
	*T
	TagStructure
}] struct {
	fieldOffset uint64
	typeInfo    uint64
	unknown     uint64
	Size        uint32
	Elements    []T
}

func (b *FieldBlock[T, PT]) Read(r io.ReadSeeker) error {
	pos, err := r.Seek(0, io.SeekCurrent)
	if err != nil {
		return err
	}
	b.fieldOffset = uint64(pos)
	fields := []any{&b.typeInfo, &b.unknown, &b.Size}
	for _, f := range fields {
		if err := binary.Read(r, binary.LittleEndian, f); err != nil {
			return err
		}
	}
	return nil
}

// LoadBlocks resolves the block's elements out of tf's datablock table,
// locating the first struct entry (of any kind) whose (FieldBlock,
// FieldOffset) matches (currentBlock, collectionOffset) and whose
// TargetIndex is not -1, then recursing into each element's own nested
// field blocks.
func (b *FieldBlock[T, PT]) LoadBlocks(currentBlock int32, collectionOffset uint64, r io.ReadSeeker, tf *TagFile) error {
	if b.Size == 0 {
		return nil
	}

	rootIdx := -1
	for i, s := range tf.StructDefinitions {
		if s.FieldBlock == currentBlock && uint64(s.FieldOffset) == collectionOffset && s.TargetIndex != -1 {
			rootIdx = i
			break
		}
	}
	if rootIdx == -1 {
		return nil
	}
	target := tf.StructDefinitions[rootIdx].TargetIndex
	if target < 0 || int(target) >= len(tf.DataBlocks) {
		return nil
	}
	block := &tf.DataBlocks[target]
	offset := block.fieldBlockOffset(tf)

	var zero T
	elemSize := PT(&zero).Size()

	if _, err := r.Seek(int64(offset), io.SeekStart); err != nil {
		return err
	}
	b.Elements = make([]T, 0, b.Size)
	for i := uint32(0); i < b.Size; i++ {
		var elem T
		if err := PT(&elem).Read(r); err != nil {
			return err
		}
		b.Elements = append(b.Elements, elem)
	}
	for idx := range b.Elements {
		adjustedBase := elemSize * uint64(idx)
		if err := PT(&b.Elements[idx]).LoadFieldBlocks(target, idx, adjustedBase, r, tf); err != nil {
			return err
		}
	}
	return nil
}

// FieldArray is an inline, fixed-length array of T: unlike FieldBlock,
// its elements are read immediately after the array field itself rather
// than out of a separate datablock.
type FieldArray[T any, PT interface {
	*T
	TagStructure
}] struct {
	Elements []T
}

func (a *FieldArray[T, PT]) Read(r io.ReadSeeker, size uint64) error {
	a.Elements = make([]T, 0, size)
	for i := uint64(0); i < size; i++ {
		var elem T
		if err := PT(&elem).Read(r); err != nil {
			return err
		}
		a.Elements = append(a.Elements, elem)
	}
	return nil
}

func (a *FieldArray[T, PT]) LoadBlocks(r io.ReadSeeker, sourceIndex int32, adjustedBase uint64, tf *TagFile) error {
	for i := range a.Elements {
		if err := PT(&a.Elements[i]).LoadFieldBlocks(sourceIndex, 0, adjustedBase, r, tf); err != nil {
			return err
		}
	}
	return nil
}

// FieldReference points at another tag by global ID and asset group.
type FieldReference struct {
	typeInfo    uint64
	GlobalID    int32
	AssetID     uint64
	Group       string
	localHandle int32
}

func (f *FieldReference) Read(r io.Reader) error {
	if err := binary.Read(r, binary.LittleEndian, &f.typeInfo); err != nil {
		return err
	}
	if err := binary.Read(r, binary.LittleEndian, &f.GlobalID); err != nil {
		return err
	}
	if err := binary.Read(r, binary.LittleEndian, &f.AssetID); err != nil {
		return err
	}
	group, err := readFixedString(r, 4)
	if err != nil {
		return err
	}
	f.Group = reverseString(group)
	return binary.Read(r, binary.LittleEndian, &f.localHandle)
}

func reverseString(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// FieldData is a variable-length byte blob stored out-of-line in a
// datablock referenced through the tag's data reference table.
type FieldData struct {
	dataPointer uint64
	typeInfo    uint64
	Unknown     uint32
	Size        uint32
	Data        []byte
}

func (d *FieldData) Read(r io.Reader) error {
	fields := []any{&d.dataPointer, &d.typeInfo, &d.Unknown, &d.Size}
	for _, f := range fields {
		if err := binary.Read(r, binary.LittleEndian, f); err != nil {
			return err
		}
	}
	return nil
}

// LoadData resolves the blob's bytes. parentIndex is the datablock this
// FieldData field itself lives in; parentStructIndex is this field's
// ordinal among DataReference entries that share that parentIndex,
// matching how the format records one DataReference per FieldData site
// in declaration order.
func (d *FieldData) LoadData(r io.ReadSeeker, parentIndex int32, parentStructIndex int, tf *TagFile) error {
	matches := 0
	for i := range tf.DataReferences {
		ref := &tf.DataReferences[i]
		if ref.FieldBlock != parentIndex {
			continue
		}
		if matches != parentStructIndex {
			matches++
			continue
		}
		if ref.TargetIndex == -1 {
			return nil
		}
		if int(ref.TargetIndex) >= len(tf.DataBlocks) {
			return nil
		}
		datablock := &tf.DataBlocks[ref.TargetIndex]
		pos, err := r.Seek(0, io.SeekCurrent)
		if err != nil {
			return err
		}
		if _, err := r.Seek(int64(datablock.fileOffset(tf)), io.SeekStart); err != nil {
			return err
		}
		buf := make([]byte, d.Size)
		if _, err := io.ReadFull(r, buf); err != nil {
			return err
		}
		if _, err := r.Seek(pos, io.SeekStart); err != nil {
			return err
		}
		d.Data = buf
		return nil
	}
	return nil
}

// FieldTagResource is a reference to a nested resource tag structure,
// whose fixed-width data is materialized directly into Data.
type FieldTagResource[T any, PT interface {
	*T
	TagStructure
}] struct {
	block         uint64
	handle        uint32
	ResourceIndex uint32
	Data          T
}

func (f *FieldTagResource[T, PT]) Read(r io.Reader) error {
	if err := binary.Read(r, binary.LittleEndian, &f.block); err != nil {
		return err
	}
	if err := binary.Read(r, binary.LittleEndian, &f.handle); err != nil {
		return err
	}
	return binary.Read(r, binary.LittleEndian, &f.ResourceIndex)
}

func (f *FieldTagResource[T, PT]) LoadResource(r io.ReadSeeker, adjustedBase uint64, tf *TagFile) error {
	structIdx := -1
	for i, s := range tf.StructDefinitions {
		if s.Kind == CustomKind && uint64(s.FieldOffset) == adjustedBase {
			structIdx = i
			break
		}
	}
	if structIdx == -1 {
		return nil
	}
	target := tf.StructDefinitions[structIdx].TargetIndex
	if target < 0 || int(target) >= len(tf.DataBlocks) {
		return nil
	}
	datablock := &tf.DataBlocks[target]
	pos, err := r.Seek(0, io.SeekCurrent)
	if err != nil {
		return err
	}
	if _, err := r.Seek(int64(datablock.fileOffset(tf)), io.SeekStart); err != nil {
		return err
	}
	if err := PT(&f.Data).Read(r); err != nil {
		return err
	}
	if err := PT(&f.Data).LoadFieldBlocks(target, structIdx, 0, r, tf); err != nil {
		return err
	}
	_, err = r.Seek(pos, io.SeekStart)
	return err
}

// AnyTagGuts is the internal payload of an AnyTag field.
type AnyTagGuts struct {
	TagID          int32
	LocalTagHandle int32
}

func (g *AnyTagGuts) Read(r io.Reader) error {
	if err := binary.Read(r, binary.LittleEndian, &g.TagID); err != nil {
		return err
	}
	return binary.Read(r, binary.LittleEndian, &g.LocalTagHandle)
}

// AnyTag is present at the start of every non-resource tag's root
// structure; at runtime the engine uses it to locate tags in memory.
// Only InternalStruct carries data a reader is interested in.
type AnyTag struct {
	vtableSpace    uint64
	InternalStruct AnyTagGuts
}

func (t *AnyTag) Read(r io.Reader) error {
	if err := binary.Read(r, binary.LittleEndian, &t.vtableSpace); err != nil {
		return err
	}
	return t.InternalStruct.Read(r)
}
