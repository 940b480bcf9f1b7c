package ausar

import "fmt"

// ErrNotLoaded is returned by ReadMetadata or RawData when a file entry's
// payload has not been assembled yet (ReadTag was not called, or returned
// no result).
var ErrNotLoaded = &TagError{Kind: "NotLoaded"}

// ErrNoTagInfo is returned when ReadMetadata is called against a raw-file
// entry, which has no parsed tag header.
var ErrNoTagInfo = &TagError{Kind: "NoTagInfo"}

// ErrMainStructNotFound is returned when a tag's struct table contains
// no MainStruct entry. If there are several, the first one is used.
var ErrMainStructNotFound = &TagError{Kind: "MainStructNotFound"}

// ErrRecursionDepth is returned by tag-path synthesis when the
// parent/child chain exceeds the bounded recursion depth of 3.
var ErrRecursionDepth = &TagError{Kind: "RecursionDepth"}

// ModuleMagicError indicates a module header's magic field did not match
// "mohd" (0x6468_6F6D).
type ModuleMagicError struct {
	Found uint32
}

func (e *ModuleMagicError) Error() string {
	return fmt.Sprintf("incorrect module magic found! expected 0x64686F6D, found %#x", e.Found)
}

// ModuleVersionError indicates a module header's version field was not
// one of the four recognized revisions (48, 51, 52, 53).
type ModuleVersionError struct {
	Found int32
}

func (e *ModuleVersionError) Error() string {
	return fmt.Sprintf("incorrect module version found: %d", e.Found)
}

// NegativeBlockIndexError indicates a file entry declared block_count > 0
// with a negative block_index, which would be corrupt archive data.
type NegativeBlockIndexError struct {
	Value int32
}

func (e *NegativeBlockIndexError) Error() string {
	return fmt.Sprintf("module file block index must be non-negative, found %d", e.Value)
}

// BlockRangeError indicates a file entry's declared block range
// (block_index through block_index+block_count) overruns the module's
// block table, which would otherwise silently truncate the assembled
// payload.
type BlockRangeError struct {
	BlockIndex int32
	BlockCount uint16
	TableSize  int
}

func (e *BlockRangeError) Error() string {
	return fmt.Sprintf("module file block range [%d, %d) exceeds block table of size %d",
		e.BlockIndex, int64(e.BlockIndex)+int64(e.BlockCount), e.TableSize)
}

// IncorrectCompressedValueError indicates a block-table entry's
// is_compressed field held a value other than 0 or 1.
type IncorrectCompressedValueError struct {
	Value uint32
}

func (e *IncorrectCompressedValueError) Error() string {
	return fmt.Sprintf("value for is_compressed incorrect: %d", e.Value)
}

// InvalidDatablockIndexError indicates a TagStruct's TargetIndex does
// not address a valid entry in the tag's datablock table.
type InvalidDatablockIndexError struct {
	Value int32
}

func (e *InvalidDatablockIndexError) Error() string {
	return fmt.Sprintf("tag struct target_index %d is out of range of the datablock table", e.Value)
}

// TagMagicError indicates a tag header's magic field did not match
// "ucsh" (0x6873_6375).
type TagMagicError struct {
	Found uint32
}

func (e *TagMagicError) Error() string {
	return fmt.Sprintf("incorrect tag magic found! expected 0x68736375, found %#x", e.Found)
}

// TagVersionError indicates a tag header's version field was not 27.
type TagVersionError struct {
	Found int32
}

func (e *TagVersionError) Error() string {
	return fmt.Sprintf("incorrect tag version found! expected 27, found %d", e.Found)
}

// TagError is a generic kinded error for conditions that do not carry
// their own distinguishing payload (see the Err* sentinels above).
type TagError struct {
	Kind string
}

func (e *TagError) Error() string {
	switch e.Kind {
	case "NotLoaded":
		return "tag data has not been loaded yet"
	case "NoTagInfo":
		return "file entry does not contain tag info"
	case "MainStructNotFound":
		return "main struct not found in tag"
	case "RecursionDepth":
		return "tag path recursion depth exceeded 3"
	default:
		return "tag error: " + e.Kind
	}
}

// InvalidTagSectionError indicates a datablock's section_type field did
// not decode to a known TagSectionType.
type InvalidTagSectionError struct {
	Found uint16
}

func (e *InvalidTagSectionError) Error() string {
	return fmt.Sprintf("invalid tag section type encountered: %d", e.Found)
}

// InvalidTagStructError indicates a struct entry's struct_type field did
// not decode to a known TagStructType.
type InvalidTagStructError struct {
	Found uint16
}

func (e *InvalidTagStructError) Error() string {
	return fmt.Sprintf("invalid tag struct type encountered: %d", e.Found)
}

// InvalidTagStructLocationError indicates a struct entry's location
// field did not decode to a known TagStructLocation.
type InvalidTagStructLocationError struct {
	Found uint16
}

func (e *InvalidTagStructLocationError) Error() string {
	return fmt.Sprintf("invalid tag struct location encountered: %d", e.Found)
}

// NumEnumError indicates a field declared as an enum kind held a value
// outside its declared variant range.
type NumEnumError struct {
	Kind  string
	Value uint64
}

func (e *NumEnumError) Error() string {
	return fmt.Sprintf("failed to convert primitive %d to enum %s", e.Value, e.Kind)
}

// DecompressionFailedError wraps a negative return code from the
// external decompressor. Code is -1 when the decompressor failed without
// reporting a code (for example in a build without cgo).
type DecompressionFailedError struct {
	Code int
}

func (e *DecompressionFailedError) Error() string {
	return fmt.Sprintf("decompression failed with error code %d", e.Code)
}

// ErrBufferSizeOverflow is returned when the external decompressor
// reports consuming more bytes than its scratch buffer held. FileEntry's
// block readers also return it when a Decompressor fills a different
// number of bytes than the block's expected decompressed size.
var ErrBufferSizeOverflow = fmt.Errorf("decompression buffer size overflow")
