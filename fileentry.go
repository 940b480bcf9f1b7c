package ausar

import (
	"bytes"
	"encoding/binary"
	"io"
)

// FileEntryFlags determines how a FileEntry's payload should be read.
type FileEntryFlags uint8

const (
	// FlagCompressed means the file's block(s) are Kraken-compressed.
	FlagCompressed FileEntryFlags = 1 << 0
	// FlagHasBlocks means the file is assembled from multiple blocks in
	// the module's block table rather than a single contiguous run.
	FlagHasBlocks FileEntryFlags = 1 << 1
	// FlagRawFile means the file has no tag header and should not be
	// parsed as a TagFile.
	FlagRawFile FileEntryFlags = 1 << 2
)

// DataOffsetType describes where a FileEntry's data actually lives,
// packed into the top two bytes of its on-disk data_offset field.
type DataOffsetType uint16

const (
	// OffsetUseSelf means the data is in this module's own block table.
	OffsetUseSelf DataOffsetType = 0
	// OffsetUseHD1 means the data lives in the module's HD1 side-archive.
	OffsetUseHD1 DataOffsetType = 1 << 0
	// OffsetDebug means the data lives in a Debug module, which is not
	// currently read.
	OffsetDebug DataOffsetType = 1 << 1
)

// FileEntry is a module's per-file metadata record: compression and
// layout information, global tag ID, resource linkage, and (once loaded)
// the assembled payload and parsed TagFile.
type FileEntry struct {
	unknown                     uint8
	Flags                       FileEntryFlags
	blockCount                  uint16
	blockIndex                  int32
	ResourceIndex               int32
	TagGroup                    string
	dataOffset                  uint64
	DataOffsetFlags             DataOffsetType
	TotalCompressedSize         uint32
	TotalUncompressedSize       uint32
	TagID                       int32
	UncompressedHeaderSize      uint32
	UncompressedTagDataSize     uint32
	UncompressedResourceDataSize uint32
	UncompressedActualResourceSize uint32
	headerAlignment             uint8
	tagDataAlignment            uint8
	resourceDataAlignment       uint8
	actualResourceDataAlignment uint8
	nameOffset                  uint32
	ParentIndex                 int32
	AssetHash                   [16]byte
	ResourceCount               int32

	data    []byte
	TagInfo *TagFile
	Loaded  bool
	TagName string
}

func (fe *FileEntry) read(r io.Reader, isFlight1 bool) error {
	if isFlight1 {
		var resourceCount, blockCount uint16
		fields := []any{&fe.nameOffset, &fe.ParentIndex}
		for _, f := range fields {
			if err := binary.Read(r, binary.LittleEndian, f); err != nil {
				return err
			}
		}
		if err := binary.Read(r, binary.LittleEndian, &resourceCount); err != nil {
			return err
		}
		fe.ResourceCount = int32(resourceCount)
		if err := binary.Read(r, binary.LittleEndian, &blockCount); err != nil {
			return err
		}
		fe.blockCount = blockCount
		fields = []any{&fe.ResourceIndex, &fe.blockIndex}
		for _, f := range fields {
			if err := binary.Read(r, binary.LittleEndian, f); err != nil {
				return err
			}
		}
	} else {
		if err := binary.Read(r, binary.LittleEndian, &fe.unknown); err != nil {
			return err
		}
		var flags uint8
		if err := binary.Read(r, binary.LittleEndian, &flags); err != nil {
			return err
		}
		fe.Flags = FileEntryFlags(flags)
		fields := []any{&fe.blockCount, &fe.blockIndex, &fe.ResourceIndex}
		for _, f := range fields {
			if err := binary.Read(r, binary.LittleEndian, f); err != nil {
				return err
			}
		}
	}

	tagGroup, err := readFixedString(r, 4)
	if err != nil {
		return err
	}
	fe.TagGroup = reverseString(tagGroup)

	var rawOffset uint64
	if err := binary.Read(r, binary.LittleEndian, &rawOffset); err != nil {
		return err
	}
	fe.dataOffset = rawOffset & 0x0000_FFFF_FFFF_FFFF
	fe.DataOffsetFlags = DataOffsetType(rawOffset >> 48)

	fields := []any{&fe.TotalCompressedSize, &fe.TotalUncompressedSize}
	for _, f := range fields {
		if err := binary.Read(r, binary.LittleEndian, f); err != nil {
			return err
		}
	}

	if isFlight1 {
		if _, err := io.ReadFull(r, fe.AssetHash[:]); err != nil {
			return err
		}
	}

	fields = []any{
		&fe.TagID,
		&fe.UncompressedHeaderSize, &fe.UncompressedTagDataSize,
		&fe.UncompressedResourceDataSize, &fe.UncompressedActualResourceSize,
		&fe.headerAlignment, &fe.tagDataAlignment,
		&fe.resourceDataAlignment, &fe.actualResourceDataAlignment,
	}
	for _, f := range fields {
		if err := binary.Read(r, binary.LittleEndian, f); err != nil {
			return err
		}
	}

	if isFlight1 {
		if _, err := io.CopyN(io.Discard, r, 1); err != nil {
			return err
		}
		if err := binary.Read(r, binary.LittleEndian, &fe.unknown); err != nil {
			return err
		}
		var flags uint8
		if err := binary.Read(r, binary.LittleEndian, &flags); err != nil {
			return err
		}
		fe.Flags = FileEntryFlags(flags)
		if _, err := io.CopyN(io.Discard, r, 1); err != nil {
			return err
		}
	} else {
		if err := binary.Read(r, binary.LittleEndian, &fe.nameOffset); err != nil {
			return err
		}
		if err := binary.Read(r, binary.LittleEndian, &fe.ParentIndex); err != nil {
			return err
		}
		if _, err := io.ReadFull(r, fe.AssetHash[:]); err != nil {
			return err
		}
		if err := binary.Read(r, binary.LittleEndian, &fe.ResourceCount); err != nil {
			return err
		}
	}

	_, err = io.CopyN(io.Discard, r, 4)
	return err
}

// loadTag assembles the file's payload (joining multiple blocks and
// decompressing as required), then, unless the RawFile flag is set,
// parses the resulting buffer as a TagFile.
func (fe *FileEntry) loadTag(r io.ReadSeeker, fileOffset uint64, blocks []blockEntry, version ModuleVersion, dec Decompressor) error {
	if fe.Loaded {
		return nil
	}

	data := make([]byte, fe.TotalUncompressedSize)
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return err
	}

	if fe.blockCount != 0 {
		if err := fe.readMultipleBlocks(r, blocks, fileOffset, data, dec); err != nil {
			return err
		}
	} else {
		if err := fe.readSingleBlock(r, fileOffset, data, dec); err != nil {
			return err
		}
	}
	fe.data = data

	if fe.Flags&FlagRawFile == 0 {
		// "psod" tags never carry a string table, in any module version;
		// the header's own StringTableSize field already reflects that,
		// so no version-conditioned branch is needed here.
		tf, err := readTagFile(bytes.NewReader(data))
		if err != nil {
			return err
		}
		fe.TagInfo = tf
	}

	fe.Loaded = true
	return nil
}

func (fe *FileEntry) readMultipleBlocks(r io.ReadSeeker, blocks []blockEntry, fileOffset uint64, data []byte, dec Decompressor) error {
	if fe.blockIndex < 0 {
		return &NegativeBlockIndexError{Value: fe.blockIndex}
	}
	first := int(fe.blockIndex)
	last := first + int(fe.blockCount)
	if last > len(blocks) {
		return &BlockRangeError{BlockIndex: fe.blockIndex, BlockCount: fe.blockCount, TableSize: len(blocks)}
	}

	if _, err := r.Seek(int64(fileOffset), io.SeekStart); err != nil {
		return err
	}
	initialOffset, err := r.Seek(0, io.SeekCurrent)
	if err != nil {
		return err
	}

	for _, block := range blocks[first:last] {
		if _, err := r.Seek(initialOffset+int64(block.compressedOffset), io.SeekStart); err != nil {
			return err
		}
		if block.isCompressed {
			if err := readCompressedBlock(r, &block, data, dec); err != nil {
				return err
			}
		} else {
			if err := readUncompressedBlock(r, &block, data); err != nil {
				return err
			}
		}
	}
	return nil
}

func (fe *FileEntry) readSingleBlock(r io.ReadSeeker, fileOffset uint64, data []byte, dec Decompressor) error {
	if _, err := r.Seek(int64(fileOffset), io.SeekStart); err != nil {
		return err
	}
	compressed := make([]byte, fe.TotalCompressedSize)
	if _, err := io.ReadFull(r, compressed); err != nil {
		return err
	}
	if len(compressed) == len(data) {
		copy(data, compressed)
		return nil
	}
	n, err := dec.Decompress(compressed, data, len(data))
	if err != nil {
		return err
	}
	if n != len(data) {
		return ErrBufferSizeOverflow
	}
	return nil
}

func readUncompressedBlock(r io.Reader, block *blockEntry, data []byte) error {
	dst := data[block.decompressedOffset : block.decompressedOffset+block.compressedSize]
	_, err := io.ReadFull(r, dst)
	return err
}

func readCompressedBlock(r io.Reader, block *blockEntry, data []byte, dec Decompressor) error {
	compressed := make([]byte, block.compressedSize)
	if _, err := io.ReadFull(r, compressed); err != nil {
		return err
	}
	dst := data[block.decompressedOffset : block.decompressedOffset+block.decompressedSize]
	n, err := dec.Decompress(compressed, dst, len(dst))
	if err != nil {
		return err
	}
	if n != len(dst) {
		return ErrBufferSizeOverflow
	}
	return nil
}

// ReadMetadata decodes the file's main tag structure into a new T,
// recursively resolving nested field blocks.
func ReadMetadata[T any, PT interface {
	*T
	TagStructure
}](fe *FileEntry) (T, error) {
	var out T
	if fe.data == nil {
		return out, ErrNotLoaded
	}
	if fe.TagInfo == nil {
		return out, ErrNoTagInfo
	}
	if err := fe.TagInfo.Load(PT(&out)); err != nil {
		return out, err
	}
	return out, nil
}

// RawData returns the file's assembled payload. If includeHeader is
// false, the tag header bytes at the front of the buffer are omitted.
func (fe *FileEntry) RawData(includeHeader bool) ([]byte, error) {
	if fe.data == nil {
		return nil, ErrNotLoaded
	}
	if includeHeader {
		return fe.data, nil
	}
	if int(fe.UncompressedHeaderSize) > len(fe.data) {
		return nil, ErrNotLoaded
	}
	return fe.data[fe.UncompressedHeaderSize:], nil
}
