package ausar

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func writeFileEntryNonFlight1(t *testing.T) []byte {
	t.Helper()
	buf := &bytes.Buffer{}
	binary.Write(buf, binary.LittleEndian, uint8(0))                   // unknown
	binary.Write(buf, binary.LittleEndian, uint8(FlagRawFile))         // flags
	binary.Write(buf, binary.LittleEndian, uint16(0))                  // blockCount
	binary.Write(buf, binary.LittleEndian, int32(-1))                  // blockIndex
	binary.Write(buf, binary.LittleEndian, int32(-1))                  // ResourceIndex
	buf.WriteString("pmat")                                            // TagGroup (reversed on read)
	binary.Write(buf, binary.LittleEndian, uint64(0x0000_1234_5678))   // dataOffset / flags
	binary.Write(buf, binary.LittleEndian, uint32(5))                  // TotalCompressedSize
	binary.Write(buf, binary.LittleEndian, uint32(5))                  // TotalUncompressedSize
	binary.Write(buf, binary.LittleEndian, int32(42))                  // TagID
	binary.Write(buf, binary.LittleEndian, uint32(0))                  // UncompressedHeaderSize
	binary.Write(buf, binary.LittleEndian, uint32(0))                  // UncompressedTagDataSize
	binary.Write(buf, binary.LittleEndian, uint32(0))                  // UncompressedResourceDataSize
	binary.Write(buf, binary.LittleEndian, uint32(0))                  // UncompressedActualResourceSize
	binary.Write(buf, binary.LittleEndian, uint8(0))                   // headerAlignment
	binary.Write(buf, binary.LittleEndian, uint8(0))                   // tagDataAlignment
	binary.Write(buf, binary.LittleEndian, uint8(0))                   // resourceDataAlignment
	binary.Write(buf, binary.LittleEndian, uint8(0))                   // actualResourceDataAlignment
	binary.Write(buf, binary.LittleEndian, uint32(0))                  // nameOffset
	binary.Write(buf, binary.LittleEndian, int32(-1))                  // ParentIndex
	buf.Write(make([]byte, 16))                                        // AssetHash
	binary.Write(buf, binary.LittleEndian, int32(0))                   // ResourceCount
	buf.Write(make([]byte, 4))                                         // trailing reserved
	return buf.Bytes()
}

func TestFileEntryReadNonFlight1(t *testing.T) {
	data := writeFileEntryNonFlight1(t)
	var fe FileEntry
	if err := fe.read(bytes.NewReader(data), false); err != nil {
		t.Fatalf("read: %v", err)
	}
	if fe.TagGroup != "tamp" {
		t.Fatalf("got TagGroup %q", fe.TagGroup)
	}
	if fe.Flags&FlagRawFile == 0 {
		t.Fatalf("expected FlagRawFile set, got %v", fe.Flags)
	}
	if fe.TagID != 42 {
		t.Fatalf("got TagID %d", fe.TagID)
	}
	if fe.dataOffset != 0x0000_1234_5678 {
		t.Fatalf("got dataOffset %#x", fe.dataOffset)
	}
}

func TestFileEntryLoadTagRawFileSingleBlock(t *testing.T) {
	fe := &FileEntry{
		Flags:                 FlagRawFile,
		TotalCompressedSize:   5,
		TotalUncompressedSize: 5,
	}
	r := bytes.NewReader([]byte("hello"))
	if err := fe.loadTag(r, 0, nil, VersionSeason3, KrakenDecompressor{}); err != nil {
		t.Fatalf("loadTag: %v", err)
	}
	if !fe.Loaded {
		t.Fatal("expected Loaded true")
	}
	if fe.TagInfo != nil {
		t.Fatal("raw files should not parse a TagInfo")
	}
	raw, err := fe.RawData(true)
	if err != nil {
		t.Fatalf("RawData: %v", err)
	}
	if string(raw) != "hello" {
		t.Fatalf("got %q", raw)
	}
}

func TestFileEntryLoadTagIsIdempotent(t *testing.T) {
	fe := &FileEntry{Loaded: true}
	if err := fe.loadTag(bytes.NewReader(nil), 0, nil, VersionSeason3, KrakenDecompressor{}); err != nil {
		t.Fatalf("loadTag on already-loaded entry should be a no-op: %v", err)
	}
}

func TestReadMetadataNotLoaded(t *testing.T) {
	fe := &FileEntry{}
	if _, err := ReadMetadata[leafStruct, *leafStruct](fe); err != ErrNotLoaded {
		t.Fatalf("expected ErrNotLoaded, got %v", err)
	}
}

func TestReadMetadataNoTagInfo(t *testing.T) {
	fe := &FileEntry{}
	fe.data = []byte{1, 2, 3}
	if _, err := ReadMetadata[leafStruct, *leafStruct](fe); err != ErrNoTagInfo {
		t.Fatalf("expected ErrNoTagInfo, got %v", err)
	}
}

func TestFileEntryLoadTagBlockRangeOverrunsTable(t *testing.T) {
	fe := &FileEntry{
		blockCount:            2,
		blockIndex:            0,
		TotalUncompressedSize: 10,
	}
	blocks := []blockEntry{{decompressedSize: 5}}
	r := bytes.NewReader(make([]byte, 32))
	err := fe.loadTag(r, 0, blocks, VersionSeason3, KrakenDecompressor{})
	rangeErr, ok := err.(*BlockRangeError)
	if !ok {
		t.Fatalf("expected *BlockRangeError, got %T: %v", err, err)
	}
	if rangeErr.TableSize != 1 {
		t.Fatalf("got TableSize %d", rangeErr.TableSize)
	}
}

func TestRawDataNotLoaded(t *testing.T) {
	fe := &FileEntry{}
	if _, err := fe.RawData(true); err != ErrNotLoaded {
		t.Fatalf("expected ErrNotLoaded, got %v", err)
	}
}
