package ausar

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Module is a fully-parsed module archive: its header, file entry
// table, resource index table, and block table, plus open file handles
// for itself and (if present) its HD1 side-archive.
type Module struct {
	Header          ModuleHeader
	Files           []FileEntry
	ResourceIndices []uint32
	blocks          []blockEntry

	fileDataOffset uint64
	file           *os.File
	reader         *bufio.Reader

	hd1File   *os.File
	hd1Reader *bufio.Reader
	UseHD1    bool

	decompressor Decompressor
}

// OpenOption customizes Open.
type OpenOption func(*Module)

// WithDecompressor overrides the Decompressor used to expand compressed
// blocks; the default is KrakenDecompressor.
func WithDecompressor(d Decompressor) OpenOption {
	return func(m *Module) { m.decompressor = d }
}

// Open parses the module file at path, including its header, file
// entries, string table, resource indices, and block table, and opens
// its HD1 side-archive (path with the extension replaced by
// "module_hd1") if the header's HD1Delta is non-zero and that file
// exists.
func Open(path string, opts ...OpenOption) (*Module, error) {
	m := &Module{decompressor: KrakenDecompressor{}}
	for _, opt := range opts {
		opt(m)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	m.file = f
	m.reader = bufio.NewReader(f)

	if err := m.Header.read(m.reader); err != nil {
		return nil, err
	}
	if err := m.openHD1(path); err != nil {
		return nil, err
	}

	m.Files = make([]FileEntry, m.Header.FileCount)
	isFlight1 := m.Header.Version == VersionFlight1
	for i := range m.Files {
		if err := m.Files[i].read(m.reader, isFlight1); err != nil {
			return nil, err
		}
	}

	stringsOffset, err := m.streamPosition()
	if err != nil {
		return nil, err
	}
	if err := m.seek(int64(stringsOffset) + int64(m.Header.StringsSize)); err != nil {
		return nil, err
	}

	m.ResourceIndices = make([]uint32, m.Header.ResourceCount)
	for i := range m.ResourceIndices {
		if err := binary.Read(m.reader, binary.LittleEndian, &m.ResourceIndices[i]); err != nil {
			return nil, err
		}
	}
	postResourceOffset, err := m.streamPosition()
	if err != nil {
		return nil, err
	}

	if err := m.seek(int64(stringsOffset)); err != nil {
		return nil, err
	}
	if m.Header.Version <= VersionCampaignFlight {
		for i := range m.Files {
			if err := m.seek(int64(stringsOffset) + int64(m.Files[i].nameOffset)); err != nil {
				return nil, err
			}
			name, err := readNullTerminatedString(m.reader)
			if err != nil {
				return nil, err
			}
			m.Files[i].TagName = name
		}
	} else {
		for i := range m.Files {
			name, err := m.tagPath(i, 0)
			if err != nil {
				return nil, err
			}
			m.Files[i].TagName = name
		}
	}

	if err := m.seek(int64(postResourceOffset)); err != nil {
		return nil, err
	}
	m.blocks, err = readSequence[blockEntry, *blockEntry](m.reader, int(m.Header.BlockCount))
	if err != nil {
		return nil, err
	}

	pos, err := m.streamPosition()
	if err != nil {
		return nil, err
	}
	aligned := (pos/0x1000 + 1) * 0x1000
	if err := m.seek(int64(aligned)); err != nil {
		return nil, err
	}
	m.fileDataOffset, err = m.streamPosition()
	if err != nil {
		return nil, err
	}

	return m, nil
}

func (m *Module) openHD1(path string) error {
	if m.Header.HD1Delta == 0 {
		return nil
	}
	hd1Path := strings.TrimSuffix(path, filepath.Ext(path)) + ".module_hd1"
	f, err := os.Open(hd1Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	m.UseHD1 = true
	m.hd1File = f
	m.hd1Reader = bufio.NewReader(f)
	return nil
}

func (m *Module) streamPosition() (uint64, error) {
	pos, err := m.file.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, err
	}
	buffered := int64(m.reader.Buffered())
	return uint64(pos - buffered), nil
}

func (m *Module) seek(offset int64) error {
	if _, err := m.file.Seek(offset, io.SeekStart); err != nil {
		return err
	}
	m.reader.Reset(m.file)
	return nil
}

// tagPath synthesizes a file entry's tag path for module versions that
// do not store a per-file string table (Season3 onward), recursing
// through parent/child relationships up to a depth of 3.
func (m *Module) tagPath(index, depth int) (string, error) {
	if depth > 3 {
		return "", ErrRecursionDepth
	}
	file := &m.Files[index]
	if file.TagID == -1 && file.ParentIndex != -1 {
		parent := &m.Files[file.ParentIndex]

		childIndex := 0
		start := int(parent.ResourceIndex)
		count := int(parent.ResourceCount)
		for _, ri := range m.ResourceIndices[start : start+count] {
			if int(ri) == index {
				break
			}
			childIndex++
		}

		var parentName string
		var err error
		if parent.TagName == "" || parent.TagID == -1 {
			parentName, err = m.tagPath(int(file.ParentIndex), depth+1)
			if err != nil {
				return "", err
			}
		} else {
			parentName = parent.TagName
		}

		if parent.TagID == -1 {
			return fmt.Sprintf("%s[%d:block]", parentName, childIndex), nil
		}
		return fmt.Sprintf("%s[%d:resource]", parentName, childIndex), nil
	}
	return fmt.Sprintf("%s/%d.%s", file.TagGroup, file.TagID, file.TagGroup), nil
}

// FilesCount returns the number of file entries in the module.
func (m *Module) FilesCount() int {
	return len(m.Files)
}

// ReadTag assembles and, unless flagged raw, parses the file entry at
// index, returning nil if the entry is stored in an unsupported Debug
// module or requires an HD1 stream that was not opened.
func (m *Module) ReadTag(index int) (*FileEntry, error) {
	file := &m.Files[index]
	if file.DataOffsetFlags&OffsetDebug != 0 {
		return nil, nil
	}

	if file.DataOffsetFlags&OffsetUseHD1 != 0 {
		if m.hd1File == nil {
			return nil, nil
		}
		offset := m.Header.HD1Delta
		if m.Header.Version <= VersionCampaignFlight {
			offset += m.Header.HD1Delta
		}
		fileOffset := file.dataOffset - offset
		if err := file.loadTag(m.hd1File, fileOffset, m.blocks, m.Header.Version, m.decompressor); err != nil {
			return nil, err
		}
		return file, nil
	}

	fileOffset := m.fileDataOffset + file.dataOffset
	if err := file.loadTag(m.file, fileOffset, m.blocks, m.Header.Version, m.decompressor); err != nil {
		return nil, err
	}
	return file, nil
}

// FindTagByID returns the file entry whose TagID matches globalID, or
// nil if none is found, reading its tag data as ReadTag does.
func (m *Module) FindTagByID(globalID int32) (*FileEntry, error) {
	for i := range m.Files {
		if m.Files[i].TagID == globalID {
			return m.ReadTag(i)
		}
	}
	return nil, nil
}

// Close releases the module's open file handles.
func (m *Module) Close() error {
	var err error
	if m.hd1File != nil {
		err = m.hd1File.Close()
	}
	if cerr := m.file.Close(); cerr != nil && err == nil {
		err = cerr
	}
	return err
}
