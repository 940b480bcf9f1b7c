package ausar

import "testing"

func TestTagPathSimpleFile(t *testing.T) {
	m := &Module{
		Files: []FileEntry{
			{TagID: 5, TagGroup: "bitm", ParentIndex: -1},
		},
	}
	got, err := m.tagPath(0, 0)
	if err != nil {
		t.Fatalf("tagPath: %v", err)
	}
	if got != "bitm/5.bitm" {
		t.Fatalf("got %q", got)
	}
}

func TestTagPathResourceChildRecursesToParent(t *testing.T) {
	m := &Module{
		Files: []FileEntry{
			{TagID: 5, TagGroup: "bitm", ParentIndex: -1, ResourceIndex: 0, ResourceCount: 1},
			{TagID: -1, ParentIndex: 0},
		},
		ResourceIndices: []uint32{1},
	}
	got, err := m.tagPath(1, 0)
	if err != nil {
		t.Fatalf("tagPath: %v", err)
	}
	if got != "bitm/5.bitm[0:resource]" {
		t.Fatalf("got %q", got)
	}
}

func TestTagPathDepthExceeded(t *testing.T) {
	m := &Module{
		Files: []FileEntry{{TagID: -1, ParentIndex: 0}},
	}
	_, err := m.tagPath(0, 4)
	if err != ErrRecursionDepth {
		t.Fatalf("expected ErrRecursionDepth, got %v", err)
	}
}

func TestFilesCount(t *testing.T) {
	m := &Module{Files: make([]FileEntry, 7)}
	if m.FilesCount() != 7 {
		t.Fatalf("got %d", m.FilesCount())
	}
}

func TestFindTagByIDNotFound(t *testing.T) {
	m := &Module{Files: []FileEntry{{TagID: 1}, {TagID: 2}}}
	fe, err := m.FindTagByID(99)
	if err != nil {
		t.Fatalf("FindTagByID: %v", err)
	}
	if fe != nil {
		t.Fatalf("expected nil, got %+v", fe)
	}
}

func TestReadTagDebugOffsetReturnsNil(t *testing.T) {
	m := &Module{
		Files: []FileEntry{{DataOffsetFlags: OffsetDebug}},
	}
	fe, err := m.ReadTag(0)
	if err != nil {
		t.Fatalf("ReadTag: %v", err)
	}
	if fe != nil {
		t.Fatalf("expected nil for a Debug-module entry, got %+v", fe)
	}
}

func TestReadTagHD1WithoutHD1FileReturnsNil(t *testing.T) {
	m := &Module{
		Files: []FileEntry{{DataOffsetFlags: OffsetUseHD1}},
	}
	fe, err := m.ReadTag(0)
	if err != nil {
		t.Fatalf("ReadTag: %v", err)
	}
	if fe != nil {
		t.Fatalf("expected nil without an opened HD1 stream, got %+v", fe)
	}
}
