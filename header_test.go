package ausar

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func writeModuleHeader(t *testing.T, h *ModuleHeader) []byte {
	t.Helper()
	buf := &bytes.Buffer{}
	binary.Write(buf, binary.LittleEndian, headerMagic)
	binary.Write(buf, binary.LittleEndian, int32(h.Version))
	binary.Write(buf, binary.LittleEndian, h.ModuleID)
	binary.Write(buf, binary.LittleEndian, h.FileCount)
	binary.Write(buf, binary.LittleEndian, h.loadManifestIndex)
	binary.Write(buf, binary.LittleEndian, h.runtimeLoadMetadataIndex)
	binary.Write(buf, binary.LittleEndian, h.resourceMetadataIndex)
	binary.Write(buf, binary.LittleEndian, h.resourceIndex)
	binary.Write(buf, binary.LittleEndian, h.StringsSize)
	binary.Write(buf, binary.LittleEndian, h.ResourceCount)
	binary.Write(buf, binary.LittleEndian, h.BlockCount)
	binary.Write(buf, binary.LittleEndian, h.BuildVersion)
	binary.Write(buf, binary.LittleEndian, h.HD1Delta)
	binary.Write(buf, binary.LittleEndian, h.DataSize)
	if h.Version >= VersionRelease {
		buf.Write(make([]byte, 8))
	}
	return buf.Bytes()
}

func TestModuleHeaderReadRoundTrip(t *testing.T) {
	want := &ModuleHeader{
		Version:       VersionSeason3,
		ModuleID:      1234,
		FileCount:     3,
		StringsSize:   64,
		ResourceCount: 1,
		BlockCount:    2,
		BuildVersion:  9001,
		HD1Delta:      0,
		DataSize:      4096,
	}
	data := writeModuleHeader(t, want)

	got := &ModuleHeader{}
	if err := got.read(bytes.NewReader(data)); err != nil {
		t.Fatalf("read: %v", err)
	}
	if got.Version != want.Version || got.ModuleID != want.ModuleID || got.FileCount != want.FileCount {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestModuleHeaderWrongMagic(t *testing.T) {
	buf := &bytes.Buffer{}
	binary.Write(buf, binary.LittleEndian, uint32(0xDEADBEEF))
	h := &ModuleHeader{}
	err := h.read(buf)
	if _, ok := err.(*ModuleMagicError); !ok {
		t.Fatalf("expected *ModuleMagicError, got %T: %v", err, err)
	}
}

func TestModuleHeaderWrongVersion(t *testing.T) {
	buf := &bytes.Buffer{}
	binary.Write(buf, binary.LittleEndian, headerMagic)
	binary.Write(buf, binary.LittleEndian, int32(99))
	h := &ModuleHeader{}
	err := h.read(buf)
	if _, ok := err.(*ModuleVersionError); !ok {
		t.Fatalf("expected *ModuleVersionError, got %T: %v", err, err)
	}
}

func TestModuleVersionValid(t *testing.T) {
	for _, v := range []ModuleVersion{VersionFlight1, VersionRelease, VersionCampaignFlight, VersionSeason3} {
		if !v.valid() {
			t.Errorf("%d should be valid", v)
		}
	}
	if ModuleVersion(0).valid() {
		t.Error("0 should not be valid")
	}
}
