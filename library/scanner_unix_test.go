//go:build unix

package library

import (
	"context"
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"binary-play/types"

	"github.com/spf13/afero"
)

func TestScanSkipsNonRegularFiles(t *testing.T) {
	roms := t.TempDir()
	os.WriteFile(filepath.Join(roms, "a.nes"), []byte("rom"), 0o644)
	if err := syscall.Mkfifo(filepath.Join(roms, "x.nes"), 0o644); err != nil {
		t.Skipf("fifos not supported: %v", err)
	}

	s := NewScanner(afero.NewOsFs(), ScanOptions{}, nil)
	games, state := s.Scan(context.Background(), &types.Platform{Name: "nes", RomDirPath: roms, RomFilters: []string{"*.nes"}})

	if state != DirOK {
		t.Fatalf("Expected DirOK, got %s", state)
	}
	expected := []string{"a"}
	if got := basenames(games); !equalStrings(got, expected) {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestScanSkipsUnreadableFiles(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root can read files without permission bits")
	}
	roms := t.TempDir()
	os.WriteFile(filepath.Join(roms, "a.nes"), []byte("rom"), 0o644)
	if err := os.WriteFile(filepath.Join(roms, "locked.nes"), []byte("rom"), 0o000); err != nil {
		t.Fatal(err)
	}

	s := NewScanner(afero.NewOsFs(), ScanOptions{}, nil)
	games, _ := s.Scan(context.Background(), &types.Platform{Name: "nes", RomDirPath: roms, RomFilters: []string{"*.nes"}})

	expected := []string{"a"}
	if got := basenames(games); !equalStrings(got, expected) {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}
