// Package archive lists the contents of compressed ROMs so the playable file
// inside can be recorded without extracting anything.
package archive

import (
	"archive/zip"
	"binary-play/constants"
	"binary-play/retroarch"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/bodgit/sevenzip"
	"github.com/nwaples/rardecode/v2"
)

var (
	// ErrUnsupported is returned for files that are not a known archive type.
	ErrUnsupported = errors.New("unsupported archive type")
	// ErrNoRom is returned when an archive holds no file with a known core.
	ErrNoRom = errors.New("no recognizable ROM in archive")
)

// IsArchive reports whether path has an extension this package can open.
func IsArchive(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case constants.ExtZip, constants.Ext7z, constants.ExtRar:
		return true
	}
	return false
}

// Entries returns the names of the regular files inside the archive, in
// archive order.
func Entries(path string) ([]string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case constants.ExtZip:
		return zipEntries(path)
	case constants.Ext7z:
		return sevenZipEntries(path)
	case constants.ExtRar:
		return rarEntries(path)
	}
	return nil, fmt.Errorf("%s: %w", path, ErrUnsupported)
}

// FirstRom returns the first entry whose extension maps to a libretro core,
// the same entry RetroArch is pointed at with "archive#entry".
func FirstRom(path string) (string, error) {
	entries, err := Entries(path)
	if err != nil {
		return "", err
	}
	for _, name := range entries {
		if retroarch.IsRom(name) {
			return name, nil
		}
	}
	return "", fmt.Errorf("%s: %w", path, ErrNoRom)
}

func zipEntries(path string) ([]string, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open zip archive: %w", err)
	}
	defer r.Close()

	var names []string
	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}
		names = append(names, f.Name)
	}
	return names, nil
}

func sevenZipEntries(path string) ([]string, error) {
	r, err := sevenzip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open 7z archive: %w", err)
	}
	defer r.Close()

	var names []string
	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}
		names = append(names, f.Name)
	}
	return names, nil
}

func rarEntries(path string) ([]string, error) {
	r, err := rardecode.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open rar archive: %w", err)
	}
	defer r.Close()

	var names []string
	for {
		h, err := r.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read rar archive: %w", err)
		}
		if h.IsDir {
			continue
		}
		names = append(names, h.Name)
	}
	return names, nil
}
