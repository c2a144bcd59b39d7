// Package es2 reads the EmulationStation 2 data files that describe
// platforms, per-game metadata and scraped media.
package es2

import (
	"encoding/xml"
	"fmt"

	"github.com/spf13/afero"
)

// Logger defines the logging needed by the readers in this package.
type Logger interface {
	LogInfof(format string, args ...interface{})
	LogErrorf(format string, args ...interface{})
}

type nopLogger struct{}

func (nopLogger) LogInfof(string, ...interface{})  {}
func (nopLogger) LogErrorf(string, ...interface{}) {}

func orNop(log Logger) Logger {
	if log == nil {
		return nopLogger{}
	}
	return log
}

// firstExisting returns the first of paths that is a regular file.
func firstExisting(fs afero.Fs, paths ...string) (string, bool) {
	for _, p := range paths {
		if p == "" {
			continue
		}
		if info, err := fs.Stat(p); err == nil && info.Mode().IsRegular() {
			return p, true
		}
	}
	return "", false
}

func readXML(fs afero.Fs, path string, v any) error {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := xml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}
