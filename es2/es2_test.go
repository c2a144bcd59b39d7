package es2

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
)

// MockLogger implements Logger
type MockLogger struct {
	Infos  int
	Errors int
}

func (m *MockLogger) LogInfof(format string, args ...interface{})  { m.Infos++ }
func (m *MockLogger) LogErrorf(format string, args ...interface{}) { m.Errors++ }

func writeFile(t *testing.T, fs afero.Fs, path, content string) {
	t.Helper()
	if err := fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := afero.WriteFile(fs, path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
