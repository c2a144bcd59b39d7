package utils

import (
	"os"
	"path/filepath"
	"strings"
)

// SanitizePath ensures a path read from an external file is safe to join under a local root.
// It removes any directory traversal segments (..) and ensures the path is clean.
func SanitizePath(path string) string {
	// 1. Clean the path to resolve any internal .. or .
	p := filepath.Clean(path)

	// 2. Remove Windows volume names
	if vol := filepath.VolumeName(p); vol != "" {
		p = strings.TrimPrefix(p, vol)
	}

	// 3. Convert to forward slashes for consistent handling during sanitization
	p = filepath.ToSlash(p)

	// 4. If the path starts with .. or /, it's trying to escape.
	// Clean will keep a leading .. if the path is relative and starts with it.
	// We want to treat the path as a relative path from our own root.
	for strings.HasPrefix(p, "../") || p == ".." {
		p = strings.TrimPrefix(p, "../")
		if p == ".." {
			p = "."
		}
	}

	// Also remove leading slash to force relativity
	p = strings.TrimPrefix(p, "/")

	if p == "" || p == "." {
		return "."
	}

	return filepath.FromSlash(p)
}

// ExpandHome replaces a leading "~" with the user's home directory.
// Paths without a leading "~" are returned unchanged.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") && !strings.HasPrefix(path, `~\`) {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// Stem returns the file name of path without its directory and extension.
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
