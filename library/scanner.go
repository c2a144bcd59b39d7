package library

import (
	"binary-play/archive"
	"binary-play/retroarch"
	"binary-play/types"
	"binary-play/utils"
	"context"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// DirState describes what the scanner found at a platform's ROM directory.
type DirState int

const (
	// DirOK means at least one game was found.
	DirOK DirState = iota
	// DirEmpty means the directory exists but holds no matching files.
	DirEmpty
	// DirMissing means the directory does not exist or cannot be read.
	DirMissing
)

// String returns a human-readable state
func (d DirState) String() string {
	switch d {
	case DirOK:
		return "ok"
	case DirEmpty:
		return "not installed"
	case DirMissing:
		return "misconfigured"
	default:
		return "unknown"
	}
}

// ScanOptions configures a Scanner. The values are fixed for its lifetime.
type ScanOptions struct {
	Locale          language.Tag
	MaxDepth        int
	InspectArchives bool
}

// Scanner finds the game files of a platform.
type Scanner struct {
	fs   afero.Fs
	opts ScanOptions
	ui   UIProvider
}

// NewScanner creates a Scanner reading from fs.
func NewScanner(fs afero.Fs, opts ScanOptions, ui UIProvider) *Scanner {
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = defaultMaxDepth
	}
	if ui == nil {
		ui = nopUI{}
	}
	return &Scanner{fs: fs, opts: opts, ui: ui}
}

// Scan walks the platform's ROM directory, following symbolic links, and
// returns one Game per readable file matching any of the platform's filters,
// sorted by Basename for the scanner's locale. The platform is not modified.
//
// Scan panics if the platform has no ROM directory or no filters.
func (s *Scanner) Scan(ctx context.Context, platform *types.Platform) ([]*types.Game, DirState) {
	if platform == nil {
		panic("library: Scan called with a nil platform")
	}
	if platform.RomDirPath == "" {
		panic("library: platform " + platform.Name + " has no ROM directory")
	}
	if len(platform.RomFilters) == 0 {
		panic("library: platform " + platform.Name + " has no ROM filters")
	}

	info, err := s.fs.Stat(platform.RomDirPath)
	if err != nil || !info.IsDir() {
		return nil, DirMissing
	}

	w := &walker{
		scanner: s,
		filters: lowerAll(platform.RomFilters),
		visited: make(map[string]struct{}),
	}
	w.walk(ctx, platform.RomDirPath, 0)

	games := make([]*types.Game, 0, len(w.paths))
	for _, path := range w.paths {
		games = append(games, s.newGame(path, platform.Name))
	}
	s.sortGames(games)

	if len(games) == 0 {
		return games, DirEmpty
	}
	return games, DirOK
}

func (s *Scanner) newGame(path, platformName string) *types.Game {
	game := &types.Game{
		Path:         path,
		Basename:     utils.Stem(path),
		PlatformName: platformName,
		Core:         retroarch.CoreFor(path),
	}
	if s.opts.InspectArchives && archive.IsArchive(path) {
		entry, err := archive.FirstRom(path)
		if err != nil {
			s.ui.LogInfof("Scan: %s: %v", path, err)
			return game
		}
		game.ArchiveEntry = entry
		game.Core = retroarch.CoreFor(entry)
	}
	return game
}

// sortGames orders games once, after the walk. Ties fall back to the full
// path so the result does not depend on traversal order.
func (s *Scanner) sortGames(games []*types.Game) {
	c := collate.New(s.opts.Locale)
	slices.SortFunc(games, func(a, b *types.Game) int {
		if n := c.CompareString(a.Basename, b.Basename); n != 0 {
			return n
		}
		return strings.Compare(a.Path, b.Path)
	})
}

// walker holds the state of a single Scan.
type walker struct {
	scanner *Scanner
	filters []string
	visited map[string]struct{}
	paths   []string
}

func (w *walker) walk(ctx context.Context, dir string, depth int) {
	if ctx.Err() != nil || depth > w.scanner.opts.MaxDepth {
		return
	}
	key := w.realPath(dir)
	if _, seen := w.visited[key]; seen {
		return
	}
	w.visited[key] = struct{}{}

	entries, err := afero.ReadDir(w.scanner.fs, dir)
	if err != nil {
		w.scanner.ui.LogErrorf("Scan: cannot read %s: %v", dir, err)
		return
	}

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		info := entry
		if entry.Mode()&os.ModeSymlink != 0 {
			// Stat follows the link; dangling links are skipped.
			if info, err = w.scanner.fs.Stat(path); err != nil {
				continue
			}
		}

		switch {
		case info.IsDir():
			w.walk(ctx, path, depth+1)
		case info.Mode().IsRegular():
			if w.matches(entry.Name()) && w.readable(path) {
				w.paths = append(w.paths, path)
			}
		}
	}
}

// matches reports whether name matches any filter, ignoring case.
// Malformed patterns never match.
func (w *walker) matches(name string) bool {
	name = strings.ToLower(name)
	for _, pattern := range w.filters {
		if ok, err := doublestar.Match(pattern, name); err == nil && ok {
			return true
		}
	}
	return false
}

func (w *walker) readable(path string) bool {
	f, err := w.scanner.fs.Open(path)
	if err != nil {
		return false
	}
	f.Close()
	return true
}

// realPath resolves symbolic links on the OS filesystem so that a directory
// reached through two different links is only walked once.
func (w *walker) realPath(dir string) string {
	if _, ok := w.scanner.fs.(*afero.OsFs); ok {
		if resolved, err := filepath.EvalSymlinks(dir); err == nil {
			return resolved
		}
	}
	return filepath.Clean(dir)
}

func lowerAll(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strings.ToLower(v)
	}
	return out
}
