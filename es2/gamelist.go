package es2

import (
	"binary-play/constants"
	"binary-play/types"
	"binary-play/utils"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/afero"
)

type gameList struct {
	Games []gameEntry `xml:"game"`
}

type gameEntry struct {
	Path        string `xml:"path"`
	Name        string `xml:"name"`
	Desc        string `xml:"desc"`
	Rating      string `xml:"rating"`
	ReleaseDate string `xml:"releasedate"`
	Developer   string `xml:"developer"`
	Publisher   string `xml:"publisher"`
	Genre       string `xml:"genre"`
	Players     string `xml:"players"`
	PlayCount   string `xml:"playcount"`
	LastPlayed  string `xml:"lastplayed"`
	Favorite    string `xml:"favorite"`
}

// Gamelist reads per-game metadata from gamelist.xml files.
type Gamelist struct {
	fs      afero.Fs
	dataDir string
	log     Logger
}

// NewGamelist creates a Gamelist reader. For each platform it uses
// <rom dir>/gamelist.xml, or <dataDir>/gamelists/<platform>/gamelist.xml.
func NewGamelist(fs afero.Fs, dataDir string, log Logger) *Gamelist {
	return &Gamelist{fs: fs, dataDir: dataDir, log: orNop(log)}
}

// ReadMetadata returns the metadata of the platform's games keyed by
// Game.Path. An entry is matched to a game by resolved path, or by file name
// stem when exactly one game has that stem.
func (g *Gamelist) ReadMetadata(platform *types.Platform) map[string]types.GameMetadata {
	path, ok := firstExisting(g.fs,
		filepath.Join(platform.RomDirPath, constants.ESGamelistFile),
		g.platformGamelist(platform.Name),
	)
	if !ok {
		return nil
	}

	var list gameList
	if err := readXML(g.fs, path, &list); err != nil {
		g.log.LogErrorf("ReadMetadata: %v", err)
		return nil
	}

	byPath := make(map[string]*types.Game, len(platform.Games))
	byStem := make(map[string][]*types.Game, len(platform.Games))
	for _, game := range platform.Games {
		byPath[filepath.Clean(game.Path)] = game
		byStem[game.Basename] = append(byStem[game.Basename], game)
	}

	// Exact paths first, so a stem match never shadows one.
	found := make(map[string]types.GameMetadata)
	var unmatched []gameEntry
	for _, entry := range list.Games {
		if strings.TrimSpace(entry.Path) == "" {
			continue
		}
		game, ok := byPath[resolveEntryPath(platform.RomDirPath, entry.Path)]
		if !ok {
			unmatched = append(unmatched, entry)
			continue
		}
		if _, dup := found[game.Path]; !dup {
			found[game.Path] = entry.metadata()
		}
	}
	for _, entry := range unmatched {
		stem := utils.Stem(resolveEntryPath(platform.RomDirPath, entry.Path))
		candidates := byStem[stem]
		if len(candidates) != 1 {
			continue
		}
		if _, dup := found[candidates[0].Path]; !dup {
			found[candidates[0].Path] = entry.metadata()
		}
	}

	g.log.LogInfof("ReadMetadata: %s: %d of %d games matched in %s", platform.Name, len(found), len(platform.Games), path)
	return found
}

func (g *Gamelist) platformGamelist(name string) string {
	if g.dataDir == "" {
		return ""
	}
	return filepath.Join(g.dataDir, constants.ESGamelistsDir, name, constants.ESGamelistFile)
}

// resolveEntryPath makes a gamelist path absolute. Relative paths are kept
// inside the ROM directory.
func resolveEntryPath(romDir, entryPath string) string {
	p := utils.ExpandHome(strings.TrimSpace(entryPath))
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(romDir, utils.SanitizePath(p))
}

func (e gameEntry) metadata() types.GameMetadata {
	md := types.GameMetadata{
		Title:       strings.TrimSpace(e.Name),
		Description: strings.TrimSpace(e.Desc),
		Developer:   strings.TrimSpace(e.Developer),
		Publisher:   strings.TrimSpace(e.Publisher),
		Genre:       strings.TrimSpace(e.Genre),
		Players:     strings.TrimSpace(e.Players),
		ReleaseDate: parseDate(e.ReleaseDate),
		LastPlayed:  parseDate(e.LastPlayed),
		Favorite:    strings.EqualFold(strings.TrimSpace(e.Favorite), "true"),
	}
	if r, err := strconv.ParseFloat(strings.TrimSpace(e.Rating), 64); err == nil {
		md.Rating = min(max(r, 0), 1)
	}
	if n, err := strconv.Atoi(strings.TrimSpace(e.PlayCount)); err == nil && n > 0 {
		md.PlayCount = n
	}
	return md
}

func parseDate(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" || s == "not-a-date-time" {
		return time.Time{}
	}
	t, err := utils.ParseTimestamp(s)
	if err != nil {
		return time.Time{}
	}
	return t
}
