package types

import "time"

// Game represents a single ROM file discovered on disk.
type Game struct {
	Path         string `json:"path"`
	Basename     string `json:"basename"`      // file name without directory and extension
	PlatformName string `json:"platform_name"` // Name of the owning Platform, see Library.Platform
	Core         string `json:"core,omitempty"`
	ArchiveEntry string `json:"archive_entry,omitempty"` // ROM inside a .zip/.7z/.rar, if any

	Metadata GameMetadata `json:"metadata"`
	Assets   GameAssets   `json:"assets"`
}

// LaunchPath returns the path RetroArch expects, path#entry for archives.
func (g *Game) LaunchPath() string {
	if g.ArchiveEntry == "" {
		return g.Path
	}
	return g.Path + "#" + g.ArchiveEntry
}

// DisplayTitle returns the metadata title, falling back to the file basename.
func (g *Game) DisplayTitle() string {
	if g.Metadata.Title != "" {
		return g.Metadata.Title
	}
	return g.Basename
}

// GameMetadata holds descriptive fields read from a gamelist.
// Zero values mean the field was not found.
type GameMetadata struct {
	Title       string    `json:"title,omitempty"`
	Description string    `json:"description,omitempty"`
	Rating      float64   `json:"rating,omitempty"` // 0..1
	ReleaseDate time.Time `json:"release_date,omitzero"`
	Developer   string    `json:"developer,omitempty"`
	Publisher   string    `json:"publisher,omitempty"`
	Genre       string    `json:"genre,omitempty"`
	Players     string    `json:"players,omitempty"`
	PlayCount   int       `json:"play_count,omitempty"`
	LastPlayed  time.Time `json:"last_played,omitzero"`
	Favorite    bool      `json:"favorite,omitempty"`
}

// GameAssets holds absolute paths to media files. Empty means not found.
type GameAssets struct {
	BoxFront    string `json:"box_front,omitempty"`
	BoxBack     string `json:"box_back,omitempty"`
	BoxSpine    string `json:"box_spine,omitempty"`
	Cartridge   string `json:"cartridge,omitempty"`
	Logo        string `json:"logo,omitempty"`
	Marquee     string `json:"marquee,omitempty"`
	Screenshot  string `json:"screenshot,omitempty"`
	TitleScreen string `json:"title_screen,omitempty"`
	Background  string `json:"background,omitempty"`
	Video       string `json:"video,omitempty"`
	Music       string `json:"music,omitempty"`
}

// IsEmpty reports whether no asset was found.
func (a GameAssets) IsEmpty() bool {
	return a == GameAssets{}
}
