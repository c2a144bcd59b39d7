package types

// Platform represents a configured game system and the games found for it.
type Platform struct {
	Name          string   `json:"name"`
	DisplayName   string   `json:"display_name"`
	RomDirPath    string   `json:"rom_dir_path"`
	RomFilters    []string `json:"rom_filters"`
	LaunchCommand string   `json:"launch_command,omitempty"`
	Theme         string   `json:"theme,omitempty"`
	Games         []*Game  `json:"games"`
}

// Library is the result of a discovery run.
type Library struct {
	Platforms []*Platform `json:"platforms"`
}

// Platform returns the platform with the given name, or nil.
func (l *Library) Platform(name string) *Platform {
	for _, p := range l.Platforms {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// GameCount returns the number of games across all platforms.
func (l *Library) GameCount() int {
	n := 0
	for _, p := range l.Platforms {
		n += len(p.Games)
	}
	return n
}
