package types

// AppConfig holds all application settings
type AppConfig struct {
	DataDir         string `json:"data_dir" env:"BINARYPLAY_DATA_DIR"`                 // EmulationStation data dir (es_systems.cfg, gamelists, downloaded_images)
	Locale          string `json:"locale" env:"BINARYPLAY_LOCALE"`                     // BCP 47 tag used to sort games, empty means use the environment
	InspectArchives bool   `json:"inspect_archives" env:"BINARYPLAY_INSPECT_ARCHIVES"` // Peek inside .zip/.7z/.rar ROMs
	MaxDepth        int    `json:"max_depth" env:"BINARYPLAY_MAX_DEPTH"`               // Deepest ROM subdirectory level scanned
	Workers         int    `json:"workers" env:"BINARYPLAY_WORKERS"`                   // Platforms processed in parallel, 0 means one per CPU
}
