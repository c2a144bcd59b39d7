package constants

// OS Names
const (
	OSWindows = "windows"
)

// Event Names
const (
	EventScanProgress = "scan-progress"
	EventLibraryReady = "library-ready"
	EventGameStarted  = "game-started"
	EventGameExited   = "game-exited"
)

// Path Components
const (
	AppDir    = ".binary-play"
	ConfigDir = "config"
)

// EmulationStation layout
const (
	ESDataDir           = ".emulationstation"
	ESSystemsFile       = "es_systems.cfg"
	ESGlobalSystemsFile = "/etc/emulationstation/es_systems.cfg"
	ESGamelistFile      = "gamelist.xml"
	ESGamelistsDir      = "gamelists"
	ESDownloadedImages  = "downloaded_images"
	ESMediaDir          = "media"
)

// Scan defaults
const (
	DefaultMaxDepth = 32
)

// Archive extensions the scanner can look inside
const (
	ExtZip = ".zip"
	Ext7z  = ".7z"
	ExtRar = ".rar"
)
