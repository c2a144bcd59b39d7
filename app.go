package main

import (
	"binary-play/config"
	"binary-play/configsrv"
	"binary-play/es2"
	"binary-play/launcher"
	"binary-play/library"
	"binary-play/types"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
)

// App struct
type App struct {
	configManager *config.ConfigManager
	configSrv     *configsrv.Service
	logger        *log.Logger
	fs            afero.Fs
}

// NewApp creates a new App application struct
func NewApp(cm *config.ConfigManager, logger *log.Logger) *App {
	a := &App{
		configManager: cm,
		logger:        logger,
		fs:            afero.NewOsFs(),
	}
	a.configSrv = configsrv.New(a)
	return a
}

// ConfigGetConfig returns the current configuration
func (a *App) ConfigGetConfig() types.AppConfig {
	return a.configManager.GetConfig()
}

// ConfigGetStoredConfig returns the configuration as saved on disk
func (a *App) ConfigGetStoredConfig() types.AppConfig {
	return a.configManager.GetStoredConfig()
}

// ConfigSave persists the configuration
func (a *App) ConfigSave(cfg types.AppConfig) error {
	return a.configManager.Save(cfg)
}

// GetWorkers returns how many platforms are processed in parallel
func (a *App) GetWorkers() int {
	return a.configManager.GetConfig().Workers
}

// LogInfof logs at info level
func (a *App) LogInfof(format string, args ...interface{}) {
	a.logger.Infof(format, args...)
}

// LogErrorf logs at error level
func (a *App) LogErrorf(format string, args ...interface{}) {
	a.logger.Errorf(format, args...)
}

// EventsEmit logs pipeline events at debug level
func (a *App) EventsEmit(eventName string, args ...interface{}) {
	a.logger.Debug(eventName, "data", args)
}

// SaveConfig merges and saves the configuration
func (a *App) SaveConfig(cfg types.AppConfig) string {
	msg, dataDirChanged := a.configSrv.SaveConfig(cfg)
	if dataDirChanged {
		a.logger.Info("Data directory changed", "dir", a.configManager.GetConfig().DataDir)
	}
	return msg
}

// NewLibraryService wires the EmulationStation readers into a library service
func (a *App) NewLibraryService() *library.Service {
	cfg := a.configManager.GetConfig()

	scanner := library.NewScanner(a.fs, library.ScanOptions{
		Locale:          library.ResolveLocale(cfg.Locale),
		MaxDepth:        cfg.MaxDepth,
		InspectArchives: cfg.InspectArchives,
	}, a)

	return library.New(
		a,
		es2.NewSystems(a.fs, cfg.DataDir, a),
		scanner,
		es2.NewGamelist(a.fs, cfg.DataDir, a),
		es2.NewAssetFinder(a.fs, cfg.DataDir, a),
		a,
	)
}

// FindLibrary runs a full discovery
func (a *App) FindLibrary(ctx context.Context) *types.Library {
	lib := &types.Library{}
	a.NewLibraryService().Find(ctx, lib)
	return lib
}

// LaunchGame discovers the library and runs the game whose basename matches
func (a *App) LaunchGame(ctx context.Context, platformName, basename string) error {
	lib := a.FindLibrary(ctx)
	platform := lib.Platform(platformName)
	if platform == nil {
		return fmt.Errorf("no games found for platform %q", platformName)
	}
	for _, game := range platform.Games {
		if game.Basename == basename {
			return launcher.New(a).Launch(ctx, platform, game)
		}
	}
	return fmt.Errorf("no game %q on platform %q", basename, platformName)
}

// WriteJSON writes the library as indented JSON
func (a *App) WriteJSON(w io.Writer, lib *types.Library) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(lib); err != nil {
		return fmt.Errorf("failed to encode library: %w", err)
	}
	return nil
}

// RenderLibrary writes a human-readable listing of the library
func (a *App) RenderLibrary(w io.Writer, lib *types.Library, details bool) {
	if len(lib.Platforms) == 0 {
		fmt.Fprintln(w, subtitleStyle.Render("No games found."))
		return
	}
	for _, p := range lib.Platforms {
		fmt.Fprintf(w, "%s %s\n", titleStyle.Render(p.DisplayName), subtitleStyle.Render(fmt.Sprintf("(%s, %d games)", p.Name, len(p.Games))))
		for _, g := range p.Games {
			line := "  " + g.DisplayTitle()
			if details {
				line += " " + markerStyle.Render(gameMarkers(g))
				line += " " + subtitleStyle.Render(g.LaunchPath())
			}
			fmt.Fprintln(w, line)
		}
	}
}

// gameMarkers summarises which enrichment data a game has.
func gameMarkers(g *types.Game) string {
	var marks []string
	if g.Metadata != (types.GameMetadata{}) {
		marks = append(marks, "meta")
	}
	if !g.Assets.IsEmpty() {
		marks = append(marks, "media")
	}
	if g.Core != "" {
		marks = append(marks, g.Core)
	}
	return "[" + strings.Join(marks, " ") + "]"
}
