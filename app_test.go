package main

import (
	"binary-play/config"
	"binary-play/constants"
	"binary-play/types"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func newTestApp(t *testing.T, cfg types.AppConfig) (*App, *config.ConfigManager) {
	t.Helper()
	cm := &config.ConfigManager{
		ConfigPath: filepath.Join(t.TempDir(), "config.json"),
		Config:     &cfg,
	}
	return NewApp(cm, log.New(io.Discard)), cm
}

// writeLibraryFixture lays out an EmulationStation data dir and two ROM
// directories, one of them without matching files.
func writeLibraryFixture(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	dataDir := filepath.Join(root, "es")
	write := func(path, content string) {
		os.MkdirAll(filepath.Dir(path), 0o755)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	write(filepath.Join(dataDir, "es_systems.cfg"), `<systemList>
	<system><name>nes</name><fullname>NES</fullname><path>`+filepath.Join(root, "roms", "nes")+`</path><extension>.nes</extension><command>test %BASENAME% = mario</command></system>
	<system><name>gba</name><fullname>Game Boy Advance</fullname><path>`+filepath.Join(root, "roms", "gba")+`</path><extension>.gba</extension></system>
</systemList>`)
	write(filepath.Join(root, "roms", "nes", "mario.nes"), "rom")
	write(filepath.Join(root, "roms", "nes", "unknown.nes"), "rom")
	write(filepath.Join(root, "roms", "gba", "readme.txt"), "text")
	write(filepath.Join(dataDir, "gamelists", "nes", "gamelist.xml"), `<gameList>
	<game><path>./mario.nes</path><name>Super Mario Bros.</name></game>
</gameList>`)
	write(filepath.Join(dataDir, "downloaded_images", "nes", "mario-image.png"), "img")

	return dataDir
}

func TestSaveConfigMerge(t *testing.T) {
	app, cm := newTestApp(t, types.AppConfig{DataDir: "/initial", Workers: 2})

	res := app.SaveConfig(types.AppConfig{Locale: "sv"})
	if res != "Configuration saved successfully!" {
		t.Errorf("Expected success message, got %s", res)
	}

	finalCfg := cm.GetConfig()
	if finalCfg.Locale != "sv" {
		t.Errorf("Expected locale sv, got %s", finalCfg.Locale)
	}
	if finalCfg.DataDir != "/initial" || finalCfg.Workers != 2 {
		t.Errorf("Expected other settings to be preserved, got %+v", finalCfg)
	}
}

func TestScanCommandJSON(t *testing.T) {
	dataDir := writeLibraryFixture(t)
	app, _ := newTestApp(t, types.AppConfig{DataDir: dataDir, Locale: "en", MaxDepth: 8, Workers: 2})

	out := new(bytes.Buffer)
	cmd := newRootCmd(app)
	cmd.SetOut(out)
	cmd.SetArgs([]string{"scan", "--json"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("scan failed: %v", err)
	}

	var lib types.Library
	if err := json.Unmarshal(out.Bytes(), &lib); err != nil {
		t.Fatalf("Invalid JSON output: %v", err)
	}
	if len(lib.Platforms) != 1 || lib.Platforms[0].Name != "nes" {
		t.Fatalf("Expected only nes to remain, got %+v", lib.Platforms)
	}

	games := lib.Platforms[0].Games
	if len(games) != 2 || games[0].Basename != "mario" || games[1].Basename != "unknown" {
		t.Fatalf("Expected mario and unknown, got %+v", games)
	}
	if games[0].Metadata.Title != "Super Mario Bros." || games[0].Assets.BoxFront == "" {
		t.Errorf("Expected mario to be enriched, got %+v", games[0])
	}
	if games[1].Metadata.Title != "" || !games[1].Assets.IsEmpty() {
		t.Errorf("Expected unknown not to be enriched, got %+v", games[1])
	}
	if games[0].Core != "nestopia_libretro" {
		t.Errorf("Expected nestopia core, got %s", games[0].Core)
	}
}

func TestScanCommandListing(t *testing.T) {
	dataDir := writeLibraryFixture(t)
	app, _ := newTestApp(t, types.AppConfig{DataDir: dataDir})

	out := new(bytes.Buffer)
	cmd := newRootCmd(app)
	cmd.SetOut(out)
	cmd.SetArgs([]string{"scan", "--details", "--platform", "nes"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("scan failed: %v", err)
	}

	text := out.String()
	for _, want := range []string{"NES", "Super Mario Bros.", "unknown", "meta", "media"} {
		if !strings.Contains(text, want) {
			t.Errorf("Expected listing to contain %q, got:\n%s", want, text)
		}
	}
}

func TestScanCommandUnknownPlatform(t *testing.T) {
	dataDir := writeLibraryFixture(t)
	app, _ := newTestApp(t, types.AppConfig{DataDir: dataDir})

	cmd := newRootCmd(app)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"scan", "--platform", "gba"})
	if err := cmd.Execute(); err == nil {
		t.Error("Expected an error for a pruned platform")
	}
}

func TestConfigSetCommand(t *testing.T) {
	app, cm := newTestApp(t, types.AppConfig{DataDir: "/es", InspectArchives: true})

	cmd := newRootCmd(app)
	cmd.SetOut(io.Discard)
	cmd.SetArgs([]string{"config", "set", "--workers", "3", "--inspect-archives=false"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("config set failed: %v", err)
	}

	cfg := cm.GetConfig()
	if cfg.Workers != 3 || cfg.InspectArchives || cfg.DataDir != "/es" {
		t.Errorf("Unexpected config after set: %+v", cfg)
	}
}

func TestRenderLibraryEmpty(t *testing.T) {
	app, _ := newTestApp(t, types.AppConfig{})

	out := new(bytes.Buffer)
	app.RenderLibrary(out, &types.Library{}, false)
	if !strings.Contains(out.String(), "No games found.") {
		t.Errorf("Expected empty message, got %q", out.String())
	}
}

func TestLaunchCommand(t *testing.T) {
	if runtime.GOOS == constants.OSWindows {
		t.Skip("uses sh")
	}
	dataDir := writeLibraryFixture(t)
	app, _ := newTestApp(t, types.AppConfig{DataDir: dataDir})

	cmd := newRootCmd(app)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"launch", "nes", "mario"})
	if err := cmd.Execute(); err != nil {
		t.Errorf("launch failed: %v", err)
	}

	if err := app.LaunchGame(context.Background(), "nes", "unknown"); err == nil {
		t.Errorf("Expected the launch command to fail for unknown")
	}
	if err := app.LaunchGame(context.Background(), "nes", "zelda"); err == nil {
		t.Errorf("Expected an error for a missing game")
	}
}
