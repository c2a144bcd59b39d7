package launcher

import (
	"binary-play/constants"
	"binary-play/types"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"mvdan.cc/sh/v3/syntax"
)

// Placeholders understood in a platform's launch command.
const (
	PlaceholderRom      = "%ROM%"      // shell-quoted ROM path
	PlaceholderRomRaw   = "%ROM_RAW%"  // unquoted ROM path
	PlaceholderBasename = "%BASENAME%" // file name without extension
)

// ErrNoCommand is returned for platforms without a launch command.
var ErrNoCommand = errors.New("platform has no launch command")

// UIProvider defines the UI interactions needed for launching games.
type UIProvider interface {
	LogInfof(format string, args ...interface{})
	EventsEmit(eventName string, args ...interface{})
}

// Launcher runs games with their platform's launch command.
type Launcher struct {
	ui UIProvider
}

// New creates a new Launcher.
func New(ui UIProvider) *Launcher {
	return &Launcher{ui: ui}
}

// BuildCommand expands the platform's launch command for game and wraps it
// in the system shell.
func BuildCommand(ctx context.Context, platform *types.Platform, game *types.Game) (*exec.Cmd, error) {
	if strings.TrimSpace(platform.LaunchCommand) == "" {
		return nil, fmt.Errorf("%s: %w", platform.Name, ErrNoCommand)
	}

	romPath := game.LaunchPath()
	quoted, err := quote(romPath)
	if err != nil {
		return nil, fmt.Errorf("failed to quote ROM path %s: %w", romPath, err)
	}

	line := strings.NewReplacer(
		PlaceholderRomRaw, romPath,
		PlaceholderRom, quoted,
		PlaceholderBasename, game.Basename,
	).Replace(platform.LaunchCommand)

	if runtime.GOOS == constants.OSWindows {
		return exec.CommandContext(ctx, "cmd", "/C", line), nil
	}
	return exec.CommandContext(ctx, "sh", "-c", line), nil
}

func quote(s string) (string, error) {
	if runtime.GOOS == constants.OSWindows {
		return `"` + s + `"`, nil
	}
	return syntax.Quote(s, syntax.LangPOSIX)
}

// Launch runs the game and blocks until the emulator exits.
func (l *Launcher) Launch(ctx context.Context, platform *types.Platform, game *types.Game) error {
	cmd, err := BuildCommand(ctx, platform, game)
	if err != nil {
		return err
	}

	l.ui.LogInfof("Launch: %s", strings.Join(cmd.Args, " "))
	l.ui.EventsEmit(constants.EventGameStarted, game.Path)
	out, err := cmd.CombinedOutput()
	l.ui.EventsEmit(constants.EventGameExited, game.Path)

	if err != nil {
		return fmt.Errorf("failed to launch %s: %w\n%s", game.Basename, err, out)
	}
	l.ui.LogInfof("Launch: %s exited", game.Basename)
	return nil
}
