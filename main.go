package main

import (
	"binary-play/config"
	"binary-play/types"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

func main() {
	cm := config.NewConfigManager()
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "binary-play",
	})
	if err := cm.Load(); err != nil {
		logger.Error("Error loading config", "err", err)
	}

	app := NewApp(cm, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd(app).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(app *App) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "binary-play",
		Short:        "Discover the local game library",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				app.logger.SetLevel(log.DebugLevel)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	root.AddCommand(newScanCmd(app))
	root.AddCommand(newLaunchCmd(app))
	root.AddCommand(newConfigCmd(app))
	return root
}

func newScanCmd(app *App) *cobra.Command {
	var asJSON, details bool
	var platform string

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan ROM directories and print the library",
		RunE: func(cmd *cobra.Command, args []string) error {
			lib := app.FindLibrary(cmd.Context())
			if platform != "" {
				p := lib.Platform(platform)
				if p == nil {
					return fmt.Errorf("no games found for platform %q", platform)
				}
				lib = &types.Library{Platforms: []*types.Platform{p}}
			}
			if asJSON {
				return app.WriteJSON(cmd.OutOrStdout(), lib)
			}
			app.RenderLibrary(cmd.OutOrStdout(), lib, details)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the library as JSON")
	cmd.Flags().BoolVarP(&details, "details", "d", false, "show paths and enrichment markers")
	cmd.Flags().StringVarP(&platform, "platform", "p", "", "only print this platform")
	return cmd
}

func newLaunchCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "launch <platform> <game>",
		Short: "Run a game with its platform's launch command",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.LaunchGame(cmd.Context(), args[0], args[1])
		},
	}
}

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change settings",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Print the current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := json.MarshalIndent(app.ConfigGetConfig(), "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}

	var update types.AppConfig
	var inspectArchives bool
	set := &cobra.Command{
		Use:   "set",
		Short: "Update settings; unset flags keep their value",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("inspect-archives") {
				if err := app.configSrv.SetInspectArchives(inspectArchives); err != nil {
					return err
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), app.SaveConfig(update))
			return nil
		},
	}
	set.Flags().StringVar(&update.DataDir, "data-dir", "", "EmulationStation data directory")
	set.Flags().StringVar(&update.Locale, "locale", "", "locale used to sort games (BCP 47, e.g. fr-FR)")
	set.Flags().IntVar(&update.MaxDepth, "max-depth", 0, "deepest ROM subdirectory level to scan")
	set.Flags().IntVar(&update.Workers, "workers", 0, "platforms processed in parallel")
	set.Flags().BoolVar(&inspectArchives, "inspect-archives", true, "look inside .zip/.7z/.rar ROMs")

	cmd.AddCommand(show, set)
	return cmd
}
