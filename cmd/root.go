// Package cmd wires the command line to the backdrop window.
package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/iburimskiy/network-backdrop/internal/config"
	"github.com/iburimskiy/network-backdrop/internal/content"
	"github.com/iburimskiy/network-backdrop/internal/game"
	"github.com/iburimskiy/network-backdrop/internal/sound"
	"github.com/iburimskiy/network-backdrop/internal/telemetry"
)

var (
	configPath   string
	telemetryDir string
	mute         bool
	seed         int64
)

var rootCmd = &cobra.Command{
	Use:          "backdrop",
	Short:        "Portfolio page over an animated particle network",
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML file overriding the built-in defaults")
	rootCmd.Flags().StringVar(&telemetryDir, "telemetry-dir", "", "write frame statistics to frames.csv in this directory")
	rootCmd.Flags().BoolVar(&mute, "mute", false, "start with navigation sounds off")
	rootCmd.Flags().Int64Var(&seed, "seed", 0, "particle layout seed (0 picks one from the clock)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("telemetry-dir") {
		cfg.Telemetry.Dir = telemetryDir
	}
	if mute {
		cfg.Audio.Enabled = false
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	portfolio, err := content.Default()
	if err != nil {
		return err
	}

	output, err := telemetry.NewOutputManager(cfg.Telemetry.Dir)
	if err != nil {
		return err
	}
	defer output.Close()
	var sink telemetry.Sink
	if output != nil {
		if err := cfg.WriteYAML(filepath.Join(output.Dir(), "config.yaml")); err != nil {
			return fmt.Errorf("saving run config: %w", err)
		}
		sink = output
	}

	player := sound.NewPlayer(sound.Options{
		Enabled:    cfg.Audio.Enabled,
		Volume:     cfg.Audio.Volume,
		SampleRate: cfg.Audio.SampleRate,
	})
	defer player.Close()

	g := game.New(cfg, portfolio, game.Options{
		Seed:      seed,
		Sound:     player,
		Telemetry: telemetry.NewFrameCollector(cfg.Telemetry.Window, sink),
	})
	defer g.Close()

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(cfg.Window.TPS)
	if cfg.Window.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	slog.Info("starting",
		"width", cfg.Window.Width,
		"height", cfg.Window.Height,
		"seed", seed,
		"audio", cfg.Audio.Enabled,
		"telemetry_dir", cfg.Telemetry.Dir,
	)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
