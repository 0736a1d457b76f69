package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/iburimskiy/quasar/internal/config"
	"github.com/iburimskiy/quasar/internal/sketch"
)

var (
	configFile string
	width      int
	height     int
	seed       int64
	fullscreen bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "quasar",
		Short: "animated generative quasar sketch",
		RunE:  run,
	}
	rootCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.Flags().IntVar(&width, "width", config.DefaultWidth, "window width")
	rootCmd.Flags().IntVar(&height, "height", config.DefaultHeight, "window height")
	rootCmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = time-based)")
	rootCmd.Flags().BoolVar(&fullscreen, "fullscreen", false, "start fullscreen")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	// CLI flags override config values.
	if cmd.Flags().Changed("width") {
		cfg.Width = width
	}
	if cmd.Flags().Changed("height") {
		cfg.Height = height
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	if cmd.Flags().Changed("fullscreen") {
		cfg.Fullscreen = fullscreen
	}

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle("Quasar - Right-click: new scene, Hold left: zoom, S: screenshot")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(cfg.Fullscreen)

	if err := ebiten.RunGame(sketch.New(cfg)); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
