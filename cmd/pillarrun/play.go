package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"pillarrun/internal/audio"
	"pillarrun/internal/config"
	"pillarrun/internal/game"
	"pillarrun/internal/runner"
	"pillarrun/internal/storage"
)

var (
	flagFPS    int
	flagWidth  int
	flagHeight int
	flagWatch  bool
	flagMute   bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the game window",
	Long: `Start a run in a new window.

Controls:
  W/S, Up/Down     - Walk forward/back
  A/D, Left/Right  - Turn
  Space (hold)     - Grow the bridge, release to drop it
  J                - Jump
  P/Esc            - Pause

Examples:
  pillarrun play
  pillarrun play --seed 42 --fps 120
  pillarrun play --config ./tunables.yaml --watch`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&flagFPS, "fps", 60, "Target frame rate")
	cmd.Flags().IntVar(&flagWidth, "width", 1280, "Window width")
	cmd.Flags().IntVar(&flagHeight, "height", 720, "Window height")
	cmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the tunables file when it changes (applied on replay)")
	cmd.Flags().BoolVar(&flagMute, "mute", false, "Start with sound off")
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading tunables: %w", err)
	}

	// Open storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		// Continue without storage
	}

	sound := audio.NewPlayer(logger)
	defer sound.Close()
	sound.SetMuted(flagMute)

	var watcher *config.Watcher
	if flagWatch {
		if path := config.Resolve(flagConfig); path == "" {
			logger.Warn("nothing to watch, running on built-in tunables")
		} else if watcher, err = config.NewWatcher(path); err != nil {
			logger.Warn("could not watch tunables", "path", path, "error", err)
			watcher = nil
		} else {
			defer watcher.Close()
		}
	}

	rng, seed := newRand()
	logger.Info("starting run", "seed", seed)
	session := runner.NewSession(cfg, runner.WithRand(rng), runner.WithLogger(logger))

	opts := game.Options{
		Width:   int32(flagWidth),
		Height:  int32(flagHeight),
		FPS:     int32(flagFPS),
		Debug:   flagDebug,
		Logger:  logger,
		Cues:    sound,
		Watcher: watcher,
	}
	if store != nil {
		defer store.Close()
		opts.Store = store
	}
	game.New(session, opts).Run()
	return nil
}
