package main

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/mysterious-jump/internal/audio"
	"github.com/vovakirdan/mysterious-jump/internal/config"
	"github.com/vovakirdan/mysterious-jump/internal/core"
	"github.com/vovakirdan/mysterious-jump/internal/games/jump"
	"github.com/vovakirdan/mysterious-jump/internal/platform/tui"
	"github.com/vovakirdan/mysterious-jump/internal/storage"
)

var (
	flagMute   bool
	flagVolume float64
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Mysterious Jump",
	Long: `Start the game in this terminal.

Controls:
  A/D, Left/Right - Walk
  Space           - Jump
  P               - Pause
  Enter           - Save your name after a new highscore
  Ctrl+S          - Save a screenshot to ~/.mysterious-jump/screenshots
  Esc/Ctrl+C      - Quit

Logs are written to ~/.mysterious-jump/jump.log.

Examples:
  jump play
  jump play --mute
  jump play --seed 42 --fps 60
  jump play --config ./jump.toml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

// addPlayFlags registers the play flags on cmd, so the root command can
// play directly.
func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&flagMute, "mute", false, "Disable music and sound effects")
	cmd.Flags().Float64Var(&flagVolume, "volume", 0.5, "Audio volume from 0 to 1")
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := openPlayLog()
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	var store storage.Backend
	db, err := storage.Open(flagDBPath, logger)
	if err != nil {
		logger.Warn("could not open scores database, scores will not persist", "error", err)
		store = storage.NewMemoryStore()
	} else {
		store = db
	}
	defer store.Close()

	var sound jump.Audio = jump.NopAudio{}
	if !flagMute {
		player := audio.NewPlayer(flagVolume, logger)
		if initErr := player.Init(); initErr != nil {
			logger.Warn("audio disabled", "error", initErr)
		} else {
			defer player.Close()
			sound = player
		}
	}

	game := jump.New(jump.Options{
		Config: cfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: cfg.TickRate,
			Seed:     flagSeed,
		},
		Store:  store,
		Audio:  sound,
		Logger: logger,
	})

	logger.Info("game started", "tick_rate", cfg.TickRate, "seed", flagSeed)
	return tui.Run(game, tui.Options{
		Width:         width,
		Height:        height,
		TickRate:      cfg.TickRate,
		HoldWindow:    time.Duration(cfg.Input.HoldMs) * time.Millisecond,
		ScreenshotDir: config.UserPath("screenshots"),
		Logger:        logger,
	})
}

// openPlayLog opens ~/.mysterious-jump/jump.log for the session logger.
// The terminal belongs to the game, so logs are discarded when the file
// cannot be opened.
func openPlayLog() (*log.Logger, func(), error) {
	var (
		w       io.Writer = io.Discard
		closeFn           = func() {}
	)

	if path := config.UserPath("jump.log"); path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err == nil {
			f, openErr := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if openErr == nil {
				w = f
				closeFn = func() { f.Close() }
			}
		}
	}

	logger, err := newLogger(w, "jump")
	if err != nil {
		closeFn()
		return nil, nil, err
	}
	return logger, closeFn, nil
}
