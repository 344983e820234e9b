package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/skyhop/internal/config"
	"github.com/vovakirdan/skyhop/internal/core"
	"github.com/vovakirdan/skyhop/internal/platform/gui"
	"github.com/vovakirdan/skyhop/internal/platform/tui"
	"github.com/vovakirdan/skyhop/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
	flagGUI        bool
	flagWatch      bool
	flagLogFile    string
	flagLogLevel   string
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing. The game defaults to skyhop.

Controls:
  Left/A, Right/D  - Steer
  Space/Up/W       - Jump (also in mid-air)
  P/Esc            - Pause
  R/Enter/click    - Restart (after game over)
  Q/Ctrl+C         - Quit
  Ctrl+S           - Screenshot (terminal only)

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Terminal sessions log to ~/.skyhop/skyhop.log unless --log-file is
given; window sessions log to stderr.

Examples:
  skyhop play
  skyhop play --gui
  skyhop play --difficulty hard
  skyhop play --config ./my-skyhop.yaml --watch`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagGUI, "gui", false, "Play in a window instead of the terminal")
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the config file when it changes (applies on restart)")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Log file (default: ~/.skyhop/skyhop.log in the terminal, stderr in a window)")
	playCmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := "skyhop"
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'skyhop list' to see available games", gameID)
	}

	cfg, source, err := loadConfig(flagConfig, flagDifficulty)
	if err != nil {
		return err
	}

	logPath := flagLogFile
	if logPath == "" && !flagGUI {
		logPath = defaultLogFile
	}
	logger, closer, err := newLogger(logPath, flagLogLevel)
	if err != nil {
		return err
	}
	defer closer.Close()

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var reloads <-chan config.SkyhopConfig
	var reloadErrs <-chan error
	if flagWatch {
		w, err := watchConfig(source, logger)
		if err != nil {
			return err
		}
		if w != nil {
			defer w.Close()
			preset, _ := config.ParsePreset(flagDifficulty)
			reloads = withPreset(w.Configs, preset)
			reloadErrs = w.Errors
		}
	}

	if flagGUI {
		return gui.Run(cfg, seed, gui.Options{
			Logger:       logger,
			TPS:          flagFPS,
			Reloads:      reloads,
			ReloadErrors: reloadErrs,
		})
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("create game: %w", err)
	}
	if c, ok := game.(tui.Configurable); ok {
		c.Configure(cfg)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	shots, err := expandHome("~/.skyhop/screenshots")
	if err != nil {
		shots = filepath.Join(os.TempDir(), "skyhop-screenshots")
	}

	return tui.Run(game, core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seed,
	}, tui.Options{
		Logger:        logger,
		Reloads:       reloads,
		ReloadErrors:  reloadErrs,
		ScreenshotDir: shots,
	})
}

// watchConfig starts a watcher on the config file in use. It returns
// nil when only the built-in defaults are in use.
func watchConfig(path string, logger *log.Logger) (*config.Watcher, error) {
	if path == "" {
		logger.Warn("no config file to watch, using built-in defaults")
		return nil, nil
	}

	w, err := config.Watch(path)
	if err != nil {
		return nil, err
	}
	logger.Info("watching config", "path", w.Path())
	return w, nil
}

// withPreset re-applies the command line difficulty to reloaded configs.
func withPreset(in <-chan config.SkyhopConfig, preset config.DifficultyPreset) <-chan config.SkyhopConfig {
	out := make(chan config.SkyhopConfig, 1)
	go func() {
		defer close(out)
		for cfg := range in {
			config.ApplyPreset(&cfg, preset)
			out <- cfg
		}
	}()
	return out
}
