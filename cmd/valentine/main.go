package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/valentine/app"
	"github.com/lixenwraith/valentine/audio"
	"github.com/lixenwraith/valentine/config"
	"github.com/lixenwraith/valentine/content"
	"github.com/lixenwraith/valentine/input"
	"github.com/lixenwraith/valentine/persistence"
	"github.com/lixenwraith/valentine/render"
	"github.com/lixenwraith/valentine/state"
)

const (
	programName = "valentine"

	logFileName = "valentine.log"

	frameInterval = 33 * time.Millisecond
)

var globalFlags = struct {
	configFile string
	dataDir    string
	debug      bool
	noAudio    bool
}{}

func main() {
	rootCmd := &cobra.Command{
		Use:           programName,
		Short:         "A Valentine's day gift, in your terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(globalFlags.configFile)
			if err != nil {
				return err
			}
			if globalFlags.dataDir != "" {
				cfg.DataDir = globalFlags.dataDir
			}
			if globalFlags.debug {
				cfg.Debug = true
			}
			if globalFlags.noAudio {
				cfg.AudioEnabled = false
			}
			return run(cfg)
		},
	}
	rootCmd.PersistentFlags().StringVarP(
		&globalFlags.configFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().StringVarP(
		&globalFlags.dataDir, "data-dir", "d", "", "data directory (overrides config)")
	rootCmd.PersistentFlags().BoolVar(
		&globalFlags.debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(
		&globalFlags.noAudio, "no-audio", false, "disable sound cues")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", programName, err)
		os.Exit(1)
	}
}

// setupLogging writes structured logs to a file under the data dir;
// stdout belongs to the TUI.
func setupLogging(cfg *config.Config) (*slog.Logger, io.Closer, error) {
	logDir := filepath.Join(cfg.DataDir, "logs")
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("failed to create log dir: %w", err)
	}
	logFile, err := os.OpenFile(
		filepath.Join(logDir, logFileName),
		os.O_CREATE|os.O_WRONLY|os.O_APPEND,
		0o644,
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	logLevel := slog.LevelInfo
	addSource := false
	if cfg.Debug {
		logLevel = slog.LevelDebug
		addSource = true
	}
	logger := slog.New(
		slog.NewJSONHandler(logFile, &slog.HandlerOptions{
			AddSource: addSource,
			Level:     logLevel,
		}),
	)
	slog.SetDefault(logger)
	return logger, logFile, nil
}

func run(cfg *config.Config) error {
	logger, logCloser, err := setupLogging(cfg)
	if err != nil {
		return err
	}
	defer logCloser.Close()

	port, err := persistence.NewBadgerStore(
		persistence.WithDataDir(cfg.DataDir),
		persistence.WithLogger(logger),
	)
	if err != nil {
		return fmt.Errorf("failed to open state store: %w", err)
	}
	defer port.Close()

	store := state.NewStore(port, content.SeedPhotos(), logger)

	// Best-effort cross-instance sync: external writes replace local
	// state wholesale
	watchCtx, cancelWatch := context.WithCancel(context.Background())
	defer cancelWatch()
	if err := port.Watch(watchCtx, store.Replace); err != nil {
		logger.Warn("state watch unavailable", "error", err)
	}

	sounds := audio.NewSoundManager()
	if cfg.AudioEnabled {
		if err := sounds.Initialize(); err != nil {
			logger.Warn("audio unavailable, continuing silent", "error", err)
		}
	}
	defer sounds.Cleanup()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()

	// Panic recovery: restore the terminal before printing the trace,
	// otherwise the output lands in raw mode
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "%s crashed: %v\n", programName, r)
			fmt.Fprintf(os.Stderr, "stack trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	appCtx := app.NewContext(store, sounds, logger)
	appCtx.SwipeThreshold = cfg.SwipeThreshold
	appCtx.ConfettiDelay = cfg.ConfettiDelay()

	router := app.NewRouter(appCtx)
	defer router.Close()

	machine := input.NewMachine()
	orchestrator := render.NewOrchestrator()

	eventChan := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				// Screen finalized
				return
			}
			eventChan <- ev
		}
	}()

	logger.Info("started", "dataDir", cfg.DataDir, "audio", cfg.AudioEnabled)

	frameTicker := time.NewTicker(frameInterval)
	defer frameTicker.Stop()

	width, height := screen.Size()
	var frame int64

	for {
		select {
		case ev := <-eventChan:
			if resize, ok := ev.(*tcell.EventResize); ok {
				width, height = resize.Size()
				screen.Sync()
			}
			if !router.Handle(machine.Process(ev)) {
				logger.Info("exiting")
				return nil
			}

		case <-frameTicker.C:
			frame++
			orchestrator.RenderFrame(screen, store.Snapshot(), render.Frame{
				Width:  width,
				Height: height,
				Number: frame,
			})
		}
	}
}
