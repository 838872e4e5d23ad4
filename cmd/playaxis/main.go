// Package main provides the playaxis entry point.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kingpin/v2"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	zlog "github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/osa030/playaxis/internal/app/notification"
	"github.com/osa030/playaxis/internal/app/visual"
	"github.com/osa030/playaxis/internal/domain/settings"
	"github.com/osa030/playaxis/internal/infra/clock"
	"github.com/osa030/playaxis/internal/infra/config"
	"github.com/osa030/playaxis/internal/infra/demohost"
	"github.com/osa030/playaxis/internal/infra/logger"
	"github.com/osa030/playaxis/internal/render"
	"github.com/osa030/playaxis/internal/tui"
)

var (
	app        = kingpin.New("playaxis", "Timeline play axis driving a cross-filter over a category sequence")
	configPath = app.Flag("config", "Path to config file").Default("config/playaxis.yaml").String()
	verbose    = app.Flag("verbose", "Enable verbose (DEBUG) logging").Short('v').Bool()
	logfile    = app.Flag("logfile", "Path to log file").String()

	runCmd  = app.Command("run", "Run the interactive play axis (default)").Default()
	playCmd = app.Command("play", "Play through the categories without a terminal UI")

	settingsCmd   = app.Command("settings", "Print the format-pane properties of a settings group")
	settingsGroup = settingsCmd.Arg("group", "Settings group").Required().
			Enum(settings.GroupTransition, settings.GroupColor, settings.GroupCaption)

	checkCmd = app.Command("check", "Validate the config file and exit")
)

func main() {
	// Load .env file if it exists (errors are ignored)
	_ = godotenv.Load()

	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	cfg, err := config.Load(*configPath)
	if err != nil {
		_ = logger.Init(logger.Config{Output: "stderr"})
		zlog.Fatal().Msgf("Failed to load config: %v", err)
	}

	if err := logger.Init(loggerConfig(cfg, command)); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	zlog.Debug().Msgf("Loaded config from %s", *configPath)

	switch command {
	case checkCmd.FullCommand():
		fmt.Printf("%s: ok (%d categories)\n", *configPath, len(cfg.Categories()))
	case settingsCmd.FullCommand():
		err = printSettings(cfg, *settingsGroup)
	case playCmd.FullCommand():
		err = runHeadless(cfg)
	case runCmd.FullCommand():
		err = runTUI(cfg)
	}
	if err != nil {
		zlog.Error().Msgf("%s: %v", command, err)
		os.Exit(1)
	}
}

// loggerConfig merges the config file with command-line flags.
// The terminal UI owns the screen, so it logs nowhere unless a file is given.
func loggerConfig(cfg *config.Config, command string) logger.Config {
	lc := logger.Config{
		Output: cfg.Log.Output,
		Level:  cfg.Log.Level,
	}
	if *verbose {
		lc.Level = "debug"
	}
	if command == runCmd.FullCommand() && (lc.Output == "stdout" || lc.Output == "stderr") {
		lc.Output = "discard"
	}
	if *logfile != "" {
		lc.Output = *logfile
	}
	return lc
}

// newVisual builds a visual on the demo host and feeds it the configured data.
func newVisual(cfg *config.Config, scene *render.Scene) (*visual.Visual, *demohost.Selection) {
	selection := demohost.NewSelection()
	v := visual.New(visual.Config{
		IDBuilder: demohost.NewIDBuilder(),
		Selection: selection,
		Surface:   scene,
		Clock:     clock.New(),
	})
	v.Update(demohost.UpdateOptions(cfg.Data.Field, cfg.Categories(), cfg.Objects))
	return v, selection
}

func runTUI(cfg *config.Config) error {
	scene := render.NewScene()
	v, _ := newVisual(cfg, scene)
	defer v.Close()

	manager := notification.NewManager()
	manager.Subscribe(notification.LogStream{})
	stream := notification.NewChanStream(64)
	manager.Subscribe(stream)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = manager.Run(ctx, v.Scheduler().Events()) }()

	if _, err := tea.NewProgram(tui.NewModel(v, scene, stream.C()), tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("terminal UI failed: %w", err)
	}
	return nil
}

func printSettings(cfg *config.Config, group string) error {
	v, _ := newVisual(cfg, render.NewScene())
	defer v.Close()
	v.Stop()

	out, err := yaml.Marshal(v.EnumerateSettings(group))
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	fmt.Print(string(out))
	return nil
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}
