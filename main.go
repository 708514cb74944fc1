package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/dialog"

	"github.com/ytget/yt-mp3/internal/config"
	"github.com/ytget/yt-mp3/internal/extract"
	"github.com/ytget/yt-mp3/internal/i18n"
	"github.com/ytget/yt-mp3/internal/logging"
	"github.com/ytget/yt-mp3/internal/platform"
	"github.com/ytget/yt-mp3/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.yt-mp3"
	AppName = "YT MP3"

	probeTimeout = 10 * time.Second
)

func main() {
	fmt.Printf("%s v%s starting...\n", AppName, version)
	os.Exit(run())
}

func run() int {
	cfg := loadConfig()

	logger, closer, err := logging.Setup(cfg.Logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to set up logging: %v\n", err)
		logger = logging.New(os.Stderr, cfg.Logger)
	} else {
		defer closer.Close()
	}
	slog.SetDefault(logger)

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	settings := config.NewSettings(myApp, cfg.Defaults)
	if err := platform.EnsureOutputDir(settings.GetOutputDirectory()); err != nil {
		logger.Warn("Failed to ensure output directory", "error", err)
	}
	localization := i18n.NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	tools, err := findTools(cfg)
	if err != nil {
		logger.Error("Required tools are missing", "error", err)
		showFatal(myApp, myWindow, localization.GetText(i18n.KeyMissingTools))
		return 1
	}

	runner := platform.NewExecRunner()
	probeTools(runner, tools, logger)

	watcher, err := platform.NewArtifactWatcher(logger)
	if err != nil {
		logger.Warn("File watching unavailable", "error", err)
		watcher = nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if watcher != nil {
		watcher.Start(ctx)
		defer watcher.Close()
	}

	controller := extract.NewController(tools, runner, localization, logger)
	rootUI := ui.NewRootUI(myWindow, myApp, controller, settings, localization, watcher, logger)
	rootUI.Run(ctx)

	myWindow.ShowAndRun()
	return 0
}

// loadConfig reads the config file, falling back to defaults when it cannot
// be read
func loadConfig() *config.Config {
	path, err := config.DefaultPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "using default configuration: %v\n", err)
		return config.DefaultConfig()
	}
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "using default configuration: %v\n", err)
		return config.DefaultConfig()
	}
	return cfg
}

func findTools(cfg *config.Config) (platform.Tools, error) {
	dir, err := platform.ResolveToolsDir(cfg.ToolsDir)
	if err != nil {
		return platform.Tools{}, err
	}
	return platform.LocateTools(dir)
}

// probeTools logs the tool versions; a failing probe is not fatal
func probeTools(runner platform.ProcessRunner, tools platform.Tools, logger *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
	defer cancel()

	versions, err := platform.ProbeTools(ctx, runner, tools)
	if err != nil {
		logger.Warn("Tool probe failed", "error", err)
		return
	}
	logger.Info("Tools found", "yt-dlp", versions.Downloader, "ffmpeg", versions.Transcoder)
}

// showFatal shows msg in an error dialog and returns once it is dismissed
func showFatal(a fyne.App, w fyne.Window, msg string) {
	d := dialog.NewError(fmt.Errorf("%s", msg), w)
	d.SetOnClosed(a.Quit)
	w.SetCloseIntercept(a.Quit)
	d.Show()
	w.ShowAndRun()
}
