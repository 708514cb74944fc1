// Command yt-mp3 runs a single download-extract-rename job without the GUI.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/ytget/yt-mp3/internal/config"
	"github.com/ytget/yt-mp3/internal/extract"
	"github.com/ytget/yt-mp3/internal/i18n"
	"github.com/ytget/yt-mp3/internal/logging"
	"github.com/ytget/yt-mp3/internal/model"
	"github.com/ytget/yt-mp3/internal/platform"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

// Exit codes
const (
	exitOK         = 0
	exitFailure    = 1
	exitValidation = 2
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("yt-mp3", flag.ContinueOnError)
	url := fs.String("url", "", "YouTube video URL")
	dir := fs.String("dir", "", "output directory (default: configured or Music/Downloads)")
	name := fs.String("name", "", "rename the MP3 to this name (optional)")
	quality := fs.String("quality", "", "MP3 bitrate in kbps: 128, 192, 256 or 320")
	configPath := fs.String("config", "", "config file path")
	lang := fs.String("lang", i18n.LangChinese, "message language: zh or en")
	if err := fs.Parse(args); err != nil {
		return exitValidation
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		return exitFailure
	}

	logger, closer, err := logging.Setup(cfg.Logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to set up logging: %v\n", err)
		return exitFailure
	}
	defer closer.Close()
	logger.Info("yt-mp3 starting", "version", version)

	tr := i18n.NewLocalization()
	tr.SetLanguage(*lang)

	req := model.JobRequest{
		URL:       *url,
		OutputDir: *dir,
		Filename:  *name,
		Quality:   cfg.DefaultQuality(),
	}
	if req.OutputDir == "" {
		req.OutputDir = cfg.Defaults.OutputDir
	}
	if req.OutputDir == "" {
		if d, err := platform.GetHomeDownloadsDir(); err == nil {
			req.OutputDir = d
		}
	}
	if *quality != "" {
		q, err := model.ParseQuality(*quality)
		if err != nil {
			fmt.Fprintln(os.Stderr, tr.GetText(i18n.KeyInvalidQuality))
			return exitValidation
		}
		req.Quality = q
	}

	req, err = extract.Validate(req)
	if err != nil {
		var verr *extract.ValidationError
		if errors.As(err, &verr) {
			fmt.Fprintln(os.Stderr, validationMessage(tr, verr))
			return exitValidation
		}
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return exitFailure
	}

	if err := platform.EnsureOutputDir(req.OutputDir); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return exitFailure
	}

	toolsDir, err := platform.ResolveToolsDir(cfg.ToolsDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return exitFailure
	}
	tools, err := platform.LocateTools(toolsDir)
	if err != nil {
		logger.Error("Required tools are missing", "error", err)
		fmt.Fprintln(os.Stderr, tr.GetText(i18n.KeyMissingTools))
		return exitFailure
	}

	controller := extract.NewController(tools, platform.NewExecRunner(), tr, logger)
	session := extract.NewSession()
	if _, err := controller.Start(req, session.Begin); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return exitFailure
	}

	for u := range controller.Updates() {
		session.Apply(u)
		if u.Log != "" {
			fmt.Println(u.Log)
		}
		if u.Done {
			break
		}
	}

	if session.State != model.JobStateCompleted {
		fmt.Fprintln(os.Stderr, session.Status)
		return exitFailure
	}
	fmt.Println(session.Artifact.Path)
	return exitOK
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return config.DefaultConfig(), nil
		}
		path = p
	}
	return config.Load(path)
}

func validationMessage(tr *i18n.Localization, err *extract.ValidationError) string {
	switch err.Reason {
	case extract.ReasonMissingURL:
		return tr.GetText(i18n.KeyPleaseEnterURL)
	case extract.ReasonMissingOutputDir:
		return tr.GetText(i18n.KeyPleaseChooseDir)
	default:
		return tr.GetText(i18n.KeyInvalidQuality)
	}
}
