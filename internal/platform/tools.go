package platform

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Executable base names, without the platform suffix
const (
	DownloaderName = "yt-dlp"
	TranscoderName = "ffmpeg"

	windowsExeSuffix = ".exe"
)

// Version probe arguments
const (
	DownloaderVersionFlag = "--version"
	TranscoderVersionFlag = "-version"
)

// ErrToolNotFound is returned when a bundled executable is missing.
var ErrToolNotFound = errors.New("required tool not found")

// Tools holds the absolute paths of the two external executables.
type Tools struct {
	Downloader string
	Transcoder string
}

// ToolVersions holds the first line each tool printed for its version flag.
type ToolVersions struct {
	Downloader string
	Transcoder string
}

// ExecutableName appends the platform executable suffix to base
func ExecutableName(base string) string {
	if runtime.GOOS == OSWindows {
		return base + windowsExeSuffix
	}
	return base
}

// ExecutableDir returns the directory holding the running binary, with
// symlinks resolved
func ExecutableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to resolve executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}

// ResolveToolsDir returns configured when set, else the executable's directory
func ResolveToolsDir(configured string) (string, error) {
	if configured != "" {
		return configured, nil
	}
	return ExecutableDir()
}

// LocateTools finds the downloader and transcoder inside dir. Both must be
// present; the error names every missing file.
func LocateTools(dir string) (Tools, error) {
	tools := Tools{
		Downloader: filepath.Join(dir, ExecutableName(DownloaderName)),
		Transcoder: filepath.Join(dir, ExecutableName(TranscoderName)),
	}

	var missing []string
	for _, path := range []string{tools.Downloader, tools.Transcoder} {
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			missing = append(missing, filepath.Base(path))
		}
	}
	if len(missing) > 0 {
		return Tools{}, fmt.Errorf("%w: %s in %s", ErrToolNotFound, strings.Join(missing, ", "), dir)
	}
	return tools, nil
}

// ProbeTools asks both tools for their version concurrently
func ProbeTools(ctx context.Context, runner ProcessRunner, tools Tools) (ToolVersions, error) {
	var versions ToolVersions
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		v, err := probeVersion(ctx, runner, tools.Downloader, DownloaderVersionFlag)
		versions.Downloader = v
		return err
	})
	g.Go(func() error {
		v, err := probeVersion(ctx, runner, tools.Transcoder, TranscoderVersionFlag)
		versions.Transcoder = v
		return err
	})

	if err := g.Wait(); err != nil {
		return versions, err
	}
	return versions, nil
}

func probeVersion(ctx context.Context, runner ProcessRunner, path, flag string) (string, error) {
	output, code, err := runner.Run(ctx, path, flag)
	if err != nil {
		return "", fmt.Errorf("failed to run %s: %w", filepath.Base(path), err)
	}
	if code != 0 {
		return "", fmt.Errorf("%s %s exited with code %d", filepath.Base(path), flag, code)
	}
	firstLine := strings.TrimSpace(output)
	if idx := strings.Index(firstLine, "\n"); idx > 0 {
		firstLine = strings.TrimSpace(firstLine[:idx])
	}
	return firstLine, nil
}
