package platform

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/ytget/yt-mp3/internal/model"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// DefaultDirPermissions is used for output directories created on demand
const DefaultDirPermissions = 0755

// Suggested output folders under the home directory, in order of preference
var outputDirCandidates = []string{"Music", "Downloads"}

// Directory openers tried on Linux after xdg-open
var linuxFileManagers = []string{"nautilus", "dolphin", "thunar", "nemo", "pcmanfm"}

// ErrArtifactMissing is returned when the artifact to reveal is not on disk
var ErrArtifactMissing = errors.New("artifact is not on disk")

// revealCommand returns the command that shows path in the file manager of
// goos. Linux has no standard way to select a file, so the directory is
// opened instead. detached is set when the exit code carries no meaning.
func revealCommand(goos, path string) (name string, args []string, detached bool, err error) {
	switch goos {
	case OSDarwin:
		return "open", []string{"-R", path}, false, nil
	case OSWindows:
		// explorer exits 1 even when it succeeded
		return "explorer", []string{"/select," + path}, true, nil
	case OSLinux:
		return "xdg-open", []string{filepath.Dir(path)}, false, nil
	default:
		return "", nil, false, fmt.Errorf("unsupported operating system: %s", goos)
	}
}

// RevealArtifact shows the artifact in the system file manager
func RevealArtifact(a model.Artifact) error {
	if a.IsZero() || !FileExists(a.Path) {
		return fmt.Errorf("%w: %q", ErrArtifactMissing, a.Path)
	}
	absPath, err := filepath.Abs(a.Path)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	name, args, detached, err := revealCommand(runtime.GOOS, absPath)
	if err != nil {
		return err
	}
	cmd := exec.Command(name, args...)
	if detached {
		return cmd.Start()
	}
	if err := cmd.Run(); err != nil {
		if runtime.GOOS == OSLinux {
			return openWithFileManager(filepath.Dir(absPath))
		}
		return fmt.Errorf("failed to reveal %s: %w", a.FileName(), err)
	}
	return nil
}

// openWithFileManager tries the known Linux file managers on dir
func openWithFileManager(dir string) error {
	for _, fm := range linuxFileManagers {
		if _, err := exec.LookPath(fm); err == nil {
			return exec.Command(fm, dir).Run()
		}
	}
	return errors.New("no suitable file manager found")
}

// EnsureOutputDir creates the job output directory when it is missing
func EnsureOutputDir(dir string) error {
	if dir == "" {
		return errors.New("output directory is empty")
	}
	if err := os.MkdirAll(dir, DefaultDirPermissions); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	return nil
}

// GetHomeDownloadsDir returns the directory suggested for new jobs: the
// user's Music folder when present, otherwise Downloads
func GetHomeDownloadsDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	for _, name := range outputDirCandidates {
		dir := filepath.Join(homeDir, name)
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir, nil
		}
	}
	return filepath.Join(homeDir, outputDirCandidates[len(outputDirCandidates)-1]), nil
}

// FileExists reports whether path names an existing file or directory
func FileExists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}
