package extract

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/ytget/yt-mp3/internal/model"
)

var filenameReplacer = strings.NewReplacer("/", "_", "\\", "_", " ", "_")

// SanitizeFilename replaces path separators and spaces with underscores.
// No other characters are touched.
func SanitizeFilename(name string) string {
	return filenameReplacer.Replace(name)
}

// RenameArtifact moves a to a sibling path named after desired, keeping the
// extension. An existing target is never overwritten; on any error the
// artifact stays at its original path.
func RenameArtifact(a model.Artifact, desired string) (model.Artifact, error) {
	if a.IsZero() {
		return a, &RenameError{Reason: ReasonNoArtifact}
	}

	desired = strings.TrimSpace(desired)
	if desired == "" {
		return a, &RenameError{Reason: ReasonMissingName, Path: a.Path}
	}

	if _, err := os.Stat(a.Path); err != nil {
		return a, &RenameError{Reason: ReasonNoArtifact, Path: a.Path, Err: err}
	}

	target := filepath.Join(a.Dir(), SanitizeFilename(desired)+a.Ext)

	// The current name counts as taken. A racing writer could still create
	// target after this check.
	if _, err := os.Lstat(target); err == nil {
		return a, &RenameError{Reason: ReasonTargetExists, Path: target}
	} else if !os.IsNotExist(err) {
		return a, &RenameError{Reason: ReasonIOFailure, Path: target, Err: err}
	}

	if err := os.Rename(a.Path, target); err != nil {
		return a, &RenameError{Reason: ReasonIOFailure, Path: target, Err: err}
	}
	return model.NewArtifact(target), nil
}
