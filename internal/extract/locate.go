package extract

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/djherbis/times"

	"github.com/ytget/yt-mp3/internal/model"
)

// creationTime returns the best available creation timestamp of a file:
// birth time where the platform records it, else change time, else mtime.
var creationTime = func(info fs.FileInfo) time.Time {
	ts := times.Get(info)
	if ts.HasBirthTime() {
		return ts.BirthTime()
	}
	if ts.HasChangeTime() {
		return ts.ChangeTime()
	}
	return ts.ModTime()
}

// LocateArtifact returns the newest file in dir whose name ends in ext,
// compared case-insensitively. The scan is not recursive. When two files
// share a timestamp the one first in name order wins.
func LocateArtifact(dir, ext string) (model.Artifact, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return model.Artifact{}, &LocateError{Dir: dir, Err: err}
	}

	suffix := strings.ToLower(ext)
	var (
		newest     string
		newestTime time.Time
	)
	// ReadDir returns entries sorted by name
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(strings.ToLower(entry.Name()), suffix) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			// Removed between listing and stat
			continue
		}
		created := creationTime(info)
		if newest == "" || created.After(newestTime) {
			newest = entry.Name()
			newestTime = created
		}
	}

	if newest == "" {
		return model.Artifact{}, &LocateError{Dir: dir}
	}
	return model.NewArtifact(filepath.Join(dir, newest)), nil
}
