package model

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// Quality is the MP3 bitrate requested from the downloader, in kbps
type Quality int

const (
	Quality128 Quality = 128
	Quality192 Quality = 192
	Quality256 Quality = 256
	Quality320 Quality = 320

	DefaultQuality = Quality192
)

// AudioExtension is the extension of every artifact produced by a job
const AudioExtension = ".mp3"

// Qualities returns the selectable bitrates in ascending order
func Qualities() []Quality {
	return []Quality{Quality128, Quality192, Quality256, Quality320}
}

// ParseQuality converts "192" (or "192K") to a Quality
func ParseQuality(s string) (Quality, error) {
	trimmed := strings.TrimSuffix(strings.ToUpper(strings.TrimSpace(s)), "K")
	value, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, fmt.Errorf("invalid quality %q: %w", s, err)
	}
	q := Quality(value)
	if !q.Valid() {
		return 0, fmt.Errorf("unsupported quality %d kbps", value)
	}
	return q, nil
}

// Valid reports whether q is one of the selectable bitrates
func (q Quality) Valid() bool {
	for _, allowed := range Qualities() {
		if q == allowed {
			return true
		}
	}
	return false
}

// String returns the bare number, as shown in the quality dropdown
func (q Quality) String() string {
	return strconv.Itoa(int(q))
}

// Arg returns the value passed to --audio-quality, e.g. "192K"
func (q Quality) Arg() string {
	return q.String() + "K"
}

// JobRequest holds the form fields for one job. It is copied into the worker
// and never mutated after the job starts.
type JobRequest struct {
	URL       string  `validate:"required"`
	OutputDir string  `validate:"required"`
	Filename  string  // optional desired base name, sanitized before use
	Quality   Quality `validate:"oneof=128 192 256 320"`
}

// Artifact is the audio file produced by a job
type Artifact struct {
	Path string // absolute path on disk
	Name string // base name without extension
	Ext  string // extension including the dot, e.g. ".mp3"
}

// NewArtifact splits path into its base name and extension
func NewArtifact(path string) Artifact {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	return Artifact{
		Path: path,
		Name: strings.TrimSuffix(base, ext),
		Ext:  ext,
	}
}

// Dir returns the directory holding the artifact
func (a Artifact) Dir() string {
	return filepath.Dir(a.Path)
}

// FileName returns the base name with extension
func (a Artifact) FileName() string {
	return a.Name + a.Ext
}

// IsZero reports whether a refers to no file
func (a Artifact) IsZero() bool {
	return a.Path == ""
}
