// Package media reads metadata from produced audio files.
package media

import (
	"fmt"

	"github.com/bogem/id3v2/v2"
)

// Tags is the subset of ID3 metadata shown after a job completes
type Tags struct {
	Title  string
	Artist string
}

// IsEmpty reports whether neither title nor artist is set
func (t Tags) IsEmpty() bool {
	return t.Title == "" && t.Artist == ""
}

// ReadTags parses the ID3v2 header of the MP3 at path
func ReadTags(path string) (Tags, error) {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true, ParseFrames: []string{"Title", "Artist"}})
	if err != nil {
		return Tags{}, fmt.Errorf("failed to open tags of %s: %w", path, err)
	}
	defer tag.Close()

	return Tags{
		Title:  tag.Title(),
		Artist: tag.Artist(),
	}, nil
}
