package media

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bogem/id3v2/v2"
)

func writeTaggedFile(t *testing.T, path, title, artist string) {
	t.Helper()

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}
	defer f.Close()

	tag := id3v2.NewEmptyTag()
	tag.SetTitle(title)
	tag.SetArtist(artist)
	if _, err := tag.WriteTo(f); err != nil {
		t.Fatalf("Failed to write tag: %v", err)
	}
	// Fake audio payload after the header
	if _, err := f.Write(make([]byte, 128)); err != nil {
		t.Fatalf("Failed to write payload: %v", err)
	}
}

func TestReadTags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Song_Title_abc123.mp3")
	writeTaggedFile(t, path, "Song Title", "Some Artist")

	tags, err := ReadTags(path)
	if err != nil {
		t.Fatalf("ReadTags returned error: %v", err)
	}
	if tags.Title != "Song Title" {
		t.Errorf("Expected title 'Song Title', got %q", tags.Title)
	}
	if tags.Artist != "Some Artist" {
		t.Errorf("Expected artist 'Some Artist', got %q", tags.Artist)
	}
	if tags.IsEmpty() {
		t.Error("Expected tags to be non-empty")
	}
}

func TestReadTags_Untagged(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plain.mp3")
	if err := os.WriteFile(path, []byte("not really audio"), 0644); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}

	tags, err := ReadTags(path)
	if err != nil {
		t.Fatalf("ReadTags returned error: %v", err)
	}
	if !tags.IsEmpty() {
		t.Errorf("Expected empty tags, got %+v", tags)
	}
}

func TestReadTags_MissingFile(t *testing.T) {
	if _, err := ReadTags(filepath.Join(t.TempDir(), "missing.mp3")); err == nil {
		t.Error("Expected error for missing file")
	}
}
