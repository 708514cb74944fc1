package platform

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

type fakeRunner struct {
	mu      sync.Mutex
	outputs map[string]string
	codes   map[string]int
	calls   []string
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) (string, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, filepath.Base(name)+" "+strings.Join(args, " "))
	return f.outputs[name], f.codes[name], nil
}

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte{}, 0755); err != nil {
		t.Fatalf("Failed to create %s: %v", path, err)
	}
}

func TestLocateTools(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, ExecutableName(DownloaderName)))
	touch(t, filepath.Join(dir, ExecutableName(TranscoderName)))

	tools, err := LocateTools(dir)
	if err != nil {
		t.Fatalf("Expected tools to be found, got %v", err)
	}
	if tools.Downloader != filepath.Join(dir, ExecutableName(DownloaderName)) {
		t.Errorf("Unexpected downloader path: %s", tools.Downloader)
	}
	if tools.Transcoder != filepath.Join(dir, ExecutableName(TranscoderName)) {
		t.Errorf("Unexpected transcoder path: %s", tools.Transcoder)
	}
}

func TestLocateTools_Missing(t *testing.T) {
	tests := []struct {
		name    string
		present []string
		missing string
	}{
		{"no tools", nil, ExecutableName(DownloaderName)},
		{"transcoder missing", []string{DownloaderName}, ExecutableName(TranscoderName)},
		{"downloader missing", []string{TranscoderName}, ExecutableName(DownloaderName)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			for _, base := range tt.present {
				touch(t, filepath.Join(dir, ExecutableName(base)))
			}

			_, err := LocateTools(dir)
			if !errors.Is(err, ErrToolNotFound) {
				t.Fatalf("Expected ErrToolNotFound, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.missing) {
				t.Errorf("Expected error to name %s, got %v", tt.missing, err)
			}
		})
	}
}

func TestLocateTools_DirectoryIsNotATool(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, ExecutableName(DownloaderName)), 0755); err != nil {
		t.Fatal(err)
	}
	touch(t, filepath.Join(dir, ExecutableName(TranscoderName)))

	if _, err := LocateTools(dir); !errors.Is(err, ErrToolNotFound) {
		t.Errorf("Expected ErrToolNotFound for directory entry, got %v", err)
	}
}

func TestProbeTools(t *testing.T) {
	tools := Tools{Downloader: "/opt/yt-dlp", Transcoder: "/opt/ffmpeg"}
	runner := &fakeRunner{
		outputs: map[string]string{
			tools.Downloader: "2025.07.21\n",
			tools.Transcoder: "ffmpeg version 7.1 Copyright (c)\nbuilt with gcc\n",
		},
		codes: map[string]int{},
	}

	versions, err := ProbeTools(context.Background(), runner, tools)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if versions.Downloader != "2025.07.21" {
		t.Errorf("Unexpected downloader version: %q", versions.Downloader)
	}
	if versions.Transcoder != "ffmpeg version 7.1 Copyright (c)" {
		t.Errorf("Unexpected transcoder version: %q", versions.Transcoder)
	}
	if len(runner.calls) != 2 {
		t.Errorf("Expected 2 probe calls, got %d", len(runner.calls))
	}
}

func TestProbeTools_Failure(t *testing.T) {
	tools := Tools{Downloader: "/opt/yt-dlp", Transcoder: "/opt/ffmpeg"}
	runner := &fakeRunner{
		outputs: map[string]string{},
		codes:   map[string]int{tools.Transcoder: 1},
	}

	_, err := ProbeTools(context.Background(), runner, tools)
	if err == nil {
		t.Fatal("Expected error when a probe exits non-zero")
	}
	if !strings.Contains(err.Error(), "exited with code 1") {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestResolveToolsDir(t *testing.T) {
	dir, err := ResolveToolsDir("/opt/yt-mp3")
	if err != nil || dir != "/opt/yt-mp3" {
		t.Errorf("Expected configured dir, got %q, %v", dir, err)
	}

	dir, err = ResolveToolsDir("")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	exeDir, _ := ExecutableDir()
	if dir != exeDir {
		t.Errorf("Expected executable dir %s, got %s", exeDir, dir)
	}
}
