package extract

import (
	"path/filepath"

	"github.com/ytget/yt-mp3/internal/model"
)

// Downloader flags
const (
	ExtractAudioFlag   = "-x"
	AudioFormatFlag    = "--audio-format"
	AudioFormatMP3     = "mp3"
	AudioQualityFlag   = "--audio-quality"
	NoPlaylistFlag     = "--no-playlist"
	OutputFlag         = "-o"
	FFmpegLocationFlag = "--ffmpeg-location"

	// OutputTemplate names the artifact after the video title and id
	OutputTemplate = "%(title)s_%(id)s.%(ext)s"
)

// BuildArgs returns the downloader arguments for req. The order is fixed:
// URL first, then extraction flags, output template and transcoder location.
func BuildArgs(req model.JobRequest, transcoderPath string) []string {
	return []string{
		req.URL,
		ExtractAudioFlag,
		AudioFormatFlag, AudioFormatMP3,
		AudioQualityFlag, req.Quality.Arg(),
		NoPlaylistFlag,
		OutputFlag, filepath.Join(req.OutputDir, OutputTemplate),
		FFmpegLocationFlag, transcoderPath,
	}
}
