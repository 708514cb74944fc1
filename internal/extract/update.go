package extract

import "github.com/ytget/yt-mp3/internal/model"

// Update is one progress message posted by a job. Empty fields leave the
// corresponding part of the Session unchanged.
type Update struct {
	JobID    string
	State    model.JobState
	Status   string          // replaces the status line
	Log      string          // appended to the log
	Artifact *model.Artifact // current artifact, set after locate and rename
	Err      error           // terminal error of a failed job
	Done     bool            // last update of the job; the trigger may be re-enabled
}
