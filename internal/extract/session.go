package extract

import (
	"strings"

	"github.com/ytget/yt-mp3/internal/model"
)

// Session is the state behind the form: the current artifact, the job
// state, the status line, the log and the busy flag. It is owned by a single
// goroutine (the UI thread or the CLI loop) and is not safe for concurrent use.
type Session struct {
	JobID    string
	State    model.JobState
	Status   string
	Artifact model.Artifact
	Filename string // text of the filename field
	Busy     bool
	Err      error

	log []string
}

// NewSession returns an idle session
func NewSession() *Session {
	return &Session{State: model.JobStateIdle}
}

// Begin marks a freshly started job. The previous artifact is kept until the
// new job locates its own.
func (s *Session) Begin(jobID string) {
	s.JobID = jobID
	s.State = model.JobStateValidating
	s.Busy = true
	s.Err = nil
}

// Apply folds an update into the session. Updates of other jobs are ignored.
func (s *Session) Apply(u Update) {
	if u.JobID != "" && s.JobID != "" && u.JobID != s.JobID {
		return
	}

	if u.State != "" {
		s.State = u.State
	}
	if u.Status != "" {
		s.Status = u.Status
	}
	if u.Log != "" {
		s.AppendLog(u.Log)
	}
	if u.Artifact != nil {
		s.Artifact = *u.Artifact
		s.Filename = u.Artifact.Name
	}
	if u.Err != nil {
		s.Err = u.Err
	}
	if u.Done {
		s.Busy = false
	}
}

// Renamed records the result of a manual rename
func (s *Session) Renamed(a model.Artifact) {
	s.Artifact = a
	s.Filename = a.Name
}

// Invalidate forgets the artifact after it left its path
func (s *Session) Invalidate() {
	s.Artifact = model.Artifact{}
}

// CanRename reports whether the rename control should be enabled
func (s *Session) CanRename() bool {
	return !s.Busy && !s.Artifact.IsZero()
}

// AppendLog adds one or more lines to the log
func (s *Session) AppendLog(text string) {
	for _, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		s.log = append(s.log, strings.TrimRight(line, "\r"))
	}
}

// LogLines returns a copy of the log
func (s *Session) LogLines() []string {
	lines := make([]string, len(s.log))
	copy(lines, s.log)
	return lines
}

// LogText returns the log joined with newlines
func (s *Session) LogText() string {
	return strings.Join(s.log, "\n")
}
