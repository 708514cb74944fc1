package extract

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/ytget/yt-mp3/internal/i18n"
	"github.com/ytget/yt-mp3/internal/media"
	"github.com/ytget/yt-mp3/internal/model"
	"github.com/ytget/yt-mp3/internal/platform"
)

// updatesBuffer is enough for every update of one job
const updatesBuffer = 32

// Translator renders catalog keys into user-facing text
type Translator interface {
	GetText(key string) string
	Format(key string, args ...any) string
}

// Controller runs jobs in the background, one at a time
type Controller struct {
	tools   platform.Tools
	runner  platform.ProcessRunner
	tr      Translator
	logger  *slog.Logger
	updates chan Update
	busy    atomic.Bool

	readTags func(path string) (media.Tags, error)
}

// NewController creates a controller that runs tools through runner
func NewController(tools platform.Tools, runner platform.ProcessRunner, tr Translator, logger *slog.Logger) *Controller {
	return &Controller{
		tools:    tools,
		runner:   runner,
		tr:       tr,
		logger:   logger,
		updates:  make(chan Update, updatesBuffer),
		readTags: media.ReadTags,
	}
}

// Updates delivers job progress. The channel must be drained by the owner.
func (c *Controller) Updates() <-chan Update {
	return c.updates
}

// Busy reports whether a job is in flight
func (c *Controller) Busy() bool {
	return c.busy.Load()
}

// Start validates req and launches a job for it. The returned id tags every
// Update of the job. onStart, when set, receives the id before the job
// goroutine exists, so the owner can begin its session ahead of any update.
// A *ValidationError means no job was started.
func (c *Controller) Start(req model.JobRequest, onStart func(id string)) (string, error) {
	if !c.busy.CompareAndSwap(false, true) {
		return "", ErrJobInFlight
	}

	req, err := Validate(req)
	if err != nil {
		c.busy.Store(false)
		return "", err
	}

	id := newJobID()
	c.logger.Info("Job started", "id", id, "url", req.URL, "dir", req.OutputDir, "quality", req.Quality.String())
	if onStart != nil {
		onStart(id)
	}
	go c.run(id, req)
	return id, nil
}

// Rename moves artifact to desired in its directory. It never changes the
// state of a job and is refused while a job is running.
func (c *Controller) Rename(artifact model.Artifact, desired string) (model.Artifact, error) {
	if c.busy.Load() {
		return artifact, ErrJobInFlight
	}

	renamed, err := RenameArtifact(artifact, desired)
	if err != nil {
		c.logger.Warn("Rename failed", "path", artifact.Path, "name", desired, "error", err)
		return artifact, err
	}
	c.logger.Info("Artifact renamed", "from", artifact.Path, "to", renamed.Path)
	return renamed, nil
}

// job tracks the state of one run
type job struct {
	id    string
	state model.JobState
}

// run is the job goroutine. The deferred block always releases the guard
// before posting the final update.
func (c *Controller) run(id string, req model.JobRequest) {
	j := &job{id: id, state: model.JobStateIdle}
	var final Update

	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("Job panicked", "id", id, "panic", r)
			err := fmt.Errorf("job panicked: %v", r)
			final = c.failure(j, c.tr.Format(i18n.KeyUnexpectedError, r), "", err)
		}
		c.busy.Store(false)
		final.Done = true
		c.updates <- final
	}()

	final = c.execute(j, req)
}

func (c *Controller) execute(j *job, req model.JobRequest) Update {
	c.post(j, model.JobStateValidating, c.tr.GetText(i18n.KeyStarting), c.tr.GetText(i18n.KeyStarting))

	args := BuildArgs(req, c.tools.Transcoder)
	cmdLine := platform.FormatCommandLine(c.tools.Downloader, args)
	c.logger.Debug("Running downloader", "id", j.id, "cmd", cmdLine)
	c.post(j, model.JobStateExecuting, c.tr.GetText(i18n.KeyExecuting), c.tr.GetText(i18n.KeyCallingTool)+"\n"+cmdLine)

	output, err := c.download(args)
	if err != nil {
		var execErr *ExecutionError
		details := err.Error()
		if errors.As(err, &execErr) {
			details = describeExecution(c.tr, execErr)
		}
		c.logger.Error("Downloader failed", "id", j.id, "error", err)
		return c.failure(j, c.tr.GetText(i18n.KeyExecutionFailed), details, err)
	}

	c.post(j, model.JobStateLocating, c.tr.GetText(i18n.KeyLocating), strings.TrimSpace(output))
	artifact, err := LocateArtifact(req.OutputDir, model.AudioExtension)
	if err != nil {
		c.logger.Error("Artifact not found", "id", j.id, "dir", req.OutputDir, "error", err)
		return c.failure(j, c.tr.GetText(i18n.KeyNoArtifact), "", err)
	}
	c.logger.Info("Artifact located", "id", j.id, "path", artifact.Path)
	c.postArtifact(j, artifact, "")
	c.logTags(j, artifact)

	if req.Filename != "" {
		c.post(j, model.JobStateRenaming, c.tr.GetText(i18n.KeyRenaming), "")
		renamed, err := RenameArtifact(artifact, req.Filename)
		if err != nil {
			// The download itself succeeded; keep the original name
			c.logger.Warn("Auto-rename failed", "id", j.id, "path", artifact.Path, "error", err)
			c.post(j, "", "", c.tr.Format(i18n.KeyRenameFailed, err))
		} else {
			artifact = renamed
			c.postArtifact(j, artifact, c.tr.Format(i18n.KeyRenamedTo, artifact.Path))
		}
	}

	j.advance(c.logger, model.JobStateCompleted)
	c.logger.Info("Job completed", "id", j.id, "path", artifact.Path)
	return Update{
		JobID:  j.id,
		State:  model.JobStateCompleted,
		Status: c.tr.GetText(i18n.KeyCompleted),
		Log:    c.tr.Format(i18n.KeyCompletedFile, artifact.Path),
	}
}

// download runs the downloader once, without retry or timeout
func (c *Controller) download(args []string) (string, error) {
	output, exitCode, err := c.runner.Run(context.Background(), c.tools.Downloader, args...)
	if err != nil {
		return output, &ExecutionError{ExitCode: -1, Output: output, Err: err}
	}
	if exitCode != 0 {
		return output, &ExecutionError{ExitCode: exitCode, Output: output}
	}
	c.logger.Debug("Downloader finished", "output", output)
	return output, nil
}

func (c *Controller) logTags(j *job, artifact model.Artifact) {
	tags, err := c.readTags(artifact.Path)
	if err != nil {
		c.logger.Debug("Failed to read tags", "path", artifact.Path, "error", err)
		return
	}
	if tags.IsEmpty() {
		return
	}
	c.logger.Info("Artifact tags", "id", j.id, "title", tags.Title, "artist", tags.Artist)
	c.post(j, "", "", c.tr.Format(i18n.KeyTags, tags.Artist, tags.Title))
}

func (c *Controller) post(j *job, state model.JobState, status, logText string) {
	if state != "" {
		j.advance(c.logger, state)
	}
	c.updates <- Update{JobID: j.id, State: state, Status: status, Log: logText}
}

func (c *Controller) postArtifact(j *job, artifact model.Artifact, logText string) {
	c.updates <- Update{JobID: j.id, Artifact: &artifact, Log: logText}
}

func (c *Controller) failure(j *job, status, details string, err error) Update {
	j.advance(c.logger, model.JobStateFailed)
	logText := status
	if details != "" {
		logText += "\n" + details
	}
	return Update{JobID: j.id, State: model.JobStateFailed, Status: status, Log: logText, Err: err}
}

// advance moves the job to next, logging steps the state machine does not allow
func (j *job) advance(logger *slog.Logger, next model.JobState) {
	if j.state == next {
		return
	}
	if !j.state.CanTransition(next) {
		logger.Warn("Unexpected job state transition", "id", j.id, "from", j.state, "to", next)
	}
	j.state = next
}

// describeExecution renders the captured output and exit status for the log
func describeExecution(tr Translator, err *ExecutionError) string {
	var b strings.Builder
	if out := strings.TrimSpace(err.Output); out != "" {
		b.WriteString(out)
		b.WriteString("\n")
	}
	if err.Err != nil {
		b.WriteString(tr.Format(i18n.KeyUnexpectedError, err.Err))
	} else {
		b.WriteString(tr.Format(i18n.KeyExitCode, err.ExitCode))
	}
	return b.String()
}

func newJobID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
