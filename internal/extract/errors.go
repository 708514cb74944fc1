package extract

import (
	"errors"
	"fmt"
)

// ErrJobInFlight is returned when a job is started or an artifact renamed
// while another job is still running.
var ErrJobInFlight = errors.New("a job is already in flight")

// ValidationReason identifies which form field rejected the request
type ValidationReason string

const (
	ReasonMissingURL       ValidationReason = "missing_url"
	ReasonMissingOutputDir ValidationReason = "missing_output_dir"
	ReasonInvalidQuality   ValidationReason = "invalid_quality"
)

// ValidationError reports a request that must not start a job
type ValidationError struct {
	Reason ValidationReason
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid job request: %s", e.Reason)
}

// ExecutionError reports a downloader run that did not succeed. ExitCode is
// -1 when the process could not be started; Output holds the combined
// stdout and stderr.
type ExecutionError struct {
	ExitCode int
	Output   string
	Err      error
}

func (e *ExecutionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("downloader failed to run: %v", e.Err)
	}
	return fmt.Sprintf("downloader exited with code %d", e.ExitCode)
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}

// LocateError reports that no artifact was found in Dir
type LocateError struct {
	Dir string
	Err error
}

func (e *LocateError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("no_artifact_found in %s: %v", e.Dir, e.Err)
	}
	return fmt.Sprintf("no_artifact_found in %s", e.Dir)
}

func (e *LocateError) Unwrap() error {
	return e.Err
}

// RenameReason identifies why a rename was refused
type RenameReason string

const (
	ReasonTargetExists RenameReason = "target_exists"
	ReasonIOFailure    RenameReason = "io_failure"
	ReasonMissingName  RenameReason = "missing_name"
	ReasonNoArtifact   RenameReason = "no_artifact"
)

// RenameError reports a rename that left the artifact where it was
type RenameError struct {
	Reason RenameReason
	Path   string
	Err    error
}

func (e *RenameError) Error() string {
	msg := fmt.Sprintf("rename failed: %s", e.Reason)
	if e.Path != "" {
		msg += fmt.Sprintf(" (%s)", e.Path)
	}
	if e.Err != nil {
		msg += fmt.Sprintf(": %v", e.Err)
	}
	return msg
}

func (e *RenameError) Unwrap() error {
	return e.Err
}
