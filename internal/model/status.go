package model

// JobState represents the lifecycle state of a single extraction job
type JobState string

const (
	// JobStateIdle means no job has run yet
	JobStateIdle JobState = "Idle"

	// JobStateValidating means the request is being checked
	JobStateValidating JobState = "Validating"

	// JobStateExecuting means the downloader process is running
	JobStateExecuting JobState = "Executing"

	// JobStateLocating means the output directory is being scanned for the artifact
	JobStateLocating JobState = "Locating"

	// JobStateRenaming means the artifact is being renamed to the requested filename
	JobStateRenaming JobState = "Renaming"

	// JobStateCompleted means the job produced an artifact
	JobStateCompleted JobState = "Completed"

	// JobStateFailed means the job was aborted
	JobStateFailed JobState = "Failed"
)

// transitions lists the allowed successors of each state.
var transitions = map[JobState][]JobState{
	JobStateIdle:       {JobStateValidating},
	JobStateValidating: {JobStateExecuting, JobStateFailed},
	JobStateExecuting:  {JobStateLocating, JobStateFailed},
	JobStateLocating:   {JobStateRenaming, JobStateCompleted, JobStateFailed},
	JobStateRenaming:   {JobStateCompleted, JobStateFailed},
	JobStateCompleted:  {JobStateValidating},
	JobStateFailed:     {JobStateValidating},
}

// String returns the string representation of JobState
func (s JobState) String() string {
	return string(s)
}

// IsActive returns true while a job is between validation and its final state
func (s JobState) IsActive() bool {
	return s == JobStateValidating || s == JobStateExecuting || s == JobStateLocating || s == JobStateRenaming
}

// IsFinished returns true if the job reached a final state (completed or failed)
func (s JobState) IsFinished() bool {
	return s == JobStateCompleted || s == JobStateFailed
}

// IsReady returns true if a new job may be started from this state
func (s JobState) IsReady() bool {
	return s == JobStateIdle || s.IsFinished()
}

// CanTransition reports whether moving from s to next is a legal step
func (s JobState) CanTransition(next JobState) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}
