package model

import "testing"

func TestJobState_IsActive(t *testing.T) {
	tests := []struct {
		state    JobState
		expected bool
	}{
		{JobStateIdle, false},
		{JobStateValidating, true},
		{JobStateExecuting, true},
		{JobStateLocating, true},
		{JobStateRenaming, true},
		{JobStateCompleted, false},
		{JobStateFailed, false},
	}

	for _, test := range tests {
		result := test.state.IsActive()
		if result != test.expected {
			t.Errorf("JobState(%s).IsActive() = %v, expected %v", test.state, result, test.expected)
		}
	}
}

func TestJobState_IsReady(t *testing.T) {
	tests := []struct {
		state    JobState
		expected bool
	}{
		{JobStateIdle, true},
		{JobStateValidating, false},
		{JobStateExecuting, false},
		{JobStateLocating, false},
		{JobStateRenaming, false},
		{JobStateCompleted, true},
		{JobStateFailed, true},
	}

	for _, test := range tests {
		result := test.state.IsReady()
		if result != test.expected {
			t.Errorf("JobState(%s).IsReady() = %v, expected %v", test.state, result, test.expected)
		}
	}
}

func TestJobState_CanTransition(t *testing.T) {
	tests := []struct {
		name     string
		from     JobState
		to       JobState
		expected bool
	}{
		{"idle starts validating", JobStateIdle, JobStateValidating, true},
		{"idle cannot skip to executing", JobStateIdle, JobStateExecuting, false},
		{"validation failure", JobStateValidating, JobStateFailed, true},
		{"execution to locating", JobStateExecuting, JobStateLocating, true},
		{"execution cannot complete directly", JobStateExecuting, JobStateCompleted, false},
		{"locating without filename completes", JobStateLocating, JobStateCompleted, true},
		{"locating with filename renames", JobStateLocating, JobStateRenaming, true},
		{"renaming completes", JobStateRenaming, JobStateCompleted, true},
		{"completed accepts next job", JobStateCompleted, JobStateValidating, true},
		{"failed accepts next job", JobStateFailed, JobStateValidating, true},
		{"completed cannot fail", JobStateCompleted, JobStateFailed, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.from.CanTransition(tt.to); got != tt.expected {
				t.Errorf("%s -> %s: expected %v, got %v", tt.from, tt.to, tt.expected, got)
			}
		})
	}
}

func TestJobState_String(t *testing.T) {
	state := JobStateExecuting
	expected := "Executing"
	result := state.String()

	if result != expected {
		t.Errorf("JobState.String() = %s, expected %s", result, expected)
	}
}
