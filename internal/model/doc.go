package model

// Package model defines domain data structures used across the app: the job
// request collected from the form, the produced audio artifact, and the job
// state machine. Values are plain structs so they can be passed by value into
// the background worker and back to the UI.
