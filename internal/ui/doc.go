// Package ui contains the Fyne form that drives extraction jobs.
//
// The form collects the URL, output directory, filename and quality, starts
// jobs on the extract.Controller and renders its updates. A single drain
// goroutine forwards controller updates and artifact watcher events onto the
// Fyne thread with fyne.Do, so all widgets and the Session are written from
// that thread only.
package ui
