// Package extract runs the download-extract-locate-rename workflow.
//
// A Controller launches one background job at a time. The job shells out to
// the downloader, finds the MP3 it produced in the output directory and
// optionally renames it. Progress is reported as Update values on a channel;
// the owner drains the channel and applies each update to its Session, so
// the job goroutine never touches UI state directly.
package extract
