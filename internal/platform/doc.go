package platform

// Package platform contains OS/platform integration and external tooling glue:
// locating the bundled downloader and transcoder, running them, filesystem
// helpers, watching the output directory, and OS open/reveal.
