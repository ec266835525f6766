package console

import (
	"fmt"
	"os"
	"time"
)

// outputFile is the process-wide optional log sink. Messages are mirrored
// into it with color codes stripped, one record per line, flushed on every
// write so an abrupt exit loses at most the line in flight.
type outputFile struct {
	path      string
	f         *os.File
	timestamp bool
}

func (o *outputFile) isOpen() bool { return o.f != nil }

// open opens the stored path in append or truncate mode. On failure the
// stored path and handle are cleared: mirroring is best-effort and must never
// stop console output.
func (o *outputFile) open(truncate bool) error {
	if o.path == "" {
		return fmt.Errorf("no output file has been set")
	}
	if o.isOpen() {
		return nil
	}
	flags := os.O_WRONLY | os.O_CREATE | os.O_APPEND
	if truncate {
		flags = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	}
	f, err := os.OpenFile(o.path, flags, 0o644)
	if err != nil {
		path := o.path
		o.path = ""
		o.f = nil
		fmt.Fprintf(os.Stderr, "Error: could not open %q: %v\n", path, err)
		return fmt.Errorf("could not open %q: %w", path, err)
	}
	o.f = f
	return nil
}

func (o *outputFile) close() {
	if o.f == nil {
		return
	}
	o.f.Close()
	o.f = nil
}

// remove closes and deletes the underlying file. Deletion failure is
// propagated to the caller.
func (o *outputFile) remove() error {
	o.close()
	if o.path == "" {
		return nil
	}
	return os.Remove(o.path)
}

// writeLine appends one stripped, newline-terminated record, with the
// optional timestamp tag first and then the severity or prefix tag.
func (o *outputFile) writeLine(text, tag string) {
	if !o.isOpen() {
		return
	}
	if o.timestamp {
		fmt.Fprintf(o.f, "[ %s ]  ", logTimestamp(time.Now()))
	}
	if tag != "" {
		o.f.WriteString(tag)
	}
	o.f.WriteString(StripColors(text) + "\n")
}

// write appends raw text with no timestamp and no terminator, for mirroring
// the unprefixed streaming path.
func (o *outputFile) write(text string) {
	if !o.isOpen() {
		return
	}
	o.f.WriteString(StripColors(text))
}

// logTimestamp renders the date-time tag with microsecond resolution, e.g.
// 2026-08-31+14:07+09.031337
func logTimestamp(t time.Time) string {
	return t.Format("2006-01-02+15:04+05.000000")
}

// SetOutputFile stores a new log file path and opens it immediately, closing
// any previously open file bound to a different path. Setting the same path
// while it is already open is a no-op.
func SetOutputFile(path string, truncate bool) error {
	if path == state.file.path && state.file.isOpen() {
		return nil
	}
	state.file.close()
	state.file.path = path
	if path == "" {
		return nil
	}
	return state.file.open(truncate)
}

// OpenFile opens the currently set output file.
func OpenFile(truncate bool) error { return state.file.open(truncate) }

// CloseFile closes the current output file. Safe to call when none is open.
func CloseFile() { state.file.close() }

// RemoveFile closes and deletes the current output file.
func RemoveFile() error { return state.file.remove() }

// SetTimestamps toggles per-line timestamp tags in the log file.
func SetTimestamps(on bool) { state.file.timestamp = on }

// OutputFilePath returns the currently set log file path, or "".
func OutputFilePath() string { return state.file.path }
