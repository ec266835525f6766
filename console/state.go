package console

// Shared printer state. Every Printer in the process observes the same log
// file, hanging flag, and mode switches, so raw output and prefixed output
// from independent printers never interleave mid-line and all printers mirror
// into the same file.
//
// The package is not safe for concurrent use; callers that print from
// multiple goroutines must serialize externally.
type printerState struct {
	file      outputFile
	hanging   bool
	quietMode bool
	debugMode bool
}

var state printerState

// SetQuietMode suppresses all normal and debug output process-wide. Warning
// and error messages are still printed.
func SetQuietMode(on bool) { state.quietMode = on }

// QuietModeEnabled reports whether quiet mode is active.
func QuietModeEnabled() bool { return state.quietMode }

// SetDebugMode enables debug-severity output process-wide.
func SetDebugMode(on bool) { state.debugMode = on }

// DebugModeEnabled reports whether debug mode is active.
func DebugModeEnabled() bool { return state.debugMode }

// ResetState closes any open output file and restores the zero state. It
// exists for test isolation; production code normally lets the process exit
// tear everything down.
func ResetState() {
	state.file.close()
	state = printerState{}
}
