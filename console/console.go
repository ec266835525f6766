package console

// Logger is the default process-wide printer behind the package-level
// convenience functions.
var Logger = New()

// Log prints a normal message through the default printer.
func Log(format string, args ...any) error {
	return Logger.Msgf(format, args...)
}

// Debug prints a debug message through the default printer.
func Debug(format string, args ...any) error {
	return Logger.Debugf(format, args...)
}

// Warn prints a warning through the default printer.
func Warn(format string, args ...any) error {
	return Logger.Warnf(format, args...)
}

// Error prints an error through the default printer.
func Error(format string, args ...any) error {
	return Logger.Errorf(format, args...)
}

// Printf writes raw colorized output through the default printer, in its
// prefix color unless InColor was applied.
func Printf(format string, args ...any) error {
	return Logger.Printf(format, args...)
}

// Box draws a single box glyph through the default printer.
func Box(filled bool) error {
	return Logger.Box(filled)
}

// HLine prints a snow-colored horizontal rule through the default printer.
func HLine(length int) error {
	return Logger.HLine(length)
}
