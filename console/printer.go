package console

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
)

// ErrEmptyMessage is returned when a message is emitted with no text at all.
var ErrEmptyMessage = errors.New("message argument is required")

// severity classifies a message. It is resolved once per call into the
// prefix text, colors, target stream, and file tag that render it.
type severity int

const (
	sevNormal severity = iota
	sevDebug
	sevWarning
	sevError
)

// renderSpec is the per-severity rendering rule set.
type renderSpec struct {
	prefix   string // canonical prefix forced by severity, "" for normal
	prefixFn ColorFunc
	msgFn    ColorFunc
	stream   io.Writer
	fileTag  string // severity tag written to the log file
	mirror   bool   // whether the message is mirrored to the log file
}

// Printer renders prefixed, colorized, multi-line console messages. Distinct
// printers may carry their own prefix and colors, but the log file, the
// hanging-line flag, and the quiet/debug switches are shared process-wide.
type Printer struct {
	prefix   string
	prefixFn ColorFunc
	msgFn    ColorFunc
	out      io.Writer
	err      io.Writer
	bridge   *notifierBridge

	// Per-call overrides, populated on the copies returned by With.
	callPrefix *string
	hidePrefix bool
	quiet      *bool
	popup      bool
	rawColor   string
}

// New creates a printer with the given construction options.
func New(opts ...Option) *Printer {
	p := &Printer{
		prefixFn: colFunc[DefaultPrefixColor],
		msgFn:    colFunc[DefaultMessageColor],
		out:      os.Stdout,
		err:      os.Stderr,
		bridge:   &notifierBridge{},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// With returns a copy of the printer with per-call options applied. The copy
// shares the notification bridge, so the bridge is still constructed at most
// once per printer.
func (p *Printer) With(opts ...CallOption) *Printer {
	q := *p
	for _, opt := range opts {
		opt(&q)
	}
	return &q
}

// Msgf prints a normal message through the full pipeline.
func (p *Printer) Msgf(format string, args ...any) error {
	return p.emit(sevNormal, format, args)
}

// Debugf prints a debug message. Suppressed unless debug mode is enabled,
// and never mirrored to the log file.
func (p *Printer) Debugf(format string, args ...any) error {
	return p.emit(sevDebug, format, args)
}

// Warnf prints a warning to the error stream. Displayed even in quiet mode.
func (p *Printer) Warnf(format string, args ...any) error {
	return p.emit(sevWarning, format, args)
}

// Errorf prints an error to the error stream. Displayed even in quiet mode.
func (p *Printer) Errorf(format string, args ...any) error {
	return p.emit(sevError, format, args)
}

// resolve maps a severity to its rendering rules.
func (p *Printer) resolve(sev severity) renderSpec {
	switch sev {
	case sevError:
		return renderSpec{
			prefix:   "Error",
			prefixFn: colFunc["red"],
			msgFn:    colFunc["red"],
			stream:   p.err,
			fileTag:  "ERROR -> ",
			mirror:   true,
		}
	case sevWarning:
		return renderSpec{
			prefix:   "Warning",
			prefixFn: colFunc["orange"],
			msgFn:    colFunc["orange"],
			stream:   p.err,
			fileTag:  "WARNING -> ",
			mirror:   true,
		}
	case sevDebug:
		return renderSpec{
			prefix:   "Debug",
			prefixFn: colFunc["dimgray"],
			msgFn:    colFunc["smoke"],
			stream:   p.out,
			mirror:   false,
		}
	default:
		return renderSpec{
			prefixFn: p.prefixFn,
			msgFn:    p.msgFn,
			stream:   p.out,
			mirror:   true,
		}
	}
}

// emit implements the message pipeline: gating, prefix resolution, text
// construction, color selection, hanging-line resolution, aligned rendering,
// file mirroring, and the optional popup.
func (p *Printer) emit(sev severity, format string, args []any) error {
	// Quick exit for quiet mode and non-debug-mode. Warnings and errors are
	// always displayed.
	quiet := state.quietMode
	if p.quiet != nil {
		quiet = *p.quiet
	}
	if sev != sevWarning && sev != sevError {
		if quiet || (sev == sevDebug && !state.debugMode) {
			return nil
		}
	}

	// Resolve the display prefix. Severity forces a canonical prefix; an
	// explicit per-call prefix otherwise replaces the instance default.
	prefix := strings.TrimSpace(p.prefix)
	explicit := false
	if p.callPrefix != nil {
		prefix = strings.TrimSpace(*p.callPrefix)
		explicit = prefix != "" && prefix != strings.TrimSpace(p.prefix)
	}
	spec := p.resolve(sev)
	if spec.prefix != "" {
		prefix = spec.prefix
	}
	pre := ""
	if prefix != "" {
		pre = prefix + ": "
	}
	width := runewidth.StringWidth(pre)
	display := pre
	if p.hidePrefix {
		display = strings.Repeat(" ", width)
	}

	// Construct the message text.
	if format == "" && len(args) == 0 {
		return ErrEmptyMessage
	}
	text := format
	if len(args) > 0 {
		text = fmt.Sprintf(format, args...)
	}
	if strings.ContainsRune(text, os.PathSeparator) {
		text = collapseHome(text)
	}

	// A previous raw write left the line unterminated; start clean.
	if state.hanging {
		p.rawWrite("\n")
	}

	// First line carries the prefix; continuation lines are indented to the
	// prefix's display width so they align under the message column.
	lines := strings.Split(text, "\n")
	fmt.Fprintln(spec.stream, spec.prefixFn(display)+spec.msgFn(lines[0]))
	indent := strings.Repeat(" ", width)
	for _, line := range lines[1:] {
		fmt.Fprintln(spec.stream, indent+spec.msgFn(line))
	}

	// Mirror to the log file. Debug noise is not persisted.
	if spec.mirror && state.file.isOpen() {
		tag := spec.fileTag
		if tag == "" && explicit && !p.hidePrefix {
			tag = pre
		}
		state.file.writeLine(text, tag)
	}

	if p.popup {
		p.notify(sev, text)
	}
	return nil
}

// Printf writes a raw, immediately flushed string in the given color (the
// prefix color unless InColor was applied), bypassing prefixing entirely.
// A stripped copy is mirrored to the open log file without timestamping.
// This is the sole producer of hanging-line state: the flag is set unless
// the written text ends in a line terminator.
func (p *Printer) Printf(format string, args ...any) error {
	quiet := state.quietMode
	if p.quiet != nil {
		quiet = *p.quiet
	}
	if quiet {
		return nil
	}
	colf := p.prefixFn
	if p.rawColor != "" {
		f, err := Func(p.rawColor)
		if err != nil {
			return err
		}
		colf = f
	}
	s := fmt.Sprintf(format, args...)
	fmt.Fprint(p.out, colf(s))
	state.file.write(s)
	state.hanging = !strings.HasSuffix(s, "\n")
	return nil
}

// rawWrite emits uncolored text on the normal stream and mirrors it,
// updating the hanging flag. Used to resolve hanging lines regardless of
// quiet gating.
func (p *Printer) rawWrite(s string) {
	fmt.Fprint(p.out, s)
	state.file.write(s)
	state.hanging = !strings.HasSuffix(s, "\n")
}

// Newline inserts a bare newline.
func (p *Printer) Newline() {
	_ = p.Printf("\n")
}

// Box draws a single filled or empty box glyph.
func (p *Printer) Box(filled bool) error {
	glyph := "□"
	if filled {
		glyph = "■"
	}
	return p.Printf("%s", glyph)
}

// HLine prints a horizontal rule of length repeated rule characters in the
// snow color, resolving any hanging line first.
func (p *Printer) HLine(length int) error {
	if length <= 0 {
		length = 80
	}
	if state.hanging {
		p.rawWrite("\n")
	}
	q := p
	if p.rawColor == "" {
		q = p.With(InColor("snow"))
	}
	return q.Printf("%s\n", strings.Repeat("─", length))
}

// collapseHome shortens home-directory paths to ~ for display. Only tokens
// that begin with the home directory at a path component boundary collapse;
// a home-dir substring embedded elsewhere in the text is left alone.
func collapseHome(s string) string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return s
	}
	fields := strings.Split(s, " ")
	for i, field := range fields {
		if !strings.HasPrefix(field, home) {
			continue
		}
		rest := field[len(home):]
		if rest == "" || rest[0] == os.PathSeparator {
			fields[i] = "~" + rest
		}
	}
	return strings.Join(fields, " ")
}
