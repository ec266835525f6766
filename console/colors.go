// Package console provides colorful, prefixed terminal output with optional
// log-file mirroring, desktop notifications, and multi-line indentation that
// keeps continuation lines aligned under the message column.
package console

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"runtime"
	"strings"

	"github.com/fatih/color"
)

// ColorFunc wraps text in the ANSI escape sequence for one named color.
type ColorFunc func(a ...interface{}) string

// ErrUnknownColor is returned when a color name is not in the palette.
var ErrUnknownColor = errors.New("unknown color")

const (
	// DefaultPrefixColor is applied to the prefix when no color is configured.
	DefaultPrefixColor = "cyan"

	// DefaultMessageColor is applied to message text when no color is configured.
	DefaultMessageColor = "default"
)

// windows disables escape sequences entirely: legacy consoles render them as
// garbage, so every formatter degenerates to the identity function there.
var windows = runtime.GOOS == "windows"

// colorNames is the palette in display order. Synonyms come last.
var colorNames = []string{
	"snow", "white", "lightgray", "smoke", "dimgray", "gray",
	"cadetblue", "seafoam", "cyan", "blue", "purple", "pink",
	"red", "orange", "yellow", "ochre", "green", "default",
	"lightred", "lightgreen", "brown", "lightblue", "lightcyan",
}

// colorAttrs maps each primary name to its fatih/color attributes. The
// palette mirrors the historical one, including its quirks (dimgray renders
// as bright yellow, lightgray as bright cyan).
var colorAttrs = map[string][]color.Attribute{
	"snow":      {color.FgHiWhite},
	"white":     {color.FgWhite},
	"lightgray": {color.FgHiCyan},
	"smoke":     {color.FgHiCyan},
	"dimgray":   {color.FgHiYellow},
	"gray":      {color.FgHiBlack},
	"cadetblue": {color.FgHiBlue},
	"seafoam":   {color.FgHiGreen},
	"cyan":      {color.FgCyan},
	"blue":      {color.FgBlue},
	"purple":    {color.FgHiMagenta},
	"pink":      {color.FgMagenta},
	"red":       {color.FgRed},
	"orange":    {color.FgHiRed},
	"yellow":    {color.FgYellow},
	"ochre":     {color.FgYellow},
	"green":     {color.FgGreen},
	"default":   {color.Reset},
}

// colorAliases are documented synonyms kept for backwards compatibility.
// Each resolves to the same formatter as its target.
var colorAliases = map[string]string{
	"lightred":   "orange",
	"lightgreen": "seafoam",
	"brown":      "yellow",
	"lightblue":  "cadetblue",
	"lightcyan":  "lightgray",
}

// colFunc is built as a variable initializer, not in init, so that other
// package-level initializers (the default Logger in particular) already see
// the populated table.
var colFunc = buildColorTable()

func buildColorTable() map[string]ColorFunc {
	table := make(map[string]ColorFunc, len(colorNames))
	for name, attrs := range colorAttrs {
		table[name] = newColorFunc(attrs...)
	}
	for alias, target := range colorAliases {
		table[alias] = table[target]
	}
	// The palette is fixed; every enumerated name must have a formatter.
	for _, name := range colorNames {
		if table[name] == nil {
			panic(fmt.Sprintf("console: color %q has no formatter", name))
		}
	}
	return table
}

// newColorFunc builds a ColorFunc that emits escape codes unconditionally on
// non-Windows platforms. TTY detection is deliberately not performed.
func newColorFunc(attrs ...color.Attribute) ColorFunc {
	if windows {
		return func(a ...interface{}) string { return fmt.Sprint(a...) }
	}
	c := color.New(attrs...)
	c.EnableColor()
	return c.SprintFunc()
}

// Func returns the formatter for a color name.
func Func(name string) (ColorFunc, error) {
	f, ok := colFunc[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColor, name)
	}
	return f, nil
}

// Colorize wraps text in the escape sequences for the named color.
func Colorize(name, text string) (string, error) {
	f, err := Func(name)
	if err != nil {
		return "", err
	}
	return f(text), nil
}

// Names returns the full palette, synonyms included, in display order.
func Names() []string {
	names := make([]string, len(colorNames))
	copy(names, colorNames)
	return names
}

var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// StripColors removes ANSI escape codes from a string. Stripping an already
// plain string is a no-op.
func StripColors(s string) string {
	return ansiRegex.ReplaceAllString(s, "")
}

// Swatches writes one colored sample row per palette name to w.
func Swatches(w io.Writer) {
	for _, name := range colorNames {
		fmt.Fprintln(w, colFunc[name](" "+padName(name)+strings.Repeat("■", 68)))
	}
}

func padName(name string) string {
	if len(name) >= 11 {
		return name + " "
	}
	return name + strings.Repeat(" ", 11-len(name))
}
