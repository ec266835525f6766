package console

import "io"

// Option configures a Printer at construction time.
type Option func(*Printer)

// WithPrefix sets the printer's default prefix string.
func WithPrefix(prefix string) Option {
	return func(p *Printer) { p.prefix = prefix }
}

// WithPrefixColor sets the color name used for the prefix text. Unknown
// names fall back to the default prefix color.
func WithPrefixColor(name string) Option {
	return func(p *Printer) {
		if f, err := Func(name); err == nil {
			p.prefixFn = f
		}
	}
}

// WithMessageColor sets the color name used for the message text. Unknown
// names fall back to the default message color.
func WithMessageColor(name string) Option {
	return func(p *Printer) {
		if f, err := Func(name); err == nil {
			p.msgFn = f
		}
	}
}

// WithStreams redirects the printer's normal and error output. Defaults are
// os.Stdout and os.Stderr.
func WithStreams(out, err io.Writer) Option {
	return func(p *Printer) {
		if out != nil {
			p.out = out
		}
		if err != nil {
			p.err = err
		}
	}
}

// WithNotifier replaces the desktop notification bridge. Useful for tests
// and for hosts without a notification service.
func WithNotifier(n Notifier) Option {
	return func(p *Printer) { p.bridge.n = n }
}

// CallOption adjusts a single message, applied through Printer.With.
type CallOption func(*Printer)

// Prefix overrides the printer's default prefix for this call.
func Prefix(prefix string) CallOption {
	return func(p *Printer) {
		p.callPrefix = &prefix
	}
}

// HidePrefix renders the prefix as blank space while preserving the
// indentation it would have produced.
func HidePrefix() CallOption {
	return func(p *Printer) { p.hidePrefix = true }
}

// Quiet overrides the global quiet mode for this call.
func Quiet(on bool) CallOption {
	return func(p *Printer) { p.quiet = &on }
}

// Popup also raises a desktop notification with the final message.
func Popup() CallOption {
	return func(p *Printer) { p.popup = true }
}

// InColor selects the color for the raw Printf path. The name is validated
// when the write happens.
func InColor(name string) CallOption {
	return func(p *Printer) { p.rawColor = name }
}
