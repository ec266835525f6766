// Package anybar drives an AnyBar menubar status indicator over UDP color
// commands. On platforms without the AnyBar application the package warns
// once and every operation becomes an inert no-op.
package anybar

import (
	"errors"
	"fmt"
	"net"
	"runtime"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/jdmonaco/pouty/console"
	"github.com/jdmonaco/pouty/internal/shell"
)

const (
	// BasePort is the well-known UDP port of the first AnyBar instance.
	// Additional concurrent instances listen on consecutive ports.
	BasePort = 1738

	appName = "AnyBar"
)

// ErrInvalidColor is returned when a color token is not recognized by the
// menubar application.
var ErrInvalidColor = errors.New("invalid color")

// colors is the fixed set of tokens the menubar application understands.
var colors = []string{
	"white", "red", "orange", "yellow", "green", "cyan",
	"blue", "purple", "black", "question", "exclamation",
}

// Colors returns the recognized color tokens.
func Colors() []string {
	out := make([]string, len(colors))
	copy(out, colors)
	return out
}

// ValidColor reports whether the menubar application recognizes the token.
func ValidColor(c string) bool {
	for _, known := range colors {
		if c == known {
			return true
		}
	}
	return false
}

// instances tracks the AnyBar processes this run has adopted or started,
// most recent last.
var instances []*AnyBar

// AnyBar is a client for one instance of the menubar application.
type AnyBar struct {
	color     string
	port      int
	pid       int
	conn      net.Conn
	inert     bool
	singleton bool
}

// Option configures an AnyBar client at construction time.
type Option func(*AnyBar)

// WithColor sets the initial color.
func WithColor(c string) Option {
	return func(a *AnyBar) { a.color = c }
}

// WithPort binds the client to an explicit UDP port, skipping process
// discovery and startup.
func WithPort(port int) Option {
	return func(a *AnyBar) {
		a.port = port
		a.singleton = false
	}
}

// WithPID binds the client to an already running process.
func WithPID(pid int) Option {
	return func(a *AnyBar) { a.pid = pid }
}

// New creates an AnyBar client. In the default singleton mode it adopts a
// running instance when one exists and starts the application otherwise. On
// any platform other than darwin the client warns and becomes inert, unless
// an explicit port was supplied (useful for tests and remote forwarding).
func New(opts ...Option) *AnyBar {
	a := &AnyBar{color: "white", singleton: true}
	for _, opt := range opts {
		opt(a)
	}
	if !a.singleton {
		instances = append(instances, a)
		return a
	}
	if runtime.GOOS != "darwin" {
		console.Warn("AnyBar not available (%s)", runtime.GOOS)
		a.inert = true
		return a
	}
	a.port = BasePort
	if running, err := shell.Pgrep(appName); err == nil && len(running) > 0 {
		a.pid = running[0]
	}
	if err := a.Start(); err != nil {
		console.Warn("AnyBar: %v", err)
	}
	return a
}

// String describes the client for diagnostics.
func (a *AnyBar) String() string {
	return fmt.Sprintf("AnyBar(color=%q, port=%d, pid=%d)", a.color, a.port, a.pid)
}

// Color returns the color most recently sent (or the initial color).
func (a *AnyBar) Color() string { return a.color }

// Port returns the bound UDP port, 0 when unbound.
func (a *AnyBar) Port() int { return a.port }

// Start launches a new instance of the menubar application if this client is
// not already bound to a live one. The listening port is allocated as the
// base port plus the number of instances already running.
func (a *AnyBar) Start() error {
	if a.inert {
		return nil
	}
	running, err := shell.Pgrep(appName)
	if err != nil {
		return err
	}
	already := false
	if a.pid != 0 {
		if containsPID(running, a.pid) {
			if a.port == 0 {
				a.Quit()
			} else {
				already = true
				_ = console.Logger.With(console.Prefix(appName)).Debugf("already running (%d)", a.pid)
			}
		} else {
			// The process went away behind our back.
			a.pid = 0
			a.port = 0
		}
	}
	if !already && a.port == 0 {
		a.port = BasePort + len(running)
	}
	if a.pid == 0 {
		pid, openErr := shell.Open(appName, true, fmt.Sprintf("ANYBAR_PORT=%d", a.port))
		if openErr != nil {
			return openErr
		}
		a.pid = pid
		instances = append(instances, a)
	}
	return nil
}

// Quit terminates this client's instance. If the targeted kill fails, every
// known instance is swept instead.
func (a *AnyBar) Quit() {
	if a.pid != 0 {
		err := shell.Kill(a.pid)
		if err != nil && !errors.Is(err, shell.ErrUnsupported) {
			_ = QuitAll()
		}
	}
	unregister(a)
	a.pid = 0
	a.port = 0
	if a.conn != nil {
		a.conn.Close()
		a.conn = nil
	}
}

// QuitAll terminates every instance this run started, then sweeps any
// leftover processes from previous runs. On platforms without the menubar
// application it warns and only clears the local registry.
func QuitAll() error {
	snapshot := make([]*AnyBar, len(instances))
	copy(snapshot, instances)
	instances = nil

	if runtime.GOOS != "darwin" {
		console.Warn("AnyBar not available (%s)", runtime.GOOS)
		for _, a := range snapshot {
			a.pid = 0
			a.port = 0
			if a.conn != nil {
				a.conn.Close()
				a.conn = nil
			}
		}
		return nil
	}

	var g errgroup.Group
	for _, a := range snapshot {
		a := a
		g.Go(func() error {
			if a.pid != 0 {
				_ = shell.Kill(a.pid)
			}
			a.pid = 0
			a.port = 0
			if a.conn != nil {
				a.conn.Close()
				a.conn = nil
			}
			return nil
		})
	}
	_ = g.Wait()
	return shell.Killall(appName)
}

// Toggle switches the most recent instance between two colors. An instance
// showing neither color is set to the first.
func Toggle(colorA, colorB string) error {
	if !ValidColor(colorA) {
		return fmt.Errorf("%w: %q", ErrInvalidColor, colorA)
	}
	if !ValidColor(colorB) {
		return fmt.Errorf("%w: %q", ErrInvalidColor, colorB)
	}
	if len(instances) == 0 {
		return nil
	}
	a := instances[len(instances)-1]
	switch a.color {
	case colorA:
		return a.SetColor(colorB)
	case colorB:
		return a.SetColor(colorA)
	default:
		return a.SetColor(colorA)
	}
}

// SetColor sends a color token to the instance as a UDP datagram. An
// unrecognized token is an invalid-argument error and nothing is sent; a
// client with no live port or process warns and does nothing.
func (a *AnyBar) SetColor(c string) error {
	if c == "" {
		c = a.color
	}
	if !ValidColor(c) {
		return fmt.Errorf("%w: %q", ErrInvalidColor, c)
	}
	if a.inert || a.port == 0 || a.pid == 0 {
		console.Warn("AnyBar: not running")
		return nil
	}
	if a.conn == nil {
		conn, err := net.Dial("udp", net.JoinHostPort("127.0.0.1", strconv.Itoa(a.port)))
		if err != nil {
			return fmt.Errorf("anybar: %w", err)
		}
		a.conn = conn
	}
	if _, err := a.conn.Write([]byte(c)); err != nil {
		return fmt.Errorf("anybar: %w", err)
	}
	a.color = c
	return nil
}

// Reset forgets all tracked instances without terminating them. It exists
// for test isolation.
func Reset() {
	for _, a := range instances {
		if a.conn != nil {
			a.conn.Close()
			a.conn = nil
		}
	}
	instances = nil
}

func unregister(target *AnyBar) {
	for i, a := range instances {
		if a == target {
			instances = append(instances[:i], instances[i+1:]...)
			return
		}
	}
}

func containsPID(pids []int, pid int) bool {
	for _, p := range pids {
		if p == pid {
			return true
		}
	}
	return false
}
