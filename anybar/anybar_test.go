package anybar

import (
	"errors"
	"net"
	"runtime"
	"testing"
	"time"
)

// newListener binds a throwaway UDP socket on the loopback interface and
// returns it with its port number.
func newListener(t *testing.T) (*net.UDPConn, int) {
	t.Helper()
	conn, err := net.ListenUDP("udp", &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1)})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn, conn.LocalAddr().(*net.UDPAddr).Port
}

func readDatagram(t *testing.T, conn *net.UDPConn) string {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	buf := make([]byte, 64)
	n, _, err := conn.ReadFromUDP(buf)
	if err != nil {
		t.Fatalf("no datagram arrived: %v", err)
	}
	return string(buf[:n])
}

func expectNoDatagram(t *testing.T, conn *net.UDPConn) {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(100 * time.Millisecond))
	buf := make([]byte, 64)
	if n, _, err := conn.ReadFromUDP(buf); err == nil {
		t.Fatalf("unexpected datagram %q", buf[:n])
	}
}

func TestValidColor(t *testing.T) {
	tests := []struct {
		color string
		want  bool
	}{
		{"white", true},
		{"exclamation", true},
		{"question", true},
		{"", false},
		{"magenta", false},
		{"Green", false},
	}
	for _, tt := range tests {
		if got := ValidColor(tt.color); got != tt.want {
			t.Errorf("ValidColor(%q) = %v, want %v", tt.color, got, tt.want)
		}
	}
}

func TestColorsReturnsCopy(t *testing.T) {
	c := Colors()
	c[0] = "mauve"
	if !ValidColor("white") {
		t.Error("mutating the returned slice changed the palette")
	}
}

func TestSetColorSendsToken(t *testing.T) {
	t.Cleanup(Reset)
	conn, port := newListener(t)

	a := New(WithPort(port), WithPID(1))
	if err := a.SetColor("green"); err != nil {
		t.Fatal(err)
	}
	if got := readDatagram(t, conn); got != "green" {
		t.Errorf("datagram = %q, want %q", got, "green")
	}
	if a.Color() != "green" {
		t.Errorf("Color() = %q after send", a.Color())
	}
}

func TestSetColorEmptyResendsCurrent(t *testing.T) {
	t.Cleanup(Reset)
	conn, port := newListener(t)

	a := New(WithPort(port), WithPID(1), WithColor("red"))
	if err := a.SetColor(""); err != nil {
		t.Fatal(err)
	}
	if got := readDatagram(t, conn); got != "red" {
		t.Errorf("datagram = %q, want %q", got, "red")
	}
}

func TestSetColorUnknownToken(t *testing.T) {
	t.Cleanup(Reset)
	conn, port := newListener(t)

	a := New(WithPort(port), WithPID(1), WithColor("white"))
	err := a.SetColor("pink-ish")
	if !errors.Is(err, ErrInvalidColor) {
		t.Fatalf("err = %v, want ErrInvalidColor", err)
	}
	if a.Color() != "white" {
		t.Errorf("Color() = %q, state changed by a rejected token", a.Color())
	}
	expectNoDatagram(t, conn)
}

func TestSetColorWithoutProcessIsNoop(t *testing.T) {
	t.Cleanup(Reset)
	conn, port := newListener(t)

	// A port but no live process: warn and do nothing.
	a := New(WithPort(port))
	if err := a.SetColor("blue"); err != nil {
		t.Fatal(err)
	}
	expectNoDatagram(t, conn)
}

func TestToggle(t *testing.T) {
	t.Cleanup(Reset)
	conn, port := newListener(t)

	a := New(WithPort(port), WithPID(1), WithColor("white"))

	// Showing neither color: first wins.
	if err := Toggle("red", "green"); err != nil {
		t.Fatal(err)
	}
	if got := readDatagram(t, conn); got != "red" {
		t.Fatalf("datagram = %q, want %q", got, "red")
	}
	if err := Toggle("red", "green"); err != nil {
		t.Fatal(err)
	}
	if got := readDatagram(t, conn); got != "green" {
		t.Fatalf("datagram = %q, want %q", got, "green")
	}
	if err := Toggle("red", "green"); err != nil {
		t.Fatal(err)
	}
	if got := readDatagram(t, conn); got != "red" {
		t.Fatalf("datagram = %q, want %q", got, "red")
	}
	if a.Color() != "red" {
		t.Errorf("Color() = %q after toggling", a.Color())
	}
}

func TestToggleRejectsUnknownColors(t *testing.T) {
	t.Cleanup(Reset)
	conn, port := newListener(t)
	New(WithPort(port), WithPID(1))

	if err := Toggle("red", "pink-ish"); !errors.Is(err, ErrInvalidColor) {
		t.Fatalf("err = %v, want ErrInvalidColor", err)
	}
	expectNoDatagram(t, conn)
}

func TestQuitAllDegradesOffPlatform(t *testing.T) {
	if runtime.GOOS == "darwin" {
		t.Skip("darwin runs real process sweeps")
	}
	t.Cleanup(Reset)
	conn, port := newListener(t)
	a := New(WithPort(port), WithPID(1))

	if err := QuitAll(); err != nil {
		t.Fatalf("QuitAll off-platform: %v", err)
	}
	if a.Port() != 0 {
		t.Errorf("Port() = %d after QuitAll, want 0", a.Port())
	}
	// The registry is empty, so toggling reaches nothing.
	if err := Toggle("red", "green"); err != nil {
		t.Fatal(err)
	}
	expectNoDatagram(t, conn)
}

func TestQuitOffPlatformDoesNotSweepOthers(t *testing.T) {
	if runtime.GOOS == "darwin" {
		t.Skip("darwin runs real process sweeps")
	}
	t.Cleanup(Reset)
	_, portA := newListener(t)
	connB, portB := newListener(t)
	a := New(WithPort(portA), WithPID(1))
	b := New(WithPort(portB), WithPID(2), WithColor("white"))

	a.Quit()
	if a.Port() != 0 {
		t.Errorf("Port() = %d after Quit, want 0", a.Port())
	}
	// The other instance stays registered and reachable.
	if err := Toggle("red", "green"); err != nil {
		t.Fatal(err)
	}
	if got := readDatagram(t, connB); got != "red" {
		t.Errorf("datagram = %q, want %q", got, "red")
	}
	if b.Color() != "red" {
		t.Errorf("Color() = %q after toggle", b.Color())
	}
}

func TestToggleWithoutInstances(t *testing.T) {
	t.Cleanup(Reset)
	Reset()
	if err := Toggle("red", "green"); err != nil {
		t.Errorf("Toggle with no instances: %v", err)
	}
}
