package console

import (
	"strings"

	"github.com/gen2brain/beeep"
)

// Notifier raises a desktop popup notification. Delivery is fire-and-forget;
// the printer never inspects success or failure.
type Notifier interface {
	Notify(body, title, subtitle string) error
}

// notifierBridge holds the lazily constructed Notifier. It is shared between
// a printer and the per-call copies produced by With, so the bridge is built
// at most once per printer instance.
type notifierBridge struct {
	n Notifier
}

// desktopNotifier is the default bridge, backed by the host notification
// service.
type desktopNotifier struct{}

func (d *desktopNotifier) Notify(body, title, subtitle string) error {
	if subtitle != "" {
		title = title + " - " + subtitle
	}
	return beeep.Notify(title, body, "")
}

// notify forwards the rendered message to the bridge. The canonical severity
// tag is trimmed only when the message actually starts with it, so a custom
// prefix never loses message text.
func (p *Printer) notify(sev severity, text string) {
	if p.bridge.n == nil {
		p.bridge.n = &desktopNotifier{}
	}
	title := "Console"
	subtitle := ""
	switch sev {
	case sevError:
		subtitle = "Error"
		text = strings.TrimPrefix(text, "Error: ")
	case sevWarning:
		subtitle = "Warning"
		text = strings.TrimPrefix(text, "Warning: ")
	}
	_ = p.bridge.n.Notify(text, title, subtitle)
}
