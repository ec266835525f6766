// Package env loads environment variables from a .env file, so per-machine
// settings (log file locations, notification preferences) can live outside
// the committed YAML run-control file.
package env

import (
	"os"
	"strings"
)

// Load reads KEY=VALUE lines from a .env file in the current working
// directory and sets them with os.Setenv. A missing file is silently
// ignored; system environment variables still apply.
//
// Lines are trimmed; empty lines and lines starting with # are skipped.
// Each line splits on the first "=", so values may themselves contain "=".
// Surrounding single or double quotes around the value are stripped.
func Load() {
	data, err := os.ReadFile(".env")
	if err != nil {
		return
	}
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		value := strings.Trim(strings.TrimSpace(parts[1]), `"'`)
		os.Setenv(key, value)
	}
}
