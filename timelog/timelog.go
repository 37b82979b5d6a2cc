// Package timelog reads Emacs timeclock logs and turns them into per-day
// work summaries: alternating clock-in/clock-out lines become sessions,
// sessions become days, days become the overtime and time-to-leave report.
package timelog

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// EnvVar names the environment variable pointing at the timelog file.
const EnvVar = "TIMELOG"

// DefaultPath is where Emacs keeps timeclock records, relative to the home
// directory.
const DefaultPath = ".emacs.d/.local/etc/timelog"

// Path resolves the timelog location: $TIMELOG if set, the Emacs default
// under the home directory otherwise. The file must exist.
func Path() (string, error) {
	path := os.Getenv(EnvVar)
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(home, DefaultPath)
	}
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("timelog file %s: %w", path, err)
	}
	return path, nil
}

// Load parses and sequences a whole log into its day list.
func Load(r io.Reader) ([]Day, error) {
	entries, err := Parse(r)
	if err != nil {
		return nil, err
	}
	sessions, err := Sequence(entries)
	if err != nil {
		return nil, err
	}
	return BuildDays(sessions), nil
}

// LoadFile reads the log at path.
func LoadFile(path string) ([]Day, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read %s: %w", path, err)
	}
	defer f.Close()
	return Load(f)
}
