package timelog

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/alexflint/go-filemutex"
)

// Recorder appends clock-in/clock-out lines to the timelog. Every write is
// validated against the current log state and guarded by a sibling lock
// file so concurrent invocations cannot interleave entries.
type Recorder struct {
	path   string
	mux    *filemutex.FileMutex
	logger *slog.Logger
}

func NewRecorder(path string, logger *slog.Logger) (*Recorder, error) {
	fm, err := filemutex.New(path + ".lock")
	if err != nil {
		return nil, err
	}
	return &Recorder{path: path, mux: fm, logger: logger}, nil
}

// ClockIn appends a clock-in entry. It fails while a session is open.
func (r *Recorder) ClockIn(at time.Time, note string) error {
	return r.append(KindIn, at, note)
}

// ClockOut appends a clock-out entry. It fails without an open session.
func (r *Recorder) ClockOut(at time.Time, note string) error {
	return r.append(KindOut, at, note)
}

func (r *Recorder) append(kind Kind, at time.Time, note string) error {
	if err := r.mux.Lock(); err != nil {
		return err
	}
	defer r.mux.Unlock()

	days, err := r.currentDays()
	if err != nil {
		return err
	}

	open := len(days) > 0 && days[len(days)-1].Open()
	if kind == KindIn && open {
		last := days[len(days)-1]
		in := last.Sessions[len(last.Sessions)-1].ClockIn
		return fmt.Errorf("already clocked in since %s", in.Format(TimestampFormat))
	}
	if kind == KindOut && !open {
		return errors.New("not clocked in")
	}
	if last, ok := lastEventAt(days); ok && at.Before(last) {
		return fmt.Errorf("refusing to write an entry at %s before the last one at %s",
			at.Format(TimestampFormat), last.Format(TimestampFormat))
	}

	marker := "i"
	if kind == KindOut {
		marker = "o"
	}
	line := marker + " " + at.Format(TimestampFormat)
	if note = strings.TrimSpace(note); note != "" {
		line += " " + note
	}

	f, err := os.OpenFile(r.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := f.WriteString(line + "\n"); err != nil {
		return err
	}

	r.logger.Debug("recorded entry", slog.String("line", line))
	return nil
}

// currentDays treats a missing or empty log as no days: the first clock-in
// creates the file.
func (r *Recorder) currentDays() ([]Day, error) {
	f, err := os.Open(r.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	defer f.Close()

	days, err := Load(f)
	if errors.Is(err, ErrEmptyLog) {
		return nil, nil
	}
	return days, err
}

func lastEventAt(days []Day) (time.Time, bool) {
	if len(days) == 0 {
		return time.Time{}, false
	}
	last := days[len(days)-1]
	s := last.Sessions[len(last.Sessions)-1]
	if s.ClockOut != nil {
		return *s.ClockOut, true
	}
	return s.ClockIn, true
}
