package timelog

import "time"

// Kind tags a log entry as a clock-in or a clock-out.
type Kind string

const (
	KindIn  = Kind("in")
	KindOut = Kind("out")
)

// Entry is one parsed line of the timelog. Line is the 1-based position in
// the file, kept for error reporting.
type Entry struct {
	Kind Kind
	At   time.Time
	Line int
}

// Date is a calendar date keyed as 2006-01-02.
type Date string

func NewDate(t time.Time) Date {
	return Date(t.Format("2006-01-02"))
}

// Session pairs a clock-in with its clock-out. A session without a
// clock-out is open: the subject is still working.
type Session struct {
	Date     Date
	ClockIn  time.Time
	ClockOut *time.Time
	Line     int
}

func (s Session) Open() bool {
	return s.ClockOut == nil
}

// Duration returns the closed span of the session, zero while open.
func (s Session) Duration() time.Duration {
	if s.ClockOut == nil {
		return 0
	}
	return s.ClockOut.Sub(s.ClockIn)
}
