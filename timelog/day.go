package timelog

import "time"

// Day is the per-date rollup of sessions. Worked counts closed sessions
// only; an open tail is surfaced through Open and priced live by the
// summarizer.
type Day struct {
	Date     Date
	Sessions []Session
	Worked   time.Duration
}

// Open reports whether the day's last session has no clock-out yet.
func (d Day) Open() bool {
	return len(d.Sessions) > 0 && d.Sessions[len(d.Sessions)-1].Open()
}

// FirstClockIn returns the day's first clock-in.
func (d Day) FirstClockIn() time.Time {
	return d.Sessions[0].ClockIn
}

// BuildDays groups sessions by the calendar date of their clock-in. A
// session that runs past midnight belongs entirely to its start date.
// Sessions arrive chronological, so the days come out chronological too and
// the last day is "today" for the summarizer.
func BuildDays(sessions []Session) []Day {
	var days []Day
	for _, s := range sessions {
		if len(days) == 0 || days[len(days)-1].Date != s.Date {
			days = append(days, Day{Date: s.Date})
		}
		d := &days[len(days)-1]
		d.Sessions = append(d.Sessions, s)
		d.Worked += s.Duration()
	}
	return days
}
