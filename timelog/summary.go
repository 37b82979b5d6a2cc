package timelog

import (
	"log/slog"
	"time"
)

// Workday is the fixed daily target.
const Workday = 8 * time.Hour

// Summary is the computed work-time report handed to the views. The
// today-relative fields are populated only when the log's last day is the
// current date; otherwise they stay zero/nil.
type Summary struct {
	DaysWorked        int
	TotalWorked       time.Duration
	AverageWorked     time.Duration
	Overtime          time.Duration // signed, over all days but the last
	FirstClockInToday *time.Time
	WorkedToday       time.Duration
	StillToWork8      time.Duration // against the plain 8h target
	StillToWork       time.Duration // target after banked overtime
	TimeToLeave8      *time.Time
	TimeToLeave       *time.Time
}

type Summarizer struct {
	workday time.Duration
	logger  *slog.Logger
}

func NewSummarizer(logger *slog.Logger) *Summarizer {
	return &Summarizer{workday: Workday, logger: logger}
}

// Summarize rolls the day list up into the report. now must be sampled once
// by the caller so every today-relative figure agrees with the others.
func (s *Summarizer) Summarize(days []Day, now time.Time) Summary {
	if len(days) == 0 {
		return Summary{}
	}

	var total time.Duration
	for _, d := range days {
		total += d.Worked
	}

	var overtime time.Duration
	for _, d := range days[:len(days)-1] {
		overtime += d.Worked - s.workday
	}

	sum := Summary{
		DaysWorked:    len(days),
		TotalWorked:   total,
		AverageWorked: total / time.Duration(len(days)),
		Overtime:      overtime,
	}

	last := days[len(days)-1]
	if last.Date != NewDate(now) {
		// The log has no entry for the current date, so there is no
		// today-relative data and no leave time to project.
		return sum
	}

	first := last.FirstClockIn()
	sum.FirstClockInToday = &first
	sum.WorkedToday = last.Worked
	if last.Open() {
		clockIn := last.Sessions[len(last.Sessions)-1].ClockIn
		if now.Before(clockIn) {
			// Clock skew: anomalous but not fatal, count zero.
			s.logger.Warn("now is before the open clock-in",
				slog.Time("clock_in", clockIn),
				slog.Time("now", now))
		} else {
			sum.WorkedToday += now.Sub(clockIn)
		}
	}

	sum.StillToWork8 = clampDuration(s.workday - sum.WorkedToday)
	sum.StillToWork = clampDuration(s.workday - sum.WorkedToday - overtime)
	leave8 := now.Add(sum.StillToWork8)
	leave := now.Add(sum.StillToWork)
	sum.TimeToLeave8 = &leave8
	sum.TimeToLeave = &leave
	return sum
}

func clampDuration(d time.Duration) time.Duration {
	if d < 0 {
		return 0
	}
	return d
}
