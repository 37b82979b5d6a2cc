package view

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"

	"punchin/timelog"
)

type tableViewer struct {
	repo Repository
}

func NewTableViewer(repo Repository) Viewer {
	return &tableViewer{repo: repo}
}

func (t *tableViewer) Do(yearMonth string) error {
	days, err := t.repo.ListDays(yearMonth)
	if err != nil {
		return err
	}
	RenderReport(os.Stdout, days)
	return nil
}

// RenderSummary prints the overall work-time report as a two-column table.
func RenderSummary(w io.Writer, s timelog.Summary) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendRows([]table.Row{
		{"Number of days worked", fmt.Sprintf("%d", s.DaysWorked)},
		{"Total time worked", hoursMins(s.TotalWorked)},
		{"Average per workday", hoursMins(s.AverageWorked)},
		{"Cumulative overtime", hoursMins(s.Overtime)},
		{"First punch in today", ptrTimeToString(s.FirstClockInToday)},
		{"Worked today", hoursMins(s.WorkedToday)},
		{"Still to work (8hrs)", hoursMins(s.StillToWork8)},
		{"Still to work", hoursMins(s.StillToWork)},
		{"Time to leave (8hrs)", ptrTimeToString(s.TimeToLeave8)},
		{"Time to leave", ptrTimeToString(s.TimeToLeave)},
	})
	t.SetStyle(table.StyleRounded)
	t.Render()
}

// RenderReport prints one row per session, grouped by date, with the
// worked total and overtime per day and a grand total footer.
func RenderReport(w io.Writer, days []timelog.Day) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Date", "Clock in", "Clock out", "Worked", "Overtime"})

	var totalSum time.Duration
	for _, d := range days {
		totalSum += d.Worked
		workedStr := durationToString(d.Worked)
		overtimeStr := durationToString(d.Worked - timelog.Workday)
		for _, s := range d.Sessions {
			t.AppendRow(table.Row{
				string(d.Date),
				s.ClockIn.Format("15:04"),
				ptrTimeToString(s.ClockOut),
				workedStr,
				overtimeStr,
			})
		}
	}
	t.AppendFooter(table.Row{"", "", "Total", durationToString(totalSum), ""})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, AutoMerge: true},
		{Number: 4, AutoMerge: true},
		{Number: 5, AutoMerge: true},
	})
	t.SetStyle(table.StyleRounded)
	t.Render()
}

func durationToString(d time.Duration) string {
	sign := ""
	if d < 0 {
		sign = "-"
		d = -d
	}
	return fmt.Sprintf("%s%02d:%02d", sign, int(d.Hours()), int(d.Minutes())%60)
}

// hoursMins renders a signed duration the way the status report words it,
// e.g. "7 hours, 45 minutes".
func hoursMins(d time.Duration) string {
	sign := ""
	if d < 0 {
		sign = "-"
		d = -d
	}
	return fmt.Sprintf("%s%d hours, %d minutes", sign, int(d.Hours()), int(d.Minutes())%60)
}

func ptrTimeToString(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("15:04")
}
