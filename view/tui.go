package view

import (
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"punchin/timelog"
)

func NewTUI(repo Repository, logger *slog.Logger) Viewer {
	return &tui{repo: repo, logger: logger}
}

type tui struct {
	repo   Repository
	logger *slog.Logger

	app *tview.Application
}

// Do opens a read-only browser over the day table. Enter shows the selected
// day's sessions, q or Escape quits. The timelog file is the source of
// truth, so nothing here edits.
func (t *tui) Do(yearMonth string) error {
	days, err := t.repo.ListDays(yearMonth)
	if err != nil {
		return err
	}

	t.logger.Debug("opening timelog browser", slog.Int("days", len(days)))
	t.app = tview.NewApplication()

	detail := tview.NewTextView()
	detail.SetBorder(true).SetTitle("sessions")

	dayTable := newDayTable(days)
	dayTable.Select(1, 0).SetFixed(1, 0).SetSelectedFunc(func(row, column int) {
		if row-1 < 0 || row-1 >= len(days) {
			return
		}
		detail.SetText(sessionText(days[row-1]))
	})
	dayTable.SetSelectable(true, false)

	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(dayTable, 0, 2, true).
		AddItem(detail, 0, 1, false)

	root := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(tview.NewTextView().SetText(title(yearMonth)), 1, 1, false).
		AddItem(flex, 0, 1, true)

	t.app.SetInputCapture(func(ev *tcell.EventKey) *tcell.EventKey {
		if ev.Key() == tcell.KeyEscape || ev.Rune() == 'q' {
			t.app.Stop()
			return nil
		}
		return ev
	})

	return t.app.SetRoot(root, true).Run()
}

func newDayTable(days []timelog.Day) *tview.Table {
	tb := tview.NewTable()
	for i, h := range []string{"Date", "First in", "Last out", "Sessions", "Worked", "Overtime"} {
		tb.SetCell(0, i, tview.NewTableCell(h).
			SetSelectable(false).
			SetAttributes(tcell.AttrBold))
	}
	for i, d := range days {
		last := d.Sessions[len(d.Sessions)-1]
		row := []string{
			string(d.Date),
			d.FirstClockIn().Format("15:04"),
			ptrTimeToString(last.ClockOut),
			fmt.Sprintf("%d", len(d.Sessions)),
			durationToString(d.Worked),
			durationToString(d.Worked - timelog.Workday),
		}
		for j, v := range row {
			tb.SetCell(i+1, j, tview.NewTableCell(v))
		}
	}
	return tb
}

func sessionText(d timelog.Day) string {
	var out string
	for _, s := range d.Sessions {
		if s.ClockOut == nil {
			out += fmt.Sprintf("%s - ...\n", s.ClockIn.Format("15:04"))
			continue
		}
		out += fmt.Sprintf("%s - %s (%s)\n",
			s.ClockIn.Format("15:04"),
			s.ClockOut.Format("15:04"),
			durationToString(s.Duration()))
	}
	return out
}

func title(yearMonth string) string {
	if yearMonth == "" {
		return "timelog"
	}
	return "timelog " + yearMonth
}
