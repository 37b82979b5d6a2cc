package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"punchin/timelog"
	"punchin/view"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "punchin:", err)
		os.Exit(1)
	}
}

func run() error {
	app := &cli.App{
		Name:  "punchin",
		Usage: "summarize an Emacs timeclock log",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "file", Aliases: []string{"f"}, Usage: "timelog file (defaults to $TIMELOG)"},
			&cli.BoolFlag{Name: "debug", Usage: "verbose logging"},
		},
		Action: statusAction,
		Commands: []*cli.Command{
			statusCommand,
			reportCommand,
			viewCommand,
			inCommand,
			outCommand,
		},
	}
	return app.Run(os.Args)
}

var statusCommand = &cli.Command{
	Name:   "status",
	Usage:  "show the work-time summary",
	Action: statusAction,
}

func statusAction(c *cli.Context) error {
	path, err := logPath(c)
	if err != nil {
		return err
	}
	days, err := timelog.LoadFile(path)
	if err != nil {
		return err
	}

	logger := newLogger(c.Bool("debug"))
	sum := timelog.NewSummarizer(logger).Summarize(days, time.Now())
	view.RenderSummary(os.Stdout, sum)
	return nil
}

var reportCommand = &cli.Command{
	Name:  "report",
	Usage: "show the per-day session table",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "month", Aliases: []string{"m"}, Usage: "narrow to one month, e.g. 2024-03"},
	},
	Action: func(c *cli.Context) error {
		path, err := logPath(c)
		if err != nil {
			return err
		}
		v := view.NewTableViewer(view.NewRepository(path))
		return v.Do(c.String("month"))
	},
}

var viewCommand = &cli.Command{
	Name:      "view",
	Usage:     "browse the timelog interactively",
	ArgsUsage: "[month]",
	Action: func(c *cli.Context) error {
		path, err := logPath(c)
		if err != nil {
			return err
		}
		logger := newLogger(c.Bool("debug"))
		v := view.NewTUI(view.NewRepository(path), logger)
		return v.Do(c.Args().First())
	},
}

var inCommand = &cli.Command{
	Name:      "in",
	Usage:     "clock in now",
	ArgsUsage: "[note]",
	Action: func(c *cli.Context) error {
		return record(c, timelog.KindIn)
	},
}

var outCommand = &cli.Command{
	Name:      "out",
	Usage:     "clock out now",
	ArgsUsage: "[note]",
	Action: func(c *cli.Context) error {
		return record(c, timelog.KindOut)
	},
}

func record(c *cli.Context, kind timelog.Kind) error {
	path, err := recordPath(c)
	if err != nil {
		return err
	}
	rec, err := timelog.NewRecorder(path, newLogger(c.Bool("debug")))
	if err != nil {
		return err
	}

	note := strings.Join(c.Args().Slice(), " ")
	if kind == timelog.KindIn {
		return rec.ClockIn(time.Now(), note)
	}
	return rec.ClockOut(time.Now(), note)
}

func logPath(c *cli.Context) (string, error) {
	if f := c.String("file"); f != "" {
		if _, err := os.Stat(f); err != nil {
			return "", fmt.Errorf("timelog file %s: %w", f, err)
		}
		return f, nil
	}
	return timelog.Path()
}

// recordPath resolves like logPath but tolerates a missing file, since the
// first clock-in creates it.
func recordPath(c *cli.Context) (string, error) {
	if f := c.String("file"); f != "" {
		return f, nil
	}
	if f := os.Getenv(timelog.EnvVar); f != "" {
		return f, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, timelog.DefaultPath), nil
}

func newLogger(debug bool) *slog.Logger {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}
