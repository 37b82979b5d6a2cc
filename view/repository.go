package view

import (
	"fmt"
	"strings"
	"time"

	"punchin/timelog"
)

// Repository hands the views their day lists.
type Repository interface {
	ListDays(yearMonth string) ([]timelog.Day, error)
}

func NewRepository(path string) Repository {
	return &repository{path: path}
}

type repository struct {
	path string
}

// ListDays loads the log, optionally narrowed to one month ("2006-01").
func (r *repository) ListDays(yearMonth string) ([]timelog.Day, error) {
	days, err := timelog.LoadFile(r.path)
	if err != nil {
		return nil, err
	}
	if yearMonth == "" {
		return days, nil
	}
	if _, err := time.Parse("2006-01", yearMonth); err != nil {
		return nil, fmt.Errorf("invalid month %q, want e.g. 2024-03", yearMonth)
	}

	var filtered []timelog.Day
	for _, d := range days {
		if strings.HasPrefix(string(d.Date), yearMonth+"-") {
			filtered = append(filtered, d)
		}
	}
	return filtered, nil
}
