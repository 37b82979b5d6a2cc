package view

// Viewer renders the timelog, optionally narrowed to one month.
type Viewer interface {
	Do(yearMonth string) error
}
