package timelog

import (
	"errors"
	"fmt"
	"time"
)

// ErrEmptyLog is returned when the log holds no entries at all, so callers
// can tell "no data" apart from "worked zero hours".
var ErrEmptyLog = errors.New("timelog: no entries")

// ParseError reports a line that could not be turned into an entry.
type ParseError struct {
	Line   int
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("timelog: line %d: %s", e.Line, e.Reason)
}

// MalformedSequenceError reports a broken clock-in/clock-out alternation.
type MalformedSequenceError struct {
	Line int
	Got  Kind
}

func (e *MalformedSequenceError) Error() string {
	if e.Got == KindIn {
		return fmt.Sprintf("timelog: line %d: clock in while the previous session is still open", e.Line)
	}
	return fmt.Sprintf("timelog: line %d: clock out without a matching clock in", e.Line)
}

// OutOfOrderError reports a timestamp earlier than the one before it. The
// log is append-only and must stay chronological.
type OutOfOrderError struct {
	Line int
	At   time.Time
	Prev time.Time
}

func (e *OutOfOrderError) Error() string {
	return fmt.Sprintf("timelog: line %d: timestamp %s is before %s",
		e.Line, e.At.Format(TimestampFormat), e.Prev.Format(TimestampFormat))
}
