package timelog

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"
)

// TimestampFormat is the timestamp layout Emacs timeclock writes.
const TimestampFormat = "2006/01/02 15:04:05"

// timestampFormats also admits the dashed date variant.
var timestampFormats = []string{TimestampFormat, "2006-01-02 15:04:05"}

const commentPrefix = "#"

// ParseLine turns one log line into an entry. The expected shape is
// "<marker> <date> <time> [free text]" where the marker is i or o and the
// trailing free text is ignored.
func ParseLine(line string, number int) (Entry, error) {
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return Entry{}, &ParseError{Line: number, Reason: `expected "<marker> <date> <time>"`}
	}

	var kind Kind
	switch fields[0] {
	case "i", "I":
		kind = KindIn
	case "o", "O":
		kind = KindOut
	default:
		return Entry{}, &ParseError{Line: number, Reason: fmt.Sprintf("unknown clock marker %q", fields[0])}
	}

	stamp := fields[1] + " " + fields[2]
	at, err := parseTimestamp(stamp)
	if err != nil {
		return Entry{}, &ParseError{Line: number, Reason: fmt.Sprintf("unparseable timestamp %q", stamp)}
	}

	return Entry{Kind: kind, At: at, Line: number}, nil
}

// Parse reads the whole log, skipping blank and # comment lines, and
// returns the entries in file order with their line numbers.
func Parse(r io.Reader) ([]Entry, error) {
	var entries []Entry
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, commentPrefix) {
			continue
		}
		e, err := ParseLine(text, line)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

func parseTimestamp(s string) (time.Time, error) {
	var firstErr error
	for _, layout := range timestampFormats {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, firstErr
}
