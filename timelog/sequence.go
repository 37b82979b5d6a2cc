package timelog

type seqState int

const (
	awaitingClockIn seqState = iota
	awaitingClockOut
)

// Sequence validates the parsed entries and pairs them into sessions.
// Entries must alternate in/out and be non-decreasing in time; only the
// final session may be left open.
func Sequence(entries []Entry) ([]Session, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyLog
	}

	// Chronology first. A non-monotonic log breaks the append-only
	// discipline no matter how the events alternate.
	for i := 1; i < len(entries); i++ {
		if entries[i].At.Before(entries[i-1].At) {
			return nil, &OutOfOrderError{
				Line: entries[i].Line,
				At:   entries[i].At,
				Prev: entries[i-1].At,
			}
		}
	}

	var sessions []Session
	state := awaitingClockIn
	for _, e := range entries {
		switch {
		case state == awaitingClockIn && e.Kind == KindIn:
			sessions = append(sessions, Session{
				Date:    NewDate(e.At),
				ClockIn: e.At,
				Line:    e.Line,
			})
			state = awaitingClockOut
		case state == awaitingClockOut && e.Kind == KindOut:
			at := e.At
			sessions[len(sessions)-1].ClockOut = &at
			state = awaitingClockIn
		default:
			return nil, &MalformedSequenceError{Line: e.Line, Got: e.Kind}
		}
	}
	return sessions, nil
}
