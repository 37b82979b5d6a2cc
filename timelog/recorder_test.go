package timelog

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecorder(t *testing.T) (*Recorder, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "timelog")
	rec, err := NewRecorder(path, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	return rec, path
}

func readLog(t *testing.T, path string) string {
	t.Helper()
	bs, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(bs)
}

func TestRecorder_ClockInCreatesFile(t *testing.T) {
	rec, path := testRecorder(t)
	in := time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC)

	require.NoError(t, rec.ClockIn(in, "project:alpha"))
	assert.Equal(t, "i 2024/01/02 09:00:00 project:alpha\n", readLog(t, path))
}

func TestRecorder_ClockInTwiceRejected(t *testing.T) {
	rec, _ := testRecorder(t)
	in := time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC)

	require.NoError(t, rec.ClockIn(in, ""))
	err := rec.ClockIn(in.Add(time.Hour), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already clocked in")
}

func TestRecorder_ClockOutClosesSession(t *testing.T) {
	rec, path := testRecorder(t)
	in := time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC)

	require.NoError(t, rec.ClockIn(in, ""))
	require.NoError(t, rec.ClockOut(in.Add(8*time.Hour), ""))

	days, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, days, 1)
	assert.False(t, days[0].Open())
	assert.Equal(t, 8*time.Hour, days[0].Worked)
}

func TestRecorder_ClockOutWithoutOpenSessionRejected(t *testing.T) {
	rec, _ := testRecorder(t)
	err := rec.ClockOut(time.Now(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not clocked in")
}

func TestRecorder_RejectsTimestampRegression(t *testing.T) {
	rec, _ := testRecorder(t)
	in := time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC)

	require.NoError(t, rec.ClockIn(in, ""))
	err := rec.ClockOut(in.Add(-time.Hour), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "before the last one")
}
