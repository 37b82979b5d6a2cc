package view

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"punchin/timelog"
)

func writeLog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "timelog")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestListDays_AllDaysWithoutFilter(t *testing.T) {
	path := writeLog(t, `i 2024/01/31 09:00:00
o 2024/01/31 17:00:00
i 2024/02/01 09:00:00
o 2024/02/01 17:00:00
`)
	days, err := NewRepository(path).ListDays("")
	require.NoError(t, err)
	assert.Len(t, days, 2)
}

func TestListDays_MonthFilter(t *testing.T) {
	path := writeLog(t, `i 2024/01/31 09:00:00
o 2024/01/31 17:00:00
i 2024/02/01 09:00:00
o 2024/02/01 17:00:00
`)
	days, err := NewRepository(path).ListDays("2024-02")
	require.NoError(t, err)
	require.Len(t, days, 1)
	assert.Equal(t, timelog.Date("2024-02-01"), days[0].Date)
}

func TestListDays_InvalidMonth(t *testing.T) {
	path := writeLog(t, "i 2024/01/31 09:00:00\no 2024/01/31 17:00:00\n")
	_, err := NewRepository(path).ListDays("march")
	assert.Error(t, err)
}

func TestListDays_PropagatesLogErrors(t *testing.T) {
	path := writeLog(t, "i 2024/01/31 09:00:00\ni 2024/01/31 10:00:00\n")
	_, err := NewRepository(path).ListDays("")
	var serr *timelog.MalformedSequenceError
	assert.ErrorAs(t, err, &serr)
}
