package timelog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPath_EnvOverride(t *testing.T) {
	log := filepath.Join(t.TempDir(), "timelog")
	require.NoError(t, os.WriteFile(log, []byte("i 2024/01/01 09:00:00\n"), 0o644))
	t.Setenv(EnvVar, log)

	got, err := Path()
	require.NoError(t, err)
	assert.Equal(t, log, got)
}

func TestPath_MissingFile(t *testing.T) {
	t.Setenv(EnvVar, filepath.Join(t.TempDir(), "nope"))
	_, err := Path()
	assert.Error(t, err)
}

func TestLoad_EndToEnd(t *testing.T) {
	log := `# work log
i 2024/01/01 09:00:00 project:alpha
o 2024/01/01 17:00:00
i 2024/01/02 09:30:00
`
	days, err := Load(strings.NewReader(log))
	require.NoError(t, err)
	require.Len(t, days, 2)
	assert.Equal(t, Date("2024-01-01"), days[0].Date)
	assert.True(t, days[1].Open())
}

func TestLoad_EmptyLog(t *testing.T) {
	_, err := Load(strings.NewReader("\n# only comments\n"))
	assert.ErrorIs(t, err, ErrEmptyLog)
}

func TestLoadFile_ReadsFromDisk(t *testing.T) {
	log := filepath.Join(t.TempDir(), "timelog")
	content := "i 2024/01/01 09:00:00\no 2024/01/01 17:00:00\n"
	require.NoError(t, os.WriteFile(log, []byte(content), 0o644))

	days, err := LoadFile(log)
	require.NoError(t, err)
	require.Len(t, days, 1)
}

func TestLoadFile_MissingFile(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}
