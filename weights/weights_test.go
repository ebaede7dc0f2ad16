package weights

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func sampleTables() [][]float32 {
	return [][]float32{
		{1, 2, 3},
		{},
		{4.5, -1.25},
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	tables := sampleTables()

	require.NoError(t, Save(&buf, tables))

	got, err := Load(&buf)
	require.NoError(t, err)
	require.Equal(t, tables, got)
}

func TestSaveFileLoadFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "weights.bin")
	tables := sampleTables()

	require.NoError(t, SaveFile(path, tables))

	got, err := LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, tables, got)
}

func TestLoadRejectsTruncatedFile(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Save(&buf, sampleTables()))

	truncated := buf.Bytes()[:buf.Len()-4]
	_, err := Load(bytes.NewReader(truncated))
	require.Error(t, err)
}

func TestLoadFileMissingPathErrors(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "does-not-exist.bin"))
	require.Error(t, err)
}

func TestSaveFileCreatesParentlessFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.bin")
	require.NoError(t, SaveFile(path, sampleTables()))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Greater(t, info.Size(), int64(0))
}
