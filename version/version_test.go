package version

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"single line", "0.1.5\n", "0.1.5"},
		{"no newline", "1.2.0", "1.2.0"},
		{"first line only", "2.0.0 \r\nextra\n", "2.0.0"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name)
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			got, ok := Read(path)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadMissing(t *testing.T) {
	got, ok := Read(filepath.Join(t.TempDir(), FileName))
	assert.False(t, ok)
	assert.Empty(t, got)
}

func TestReadDirectory(t *testing.T) {
	_, ok := Read(t.TempDir())
	assert.False(t, ok)
}

func TestDefaultPath(t *testing.T) {
	assert.Equal(t, FileName, filepath.Base(DefaultPath()))
}
