package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDownloadSink_Save(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")
	sink, err := NewDownloadSink(dir)
	require.NoError(t, err)

	path, err := sink.Save("Report-3.docx", []byte("PK\x03\x04"))

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Report-3.docx"), path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("PK\x03\x04"), data)
}

func TestDownloadSink_Overwrites(t *testing.T) {
	sink, err := NewDownloadSink(t.TempDir())
	require.NoError(t, err)

	_, err = sink.Save("Deck-1.pptx", []byte("old"))
	require.NoError(t, err)
	path, err := sink.Save("Deck-1.pptx", []byte("new"))
	require.NoError(t, err)

	data, _ := os.ReadFile(path)
	assert.Equal(t, "new", string(data))
}

func TestDownloadSink_RejectsPaths(t *testing.T) {
	sink, err := NewDownloadSink(t.TempDir())
	require.NoError(t, err)

	for _, name := range []string{"", "../escape.docx", "a/b.docx"} {
		_, err := sink.Save(name, []byte("x"))
		assert.Error(t, err, name)
	}
}

func TestNewDownloadSink_DefaultsToWorkingDir(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)

	sink, err := NewDownloadSink("")

	require.NoError(t, err)
	assert.Equal(t, wd, sink.Dir())
}
