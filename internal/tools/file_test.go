package tools

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "note.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0o644))

	got, err := ReadFile(map[string]interface{}{"filepath": path})
	require.NoError(t, err)

	assert.Equal(t, "success", got["status"])
	assert.Equal(t, path, got["filepath"])
	assert.Equal(t, "hello", got["content"])
	assert.Equal(t, 5, got["size"])
}

func TestReadFile_NotFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.txt")

	got, err := ReadFile(map[string]interface{}{"filepath": path})
	require.NoError(t, err, "IO failures are returned as data, not errors")

	assert.Equal(t, "error", got["status"])
	assert.Equal(t, "File not found", got["error"])
	assert.Equal(t, path, got["filepath"])
}

func TestReadFile_OtherIOFailure(t *testing.T) {
	// Reading a directory fails with something other than not-exist.
	dir := t.TempDir()

	got, err := ReadFile(map[string]interface{}{"filepath": dir})
	require.NoError(t, err)

	assert.Equal(t, "error", got["status"])
	assert.NotEqual(t, "File not found", got["error"])
	assert.NotEmpty(t, got["error"])
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")

	got, err := WriteFile(map[string]interface{}{
		"filepath": path,
		"content":  "written by test",
	})
	require.NoError(t, err)

	assert.Equal(t, "success", got["status"])
	assert.Equal(t, len("written by test"), got["content_length"])

	data, rerr := os.ReadFile(path)
	require.NoError(t, rerr)
	assert.Equal(t, "written by test", string(data))
}

func TestWriteFile_Failure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no-such-dir", "out.txt")

	got, err := WriteFile(map[string]interface{}{
		"filepath": path,
		"content":  "x",
	})
	require.NoError(t, err)
	assert.Equal(t, "error", got["status"])
	assert.NotEmpty(t, got["error"])
}

func TestListFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("aaa"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))

	got, err := ListFiles(map[string]interface{}{"directory": dir})
	require.NoError(t, err)

	assert.Equal(t, "success", got["status"])
	assert.Equal(t, dir, got["directory"])
	assert.Equal(t, 2, got["count"])

	files, ok := got["files"].([]interface{})
	require.True(t, ok)
	require.Len(t, files, 2)

	byName := map[string]map[string]interface{}{}
	for _, f := range files {
		entry := f.(map[string]interface{})
		byName[entry["name"].(string)] = entry
	}

	require.Contains(t, byName, "a.txt")
	assert.Equal(t, false, byName["a.txt"]["is_directory"])
	assert.Equal(t, int64(3), byName["a.txt"]["size"])

	require.Contains(t, byName, "sub")
	assert.Equal(t, true, byName["sub"]["is_directory"])
	assert.Nil(t, byName["sub"]["size"])
}

func TestListFiles_DefaultDirectory(t *testing.T) {
	got, err := ListFiles(map[string]interface{}{})
	require.NoError(t, err)
	assert.Equal(t, ".", got["directory"])
	assert.Equal(t, "success", got["status"])
}

func TestListFiles_MissingDirectory(t *testing.T) {
	got, err := ListFiles(map[string]interface{}{
		"directory": filepath.Join(t.TempDir(), "gone"),
	})
	require.NoError(t, err)
	assert.Equal(t, "error", got["status"])
	assert.NotEmpty(t, got["error"])
}
