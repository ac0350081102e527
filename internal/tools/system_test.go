package tools

import (
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSystemInfo(t *testing.T) {
	got, err := GetSystemInfo(map[string]interface{}{})
	require.NoError(t, err)

	assert.Equal(t, runtime.GOOS, got["platform"])
	assert.Equal(t, runtime.Version(), got["runtime_version"])
	assert.NotEmpty(t, got["current_directory"])

	_, perr := time.Parse(time.RFC3339, got["timestamp"].(string))
	assert.NoError(t, perr)
}

func TestEcho(t *testing.T) {
	got, err := Echo(map[string]interface{}{"message": "Hello MCP!"})
	require.NoError(t, err)

	assert.Equal(t, "Hello MCP!", got["message"])
	assert.Equal(t, "echoed", got["status"])
}

func TestEcho_MissingMessage(t *testing.T) {
	_, err := Echo(map[string]interface{}{})
	assert.Error(t, err)
}
