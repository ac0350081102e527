package tools

import (
	"os"
	"runtime"
)

// GetSystemInfo reports basic process and platform information. It
// never fails.
func GetSystemInfo(args map[string]interface{}) (map[string]interface{}, error) {
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "unknown"
	}
	return map[string]interface{}{
		"platform":          runtime.GOOS,
		"current_directory": cwd,
		"timestamp":         timestamp(),
		"runtime_version":   runtime.Version(),
	}, nil
}

// Echo returns the message it was given.
func Echo(args map[string]interface{}) (map[string]interface{}, error) {
	message, err := stringArg(args, "message")
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"message":   message,
		"timestamp": timestamp(),
		"status":    "echoed",
	}, nil
}
