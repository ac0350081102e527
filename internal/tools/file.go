package tools

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// File handlers never propagate IO failures to the dispatcher: every
// failure becomes a status:"error" result so a tool call that hits the
// filesystem still yields a well-formed response.

func fileError(path string, msg string) map[string]interface{} {
	return map[string]interface{}{
		"filepath":  path,
		"error":     msg,
		"timestamp": timestamp(),
		"status":    "error",
	}
}

// ReadFile reads a file's contents.
func ReadFile(args map[string]interface{}) (map[string]interface{}, error) {
	path, err := stringArg(args, "filepath")
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fileError(path, "File not found"), nil
		}
		return fileError(path, err.Error()), nil
	}

	return map[string]interface{}{
		"filepath":  path,
		"content":   string(data),
		"size":      len(data),
		"timestamp": timestamp(),
		"status":    "success",
	}, nil
}

// WriteFile writes content to a file, creating it as needed.
func WriteFile(args map[string]interface{}) (map[string]interface{}, error) {
	path, err := stringArg(args, "filepath")
	if err != nil {
		return nil, err
	}
	content, err := stringArg(args, "content")
	if err != nil {
		return nil, err
	}

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fileError(path, err.Error()), nil
	}

	return map[string]interface{}{
		"filepath":       path,
		"content_length": len(content),
		"timestamp":      timestamp(),
		"status":         "success",
	}, nil
}

// ListFiles lists a directory. The directory argument defaults to ".".
func ListFiles(args map[string]interface{}) (map[string]interface{}, error) {
	dir, err := optionalStringArg(args, "directory", ".")
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return map[string]interface{}{
			"directory": dir,
			"error":     err.Error(),
			"timestamp": timestamp(),
			"status":    "error",
		}, nil
	}

	files := make([]interface{}, 0, len(entries))
	for _, entry := range entries {
		var size interface{}
		if !entry.IsDir() {
			if info, err := os.Stat(filepath.Join(dir, entry.Name())); err == nil {
				size = info.Size()
			}
		}
		files = append(files, map[string]interface{}{
			"name":         entry.Name(),
			"is_directory": entry.IsDir(),
			"size":         size,
		})
	}

	return map[string]interface{}{
		"directory": dir,
		"files":     files,
		"count":     len(files),
		"timestamp": timestamp(),
		"status":    "success",
	}, nil
}
