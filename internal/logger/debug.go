// Package logger provides diagnostic logging for the MCP demo: tagged
// per-package debug loggers and a global file logger for structured
// protocol traces.
//
// Debug loggers are created once per package:
//
//	var logDispatch = logger.New("server:dispatch")
//
// and emit to stderr only when the MCP_DEBUG environment variable is
// set, so normal runs stay quiet.
package logger

import (
	"io"
	"log"
	"os"
)

// DebugEnvVar enables debug logger output when set to any non-empty value.
const DebugEnvVar = "MCP_DEBUG"

// New returns a tagged debug logger. Output is discarded unless
// MCP_DEBUG is set in the environment at process start.
func New(tag string) *log.Logger {
	var w io.Writer = io.Discard
	if os.Getenv(DebugEnvVar) != "" {
		w = os.Stderr
	}
	return log.New(w, "["+tag+"] ", log.LstdFlags|log.Lmsgprefix)
}
