package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// FileLogger manages logging to a file with fallback to stdout.
type FileLogger struct {
	logFile     *os.File
	logger      *log.Logger
	mu          sync.Mutex
	useFallback bool
}

var (
	globalFileLogger *FileLogger
	globalLoggerMu   sync.RWMutex
)

// LogLevel represents the severity of a log message.
type LogLevel string

const (
	LogLevelInfo  LogLevel = "INFO"
	LogLevelWarn  LogLevel = "WARN"
	LogLevelError LogLevel = "ERROR"
	LogLevelDebug LogLevel = "DEBUG"
)

// InitFileLogger initializes the global file logger. If the log
// directory doesn't exist and can't be created, it falls back to stdout
// rather than failing.
func InitFileLogger(logDir, fileName string) error {
	fl := &FileLogger{}

	file, err := openLogFile(logDir, fileName)
	if err != nil {
		log.Printf("WARNING: Failed to initialize log file: %v", err)
		log.Printf("WARNING: Falling back to stdout for logging")
		fl.useFallback = true
		fl.logger = log.New(os.Stdout, "", 0)
		setGlobalFileLogger(fl)
		return nil
	}

	fl.logFile = file
	fl.logger = log.New(file, "", 0)
	setGlobalFileLogger(fl)
	return nil
}

// openLogFile creates the log directory if needed and opens the log
// file in append mode. Errors are returned to the caller, which decides
// whether to fall back.
func openLogFile(logDir, fileName string) (*os.File, error) {
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	logPath := filepath.Join(logDir, fileName)
	file, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return file, nil
}

// Log writes a timestamped log line with the given level and category.
func (fl *FileLogger) Log(level LogLevel, category, format string, args ...interface{}) {
	fl.mu.Lock()
	defer fl.mu.Unlock()

	timestamp := time.Now().UTC().Format(time.RFC3339)
	message := fmt.Sprintf(format, args...)
	fl.logger.Printf("[%s] [%s] [%s] %s", timestamp, level, category, message)

	// Flush immediately so the log is readable by other processes.
	if fl.logFile != nil {
		if err := fl.logFile.Sync(); err != nil {
			log.Printf("WARNING: Failed to sync log file: %v", err)
		}
	}
}

// Writer returns the underlying io.Writer for the file logger.
func (fl *FileLogger) Writer() io.Writer {
	fl.mu.Lock()
	defer fl.mu.Unlock()

	if fl.logFile != nil {
		return fl.logFile
	}
	return os.Stdout
}

// Close syncs and closes the log file. Sync errors are logged but do
// not prevent the close, so file descriptors are always released.
func (fl *FileLogger) Close() error {
	fl.mu.Lock()
	defer fl.mu.Unlock()

	if fl.logFile == nil {
		return nil
	}
	if err := fl.logFile.Sync(); err != nil {
		log.Printf("WARNING: Failed to sync log file before close: %v", err)
	}
	return fl.logFile.Close()
}

func setGlobalFileLogger(fl *FileLogger) {
	globalLoggerMu.Lock()
	defer globalLoggerMu.Unlock()

	if globalFileLogger != nil {
		globalFileLogger.Close()
	}
	globalFileLogger = fl
}

// CloseGlobalLogger closes and clears the global file logger.
func CloseGlobalLogger() error {
	globalLoggerMu.Lock()
	defer globalLoggerMu.Unlock()

	if globalFileLogger != nil {
		err := globalFileLogger.Close()
		globalFileLogger = nil
		return err
	}
	return nil
}

// LogInfo logs an informational message to the global file logger.
func LogInfo(category, format string, args ...interface{}) {
	logGlobal(LogLevelInfo, category, format, args...)
}

// LogWarn logs a warning message to the global file logger.
func LogWarn(category, format string, args ...interface{}) {
	logGlobal(LogLevelWarn, category, format, args...)
}

// LogError logs an error message to the global file logger.
func LogError(category, format string, args ...interface{}) {
	logGlobal(LogLevelError, category, format, args...)
}

// LogDebug logs a debug message to the global file logger.
func LogDebug(category, format string, args ...interface{}) {
	logGlobal(LogLevelDebug, category, format, args...)
}

func logGlobal(level LogLevel, category, format string, args ...interface{}) {
	globalLoggerMu.RLock()
	defer globalLoggerMu.RUnlock()

	if globalFileLogger != nil {
		globalFileLogger.Log(level, category, format, args...)
	}
}
