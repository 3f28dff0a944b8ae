package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

var (
	logFile *os.File
	logOnce sync.Once
	logsDir string
	mu      sync.RWMutex
)

// Configure sets the directory for log files
func Configure(dir string) {
	mu.Lock()
	defer mu.Unlock()
	logsDir = dir
}

func write(level, format string, args ...any) {
	timestamp := time.Now().Format("2006-01-02 15:04:05")

	mu.RLock()
	dir := logsDir
	mu.RUnlock()

	// If no logs directory is configured, do nothing
	if dir == "" {
		return
	}

	logOnce.Do(func() {
		os.MkdirAll(dir, 0o755)
		logFile, _ = os.Create(filepath.Join(dir, fmt.Sprintf("folio-%s.log", time.Now().Format("20060102-150405"))))
	})

	if logFile != nil {
		fmt.Fprintf(logFile, "[%s] %s %s\n", timestamp, level, fmt.Sprintf(format, args...))
	}
}

// Debugf records diagnostic chatter.
func Debugf(format string, args ...any) {
	write("DEBUG", format, args...)
}

// Warnf records recoverable problems (e.g. an unreadable preference file).
func Warnf(format string, args ...any) {
	write("WARN", format, args...)
}

// Errorf records failures that degrade a feature (e.g. the dataset fetch).
func Errorf(format string, args ...any) {
	write("ERROR", format, args...)
}
