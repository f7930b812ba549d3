package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

const (
	logDir      = "logs"
	logFileName = "waterfall.log"
	maxLogSize  = 10 * 1024 * 1024 // 10MB
)

// setupLogging redirects the standard logger to logs/waterfall.log when debug is set
// Otherwise all log output is discarded; the terminal is owned by the screen
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	rotateLog(logPath)

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	log.Printf("waterfall: logging started (pid %d)", os.Getpid())
	return f
}

// rotateLog renames an oversized log to a timestamped name
func rotateLog(logPath string) {
	info, err := os.Stat(logPath)
	if err != nil || info.Size() <= maxLogSize {
		return
	}
	rotated := filepath.Join(logDir, fmt.Sprintf("waterfall-%s.log", time.Now().Format("20060102-150405")))
	_ = os.Rename(logPath, rotated)
}
