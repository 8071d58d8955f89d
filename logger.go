package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"
)

var (
	// logOutput receives every log line. Stdout is reserved for reports.
	logOutput io.Writer = os.Stderr

	errorLogger  *log.Logger
	errorLogPath string
	errorLogOnce sync.Once

	debugLogger  *log.Logger
	debugLogPath string
	debugLogOnce sync.Once

	logToFile bool
)

func setupLogging(debug, toFile bool, logDir string) {
	logToFile = toFile && !isWASM
	if logToFile {
		if err := os.MkdirAll(logDir, 0755); err != nil {
			log.Printf("could not create log directory: %v", err)
			logToFile = false
		}
	}
	ts := time.Now().Format("20060102-150405")

	errorLogPath = filepath.Join(logDir, fmt.Sprintf("error-%s.log", ts))
	errorLogOnce = sync.Once{}
	errorLogger = log.New(logOutput, "", log.LstdFlags)
	log.SetOutput(errorLogger.Writer())

	setDebugLogging(debug, logDir, ts)
}

// openLogFile tees l into path the first time it is used.
func openLogFile(l *log.Logger, path string) {
	if !logToFile {
		return
	}
	if f, err := os.Create(path); err == nil {
		l.SetOutput(io.MultiWriter(logOutput, f))
	}
}

func logError(format string, v ...interface{}) {
	if errorLogger == nil {
		return
	}
	errorLogOnce.Do(func() {
		openLogFile(errorLogger, errorLogPath)
		log.SetOutput(errorLogger.Writer())
	})
	errorLogger.Printf(format, v...)
}

func logWarn(format string, v ...interface{}) {
	logError("warning: %s", fmt.Sprintf(format, v...))
}

func logDebug(format string, v ...interface{}) {
	if debugLogger == nil {
		return
	}
	debugLogOnce.Do(func() {
		openLogFile(debugLogger, debugLogPath)
	})
	debugLogger.Printf(format, v...)
}

func setDebugLogging(enabled bool, logDir, ts string) {
	if !enabled {
		debugLogger = nil
		return
	}
	debugLogPath = filepath.Join(logDir, fmt.Sprintf("debug-%s.log", ts))
	debugLogOnce = sync.Once{}
	debugLogger = log.New(logOutput, "debug: ", log.LstdFlags)
}
