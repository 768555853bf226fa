package logs

import (
	"log"
	"os"
	"path/filepath"
	"sync"
)

var (
	Logger  *log.Logger
	logFile *os.File
	mu      sync.Mutex
)

const logPrefix = "[lifeplanner] "

// This runs automatically when the package is imported.
// Logs go to the temp dir until Initialize points them at the data directory;
// the TUI owns stdout so nothing is ever written there.
func init() {
	path := filepath.Join(os.TempDir(), "lifeplanner-debug.log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		Logger = log.New(os.Stderr, logPrefix, log.LstdFlags|log.Lshortfile)
		return
	}
	logFile = f
	Logger = log.New(f, logPrefix, log.LstdFlags|log.Lshortfile)
}

// Initialize reinitializes the logger to write debug.log inside logDir.
func Initialize(logDir string) error {
	mu.Lock()
	defer mu.Unlock()

	if logDir == "" || logDir == "." {
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		Logger.Printf("Failed to create log dir %s: %v", logDir, err)
		return err
	}

	logPath := filepath.Join(logDir, "debug.log")

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		Logger.Printf("Failed to open new log file at %s: %v", logPath, err)
		return err
	}

	if logFile != nil {
		logFile.Close()
	}

	logFile = f
	Logger = log.New(f, logPrefix, log.LstdFlags|log.Lshortfile)

	Logger.Printf("Logger initialized at: %s", logPath)

	return nil
}

// Close closes the log file.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		return err
	}
	return nil
}
