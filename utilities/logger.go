package utilities

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	infoLog      = log.New(os.Stdout, "INFO: ", log.Ldate|log.Ltime)
	warnLog      = log.New(os.Stdout, "WARNING: ", log.Ldate|log.Ltime)
	errorLog     = log.New(os.Stderr, "ERROR: ", log.Ldate|log.Ltime)
	debugLog     = log.New(os.Stdout, "DEBUG: ", log.Ldate|log.Ltime)
	debugEnabled bool
	logMutex     sync.Mutex
)

// InitLogging points each level at stdout/stderr plus a size-rotated file
// under logDir. Safe to skip in tests; the package falls back to stdout.
func InitLogging(logDir string, debug bool) {
	debugEnabled = debug

	rotated := func(name string) io.Writer {
		return &lumberjack.Logger{
			Filename:   filepath.Join(logDir, name),
			MaxSize:    50, // megabytes
			MaxBackups: 5,
			MaxAge:     28, // days
		}
	}

	infoWriter := io.MultiWriter(os.Stdout, rotated("info.log"))
	warnWriter := io.MultiWriter(os.Stdout, rotated("warn.log"))
	errorWriter := io.MultiWriter(os.Stderr, rotated("error.log"))

	infoLog = log.New(infoWriter, "INFO: ", log.Ldate|log.Ltime)
	warnLog = log.New(warnWriter, "WARNING: ", log.Ldate|log.Ltime)
	errorLog = log.New(errorWriter, "ERROR: ", log.Ldate|log.Ltime)
	debugLog = log.New(infoWriter, "DEBUG: ", log.Ldate|log.Ltime)

	// Redirect Go's default log through the info writer.
	log.SetOutput(infoWriter)
}

func getCallerInfo() string {
	pc, _, _, ok := runtime.Caller(3)
	if !ok {
		return "unknown"
	}
	return runtime.FuncForPC(pc).Name()
}

func logAt(logger *log.Logger, format string, v ...interface{}) {
	logMutex.Lock()
	defer logMutex.Unlock()
	logger.Printf("[%s] %s", getCallerInfo(), fmt.Sprintf(format, v...))
}

func Info(format string, v ...interface{}) {
	logAt(infoLog, format, v...)
}

func Warn(format string, v ...interface{}) {
	logAt(warnLog, format, v...)
}

func Error(format string, v ...interface{}) {
	logAt(errorLog, format, v...)
}

func Debug(format string, v ...interface{}) {
	if !debugEnabled {
		return
	}
	logAt(debugLog, format, v...)
}
