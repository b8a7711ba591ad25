// Package logger provides leveled logging for the game's components.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// LogLevel represents the severity level of a log message
type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
	FATAL
)

func (l LogLevel) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	case FATAL:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a flag value such as "warn" into a LogLevel.
func ParseLevel(s string) (LogLevel, error) {
	switch strings.ToLower(s) {
	case "debug":
		return DEBUG, nil
	case "info":
		return INFO, nil
	case "warn", "warning":
		return WARN, nil
	case "error":
		return ERROR, nil
	}
	return INFO, fmt.Errorf("unknown log level %q", s)
}

// Logger пишет сообщения с уровнем и префиксом компонента.
type Logger struct {
	mu      sync.Mutex
	level   LogLevel
	prefix  string
	logger  *log.Logger
	logFile *os.File
	console bool
}

// New creates a new Logger writing to stdout.
func New(level LogLevel, prefix string) *Logger {
	return &Logger{
		level:   level,
		prefix:  prefix,
		logger:  log.New(os.Stdout, "", 0),
		console: true,
	}
}

// SetOutput replaces the destination; console and file settings are bypassed.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logger.SetOutput(w)
}

func (l *Logger) SetLevel(level LogLevel) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// SetConsole enables or disables logging to stdout.
func (l *Logger) SetConsole(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.console = enable
	l.updateOutput()
}

// setFile shares an already opened file between loggers.
func (l *Logger) setFile(f *os.File) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logFile = f
	l.updateOutput()
}

func (l *Logger) updateOutput() {
	var writers []io.Writer
	if l.console {
		writers = append(writers, os.Stdout)
	}
	if l.logFile != nil {
		writers = append(writers, l.logFile)
	}

	switch len(writers) {
	case 0:
		l.logger.SetOutput(io.Discard)
	case 1:
		l.logger.SetOutput(writers[0])
	default:
		l.logger.SetOutput(io.MultiWriter(writers...))
	}
}

func (l *Logger) log(level LogLevel, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if level < l.level {
		return
	}

	timestamp := time.Now().Format("2006-01-02 15:04:05")
	message := fmt.Sprintf(format, args...)
	l.logger.Printf("[%s] [%s] %s: %s", timestamp, level, l.prefix, message)

	if level == FATAL {
		os.Exit(1)
	}
}

func (l *Logger) Debug(format string, args ...interface{}) { l.log(DEBUG, format, args...) }
func (l *Logger) Info(format string, args ...interface{})  { l.log(INFO, format, args...) }
func (l *Logger) Warn(format string, args ...interface{})  { l.log(WARN, format, args...) }
func (l *Logger) Error(format string, args ...interface{}) { l.log(ERROR, format, args...) }

// Fatal logs and exits the process.
func (l *Logger) Fatal(format string, args ...interface{}) { l.log(FATAL, format, args...) }

var (
	Game        = New(INFO, "GAME")
	Persistence = New(INFO, "PERSISTENCE")
	Audio       = New(INFO, "AUDIO")
	UI          = New(INFO, "UI")
)

func all() []*Logger {
	return []*Logger{Game, Persistence, Audio, UI}
}

// InitializeFileLogging sends every default logger to a dated file in
// directory. When console is false stdout is left untouched, which the
// terminal frontend needs.
func InitializeFileLogging(directory string, console bool) (io.Closer, error) {
	if err := os.MkdirAll(directory, 0755); err != nil {
		return nil, fmt.Errorf("failed to create logs directory: %w", err)
	}

	name := filepath.Join(directory, fmt.Sprintf("td_%s.log", time.Now().Format("2006-01-02")))
	f, err := os.OpenFile(name, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	for _, l := range all() {
		l.SetConsole(console)
		l.setFile(f)
	}
	return f, nil
}

// SetGlobalLogLevel sets the level for all default loggers.
func SetGlobalLogLevel(level LogLevel) {
	for _, l := range all() {
		l.SetLevel(level)
	}
}

// SetGlobalOutput redirects all default loggers, mostly for tests.
func SetGlobalOutput(w io.Writer) {
	for _, l := range all() {
		l.SetOutput(w)
	}
}
