package logger

import (
	stderrors "errors"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// Dependency injection points for testing outputs.
var (
	outStdout io.Writer = os.Stdout
	now                 = time.Now
)

// Logger filters messages by level and writes them to the console
// and, when a file path is set, appends them to that file.
//
// Setters return the logger so configuration can be chained:
//
//	log := logger.New(logger.WarningLevel, "app", "").SetDateFormat("")
type Logger struct {
	mu         sync.Mutex
	level      Level
	channel    string
	dateFormat string
	stdOut     bool
	filePath   string
}

var _ PSRLogger = (*Logger)(nil)

// New returns a logger that emits messages at or above level.
// channel and filePath may be empty. The date format starts as
// DefaultDateFormat and console output starts enabled.
func New(level Level, channel, filePath string) *Logger {
	return &Logger{
		level:      level,
		channel:    channel,
		dateFormat: DefaultDateFormat,
		stdOut:     true,
		filePath:   filePath,
	}
}

// SetChannel sets the channel used when a call passes none.
func (l *Logger) SetChannel(name string) *Logger {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.channel = name
	return l
}

// SetDateFormat sets the timestamp pattern; "" drops the timestamp.
func (l *Logger) SetDateFormat(pattern string) *Logger {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.dateFormat = pattern
	return l
}

// SetLevel sets the minimum level.
func (l *Logger) SetLevel(level Level) *Logger {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
	return l
}

// SetStdOut enables or disables console output.
func (l *Logger) SetStdOut(enabled bool) *Logger {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.stdOut = enabled
	return l
}

// Level returns the minimum level.
func (l *Logger) Level() Level {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.level
}

// Channel returns the default channel.
func (l *Logger) Channel() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.channel
}

// DateFormat returns the timestamp pattern.
func (l *Logger) DateFormat() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.dateFormat
}

// StdOut reports whether console output is enabled.
func (l *Logger) StdOut() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.stdOut
}

// FilePath returns the file lines are appended to, or "".
func (l *Logger) FilePath() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.filePath
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string, payload any, channel ...string) error {
	return l.log(DebugLevel, msg, payload, channel)
}

// Info logs an informational message.
func (l *Logger) Info(msg string, payload any, channel ...string) error {
	return l.log(InfoLevel, msg, payload, channel)
}

// Notice logs a notice message.
func (l *Logger) Notice(msg string, payload any, channel ...string) error {
	return l.log(NoticeLevel, msg, payload, channel)
}

// Warning logs a warning message.
func (l *Logger) Warning(msg string, payload any, channel ...string) error {
	return l.log(WarningLevel, msg, payload, channel)
}

// Error logs an error message.
func (l *Logger) Error(msg string, payload any, channel ...string) error {
	return l.log(ErrorLevel, msg, payload, channel)
}

// Critical logs a critical message.
func (l *Logger) Critical(msg string, payload any, channel ...string) error {
	return l.log(CriticalLevel, msg, payload, channel)
}

// Alert logs an alert message.
func (l *Logger) Alert(msg string, payload any, channel ...string) error {
	return l.log(AlertLevel, msg, payload, channel)
}

// Emergency logs an emergency message.
func (l *Logger) Emergency(msg string, payload any, channel ...string) error {
	return l.log(EmergencyLevel, msg, payload, channel)
}

// log runs the shared filter, format and emit steps for every level.
// The payload is rendered before any sink is touched, so a payload
// failure leaves no output at all.
func (l *Logger) log(level Level, msg string, payload any, channels []string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if Rank(level) < Rank(l.level) || msg == "" {
		return nil
	}

	body := msg
	rendered, ok, err := renderPayload(payload)
	if err != nil {
		return err
	}
	if ok {
		body += "\n" + rendered
	}

	colored, plain := l.prefixes(level, resolveChannel(channels, l.channel))

	// Both sinks are attempted; a failing console does not drop the file line.
	var consoleErr, fileErr error
	if l.stdOut {
		if _, err := io.WriteString(outStdout, colored+body+"\n"); err != nil {
			consoleErr = wrapKind(ErrConsoleWrite, err, 0)
		}
	}
	if l.filePath != "" {
		fileErr = appendFile(l.filePath, plain+body+"\n")
	}
	return stderrors.Join(consoleErr, fileErr)
}

// prefixes builds the console and file variants of
// "[LEVEL]<pad>[channel] [timestamp] ", leaving out empty segments.
func (l *Logger) prefixes(level Level, channel string) (colored, plain string) {
	pad := strings.Repeat(" ", padding(level))
	var cb, pb strings.Builder
	cb.WriteString("[" + ColorLabel(level) + "]" + pad)
	pb.WriteString("[" + Label(level) + "]" + pad)

	if channel != "" {
		cb.WriteString("[" + colorMagenta + channel + colorReset + "] ")
		pb.WriteString("[" + channel + "] ")
	}
	if l.dateFormat != "" {
		date := formatDate(now(), l.dateFormat)
		cb.WriteString("[" + colorBrightCyan + date + colorReset + "] ")
		pb.WriteString("[" + date + "] ")
	}
	return cb.String(), pb.String()
}

// resolveChannel picks the first non-empty override, falling back to def.
func resolveChannel(overrides []string, def string) string {
	for _, c := range overrides {
		if c != "" {
			return c
		}
	}
	return def
}

// appendFile appends line to path, creating the file if needed.
func appendFile(path, line string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return wrapKind(ErrFileAppend, err, 0)
	}
	if _, err := f.WriteString(line); err != nil {
		_ = f.Close()
		return wrapKind(ErrFileAppend, err, 0)
	}
	if err := f.Close(); err != nil {
		return wrapKind(ErrFileAppend, err, 0)
	}
	return nil
}
