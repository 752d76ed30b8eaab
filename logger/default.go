package logger

import "sync/atomic"

var defaultLogger atomic.Pointer[Logger]

func init() {
	defaultLogger.Store(New(Everything, "", ""))
}

// Init replaces the default logger with one built from cfg.
// Call it once at startup; the package-level functions use the result.
func Init(cfg Config) error {
	l, err := NewFromConfig(cfg)
	if err != nil {
		return err
	}
	defaultLogger.Store(l)
	return nil
}

// Default returns the logger used by the package-level functions.
func Default() *Logger {
	return defaultLogger.Load()
}

// SetDefault replaces the default logger. A nil logger is ignored.
func SetDefault(l *Logger) {
	if l != nil {
		defaultLogger.Store(l)
	}
}

// Debug logs a debug message with the default logger.
func Debug(msg string, payload any, channel ...string) error {
	return Default().log(DebugLevel, msg, payload, channel)
}

// Info logs an informational message with the default logger.
func Info(msg string, payload any, channel ...string) error {
	return Default().log(InfoLevel, msg, payload, channel)
}

// Notice logs a notice message with the default logger.
func Notice(msg string, payload any, channel ...string) error {
	return Default().log(NoticeLevel, msg, payload, channel)
}

// Warning logs a warning message with the default logger.
func Warning(msg string, payload any, channel ...string) error {
	return Default().log(WarningLevel, msg, payload, channel)
}

// Error logs an error message with the default logger.
func Error(msg string, payload any, channel ...string) error {
	return Default().log(ErrorLevel, msg, payload, channel)
}

// Critical logs a critical message with the default logger.
func Critical(msg string, payload any, channel ...string) error {
	return Default().log(CriticalLevel, msg, payload, channel)
}

// Alert logs an alert message with the default logger.
func Alert(msg string, payload any, channel ...string) error {
	return Default().log(AlertLevel, msg, payload, channel)
}

// Emergency logs an emergency message with the default logger.
func Emergency(msg string, payload any, channel ...string) error {
	return Default().log(EmergencyLevel, msg, payload, channel)
}
