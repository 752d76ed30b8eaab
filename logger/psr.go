package logger

// PSRLogger is the eight-level logging interface, one method per syslog
// severity. payload may be nil; channel optionally overrides the
// logger's default channel for a single call.
type PSRLogger interface {
	Debug(msg string, payload any, channel ...string) error
	Info(msg string, payload any, channel ...string) error
	Notice(msg string, payload any, channel ...string) error
	Warning(msg string, payload any, channel ...string) error
	Error(msg string, payload any, channel ...string) error
	Critical(msg string, payload any, channel ...string) error
	Alert(msg string, payload any, channel ...string) error
	Emergency(msg string, payload any, channel ...string) error
}
