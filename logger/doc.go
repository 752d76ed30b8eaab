// Package logger provides a small leveled logger with the eight syslog
// severities, coloured console output and optional append-only file output.
//
// # Output
//
// Every emitted call writes one line, optionally followed by a payload:
//
//	[LEVEL]<pad>[channel] [timestamp] message
//	payload
//
// The console variant colours the level, channel and timestamp with ANSI
// escapes. The file variant is plain text and is appended to the
// configured file, which is created if absent and never truncated.
// Padding after the level tag is fixed per level so tags line up.
//
// # Usage
//
// Build a logger and chain its setters:
//
//	log := logger.New(logger.WarningLevel, "app", "/var/log/app.log").
//	    SetDateFormat("YYYY-MM-DD HH:mm:ss")
//	log.Warning("low disk", nil)
//	log.Error("request failed", map[string]any{"code": 42}, "http")
//
// Or configure the package-level default logger from a file:
//
//	cfg, err := logger.LoadConfig("logger.toml")
//	if err != nil {
//	    return err
//	}
//	if err := logger.Init(cfg); err != nil {
//	    return err
//	}
//	logger.Info("ready", nil)
//
// # Payloads
//
// A string payload is printed as is on the next line. A nil payload,
// including a nil map, slice or pointer, prints nothing. Any other value
// is printed as JSON indented with four spaces.
//
// # Errors
//
// Logging calls return an error when the payload cannot be encoded or a
// sink cannot be written. Both sinks are tried even if the console fails.
// Use errors.Is with ErrPayloadEncode, ErrConsoleWrite or ErrFileAppend
// to tell them apart; the errors carry a stack trace from
// github.com/go-errors/errors. A filtered call returns nil.
//
// # Date formats
//
// Timestamps use moment-style tokens: YYYY YY MMMM MMM MM M DD D dddd ddd
// HH H hh h mm m ss s SSS SS S A a ZZ Z X x. Text in square brackets is
// copied verbatim. An empty pattern drops the timestamp.
package logger
