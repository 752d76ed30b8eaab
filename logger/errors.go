package logger

import (
	stderrors "errors"
	"fmt"

	"github.com/go-errors/errors"
)

// Error kinds returned by the logger. Match them with errors.Is; the
// returned values are *errors.Error from github.com/go-errors/errors and
// carry the stack of the failing call.
var (
	// ErrPayloadEncode reports a payload that could not be rendered as JSON.
	ErrPayloadEncode = stderrors.New("logger: payload encoding failed")
	// ErrConsoleWrite reports a failure writing a line to standard output.
	ErrConsoleWrite = stderrors.New("logger: console write failed")
	// ErrFileAppend reports a failure appending a line to the log file.
	ErrFileAppend = stderrors.New("logger: file append failed")
	// ErrUnknownLevel reports a level name ParseLevel does not recognise.
	ErrUnknownLevel = stderrors.New("logger: unknown level")
	// ErrConfig reports a configuration file that could not be loaded or validated.
	ErrConfig = stderrors.New("logger: invalid configuration")
)

// wrapKind ties cause to kind and records a stack starting at the
// caller of wrapKind, plus skip further frames.
func wrapKind(kind, cause error, skip int) *errors.Error {
	return errors.Wrap(fmt.Errorf("%w: %w", kind, cause), skip+1)
}
