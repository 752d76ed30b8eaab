package logger

import (
	"strconv"
	"strings"

	"github.com/go-errors/errors"
)

// Level defines log severity. Higher values are more severe.
type Level int

const (
	// Everything is a threshold below every level; it lets all messages through.
	Everything Level = -1
	// DebugLevel is for detailed diagnostic output.
	DebugLevel Level = iota
	// InfoLevel is for informational messages.
	InfoLevel
	// NoticeLevel is for normal but significant events.
	NoticeLevel
	// WarningLevel is for potentially problematic situations.
	WarningLevel
	// ErrorLevel is for failures that need attention.
	ErrorLevel
	// CriticalLevel is for critical conditions.
	CriticalLevel
	// AlertLevel is for conditions that need immediate action.
	AlertLevel
	// EmergencyLevel is for an unusable system.
	EmergencyLevel
)

// ANSI SGR sequences used for console output.
const (
	colorReset        = "\033[0m"
	colorRed          = "\033[31m"
	colorGreen        = "\033[32m"
	colorYellow       = "\033[33m"
	colorMagenta      = "\033[35m"
	colorWhite        = "\033[37m"
	colorBrightRed    = "\033[91m"
	colorBrightGreen  = "\033[92m"
	colorBrightYellow = "\033[93m"
	colorBrightCyan   = "\033[96m"
)

// AllLevels returns every emitting level in rank order.
func AllLevels() []Level {
	return []Level{
		DebugLevel,
		InfoLevel,
		NoticeLevel,
		WarningLevel,
		ErrorLevel,
		CriticalLevel,
		AlertLevel,
		EmergencyLevel,
	}
}

// Rank returns the integer used for threshold comparison.
func Rank(l Level) int {
	return int(l)
}

// Label returns the uppercase name of l, or its number for unknown values.
func Label(l Level) string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case NoticeLevel:
		return "NOTICE"
	case WarningLevel:
		return "WARNING"
	case ErrorLevel:
		return "ERROR"
	case CriticalLevel:
		return "CRITICAL"
	case AlertLevel:
		return "ALERT"
	case EmergencyLevel:
		return "EMERGENCY"
	default:
		return strconv.Itoa(int(l))
	}
}

// ColorLabel returns Label(l) wrapped in the level's terminal colour.
// Emergency shares Debug's bright cyan; unknown values are white.
func ColorLabel(l Level) string {
	return colorFor(l) + Label(l) + colorReset
}

func colorFor(l Level) string {
	switch l {
	case DebugLevel:
		return colorBrightCyan
	case InfoLevel:
		return colorBrightGreen
	case NoticeLevel:
		return colorGreen
	case WarningLevel:
		return colorYellow
	case ErrorLevel:
		return colorRed
	case CriticalLevel:
		return colorBrightRed
	case AlertLevel:
		return colorBrightYellow
	case EmergencyLevel:
		return colorBrightCyan
	default:
		return colorWhite
	}
}

// String implements fmt.Stringer.
func (l Level) String() string {
	return Label(l)
}

// padding is the number of spaces written after the [LEVEL] tag so tags line up.
func padding(l Level) int {
	switch l {
	case InfoLevel:
		return 6
	case DebugLevel, AlertLevel, ErrorLevel:
		return 5
	case NoticeLevel:
		return 4
	case WarningLevel:
		return 3
	case CriticalLevel, EmergencyLevel:
		return 2
	default:
		return 0
	}
}

// ParseLevel parses a level name, ignoring case and surrounding space.
func ParseLevel(name string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "EVERYTHING", "ALL":
		return Everything, nil
	case "DEBUG":
		return DebugLevel, nil
	case "INFO":
		return InfoLevel, nil
	case "NOTICE":
		return NoticeLevel, nil
	case "WARNING", "WARN":
		return WarningLevel, nil
	case "ERROR":
		return ErrorLevel, nil
	case "CRITICAL", "CRIT":
		return CriticalLevel, nil
	case "ALERT":
		return AlertLevel, nil
	case "EMERGENCY", "EMERG":
		return EmergencyLevel, nil
	}
	return Everything, errors.WrapPrefix(ErrUnknownLevel, strconv.Quote(name), 0)
}
