package logger

import (
	"strconv"
	"strings"
	"time"
)

// DefaultDateFormat renders timestamps like "14.10.2026 09:05:03".
const DefaultDateFormat = "DD.MM.YYYY HH:mm:ss"

// dateTokens lists the pattern placeholders. Longer tokens sharing a
// letter come first so "YYYY" wins over "YY".
var dateTokens = []struct {
	token  string
	render func(t time.Time) string
}{
	{"YYYY", func(t time.Time) string { return zeroPad(t.Year(), 4) }},
	{"YY", func(t time.Time) string { return zeroPad(t.Year()%100, 2) }},
	{"MMMM", func(t time.Time) string { return t.Month().String() }},
	{"MMM", func(t time.Time) string { return t.Month().String()[:3] }},
	{"MM", func(t time.Time) string { return zeroPad(int(t.Month()), 2) }},
	{"M", func(t time.Time) string { return strconv.Itoa(int(t.Month())) }},
	{"DD", func(t time.Time) string { return zeroPad(t.Day(), 2) }},
	{"D", func(t time.Time) string { return strconv.Itoa(t.Day()) }},
	{"dddd", func(t time.Time) string { return t.Weekday().String() }},
	{"ddd", func(t time.Time) string { return t.Weekday().String()[:3] }},
	{"HH", func(t time.Time) string { return zeroPad(t.Hour(), 2) }},
	{"H", func(t time.Time) string { return strconv.Itoa(t.Hour()) }},
	{"hh", func(t time.Time) string { return zeroPad(hour12(t), 2) }},
	{"h", func(t time.Time) string { return strconv.Itoa(hour12(t)) }},
	{"mm", func(t time.Time) string { return zeroPad(t.Minute(), 2) }},
	{"m", func(t time.Time) string { return strconv.Itoa(t.Minute()) }},
	{"ss", func(t time.Time) string { return zeroPad(t.Second(), 2) }},
	{"s", func(t time.Time) string { return strconv.Itoa(t.Second()) }},
	{"SSS", func(t time.Time) string { return zeroPad(t.Nanosecond()/int(time.Millisecond), 3) }},
	{"SS", func(t time.Time) string { return zeroPad(t.Nanosecond()/int(10*time.Millisecond), 2) }},
	{"S", func(t time.Time) string { return strconv.Itoa(t.Nanosecond() / int(100*time.Millisecond)) }},
	{"ZZ", func(t time.Time) string { return t.Format("-0700") }},
	{"Z", func(t time.Time) string { return t.Format("-07:00") }},
	{"A", func(t time.Time) string { return t.Format("PM") }},
	{"a", func(t time.Time) string { return t.Format("pm") }},
	{"X", func(t time.Time) string { return strconv.FormatInt(t.Unix(), 10) }},
	{"x", func(t time.Time) string { return strconv.FormatInt(t.UnixMilli(), 10) }},
}

// formatDate renders t with a moment-style pattern such as "DD.MM.YYYY HH:mm:ss".
// Text inside square brackets is copied verbatim; any character that does
// not start a token is copied as is.
func formatDate(t time.Time, pattern string) string {
	var b strings.Builder
	for i := 0; i < len(pattern); {
		if pattern[i] == '[' {
			if end := strings.IndexByte(pattern[i+1:], ']'); end >= 0 {
				b.WriteString(pattern[i+1 : i+1+end])
				i += end + 2
				continue
			}
		}
		matched := false
		for _, dt := range dateTokens {
			if strings.HasPrefix(pattern[i:], dt.token) {
				b.WriteString(dt.render(t))
				i += len(dt.token)
				matched = true
				break
			}
		}
		if !matched {
			b.WriteByte(pattern[i])
			i++
		}
	}
	return b.String()
}

func hour12(t time.Time) int {
	h := t.Hour() % 12
	if h == 0 {
		return 12
	}
	return h
}

func zeroPad(n, width int) string {
	s := strconv.Itoa(n)
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}
