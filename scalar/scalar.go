package scalar

import (
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DateLayout is the canonical date layout of wiki table markup.
const DateLayout = "2006-01-02"

var logger logrus.FieldLogger = logrus.StandardLogger()

// SetLogger replaces the logger used for decode warnings. It is not safe
// to call while decoders are running.
func SetLogger(l logrus.FieldLogger) {
	if l == nil {
		l = logrus.StandardLogger()
	}
	logger = l
}

// Logger returns the logger used for decode warnings.
func Logger() logrus.FieldLogger {
	return logger
}

// isTrimmable matches the characters stripped by TrimSpace: ASCII controls
// and space, Unicode white space (which covers U+00A0, U+2007 and U+202F),
// and the zero-width characters unicode.IsSpace leaves out.
func isTrimmable(r rune) bool {
	switch r {
	case '\u180e', '\u200b', '\ufeff':
		return true
	}
	return r <= ' ' || unicode.IsSpace(r)
}

// TrimSpace removes leading and trailing white space, including
// non-breaking space variants. The result is a fixed point:
// TrimSpace(TrimSpace(s)) == TrimSpace(s).
func TrimSpace(s string) string {
	return strings.TrimFunc(s, isTrimmable)
}

// Normalize trims s with TrimSpace and lower-cases it independently of the
// process locale. It is the form used to compare table headers.
func Normalize(s string) string {
	return lower(TrimSpace(s))
}

// lower builds a fresh Caser per call; casers keep state between calls.
func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

// ParseDate decodes a date, trying layout first and DateLayout second.
// Empty text yields no value without a warning. Text matching neither
// layout yields no value and a warning.
func ParseDate(layout, text string) (time.Time, bool) {
	s := TrimSpace(text)
	if s == "" {
		return time.Time{}, false
	}
	if layout != "" {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		logger.WithFields(logrus.Fields{
			"value":  text,
			"layout": layout,
		}).Warn("could not parse date")
		return time.Time{}, false
	}
	return t, true
}

// FormatDate renders t in DateLayout.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseInt decodes a base-10 int. Empty or invalid text yields 0.
func ParseInt(text string) int {
	s := Normalize(text)
	if s == "" {
		return 0
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		logger.WithError(err).WithField("value", text).Warn("could not parse int")
		return 0
	}
	return v
}

// ParseInt64 decodes a base-10 int64. Empty or invalid text yields 0.
func ParseInt64(text string) int64 {
	s := Normalize(text)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		logger.WithError(err).WithField("value", text).Warn("could not parse long")
		return 0
	}
	return v
}

// ParseFloat64 decodes a float64. Empty or invalid text yields 0.
func ParseFloat64(text string) float64 {
	s := Normalize(text)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		logger.WithError(err).WithField("value", text).Warn("could not parse double")
		return 0
	}
	return v
}
