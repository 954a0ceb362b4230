package scalar

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureLogs routes decode warnings to a test hook for the duration of t.
func captureLogs(t *testing.T) *test.Hook {
	t.Helper()
	l, hook := test.NewNullLogger()
	prev := Logger()
	SetLogger(l)
	t.Cleanup(func() { SetLogger(prev) })
	return hook
}

func TestTrimSpace(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"plain", "name", "name"},
		{"ascii", "  name\t\n", "name"},
		{"nbsp", "\u00a0name\u00a0", "name"},
		{"narrow nbsp", "\u202fname\u2007", "name"},
		{"mixed nested", " \u00a0 \t\u00a0name\u00a0 \u00a0 ", "name"},
		{"zero width", "\ufeff\u200bname", "name"},
		{"inner kept", " first\u00a0last ", "first\u00a0last"},
		{"only spaces", "\u00a0 \u00a0", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TrimSpace(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, TrimSpace(got), "TrimSpace must be idempotent")
		})
	}
}

func TestNormalize(t *testing.T) {
	for _, in := range []string{" Name ", "NAME", "name", "\u00a0NaMe\u00a0"} {
		assert.Equal(t, "name", Normalize(in), "Normalize(%q)", in)
	}
}

func TestParseDate(t *testing.T) {
	hook := captureLogs(t)
	want := time.Date(1984, time.August, 13, 0, 0, 0, 0, time.UTC)

	got, ok := ParseDate("02.01.2006", "13.08.1984")
	require.True(t, ok)
	assert.True(t, want.Equal(got))

	got, ok = ParseDate("02.01.2006", "\u00a01984-08-13 ")
	require.True(t, ok, "canonical layout is the fallback")
	assert.True(t, want.Equal(got))

	got, ok = ParseDate("", "1984-08-13")
	require.True(t, ok)
	assert.True(t, want.Equal(got))

	assert.Empty(t, hook.AllEntries())
}

func TestParseDate_Empty(t *testing.T) {
	hook := captureLogs(t)

	got, ok := ParseDate(DateLayout, " \u00a0 ")
	assert.False(t, ok)
	assert.True(t, got.IsZero(), "empty input is no value, not epoch")
	assert.Empty(t, hook.AllEntries(), "empty input is not a failure")
}

func TestParseDate_Invalid(t *testing.T) {
	hook := captureLogs(t)

	_, ok := ParseDate("02.01.2006", "tomorrow")
	assert.False(t, ok)
	require.Len(t, hook.AllEntries(), 1)
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
	assert.Equal(t, "tomorrow", hook.LastEntry().Data["value"])
}

func TestFormatDate(t *testing.T) {
	d := time.Date(1984, time.August, 13, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, "1984-08-13", FormatDate(d))
}

func TestParseInt(t *testing.T) {
	hook := captureLogs(t)

	assert.Equal(t, 23, ParseInt("23"))
	assert.Equal(t, -7, ParseInt("\u00a0-7 "))
	assert.Equal(t, 0, ParseInt(""))
	assert.Empty(t, hook.AllEntries())

	assert.Equal(t, 0, ParseInt("abc"))
	require.Len(t, hook.AllEntries(), 1)
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
}

func TestParseInt64(t *testing.T) {
	hook := captureLogs(t)

	assert.Equal(t, int64(9007199254740993), ParseInt64(" 9007199254740993 "))
	assert.Equal(t, int64(0), ParseInt64(""))
	assert.Empty(t, hook.AllEntries())

	assert.Equal(t, int64(0), ParseInt64("12.5"))
	assert.Len(t, hook.AllEntries(), 1)
}

func TestParseFloat64(t *testing.T) {
	hook := captureLogs(t)

	assert.Equal(t, 1.5, ParseFloat64("1.5"))
	assert.Equal(t, 1000.0, ParseFloat64("1E3"))
	assert.Equal(t, 0.0, ParseFloat64("\u00a0"))
	assert.Empty(t, hook.AllEntries())

	assert.Equal(t, 0.0, ParseFloat64("1,5"))
	assert.Len(t, hook.AllEntries(), 1)
}

func TestSetLogger_NilRestoresStandard(t *testing.T) {
	prev := Logger()
	t.Cleanup(func() { SetLogger(prev) })

	SetLogger(nil)
	assert.Same(t, logrus.StandardLogger(), Logger())
}
