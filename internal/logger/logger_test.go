package logger

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedNow() time.Time {
	return time.Date(2024, 3, 7, 9, 5, 2, 0, time.Local)
}

func newTestLogger(level slog.Level) (*Logger, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	l := New(Options{Level: level, Out: &out, Err: &errOut, Now: fixedNow})
	return l, &out, &errOut
}

func TestLineFormat(t *testing.T) {
	l, out, _ := newTestLogger(LevelDev)
	l.Dev("questions regenerated", "count", 60, "facts", 225)

	assert.Equal(t, "[2024-03-07 09:05:02] [DEV] questions regenerated count=60 facts=225\n", out.String())
}

func TestPrdGoesToErrWriter(t *testing.T) {
	l, out, errOut := newTestLogger(LevelDev)
	l.Prd("attempt saved", "grade", "master")

	assert.Empty(t, out.String())
	assert.Equal(t, "[2024-03-07 09:05:02] [PRD] attempt saved grade=master\n", errOut.String())
}

func TestLevelFiltering(t *testing.T) {
	tests := []struct {
		level    slog.Level
		wantDev  bool
		wantTest bool
	}{
		{LevelDev, true, true},
		{LevelTest, false, true},
		{LevelPrd, false, false},
	}

	for _, tt := range tests {
		t.Run(LevelName(tt.level), func(t *testing.T) {
			l, out, errOut := newTestLogger(tt.level)
			l.Dev("dev line")
			l.Test("test line")
			l.Prd("prd line")

			assert.Equal(t, tt.wantDev, bytes.Contains(out.Bytes(), []byte("[DEV] dev line")))
			assert.Equal(t, tt.wantTest, bytes.Contains(out.Bytes(), []byte("[TEST] test line")))
			assert.Contains(t, errOut.String(), "[PRD] prd line")
		})
	}
}

func TestResolveLevel(t *testing.T) {
	env := func(m map[string]string) func(string) string {
		return func(k string) string { return m[k] }
	}

	assert.Equal(t, LevelTest, ResolveLevel(env(map[string]string{"LOG_LEVEL": "test"})))
	assert.Equal(t, LevelDev, ResolveLevel(env(map[string]string{"LOG_LEVEL": "DEV"})))
	assert.Equal(t, LevelDev, ResolveLevel(env(map[string]string{"MATHCOACH_ENV": "development"})))
	assert.Equal(t, LevelPrd, ResolveLevel(env(map[string]string{})))
	assert.Equal(t, LevelPrd, ResolveLevel(env(map[string]string{"LOG_LEVEL": "verbose"})))
}

func TestParseLevel(t *testing.T) {
	l, ok := ParseLevel(" prd ")
	require.True(t, ok)
	assert.Equal(t, LevelPrd, l)

	_, ok = ParseLevel("info")
	assert.False(t, ok)
}

func TestWithAttrsAndQuoting(t *testing.T) {
	l, out, _ := newTestLogger(LevelTest)
	l.With("task", "t1").Test("created", "title", "Times tables")

	assert.Equal(t, "[2024-03-07 09:05:02] [TEST] created task=t1 title=\"Times tables\"\n", out.String())
}

func TestDiscard(t *testing.T) {
	l := Discard()
	l.Prd("nothing")
}
