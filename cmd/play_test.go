package cmd

import (
	"path/filepath"
	"testing"
)

func TestLogFilePath(t *testing.T) {
	data := t.TempDir()
	t.Setenv("MATHCOACH_DB", "")
	t.Setenv("XDG_DATA_HOME", data)

	dir := t.TempDir()
	fallback := filepath.Join(data, "mathcoach", "mathcoach.log")
	tests := []struct {
		dsn  string
		want string
	}{
		{filepath.Join(dir, "quiz.db"), filepath.Join(dir, "mathcoach.log")},
		{"", fallback},
		{"file:", fallback},
		{"file:quiz?mode=memory&cache=shared", fallback},
		{"postgres://u@localhost/quiz", fallback},
	}
	for _, tt := range tests {
		if got := logFilePath(tt.dsn); got != tt.want {
			t.Errorf("logFilePath(%q) = %q, want %q", tt.dsn, got, tt.want)
		}
	}
}
