package notify_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/towtu/genesis-frontend/internal/notify"
)

func TestConfirm(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"y accepts", "y\n", true},
		{"yes accepts", "YES\n", true},
		{"n declines", "n\n", false},
		{"empty line declines", "\n", false},
		{"garbage declines", "sure why not\n", false},
		{"eof declines", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			term := notify.NewTerminal(&out, strings.NewReader(tt.input))
			if got := term.Confirm("Delete?"); got != tt.want {
				t.Errorf("Confirm(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if !strings.Contains(out.String(), "Delete?") {
				t.Errorf("prompt not written, got %q", out.String())
			}
		})
	}
}

func TestNotifications(t *testing.T) {
	var out bytes.Buffer
	term := notify.NewTerminal(&out, strings.NewReader(""))

	term.Success("Task deleted.")
	term.Error("Could not save the task.")
	term.Go("/dashboard")

	got := out.String()
	for _, want := range []string{"Task deleted.", "error: Could not save the task.", "-> /dashboard"} {
		if !strings.Contains(got, want) {
			t.Errorf("output %q missing %q", got, want)
		}
	}
}
