// Package notify provides the terminal implementations of the user-facing
// side effect collaborators: notifications, confirmation prompts and
// navigation.
package notify

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Terminal writes notifications to out and reads confirmations from in.
type Terminal struct {
	out io.Writer
	in  *bufio.Reader
}

func NewTerminal(out io.Writer, in io.Reader) *Terminal {
	return &Terminal{out: out, in: bufio.NewReader(in)}
}

func (t *Terminal) Success(msg string) {
	fmt.Fprintln(t.out, msg)
}

func (t *Terminal) Error(msg string) {
	fmt.Fprintln(t.out, "error:", msg)
}

// Confirm blocks for a y/n answer. Anything but an explicit yes declines.
func (t *Terminal) Confirm(prompt string) bool {
	fmt.Fprintf(t.out, "%s [y/N] ", prompt)
	line, err := t.in.ReadString('\n')
	if err != nil {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}

// Go announces the navigation target. The CLI has no router; printing the
// destination is the whole effect, and a response arriving for a view the
// user already left lands here harmlessly.
func (t *Terminal) Go(path string) {
	fmt.Fprintln(t.out, "->", path)
}
