// file: internal/recognizer/announcer.go
// version: 1.0.0
// guid: a0c63e97-f48e-4c20-a370-1b63fe9e31e0

package recognizer

import (
	"fmt"
	"io"
	"os/exec"
)

// Announcer receives one call per recognized medication (or a single
// "nothing recognized" message). Speech synthesis itself is an external
// collaborator; implementations here only hand the text over.
type Announcer interface {
	Announce(text string) error
}

// NopAnnouncer discards announcements.
type NopAnnouncer struct{}

func (NopAnnouncer) Announce(string) error { return nil }

// WriterAnnouncer writes announcements to w, one per line.
type WriterAnnouncer struct {
	W io.Writer
}

func (a WriterAnnouncer) Announce(text string) error {
	_, err := fmt.Fprintln(a.W, text)
	return err
}

// ExecAnnouncer runs an external text-to-speech command (espeak, say, ...)
// with the announcement appended as the final argument. The command is
// caller-configured; each announcement is one synchronous invocation.
type ExecAnnouncer struct {
	Command string
	Args    []string
}

func (a ExecAnnouncer) Announce(text string) error {
	args := append(append([]string{}, a.Args...), text)
	if err := exec.Command(a.Command, args...).Run(); err != nil {
		return fmt.Errorf("announce via %s: %w", a.Command, err)
	}
	return nil
}

// MultiAnnouncer fans an announcement out to several announcers, returning
// the first error encountered after all have run.
type MultiAnnouncer []Announcer

func (m MultiAnnouncer) Announce(text string) error {
	var first error
	for _, a := range m {
		if err := a.Announce(text); err != nil && first == nil {
			first = err
		}
	}
	return first
}
