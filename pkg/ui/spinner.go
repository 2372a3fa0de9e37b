// Package ui wraps small terminal UX helpers shared by the CLI commands.
package ui

import (
	"fmt"
	"time"

	"github.com/briandowns/spinner"

	"github.com/stellargrid/tentai-show/pkg/common"
)

// Spinner wraps github.com/briandowns/spinner with the project's logging
// conventions: it gets out of the way entirely under --verbose, and a log
// line printed through LogInfo while it's running stops it first so the
// line doesn't tear across the spinner frame.
type Spinner struct {
	s *spinner.Spinner
}

// NewSpinner creates a spinner with a default character set and cyan color.
func NewSpinner(msg string) *Spinner {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + msg
	_ = s.Color("cyan", "bold")
	return &Spinner{s: s}
}

// Start starts the spinner, unless verbose mode is enabled.
func (s *Spinner) Start() {
	if !common.VerboseEnabled {
		s.s.Start()
	}
}

// Stop stops the spinner.
func (s *Spinner) Stop() {
	s.s.Stop()
}

// UpdateMessage replaces the spinner's suffix text.
func (s *Spinner) UpdateMessage(format string, args ...interface{}) {
	s.s.Suffix = " " + fmt.Sprintf(format, args...)
}

// LogInfo stops the spinner, prints an info message, and restarts it.
func (s *Spinner) LogInfo(format string, args ...interface{}) {
	wasRunning := s.s.Active()
	if wasRunning {
		s.s.Stop()
	}
	common.Info(format, args...)
	if wasRunning && !common.VerboseEnabled {
		s.s.Start()
	}
}
