// Package diag defines the diagnostics collaborator shared by the
// transform engine: three severities, injected explicitly rather than
// reached through package-level state.
package diag

import (
	"fmt"
	"log"
	"os"
)

// Reporter receives diagnostics from transform operations.
//
// Fatal must not return: the run cannot proceed. Error reports a
// recoverable failure whose operation degraded to a no-op. Warning notes a
// data-quality issue on an operation that still completed.
type Reporter interface {
	Fatal(format string, args ...any)
	Error(format string, args ...any)
	Warning(format string, args ...any)
}

// Stderr is the production Reporter: messages go to stderr and Fatal
// terminates the process.
type Stderr struct {
	logger *log.Logger
}

// NewStderr returns a Reporter writing to stderr with the given program
// name prefix.
func NewStderr(prog string) *Stderr {
	return &Stderr{logger: log.New(os.Stderr, prog+": ", 0)}
}

func (s *Stderr) Fatal(format string, args ...any) {
	s.logger.Fatalf("fatal: "+format, args...)
}

func (s *Stderr) Error(format string, args ...any) {
	s.logger.Printf("error: "+format, args...)
}

func (s *Stderr) Warning(format string, args ...any) {
	s.logger.Printf("warning: "+format, args...)
}

// Recorder is a Reporter for tests: it captures messages instead of
// printing them. Fatal panics with a FatalError so tests can observe
// fatal paths with recover.
type Recorder struct {
	Errors   []string
	Warnings []string
}

// FatalError is the panic value raised by Recorder.Fatal.
type FatalError struct {
	Message string
}

func (e FatalError) Error() string { return e.Message }

func (r *Recorder) Fatal(format string, args ...any) {
	panic(FatalError{Message: fmt.Sprintf(format, args...)})
}

func (r *Recorder) Error(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *Recorder) Warning(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}
