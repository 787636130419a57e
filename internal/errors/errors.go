// Package errors defines the sentinel errors and error types rivet reports.
// Callers match them with errors.Is and errors.As.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common conditions
var (
	// ErrNoCredentials indicates that no API credential could be found
	ErrNoCredentials = errors.New("no credentials available")

	// ErrEmptyAnalysis indicates that the analysis turn produced no text
	ErrEmptyAnalysis = errors.New("empty analysis result")

	// ErrEmptyGeneration indicates that the generation turn produced no text
	ErrEmptyGeneration = errors.New("empty generation result")

	// ErrMalformedPayload indicates that a structured payload could not be parsed
	ErrMalformedPayload = errors.New("malformed payload")

	// ErrMissingField indicates that a parsed payload lacks a required field
	ErrMissingField = errors.New("missing required field")

	// ErrNoStagedChanges indicates that there is nothing staged to work with
	ErrNoStagedChanges = errors.New("no staged changes")
)

// ConfigurationError represents an unusable environment, such as a missing
// API credential. It carries a remediation hint for the user.
type ConfigurationError struct {
	Missing string
	Hint    string
}

func (e *ConfigurationError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("%s not configured. %s", e.Missing, e.Hint)
	}
	return fmt.Sprintf("%s not configured", e.Missing)
}

// Is returns true if the target error is ErrNoCredentials
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrNoCredentials
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(missing string, hint string) *ConfigurationError {
	return &ConfigurationError{Missing: missing, Hint: hint}
}

// EmptyAnalysisError represents an analysis turn that completed without any
// assistant text. Turn and step counts are kept as diagnostic detail.
type EmptyAnalysisError struct {
	Turns int
	Steps int
}

func (e *EmptyAnalysisError) Error() string {
	return fmt.Sprintf("analysis produced no text (%d turns, %d steps)", e.Turns, e.Steps)
}

// Is returns true if the target error is ErrEmptyAnalysis
func (e *EmptyAnalysisError) Is(target error) bool {
	return target == ErrEmptyAnalysis
}

// NewEmptyAnalysisError creates a new EmptyAnalysisError
func NewEmptyAnalysisError(turns, steps int) *EmptyAnalysisError {
	return &EmptyAnalysisError{Turns: turns, Steps: steps}
}

// EmptyGenerationError represents a generation turn that completed without any
// assistant text.
type EmptyGenerationError struct {
	Turns int
	Steps int
}

func (e *EmptyGenerationError) Error() string {
	return fmt.Sprintf("generation produced no text (%d turns, %d steps)", e.Turns, e.Steps)
}

// Is returns true if the target error is ErrEmptyGeneration
func (e *EmptyGenerationError) Is(target error) bool {
	return target == ErrEmptyGeneration
}

// NewEmptyGenerationError creates a new EmptyGenerationError
func NewEmptyGenerationError(turns, steps int) *EmptyGenerationError {
	return &EmptyGenerationError{Turns: turns, Steps: steps}
}

// MalformedPayloadError represents model output that could not be parsed as the
// expected structure. Raw preserves the offending text for bug reports.
type MalformedPayloadError struct {
	Raw string
	Err error
}

func (e *MalformedPayloadError) Error() string {
	return fmt.Sprintf("failed to parse model output: %v\nraw output: %s", e.Err, e.Raw)
}

// Is returns true if the target error is ErrMalformedPayload
func (e *MalformedPayloadError) Is(target error) bool {
	return target == ErrMalformedPayload
}

func (e *MalformedPayloadError) Unwrap() error {
	return e.Err
}

// NewMalformedPayloadError creates a new MalformedPayloadError
func NewMalformedPayloadError(raw string, err error) *MalformedPayloadError {
	return &MalformedPayloadError{Raw: raw, Err: err}
}

// MissingFieldError represents a parsed payload that lacks a required field.
type MissingFieldError struct {
	Field string
	Raw   string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("model output is missing required field %q\nraw output: %s", e.Field, e.Raw)
}

// Is returns true if the target error is ErrMissingField
func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingField
}

// NewMissingFieldError creates a new MissingFieldError
func NewMissingFieldError(field string, raw string) *MissingFieldError {
	return &MissingFieldError{Field: field, Raw: raw}
}

// CommandError reports a failed git or gh invocation, with both output
// streams captured for diagnostics.
type CommandError struct {
	Program string
	Args    []string
	Stdout  string
	Stderr  string
	Err     error
}

func (e *CommandError) Error() string {
	msg := e.Program
	if len(e.Args) > 0 {
		msg += " " + strings.Join(e.Args, " ")
	}
	msg += " failed"
	if e.Stderr != "" {
		msg += "\nstderr: " + e.Stderr
	}
	if e.Stdout != "" {
		msg += "\nstdout: " + e.Stdout
	}
	if e.Err != nil {
		msg += "\n" + e.Err.Error()
	}
	return msg
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// NewCommandError creates a new CommandError
func NewCommandError(program string, args []string, stdout, stderr string, err error) *CommandError {
	return &CommandError{
		Program: program,
		Args:    args,
		Stdout:  stdout,
		Stderr:  stderr,
		Err:     err,
	}
}
