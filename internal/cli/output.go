package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-json"

	"consttable/internal/diagnostic"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Declaration has error diagnostics
	ExitCommandError = 2 // Command error (unreadable file, bad flags, write failure)
)

// ExitError represents an error with a specific exit code.
type ExitError struct {
	Code    int    // Exit code (use ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}

	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error. It returns ExitSuccess
// for nil and ExitCommandError for errors that are not ExitErrors, which
// covers cobra's own flag and argument errors.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	return ExitCommandError
}

// OutputFormatter handles JSON vs text output for CLI commands.
type OutputFormatter struct {
	Format    string
	Writer    io.Writer
	ErrWriter io.Writer // Separate writer for diagnostics in text mode (defaults to Writer)
}

// CLIResponse is the standard JSON response format for CLI output.
type CLIResponse struct {
	Status string    `json:"status"`          // "ok" or "error"
	Data   any       `json:"data,omitempty"`  // success payload
	Error  *CLIError `json:"error,omitempty"` // error details
}

// CLIError is the error structure for CLI responses.
type CLIError struct {
	Code    string `json:"code"`              // diagnostic code or "command_error"
	Message string `json:"message"`           // human-readable message
	Details any    `json:"details,omitempty"` // additional context
}

// Report is the payload of gen and check responses.
type Report struct {
	File        string                 `json:"file"`
	Written     []string               `json:"written,omitempty"`
	Diagnostics diagnostic.Diagnostics `json:"diagnostics"`
}

// IsJSON reports whether JSON output was requested.
func (f *OutputFormatter) IsJSON() bool {
	return f.Format == "json"
}

// Encode writes v as indented JSON.
func (f *OutputFormatter) Encode(v any) error {
	encoder := json.NewEncoder(f.Writer)
	encoder.SetIndent("", "  ")

	return encoder.Encode(v)
}

// Report outputs diagnostics and written files. It returns an ExitError
// with ExitFailure when the report holds error diagnostics.
func (f *OutputFormatter) Report(r *Report) error {
	failed := r.Diagnostics.HasErrors()

	if f.IsJSON() {
		resp := CLIResponse{Status: "ok", Data: r}
		if failed {
			first := r.Diagnostics.Errors[0]
			resp.Status = "error"
			resp.Error = &CLIError{Code: first.Code, Message: first.Message}
		}

		if err := f.Encode(resp); err != nil {
			return WrapExitError(ExitCommandError, "writing output", err)
		}
	} else {
		f.writeText(r)
	}

	if failed {
		return NewExitError(ExitFailure,
			fmt.Sprintf("%s: %d error(s)", r.File, len(r.Diagnostics.Errors)))
	}

	return nil
}

func (f *OutputFormatter) writeText(r *Report) {
	w := f.GetErrWriter()

	for _, d := range r.Diagnostics.All() {
		fmt.Fprintf(w, "%s: %s\n", d.Severity, d.String())
	}

	for _, path := range r.Written {
		fmt.Fprintf(f.Writer, "wrote %s\n", path)
	}

	if !r.Diagnostics.HasErrors() && len(r.Written) == 0 {
		fmt.Fprintf(f.Writer, "%s: ok\n", r.File)
	}
}

// CommandError outputs a command-level failure and returns it as an
// ExitError with ExitCommandError.
func (f *OutputFormatter) CommandError(message string, err error) error {
	exitErr := WrapExitError(ExitCommandError, message, err)

	if f.IsJSON() {
		_ = f.Encode(CLIResponse{
			Status: "error",
			Error:  &CLIError{Code: "command_error", Message: exitErr.Error()},
		})
	} else {
		fmt.Fprintf(f.GetErrWriter(), "error: %s\n", exitErr.Error())
	}

	return exitErr
}

// GetErrWriter returns ErrWriter if set, otherwise Writer.
func (f *OutputFormatter) GetErrWriter() io.Writer {
	if f.ErrWriter != nil {
		return f.ErrWriter
	}

	return f.Writer
}
