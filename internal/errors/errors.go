// Package errors provides the structured user-facing error used outside
// the overlay core: a code, what failed, the cause, and how to fix it.
package errors

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rileyhilliard/imgdeck/internal/ui"
)

// Error codes
const (
	ErrConfig = "CONFIG" // config file, flags, or environment overrides
	ErrTheme  = "THEME"  // unknown theme mode
	ErrUI     = "UI"     // terminal or program failures
)

// Error is a user-facing failure. Error() renders it as:
//
//	✗ <Message>
//
//	  <Cause>
//
//	  <Suggestion>
type Error struct {
	Code       string
	Message    string
	Suggestion string
	Cause      error
}

// New creates an error without a cause.
func New(code, message, suggestion string) *Error {
	return &Error{Code: code, Message: message, Suggestion: suggestion}
}

// Newf is New with a formatted message.
func Newf(code, suggestion, format string, args ...interface{}) *Error {
	return New(code, fmt.Sprintf(format, args...), suggestion)
}

// Wrap attaches a message to err under ErrUI.
func Wrap(err error, message string) *Error {
	return &Error{Code: ErrUI, Message: message, Cause: err}
}

// WrapWithCode attaches a code, message, and suggestion to err.
func WrapWithCode(err error, code, message, suggestion string) *Error {
	return &Error{Code: code, Message: message, Suggestion: suggestion, Cause: err}
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.render(func(s string) string { return s }, func(s string) string { return s })
}

// Render is Error() with the headline in the error color and the details
// muted, for printing to a terminal.
func (e *Error) Render() string {
	errStyle, mutedStyle := ui.ErrorStyle(), ui.MutedStyle()
	return e.render(
		func(s string) string { return errStyle.Render(s) },
		func(s string) string { return mutedStyle.Render(s) },
	)
}

func (e *Error) render(head, detail func(string) string) string {
	var b strings.Builder
	b.WriteString(head(ui.SymbolFail+" "+e.Message) + "\n")
	if e.Cause != nil {
		b.WriteString("\n  " + detail(e.Cause.Error()) + "\n")
	}
	if e.Suggestion != "" {
		b.WriteString("\n  " + e.Suggestion + "\n")
	}
	return b.String()
}

// Unwrap returns the underlying cause for use with errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// CodeOf returns the code of the first *Error in err's chain, or "".
func CodeOf(err error) string {
	var deckErr *Error
	if errors.As(err, &deckErr) {
		return deckErr.Code
	}
	return ""
}

// IsCode reports whether err carries code.
func IsCode(err error, code string) bool {
	return err != nil && CodeOf(err) == code
}

// Render formats any error for the terminal. Structured errors keep their
// layout; others get the failure symbol.
func Render(err error) string {
	var deckErr *Error
	if errors.As(err, &deckErr) {
		return deckErr.Render()
	}
	return ui.ErrorStyle().Render(ui.SymbolFail+" "+err.Error()) + "\n"
}
