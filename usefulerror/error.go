package usefulerror

import (
	"errors"
	"strings"
)

// UsefulError is an error that carries enough context to be shown to a user
// of the CLI instead of a raw internal error string.
type UsefulError interface {
	// Error maintains compatibility with the standard error interface.
	Error() string

	// HumanError returns a string that is more human-readable.
	HumanError() string

	// Help returns guidance specific to the business logic of the error.
	Help() string

	// AdditionalHelp returns tooling related guidance such as flags
	// that can be used to fix the error.
	AdditionalHelp() string

	// Code identifies the error type. Meant for programmatic use.
	Code() string
}

// usefulErrorBuilder is a value-style builder. Every method returns a new
// builder so that package level error definitions can be wrapped at call
// sites without being mutated.
type usefulErrorBuilder struct {
	originalError  error
	humanError     string
	help           string
	additionalHelp string
	code           string
	msg            string

	// parent is the error this one was derived from using Wrap
	parent *usefulErrorBuilder
}

var _ UsefulError = (*usefulErrorBuilder)(nil)

func Useful() *usefulErrorBuilder {
	return &usefulErrorBuilder{}
}

func (b *usefulErrorBuilder) clone() *usefulErrorBuilder {
	c := *b
	return &c
}

// Wrap returns a copy of the error that carries originalError as its cause.
// The copy still matches the receiver with errors.Is.
func (b *usefulErrorBuilder) Wrap(originalError error) *usefulErrorBuilder {
	c := b.clone()
	c.originalError = originalError
	c.parent = b
	return c
}

// WithHumanError sets a string that is more human-readable.
func (b *usefulErrorBuilder) WithHumanError(humanError string) *usefulErrorBuilder {
	c := b.clone()
	c.humanError = humanError
	return c
}

// WithHelp sets a string that provides additional help or guidance.
func (b *usefulErrorBuilder) WithHelp(help string) *usefulErrorBuilder {
	c := b.clone()
	c.help = help
	return c
}

// WithCode sets a code that can be used to identify the error types.
func (b *usefulErrorBuilder) WithCode(code string) *usefulErrorBuilder {
	c := b.clone()
	c.code = code
	return c
}

// Msg sets a message that is useful for the developer, but not necessarily human-readable.
func (b *usefulErrorBuilder) Msg(msg string) *usefulErrorBuilder {
	c := b.clone()
	c.msg = msg
	return c
}

// WithAdditionalHelp sets a string that provides additional help or guidance.
func (b *usefulErrorBuilder) WithAdditionalHelp(additionalHelp string) *usefulErrorBuilder {
	c := b.clone()
	c.additionalHelp = additionalHelp
	return c
}

func (b *usefulErrorBuilder) Error() string {
	if b.originalError != nil {
		if b.msg != "" {
			return b.msg + ": " + b.originalError.Error()
		}

		return b.originalError.Error()
	}

	if b.msg == "" {
		return "unknown error"
	}

	msgParts := []string{}
	if b.code != "" {
		msgParts = append(msgParts, b.code)
	}

	msgParts = append(msgParts, b.msg)
	return strings.Join(msgParts, ": ")
}

// Unwrap exposes the wrapped cause to errors.Is and errors.As.
func (b *usefulErrorBuilder) Unwrap() error {
	return b.originalError
}

// Is reports whether target is this error or one it was wrapped from.
func (b *usefulErrorBuilder) Is(target error) bool {
	t, ok := target.(*usefulErrorBuilder)
	if !ok {
		return false
	}

	for cur := b; cur != nil; cur = cur.parent {
		if cur == t {
			return true
		}
	}

	return false
}

// HumanError returns a string that is more human-readable.
func (b *usefulErrorBuilder) HumanError() string {
	if b.humanError == "" {
		return "An error occurred, but no human-readable message is available."
	}

	return b.humanError
}

// Help returns a string that provides additional help or guidance.
func (b *usefulErrorBuilder) Help() string {
	if b.help == "" {
		return "No additional help is available for this error."
	}

	return b.help
}

// Code returns a string that can be used to identify the error types.
func (b *usefulErrorBuilder) Code() string {
	if b.code == "" {
		return "unknown"
	}

	return b.code
}

// AdditionalHelp returns a string that provides additional help or guidance.
func (b *usefulErrorBuilder) AdditionalHelp() string {
	if b.additionalHelp == "" {
		return "No additional help is available for this error."
	}

	return b.additionalHelp
}

// AsUsefulError attempts to convert a given error into a UsefulError.
func AsUsefulError(err error) (UsefulError, bool) {
	if err == nil {
		return nil, false
	}

	var usefulErr *usefulErrorBuilder
	if errors.As(err, &usefulErr) {
		return usefulErr, true
	}

	var ue UsefulError
	if errors.As(err, &ue) {
		return ue, true
	}

	return nil, false
}
