package gateway

import (
	"errors"
	"fmt"
	"maps"

	"blog-cms/internal/domain"
)

// Category groups gateway errors for transports.
type Category string

const (
	CategoryValidation   Category = "validation"
	CategoryNotFound     Category = "not_found"
	CategoryConflict     Category = "conflict"
	CategoryInvalidState Category = "invalid_state"
	CategoryInternal     Category = "internal"
)

// CodeInternal is reported for every failure that is not a domain error.
const CodeInternal = "INTERNAL_ERROR"

const internalMessage = "an internal error occurred"

// Error is the only error a gateway returns.
type Error struct {
	Category Category          `json:"category"`
	Code     string            `json:"code"`
	Message  string            `json:"message"`
	Fields   map[string]string `json:"fields,omitempty"`

	cause error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: [%s] %s", e.Category, e.Code, e.Message)
}

// Unwrap returns the original error.
func (e *Error) Unwrap() error {
	return e.cause
}

// CategoryOf maps a domain error kind to its gateway category.
func CategoryOf(kind domain.ErrorKind) Category {
	switch kind {
	case domain.KindValidation:
		return CategoryValidation
	case domain.KindNotFound:
		return CategoryNotFound
	case domain.KindConflict:
		return CategoryConflict
	case domain.KindInvalidTransition:
		return CategoryInvalidState
	default:
		return CategoryInternal
	}
}

// FromError converts any error into a gateway Error. Internal failures keep
// their cause for logging but expose only a generic message.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	var ge *Error
	if errors.As(err, &ge) {
		return ge
	}

	de, ok := domain.AsError(err)
	if !ok {
		return &Error{Category: CategoryInternal, Code: CodeInternal, Message: internalMessage, cause: err}
	}

	category := CategoryOf(de.Kind())
	if category == CategoryInternal {
		return &Error{Category: category, Code: string(de.Code), Message: internalMessage, cause: err}
	}
	return &Error{
		Category: category,
		Code:     string(de.Code),
		Message:  de.Message,
		Fields:   maps.Clone(de.Fields),
		cause:    err,
	}
}
