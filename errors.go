package progcrawl

import (
	"errors"
	"fmt"
)

// Application error codes. These map failure classes in the crawl pipeline
// to machine-readable values so callers can decide whether to retry, skip,
// or abort without string matching.
const (
	EINVALID     = "invalid"     // malformed input (URL, seed list, record)
	ENOTFOUND    = "not_found"   // entity does not exist
	EFORBIDDEN   = "forbidden"   // politeness gate denied the request
	EUNAVAILABLE = "unavailable" // transient fetch failure (429, 5xx, timeout)
	EUNSUPPORTED = "unsupported" // non-document content type
	EINTERNAL    = "internal"    // anything else
)

// Error represents an application error with a machine-readable code and a
// human-readable message.
type Error struct {
	Code    string
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("progcrawl error: code=%s message=%s", e.Code, e.Message)
}

// Errorf constructs an Error with the given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrorCode returns the code of an error, if available.
// Returns EINTERNAL for non-application errors and an empty string for nil.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage returns the message of an error, if available.
// Returns a generic message for non-application errors and an empty string
// for nil.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}
