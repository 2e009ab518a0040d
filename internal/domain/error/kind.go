// Package error defines domain-specific errors for the Cash Book application.
package error

import (
	"errors"
	"strings"
)

// Kind classifies an error independently of the area that raised it.
type Kind string

const (
	// KindValidation marks malformed or out-of-range input.
	KindValidation Kind = "validation"
	// KindNotFound marks a reference to a record that does not exist.
	KindNotFound Kind = "not_found"
	// KindAmbiguousLink marks a payslip whose paired transaction cannot be identified exactly.
	KindAmbiguousLink Kind = "ambiguous_link"
	// KindUnauthorized marks missing or invalid credentials.
	KindUnauthorized Kind = "unauthorized"
	// KindRateLimited marks a caller that exceeded its request budget.
	KindRateLimited Kind = "rate_limited"
	// KindStorageFailure marks persistence or rendering failures.
	KindStorageFailure Kind = "storage_failure"
)

// Coded is implemented by every area error of this package.
type Coded interface {
	error
	ErrorCode() string
	Kind() Kind
}

// KindOf classifies err. Errors that carry no code are treated as storage failures.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var coded Coded
	if errors.As(err, &coded) {
		return coded.Kind()
	}
	return KindStorageFailure
}

// CodeOf returns the error code carried by err, or an empty string.
func CodeOf(err error) string {
	var coded Coded
	if errors.As(err, &coded) {
		return coded.ErrorCode()
	}
	return ""
}

// kindFromCode derives the kind from the category segment of a code.
// Codes look like AREA-XXYYYY where XX is the category.
func kindFromCode(code string) Kind {
	_, rest, found := strings.Cut(code, "-")
	if !found || len(rest) < 2 {
		return KindStorageFailure
	}

	switch rest[:2] {
	case "01":
		return KindValidation
	case "02":
		return KindNotFound
	case "03":
		return KindAmbiguousLink
	case "04":
		return KindUnauthorized
	case "05":
		return KindRateLimited
	default:
		return KindStorageFailure
	}
}
