package coordinator

import (
	"fmt"
	"strings"

	"suited/pkg/types"
)

// configValidationError aggregates every problem found while validating a
// suite config. Registration is all-or-nothing, so one error carries all of
// them.
type configValidationError struct {
	suite    string
	problems []string
}

func (e configValidationError) Error() string {
	return fmt.Sprintf("suite %q failed validation: %s", e.suite, strings.Join(e.problems, "; "))
}

// ErrConfigValidation constructs a validation error for a suite config.
func ErrConfigValidation(suite string, problems []string) error {
	return configValidationError{suite: suite, problems: problems}
}

// IsConfigValidation reports whether err is a suite config validation failure.
func IsConfigValidation(err error) bool {
	_, ok := err.(configValidationError)
	return ok
}

// ValidationProblems returns the individual problems behind a validation
// error, or nil when err is not one.
func ValidationProblems(err error) []string {
	if e, ok := err.(configValidationError); ok {
		return e.problems
	}
	return nil
}

// insufficientMemoryError signals that a load cannot be satisfied even after
// eviction, or that cache capacity cannot be reclaimed.
type insufficientMemoryError struct {
	suite     string
	required  uint64
	available uint64
	reason    string
}

func (e insufficientMemoryError) Error() string {
	if e.reason != "" {
		return fmt.Sprintf("insufficient memory for suite %q: %s", e.suite, e.reason)
	}
	return fmt.Sprintf("insufficient memory for suite %q: need %d bytes, %d available after eviction", e.suite, e.required, e.available)
}

// ErrInsufficientMemory constructs a budget shortfall error.
func ErrInsufficientMemory(suite string, required, available uint64) error {
	return insufficientMemoryError{suite: suite, required: required, available: available}
}

// ErrCapacityExhausted constructs a cache-capacity shortfall error; it is
// classified as insufficient memory for callers.
func ErrCapacityExhausted(suite string) error {
	return insufficientMemoryError{suite: suite, reason: "cache capacity exhausted and no suite is evictable"}
}

// IsInsufficientMemory reports whether err indicates a budget or capacity
// shortfall.
func IsInsufficientMemory(err error) bool {
	_, ok := err.(insufficientMemoryError)
	return ok
}

// componentLoadError wraps the failing component and its underlying cause.
type componentLoadError struct {
	component string
	cause     error
}

func (e componentLoadError) Error() string {
	return fmt.Sprintf("component %q failed to load: %v", e.component, e.cause)
}

func (e componentLoadError) Unwrap() error { return e.cause }

// ErrComponentLoad constructs a component load failure.
func ErrComponentLoad(component string, cause error) error {
	return componentLoadError{component: component, cause: cause}
}

// IsComponentLoad reports whether err is a component load failure.
func IsComponentLoad(err error) bool {
	_, ok := err.(componentLoadError)
	return ok
}

// FailedComponent returns the component name behind a load failure, or "".
func FailedComponent(err error) string {
	if e, ok := err.(componentLoadError); ok {
		return e.component
	}
	return ""
}

// suiteIntegrityError signals the post-load required-role check failed.
type suiteIntegrityError struct {
	suite   string
	missing []types.Role
}

func (e suiteIntegrityError) Error() string {
	parts := make([]string, len(e.missing))
	for i, r := range e.missing {
		parts[i] = string(r)
	}
	return fmt.Sprintf("suite %q failed integrity validation: roles not loaded: %s", e.suite, strings.Join(parts, ", "))
}

// ErrSuiteIntegrity constructs an integrity validation failure.
func ErrSuiteIntegrity(suite string, missing []types.Role) error {
	return suiteIntegrityError{suite: suite, missing: missing}
}

// IsSuiteIntegrity reports whether err is an integrity validation failure.
func IsSuiteIntegrity(err error) bool {
	_, ok := err.(suiteIntegrityError)
	return ok
}

// suiteNotFoundError signals an unregistered suite name.
type suiteNotFoundError struct{ name string }

func (e suiteNotFoundError) Error() string { return "suite not found: " + e.name }

// ErrSuiteNotFound constructs a not-found error for a suite name.
func ErrSuiteNotFound(name string) error { return suiteNotFoundError{name: name} }

// IsSuiteNotFound reports whether err indicates an unknown suite.
func IsSuiteNotFound(err error) bool {
	_, ok := err.(suiteNotFoundError)
	return ok
}

// suiteBusyError signals a load already in flight for the same suite.
type suiteBusyError struct{ name string }

func (e suiteBusyError) Error() string { return "suite busy: load in progress: " + e.name }

// ErrSuiteBusy constructs a busy error for a suite name.
func ErrSuiteBusy(name string) error { return suiteBusyError{name: name} }

// IsSuiteBusy reports whether err indicates a concurrent load in progress.
func IsSuiteBusy(err error) bool {
	_, ok := err.(suiteBusyError)
	return ok
}
