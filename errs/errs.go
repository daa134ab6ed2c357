// Package errs defines the error taxonomy shared by the event, metadata and
// propbag packages.
//
// Both kinds describe programming mistakes (a nil listener, an empty or
// misspelled property name) rather than runtime conditions. They are raised
// synchronously at the offending call and never retried.
package errs

import "errors"

// invalidArgumentError signals a contract violation by the caller: an empty
// property name, a nil listener or handler.
type invalidArgumentError struct {
	param  string
	reason string
}

func (e invalidArgumentError) Error() string {
	return "invalid argument " + e.param + ": " + e.reason
}

// InvalidArgument constructs an error for a bad argument named param.
func InvalidArgument(param, reason string) error {
	return invalidArgumentError{param: param, reason: reason}
}

// IsInvalidArgument reports whether err (or anything it wraps) is an
// invalid-argument error.
func IsInvalidArgument(err error) bool {
	var e invalidArgumentError
	return errors.As(err, &e)
}

// unknownPropertyError signals a property name that does not resolve in the
// metadata table when metadata-dependent behavior was requested.
type unknownPropertyError struct{ name string }

func (e unknownPropertyError) Error() string { return "unknown property: " + e.name }

// UnknownProperty constructs an error for a name missing from the metadata table.
func UnknownProperty(name string) error { return unknownPropertyError{name: name} }

// IsUnknownProperty reports whether err (or anything it wraps) indicates an
// unresolvable property name.
func IsUnknownProperty(err error) bool {
	var e unknownPropertyError
	return errors.As(err, &e)
}

// PropertyName extracts the offending name from an unknown-property error.
func PropertyName(err error) (string, bool) {
	var e unknownPropertyError
	if errors.As(err, &e) {
		return e.name, true
	}
	return "", false
}
