package header

import "fmt"

// MalformedHeaderError indicates that the raw header text carried none of the
// structural markers of a supported acquisition software, so no key/value
// pairs could be recovered at all. Individual unparseable lines never raise
// this error; they are skipped during tokenization.
type MalformedHeaderError struct {
	// Vendor is the software family the text was attributed to before
	// tokenization failed.
	Vendor Vendor

	// Reason describes the missing structural marker.
	Reason string
}

func (e *MalformedHeaderError) Error() string {
	return fmt.Sprintf("malformed %s header: %s", e.Vendor, e.Reason)
}

// UnknownVendorError indicates that the input could not be attributed to any
// supported acquisition software family.
type UnknownVendorError struct {
	// Reason describes what was looked for and not found.
	Reason string
}

func (e *UnknownVendorError) Error() string {
	return fmt.Sprintf("unknown vendor: %s", e.Reason)
}

// MissingFieldError indicates that a derived computation required a parameter
// which is absent from the parsed header. Derived values are never fabricated
// from defaults.
type MissingFieldError struct {
	// Name is the canonical name of the absent parameter.
	Name string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("required parameter %q is missing from the header", e.Name)
}

// UnknownParameterError indicates that a caller queried a parameter name that
// was never present in the parsed header.
type UnknownParameterError struct {
	// Name is the queried parameter name.
	Name string
}

func (e *UnknownParameterError) Error() string {
	return fmt.Sprintf("no parameter %q in the parsed header", e.Name)
}
