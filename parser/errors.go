package parser

import "fmt"

// MalformedError reports input that is not a well-formed Flex document:
// broken XML, a root element other than FlexQueryResponse, or a
// FlexStatements count that disagrees with its contents.
type MalformedError struct {
	Reason string
	Err    error
}

func (e *MalformedError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed flex document: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("malformed flex document: %s", e.Reason)
}

func (e *MalformedError) Unwrap() error { return e.Err }

// RequiredFieldError reports a schema-mandatory attribute missing from a
// matched element. It indicates an unsupported document variant, so the
// whole parse fails.
type RequiredFieldError struct {
	Record string
	Field  string
	Path   string
}

func (e *RequiredFieldError) Error() string {
	return fmt.Sprintf("%s: %s.%s: required attribute missing", e.Path, e.Record, e.Field)
}

// AmbiguousDateError reports a slashed date whose month-first and day-first
// readings are both plausible under the active date mode. Select an explicit
// DateMode to resolve it.
type AmbiguousDateError struct {
	Value string
	Path  string
	Field string
}

func (e *AmbiguousDateError) Error() string {
	return fmt.Sprintf("%s: ambiguous date %q: both month-first and day-first readings are valid; set an explicit DateMode", e.loc(), e.Value)
}

func (e *AmbiguousDateError) loc() string {
	if e.Field == "" {
		return e.Path
	}
	return e.Path + "." + e.Field
}

// CoercionError reports a value that does not match its field's grammar.
type CoercionError struct {
	Value  string
	Target string
	Path   string
	Field  string
	Err    error
}

func (e *CoercionError) Error() string {
	loc := e.Path
	if e.Field != "" {
		loc += "." + e.Field
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: cannot convert %q to %s: %v", loc, e.Value, e.Target, e.Err)
	}
	return fmt.Sprintf("%s: cannot convert %q to %s", loc, e.Value, e.Target)
}

func (e *CoercionError) Unwrap() error { return e.Err }

// StrictModeError is a diagnostic promoted to a fatal error by
// Options.Strict.
type StrictModeError struct {
	Diag Diagnostic
}

func (e *StrictModeError) Error() string {
	return "strict mode: " + e.Diag.String()
}
