package parser

import "fmt"

// DiagKind classifies a non-fatal parse event.
type DiagKind string

const (
	// DiagSchemaDrift: an attribute present on the wire but not declared in
	// the schema.
	DiagSchemaDrift DiagKind = "schema-drift"
	// DiagUnmappedElement: an element the schema has no mapping for; its
	// subtree is skipped.
	DiagUnmappedElement DiagKind = "unmapped-element"
	// DiagUnrecognizedCode: an enumerated field value outside the known
	// member set; the raw text is preserved on the record.
	DiagUnrecognizedCode DiagKind = "unrecognized-code"
)

// Diagnostic is one non-fatal event recorded during a parse. Diagnostics are
// reported in encounter order alongside the successful result.
type Diagnostic struct {
	Kind  DiagKind
	Path  string // element path, e.g. "FlexQueryResponse/FlexStatement/Trades/Trade"
	Field string // attribute name, empty for element-level events
	Value string // offending raw value, empty for element-level events
}

func (d Diagnostic) String() string {
	loc := d.Path
	if d.Field != "" {
		loc += "." + d.Field
	}
	if d.Value != "" {
		return fmt.Sprintf("%s: %s %q", loc, d.Kind, d.Value)
	}
	return fmt.Sprintf("%s: %s", loc, d.Kind)
}
