// Package parser converts Interactive Brokers Flex XML into the typed,
// immutable object graph defined in package flex.
//
// Parsing one document is a single synchronous pass: either a complete graph
// is returned, or a typed error identifying the first fatal condition. Drift
// relative to the declared schema (new attributes, new sections, new code
// values) is tolerated and reported through the returned diagnostics.
package parser

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"

	"github.com/rustyeddy/ibflex/flex"
)

// Parse reads one Flex document with default options.
func Parse(r io.Reader) (*flex.FlexQueryResponse, []Diagnostic, error) {
	return ParseWithOptions(r, Options{})
}

// ParseBytes parses an in-memory document, e.g. the output of
// client.Download.
func ParseBytes(data []byte, opts Options) (*flex.FlexQueryResponse, []Diagnostic, error) {
	return ParseWithOptions(bytes.NewReader(data), opts)
}

// ParseWithOptions reads one Flex document. On success the returned graph is
// complete and the diagnostics list all non-fatal events in encounter order;
// on error no partial result is returned.
func ParseWithOptions(r io.Reader, opts Options) (*flex.FlexQueryResponse, []Diagnostic, error) {
	root, err := decodeTree(r)
	if err != nil {
		return nil, nil, err
	}
	a := &assembler{
		reg:     schema(),
		coercer: coercer{opts: opts},
	}
	resp, err := a.assemble(root)
	if err != nil {
		return nil, nil, err
	}
	return resp, a.diags, nil
}

// element is one node of the generic parse tree: tag, attributes, ordered
// children. Flex data elements carry no significant text content.
type element struct {
	tag      string
	attrs    []xml.Attr
	children []*element
}

func decodeTree(r io.Reader) (*element, error) {
	dec := xml.NewDecoder(r)
	var root *element
	var stack []*element
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &MalformedError{Reason: "invalid XML", Err: err}
		}
		switch t := tok.(type) {
		case xml.StartElement:
			el := &element{tag: t.Name.Local, attrs: t.Attr}
			if len(stack) == 0 {
				if root != nil {
					return nil, &MalformedError{Reason: "multiple root elements"}
				}
				root = el
			} else {
				parent := stack[len(stack)-1]
				parent.children = append(parent.children, el)
			}
			stack = append(stack, el)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		}
	}
	if root == nil {
		return nil, &MalformedError{Reason: "empty document"}
	}
	if len(stack) != 0 {
		return nil, &MalformedError{Reason: "unclosed element"}
	}
	return root, nil
}

type assembler struct {
	reg *registry
	coercer
	diags []Diagnostic
}

// report records a non-fatal event, or promotes it under strict
// configuration.
func (a *assembler) report(d Diagnostic) error {
	if a.opts.Strict {
		return &StrictModeError{Diag: d}
	}
	a.diags = append(a.diags, d)
	return nil
}

func (a *assembler) assemble(root *element) (*flex.FlexQueryResponse, error) {
	const path = "FlexQueryResponse"
	if root.tag != path {
		return nil, &MalformedError{Reason: fmt.Sprintf("root element is <%s>, not <FlexQueryResponse>", root.tag)}
	}

	resp := &flex.FlexQueryResponse{}
	rv := reflect.ValueOf(resp).Elem()
	if err := a.fillAttrs(rv, a.reg.response, root, path); err != nil {
		return nil, err
	}

	for _, child := range root.children {
		if child.tag != "FlexStatements" {
			if err := a.report(Diagnostic{Kind: DiagUnmappedElement, Path: path + "/" + child.tag}); err != nil {
				return nil, err
			}
			continue
		}
		stmts, err := a.assembleStatements(child, path+"/FlexStatements")
		if err != nil {
			return nil, err
		}
		resp.FlexStatements = append(resp.FlexStatements, stmts...)
	}
	if resp.FlexStatements == nil {
		resp.FlexStatements = []flex.FlexStatement{}
	}
	return resp, nil
}

// assembleStatements checks the count attribute against the contained
// statements, then assembles each in document order.
func (a *assembler) assembleStatements(el *element, path string) ([]flex.FlexStatement, error) {
	countAttr := ""
	for _, attr := range el.attrs {
		if attr.Name.Local == "count" {
			countAttr = attr.Value
		}
	}
	count, err := strconv.Atoi(countAttr)
	if err != nil {
		return nil, &MalformedError{Reason: fmt.Sprintf("FlexStatements count=%q is not a number", countAttr)}
	}
	if count != len(el.children) {
		return nil, &MalformedError{
			Reason: fmt.Sprintf("FlexStatements count=%d but %d statements present", count, len(el.children)),
		}
	}

	stmts := make([]flex.FlexStatement, 0, count)
	for _, child := range el.children {
		if child.tag != "FlexStatement" {
			if err := a.report(Diagnostic{Kind: DiagUnmappedElement, Path: path + "/" + child.tag}); err != nil {
				return nil, err
			}
			continue
		}
		st, err := a.assembleStatement(child, path+"/FlexStatement")
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, st)
	}
	return stmts, nil
}

func (a *assembler) assembleStatement(el *element, path string) (flex.FlexStatement, error) {
	var st flex.FlexStatement
	rv := reflect.ValueOf(&st).Elem()
	if err := a.fillAttrs(rv, a.reg.statement, el, path); err != nil {
		return st, err
	}

	// Absent sections are empty slices, never nil: "not present in the
	// document" must not look like "not yet parsed".
	for _, sec := range a.reg.sections {
		if sec.single {
			continue
		}
		for _, tgt := range sec.targets {
			f := rv.Field(tgt.field)
			if f.IsNil() {
				f.Set(reflect.MakeSlice(f.Type(), 0, 0))
			}
		}
	}

	for _, child := range el.children {
		sec, ok := a.reg.sections[child.tag]
		if !ok {
			if err := a.report(Diagnostic{Kind: DiagUnmappedElement, Path: path + "/" + child.tag}); err != nil {
				return st, err
			}
			continue
		}
		if sec.single {
			recPtr := reflect.New(sec.record.typ)
			if err := a.fillRecord(recPtr.Elem(), sec.record, child, path+"/"+child.tag); err != nil {
				return st, err
			}
			rv.Field(sec.field).Set(recPtr)
			continue
		}
		if err := a.fillSection(rv, sec, child, path+"/"+child.tag); err != nil {
			return st, err
		}
	}
	return st, nil
}

// fillSection appends one record per contained element, in document order.
// Containers holding a mix of record types route each element by tag to its
// own statement field.
func (a *assembler) fillSection(stmt reflect.Value, sec *sectionSpec, el *element, path string) error {
	children := el.children
	if sec.wrapper != "" {
		// FxPositions nests lots inside per-currency wrappers; flatten them.
		// The wrapper itself has no declared attributes, so anything it
		// carries is drift.
		children = children[:0:0]
		for _, w := range el.children {
			if w.tag != sec.wrapper {
				if err := a.report(Diagnostic{Kind: DiagUnmappedElement, Path: path + "/" + w.tag}); err != nil {
					return err
				}
				continue
			}
			for _, attr := range w.attrs {
				if err := a.report(Diagnostic{Kind: DiagSchemaDrift, Path: path + "/" + w.tag, Field: attr.Name.Local, Value: attr.Value}); err != nil {
					return err
				}
			}
			children = append(children, w.children...)
		}
	}

	for _, rec := range children {
		tgt, ok := sec.targets[rec.tag]
		if !ok {
			if err := a.report(Diagnostic{Kind: DiagUnmappedElement, Path: path + "/" + rec.tag}); err != nil {
				return err
			}
			continue
		}
		rv := reflect.New(tgt.record.typ).Elem()
		if err := a.fillRecord(rv, tgt.record, rec, path+"/"+rec.tag); err != nil {
			return err
		}
		slice := stmt.Field(tgt.field)
		slice.Set(reflect.Append(slice, rv))
	}
	return nil
}

func (a *assembler) fillRecord(rv reflect.Value, spec *recordSpec, el *element, path string) error {
	if err := a.fillAttrs(rv, spec, el, path); err != nil {
		return err
	}
	// Data elements are flat; nested children mean a document shape the
	// schema doesn't describe.
	for _, child := range el.children {
		if err := a.report(Diagnostic{Kind: DiagUnmappedElement, Path: path + "/" + child.tag}); err != nil {
			return err
		}
	}
	return nil
}

func (a *assembler) fillAttrs(rv reflect.Value, spec *recordSpec, el *element, path string) error {
	var seen map[string]bool
	if len(spec.required) > 0 {
		seen = make(map[string]bool, len(spec.required))
	}

	for _, attr := range el.attrs {
		name := attr.Name.Local
		fs, ok := spec.fields[name]
		if !ok {
			if err := a.report(Diagnostic{Kind: DiagSchemaDrift, Path: path, Field: name, Value: attr.Value}); err != nil {
				return err
			}
			if a.opts.Permissive && spec.extras >= 0 {
				ef := rv.Field(spec.extras)
				if ef.IsNil() {
					ef.Set(reflect.MakeMap(extrasType))
				}
				ef.SetMapIndex(reflect.ValueOf(name), reflect.ValueOf(attr.Value))
			}
			continue
		}

		raw := attr.Value
		if a.opts.TrimSpace {
			raw = strings.TrimSpace(raw)
		}
		set, err := a.setField(rv, fs, raw, path)
		if err != nil {
			return locate(err, path, name)
		}
		if set && fs.required {
			seen[name] = true
		}
	}

	for _, fs := range spec.required {
		if !seen[fs.attr] {
			return &RequiredFieldError{Record: spec.name, Field: fs.attr, Path: path}
		}
	}
	return nil
}

// setField coerces raw and stores it; it reports whether a value was
// actually set (absent markers leave the field at its zero value).
func (a *assembler) setField(rv reflect.Value, fs *fieldSpec, raw string, path string) (bool, error) {
	if fs.currency && !flex.ValidCurrency(raw) {
		return false, &CoercionError{Value: raw, Target: "currency"}
	}

	f := rv.Field(fs.index)
	switch fs.kind {
	case kindString:
		if absent(raw) {
			return false, nil
		}
		f.SetString(raw)
		return true, nil

	case kindEnum:
		if raw == "" {
			return false, nil
		}
		value, knownMember := a.enum(raw, fs.enumType)
		f.SetString(value)
		if !knownMember {
			if err := a.report(Diagnostic{Kind: DiagUnrecognizedCode, Path: path, Field: fs.attr, Value: raw}); err != nil {
				return false, err
			}
		}
		return true, nil

	case kindCodeList:
		codes := a.codes(raw)
		for _, code := range codes {
			if !code.Known() {
				if err := a.report(Diagnostic{Kind: DiagUnrecognizedCode, Path: path, Field: fs.attr, Value: string(code)}); err != nil {
					return false, err
				}
			}
		}
		if codes != nil {
			f.Set(reflect.ValueOf(codes))
		}
		return len(codes) > 0, nil

	case kindStringList:
		toks := splitList(raw)
		if toks != nil {
			f.Set(reflect.ValueOf(toks))
		}
		return len(toks) > 0, nil
	}

	// Scalar kinds share the absent markers; dates additionally use "MULTI"
	// on aggregate rows.
	if absent(raw) {
		return false, nil
	}
	if raw == "MULTI" && (fs.kind == kindDate || fs.kind == kindDateTime) {
		return false, nil
	}

	var v any
	var err error
	switch fs.kind {
	case kindInt:
		v, err = a.integer(raw)
	case kindBool:
		v, err = a.boolean(raw)
	case kindDecimal:
		v, err = a.decimal(raw)
	case kindDate:
		v, err = a.date(raw)
	case kindTime:
		v, err = a.timeOfDay(raw)
	case kindDateTime:
		v, err = a.dateTime(raw)
	default:
		return false, &CoercionError{Value: raw, Target: fs.kind.String()}
	}
	if err != nil {
		return false, err
	}

	if fs.pointer {
		p := reflect.New(f.Type().Elem())
		p.Elem().Set(reflect.ValueOf(v))
		f.Set(p)
	} else {
		f.Set(reflect.ValueOf(v))
	}
	return true, nil
}

// locate stamps the element path and attribute name onto a typed coercion
// error raised below the assembler.
func locate(err error, path, field string) error {
	var ce *CoercionError
	if errors.As(err, &ce) {
		ce.Path = path
		ce.Field = field
		return ce
	}
	var amb *AmbiguousDateError
	if errors.As(err, &amb) {
		amb.Path = path
		amb.Field = field
		return amb
	}
	return err
}
