package parser

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/rustyeddy/ibflex/flex"
)

// The schema registry is compiled once, process-wide, from the `flex` struct
// tags. It is read-only after construction, so concurrent parses share it
// without locking.

type kind int

const (
	kindString kind = iota
	kindInt
	kindBool
	kindDecimal
	kindDate
	kindTime
	kindDateTime
	kindEnum
	kindCodeList
	kindStringList
)

func (k kind) String() string {
	switch k {
	case kindString:
		return "string"
	case kindInt:
		return "int"
	case kindBool:
		return "bool"
	case kindDecimal:
		return "decimal"
	case kindDate:
		return "date"
	case kindTime:
		return "time"
	case kindDateTime:
		return "datetime"
	case kindEnum:
		return "enum"
	case kindCodeList:
		return "code list"
	case kindStringList:
		return "string list"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

type fieldSpec struct {
	attr     string
	index    int
	kind     kind
	enumType reflect.Type // kindEnum only
	pointer  bool
	required bool
	currency bool // validate value against the currency table
}

type recordSpec struct {
	name     string // XML element tag; equals the Go type name
	typ      reflect.Type
	fields   map[string]*fieldSpec
	required []*fieldSpec
	extras   int // index of the Extras field, -1 if absent
}

// sectionTarget binds one record element tag inside a container to its
// destination slice on FlexStatement.
type sectionTarget struct {
	field  int
	record *recordSpec
}

type sectionSpec struct {
	tag     string                    // container element tag
	targets map[string]*sectionTarget // record element tag -> destination
	single  bool                      // pointer field holding one data element
	field   int                       // single only
	record  *recordSpec               // single only
	wrapper string                    // intermediate wrapper tag to flatten, e.g. "FxLots"
}

type registry struct {
	response  *recordSpec
	statement *recordSpec
	records   map[string]*recordSpec
	sections  map[string]*sectionSpec
}

var (
	schemaOnce sync.Once
	schemaReg  *registry
)

func schema() *registry {
	schemaOnce.Do(func() { schemaReg = buildRegistry() })
	return schemaReg
}

var (
	decimalType = reflect.TypeOf(decimal.Decimal{})
	dateType    = reflect.TypeOf(flex.Date{})
	timeType    = reflect.TypeOf(flex.TimeOfDay{})
	dtType      = reflect.TypeOf(flex.DateTime{})
	codeType    = reflect.TypeOf(flex.Code(""))
	extrasType  = reflect.TypeOf(flex.Extras(nil))
)

func buildRegistry() *registry {
	reg := &registry{
		records:  map[string]*recordSpec{},
		sections: map[string]*sectionSpec{},
	}

	reg.response = compileRecord(reflect.TypeOf(flex.FlexQueryResponse{}))
	reg.statement = compileRecord(reflect.TypeOf(flex.FlexStatement{}))

	st := reflect.TypeOf(flex.FlexStatement{})
	for i := 0; i < st.NumField(); i++ {
		f := st.Field(i)
		tag, opts := splitTag(f.Tag.Get("flex"))
		if tag == "" || tag == "-" {
			continue
		}

		switch {
		case f.Type.Kind() == reflect.Slice && f.Type.Elem().Kind() == reflect.Struct:
			rec := record(reg, f.Type.Elem())
			wrapper := ""
			for _, o := range opts {
				if w, ok := strings.CutPrefix(o, "wrap="); ok {
					wrapper = w
				}
			}
			// A "|"-separated tag binds the record type under several
			// containers; containers accumulate one target per record tag.
			for _, name := range strings.Split(tag, "|") {
				sec, ok := reg.sections[name]
				if !ok {
					sec = &sectionSpec{tag: name, targets: map[string]*sectionTarget{}}
					reg.sections[name] = sec
				}
				sec.targets[rec.name] = &sectionTarget{field: i, record: rec}
				if wrapper != "" {
					sec.wrapper = wrapper
				}
			}
		case f.Type.Kind() == reflect.Pointer && f.Type.Elem().Kind() == reflect.Struct:
			reg.sections[tag] = &sectionSpec{tag: tag, field: i, record: record(reg, f.Type.Elem()), single: true}
		}
	}
	return reg
}

func record(reg *registry, t reflect.Type) *recordSpec {
	if spec, ok := reg.records[t.Name()]; ok {
		return spec
	}
	spec := compileRecord(t)
	reg.records[t.Name()] = spec
	return spec
}

func compileRecord(t reflect.Type) *recordSpec {
	spec := &recordSpec{
		name:   t.Name(),
		typ:    t,
		fields: map[string]*fieldSpec{},
		extras: -1,
	}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Type == extrasType {
			spec.extras = i
			continue
		}
		tag, opts := splitTag(f.Tag.Get("flex"))
		if tag == "" || tag == "-" {
			continue
		}
		k, enumType, ok := fieldKind(f.Type)
		if !ok {
			continue // section field on FlexStatement/FlexQueryResponse
		}
		fs := &fieldSpec{
			attr:     tag,
			index:    i,
			kind:     k,
			enumType: enumType,
			pointer:  f.Type.Kind() == reflect.Pointer,
			currency: strings.Contains(strings.ToLower(tag), "currency"),
		}
		for _, o := range opts {
			if o == "required" {
				fs.required = true
			}
		}
		spec.fields[tag] = fs
		if fs.required {
			spec.required = append(spec.required, fs)
		}
	}
	return spec
}

func fieldKind(t reflect.Type) (kind, reflect.Type, bool) {
	base := t
	if t.Kind() == reflect.Pointer {
		base = t.Elem()
	}
	switch base {
	case decimalType:
		return kindDecimal, nil, true
	case dateType:
		return kindDate, nil, true
	case timeType:
		return kindTime, nil, true
	case dtType:
		return kindDateTime, nil, true
	}
	switch base.Kind() {
	case reflect.Int:
		return kindInt, nil, true
	case reflect.Bool:
		return kindBool, nil, true
	case reflect.String:
		if flex.IsEnum(base) {
			return kindEnum, base, true
		}
		return kindString, nil, true
	case reflect.Slice:
		switch base.Elem() {
		case codeType:
			return kindCodeList, nil, true
		case reflect.TypeOf(""):
			return kindStringList, nil, true
		}
	}
	return 0, nil, false
}

func splitTag(tag string) (name string, opts []string) {
	parts := strings.Split(tag, ",")
	if len(parts) == 0 {
		return "", nil
	}
	return parts[0], parts[1:]
}
