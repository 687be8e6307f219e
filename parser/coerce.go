package parser

import (
	"errors"
	"reflect"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/rustyeddy/ibflex/flex"
)

// Coercion: raw attribute string -> typed value. Every function here is
// total over its documented grammar and returns a typed error otherwise.

type coercer struct {
	opts Options
}

// absent reports whether raw is one of the vendor's null markers for an
// optional field.
func absent(raw string) bool {
	switch raw {
	case "", "-", "--", "N/A":
		return true
	}
	return false
}

func (c *coercer) decimal(raw string) (decimal.Decimal, error) {
	// IB writes numbers with comma group separators.
	d, err := decimal.NewFromString(strings.ReplaceAll(raw, ",", ""))
	if err != nil {
		return decimal.Decimal{}, &CoercionError{Value: raw, Target: "decimal"}
	}
	return d, nil
}

func (c *coercer) integer(raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &CoercionError{Value: raw, Target: "int"}
	}
	return n, nil
}

// IB sends "Y"/"N" for true/false.
func (c *coercer) boolean(raw string) (bool, error) {
	switch raw {
	case "Y":
		return true, nil
	case "N":
		return false, nil
	}
	return false, &CoercionError{Value: raw, Target: "bool"}
}

var monthAbbrevs = map[string]int{
	"jan": 1, "feb": 2, "mar": 3, "apr": 4, "may": 5, "jun": 6,
	"jul": 7, "aug": 8, "sep": 9, "oct": 10, "nov": 11, "dec": 12,
}

// Accepted date grammars, from the report configuration choices:
// yyyyMMdd, yyyy-MM-dd, MM/dd/yyyy, MM/dd/yy, dd/MM/yyyy, dd/MM/yy,
// dd-MMM-yy. Slashed forms depend on DateMode; the rest are unambiguous.
func (c *coercer) date(raw string) (flex.Date, error) {
	bad := func() error { return &CoercionError{Value: raw, Target: "date"} }

	if n := strings.Count(raw, "/"); n == 2 {
		return c.slashedDate(raw)
	} else if n != 0 {
		return flex.Date{}, bad()
	}

	switch {
	case len(raw) == 8 && digits(raw):
		return checkedDate(atoi(raw[:4]), atoi(raw[4:6]), atoi(raw[6:]), raw)
	case len(raw) == 10 && raw[4] == '-' && raw[7] == '-':
		y, m, d := raw[:4], raw[5:7], raw[8:]
		if !digits(y) || !digits(m) || !digits(d) {
			return flex.Date{}, bad()
		}
		return checkedDate(atoi(y), atoi(m), atoi(d), raw)
	case len(raw) == 9 && strings.Count(raw, "-") == 2:
		if c.opts.DateMode == DateModeISO {
			return flex.Date{}, bad()
		}
		parts := strings.Split(raw, "-")
		m, ok := monthAbbrevs[strings.ToLower(parts[1])]
		if !ok || !digits(parts[0]) || !digits(parts[2]) {
			return flex.Date{}, bad()
		}
		return checkedDate(century(atoi(parts[2])), m, atoi(parts[0]), raw)
	}
	return flex.Date{}, bad()
}

func (c *coercer) slashedDate(raw string) (flex.Date, error) {
	bad := func() error { return &CoercionError{Value: raw, Target: "date"} }
	if c.opts.DateMode == DateModeISO {
		return flex.Date{}, bad()
	}

	parts := strings.Split(raw, "/")
	if len(parts[0]) != 2 || len(parts[1]) != 2 || !digits(parts[0]) || !digits(parts[1]) || !digits(parts[2]) {
		return flex.Date{}, bad()
	}
	var year int
	switch len(parts[2]) {
	case 4:
		year = atoi(parts[2])
	case 2:
		year = century(atoi(parts[2]))
	default:
		return flex.Date{}, bad()
	}

	a, b := atoi(parts[0]), atoi(parts[1])
	monthFirst := validMonthDay(a, b)
	dayFirst := validMonthDay(b, a)

	switch c.opts.DateMode {
	case DateModeUS:
		if !monthFirst {
			return flex.Date{}, bad()
		}
		return flex.NewDate(year, a, b), nil
	case DateModeEuropean:
		if !dayFirst {
			return flex.Date{}, bad()
		}
		return flex.NewDate(year, b, a), nil
	}

	// Auto: accept only when the reading is unambiguous. Silently picking
	// MM/dd over dd/MM corrupts dates downstream, which is worse than
	// failing loudly.
	switch {
	case a == b && monthFirst:
		return flex.NewDate(year, a, b), nil
	case monthFirst && dayFirst:
		return flex.Date{}, &AmbiguousDateError{Value: raw}
	case monthFirst:
		return flex.NewDate(year, a, b), nil
	case dayFirst:
		return flex.NewDate(year, b, a), nil
	}
	return flex.Date{}, bad()
}

// Accepted time grammars: HHmmss, HH:mm:ss.
func (c *coercer) timeOfDay(raw string) (flex.TimeOfDay, error) {
	bad := func() error { return &CoercionError{Value: raw, Target: "time"} }
	var h, m, s string
	switch {
	case len(raw) == 6 && digits(raw):
		h, m, s = raw[:2], raw[2:4], raw[4:]
	case len(raw) == 8 && raw[2] == ':' && raw[5] == ':':
		h, m, s = raw[:2], raw[3:5], raw[6:]
		if !digits(h) || !digits(m) || !digits(s) {
			return flex.TimeOfDay{}, bad()
		}
	default:
		return flex.TimeOfDay{}, bad()
	}
	t := flex.TimeOfDay{Hour: atoi(h), Minute: atoi(m), Second: atoi(s)}
	if t.Hour > 23 || t.Minute > 59 || t.Second > 59 {
		return flex.TimeOfDay{}, bad()
	}
	return t, nil
}

// dateTimeSeparators in detection order; the null separator is handled by
// brute-force splitting since it cannot be detected in-band.
var dateTimeSeparators = []string{";", ",", " ", "T"}

func (c *coercer) dateTime(raw string) (flex.DateTime, error) {
	// Some old data uses ", " instead of ",".
	value := strings.ReplaceAll(raw, ", ", ",")

	candidates := dateTimeSeparators
	if c.opts.Separator != "" {
		candidates = []string{c.opts.Separator}
	}
	var seps []string
	for _, s := range candidates {
		if strings.Contains(value, s) {
			seps = append(seps, s)
		}
	}

	switch len(seps) {
	case 1:
		datestr, timestr, _ := strings.Cut(value, seps[0])
		// Some old combined values carry a trailing zone offset; drop it.
		if i := strings.IndexAny(timestr, "+-"); i >= 0 {
			timestr = timestr[:i]
		}
		return c.mergeDateTime(raw, datestr, timestr)
	case 0:
		// Best case: a bare date with no time part.
		if d, err := c.date(value); err == nil {
			return flex.DateTime{Date: d}, nil
		}
		// Otherwise assume the null separator and brute-force the split
		// point; a valid value splits exactly one way.
		var hits []flex.DateTime
		for _, tlen := range []int{6, 8} {
			if len(value) <= tlen {
				continue
			}
			if dt, err := c.mergeDateTime(raw, value[:len(value)-tlen], value[len(value)-tlen:]); err == nil {
				hits = append(hits, dt)
			}
		}
		if len(hits) != 1 {
			return flex.DateTime{}, &CoercionError{Value: raw, Target: "datetime"}
		}
		return hits[0], nil
	}
	return flex.DateTime{}, &CoercionError{Value: raw, Target: "datetime"}
}

func (c *coercer) mergeDateTime(raw, datestr, timestr string) (flex.DateTime, error) {
	d, err := c.date(datestr)
	if err != nil {
		var amb *AmbiguousDateError
		if errors.As(err, &amb) {
			return flex.DateTime{}, &AmbiguousDateError{Value: raw}
		}
		return flex.DateTime{}, &CoercionError{Value: raw, Target: "datetime"}
	}
	t, err := c.timeOfDay(timestr)
	if err != nil {
		return flex.DateTime{}, &CoercionError{Value: raw, Target: "datetime"}
	}
	return flex.DateTime{Date: d, Time: t}, nil
}

var orderTypeType = reflect.TypeOf(flex.OrderType(""))

// enum resolves raw against the member set of enum type t. Unknown values
// are preserved verbatim; known reports membership so the caller can record
// a diagnostic.
func (c *coercer) enum(raw string, t reflect.Type) (value string, known bool) {
	// Orders aggregating several order types arrive like "LMT;MKT".
	if t == orderTypeType && strings.Contains(raw, ";") {
		raw = string(flex.OrderTypeMultiple)
	}
	raw = flex.CanonicalEnum(t, raw)
	return raw, flex.KnownEnum(t, raw)
}

// codes splits a code-sequence value into tokens. The notes attribute is
// semicolon-delimited and other sequences use commas; very old statements
// instead pack a run of single-character codes with no delimiter. Order and
// duplicates are preserved. An empty value yields nil, same as an absent
// attribute.
func (c *coercer) codes(raw string) []flex.Code {
	toks := splitList(raw)
	if len(toks) == 0 {
		return nil
	}
	if len(toks) == 1 && len(toks[0]) > 1 && !flex.KnownEnum(codeType, toks[0]) && allKnownSingles(toks[0]) {
		out := make([]flex.Code, 0, len(toks[0]))
		for _, r := range toks[0] {
			out = append(out, flex.Code(r))
		}
		return out
	}
	out := make([]flex.Code, 0, len(toks))
	for _, t := range toks {
		out = append(out, flex.Code(t))
	}
	return out
}

func allKnownSingles(run string) bool {
	for _, r := range run {
		if !flex.KnownEnum(codeType, string(r)) {
			return false
		}
	}
	return true
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	sep := ","
	if strings.Contains(raw, ";") {
		sep = ";"
	}
	var out []string
	for _, t := range strings.Split(raw, sep) {
		t = strings.TrimSpace(t)
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}

func digits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// atoi is only called on digit-checked input.
func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

// century expands a 2-digit year with the vendor's pivot: 69-99 are 19xx.
func century(yy int) int {
	if yy > 68 {
		return 1900 + yy
	}
	return 2000 + yy
}

func validMonthDay(m, d int) bool {
	return m >= 1 && m <= 12 && d >= 1 && d <= 31
}

func checkedDate(y, m, d int, raw string) (flex.Date, error) {
	if m < 1 || m > 12 || d < 1 || d > 31 {
		return flex.Date{}, &CoercionError{Value: raw, Target: "date"}
	}
	return flex.NewDate(y, m, d), nil
}

