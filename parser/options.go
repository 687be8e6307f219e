package parser

import "fmt"

// DateMode selects how slashed dates are interpreted. Reports configured
// with the ISO yyyy-MM-dd format never need it; it exists for legacy
// documents where MM/dd and dd/MM cannot be told apart in-band.
type DateMode int

const (
	// DateModeAuto accepts a slashed date only when exactly one of the
	// month-first/day-first readings is structurally valid. A value that is
	// valid both ways fails with AmbiguousDateError rather than being
	// guessed.
	DateModeAuto DateMode = iota
	// DateModeISO accepts only the unambiguous formats (yyyy-MM-dd,
	// yyyyMMdd).
	DateModeISO
	// DateModeUS reads slashed dates month-first (MM/dd/yyyy, MM/dd/yy),
	// the historical vendor default.
	DateModeUS
	// DateModeEuropean reads slashed dates day-first (dd/MM/yyyy, dd/MM/yy).
	DateModeEuropean
)

func (m DateMode) String() string {
	switch m {
	case DateModeAuto:
		return "auto"
	case DateModeISO:
		return "iso"
	case DateModeUS:
		return "us"
	case DateModeEuropean:
		return "european"
	}
	return fmt.Sprintf("DateMode(%d)", int(m))
}

// Options control a single parse. The zero value is the default
// configuration: auto date mode, auto-detected date/time separator,
// non-strict, drift values discarded.
type Options struct {
	// DateMode interprets slashed legacy dates; see the constants.
	DateMode DateMode

	// Separator between the date and time parts of combined values. Empty
	// auto-detects among ";", ",", " " and "T". The semicolon is the
	// recommended report setting.
	Separator string

	// Strict promotes schema drift, unmapped elements and unrecognized
	// codes from diagnostics to fatal errors.
	Strict bool

	// Permissive retains undeclared attributes on the record's Extras map
	// instead of discarding them. Drift is still reported as a diagnostic.
	Permissive bool

	// TrimSpace strips leading/trailing whitespace padding from attribute
	// values before coercion.
	TrimSpace bool
}
