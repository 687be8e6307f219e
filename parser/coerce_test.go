package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rustyeddy/ibflex/flex"
)

func newCoercer(opts Options) *coercer {
	return &coercer{opts: opts}
}

func TestDecimal(t *testing.T) {
	t.Parallel()

	c := newCoercer(Options{})

	d, err := c.decimal("4.61")
	assert.NoError(t, err)
	assert.Equal(t, "4.61", d.String())

	d, err = c.decimal("1,234,567.89")
	assert.NoError(t, err)
	assert.Equal(t, "1234567.89", d.String())

	d, err = c.decimal("-0.0001")
	assert.NoError(t, err)
	assert.Equal(t, "-0.0001", d.String())

	_, err = c.decimal("12x.4")
	var ce *CoercionError
	assert.ErrorAs(t, err, &ce)
	assert.Equal(t, "12x.4", ce.Value)
}

func TestBoolean(t *testing.T) {
	t.Parallel()

	c := newCoercer(Options{})

	v, err := c.boolean("Y")
	assert.NoError(t, err)
	assert.True(t, v)

	v, err = c.boolean("N")
	assert.NoError(t, err)
	assert.False(t, v)

	_, err = c.boolean("true")
	var ce *CoercionError
	assert.ErrorAs(t, err, &ce)
}

func TestDateUnambiguousFormats(t *testing.T) {
	t.Parallel()

	c := newCoercer(Options{})
	want := flex.NewDate(2017, 6, 5)

	for _, raw := range []string{"20170605", "2017-06-05", "05-Jun-17"} {
		d, err := c.date(raw)
		assert.NoError(t, err, raw)
		assert.Equal(t, want, d, raw)
	}
}

func TestDateCenturyPivot(t *testing.T) {
	t.Parallel()

	c := newCoercer(Options{})

	d, err := c.date("31-Dec-68")
	assert.NoError(t, err)
	assert.Equal(t, 2068, d.Year)

	d, err = c.date("01-Jan-69")
	assert.NoError(t, err)
	assert.Equal(t, 1969, d.Year)
}

func TestDateRejectsNonsense(t *testing.T) {
	t.Parallel()

	c := newCoercer(Options{})
	for _, raw := range []string{"20171305", "20170632", "2017/06/05", "Jun 5 2017", "2017-6-5"} {
		_, err := c.date(raw)
		assert.Error(t, err, raw)
	}
}

func TestSlashedDateAuto(t *testing.T) {
	t.Parallel()

	c := newCoercer(Options{})

	// Both readings valid: refuse to guess.
	_, err := c.date("05/06/2017")
	var amb *AmbiguousDateError
	assert.ErrorAs(t, err, &amb)
	assert.Equal(t, "05/06/2017", amb.Value)

	// Only day-first is valid.
	d, err := c.date("25/06/2017")
	assert.NoError(t, err)
	assert.Equal(t, flex.NewDate(2017, 6, 25), d)

	// Only month-first is valid.
	d, err = c.date("06/25/2017")
	assert.NoError(t, err)
	assert.Equal(t, flex.NewDate(2017, 6, 25), d)

	// Same number both ways: no ambiguity.
	d, err = c.date("06/06/17")
	assert.NoError(t, err)
	assert.Equal(t, flex.NewDate(2017, 6, 6), d)

	// Neither reading is valid.
	_, err = c.date("13/32/2017")
	assert.Error(t, err)
	assert.NotErrorAs(t, err, &amb)
}

func TestSlashedDateExplicitModes(t *testing.T) {
	t.Parallel()

	us := newCoercer(Options{DateMode: DateModeUS})
	eu := newCoercer(Options{DateMode: DateModeEuropean})

	d, err := us.date("05/06/2017")
	assert.NoError(t, err)
	assert.Equal(t, flex.NewDate(2017, 5, 6), d)

	d, err = eu.date("05/06/2017")
	assert.NoError(t, err)
	assert.Equal(t, flex.NewDate(2017, 6, 5), d)

	// Day-first value under month-first mode.
	_, err = us.date("25/06/2017")
	assert.Error(t, err)

	// Two-digit years.
	d, err = us.date("05/06/17")
	assert.NoError(t, err)
	assert.Equal(t, flex.NewDate(2017, 5, 6), d)
}

func TestDateModeISO(t *testing.T) {
	t.Parallel()

	c := newCoercer(Options{DateMode: DateModeISO})

	d, err := c.date("2017-06-05")
	assert.NoError(t, err)
	assert.Equal(t, flex.NewDate(2017, 6, 5), d)

	for _, raw := range []string{"05/06/2017", "06/25/2017", "05-Jun-17"} {
		_, err := c.date(raw)
		assert.Error(t, err, raw)
	}
}

func TestTimeOfDay(t *testing.T) {
	t.Parallel()

	c := newCoercer(Options{})
	want := flex.TimeOfDay{Hour: 9, Minute: 30, Second: 21}

	tod, err := c.timeOfDay("093021")
	assert.NoError(t, err)
	assert.Equal(t, want, tod)

	tod, err = c.timeOfDay("09:30:21")
	assert.NoError(t, err)
	assert.Equal(t, want, tod)

	for _, raw := range []string{"250000", "096021", "09:30", "9:30:21", "09-30-21"} {
		_, err := c.timeOfDay(raw)
		assert.Error(t, err, raw)
	}
}

func TestDateTimeSeparators(t *testing.T) {
	t.Parallel()

	c := newCoercer(Options{})
	want := flex.DateTime{
		Date: flex.NewDate(2017, 6, 5),
		Time: flex.TimeOfDay{Hour: 9, Minute: 30, Second: 21},
	}

	for _, raw := range []string{
		"20170605;093021",
		"20170605,093021",
		"20170605 093021",
		"2017-06-05T09:30:21",
		"20170605, 093021",
	} {
		dt, err := c.dateTime(raw)
		assert.NoError(t, err, raw)
		assert.Equal(t, want, dt, raw)
	}
}

func TestDateTimeNullSeparator(t *testing.T) {
	t.Parallel()

	c := newCoercer(Options{})

	dt, err := c.dateTime("20170605093021")
	assert.NoError(t, err)
	assert.Equal(t, flex.NewDate(2017, 6, 5), dt.Date)
	assert.Equal(t, flex.TimeOfDay{Hour: 9, Minute: 30, Second: 21}, dt.Time)

	dt, err = c.dateTime("2017-06-0509:30:21")
	assert.NoError(t, err)
	assert.Equal(t, flex.NewDate(2017, 6, 5), dt.Date)
}

func TestDateTimeBareDate(t *testing.T) {
	t.Parallel()

	c := newCoercer(Options{})

	dt, err := c.dateTime("20170605")
	assert.NoError(t, err)
	assert.Equal(t, flex.DateTime{Date: flex.NewDate(2017, 6, 5)}, dt)
}

func TestDateTimeTrailingOffset(t *testing.T) {
	t.Parallel()

	c := newCoercer(Options{})

	dt, err := c.dateTime("20170605;093021+0100")
	assert.NoError(t, err)
	assert.Equal(t, flex.TimeOfDay{Hour: 9, Minute: 30, Second: 21}, dt.Time)
}

func TestDateTimeConfiguredSeparator(t *testing.T) {
	t.Parallel()

	c := newCoercer(Options{Separator: ";"})

	dt, err := c.dateTime("20170605;093021")
	assert.NoError(t, err)
	assert.Equal(t, flex.NewDate(2017, 6, 5), dt.Date)

	// The configured separator is the only one tried, so a comma-separated
	// value falls through to the null-separator path and fails.
	_, err = c.dateTime("20170605,093021")
	assert.Error(t, err)
}

func TestDateTimeAmbiguousDatePart(t *testing.T) {
	t.Parallel()

	c := newCoercer(Options{})

	_, err := c.dateTime("05/06/2017;093021")
	var amb *AmbiguousDateError
	assert.ErrorAs(t, err, &amb)
	assert.Equal(t, "05/06/2017;093021", amb.Value)
}

func TestEnumOrderTypeAggregate(t *testing.T) {
	t.Parallel()

	c := newCoercer(Options{})

	v, known := c.enum("LMT;MKT", orderTypeType)
	assert.Equal(t, string(flex.OrderTypeMultiple), v)
	assert.True(t, known)

	v, known = c.enum("LMT", orderTypeType)
	assert.Equal(t, "LMT", v)
	assert.True(t, known)
}

func TestCodesDelimited(t *testing.T) {
	t.Parallel()

	c := newCoercer(Options{})

	assert.Equal(t, []flex.Code{"A", "P"}, c.codes("A;P"))
	assert.Equal(t, []flex.Code{"O", "P"}, c.codes("O,P"))
	assert.Equal(t, []flex.Code{"O", "P", "O"}, c.codes("O;P;O"))
	assert.Nil(t, c.codes(""))
}

func TestCodesSingleCharRun(t *testing.T) {
	t.Parallel()

	c := newCoercer(Options{})

	// Legacy packing: a run of known one-letter codes with no delimiter.
	assert.Equal(t, []flex.Code{"O", "P"}, c.codes("OP"))

	// A recognized multi-letter code is never split.
	assert.Equal(t, []flex.Code{"Ca"}, c.codes("Ca"))

	// An unrecognized token with unknown letters stays whole.
	assert.Equal(t, []flex.Code{"QZ"}, c.codes("QZ"))
}
