package flex

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "2017-06-05", NewDate(2017, 6, 5).String())
	assert.Equal(t, "0001-01-02", NewDate(1, 1, 2).String())
}

func TestDateComparable(t *testing.T) {
	t.Parallel()

	assert.True(t, NewDate(2017, 6, 5) == NewDate(2017, 6, 5))
	assert.True(t, NewDate(2017, 6, 4).Before(NewDate(2017, 6, 5)))
	assert.True(t, NewDate(2016, 12, 31).Before(NewDate(2017, 1, 1)))
	assert.False(t, NewDate(2017, 6, 5).Before(NewDate(2017, 6, 5)))
}

func TestDateIn(t *testing.T) {
	t.Parallel()

	got := NewDate(2017, 6, 5).In(time.UTC)
	assert.Equal(t, time.Date(2017, 6, 5, 0, 0, 0, 0, time.UTC), got)
}

func TestDateTimeString(t *testing.T) {
	t.Parallel()

	dt := DateTime{
		Date: NewDate(2017, 6, 5),
		Time: TimeOfDay{Hour: 9, Minute: 30, Second: 21},
	}
	assert.Equal(t, "2017-06-05T09:30:21", dt.String())

	got := dt.In(time.UTC)
	assert.Equal(t, time.Date(2017, 6, 5, 9, 30, 21, 0, time.UTC), got)
}

func TestValidCurrency(t *testing.T) {
	t.Parallel()

	assert.True(t, ValidCurrency("USD"))
	assert.True(t, ValidCurrency("CNH"))
	assert.True(t, ValidCurrency("BASE_SUMMARY"))
	assert.True(t, ValidCurrency(""))
	assert.False(t, ValidCurrency("FOO"))
	assert.False(t, ValidCurrency("usd"))
}
