package coerce

import (
	"math"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToString(t *testing.T) {
	cases := []struct {
		in   any
		want string
	}{
		{123456, "123456"},
		{float64(123456), "123456"},
		{1.5, "1.5"},
		{1e21, "1e+21"},
		{1e-7, "1e-7"},
		{0.000001, "0.000001"},
		{true, "true"},
		{json.Number("42.0"), "42.0"},
		{uint8(7), "7"},
		{time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC), "2020-01-02T03:04:05Z"},
	}
	for _, tc := range cases {
		got, ok := ToString(tc.in)
		require.True(t, ok, "%#v", tc.in)
		assert.Equal(t, tc.want, got)
	}
	_, ok := ToString(nil)
	assert.False(t, ok)
	_, ok = ToString([]int{1})
	assert.False(t, ok)
}

func TestToNumber(t *testing.T) {
	f, ok := ToNumber("20000")
	require.True(t, ok)
	assert.Equal(t, 20000.0, f)

	f, ok = ToNumber("  3.25 ")
	require.True(t, ok)
	assert.Equal(t, 3.25, f)

	f, ok = ToNumber(true)
	require.True(t, ok)
	assert.Equal(t, 1.0, f)

	f, ok = ToNumber("1e400")
	require.True(t, ok)
	assert.True(t, math.IsInf(f, 1))

	for _, in := range []string{"Infinity", "+Infinity", "-Infinity"} {
		f, ok = ToNumber(in)
		require.True(t, ok, in)
		assert.True(t, math.IsInf(f, 0), in)
	}

	for _, bad := range []any{"", "   ", "abc", "NaN", nil, []any{},
		"0x1p4", "0X10", "1_000", "0b1_0", "inf", "+inf", "INFINITY", "infinity", "-inf", "+-Infinity"} {
		_, ok := ToNumber(bad)
		assert.False(t, ok, "%#v", bad)
	}
}

func TestToBool(t *testing.T) {
	b, ok := ToBool("true")
	assert.True(t, ok)
	assert.True(t, b)
	b, ok = ToBool("false")
	assert.True(t, ok)
	assert.False(t, b)
	for _, bad := range []any{"TRUE", "1", "yes", 1, nil} {
		_, ok := ToBool(bad)
		assert.False(t, ok, "%#v", bad)
	}
}

func TestToDate(t *testing.T) {
	d, ok := ToDate("1990-01-01")
	require.True(t, ok)
	assert.Equal(t, time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC), d)

	d, ok = ToDate("2021-03-04T05:06:07+09:00")
	require.True(t, ok)
	assert.Equal(t, int64(1614801967), d.Unix())

	d, ok = ToDate(0)
	require.True(t, ok)
	assert.True(t, d.Equal(time.Unix(0, 0)))

	for _, bad := range []any{"not a date", "1990-13-01", nil, true} {
		_, ok := ToDate(bad)
		assert.False(t, ok, "%#v", bad)
	}
}

func TestToDate_MillisecondRange(t *testing.T) {
	d, ok := ToDate(MaxDateMillis)
	require.True(t, ok)
	assert.Equal(t, 275760, d.Year())

	d, ok = ToDate(-MaxDateMillis)
	require.True(t, ok)
	assert.Equal(t, -271821, d.Year())

	for _, bad := range []any{1e300, -1e300, MaxDateMillis + 1, math.Inf(1), math.NaN()} {
		_, ok := ToDate(bad)
		assert.False(t, ok, "%v", bad)
	}
}
