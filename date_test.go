package template

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDateResolveStartExpandsDollarVar(t *testing.T) {
	vars := NewVariablesTable()
	vars.Set("year", "2010")
	d := &Date{startSpec: "6/15/$year"}
	start := d.resolveStart(vars)
	require.Equal(t, 2010, start.Year())
	require.Equal(t, 6, int(start.Month()))
	require.Equal(t, 15, start.Day())
}

func TestDateResolveStartCoercesOutOfRangeMonth(t *testing.T) {
	d := &Date{startSpec: "13/1/2000"}
	start := d.resolveStart(NewVariablesTable())
	require.Equal(t, 1, int(start.Month()))
}

func TestFormatDateLayouts(t *testing.T) {
	base := time.Date(2001, 2, 3, 4, 5, 6, 0, time.UTC)
	require.Equal(t, "2/3/2001", formatDate(layoutMDY, base))
	require.Equal(t, "20010203", formatDate(layoutYMD, base))
	require.Equal(t, "2001-02-03", formatDate(layoutYMDH, base))
	require.Equal(t, "2001-02-03T04:05:06", formatDate(layoutYMDT, base))
	require.Contains(t, formatDate(layoutOAGI, base), "<YEAR>2001</YEAR>")
}
