package template

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// Date produces a date-time string: a raw integer computed as in Value,
// transformed to a day offset, added to a start date/time, and rendered
// in one of five layouts.
type Date struct {
	Common
	typ       dateLayout
	startSpec string // e.g. "1/1/2000" or "$VAR/1/2000", optionally "... HH:MM:SS"
}

func (d *Date) Generate(ctx *genCtx, contextValue int64, w io.Writer) (int, error) {
	raw := d.rawValue(contextValue)
	offset := d.transform(raw)

	start := d.resolveStart(ctx.vars)
	result := start.AddDate(0, 0, int(offset))

	out := formatDate(d.typ, result)
	if d.save != "" {
		ctx.vars.Set(d.save, out)
	}
	n, err := io.WriteString(w, out)
	if err != nil {
		return n, writeError(d.id, d.name, err)
	}
	return n, nil
}

// resolveStart parses startSpec into a time.Time, expanding any `$VAR`
// field against vars. Start-date parsing accepts MM/DD/YYYY with $VAR
// expansions in any field; invalid months/days are coerced modulo the
// calendar.
func (d *Date) resolveStart(vars *VariablesTable) time.Time {
	datePart := d.startSpec
	timePart := "00:00:00"
	if sp := strings.SplitN(d.startSpec, " ", 2); len(sp) == 2 {
		datePart = sp[0]
		timePart = sp[1]
	}

	fields := strings.Split(datePart, "/")
	month, day, year := int64(1), int64(1), int64(2000)
	if len(fields) >= 1 {
		month = expandDollarInt(vars, fields[0], 1)
	}
	if len(fields) >= 2 {
		day = expandDollarInt(vars, fields[1], 1)
	}
	if len(fields) >= 3 {
		year = expandDollarInt(vars, fields[2], 2000)
	}

	month = ((month-1)%12 + 12) % 12 + 1
	day = ((day-1)%31 + 31) % 31 + 1

	hour, min, sec := int64(0), int64(0), int64(0)
	tfields := strings.Split(timePart, ":")
	if len(tfields) >= 1 {
		hour = expandDollarInt(vars, tfields[0], 0)
	}
	if len(tfields) >= 2 {
		min = expandDollarInt(vars, tfields[1], 0)
	}
	if len(tfields) >= 3 {
		sec = expandDollarInt(vars, tfields[2], 0)
	}

	return time.Date(int(year), time.Month(month), int(day), int(hour), int(min), int(sec), 0, time.UTC)
}

// formatDate renders t according to the requested layout tag.
func formatDate(typ dateLayout, t time.Time) string {
	switch typ {
	case layoutMDY:
		return fmt.Sprintf("%d/%d/%d", t.Month(), t.Day(), t.Year())
	case layoutYMD:
		return fmt.Sprintf("%04d%02d%02d", t.Year(), t.Month(), t.Day())
	case layoutYMDH:
		return fmt.Sprintf("%04d-%02d-%02d", t.Year(), t.Month(), t.Day())
	case layoutYMDT:
		return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02d", t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second())
	case layoutOAGI:
		_, offsetSec := t.Zone()
		centiHours := (offsetSec / 3600) * 100
		return fmt.Sprintf(
			"<YEAR>%04d</YEAR><MONTH>%02d</MONTH><DAY>%02d</DAY><HOUR>%02d</HOUR><MINUTE>%02d</MINUTE><SECOND>%02d</SECOND><SUBSECOND>%04d</SUBSECOND><TIMEZONE>%d</TIMEZONE>",
			t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, centiHours,
		)
	default:
		return fmt.Sprintf("%04d-%02d-%02d", t.Year(), t.Month(), t.Day())
	}
}
