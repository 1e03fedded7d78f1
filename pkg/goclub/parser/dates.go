package parser

import (
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/xuri/excelize/v2"
)

// dayFirstLayouts are tried before the generic parser so that ambiguous
// dates like 3.5.2025 always read as 3 May.
var dayFirstLayouts = []string{
	"2.1.2006",
	"2.1.2006 15:04",
	"2.1.2006 15:04:05",
	"2.1.06",
	"2/1/2006",
	"2/1/2006 15:04",
	"2/1/06",
	"2-1-2006",
	"2006-01-02",
	"2006-01-02 15:04",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

// maxSerial is the Excel serial of 9999-12-31. Larger numbers are read as
// compact textual dates such as 20240103.
const maxSerial = 2958465

// ParseDate interprets a cell value as a calendar day.
// It accepts Excel serial numbers, counted from 1904 when date1904 is set,
// and textual dates in mixed formats, reading ambiguous day/month order as
// day first.
func ParseDate(s string, date1904 bool) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	if serial, err := strconv.ParseFloat(s, 64); err == nil && serial <= maxSerial {
		if serial < 1 {
			return time.Time{}, false
		}
		t, err := excelize.ExcelDateToTime(serial, date1904)
		if err != nil {
			return time.Time{}, false
		}
		return Day(t), true
	}

	for _, layout := range dayFirstLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Day(t), true
		}
	}

	t, err := dateparse.ParseIn(s, time.UTC, dateparse.PreferMonthFirst(false))
	if err != nil {
		return time.Time{}, false
	}
	return Day(t), true
}

// Day drops the time of day, keeping the calendar date in UTC.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
