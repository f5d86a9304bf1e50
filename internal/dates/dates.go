// Package dates normalizes the MM-DD-YYYY date text carried on bills.
package dates

import (
	"time"

	"github.com/DevrajNITRKL/Billing-Management/internal/common"
)

// Layout is the only accepted bill date format (MM-DD-YYYY).
const Layout = "01-02-2006"

// nowFunc is swapped in tests to pin the fallback date.
var nowFunc = time.Now

// Parse interprets text strictly as MM-DD-YYYY.
//
// Parsing is total: malformed input (wrong shape, impossible calendar date,
// non-numeric fields) never fails the caller. It logs a diagnostic and
// returns the current date, so a single bad bill cannot break sorting or
// charting for the rest. Availability over correctness, on purpose.
func Parse(text string) time.Time {
	t, err := time.Parse(Layout, text)
	if err != nil {
		common.LogWarn("unparseable bill date, falling back to today", common.Fields{
			"date":  text,
			"error": err,
		})
		return nowFunc()
	}
	return t
}

// ChartLabel renders a date as an abbreviated month plus zero-padded day,
// e.g. "Jan 05". A zero time renders as the literal "Invalid Date" rather
// than failing.
func ChartLabel(t time.Time) string {
	if t.IsZero() {
		return "Invalid Date"
	}
	return t.Format("Jan 02")
}
