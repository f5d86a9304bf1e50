package ledger

import (
	"sort"
	"time"

	"github.com/DevrajNITRKL/Billing-Management/internal/dates"
)

// Point is one chart sample: a short date label and the bill's amount.
type Point struct {
	Label  string
	Amount float64
}

// Series projects the ledger onto a date-ordered (label, amount) sequence
// for charting. Every bill becomes its own point; two bills in the same
// month stay separate, there is no bucketing.
//
// Bills with unparseable dates sort as "today" (the Date Normalizer
// fallback), which can place them unexpectedly near the end of the series.
// Documented behavior, kept as-is. Malformed amount text fails the whole
// projection with model.ErrInvalidAmount.
func Series(snap Snapshot) ([]Point, error) {
	type sample struct {
		date   time.Time
		amount float64
	}

	samples := make([]sample, 0, len(snap.Bills))
	for _, b := range snap.Bills {
		amount, err := b.ParsedAmount()
		if err != nil {
			return nil, err
		}
		samples = append(samples, sample{
			date:   dates.Parse(b.Date),
			amount: amount,
		})
	}

	sort.SliceStable(samples, func(i, j int) bool {
		return samples[i].date.Before(samples[j].date)
	})

	points := make([]Point, 0, len(samples))
	for _, s := range samples {
		points = append(points, Point{
			Label:  dates.ChartLabel(s.date),
			Amount: s.amount,
		})
	}
	return points, nil
}
