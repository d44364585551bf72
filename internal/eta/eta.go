package eta

import (
	"time"

	"shiptrack/internal/domain"
)

const dateLayout = "2006-01-02"

// LeadTimes maps a destination name to its transit time in whole days.
type LeadTimes map[string]int

// DefaultLeadTimes returns the standard per-destination transit table.
func DefaultLeadTimes() LeadTimes {
	return LeadTimes{
		"Miri":          1,
		"Bintulu":       2,
		"Kuching":       7,
		"Sibu":          4,
		"Kota Kinabalu": 7,
		"Sandakan":      14,
		"Brunei":        5,
		"Labuan":        5,
		"Self Collect":  1,
	}
}

// Calculator derives ETA dates from ETD plus a fixed lead-time table.
// It holds its own copy of the table, so a Calculator is immutable and
// safe for concurrent use.
type Calculator struct {
	leadTimes LeadTimes
}

func NewCalculator(table LeadTimes) Calculator {
	own := make(LeadTimes, len(table))
	for dest, days := range table {
		own[dest] = days
	}
	return Calculator{leadTimes: own}
}

// Compute returns etd plus the destination's lead time, formatted
// YYYY-MM-DD. A destination missing from the table contributes zero days,
// so the ETA equals the ETD; that is a deliberate fallback, not an error.
// An unparseable etd yields a FormatError.
func (c Calculator) Compute(etd, destination string) (string, error) {
	t, err := time.Parse(dateLayout, etd)
	if err != nil {
		return "", domain.FormatError{Field: "etd", Value: etd, Err: err}
	}
	return t.AddDate(0, 0, c.leadTimes[destination]).Format(dateLayout), nil
}
