package service

import (
	"fmt"
	"time"
)

// FiscalYear returns the April-to-March fiscal year containing t as
// "YY-YY", e.g. "25-26" for any date from 1 April 2025 to 31 March 2026.
// Both halves wrap at 100, so April 2099 gives "99-00".
func FiscalYear(t time.Time) string {
	year := t.Year()
	start := year - 1
	if t.Month() >= time.April {
		start = year
	}
	return fmt.Sprintf("%02d-%02d", start%100, (start+1)%100)
}
