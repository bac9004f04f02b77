package progress

import (
	"fmt"
	"math"
)

// Summary is the normalized completion state shown on a shelf. The same
// values feed the spoiler gate, both sides must share one rounding rule.
type Summary struct {
	Percent int    `json:"percent"`
	Display string `json:"display"`
}

// Summarize derives a completion percentage and display string for a
// shelf entry. An explicit recorded percent is authoritative over pages
// and episodes whenever both are present.
func Summarize(entry *ShelfEntry, units []Unit) Summary {
	p := entry.Progress

	if p.Status == StatusCompleted {
		return Summary{Percent: 100, Display: "Completed"}
	}

	if p.Percent != nil {
		pct := roundPercent(*p.Percent)
		return Summary{Percent: pct, Display: fmt.Sprintf("%d%%", pct)}
	}

	switch entry.Kind {
	case ItemBook:
		if p.Page != nil {
			if entry.TotalPages > 0 {
				pct := roundPercent(float64(*p.Page) / float64(entry.TotalPages) * 100)
				return Summary{Percent: pct, Display: fmt.Sprintf("Page %d/%d", *p.Page, entry.TotalPages)}
			}

			return Summary{Percent: 0, Display: fmt.Sprintf("Page %d/?", *p.Page)}
		}
	case ItemEpisodic:
		if p.Season != nil && p.Episode != nil {
			display := fmt.Sprintf("S%dE%d", *p.Season, *p.Episode)

			if len(units) == 0 {
				return Summary{Percent: 0, Display: display}
			}

			count := 0
			for _, unit := range units {
				if unit.Season < *p.Season || (unit.Season == *p.Season && unit.Episode <= *p.Episode) {
					count++
				}
			}

			pct := roundPercent(float64(count) / float64(len(units)) * 100)
			return Summary{Percent: pct, Display: display}
		}
	}

	return Summary{Percent: 0, Display: "Not started"}
}

// ClampPercent bounds a raw percent into [0, 100]. Applied once at the
// store boundary so shelf display and gate decisions always agree.
func ClampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}

	if v > 100 {
		return 100
	}

	return v
}

func roundPercent(v float64) int {
	return int(math.Round(ClampPercent(v)))
}
