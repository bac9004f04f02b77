package progress_test

import (
	"testing"

	"github.com/hushsocial/hush/pkg/progress"
)

func TestSummarize(t *testing.T) {
	units := []progress.Unit{
		{Season: 1, Episode: 1},
		{Season: 1, Episode: 2},
		{Season: 1, Episode: 3},
		{Season: 2, Episode: 1},
		{Season: 2, Episode: 2},
	}

	var tests = []struct {
		name    string
		entry   *progress.ShelfEntry
		units   []progress.Unit
		percent int
		display string
	}{
		{
			"book with explicit percent",
			&progress.ShelfEntry{
				Kind:     progress.ItemBook,
				Progress: progress.ViewerProgress{Status: progress.StatusInProgress, Percent: floatp(42.4)},
			},
			nil,
			42,
			"42%",
		},
		{
			"explicit percent beats page",
			&progress.ShelfEntry{
				Kind:       progress.ItemBook,
				TotalPages: 100,
				Progress:   progress.ViewerProgress{Status: progress.StatusInProgress, Percent: floatp(80), Page: intp(10)},
			},
			nil,
			80,
			"80%",
		},
		{
			"book page with known total",
			&progress.ShelfEntry{
				Kind:       progress.ItemBook,
				TotalPages: 320,
				Progress:   progress.ViewerProgress{Status: progress.StatusInProgress, Page: intp(119)},
			},
			nil,
			37,
			"Page 119/320",
		},
		{
			"book page with unknown total",
			&progress.ShelfEntry{
				Kind:     progress.ItemBook,
				Progress: progress.ViewerProgress{Status: progress.StatusInProgress, Page: intp(119)},
			},
			nil,
			0,
			"Page 119/?",
		},
		{
			"episodic from unit checklist",
			&progress.ShelfEntry{
				Kind:     progress.ItemEpisodic,
				Progress: progress.ViewerProgress{Status: progress.StatusInProgress, Season: intp(1), Episode: intp(3)},
			},
			units,
			60,
			"S1E3",
		},
		{
			"episodic later season counts earlier units",
			&progress.ShelfEntry{
				Kind:     progress.ItemEpisodic,
				Progress: progress.ViewerProgress{Status: progress.StatusInProgress, Season: intp(2), Episode: intp(1)},
			},
			units,
			80,
			"S2E1",
		},
		{
			"episodic without units",
			&progress.ShelfEntry{
				Kind:     progress.ItemEpisodic,
				Progress: progress.ViewerProgress{Status: progress.StatusInProgress, Season: intp(1), Episode: intp(2)},
			},
			nil,
			0,
			"S1E2",
		},
		{
			"completed overrides everything",
			&progress.ShelfEntry{
				Kind:     progress.ItemBook,
				Progress: progress.ViewerProgress{Status: progress.StatusCompleted, Percent: floatp(12)},
			},
			nil,
			100,
			"Completed",
		},
		{
			"no data at all",
			&progress.ShelfEntry{
				Kind:     progress.ItemBook,
				Progress: progress.ViewerProgress{Status: progress.StatusInProgress},
			},
			nil,
			0,
			"Not started",
		},
		{
			"out of range percent is clamped",
			&progress.ShelfEntry{
				Kind:     progress.ItemBook,
				Progress: progress.ViewerProgress{Status: progress.StatusInProgress, Percent: floatp(250)},
			},
			nil,
			100,
			"100%",
		},
		{
			"negative page stays in range",
			&progress.ShelfEntry{
				Kind:       progress.ItemBook,
				TotalPages: 100,
				Progress:   progress.ViewerProgress{Status: progress.StatusInProgress, Page: intp(-5)},
			},
			nil,
			0,
			"Page -5/100",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := progress.Summarize(tt.entry, tt.units)

			if result.Percent != tt.percent {
				t.Fatalf("expected percent %d does not match actual %d", tt.percent, result.Percent)
			}

			if result.Display != tt.display {
				t.Fatalf("expected display %q does not match actual %q", tt.display, result.Display)
			}

			if result.Percent < 0 || result.Percent > 100 {
				t.Fatalf("percent %d out of range", result.Percent)
			}
		})
	}
}
