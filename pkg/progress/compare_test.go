package progress_test

import (
	"testing"

	"github.com/hushsocial/hush/pkg/progress"
)

func intp(v int) *int           { return &v }
func floatp(v float64) *float64 { return &v }

func TestCompare(t *testing.T) {
	var tests = []struct {
		name     string
		marker   progress.Marker
		viewer   progress.ViewerProgress
		expected progress.Verdict
	}{
		{
			"none marker is always reached",
			progress.Marker{Kind: progress.MarkerNone},
			progress.ViewerProgress{Status: progress.StatusInProgress},
			progress.Reached,
		},
		{
			"completed dominates missing fields",
			progress.Marker{Kind: progress.MarkerEpisode, Season: 4, Episode: 8},
			progress.ViewerProgress{Status: progress.StatusCompleted},
			progress.Reached,
		},
		{
			"completed dominates stale numerics",
			progress.Marker{Kind: progress.MarkerPage, Page: 500},
			progress.ViewerProgress{Status: progress.StatusCompleted, Page: intp(3)},
			progress.Reached,
		},
		{
			"page one before the marker",
			progress.Marker{Kind: progress.MarkerPage, Page: 120},
			progress.ViewerProgress{Status: progress.StatusInProgress, Page: intp(119)},
			progress.NotReached,
		},
		{
			"page exactly at the marker",
			progress.Marker{Kind: progress.MarkerPage, Page: 120},
			progress.ViewerProgress{Status: progress.StatusInProgress, Page: intp(120)},
			progress.Reached,
		},
		{
			"page missing fails closed",
			progress.Marker{Kind: progress.MarkerPage, Page: 1},
			progress.ViewerProgress{Status: progress.StatusInProgress},
			progress.NotReached,
		},
		{
			"percent below the marker",
			progress.Marker{Kind: progress.MarkerPercent, Percent: 50},
			progress.ViewerProgress{Status: progress.StatusInProgress, Percent: floatp(49.9)},
			progress.NotReached,
		},
		{
			"percent at the marker",
			progress.Marker{Kind: progress.MarkerPercent, Percent: 50},
			progress.ViewerProgress{Status: progress.StatusInProgress, Percent: floatp(50)},
			progress.Reached,
		},
		{
			"percent missing fails closed",
			progress.Marker{Kind: progress.MarkerPercent, Percent: 0},
			progress.ViewerProgress{Status: progress.StatusInProgress},
			progress.NotReached,
		},
		{
			"earlier season with a later episode number",
			progress.Marker{Kind: progress.MarkerEpisode, Season: 2, Episode: 1},
			progress.ViewerProgress{Status: progress.StatusInProgress, Season: intp(1), Episode: intp(20)},
			progress.NotReached,
		},
		{
			"exactly at the episode marker",
			progress.Marker{Kind: progress.MarkerEpisode, Season: 2, Episode: 1},
			progress.ViewerProgress{Status: progress.StatusInProgress, Season: intp(2), Episode: intp(1)},
			progress.Reached,
		},
		{
			"later season beats any episode number",
			progress.Marker{Kind: progress.MarkerEpisode, Season: 2, Episode: 10},
			progress.ViewerProgress{Status: progress.StatusInProgress, Season: intp(3), Episode: intp(1)},
			progress.Reached,
		},
		{
			"episode fields missing fails closed",
			progress.Marker{Kind: progress.MarkerEpisode, Season: 1, Episode: 1},
			progress.ViewerProgress{Status: progress.StatusInProgress, Season: intp(1)},
			progress.NotReached,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := progress.Compare(tt.marker, tt.viewer)
			if result != tt.expected {
				t.Fatalf("expected %s does not match actual %s", tt.expected, result)
			}
		})
	}
}

// Advancing a viewer's position must never flip a reached verdict back.
func TestCompare_Monotonic(t *testing.T) {
	marker := progress.Marker{Kind: progress.MarkerEpisode, Season: 3, Episode: 5}

	reached := false
	for season := 1; season <= 5; season++ {
		for episode := 1; episode <= 10; episode++ {
			viewer := progress.ViewerProgress{
				Status:  progress.StatusInProgress,
				Season:  intp(season),
				Episode: intp(episode),
			}

			result := progress.Compare(marker, viewer)
			if reached && result != progress.Reached {
				t.Fatalf("verdict flipped back at S%dE%d", season, episode)
			}

			if result == progress.Reached {
				reached = true
			}
		}
	}

	if !reached {
		t.Fatal("marker was never reached")
	}
}
