package progress

// Verdict is the result of comparing a viewer's progress against a marker.
type Verdict string

const (
	Reached    Verdict = "reached"
	NotReached Verdict = "not_reached"
)

// Compare reports whether a viewer is at or beyond a post's marker.
// Missing viewer data always maps to NotReached, never an error, so a
// stale shelf row can hide a post but can never leak one.
func Compare(marker Marker, viewer ViewerProgress) Verdict {
	if marker.Kind == MarkerNone {
		return Reached
	}

	// A completed item is past every marker, numeric fields may be stale.
	if viewer.Status == StatusCompleted {
		return Reached
	}

	switch marker.Kind {
	case MarkerPage:
		if viewer.Page != nil && *viewer.Page >= marker.Page {
			return Reached
		}
	case MarkerPercent:
		if viewer.Percent != nil && *viewer.Percent >= marker.Percent {
			return Reached
		}
	case MarkerEpisode:
		if viewer.Season == nil || viewer.Episode == nil {
			return NotReached
		}

		// Season is compared first, episode only breaks ties within it.
		if *viewer.Season > marker.Season {
			return Reached
		}

		if *viewer.Season == marker.Season && *viewer.Episode >= marker.Episode {
			return Reached
		}
	}

	return NotReached
}
