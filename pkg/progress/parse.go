package progress

import "database/sql"

// ParseMarker maps a loosely validated store row onto a strict Marker.
// Rows missing the fields their kind requires become MarkerNone.
func ParseMarker(kind string, page, season, episode sql.NullInt64, percent sql.NullFloat64) Marker {
	switch MarkerKind(kind) {
	case MarkerPage:
		if page.Valid {
			return Marker{Kind: MarkerPage, Page: int(page.Int64)}
		}
	case MarkerPercent:
		if percent.Valid {
			return Marker{Kind: MarkerPercent, Percent: ClampPercent(percent.Float64)}
		}
	case MarkerEpisode:
		if season.Valid && episode.Valid {
			return Marker{Kind: MarkerEpisode, Season: int(season.Int64), Episode: int(episode.Int64)}
		}
	}

	return Marker{Kind: MarkerNone}
}

// ParseViewerProgress maps a shelf row onto a strict ViewerProgress.
// Unknown statuses fall back to in_progress, absent numerics stay nil.
func ParseViewerProgress(status string, page, season, episode sql.NullInt64, percent sql.NullFloat64) ViewerProgress {
	progress := ViewerProgress{Status: StatusInProgress}

	if Status(status) == StatusCompleted {
		progress.Status = StatusCompleted
	}

	if page.Valid {
		v := int(page.Int64)
		progress.Page = &v
	}

	if percent.Valid {
		v := ClampPercent(percent.Float64)
		progress.Percent = &v
	}

	if season.Valid {
		v := int(season.Int64)
		progress.Season = &v
	}

	if episode.Valid {
		v := int(episode.Int64)
		progress.Episode = &v
	}

	return progress
}
