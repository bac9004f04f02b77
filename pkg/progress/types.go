package progress

// Status describes how far along a viewer is with a catalog item.
type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

// ItemKind describes the kind of catalog item a shelf entry tracks.
type ItemKind string

const (
	ItemBook     ItemKind = "book"
	ItemEpisodic ItemKind = "episodic"
)

// MarkerKind describes which field of a Marker is meaningful.
type MarkerKind string

const (
	MarkerNone    MarkerKind = "none"
	MarkerPage    MarkerKind = "page"
	MarkerPercent MarkerKind = "percent"
	MarkerEpisode MarkerKind = "episode"
)

// Marker is the progress point a post is attached to.
type Marker struct {
	Kind    MarkerKind `json:"kind"`
	Page    int        `json:"page,omitempty"`
	Percent float64    `json:"percent,omitempty"`
	Season  int        `json:"season,omitempty"`
	Episode int        `json:"episode,omitempty"`
}

// Unit is a single episode or chapter of an episodic catalog item.
type Unit struct {
	Season  int `json:"season"`
	Episode int `json:"episode"`
}

// ViewerProgress is a viewer's recorded position in one catalog item.
// Numeric fields are nil when the viewer never recorded them.
type ViewerProgress struct {
	Status  Status   `json:"status"`
	Page    *int     `json:"current_page,omitempty"`
	Percent *float64 `json:"current_percent,omitempty"`
	Season  *int     `json:"current_season,omitempty"`
	Episode *int     `json:"current_episode,omitempty"`
}

// ShelfEntry is one row of a viewer's shelf, joined with the catalog item.
type ShelfEntry struct {
	ItemID     string         `json:"catalog_item_id"`
	Kind       ItemKind       `json:"kind"`
	TotalPages int            `json:"total_pages,omitempty"`
	Progress   ViewerProgress `json:"progress"`
}

// Index maps shelf entries by catalog item id for the spoiler gate.
func Index(entries []*ShelfEntry) map[string]ViewerProgress {
	index := make(map[string]ViewerProgress)
	for _, entry := range entries {
		index[entry.ItemID] = entry.Progress
	}

	return index
}
