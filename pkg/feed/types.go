package feed

import (
	"github.com/hushsocial/hush/pkg/progress"
)

// Post is one feed entry. CatalogItemID is empty for posts that are not
// about a catalog item, those are never gated.
type Post struct {
	ID            string          `json:"id"`
	CatalogItemID string          `json:"catalog_item_id,omitempty"`
	Marker        progress.Marker `json:"marker"`
	Body          string          `json:"body"`
	AuthorID      int             `json:"author_id"`
	GroupID       *int            `json:"group_id,omitempty"`
	CreatedAt     int64           `json:"created_at"`
	IsHidden      bool            `json:"is_hidden"`
}
