package feed

import (
	"github.com/hushsocial/hush/pkg/progress"
)

// HiddenBody replaces the content of a gated post. Author, timestamp
// and reactions stay visible, only the content is redacted.
const HiddenBody = "Spoiler hidden until you catch up"

// FilterVisibility applies the spoiler gate to a feed. Posts about an
// item the viewer does not shelve are dropped entirely: without a
// progress basis there is no point at which they could ever be shown.
// Input order is preserved and the input posts are never mutated.
func FilterVisibility(posts []*Post, progressByItem map[string]progress.ViewerProgress) []*Post {
	result := make([]*Post, 0, len(posts))

	for _, post := range posts {
		out := *post

		if post.CatalogItemID == "" {
			result = append(result, &out)
			continue
		}

		viewer, ok := progressByItem[post.CatalogItemID]
		if !ok {
			continue
		}

		if progress.Compare(post.Marker, viewer) == progress.NotReached {
			out.IsHidden = true
			out.Body = HiddenBody
		}

		result = append(result, &out)
	}

	return result
}
