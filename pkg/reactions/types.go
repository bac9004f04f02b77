package reactions

// DefaultEmoji is the reaction behind the feed's plain like toggle.
// Group posts additionally allow per-emoji reactions.
const DefaultEmoji = "❤️"

// State is the process-local reaction cache for one post and one viewer.
// It is hydrated once per feed load and mutated only through a Session.
type State struct {
	ViewerHasReacted bool `json:"viewer_has_reacted"`
	ReactionCount    int  `json:"reaction_count"`
}

// Summary is the aggregate count of one emoji on a post.
type Summary struct {
	Emoji string `json:"emoji"`
	Count int    `json:"count"`
}

// Writer issues reaction writes against the store.
type Writer interface {
	Upsert(post string, viewer int, emoji string) error
	Delete(post string, viewer int, emoji string) error
}
