package tracking

import (
	"fmt"

	"github.com/hushsocial/hush/pkg/pubsub"
)

// Event represents an event for tracking
type Event struct {
	ID         string
	Name       string
	Properties map[string]interface{}
}

// Tracker is a interface for tracking Events
type Tracker interface {

	// Track tracks an event, returns an error if failed.
	Track(event *Event) error
}

const (
	NewPost         = "new_post"
	ReactionAdded   = "reaction_added"
	ReactionRemoved = "reaction_removed"
)

// FromPubsub converts a pubsub event into a trackable event. The second
// return is false for event types that are not tracked.
func FromPubsub(event pubsub.Event) (*Event, bool) {
	switch event.Type {
	case pubsub.EventTypeNewPost:
		return &Event{
			ID:         fmt.Sprintf("%v", event.Params["author"]),
			Name:       NewPost,
			Properties: map[string]interface{}{"post": event.Params["post"]},
		}, true
	case pubsub.EventTypeReactionAdded:
		return &Event{
			ID:         fmt.Sprintf("%v", event.Params["viewer"]),
			Name:       ReactionAdded,
			Properties: map[string]interface{}{"post": event.Params["post"], "emoji": event.Params["emoji"]},
		}, true
	case pubsub.EventTypeReactionRemoved:
		return &Event{
			ID:         fmt.Sprintf("%v", event.Params["viewer"]),
			Name:       ReactionRemoved,
			Properties: map[string]interface{}{"post": event.Params["post"], "emoji": event.Params["emoji"]},
		}, true
	}

	return nil, false
}
