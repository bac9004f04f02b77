package pubsub

type EventType int

const (
	EventTypeNewPost EventType = iota
	EventTypeDeletePost
	EventTypeReactionAdded
	EventTypeReactionRemoved
)

type Event struct {
	Type   EventType              `json:"type"`
	Params map[string]interface{} `json:"params"`
}

func NewPostEvent(post string, author int) Event {
	return Event{
		Type:   EventTypeNewPost,
		Params: map[string]interface{}{"post": post, "author": author},
	}
}

func NewDeletePostEvent(post string) Event {
	return Event{
		Type:   EventTypeDeletePost,
		Params: map[string]interface{}{"post": post},
	}
}

func NewReactionAddedEvent(post string, viewer int, emoji string) Event {
	return Event{
		Type:   EventTypeReactionAdded,
		Params: map[string]interface{}{"post": post, "viewer": viewer, "emoji": emoji},
	}
}

func NewReactionRemovedEvent(post string, viewer int, emoji string) Event {
	return Event{
		Type:   EventTypeReactionRemoved,
		Params: map[string]interface{}{"post": post, "viewer": viewer, "emoji": emoji},
	}
}
