package notifications

import (
	"log"

	"github.com/hushsocial/hush/pkg/devices"
	"github.com/hushsocial/hush/pkg/feed"
	"github.com/hushsocial/hush/pkg/pubsub"
)

type Service struct {
	apns     APNS
	devices  *devices.Backend
	posts    *feed.Backend
	throttle *Throttle
}

func NewService(apns APNS, devices *devices.Backend, posts *feed.Backend, throttle *Throttle) *Service {
	return &Service{
		apns:     apns,
		devices:  devices,
		posts:    posts,
		throttle: throttle,
	}
}

// Run consumes reaction events and notifies post authors.
func (s *Service) Run(events <-chan pubsub.Event) {
	for event := range events {
		if event.Type != pubsub.EventTypeReactionAdded {
			continue
		}

		err := s.HandleReaction(event)
		if err != nil {
			log.Printf("failed to handle reaction event: %v", err)
		}
	}
}

// HandleReaction pushes a notification for one reaction-added event.
func (s *Service) HandleReaction(event pubsub.Event) error {
	post, ok := event.Params["post"].(string)
	if !ok {
		return nil
	}

	viewer, ok := paramInt(event.Params, "viewer")
	if !ok {
		return nil
	}

	emoji, _ := event.Params["emoji"].(string)

	record, err := s.posts.GetPost(post)
	if err != nil {
		return err
	}

	// Reacting to your own post notifies nobody.
	if record.AuthorID == viewer {
		return nil
	}

	if !s.throttle.ShouldNotify(post, record.AuthorID) {
		return nil
	}

	targets, err := s.devices.GetDevicesForViewer(record.AuthorID)
	if err != nil {
		return err
	}

	notification := NewReactionNotification(post, emoji)

	for _, device := range targets {
		err := s.apns.Send(device.Token, notification)
		if err == ErrDeviceUnregistered {
			if err := s.devices.RemoveDevice(device.Token); err != nil {
				log.Printf("failed to remove device: %v", err)
			}
			continue
		}

		if err != nil {
			log.Printf("apns.Send err: %v", err)
		}
	}

	return nil
}

// paramInt reads a numeric pubsub param, which decodes from JSON as a
// float64.
func paramInt(params map[string]interface{}, key string) (int, bool) {
	switch v := params[key].(type) {
	case float64:
		return int(v), true
	case int:
		return v, true
	}

	return 0, false
}
