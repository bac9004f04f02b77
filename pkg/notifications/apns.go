package notifications

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sideshow/apns2"
)

// APNS sends a push notification to a device token.
type APNS interface {
	Send(target string, notification *PushNotification) error
}

type client struct {
	topic string

	client *apns2.Client

	// apple limits concurrent pushes per connection.
	maxConcurrentPushes chan struct{}
}

func NewAPNS(topic string, c *apns2.Client) APNS {
	return &client{
		topic:               topic,
		client:              c,
		maxConcurrentPushes: make(chan struct{}, 100),
	}
}

func (a *client) Send(target string, notification *PushNotification) error {
	data, err := json.Marshal(map[string]interface{}{"aps": notification})
	if err != nil {
		return err
	}

	payload := &apns2.Notification{
		DeviceToken: target,
		Topic:       a.topic,
		Payload:     data,
		CollapseID:  notification.CollapseID,
	}

	a.maxConcurrentPushes <- struct{}{}
	resp, err := a.client.Push(payload)
	<-a.maxConcurrentPushes
	if err != nil {
		return err
	}

	if resp.StatusCode >= http.StatusInternalServerError {
		return ErrRetryRequired
	}

	if resp.Reason == apns2.ReasonUnregistered {
		return ErrDeviceUnregistered
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("failed to send code: %d reason: %s", resp.StatusCode, resp.Reason)
	}

	return nil
}
