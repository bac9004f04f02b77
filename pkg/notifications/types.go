package notifications

type NotificationCategory string

const (
	NEW_REACTION NotificationCategory = "NEW_REACTION"
	NEW_POST     NotificationCategory = "NEW_POST"
)

type Alert struct {
	Body      string   `json:"body,omitempty"`
	Key       string   `json:"loc-key"`
	Arguments []string `json:"loc-args"`
}

// PushNotification is JSON encoded and sent to the APNS service.
type PushNotification struct {
	Category   NotificationCategory   `json:"category"`
	Alert      Alert                  `json:"alert"`
	Arguments  map[string]interface{} `json:"arguments"`
	CollapseID string                 `json:"-"`
}

func NewReactionNotification(post, emoji string) *PushNotification {
	return &PushNotification{
		Category: NEW_REACTION,
		Alert: Alert{
			Key:       "new_reaction_notification",
			Arguments: []string{emoji},
		},
		Arguments:  map[string]interface{}{"post": post},
		CollapseID: post,
	}
}
