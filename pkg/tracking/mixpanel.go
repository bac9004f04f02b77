package tracking

import (
	"github.com/dukex/mixpanel"
)

type MixpanelTracker struct {
	client mixpanel.Mixpanel
}

func NewMixpanelTracker(client mixpanel.Mixpanel) *MixpanelTracker {
	return &MixpanelTracker{client: client}
}

func (m *MixpanelTracker) Track(event *Event) error {
	return m.client.Track(event.ID, event.Name, &mixpanel.Event{IP: "0", Properties: event.Properties})
}
