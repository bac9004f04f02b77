package notifications

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const throttleWindow = 10 * time.Minute

// Throttle rate limits pushes so a burst of reactions on one post does
// not become a burst of notifications.
type Throttle struct {
	rdb *redis.Client
}

func NewThrottle(rdb *redis.Client) *Throttle {
	return &Throttle{rdb: rdb}
}

// ShouldNotify reports whether a notification for a post may be sent to
// a viewer, and opens the throttle window when it is.
func (t *Throttle) ShouldNotify(post string, viewer int) bool {
	ok, err := t.rdb.SetNX(context.Background(), throttleKey(post, viewer), 1, throttleWindow).Result()
	if err != nil {
		return false
	}

	return ok
}

func throttleKey(post string, viewer int) string {
	return fmt.Sprintf("notifications/throttle/%s/%d", post, viewer)
}
