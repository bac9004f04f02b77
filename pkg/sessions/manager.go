// Package sessions is an abstraction over redis for session tokens.
package sessions

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const expiration = 30 * 24 * time.Hour

type SessionManager struct {
	rdb *redis.Client
}

func NewSessionManager(rdb *redis.Client) *SessionManager {
	return &SessionManager{rdb: rdb}
}

// NewSession stores a session token for a viewer.
func (sm *SessionManager) NewSession(token string, viewer int) error {
	return sm.rdb.Set(context.Background(), sessionKey(token), viewer, expiration).Err()
}

// GetViewerIDForSession returns the viewer a session token belongs to.
func (sm *SessionManager) GetViewerIDForSession(token string) (int, error) {
	return sm.rdb.Get(context.Background(), sessionKey(token)).Int()
}

// CloseSession removes a session token.
func (sm *SessionManager) CloseSession(token string) error {
	return sm.rdb.Del(context.Background(), sessionKey(token)).Err()
}

func sessionKey(token string) string {
	return fmt.Sprintf("sessions/%s", token)
}
