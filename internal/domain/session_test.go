// internal/domain/session_test.go
package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSessionExpiry(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	session := NewSession("user_abc", "tok123", now)

	assert.Equal(t, now.Add(SessionTTL), session.ExpiresAt)
	assert.False(t, session.Expired(now))
	assert.False(t, session.Expired(now.Add(SessionTTL-time.Second)))
	// Exactly at expiry counts as expired.
	assert.True(t, session.Expired(now.Add(SessionTTL)))
	assert.True(t, session.Expired(now.Add(SessionTTL+time.Second)))
}
