package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBlacklist_AddAndCheck(t *testing.T) {
	store := &InMemoryBlacklistStore{blacklist: make(map[string]time.Time)}

	blacklisted, err := store.IsBlacklisted("some-token")
	assert.NoError(t, err)
	assert.False(t, blacklisted)

	assert.NoError(t, store.AddToBlacklist("some-token", time.Now().Add(time.Hour)))

	blacklisted, err = store.IsBlacklisted("some-token")
	assert.NoError(t, err)
	assert.True(t, blacklisted)
}

func TestBlacklist_CleanUpExpired(t *testing.T) {
	store := &InMemoryBlacklistStore{blacklist: make(map[string]time.Time)}

	assert.NoError(t, store.AddToBlacklist("expired", time.Now().Add(-time.Minute)))
	assert.NoError(t, store.AddToBlacklist("live", time.Now().Add(time.Hour)))

	store.CleanUpExpired()

	expired, _ := store.IsBlacklisted("expired")
	live, _ := store.IsBlacklisted("live")
	assert.False(t, expired)
	assert.True(t, live)
}
