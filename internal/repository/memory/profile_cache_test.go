package memory

import (
	"testing"
	"time"

	"ai-journal-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestProfileCache(t *testing.T) {
	c := NewProfileCache(time.Minute)
	userId := uuid.New()

	_, found := c.Get(userId)
	assert.False(t, found)

	profile := &entity.UserProfile{UserId: userId, Preferences: map[string]interface{}{"tone": "warm"}}
	c.Save(userId, profile)

	got, found := c.Get(userId)
	assert.True(t, found)
	assert.Equal(t, profile, got)

	// a cached miss is still a hit
	other := uuid.New()
	c.Save(other, nil)
	got, found = c.Get(other)
	assert.True(t, found)
	assert.Nil(t, got)

	c.Delete(userId)
	_, found = c.Get(userId)
	assert.False(t, found)
}

func TestProfileCacheExpiry(t *testing.T) {
	c := NewProfileCache(20 * time.Millisecond)
	userId := uuid.New()
	c.Save(userId, &entity.UserProfile{UserId: userId})

	time.Sleep(40 * time.Millisecond)
	_, found := c.Get(userId)
	assert.False(t, found)
}
