package memory

import (
	"time"

	"ai-journal-be/internal/entity"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// ProfileCache keeps recently read user profiles so that a burst of notes from
// one user costs a single profile query. A cached nil means "no profile".
type ProfileCache struct {
	cache *cache.Cache
}

func NewProfileCache(ttl time.Duration) *ProfileCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &ProfileCache{
		cache: cache.New(ttl, 2*ttl),
	}
}

func (r *ProfileCache) Save(userId uuid.UUID, profile *entity.UserProfile) {
	r.cache.Set(userId.String(), profile, cache.DefaultExpiration)
}

func (r *ProfileCache) Get(userId uuid.UUID) (*entity.UserProfile, bool) {
	if x, found := r.cache.Get(userId.String()); found {
		return x.(*entity.UserProfile), true
	}
	return nil, false
}

func (r *ProfileCache) Delete(userId uuid.UUID) {
	r.cache.Delete(userId.String())
}
