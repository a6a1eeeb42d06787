package lock

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalGuard(t *testing.T) {
	g := NewLocalGuard()
	ctx := context.Background()

	ok, err := g.Acquire(ctx, "enrich:1", 50*time.Millisecond)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = g.Acquire(ctx, "enrich:1", 50*time.Millisecond)
	require.NoError(t, err)
	assert.False(t, ok, "second claim inside ttl must fail")

	ok, _ = g.Acquire(ctx, "enrich:2", 50*time.Millisecond)
	assert.True(t, ok, "other keys are independent")

	time.Sleep(80 * time.Millisecond)
	ok, _ = g.Acquire(ctx, "enrich:1", 50*time.Millisecond)
	assert.True(t, ok, "claim is free again after expiry")
}

type failingGuard struct{}

func (failingGuard) Acquire(context.Context, string, time.Duration) (bool, error) {
	return false, errors.New("connection refused")
}

func (failingGuard) Release(context.Context, string) error {
	return errors.New("connection refused")
}

func TestLocalGuardRelease(t *testing.T) {
	g := NewLocalGuard()
	ctx := context.Background()

	ok, _ := g.Acquire(ctx, "enrich:1", time.Minute)
	require.True(t, ok)
	require.NoError(t, g.Release(ctx, "enrich:1"))

	ok, err := g.Acquire(ctx, "enrich:1", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok, "a released claim can be taken again inside the ttl")
}

func TestFallbackGuardReleasesLocalClaim(t *testing.T) {
	g := &FallbackGuard{primary: failingGuard{}, local: NewLocalGuard()}
	ctx := context.Background()

	ok, _ := g.Acquire(ctx, "enrich:x", time.Minute)
	require.True(t, ok)
	assert.Error(t, g.Release(ctx, "enrich:x"))

	ok, err := g.Acquire(ctx, "enrich:x", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestFallbackGuardDegradesToLocal(t *testing.T) {
	g := &FallbackGuard{primary: failingGuard{}, local: NewLocalGuard()}
	ctx := context.Background()

	ok, err := g.Acquire(ctx, "enrich:x", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = g.Acquire(ctx, "enrich:x", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNewGuardWithoutRedis(t *testing.T) {
	_, isLocal := NewGuard(nil).(*LocalGuard)
	assert.True(t, isLocal)
}
