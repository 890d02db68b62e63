package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Takanoj0616/trip-app-sub000/internal/config"
	"github.com/Takanoj0616/trip-app-sub000/internal/model"
	"github.com/Takanoj0616/trip-app-sub000/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cacheNow = time.Date(2026, 10, 16, 10, 0, 0, 0, jst)

func newTestCache(t *testing.T, src *fakeSource, kv storage.KV, delay time.Duration) (*SpotCache, *storage.Store) {
	t.Helper()
	store := storage.NewStore(kv)
	cfg := &config.SpotsConfig{CacheTTL: 5 * time.Minute, RefreshDelay: delay, FetchLimit: 100}
	c := NewSpotCache(src, store, cfg, testLogger())
	c.SetClock(func() time.Time { return cacheNow })
	return c, store
}

func seedEntry(t *testing.T, store *storage.Store, age time.Duration, docs ...model.RemoteSpotDocument) {
	t.Helper()
	require.NoError(t, store.SaveSpotsCache(context.Background(), &storage.SpotsCacheEntry{
		Data:      docs,
		Timestamp: cacheNow.Add(-age).UnixMilli(),
	}))
}

func waitDone(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("refresh did not finish")
	}
}

func TestIsFresh(t *testing.T) {
	ttl := 5 * time.Minute
	assert.True(t, IsFresh(cacheNow.Add(-4*time.Minute-59*time.Second).UnixMilli(), cacheNow, ttl))
	assert.False(t, IsFresh(cacheNow.Add(-5*time.Minute).UnixMilli(), cacheNow, ttl))
	assert.False(t, IsFresh(cacheNow.Add(-5*time.Minute-time.Second).UnixMilli(), cacheNow, ttl))
}

func TestSpotCache_StaleEntryRefreshesImmediately(t *testing.T) {
	src := &fakeSource{docs: []model.RemoteSpotDocument{doc("new", "New Spot", "sightseeing", 4.2)}}
	c, store := newTestCache(t, src, storage.NewMemoryKV(), time.Hour)
	seedEntry(t, store, 5*time.Minute+time.Second, doc("old", "Old Spot", "sightseeing", 4.0))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := c.Start(ctx)

	// 过期条目不作为首屏数据
	waitDone(t, done)
	assert.Equal(t, 1, src.Calls())

	docs, updated := c.Snapshot()
	require.Len(t, docs, 1)
	assert.Equal(t, "new", docs[0].ID)
	assert.Equal(t, cacheNow.UnixMilli(), updated.UnixMilli())

	entry, err := store.LoadSpotsCache(context.Background())
	require.NoError(t, err)
	assert.Equal(t, cacheNow.UnixMilli(), entry.Timestamp)
	assert.Equal(t, "new", entry.Data[0].ID)
}

func TestSpotCache_FreshEntryUsedAndRefreshDelayed(t *testing.T) {
	src := &fakeSource{docs: []model.RemoteSpotDocument{doc("new", "New Spot", "sightseeing", 4.2)}}
	c, store := newTestCache(t, src, storage.NewMemoryKV(), time.Hour)
	seedEntry(t, store, 4*time.Minute+59*time.Second, doc("cached", "Cached Spot", "sightseeing", 4.0))

	ctx, cancel := context.WithCancel(context.Background())
	done := c.Start(ctx)

	docs, _ := c.Snapshot()
	require.Len(t, docs, 1)
	assert.Equal(t, "cached", docs[0].ID)
	assert.Equal(t, 0, src.Calls())

	cancel()
	waitDone(t, done)
	assert.Equal(t, 0, src.Calls())
}

func TestSpotCache_FreshEntryThenDelayedRefresh(t *testing.T) {
	src := &fakeSource{docs: []model.RemoteSpotDocument{doc("new", "New Spot", "sightseeing", 4.2)}}
	c, store := newTestCache(t, src, storage.NewMemoryKV(), 10*time.Millisecond)
	seedEntry(t, store, time.Minute, doc("cached", "Cached Spot", "sightseeing", 4.0))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	waitDone(t, c.Start(ctx))

	assert.Equal(t, 1, src.Calls())
	docs, _ := c.Snapshot()
	assert.Equal(t, "new", docs[0].ID)
}

func TestSpotCache_FetchFailureKeepsState(t *testing.T) {
	src := &fakeSource{err: errors.New("network down")}
	c, store := newTestCache(t, src, storage.NewMemoryKV(), time.Millisecond)
	seedEntry(t, store, time.Minute, doc("cached", "Cached Spot", "sightseeing", 4.0))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	waitDone(t, c.Start(ctx))

	assert.Equal(t, 1, src.Calls())
	docs, _ := c.Snapshot()
	require.Len(t, docs, 1)
	assert.Equal(t, "cached", docs[0].ID)

	entry, err := store.LoadSpotsCache(context.Background())
	require.NoError(t, err)
	assert.Equal(t, cacheNow.Add(-time.Minute).UnixMilli(), entry.Timestamp)
}

func TestSpotCache_NoEntryAndFetchFailureLeavesEmpty(t *testing.T) {
	src := &fakeSource{err: errors.New("network down")}
	c, _ := newTestCache(t, src, storage.NewMemoryKV(), time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	waitDone(t, c.Start(ctx))

	docs, updated := c.Snapshot()
	assert.Empty(t, docs)
	assert.True(t, updated.IsZero())
}

func TestSpotCache_CanceledRefreshDoesNotWrite(t *testing.T) {
	src := &fakeSource{docs: []model.RemoteSpotDocument{doc("new", "New Spot", "sightseeing", 4.2)}}
	c, store := newTestCache(t, src, storage.NewMemoryKV(), time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := c.Refresh(ctx)
	assert.ErrorIs(t, err, context.Canceled)

	docs, _ := c.Snapshot()
	assert.Empty(t, docs)
	_, err = store.LoadSpotsCache(context.Background())
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestSpotCache_WriteFailureSwallowed(t *testing.T) {
	src := &fakeSource{docs: []model.RemoteSpotDocument{doc("new", "New Spot", "sightseeing", 4.2)}}
	c, _ := newTestCache(t, src, brokenKV{storage.NewMemoryKV()}, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	// 读失败按无缓存处理，立即刷新
	waitDone(t, c.Start(ctx))

	docs, _ := c.Snapshot()
	require.Len(t, docs, 1)
	assert.NoError(t, c.Refresh(context.Background()))
}
