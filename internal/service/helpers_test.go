package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/Takanoj0616/trip-app-sub000/internal/adapter"
	"github.com/Takanoj0616/trip-app-sub000/internal/interfaces"
	"github.com/Takanoj0616/trip-app-sub000/internal/model"
	"github.com/Takanoj0616/trip-app-sub000/internal/storage"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

var jst = time.FixedZone("JST", 9*3600)

func testLogger() *logrus.Logger {
	logger, _ := test.NewNullLogger()
	return logger
}

func testRegistry() *adapter.Registry {
	opts := &interfaces.NormalizeOptions{
		PlaceholderImage: "/images/spot-placeholder.jpg",
		Currency:         "JPY",
		Location:         jst,
		Now:              func() time.Time { return time.Date(2026, 10, 14, 9, 0, 0, 0, jst) },
	}
	return adapter.NewRegistry(adapter.DefaultFactories(), opts, testLogger())
}

func ptr[T any](v T) *T { return &v }

func doc(id, name, category string, rating float64) model.RemoteSpotDocument {
	return model.RemoteSpotDocument{
		ID:       id,
		Name:     model.NameField{Text: model.Replicate(name)},
		Category: category,
		Rating:   ptr(rating),
	}
}

// fakeSource 可编程的远端景点源
type fakeSource struct {
	mu    sync.Mutex
	docs  []model.RemoteSpotDocument
	err   error
	calls int
}

func (f *fakeSource) FetchSpots(_ context.Context, _ int) ([]model.RemoteSpotDocument, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.docs, nil
}

func (f *fakeSource) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// brokenKV 读写都失败的存储
type brokenKV struct{ *storage.MemoryKV }

var errBroken = errors.New("storage unavailable")

func (brokenKV) Get(context.Context, string) (string, error)         { return "", errBroken }
func (brokenKV) Set(context.Context, string, string) error           { return errBroken }
func (brokenKV) SetNX(context.Context, string, string) (bool, error) { return false, errBroken }
func (brokenKV) Incr(context.Context, string) (int64, error)         { return 0, errBroken }
