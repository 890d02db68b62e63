package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Takanoj0616/trip-app-sub000/internal/adapter"
	"github.com/Takanoj0616/trip-app-sub000/internal/adapter/recommend"
	"github.com/Takanoj0616/trip-app-sub000/internal/auth"
	"github.com/Takanoj0616/trip-app-sub000/internal/config"
	"github.com/Takanoj0616/trip-app-sub000/internal/interfaces"
	"github.com/Takanoj0616/trip-app-sub000/internal/model"
	"github.com/Takanoj0616/trip-app-sub000/internal/service"
	"github.com/Takanoj0616/trip-app-sub000/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticSource struct{ docs []model.RemoteSpotDocument }

func (s staticSource) FetchSpots(context.Context, int) ([]model.RemoteSpotDocument, error) {
	return s.docs, nil
}

type testEnv struct {
	router   *gin.Engine
	tokens   auth.TokenService
	upstream *atomic.Int32
	fail     *atomic.Bool
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger, _ := test.NewNullLogger()

	env := &testEnv{upstream: &atomic.Int32{}, fail: &atomic.Bool{}}
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		env.upstream.Add(1)
		if env.fail.Load() {
			http.Error(w, "down", http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"recommendations":[{"id":"1","name":"Senso-ji","order":1,"visitTime":"09:00","duration":"60 min","reason":"iconic","tips":["early"]}],"reasoning":"r","totalTime":"2h"}`))
	}))
	t.Cleanup(upstream.Close)

	spotsCfg := &config.SpotsConfig{CacheTTL: 5 * time.Minute, FreeQuota: 9}
	recCfg := &config.RecommendConfig{BaseURL: upstream.URL, Path: "/api/ai-recommendations", Timeout: 5, FreeLimit: 5, SignupURL: "/signup"}
	store := storage.NewStore(storage.NewMemoryKV())

	var docs []model.RemoteSpotDocument
	for _, id := range []string{"r1", "r2", "r3", "r4"} {
		docs = append(docs, model.RemoteSpotDocument{ID: id, Name: model.NameField{Text: model.Replicate("Remote " + id)}, Category: "sightseeing"})
	}
	registry := adapter.NewRegistry(adapter.DefaultFactories(), &interfaces.NormalizeOptions{
		PlaceholderImage: "/img/placeholder.jpg",
		Currency:         "JPY",
		Location:         time.UTC,
	}, logger)
	cache := service.NewSpotCache(staticSource{docs: docs}, store, spotsCfg, logger)
	require.NoError(t, cache.Refresh(context.Background()))

	env.tokens = auth.NewTokenService("secret", "trip-app")
	env.router = NewRouter(Services{
		Spots:     service.NewSpotService(cache, service.NewAggregator(registry, logger), nil, spotsCfg, logger),
		Cache:     cache,
		Recommend: service.NewRecommendService(recommend.NewClient(recCfg, logger), store, recCfg, logger),
		Cta:       service.NewCtaService(store, logger),
		Tokens:    env.tokens,
		Logger:    logger,
	})
	return env
}

func (e *testEnv) do(t *testing.T, method, path, body string, cookies []*http.Cookie, token string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestListSpots_GateAndCookie(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/api/spots?category=sights&lang=ja", "", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "sights", body["category"])
	assert.Equal(t, "ja", body["lang"])
	assert.EqualValues(t, 12, body["total"])
	assert.EqualValues(t, 3, body["locked"])

	cards := body["cards"].([]any)
	last := cards[11].(map[string]any)
	assert.Equal(t, "locked", last["mode"])
	assert.NotContains(t, last, "spot")

	var visitor *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == VisitorCookie {
			visitor = c
		}
	}
	require.NotNil(t, visitor)
	assert.True(t, visitor.HttpOnly)

	token, _, err := env.tokens.Sign("u1")
	require.NoError(t, err)
	body = decode(t, env.do(t, http.MethodGet, "/api/spots?category=sights", "", nil, token))
	assert.EqualValues(t, 0, body["locked"])
}

func TestListSpots_BadCategory(t *testing.T) {
	env := newTestEnv(t)
	w := env.do(t, http.MethodGet, "/api/spots?category=bars", "", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetSpot(t *testing.T) {
	env := newTestEnv(t)
	w := env.do(t, http.MethodGet, "/api/spots/r2?lang=fr", "", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Remote r2", decode(t, w)["name"])

	w = env.do(t, http.MethodGet, "/api/spots/missing", "", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRefreshRequiresAuth(t *testing.T) {
	env := newTestEnv(t)
	assert.Equal(t, http.StatusUnauthorized, env.do(t, http.MethodPost, "/api/spots/refresh", "", nil, "").Code)

	token, _, _ := env.tokens.Sign("admin")
	w := env.do(t, http.MethodPost, "/api/spots/refresh", "", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 4, decode(t, w)["count"])
}

func TestRefreshSurvivesClientDisconnect(t *testing.T) {
	env := newTestEnv(t)
	token, _, _ := env.tokens.Sign("admin")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req := httptest.NewRequest(http.MethodPost, "/api/spots/refresh", nil).WithContext(ctx)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 4, decode(t, w)["count"])
}

const validBody = `{"interests":["temple"],"budget":"moderate","duration":"half-day","area":"Asakusa"}`

func TestRecommend_QuotaFlow(t *testing.T) {
	env := newTestEnv(t)
	cookie := []*http.Cookie{{Name: VisitorCookie, Value: "5f1c1f3e-7a7e-4d36-9a55-2f4b8b1c0d11"}}

	for i := 1; i <= 5; i++ {
		w := env.do(t, http.MethodPost, "/api/ai-recommendations", validBody, cookie, "")
		require.Equal(t, http.StatusOK, w.Code, i)
		usage := decode(t, w)["usage"].(map[string]any)
		assert.EqualValues(t, i, usage["used"])
	}
	assert.EqualValues(t, 5, env.upstream.Load())

	w := env.do(t, http.MethodPost, "/api/ai-recommendations", validBody, cookie, "")
	require.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "/signup", decode(t, w)["signup_url"])
	assert.EqualValues(t, 5, env.upstream.Load(), "no upstream call once blocked")

	w = env.do(t, http.MethodGet, "/api/ai-recommendations/usage", "", cookie, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 0, decode(t, w)["remaining"])

	token, _, _ := env.tokens.Sign("member")
	w = env.do(t, http.MethodPost, "/api/ai-recommendations", validBody, cookie, token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRecommend_ValidationAndUpstreamFailure(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/ai-recommendations", `{"interests":[],"budget":"low"}`, nil, "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.ElementsMatch(t, []any{"interests", "duration", "area"}, decode(t, w)["fields"])

	w = env.do(t, http.MethodPost, "/api/ai-recommendations", `not json`, nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.EqualValues(t, 0, env.upstream.Load())

	env.fail.Store(true)
	w = env.do(t, http.MethodPost, "/api/ai-recommendations", validBody, nil, "")
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, decode(t, w)["error"], "try again")
}

func TestCtaVariantSticky(t *testing.T) {
	env := newTestEnv(t)
	cookie := []*http.Cookie{{Name: VisitorCookie, Value: "0b6c2d8e-1a2b-4c3d-8e9f-001122334455"}}

	first := decode(t, env.do(t, http.MethodGet, "/api/cta-variant", "", cookie, ""))["variant"]
	assert.Contains(t, []any{"A", "B"}, first)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, decode(t, env.do(t, http.MethodGet, "/api/cta-variant", "", cookie, ""))["variant"])
	}
}

func TestTrackEvent(t *testing.T) {
	env := newTestEnv(t)
	assert.Equal(t, http.StatusAccepted, env.do(t, http.MethodPost, "/api/events", `{"name":"cta_click","variant":"A"}`, nil, "").Code)
	assert.Equal(t, http.StatusAccepted, env.do(t, http.MethodPost, "/api/events", `{"name":"page_view"}`, nil, "").Code)
	assert.Equal(t, http.StatusBadRequest, env.do(t, http.MethodPost, "/api/events", `{"name":"Bad Name!"}`, nil, "").Code)
	assert.Equal(t, http.StatusBadRequest, env.do(t, http.MethodPost, "/api/events", `{"name":"cta_click","variant":"C"}`, nil, "").Code)
}

func countSeries(t *testing.T, e *testEnv, metric string) int {
	t.Helper()
	w := e.do(t, http.MethodGet, "/metrics", "", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	n := 0
	for _, line := range strings.Split(w.Body.String(), "\n") {
		if strings.HasPrefix(line, metric+"{") {
			n++
		}
	}
	return n
}

func TestTrackEvent_UnknownNamesShareOneSeries(t *testing.T) {
	env := newTestEnv(t)
	require.Equal(t, http.StatusAccepted, env.do(t, http.MethodPost, "/api/events", `{"name":"junk_seed"}`, nil, "").Code)
	before := countSeries(t, env, "marketing_events_total")

	for i := 0; i < 50; i++ {
		body := fmt.Sprintf(`{"name":"junk_%d"}`, i)
		require.Equal(t, http.StatusAccepted, env.do(t, http.MethodPost, "/api/events", body, nil, "").Code)
	}
	assert.Equal(t, before, countSeries(t, env, "marketing_events_total"))

	w := env.do(t, http.MethodGet, "/metrics", "", nil, "")
	assert.Contains(t, w.Body.String(), `marketing_events_total{name="other",variant="none"}`)
	assert.NotContains(t, w.Body.String(), `name="junk_0"`)
}

func TestCoursesAndOps(t *testing.T) {
	env := newTestEnv(t)
	w := env.do(t, http.MethodGet, "/api/courses?lang=ko", "", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, decode(t, w)["courses"])

	assert.Equal(t, http.StatusOK, env.do(t, http.MethodGet, "/healthz", "", nil, "").Code)
	env.do(t, http.MethodGet, "/api/spots", "", nil, "")
	w = env.do(t, http.MethodGet, "/metrics", "", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "spot_list_requests_total")
}
