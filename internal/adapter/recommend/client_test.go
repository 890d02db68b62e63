package recommend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Takanoj0616/trip-app-sub000/internal/config"
	"github.com/Takanoj0616/trip-app-sub000/internal/model"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	logger, _ := test.NewNullLogger()
	return NewClient(&config.RecommendConfig{
		BaseURL: srv.URL + "/",
		Path:    "/api/ai-recommendations",
		Timeout: 5,
		APIKey:  "secret",
	}, logger).(*Client)
}

func TestRecommend_Success(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/ai-recommendations", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))

		var req model.RecommendRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, []string{"temple", "food"}, req.Interests)
		assert.Equal(t, "Asakusa", req.Area)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"recommendations": [
				{"id": "s1", "name": "Senso-ji", "order": 1, "visitTime": "09:00", "duration": "60-90 min", "reason": "classic", "tips": ["go early"]},
				{"id": "s2", "name": {"en": "Kappabashi", "ja": "かっぱ橋"}, "order": 2, "visitTime": "11:00", "duration": "30-60 min", "reason": "kitchenware", "tips": []}
			],
			"reasoning": "walkable",
			"totalTime": "3h"
		}`))
	})

	resp, err := c.Recommend(context.Background(), &model.RecommendRequest{
		Interests: []string{"temple", "food"},
		Budget:    "moderate",
		Duration:  "half-day",
		Area:      "Asakusa",
	})
	require.NoError(t, err)
	require.Len(t, resp.Recommendations, 2)
	assert.Equal(t, "Senso-ji", resp.Recommendations[0].Name.Text.Resolve("ja"))
	assert.Equal(t, "かっぱ橋", resp.Recommendations[1].Name.Text.Resolve("ja"))
	assert.Equal(t, []string{"go early"}, resp.Recommendations[0].Tips)
	assert.Equal(t, "walkable", resp.Reasoning)
	assert.Equal(t, "3h", resp.TotalTime)
}

func TestRecommend_Non2xx(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	_, err := c.Recommend(context.Background(), &model.RecommendRequest{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUpstreamStatus)
}

func TestRecommend_BadJSON(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>"))
	})
	_, err := c.Recommend(context.Background(), &model.RecommendRequest{})
	assert.Error(t, err)
}

func TestRecommend_EmptyListNotNil(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"reasoning":"none"}`))
	})
	resp, err := c.Recommend(context.Background(), &model.RecommendRequest{})
	require.NoError(t, err)
	assert.NotNil(t, resp.Recommendations)
	assert.Empty(t, resp.Recommendations)
}
