package httpclient

import (
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Takanoj0616/trip-app-sub000/internal/config"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_DecodesGzip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "gzip", r.Header.Get("Accept-Encoding"))
		w.Header().Set("Content-Encoding", "gzip")
		zw := gzip.NewWriter(w)
		_, _ = zw.Write([]byte(`{"ok":true}`))
		_ = zw.Close()
	}))
	defer srv.Close()

	logger, _ := test.NewNullLogger()
	client := NewHTTPClient(&config.RecommendConfig{Timeout: 5}, logger)

	resp, err := client.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, `{"ok":true}`, string(body))
	assert.Empty(t, resp.Header.Get("Content-Encoding"))
}

func TestNewHTTPClient_PlainBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("plain"))
	}))
	defer srv.Close()

	logger, _ := test.NewNullLogger()
	client := NewHTTPClient(&config.RecommendConfig{}, logger)
	assert.Equal(t, 30*time.Second, client.Timeout)

	resp, err := client.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "plain", string(body))
}

func TestNewHTTPClient_BadProxyIgnored(t *testing.T) {
	logger, hook := test.NewNullLogger()
	client := NewHTTPClient(&config.RecommendConfig{Proxy: "::bad::", Timeout: 3}, logger)
	assert.Equal(t, 3*time.Second, client.Timeout)
	require.NotNil(t, hook.LastEntry())
	assert.Contains(t, hook.LastEntry().Message, "代理地址解析失败")
}
