package httpclient

import (
	"compress/gzip"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Takanoj0616/trip-app-sub000/internal/config"

	"github.com/sirupsen/logrus"
)

const defaultTimeout = 30 * time.Second

// NewHTTPClient 上游HTTP客户端（代理、超时、gzip解压）
func NewHTTPClient(cfg *config.RecommendConfig, logger *logrus.Logger) *http.Client {
	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        50,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     60 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
		// 手动处理gzip，见 gzipTransport
		DisableCompression: true,
	}

	if cfg.Proxy != "" {
		proxyURL, err := url.Parse(cfg.Proxy)
		if err != nil || proxyURL.Host == "" {
			logger.WithError(err).WithField("proxy", cfg.Proxy).Warn("代理地址解析失败，将不使用代理")
		} else {
			transport.Proxy = http.ProxyURL(proxyURL)
			logger.WithField("proxy", proxyURL.Host).Info("HTTP客户端已配置代理")
		}
	}

	timeout := time.Duration(cfg.Timeout) * time.Second
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &http.Client{
		Timeout:   timeout,
		Transport: &gzipTransport{next: transport, logger: logger},
	}
}

type gzipTransport struct {
	next   http.RoundTripper
	logger *logrus.Logger
}

func (g *gzipTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("Accept-Encoding") == "" {
		req = req.Clone(req.Context())
		req.Header.Set("Accept-Encoding", "gzip")
	}
	resp, err := g.next.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	if !strings.EqualFold(resp.Header.Get("Content-Encoding"), "gzip") {
		return resp, nil
	}

	zr, err := gzip.NewReader(resp.Body)
	if err != nil {
		g.logger.WithError(err).Warn("gzip解压失败，返回原始响应")
		return resp, nil
	}
	resp.Body = &gzipBody{Reader: zr, raw: resp.Body}
	resp.Header.Del("Content-Encoding")
	resp.Header.Del("Content-Length")
	resp.ContentLength = -1
	resp.Uncompressed = true
	return resp, nil
}

// gzipBody 关闭时同时释放解压器和原始响应体
type gzipBody struct {
	*gzip.Reader
	raw io.ReadCloser
}

func (b *gzipBody) Close() error {
	zerr := b.Reader.Close()
	if err := b.raw.Close(); err != nil {
		return err
	}
	return zerr
}
