package recommend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/Takanoj0616/trip-app-sub000/internal/config"
	"github.com/Takanoj0616/trip-app-sub000/internal/interfaces"
	"github.com/Takanoj0616/trip-app-sub000/internal/model"
	"github.com/Takanoj0616/trip-app-sub000/internal/utils/httpclient"

	"github.com/sirupsen/logrus"
)

// ErrUpstreamStatus 上游返回非2xx
var ErrUpstreamStatus = errors.New("推荐接口返回非2xx状态")

// 错误响应体最多读取的字节数（只用于日志）
const maxErrBody = 512

type Client struct {
	cfg        *config.RecommendConfig
	httpClient *http.Client
	logger     *logrus.Logger
}

func NewClient(cfg *config.RecommendConfig, logger *logrus.Logger) interfaces.RecommendClient {
	return &Client{
		cfg:        cfg,
		httpClient: httpclient.NewHTTPClient(cfg, logger),
		logger:     logger,
	}
}

func (c *Client) endpoint() string {
	return strings.TrimRight(c.cfg.BaseURL, "/") + "/" + strings.TrimLeft(c.cfg.Path, "/")
}

// Recommend POST 四字段请求体，解析 recommendations/reasoning/totalTime
func (c *Client) Recommend(ctx context.Context, req *model.RecommendRequest) (*model.RecommendResponse, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("序列化推荐请求失败: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(), bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("构建推荐请求失败: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	if c.cfg.APIKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("调用推荐接口失败: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrBody))
		c.logger.WithFields(logrus.Fields{
			"status": resp.StatusCode,
			"body":   string(body),
		}).Warn("推荐接口返回错误")
		return nil, fmt.Errorf("%w: %d", ErrUpstreamStatus, resp.StatusCode)
	}

	var out model.RecommendResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("解析推荐响应失败: %w", err)
	}
	if out.Recommendations == nil {
		out.Recommendations = []model.RecommendedSpot{}
	}
	return &out, nil
}
