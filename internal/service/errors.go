package service

import "errors"

var (
	// ErrInvalidCategory ?category= 不在 food/sights/hotels 内
	ErrInvalidCategory = errors.New("无效的分类")
	// ErrSpotNotFound 深链对应的景点不存在
	ErrSpotNotFound = errors.New("景点不存在")
	// ErrInvalidRecommendRequest 推荐表单字段缺失
	ErrInvalidRecommendRequest = errors.New("推荐请求字段不完整")
	// ErrFreeLimitReached 未登录访客的免费推荐次数已用完
	ErrFreeLimitReached = errors.New("免费推荐次数已用完")
	// ErrRecommendUnavailable 上游推荐接口失败
	ErrRecommendUnavailable = errors.New("推荐服务暂不可用")
)
