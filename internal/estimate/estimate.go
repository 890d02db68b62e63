// Package estimate derives display strings for stay duration, crowd level and
// price from partial source data. Every function is total: missing input falls
// through to the next rule and finally to a constant.
package estimate

import (
	"fmt"
	"math"
	"strings"
	"time"
)

const (
	minStayMinutes = 15
	stayLowFactor  = 0.7
	stayHighFactor = 1.3
)

// StayInput 停留时长估算所需字段，均可缺省
type StayInput struct {
	Explicit   string
	AvgMinutes *float64
	Tags       []string
}

// StayDuration 显式文案 > 平均分钟推算 > 标签分档
func StayDuration(in StayInput) string {
	if s := strings.TrimSpace(in.Explicit); s != "" {
		return in.Explicit
	}
	if in.AvgMinutes != nil && *in.AvgMinutes > 0 {
		avg := *in.AvgMinutes
		low := roundTo5(avg * stayLowFactor)
		if low < minStayMinutes {
			low = minStayMinutes
		}
		// 只对下限取 15 分钟保底，上限不随之抬高
		return formatRange(low, roundTo5(avg*stayHighFactor))
	}
	low, high := stayBucket(in.Tags)
	return formatRange(low, high)
}

func stayBucket(tags []string) (int, int) {
	for _, t := range tags {
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "bookstore", "shopping", "store":
			return 30, 60
		}
	}
	for _, t := range tags {
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "museum", "gallery":
			return 60, 120
		}
	}
	return 60, 90
}

func roundTo5(x float64) int {
	return int(math.Round(x/5) * 5)
}

func formatRange(low, high int) string {
	return fmt.Sprintf("%d-%d min", low, high)
}

// 拥挤度标签 key，展示时由 i18n 翻译
const (
	CrowdBusy   = "busy"
	CrowdNormal = "normal"
	CrowdLight  = "light"
)

// CrowdInput 拥挤度估算输入
type CrowdInput struct {
	Explicit string
	Rating   *float64
	Now      time.Time
	Location *time.Location
}

// Crowd 返回 1-5 的分值以及对应标签
func Crowd(in CrowdInput) (int, string) {
	if s := strings.ToLower(strings.TrimSpace(in.Explicit)); s != "" {
		score := 2
		switch s {
		case CrowdBusy:
			score = 4
		case CrowdNormal:
			score = 3
		}
		return score, CrowdLabel(score)
	}

	score := 1
	if in.Rating != nil {
		switch r := *in.Rating; {
		case r >= 4.4:
			score = 3
		case r >= 4.1:
			score = 2
		}
	}

	now := in.Now
	if in.Location != nil {
		now = now.In(in.Location)
	}
	if wd := now.Weekday(); wd == time.Saturday || wd == time.Sunday {
		score++
	}
	if h := now.Hour(); (h >= 11 && h <= 13) || (h >= 16 && h <= 20) {
		score++
	}

	if score < 1 {
		score = 1
	}
	if score > 5 {
		score = 5
	}
	return score, CrowdLabel(score)
}

// CrowdLabel 分值 → 标签
func CrowdLabel(score int) string {
	switch {
	case score >= 4:
		return CrowdBusy
	case score >= 3:
		return CrowdNormal
	default:
		return CrowdLight
	}
}

// 无任何价格数据时按币种兜底
var currencyFallback = map[string]string{
	"JPY": "¥1,000~",
	"USD": "$10~",
	"EUR": "€10~",
	"KRW": "₩10,000~",
}

const defaultPriceFallback = "¥1,000~"

// PriceInput 价格展示输入
type PriceInput struct {
	Explicit   string
	PriceRange string
	Currency   string
}

// Price 显式价格 > 价格档位 > 币种常量
func Price(in PriceInput) string {
	if s := strings.TrimSpace(in.Explicit); s != "" {
		return in.Explicit
	}
	if pr := strings.ToLower(strings.TrimSpace(in.PriceRange)); pr != "" {
		switch pr {
		case "expensive":
			return "over ¥3,000"
		case "moderate":
			return "¥1,000–3,000"
		default:
			return "under ¥1,000"
		}
	}
	if v, ok := currencyFallback[strings.ToUpper(strings.TrimSpace(in.Currency))]; ok {
		return v
	}
	return defaultPriceFallback
}
