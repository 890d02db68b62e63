package service

import (
	"strings"

	"github.com/Takanoj0616/trip-app-sub000/internal/i18n"
	"github.com/Takanoj0616/trip-app-sub000/internal/model"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

var folder = cases.Fold()

// fold NFKC 归一（全角/半角统一）后做大小写折叠
func fold(s string) string {
	return folder.String(norm.NFKC.String(s))
}

// FilterSpots 名称（按当前语言解析）或任一标签包含关键词即命中；空白关键词原样返回，
// 非空关键词按原样（含首尾空格）做子串匹配
func FilterSpots(spots []model.DisplaySpot, term, lang string) []model.DisplaySpot {
	if strings.TrimSpace(term) == "" {
		return spots
	}
	needle := fold(term)

	out := make([]model.DisplaySpot, 0, len(spots))
	for _, s := range spots {
		if matchSpot(s, needle, lang) {
			out = append(out, s)
		}
	}
	return out
}

func matchSpot(s model.DisplaySpot, needle, lang string) bool {
	if strings.Contains(fold(s.Name.Resolve(lang)), needle) {
		return true
	}
	for _, tag := range s.Tags {
		if strings.Contains(fold(tag), needle) || strings.Contains(fold(i18n.Label(tag, lang)), needle) {
			return true
		}
	}
	return false
}
