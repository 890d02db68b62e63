package model

import (
	"encoding/json"
	"strings"
)

// Category 展示分类（封闭集合）
type Category string

const (
	CategoryFood   Category = "food"
	CategorySights Category = "sights"
	CategoryHotels Category = "hotels"
)

// Categories 全部展示分类
var Categories = []Category{CategoryFood, CategorySights, CategoryHotels}

// ParseCategory 解析 ?category= 参数，非法值返回 false
func ParseCategory(s string) (Category, bool) {
	switch Category(strings.ToLower(strings.TrimSpace(s))) {
	case CategoryFood:
		return CategoryFood, true
	case CategorySights:
		return CategorySights, true
	case CategoryHotels:
		return CategoryHotels, true
	}
	return "", false
}

// sourceCategoryTable 远端 tourist_spots 分类 → 展示分类
var sourceCategoryTable = map[string]Category{
	"sightseeing":    CategorySights,
	"restaurants":    CategoryFood,
	"hotels":         CategoryHotels,
	"transportation": CategorySights,
	"entertainment":  CategorySights,
	"shopping":       CategorySights,
}

// MapSourceCategory 未知或缺失的分类一律归为 sights
func MapSourceCategory(source string) Category {
	if c, ok := sourceCategoryTable[strings.ToLower(strings.TrimSpace(source))]; ok {
		return c
	}
	return CategorySights
}

// 名称回退顺序
var FallbackLanguages = []string{"en", "ja", "ko", "fr"}

// LocalizedText 多语言文本（lang → text）
type LocalizedText map[string]string

// Resolve 先取请求语言，再按 en → ja → ko → fr 取第一个非空值
func (t LocalizedText) Resolve(lang string) string {
	if v := strings.TrimSpace(t[lang]); v != "" {
		return t[lang]
	}
	for _, l := range FallbackLanguages {
		if v := strings.TrimSpace(t[l]); v != "" {
			return t[l]
		}
	}
	return ""
}

// Replicate 单语言名称复制到全部语言槽位
func Replicate(name string) LocalizedText {
	out := make(LocalizedText, len(FallbackLanguages))
	for _, l := range FallbackLanguages {
		out[l] = name
	}
	return out
}

// NameField 兼容两种写法："name": "xx" 或 "name": {"en": "...", "ja": "..."}
type NameField struct {
	Text LocalizedText
}

func (n *NameField) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		n.Text = Replicate(s)
		return nil
	}
	var m map[string]string
	if err := json.Unmarshal(b, &m); err != nil {
		return err
	}
	n.Text = LocalizedText(m)
	return nil
}

func (n NameField) MarshalJSON() ([]byte, error) {
	if n.Text == nil {
		return []byte("null"), nil
	}
	return json.Marshal(map[string]string(n.Text))
}
