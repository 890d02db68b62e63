// Package i18n holds the fixed label dictionaries used when rendering spots.
// Unknown keys and unsupported languages translate to themselves.
package i18n

import (
	"strings"

	"github.com/Takanoj0616/trip-app-sub000/internal/model"
)

// DefaultLanguage is used when ?lang= is missing or unsupported.
const DefaultLanguage = "en"

// NormalizeLanguage 把 ?lang= 规范化为受支持语言代码
func NormalizeLanguage(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if i := strings.IndexAny(lang, "-_"); i > 0 {
		lang = lang[:i]
	}
	for _, l := range model.FallbackLanguages {
		if l == lang {
			return l
		}
	}
	return DefaultLanguage
}

var labels = map[string]model.LocalizedText{
	// badges
	"open now":       {"en": "Open now", "ja": "営業中", "ko": "영업 중", "fr": "Ouvert"},
	"popular":        {"en": "Popular", "ja": "人気", "ko": "인기", "fr": "Populaire"},
	"reservation":    {"en": "Reservation", "ja": "要予約", "ko": "예약 필요", "fr": "Sur réservation"},
	"free wifi":      {"en": "Free Wi-Fi", "ja": "無料Wi-Fi", "ko": "무료 와이파이", "fr": "Wi-Fi gratuit"},
	"new":            {"en": "New", "ja": "新着", "ko": "신규", "fr": "Nouveau"},
	"english menu":   {"en": "English menu", "ja": "英語メニュー", "ko": "영어 메뉴", "fr": "Menu en anglais"},
	"family":         {"en": "Family friendly", "ja": "家族向け", "ko": "가족 친화", "fr": "En famille"},
	"tax free":       {"en": "Tax free", "ja": "免税", "ko": "면세", "fr": "Détaxe"},
	"michelin":       {"en": "Michelin", "ja": "ミシュラン", "ko": "미쉐린", "fr": "Michelin"},
	"late night":     {"en": "Late night", "ja": "深夜営業", "ko": "심야 영업", "fr": "Tard le soir"},
	"ticket":         {"en": "Ticket required", "ja": "チケット必要", "ko": "티켓 필요", "fr": "Billet requis"},
	"unesco":         {"en": "UNESCO", "ja": "世界遺産", "ko": "세계유산", "fr": "UNESCO"},
	"station nearby": {"en": "Near station", "ja": "駅近", "ko": "역 근처", "fr": "Près de la gare"},

	// tags
	"temple":    {"en": "Temple", "ja": "寺院", "ko": "사원", "fr": "Temple"},
	"shrine":    {"en": "Shrine", "ja": "神社", "ko": "신사", "fr": "Sanctuaire"},
	"museum":    {"en": "Museum", "ja": "博物館", "ko": "박물관", "fr": "Musée"},
	"gallery":   {"en": "Gallery", "ja": "美術館", "ko": "미술관", "fr": "Galerie"},
	"park":      {"en": "Park", "ja": "公園", "ko": "공원", "fr": "Parc"},
	"view":      {"en": "View", "ja": "展望", "ko": "전망", "fr": "Panorama"},
	"shopping":  {"en": "Shopping", "ja": "ショッピング", "ko": "쇼핑", "fr": "Shopping"},
	"bookstore": {"en": "Bookstore", "ja": "書店", "ko": "서점", "fr": "Librairie"},
	"sushi":     {"en": "Sushi", "ja": "寿司", "ko": "스시", "fr": "Sushi"},
	"ramen":     {"en": "Ramen", "ja": "ラーメン", "ko": "라멘", "fr": "Ramen"},
	"izakaya":   {"en": "Izakaya", "ja": "居酒屋", "ko": "이자카야", "fr": "Izakaya"},
	"cafe":      {"en": "Cafe", "ja": "カフェ", "ko": "카페", "fr": "Café"},
	"tempura":   {"en": "Tempura", "ja": "天ぷら", "ko": "덴푸라", "fr": "Tempura"},
	"onsen":     {"en": "Hot spring", "ja": "温泉", "ko": "온천", "fr": "Source chaude"},
	"luxury":    {"en": "Luxury", "ja": "ラグジュアリー", "ko": "럭셔리", "fr": "Luxe"},
	"business":  {"en": "Business", "ja": "ビジネス", "ko": "비즈니스", "fr": "Affaires"},
	"ryokan":    {"en": "Ryokan", "ja": "旅館", "ko": "료칸", "fr": "Ryokan"},
	"night":     {"en": "Night view", "ja": "夜景", "ko": "야경", "fr": "Vue de nuit"},
	"history":   {"en": "History", "ja": "歴史", "ko": "역사", "fr": "Histoire"},
	"anime":     {"en": "Anime", "ja": "アニメ", "ko": "애니메이션", "fr": "Anime"},

	// crowd levels
	"busy":   {"en": "Busy", "ja": "混雑", "ko": "혼잡", "fr": "Très fréquenté"},
	"normal": {"en": "Normal", "ja": "普通", "ko": "보통", "fr": "Normal"},
	"light":  {"en": "Quiet", "ja": "空いている", "ko": "한산", "fr": "Calme"},
}

// Label 翻译徽章/标签/拥挤度等短文本；字典外的 key 原样返回
func Label(key, lang string) string {
	t, ok := labels[strings.ToLower(strings.TrimSpace(key))]
	if !ok {
		return key
	}
	if v, ok := t[lang]; ok && v != "" {
		return v
	}
	return key
}

// Labels 批量翻译，保持顺序
func Labels(keys []string, lang string) []string {
	if len(keys) == 0 {
		return nil
	}
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = Label(k, lang)
	}
	return out
}
