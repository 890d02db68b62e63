package catalog

import "github.com/Takanoj0616/trip-app-sub000/internal/model"

func f64(v float64) *float64 { return &v }

// kankou_* 观光景点静态表
var kankouSpots = []model.KankouRecord{
	{
		ID:             1,
		Name:           model.LocalizedText{"en": "Senso-ji Temple", "ja": "浅草寺", "ko": "센소지", "fr": "Temple Senso-ji"},
		Area:           "Asakusa",
		Rating:         f64(4.5),
		Reviews:        58210,
		Images:         []string{"/images/sights/sensoji.jpg"},
		Tags:           []string{"temple", "history"},
		Badges:         []string{"popular", "open now"},
		StayRange:      "60-90 min",
		CrowdLevel:     "busy",
		BestTime:       "Early morning",
		TicketRequired: false,
	},
	{
		ID:                 2,
		Name:               model.LocalizedText{"en": "Meiji Jingu", "ja": "明治神宮", "ko": "메이지 신궁", "fr": "Sanctuaire Meiji"},
		Area:               "Harajuku",
		Rating:             f64(4.6),
		Reviews:            40112,
		Images:             []string{"/images/sights/meiji.jpg"},
		Tags:               []string{"shrine", "park"},
		Badges:             []string{"popular"},
		AverageStayMinutes: f64(70),
		BestTime:           "Morning",
	},
	{
		ID:                 3,
		Name:               model.LocalizedText{"en": "Tokyo National Museum", "ja": "東京国立博物館", "ko": "도쿄 국립박물관", "fr": "Musée national de Tokyo"},
		Area:               "Ueno",
		Rating:             f64(4.5),
		Reviews:            12950,
		Images:             []string{"/images/sights/tnm.jpg"},
		Tags:               []string{"museum", "history"},
		Badges:             []string{"ticket"},
		AverageStayMinutes: f64(140),
		BestTime:           "Weekday afternoon",
		TicketRequired:     true,
	},
	{
		ID:             4,
		Name:           model.LocalizedText{"en": "Shibuya Sky", "ja": "渋谷スカイ", "ko": "시부야 스카이", "fr": "Shibuya Sky"},
		Area:           "Shibuya",
		Rating:         f64(4.7),
		Reviews:        21033,
		Images:         []string{"/images/sights/shibuya-sky.jpg"},
		Tags:           []string{"view", "night"},
		Badges:         []string{"ticket", "popular"},
		BestTime:       "Sunset",
		TicketRequired: true,
	},
	{
		ID:             5,
		Name:           model.LocalizedText{"en": "Shinjuku Gyoen", "ja": "新宿御苑", "ko": "신주쿠 교엔", "fr": "Jardin Shinjuku Gyoen"},
		Area:           "Shinjuku",
		Rating:         f64(4.6),
		Reviews:        30540,
		Images:         []string{"/images/sights/gyoen.jpg"},
		Tags:           []string{"park"},
		BestTime:       "Cherry blossom season",
		TicketRequired: true,
	},
	{
		ID:         6,
		Name:       model.LocalizedText{"en": "Akihabara Electric Town", "ja": "秋葉原電気街", "ko": "아키하바라 전자상가", "fr": "Akihabara"},
		Area:       "Akihabara",
		Rating:     f64(4.3),
		Reviews:    18800,
		Images:     []string{"/images/sights/akihabara.jpg"},
		Tags:       []string{"shopping", "anime"},
		Badges:     []string{"tax free"},
		CrowdLevel: "normal",
		BestTime:   "Afternoon",
	},
	{
		ID:      7,
		Name:    model.LocalizedText{"en": "Mori Art Museum", "ja": "森美術館", "ko": "모리 미술관", "fr": "Musée d'art Mori"},
		Area:    "Roppongi",
		Rating:  f64(4.2),
		Reviews: 6120,
		Images:  []string{"/images/sights/mori.jpg"},
		Tags:    []string{"gallery", "view"},
		Badges:  []string{"ticket", "late night"},
		// 无停留数据，按标签分档
		BestTime:       "Evening",
		TicketRequired: true,
	},
	{
		ID:      8,
		Name:    model.LocalizedText{"ja": "谷中銀座", "en": "Yanaka Ginza"},
		Area:    "Yanaka",
		Rating:  f64(4.0),
		Reviews: 2210,
		Tags:    []string{"shopping", "history"},
	},
}

// 观光类补充表（暂无，后续可并入展望台、夜景路线等专题表）
var sightsExtras = []model.KankouRecord{}
