package model

// DefaultRating 缺失评分时的展示默认值（不是估算）
const DefaultRating = 4.0

// DisplaySpot 归一化后的展示记录（每次请求重新计算，不落库）
type DisplaySpot struct {
	ID          string        `json:"id"`
	Slug        string        `json:"slug,omitempty"`
	Name        LocalizedText `json:"name"`
	Rating      float64       `json:"rating"`
	ReviewCount int           `json:"reviewCount"`
	Images      []string      `json:"images"`
	Image       string        `json:"image"`
	Badges      []string      `json:"badges,omitempty"`
	Tags        []string      `json:"tags,omitempty"`
	Info        SpotInfo      `json:"info"`
	Category    Category      `json:"category"`
}

// SpotInfo 分类相关信息块
type SpotInfo struct {
	// food
	Price    string `json:"price,omitempty"`
	Cuisine  string `json:"cuisine,omitempty"`
	Distance string `json:"distance,omitempty"`
	Hours    string `json:"hours,omitempty"`

	// sights
	Duration       string `json:"duration,omitempty"`
	TicketRequired *bool  `json:"ticketRequired,omitempty"`
	BestTime       string `json:"bestTime,omitempty"`
	CrowdLevel     string `json:"crowdLevel,omitempty"` // busy/normal/light，读时翻译
	CrowdScore     int    `json:"crowdScore,omitempty"`

	// hotels
	PricePerNight string `json:"pricePerNight,omitempty"`
	Stars         int    `json:"stars,omitempty"`
	CheckIn       string `json:"checkIn,omitempty"`
	CheckOut      string `json:"checkOut,omitempty"`
}

// LinkID 深链标识：有 slug 用 slug，否则用 id
func (d *DisplaySpot) LinkID() string {
	if d.Slug != "" {
		return d.Slug
	}
	return d.ID
}

// FinalizeSpot 补齐所有可选字段的默认值
func FinalizeSpot(d *DisplaySpot, rating *float64, placeholder string) {
	if rating != nil {
		d.Rating = *rating
	} else {
		d.Rating = DefaultRating
	}
	if d.ReviewCount < 0 {
		d.ReviewCount = 0
	}
	images := make([]string, 0, len(d.Images))
	for _, img := range d.Images {
		if img != "" {
			images = append(images, img)
		}
	}
	if len(images) == 0 {
		images = []string{placeholder}
	}
	d.Images = images
	d.Image = images[0]
	// 名称至少要能解析出一种语言，实在没有就用 id 顶上
	if d.Name.Resolve("en") == "" {
		d.Name = Replicate(d.ID)
	}
	switch d.Category {
	case CategoryFood, CategorySights, CategoryHotels:
	default:
		d.Category = CategorySights
	}
}
