package model

import "strconv"

// SourceKind 景点原始数据的来源类型
type SourceKind string

const (
	SourceHotel        SourceKind = "hotel"         // hotel_* 静态表
	SourceKankou       SourceKind = "kankou"        // kankou_* 观光静态表
	SourceRestaurant   SourceKind = "restaurant"    // 餐厅/书店静态表
	SourceTouristSpots SourceKind = "tourist_spots" // 远端文档集合
)

// RawSpotRecord 所有来源的原始记录通用结构
type RawSpotRecord struct {
	Source SourceKind  // 来源类型
	ID     string      // 来源内ID
	Data   interface{} // 来源原生数据（HotelRecord/KankouRecord/RestaurantRecord/RemoteSpotDocument）
}

func NewHotelRaw(r HotelRecord) *RawSpotRecord {
	return &RawSpotRecord{Source: SourceHotel, ID: strconv.Itoa(r.ID), Data: r}
}

func NewKankouRaw(r KankouRecord) *RawSpotRecord {
	return &RawSpotRecord{Source: SourceKankou, ID: strconv.Itoa(r.ID), Data: r}
}

func NewRestaurantRaw(r RestaurantRecord) *RawSpotRecord {
	return &RawSpotRecord{Source: SourceRestaurant, ID: r.ID, Data: r}
}

func NewRemoteRaw(d RemoteSpotDocument) *RawSpotRecord {
	return &RawSpotRecord{Source: SourceTouristSpots, ID: d.ID, Data: d}
}

// HotelRecord hotel_* 静态表结构
type HotelRecord struct {
	ID            int           // 数字ID
	Name          LocalizedText // 多语言名称
	Area          string        // 区域
	Rating        *float64      // 评分（可空）
	Reviews       int           // 评论数
	Images        []string      // 图片
	PricePerNight string        // 每晚价格文案
	PriceRange    string        // expensive/moderate/budget
	Stars         int           // 星级
	CheckIn       string        // 入住时间
	CheckOut      string        // 退房时间
	Tags          []string
	Badges        []string
}

// KankouRecord kankou_* 观光静态表结构
type KankouRecord struct {
	ID                 int
	Name               LocalizedText
	Area               string
	Rating             *float64
	Reviews            int
	Images             []string
	Tags               []string
	Badges             []string
	StayRange          string   // 显式停留时长，如 "60-90分"
	AverageStayMinutes *float64 // 平均停留分钟
	CrowdLevel         string   // busy/normal/...
	BestTime           string
	TicketRequired     bool
}

// RestaurantRecord 餐厅/书店静态表结构（名称为单语言字符串）
type RestaurantRecord struct {
	ID           string
	Name         string
	Rating       *float64
	ReviewCount  int
	Image        string
	Cuisine      string
	PriceText    string // 显式价格文案
	PriceRange   string // expensive/moderate/...
	Distance     string
	OpeningHours string
	Tags         []string
	Badges       []string
}

// RemoteSpotDocument tourist_spots 集合中的单个文档（也是缓存 payload 的元素）
type RemoteSpotDocument struct {
	ID                 string    `json:"id"`
	Name               NameField `json:"name"`
	Category           string    `json:"category,omitempty"`
	Location           string    `json:"location,omitempty"`
	Rating             *float64  `json:"rating,omitempty"`
	ReviewCount        *int      `json:"reviewCount,omitempty"`
	Images             []string  `json:"images,omitempty"`
	Tags               []string  `json:"tags,omitempty"`
	Badges             []string  `json:"badges,omitempty"`
	OpeningHours       string    `json:"openingHours,omitempty"`
	PriceRange         string    `json:"priceRange,omitempty"`
	PriceText          string    `json:"priceText,omitempty"`
	Cuisine            string    `json:"cuisine,omitempty"`
	AverageStayMinutes *float64  `json:"averageStayMinutes,omitempty"`
	StayRange          string    `json:"stayRange,omitempty"`
	CrowdLevel         string    `json:"crowdLevel,omitempty"`
	BestTime           string    `json:"bestTime,omitempty"`
	TicketRequired     *bool     `json:"ticketRequired,omitempty"`
	Stars              int       `json:"stars,omitempty"`
	CheckIn            string    `json:"checkIn,omitempty"`
	CheckOut           string    `json:"checkOut,omitempty"`
}
