package model

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// TouristSpot 对应 tourist_spots 表（远端景点文档集合）
type TouristSpot struct {
	ID                 string         `gorm:"column:id;primaryKey;type:varchar(64);comment:文档ID"`
	Name               datatypes.JSON `gorm:"column:name;type:jsonb;not null;comment:名称（字符串或多语言对象）"`
	Category           string         `gorm:"column:category;type:varchar(32);index;comment:来源分类"`
	Location           string         `gorm:"column:location;type:varchar(128);comment:位置"`
	Rating             *float64       `gorm:"column:rating;type:numeric(3,2);index;comment:评分"`
	ReviewCount        *int           `gorm:"column:review_count;type:int;comment:评论数"`
	Images             datatypes.JSON `gorm:"column:images;type:jsonb;comment:图片列表"`
	Tags               datatypes.JSON `gorm:"column:tags;type:jsonb;comment:标签"`
	Badges             datatypes.JSON `gorm:"column:badges;type:jsonb;comment:状态徽章"`
	OpeningHours       string         `gorm:"column:opening_hours;type:varchar(128);comment:营业时间"`
	PriceRange         string         `gorm:"column:price_range;type:varchar(16);comment:价格档位"`
	PriceText          string         `gorm:"column:price_text;type:varchar(64);comment:价格文案"`
	Cuisine            string         `gorm:"column:cuisine;type:varchar(64);comment:菜系"`
	AverageStayMinutes *float64       `gorm:"column:average_stay_minutes;type:numeric(6,1);comment:平均停留分钟"`
	StayRange          string         `gorm:"column:stay_range;type:varchar(32);comment:停留时长文案"`
	CrowdLevel         string         `gorm:"column:crowd_level;type:varchar(16);comment:拥挤度"`
	BestTime           string         `gorm:"column:best_time;type:varchar(64);comment:最佳时间"`
	TicketRequired     *bool          `gorm:"column:ticket_required;type:boolean;comment:是否需要门票"`
	Stars              int            `gorm:"column:stars;type:int;default:0;comment:星级"`
	CheckIn            string         `gorm:"column:check_in;type:varchar(16);comment:入住时间"`
	CheckOut           string         `gorm:"column:check_out;type:varchar(16);comment:退房时间"`
	CreatedAt          time.Time      `gorm:"column:created_at;type:timestamp;default:now();comment:创建时间"`
	UpdatedAt          time.Time      `gorm:"column:updated_at;type:timestamp;default:now();comment:更新时间"`
}

func (TouristSpot) TableName() string { return "tourist_spots" }

// ToDocument 转换为文档结构；JSON 列解析失败时该字段置空，不影响其余字段
func (t *TouristSpot) ToDocument() RemoteSpotDocument {
	doc := RemoteSpotDocument{
		ID:                 t.ID,
		Category:           t.Category,
		Location:           t.Location,
		Rating:             t.Rating,
		ReviewCount:        t.ReviewCount,
		OpeningHours:       t.OpeningHours,
		PriceRange:         t.PriceRange,
		PriceText:          t.PriceText,
		Cuisine:            t.Cuisine,
		AverageStayMinutes: t.AverageStayMinutes,
		StayRange:          t.StayRange,
		CrowdLevel:         t.CrowdLevel,
		BestTime:           t.BestTime,
		TicketRequired:     t.TicketRequired,
		Stars:              t.Stars,
		CheckIn:            t.CheckIn,
		CheckOut:           t.CheckOut,
	}
	if len(t.Name) > 0 {
		_ = json.Unmarshal(t.Name, &doc.Name)
	}
	doc.Images = decodeStrings(t.Images)
	doc.Tags = decodeStrings(t.Tags)
	doc.Badges = decodeStrings(t.Badges)
	return doc
}

func decodeStrings(raw datatypes.JSON) []string {
	if len(raw) == 0 {
		return nil
	}
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil
	}
	return out
}
