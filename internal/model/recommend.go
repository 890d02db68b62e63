package model

// RecommendRequest AI推荐请求体（四个字段均必填）
type RecommendRequest struct {
	Interests []string `json:"interests"`
	Budget    string   `json:"budget"`
	Duration  string   `json:"duration"`
	Area      string   `json:"area"`
}

// RecommendedSpot 推荐行程中的一站：基础景点字段 + 行程字段
type RecommendedSpot struct {
	ID        string    `json:"id"`
	Name      NameField `json:"name"`
	Category  string    `json:"category,omitempty"`
	Rating    *float64  `json:"rating,omitempty"`
	Images    []string  `json:"images,omitempty"`
	Tags      []string  `json:"tags,omitempty"`
	Location  string    `json:"location,omitempty"`
	Order     int       `json:"order"`
	VisitTime string    `json:"visitTime"`
	Duration  string    `json:"duration"`
	Reason    string    `json:"reason"`
	Tips      []string  `json:"tips"`
}

// RecommendResponse 上游返回结构
type RecommendResponse struct {
	Recommendations []RecommendedSpot `json:"recommendations"`
	Reasoning       string            `json:"reasoning"`
	TotalTime       string            `json:"totalTime"`
}
