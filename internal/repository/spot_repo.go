package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Takanoj0616/trip-app-sub000/internal/interfaces"
	"github.com/Takanoj0616/trip-app-sub000/internal/model"

	"gorm.io/gorm"
)

const defaultFetchLimit = 200

// ErrSpotNotFound 景点文档不存在
var ErrSpotNotFound = errors.New("景点不存在")

// SpotRepository tourist_spots 集合查询接口
type SpotRepository interface {
	// ListTopRated 按评分降序拉取文档（评分为空的排最后）
	ListTopRated(ctx context.Context, limit int) ([]*model.TouristSpot, error)
	// GetByID 按文档ID查询单条
	GetByID(ctx context.Context, id string) (*model.TouristSpot, error)
}

type spotRepository struct {
	db *gorm.DB
}

func NewSpotRepository(db *gorm.DB) SpotRepository {
	return &spotRepository{db: db}
}

func (r *spotRepository) ListTopRated(ctx context.Context, limit int) ([]*model.TouristSpot, error) {
	if limit <= 0 {
		limit = defaultFetchLimit
	}
	var rows []*model.TouristSpot
	if err := r.db.WithContext(ctx).
		Order("rating DESC NULLS LAST").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *spotRepository) GetByID(ctx context.Context, id string) (*model.TouristSpot, error) {
	var row model.TouristSpot
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSpotNotFound
		}
		return nil, err
	}
	return &row, nil
}

// spotSource 把仓储适配为远端景点源（行 → 文档）
type spotSource struct {
	repo SpotRepository
}

func NewSpotSource(repo SpotRepository) interfaces.SpotSource {
	return &spotSource{repo: repo}
}

func (s *spotSource) FetchSpots(ctx context.Context, limit int) ([]model.RemoteSpotDocument, error) {
	rows, err := s.repo.ListTopRated(ctx, limit)
	if err != nil {
		return nil, err
	}
	docs := make([]model.RemoteSpotDocument, 0, len(rows))
	for _, row := range rows {
		docs = append(docs, row.ToDocument())
	}
	return docs, nil
}

// ErrSourceUnavailable 启动时未能连上远端集合
var ErrSourceUnavailable = errors.New("远端景点集合不可用")

// unavailableSource 数据库不可达时的占位源，每次拉取都返回错误，由缓存保留现有数据
type unavailableSource struct {
	cause error
}

func NewUnavailableSource(cause error) interfaces.SpotSource {
	return unavailableSource{cause: cause}
}

func (s unavailableSource) FetchSpots(context.Context, int) ([]model.RemoteSpotDocument, error) {
	return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, s.cause)
}
