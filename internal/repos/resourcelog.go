package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/yungbote/teachsmart-backend/internal/logger"
	"github.com/yungbote/teachsmart-backend/internal/types"
)

type ResourceLogRepo interface {
	Create(ctx context.Context, tx *gorm.DB, rows []*types.ResourceLog) ([]*types.ResourceLog, error)
	ListRecent(ctx context.Context, tx *gorm.DB, limit int) ([]*types.ResourceLog, error)
}

type resourceLogRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewResourceLogRepo(db *gorm.DB, baseLog *logger.Logger) ResourceLogRepo {
	repoLog := baseLog.With("repo", "ResourceLogRepo")
	return &resourceLogRepo{db: db, log: repoLog}
}

func (r *resourceLogRepo) Create(ctx context.Context, tx *gorm.DB, rows []*types.ResourceLog) ([]*types.ResourceLog, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(rows) == 0 {
		return []*types.ResourceLog{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *resourceLogRepo) ListRecent(ctx context.Context, tx *gorm.DB, limit int) ([]*types.ResourceLog, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var out []*types.ResourceLog
	if err := transaction.WithContext(ctx).
		Model(&types.ResourceLog{}).
		Order("created_at DESC").
		Limit(limit).
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
