package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"job_aggregator/model"
)

// PlatformRepository 社交平台仓储接口
type PlatformRepository interface {
	Upsert(ctx context.Context, platform *model.Platform) (*model.Platform, error)
	FindByType(ctx context.Context, platformType model.PlatformType) (*model.Platform, error)
	FindAll(ctx context.Context) ([]*model.Platform, error)
	Count(ctx context.Context) (int64, error)
}

type platformRepository struct {
	db *gorm.DB
}

func NewPlatformRepository(db *gorm.DB) PlatformRepository {
	return &platformRepository{db: db}
}

// Upsert 按type插入平台，已存在时覆盖名称与启用状态
func (r *platformRepository) Upsert(ctx context.Context, platform *model.Platform) (*model.Platform, error) {
	row := *platform
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "type"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "is_active", "updated_at"}),
		}).
		Create(&row)
	if result.Error != nil {
		return nil, translateError(result.Error)
	}

	// 冲突更新时row.ID并非库中的ID，需要重新查询
	stored, err := r.FindByType(ctx, platform.Type)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, fmt.Errorf("平台写入后未找到: %s", platform.Type)
	}
	return stored, nil
}

func (r *platformRepository) FindByType(ctx context.Context, platformType model.PlatformType) (*model.Platform, error) {
	return findOne[model.Platform](ctx, r.db, func(db *gorm.DB) *gorm.DB {
		return db.Where("type = ?", platformType)
	})
}

func (r *platformRepository) FindAll(ctx context.Context) ([]*model.Platform, error) {
	var platforms []*model.Platform
	result := r.db.WithContext(ctx).Order("type ASC").Find(&platforms)
	if result.Error != nil {
		return nil, result.Error
	}
	return platforms, nil
}

func (r *platformRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Platform{}).Count(&count).Error
	return count, err
}
