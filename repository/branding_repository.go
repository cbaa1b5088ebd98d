package repository

import (
	"context"

	"gorm.io/gorm"

	"job_aggregator/model"
)

// BrandingRepository 品牌配置仓储接口
type BrandingRepository interface {
	FindByUserID(ctx context.Context, userID string) (*model.Branding, error)
	FirstOrCreateByUserID(ctx context.Context, userID string, build func() (*model.Branding, error)) (*model.Branding, bool, error)
	Create(ctx context.Context, branding *model.Branding) error
	Count(ctx context.Context) (int64, error)
}

type brandingRepository struct {
	db *gorm.DB
}

func NewBrandingRepository(db *gorm.DB) BrandingRepository {
	return &brandingRepository{db: db}
}

func (r *brandingRepository) FindByUserID(ctx context.Context, userID string) (*model.Branding, error) {
	return findOne[model.Branding](ctx, r.db, byUserID(userID))
}

func (r *brandingRepository) FirstOrCreateByUserID(ctx context.Context, userID string, build func() (*model.Branding, error)) (*model.Branding, bool, error) {
	return firstOrCreate(ctx, r.db, byUserID(userID), build)
}

// Create 直接插入，同一用户的第二条记录会返回 ErrDuplicateKey
func (r *brandingRepository) Create(ctx context.Context, branding *model.Branding) error {
	return translateError(r.db.WithContext(ctx).Create(branding).Error)
}

func (r *brandingRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Branding{}).Count(&count).Error
	return count, err
}

func byUserID(userID string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ?", userID)
	}
}
