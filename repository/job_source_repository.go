package repository

import (
	"context"

	"gorm.io/gorm"

	"job_aggregator/model"
)

// JobSourceRepository 职位来源仓储接口
type JobSourceRepository interface {
	FindByBaseURL(ctx context.Context, baseURL string) (*model.JobSource, error)
	FindByID(ctx context.Context, id string) (*model.JobSource, error)
	FirstOrCreateByBaseURL(ctx context.Context, baseURL string, build func() (*model.JobSource, error)) (*model.JobSource, bool, error)
	Count(ctx context.Context) (int64, error)
}

type jobSourceRepository struct {
	db *gorm.DB
}

func NewJobSourceRepository(db *gorm.DB) JobSourceRepository {
	return &jobSourceRepository{db: db}
}

func byBaseURL(baseURL string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Preload("ScrapeConfig").Where("base_url = ?", baseURL)
	}
}

// FindByBaseURL 根据站点地址获取来源，同时加载抓取配置
func (r *jobSourceRepository) FindByBaseURL(ctx context.Context, baseURL string) (*model.JobSource, error) {
	return findOne[model.JobSource](ctx, r.db, byBaseURL(baseURL))
}

func (r *jobSourceRepository) FindByID(ctx context.Context, id string) (*model.JobSource, error) {
	return findOne[model.JobSource](ctx, r.db, func(db *gorm.DB) *gorm.DB {
		return db.Preload("ScrapeConfig").Where("id = ?", id)
	})
}

// FirstOrCreateByBaseURL build返回的来源需携带ScrapeConfig，两者在同一事务中插入
func (r *jobSourceRepository) FirstOrCreateByBaseURL(ctx context.Context, baseURL string, build func() (*model.JobSource, error)) (*model.JobSource, bool, error) {
	return firstOrCreate(ctx, r.db, byBaseURL(baseURL), build)
}

func (r *jobSourceRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.JobSource{}).Count(&count).Error
	return count, err
}
