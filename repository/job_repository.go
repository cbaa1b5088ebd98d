package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"job_aggregator/model"
)

// JobRepository 职位仓储接口
type JobRepository interface {
	Create(ctx context.Context, job *model.Job) error
	FindBySlug(ctx context.Context, slug string) (*model.Job, error)
	Count(ctx context.Context) (int64, error)
}

type jobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &jobRepository{db: db}
}

// Create 普通插入，slug已存在时返回 ErrDuplicateSlug
func (r *jobRepository) Create(ctx context.Context, job *model.Job) error {
	err := translateError(r.db.WithContext(ctx).Create(job).Error)
	if errors.Is(err, ErrDuplicateKey) {
		return fmt.Errorf("%w: %s", ErrDuplicateSlug, job.Slug)
	}
	return err
}

func (r *jobRepository) FindBySlug(ctx context.Context, slug string) (*model.Job, error) {
	return findOne[model.Job](ctx, r.db, func(db *gorm.DB) *gorm.DB {
		return db.Where("slug = ?", slug)
	})
}

func (r *jobRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Job{}).Count(&count).Error
	return count, err
}
