package repository

import (
	"context"

	"gorm.io/gorm"

	"job_aggregator/model"
)

// UserRepository 用户仓储接口
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByID(ctx context.Context, id string) (*model.User, error)
	FirstOrCreateByEmail(ctx context.Context, email string, build func() (*model.User, error)) (*model.User, bool, error)
	Count(ctx context.Context) (int64, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// FindByEmail 根据邮箱获取用户
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return findOne[model.User](ctx, r.db, func(db *gorm.DB) *gorm.DB {
		return db.Where("email = ?", email)
	})
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	return findOne[model.User](ctx, r.db, func(db *gorm.DB) *gorm.DB {
		return db.Where("id = ?", id)
	})
}

// FirstOrCreateByEmail 邮箱不存在时才调用build创建用户，已存在时不做任何更新
func (r *userRepository) FirstOrCreateByEmail(ctx context.Context, email string, build func() (*model.User, error)) (*model.User, bool, error) {
	return firstOrCreate(ctx, r.db, func(db *gorm.DB) *gorm.DB {
		return db.Where("email = ?", email)
	}, build)
}

func (r *userRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.User{}).Count(&count).Error
	return count, err
}
