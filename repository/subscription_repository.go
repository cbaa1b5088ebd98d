package repository

import (
	"context"

	"gorm.io/gorm"

	"job_aggregator/model"
)

// SubscriptionRepository 订阅仓储接口
type SubscriptionRepository interface {
	FindByUserID(ctx context.Context, userID string) (*model.Subscription, error)
	FirstOrCreateByUserID(ctx context.Context, userID string, build func() (*model.Subscription, error)) (*model.Subscription, bool, error)
	Create(ctx context.Context, subscription *model.Subscription) error
	Count(ctx context.Context) (int64, error)
}

type subscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (r *subscriptionRepository) FindByUserID(ctx context.Context, userID string) (*model.Subscription, error) {
	return findOne[model.Subscription](ctx, r.db, byUserID(userID))
}

func (r *subscriptionRepository) FirstOrCreateByUserID(ctx context.Context, userID string, build func() (*model.Subscription, error)) (*model.Subscription, bool, error) {
	return firstOrCreate(ctx, r.db, byUserID(userID), build)
}

func (r *subscriptionRepository) Create(ctx context.Context, subscription *model.Subscription) error {
	return translateError(r.db.WithContext(ctx).Create(subscription).Error)
}

func (r *subscriptionRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Subscription{}).Count(&count).Error
	return count, err
}
