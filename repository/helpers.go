package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// firstOrCreate 在同一事务内按scope查找记录，不存在时调用build构造并插入
// 返回的bool表示是否新建
func firstOrCreate[T any](ctx context.Context, db *gorm.DB, scope func(*gorm.DB) *gorm.DB, build func() (*T, error)) (*T, bool, error) {
	var (
		result  *T
		created bool
	)

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing T
		err := tx.Scopes(scope).First(&existing).Error
		if err == nil {
			result = &existing
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		record, err := build()
		if err != nil {
			return err
		}
		if err := tx.Create(record).Error; err != nil {
			return err
		}
		result, created = record, true
		return nil
	})
	if err != nil {
		return nil, false, translateError(err)
	}
	return result, created, nil
}

// findOne 查询单条记录，不存在时返回 nil, nil
func findOne[T any](ctx context.Context, db *gorm.DB, scope func(*gorm.DB) *gorm.DB) (*T, error) {
	var record T
	result := db.WithContext(ctx).Scopes(scope).First(&record)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &record, nil
}
