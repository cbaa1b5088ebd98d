package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BaseEntity 公共字段：UUID主键与时间戳
type BaseEntity struct {
	ID        string    `gorm:"primaryKey;size:36;column:id"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

// BeforeCreate 未指定ID时生成UUID
func (b *BaseEntity) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

// AllEntities 需要自动迁移的全部实体
func AllEntities() []interface{} {
	return []interface{}{
		&User{},
		&Platform{},
		&Branding{},
		&Subscription{},
		&JobSource{},
		&ScrapeConfig{},
		&Job{},
	}
}
