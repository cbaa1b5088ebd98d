package model

import (
	"time"
)

// Role 用户角色
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleUser
}

// User 用户实体类
type User struct {
	BaseEntity
	Email         string     `gorm:"column:email;size:191;uniqueIndex;not null"`
	Name          string     `gorm:"column:name"`
	Password      string     `gorm:"column:password"` // bcrypt哈希
	Role          Role       `gorm:"column:role;size:16;not null"`
	EmailVerified *time.Time `gorm:"column:email_verified"` // 为空表示未验证
	CompanyName   string     `gorm:"column:company_name"`
	Website       string     `gorm:"column:website"`
	TenantID      string     `gorm:"column:tenant_id;size:64;index"` // 租户隔离标识
}

func (User) TableName() string {
	return "users"
}
