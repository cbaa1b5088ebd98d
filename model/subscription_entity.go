package model

import (
	"time"
)

// SubscriptionPlan 订阅套餐
type SubscriptionPlan string

const (
	PlanFree       SubscriptionPlan = "FREE"
	PlanBasic      SubscriptionPlan = "BASIC"
	PlanPro        SubscriptionPlan = "PRO"
	PlanEnterprise SubscriptionPlan = "ENTERPRISE"
)

func (p SubscriptionPlan) IsValid() bool {
	switch p {
	case PlanFree, PlanBasic, PlanPro, PlanEnterprise:
		return true
	}
	return false
}

// SubscriptionStatus 订阅状态
type SubscriptionStatus string

const (
	SubscriptionActive   SubscriptionStatus = "ACTIVE"
	SubscriptionCanceled SubscriptionStatus = "CANCELED"
	SubscriptionPastDue  SubscriptionStatus = "PAST_DUE"
	SubscriptionTrialing SubscriptionStatus = "TRIALING"
)

func (s SubscriptionStatus) IsValid() bool {
	switch s {
	case SubscriptionActive, SubscriptionCanceled, SubscriptionPastDue, SubscriptionTrialing:
		return true
	}
	return false
}

// Subscription 用户订阅，与用户一对一
type Subscription struct {
	BaseEntity
	UserID            string             `gorm:"column:user_id;size:36;uniqueIndex;not null"`
	User              *User              `gorm:"foreignKey:UserID"`
	Plan              SubscriptionPlan   `gorm:"column:plan;size:16;not null"`
	Status            SubscriptionStatus `gorm:"column:status;size:16;not null"`
	MaxJobSources     int                `gorm:"column:max_job_sources"`     // 可配置的职位来源上限
	MaxDailyPosts     int                `gorm:"column:max_daily_posts"`     // 每日发帖上限
	MaxMonthlyScrapes int                `gorm:"column:max_monthly_scrapes"` // 每月抓取上限
	HasAIFeatures     bool               `gorm:"column:has_ai_features"`
	HasBranding       bool               `gorm:"column:has_branding"`
	CurrentPeriodEnd  *time.Time         `gorm:"column:current_period_end"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}
