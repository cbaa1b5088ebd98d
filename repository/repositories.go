package repository

import (
	"gorm.io/gorm"
)

// Repositories 种子数据用到的全部仓储
type Repositories struct {
	Users         UserRepository
	Platforms     PlatformRepository
	Brandings     BrandingRepository
	Subscriptions SubscriptionRepository
	JobSources    JobSourceRepository
	Jobs          JobRepository
}

func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Users:         NewUserRepository(db),
		Platforms:     NewPlatformRepository(db),
		Brandings:     NewBrandingRepository(db),
		Subscriptions: NewSubscriptionRepository(db),
		JobSources:    NewJobSourceRepository(db),
		Jobs:          NewJobRepository(db),
	}
}
