package model

import (
	"time"
)

// JobSource 职位来源站点
type JobSource struct {
	BaseEntity
	Name          string        `gorm:"column:name"`
	BaseURL       string        `gorm:"column:base_url;size:191;uniqueIndex;not null"`
	IsActive      bool          `gorm:"column:is_active"`
	LastScrapedAt *time.Time    `gorm:"column:last_scraped_at"`
	ScrapeConfig  *ScrapeConfig `gorm:"foreignKey:JobSourceID"` // 与来源一起创建
}

func (JobSource) TableName() string {
	return "job_sources"
}

// ScrapeConfig 抓取配置：描述如何从来源页面提取职位列表
type ScrapeConfig struct {
	BaseEntity
	JobSourceID         string `gorm:"column:job_source_id;size:36;uniqueIndex;not null"`
	JobListSelector     string `gorm:"column:job_list_selector"`
	JobItemSelector     string `gorm:"column:job_item_selector"`
	TitleSelector       string `gorm:"column:title_selector"`
	CompanySelector     string `gorm:"column:company_selector"`
	LocationSelector    string `gorm:"column:location_selector"`
	DescriptionSelector string `gorm:"column:description_selector"`
	LinkSelector        string `gorm:"column:link_selector"`
	HasPagination       bool   `gorm:"column:has_pagination"`
	NextPageSelector    string `gorm:"column:next_page_selector"`
	CrawlDelay          int    `gorm:"column:crawl_delay"` // 毫秒
	MaxPages            int    `gorm:"column:max_pages"`
	RespectRobotsTxt    bool   `gorm:"column:respect_robots_txt"`
}

func (ScrapeConfig) TableName() string {
	return "scrape_configs"
}
