package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"job_aggregator/model"
	"job_aggregator/utils"
)

//go:embed seed.yaml
var defaultSeedYAML []byte

// SeedData 种子数据，默认数据内置于 seed.yaml，可通过文件替换
type SeedData struct {
	Admin        AdminSeed        `yaml:"admin"`
	Platforms    []PlatformSeed   `yaml:"platforms"`
	Branding     BrandingSeed     `yaml:"branding"`
	Subscription SubscriptionSeed `yaml:"subscription"`
	JobSource    JobSourceSeed    `yaml:"job_source"`
	SampleJob    SampleJobSeed    `yaml:"sample_job"`
}

// AdminSeed 管理员账号，Password为明文，写库前哈希
type AdminSeed struct {
	Email       string     `yaml:"email"`
	Name        string     `yaml:"name"`
	Password    string     `yaml:"password"`
	Role        model.Role `yaml:"role"`
	CompanyName string     `yaml:"company_name"`
	Website     string     `yaml:"website"`
	TenantID    string     `yaml:"tenant_id"`
}

type PlatformSeed struct {
	Type     model.PlatformType `yaml:"type"`
	Name     string             `yaml:"name"`
	IsActive bool               `yaml:"is_active"`
}

type BrandingSeed struct {
	PrimaryColor      string                  `yaml:"primary_color"`
	SecondaryColor    string                  `yaml:"secondary_color"`
	AccentColor       string                  `yaml:"accent_color"`
	FontFamily        string                  `yaml:"font_family"`
	WatermarkPosition model.WatermarkPosition `yaml:"watermark_position"`
	WatermarkOpacity  float64                 `yaml:"watermark_opacity"`
	ImageStyle        string                  `yaml:"image_style"`
	IncludeLogo       bool                    `yaml:"include_logo"`
	IncludeDomain     bool                    `yaml:"include_domain"`
}

type SubscriptionSeed struct {
	Plan              model.SubscriptionPlan   `yaml:"plan"`
	Status            model.SubscriptionStatus `yaml:"status"`
	MaxJobSources     int                      `yaml:"max_job_sources"`
	MaxDailyPosts     int                      `yaml:"max_daily_posts"`
	MaxMonthlyScrapes int                      `yaml:"max_monthly_scrapes"`
	HasAIFeatures     bool                     `yaml:"has_ai_features"`
	HasBranding       bool                     `yaml:"has_branding"`
}

type JobSourceSeed struct {
	Name         string           `yaml:"name"`
	BaseURL      string           `yaml:"base_url"`
	IsActive     bool             `yaml:"is_active"`
	ScrapeConfig ScrapeConfigSeed `yaml:"scrape_config"`
}

type ScrapeConfigSeed struct {
	JobListSelector     string `yaml:"job_list_selector"`
	JobItemSelector     string `yaml:"job_item_selector"`
	TitleSelector       string `yaml:"title_selector"`
	CompanySelector     string `yaml:"company_selector"`
	LocationSelector    string `yaml:"location_selector"`
	DescriptionSelector string `yaml:"description_selector"`
	LinkSelector        string `yaml:"link_selector"`
	HasPagination       bool   `yaml:"has_pagination"`
	NextPageSelector    string `yaml:"next_page_selector"`
	CrawlDelay          int    `yaml:"crawl_delay"` // 毫秒
	MaxPages            int    `yaml:"max_pages"`
	RespectRobotsTxt    bool   `yaml:"respect_robots_txt"`
}

type SampleJobSeed struct {
	Slug                string                `yaml:"slug"`
	OriginalTitle       string                `yaml:"original_title"`
	OriginalDescription string                `yaml:"original_description"`
	OriginalCompany     string                `yaml:"original_company"`
	OriginalLocation    string                `yaml:"original_location"`
	OriginalURL         string                `yaml:"original_url"`
	Title               string                `yaml:"title"`
	Description         string                `yaml:"description"`
	Company             string                `yaml:"company"`
	Location            string                `yaml:"location"`
	SalaryMin           *int                  `yaml:"salary_min"`
	SalaryMax           *int                  `yaml:"salary_max"`
	SalaryCurrency      string                `yaml:"salary_currency"`
	EmploymentType      model.EmploymentType  `yaml:"employment_type"`
	ExperienceLevel     model.ExperienceLevel `yaml:"experience_level"`
	Status              model.JobStatus       `yaml:"status"`
	IsRemote            bool                  `yaml:"is_remote"`
	Tags                []string              `yaml:"tags"`
}

var hexColorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// DefaultSeedData 返回内置种子数据的新副本
func DefaultSeedData() (*SeedData, error) {
	return ParseSeedData(defaultSeedYAML)
}

// LoadSeedData 从文件加载种子数据，path为空时使用内置数据
func LoadSeedData(path string) (*SeedData, error) {
	if path == "" {
		return DefaultSeedData()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取种子数据文件失败: %w", err)
	}
	return ParseSeedData(data)
}

// ParseSeedData 解析并校验YAML种子数据，未知字段视为错误
func ParseSeedData(data []byte) (*SeedData, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var seed SeedData
	if err := decoder.Decode(&seed); err != nil {
		return nil, fmt.Errorf("解析种子数据失败: %w", err)
	}
	if err := seed.Validate(); err != nil {
		return nil, err
	}
	return &seed, nil
}

// Validate 在访问数据库之前校验种子数据
func (s *SeedData) Validate() error {
	var errs []error
	add := func(format string, args ...interface{}) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	if s.Admin.Email == "" {
		add("admin.email 不能为空")
	}
	if s.Admin.Password == "" {
		add("admin.password 不能为空")
	}
	if !s.Admin.Role.IsValid() {
		add("admin.role 无效: %q", s.Admin.Role)
	}

	seen := make(map[model.PlatformType]bool, len(s.Platforms))
	for i, p := range s.Platforms {
		if !p.Type.IsValid() {
			add("platforms[%d].type 无效: %q", i, p.Type)
		}
		if seen[p.Type] {
			add("platforms[%d].type 重复: %q", i, p.Type)
		}
		seen[p.Type] = true
	}

	colors := map[string]string{
		"primary_color":   s.Branding.PrimaryColor,
		"secondary_color": s.Branding.SecondaryColor,
		"accent_color":    s.Branding.AccentColor,
	}
	for name, color := range colors {
		if !hexColorPattern.MatchString(color) {
			add("branding.%s 不是合法的十六进制颜色: %q", name, color)
		}
	}
	if !s.Branding.WatermarkPosition.IsValid() {
		add("branding.watermark_position 无效: %q", s.Branding.WatermarkPosition)
	}
	if s.Branding.WatermarkOpacity < 0 || s.Branding.WatermarkOpacity > 1 {
		add("branding.watermark_opacity 必须在0到1之间: %v", s.Branding.WatermarkOpacity)
	}

	if !s.Subscription.Plan.IsValid() {
		add("subscription.plan 无效: %q", s.Subscription.Plan)
	}
	if !s.Subscription.Status.IsValid() {
		add("subscription.status 无效: %q", s.Subscription.Status)
	}
	if s.Subscription.MaxJobSources < 0 || s.Subscription.MaxDailyPosts < 0 || s.Subscription.MaxMonthlyScrapes < 0 {
		add("subscription 配额不能为负数")
	}

	if s.JobSource.BaseURL == "" {
		add("job_source.base_url 不能为空")
	}
	if s.JobSource.ScrapeConfig.CrawlDelay < 0 {
		add("job_source.scrape_config.crawl_delay 不能为负数: %d", s.JobSource.ScrapeConfig.CrawlDelay)
	}
	if s.JobSource.ScrapeConfig.MaxPages < 0 {
		add("job_source.scrape_config.max_pages 不能为负数: %d", s.JobSource.ScrapeConfig.MaxPages)
	}

	job := s.SampleJob
	if !utils.IsSlug(job.Slug) {
		add("sample_job.slug 不是合法的slug: %q", job.Slug)
	}
	if job.SalaryMin != nil && job.SalaryMax != nil && *job.SalaryMin > *job.SalaryMax {
		add("sample_job.salary_min(%d) 大于 salary_max(%d)", *job.SalaryMin, *job.SalaryMax)
	}
	if !job.EmploymentType.IsValid() {
		add("sample_job.employment_type 无效: %q", job.EmploymentType)
	}
	if !job.ExperienceLevel.IsValid() {
		add("sample_job.experience_level 无效: %q", job.ExperienceLevel)
	}
	if !job.Status.IsValid() {
		add("sample_job.status 无效: %q", job.Status)
	}

	if len(errs) > 0 {
		return fmt.Errorf("种子数据校验失败: %w", errors.Join(errs...))
	}
	return nil
}
