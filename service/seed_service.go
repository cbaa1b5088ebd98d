package service

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"gorm.io/datatypes"

	"job_aggregator/config"
	"job_aggregator/model"
	"job_aggregator/repository"
	"job_aggregator/utils"
)

// 种子数据步骤，按依赖顺序执行
const (
	StepAdminUser = iota + 1
	StepPlatforms
	StepBranding
	StepSubscription
	StepJobSource
	StepSampleJob
)

var stepNames = map[int]string{
	StepAdminUser:    "管理员用户",
	StepPlatforms:    "社交平台",
	StepBranding:     "默认品牌配置",
	StepSubscription: "管理员订阅",
	StepJobSource:    "示例职位来源",
	StepSampleJob:    "示例职位",
}

// StepError 记录失败的步骤，之前已完成的步骤不会回滚
type StepError struct {
	Step int
	Name string
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("第%d步[%s]失败: %v", e.Step, e.Name, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// SeedResult 一次执行产生或找到的记录
type SeedResult struct {
	Admin        *model.User
	Platforms    []*model.Platform
	Branding     *model.Branding
	Subscription *model.Subscription
	JobSource    *model.JobSource
	SampleJob    *model.Job
	Created      map[int]bool // 步骤 -> 是否新建了记录
}

// SeedService 种子数据服务
type SeedService struct {
	repos         *repository.Repositories
	hasher        utils.PasswordHasher
	data          *config.SeedData
	now           func() time.Time
	skipSampleJob bool
	logger        *log.Logger
}

type SeedOption func(*SeedService)

// WithClock 替换 emailVerified 使用的时钟
func WithClock(now func() time.Time) SeedOption {
	return func(s *SeedService) {
		s.now = now
	}
}

// WithSkipSampleJob 只执行前五步，跳过非幂等的示例职位插入
func WithSkipSampleJob(skip bool) SeedOption {
	return func(s *SeedService) {
		s.skipSampleJob = skip
	}
}

func WithLogger(logger *log.Logger) SeedOption {
	return func(s *SeedService) {
		s.logger = logger
	}
}

func NewSeedService(repos *repository.Repositories, hasher utils.PasswordHasher, data *config.SeedData, opts ...SeedOption) *SeedService {
	s := &SeedService{
		repos:  repos,
		hasher: hasher,
		data:   data,
		now:    time.Now,
		logger: log.StandardLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run 按顺序执行全部步骤，任一步失败立即返回 *StepError
// 示例职位是普通插入，重复执行时第6步会因slug冲突失败（ErrDuplicateSlug）
func (s *SeedService) Run(ctx context.Context) (*SeedResult, error) {
	s.logger.Info("🌱 开始初始化数据库种子数据...")
	result := &SeedResult{Created: make(map[int]bool)}

	admin, created, err := s.EnsureAdminUser(ctx)
	if err != nil {
		return result, stepError(StepAdminUser, err)
	}
	result.Admin, result.Created[StepAdminUser] = admin, created
	s.logger.Infof("✅ 管理员用户: %s%s", admin.Email, createdLabel(created))

	platforms, err := s.EnsurePlatforms(ctx)
	if err != nil {
		return result, stepError(StepPlatforms, err)
	}
	result.Platforms = platforms
	s.logger.Infof("✅ 社交平台: %d 个", len(platforms))

	branding, created, err := s.EnsureBranding(ctx, admin.ID)
	if err != nil {
		return result, stepError(StepBranding, err)
	}
	result.Branding, result.Created[StepBranding] = branding, created
	s.logger.Infof("✅ 默认品牌配置%s", createdLabel(created))

	subscription, created, err := s.EnsureSubscription(ctx, admin.ID)
	if err != nil {
		return result, stepError(StepSubscription, err)
	}
	result.Subscription, result.Created[StepSubscription] = subscription, created
	s.logger.Infof("✅ 订阅: %s%s", subscription.Plan, createdLabel(created))

	source, created, err := s.EnsureJobSource(ctx)
	if err != nil {
		return result, stepError(StepJobSource, err)
	}
	result.JobSource, result.Created[StepJobSource] = source, created
	s.logger.Infof("✅ 职位来源: %s%s", source.Name, createdLabel(created))

	if s.skipSampleJob {
		s.logger.Info("⏭ 跳过示例职位")
	} else {
		job, err := s.InsertSampleJob(ctx, admin.ID, source.ID)
		if err != nil {
			return result, stepError(StepSampleJob, err)
		}
		result.SampleJob, result.Created[StepSampleJob] = job, true
		s.logger.Infof("✅ 示例职位: %s (%s)", job.Title, utils.FormatSalary(job.SalaryMin, job.SalaryMax, job.SalaryCurrency))
	}

	s.logger.Info("✅ 种子数据初始化完成!")
	return result, nil
}

// EnsureAdminUser 按邮箱查找或创建管理员，只有新建时才哈希密码
func (s *SeedService) EnsureAdminUser(ctx context.Context) (*model.User, bool, error) {
	seed := s.data.Admin
	return s.repos.Users.FirstOrCreateByEmail(ctx, seed.Email, func() (*model.User, error) {
		hashed, err := s.hasher.Hash(seed.Password)
		if err != nil {
			return nil, err
		}
		verified := s.now()
		return &model.User{
			Email:         seed.Email,
			Name:          seed.Name,
			Password:      hashed,
			Role:          seed.Role,
			EmailVerified: &verified,
			CompanyName:   seed.CompanyName,
			Website:       seed.Website,
			TenantID:      seed.TenantID,
		}, nil
	})
}

// EnsurePlatforms 逐个upsert平台，已存在时重新应用名称与启用状态
func (s *SeedService) EnsurePlatforms(ctx context.Context) ([]*model.Platform, error) {
	platforms := make([]*model.Platform, 0, len(s.data.Platforms))
	for _, seed := range s.data.Platforms {
		platform, err := s.repos.Platforms.Upsert(ctx, &model.Platform{
			Type:     seed.Type,
			Name:     seed.Name,
			IsActive: seed.IsActive,
		})
		if err != nil {
			return nil, fmt.Errorf("写入平台 %s 失败: %w", seed.Type, err)
		}
		platforms = append(platforms, platform)
	}
	return platforms, nil
}

// EnsureBranding 用户已有品牌配置时保持不变
func (s *SeedService) EnsureBranding(ctx context.Context, userID string) (*model.Branding, bool, error) {
	if userID == "" {
		return nil, false, fmt.Errorf("用户ID为空")
	}
	seed := s.data.Branding
	return s.repos.Brandings.FirstOrCreateByUserID(ctx, userID, func() (*model.Branding, error) {
		return &model.Branding{
			UserID:            userID,
			PrimaryColor:      seed.PrimaryColor,
			SecondaryColor:    seed.SecondaryColor,
			AccentColor:       seed.AccentColor,
			FontFamily:        seed.FontFamily,
			WatermarkPosition: seed.WatermarkPosition,
			WatermarkOpacity:  seed.WatermarkOpacity,
			ImageStyle:        seed.ImageStyle,
			IncludeLogo:       seed.IncludeLogo,
			IncludeDomain:     seed.IncludeDomain,
		}, nil
	})
}

// EnsureSubscription 用户已有订阅时保持不变
func (s *SeedService) EnsureSubscription(ctx context.Context, userID string) (*model.Subscription, bool, error) {
	if userID == "" {
		return nil, false, fmt.Errorf("用户ID为空")
	}
	seed := s.data.Subscription
	return s.repos.Subscriptions.FirstOrCreateByUserID(ctx, userID, func() (*model.Subscription, error) {
		return &model.Subscription{
			UserID:            userID,
			Plan:              seed.Plan,
			Status:            seed.Status,
			MaxJobSources:     seed.MaxJobSources,
			MaxDailyPosts:     seed.MaxDailyPosts,
			MaxMonthlyScrapes: seed.MaxMonthlyScrapes,
			HasAIFeatures:     seed.HasAIFeatures,
			HasBranding:       seed.HasBranding,
		}, nil
	})
}

// EnsureJobSource 来源与其抓取配置在同一事务中创建
func (s *SeedService) EnsureJobSource(ctx context.Context) (*model.JobSource, bool, error) {
	seed := s.data.JobSource
	return s.repos.JobSources.FirstOrCreateByBaseURL(ctx, seed.BaseURL, func() (*model.JobSource, error) {
		sc := seed.ScrapeConfig
		return &model.JobSource{
			Name:     seed.Name,
			BaseURL:  seed.BaseURL,
			IsActive: seed.IsActive,
			ScrapeConfig: &model.ScrapeConfig{
				JobListSelector:     sc.JobListSelector,
				JobItemSelector:     sc.JobItemSelector,
				TitleSelector:       sc.TitleSelector,
				CompanySelector:     sc.CompanySelector,
				LocationSelector:    sc.LocationSelector,
				DescriptionSelector: sc.DescriptionSelector,
				LinkSelector:        sc.LinkSelector,
				HasPagination:       sc.HasPagination,
				NextPageSelector:    sc.NextPageSelector,
				CrawlDelay:          sc.CrawlDelay,
				MaxPages:            sc.MaxPages,
				RespectRobotsTxt:    sc.RespectRobotsTxt,
			},
		}, nil
	})
}

// InsertSampleJob 普通插入，不做存在性检查
func (s *SeedService) InsertSampleJob(ctx context.Context, userID, jobSourceID string) (*model.Job, error) {
	if userID == "" || jobSourceID == "" {
		return nil, fmt.Errorf("用户ID或职位来源ID为空")
	}
	seed := s.data.SampleJob
	job := &model.Job{
		Slug:                seed.Slug,
		OriginalTitle:       seed.OriginalTitle,
		OriginalDescription: seed.OriginalDescription,
		OriginalCompany:     seed.OriginalCompany,
		OriginalLocation:    seed.OriginalLocation,
		OriginalURL:         seed.OriginalURL,
		Title:               seed.Title,
		Description:         seed.Description,
		Company:             seed.Company,
		Location:            seed.Location,
		SalaryMin:           copyInt(seed.SalaryMin),
		SalaryMax:           copyInt(seed.SalaryMax),
		SalaryCurrency:      seed.SalaryCurrency,
		EmploymentType:      seed.EmploymentType,
		ExperienceLevel:     seed.ExperienceLevel,
		Status:              seed.Status,
		IsRemote:            seed.IsRemote,
		Tags:                datatypes.JSONSlice[string](append([]string(nil), seed.Tags...)),
		JobSourceID:         jobSourceID,
		UserID:              userID,
	}
	if err := s.repos.Jobs.Create(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

func stepError(step int, err error) error {
	return &StepError{Step: step, Name: stepNames[step], Err: err}
}

func createdLabel(created bool) string {
	if created {
		return " (新建)"
	}
	return " (已存在)"
}

func copyInt(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
