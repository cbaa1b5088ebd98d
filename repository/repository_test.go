package repository_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	qt "github.com/frankban/quicktest"
	"gorm.io/gorm"

	"job_aggregator/config"
	"job_aggregator/model"
	"job_aggregator/repository"
	"job_aggregator/repository/repotest"
)

func createUser(c *qt.C, repos *repository.Repositories, email string) *model.User {
	user, created, err := repos.Users.FirstOrCreateByEmail(context.Background(), email, func() (*model.User, error) {
		return &model.User{Email: email, Name: "Test", Role: model.RoleUser}, nil
	})
	c.Assert(err, qt.IsNil)
	c.Assert(created, qt.IsTrue)
	return user
}

func createJobSource(c *qt.C, repos *repository.Repositories, baseURL string) *model.JobSource {
	source, _, err := repos.JobSources.FirstOrCreateByBaseURL(context.Background(), baseURL, func() (*model.JobSource, error) {
		return &model.JobSource{
			Name:     "Indeed",
			BaseURL:  baseURL,
			IsActive: true,
			ScrapeConfig: &model.ScrapeConfig{
				JobListSelector: ".jobsearch-ResultsList",
				HasPagination:   true,
				CrawlDelay:      2000,
				MaxPages:        10,
			},
		}, nil
	})
	c.Assert(err, qt.IsNil)
	return source
}

func TestUserFirstOrCreateByEmailIsIdempotent(t *testing.T) {
	c := qt.New(t)
	ctx := context.Background()
	repos := repository.NewRepositories(repotest.NewDB(t))

	builds := 0
	build := func() (*model.User, error) {
		builds++
		return &model.User{Email: "admin@example.com", Name: "Admin User", Role: model.RoleAdmin}, nil
	}

	first, created, err := repos.Users.FirstOrCreateByEmail(ctx, "admin@example.com", build)
	c.Assert(err, qt.IsNil)
	c.Assert(created, qt.IsTrue)
	c.Assert(first.ID, qt.Not(qt.Equals), "")

	second, created, err := repos.Users.FirstOrCreateByEmail(ctx, "admin@example.com", build)
	c.Assert(err, qt.IsNil)
	c.Assert(created, qt.IsFalse)
	c.Assert(second.ID, qt.Equals, first.ID)
	c.Assert(second.Role, qt.Equals, model.RoleAdmin)
	c.Assert(builds, qt.Equals, 1)

	count, err := repos.Users.Count(ctx)
	c.Assert(err, qt.IsNil)
	c.Assert(count, qt.Equals, int64(1))
}

func TestUserFirstOrCreateBuildError(t *testing.T) {
	c := qt.New(t)
	ctx := context.Background()
	repos := repository.NewRepositories(repotest.NewDB(t))

	buildErr := errors.New("hash failed")
	_, _, err := repos.Users.FirstOrCreateByEmail(ctx, "admin@example.com", func() (*model.User, error) {
		return nil, buildErr
	})
	c.Assert(err, qt.ErrorIs, buildErr)

	user, err := repos.Users.FindByEmail(ctx, "admin@example.com")
	c.Assert(err, qt.IsNil)
	c.Assert(user, qt.IsNil)
}

func TestPlatformUpsertOverwritesDefinition(t *testing.T) {
	c := qt.New(t)
	ctx := context.Background()
	repos := repository.NewRepositories(repotest.NewDB(t))

	first, err := repos.Platforms.Upsert(ctx, &model.Platform{Type: model.PlatformTwitter, Name: "Twitter", IsActive: true})
	c.Assert(err, qt.IsNil)

	second, err := repos.Platforms.Upsert(ctx, &model.Platform{Type: model.PlatformTwitter, Name: "Twitter/X", IsActive: false})
	c.Assert(err, qt.IsNil)
	c.Assert(second.ID, qt.Equals, first.ID)
	c.Assert(second.Name, qt.Equals, "Twitter/X")
	c.Assert(second.IsActive, qt.IsFalse)

	count, err := repos.Platforms.Count(ctx)
	c.Assert(err, qt.IsNil)
	c.Assert(count, qt.Equals, int64(1))
}

func TestPlatformFindAll(t *testing.T) {
	c := qt.New(t)
	ctx := context.Background()
	repos := repository.NewRepositories(repotest.NewDB(t))

	for _, pt := range model.PlatformTypes {
		_, err := repos.Platforms.Upsert(ctx, &model.Platform{Type: pt, Name: string(pt), IsActive: true})
		c.Assert(err, qt.IsNil)
	}

	platforms, err := repos.Platforms.FindAll(ctx)
	c.Assert(err, qt.IsNil)
	c.Assert(platforms, qt.HasLen, len(model.PlatformTypes))

	missing, err := repos.Platforms.FindByType(ctx, "MYSPACE")
	c.Assert(err, qt.IsNil)
	c.Assert(missing, qt.IsNil)
}

func TestBrandingIsOneToOne(t *testing.T) {
	c := qt.New(t)
	ctx := context.Background()
	repos := repository.NewRepositories(repotest.NewDB(t))
	user := createUser(c, repos, "brand@example.com")

	branding, created, err := repos.Brandings.FirstOrCreateByUserID(ctx, user.ID, func() (*model.Branding, error) {
		return &model.Branding{UserID: user.ID, PrimaryColor: "#3B82F6", WatermarkPosition: model.WatermarkBottomRight}, nil
	})
	c.Assert(err, qt.IsNil)
	c.Assert(created, qt.IsTrue)

	again, created, err := repos.Brandings.FirstOrCreateByUserID(ctx, user.ID, func() (*model.Branding, error) {
		return &model.Branding{UserID: user.ID, PrimaryColor: "#000000"}, nil
	})
	c.Assert(err, qt.IsNil)
	c.Assert(created, qt.IsFalse)
	c.Assert(again.ID, qt.Equals, branding.ID)
	c.Assert(again.PrimaryColor, qt.Equals, "#3B82F6")

	err = repos.Brandings.Create(ctx, &model.Branding{UserID: user.ID, PrimaryColor: "#000000"})
	c.Assert(err, qt.ErrorIs, repository.ErrDuplicateKey)

	count, err := repos.Brandings.Count(ctx)
	c.Assert(err, qt.IsNil)
	c.Assert(count, qt.Equals, int64(1))
}

func TestSubscriptionIsOneToOne(t *testing.T) {
	c := qt.New(t)
	ctx := context.Background()
	repos := repository.NewRepositories(repotest.NewDB(t))
	user := createUser(c, repos, "sub@example.com")

	err := repos.Subscriptions.Create(ctx, &model.Subscription{UserID: user.ID, Plan: model.PlanEnterprise, Status: model.SubscriptionActive})
	c.Assert(err, qt.IsNil)

	err = repos.Subscriptions.Create(ctx, &model.Subscription{UserID: user.ID, Plan: model.PlanFree, Status: model.SubscriptionActive})
	c.Assert(err, qt.ErrorIs, repository.ErrDuplicateKey)

	stored, err := repos.Subscriptions.FindByUserID(ctx, user.ID)
	c.Assert(err, qt.IsNil)
	c.Assert(stored.Plan, qt.Equals, model.PlanEnterprise)
}

func TestJobSourceCreatedWithScrapeConfig(t *testing.T) {
	c := qt.New(t)
	ctx := context.Background()
	db := repotest.NewDB(t)
	repos := repository.NewRepositories(db)

	source := createJobSource(c, repos, "https://indeed.com")
	c.Assert(source.ScrapeConfig, qt.IsNotNil)
	c.Assert(source.ScrapeConfig.JobSourceID, qt.Equals, source.ID)

	found, err := repos.JobSources.FindByBaseURL(ctx, "https://indeed.com")
	c.Assert(err, qt.IsNil)
	c.Assert(found.ID, qt.Equals, source.ID)
	c.Assert(found.ScrapeConfig, qt.IsNotNil)
	c.Assert(found.ScrapeConfig.CrawlDelay, qt.Equals, 2000)
	c.Assert(found.ScrapeConfig.HasPagination, qt.IsTrue)

	again, created, err := repos.JobSources.FirstOrCreateByBaseURL(ctx, "https://indeed.com", func() (*model.JobSource, error) {
		c.Fatalf("已存在的来源不应再次构造")
		return nil, nil
	})
	c.Assert(err, qt.IsNil)
	c.Assert(created, qt.IsFalse)
	c.Assert(again.ID, qt.Equals, source.ID)
	c.Assert(again.ScrapeConfig, qt.IsNotNil)

	var configs int64
	c.Assert(db.Model(&model.ScrapeConfig{}).Count(&configs).Error, qt.IsNil)
	c.Assert(configs, qt.Equals, int64(1))
}

func TestJobCreateDuplicateSlug(t *testing.T) {
	c := qt.New(t)
	ctx := context.Background()
	repos := repository.NewRepositories(repotest.NewDB(t))
	user := createUser(c, repos, "jobs@example.com")
	source := createJobSource(c, repos, "https://indeed.com")

	newJob := func() *model.Job {
		salaryMin, salaryMax := 120000, 160000
		return &model.Job{
			Slug:        "senior-software-engineer-123",
			Title:       "Senior Software Engineer",
			SalaryMin:   &salaryMin,
			SalaryMax:   &salaryMax,
			Status:      model.JobApproved,
			Tags:        []string{"engineering", "remote", "senior"},
			JobSourceID: source.ID,
			UserID:      user.ID,
		}
	}

	c.Assert(repos.Jobs.Create(ctx, newJob()), qt.IsNil)

	err := repos.Jobs.Create(ctx, newJob())
	c.Assert(err, qt.ErrorIs, repository.ErrDuplicateSlug)
	c.Assert(err, qt.ErrorIs, repository.ErrDuplicateKey)

	stored, err := repos.Jobs.FindBySlug(ctx, "senior-software-engineer-123")
	c.Assert(err, qt.IsNil)
	c.Assert(*stored.SalaryMin, qt.Equals, 120000)
	c.Assert([]string(stored.Tags), qt.DeepEquals, []string{"engineering", "remote", "senior"})
	c.Assert(stored.JobSourceID, qt.Equals, source.ID)
	c.Assert(stored.UserID, qt.Equals, user.ID)

	count, err := repos.Jobs.Count(ctx)
	c.Assert(err, qt.IsNil)
	c.Assert(count, qt.Equals, int64(1))
}

func TestIsDuplicateKey(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{name: "nil", err: nil, expected: false},
		{name: "gorm translated", err: fmt.Errorf("insert: %w", gorm.ErrDuplicatedKey), expected: true},
		{name: "sqlite", err: errors.New("constraint failed: UNIQUE constraint failed: jobs.slug (2067)"), expected: true},
		{name: "mysql", err: errors.New("Error 1062 (23000): Duplicate entry 'x' for key 'jobs.idx_jobs_slug'"), expected: true},
		{name: "postgres", err: errors.New(`ERROR: duplicate key value violates unique constraint "idx_jobs_slug" (SQLSTATE 23505)`), expected: true},
		{name: "sentinel", err: repository.ErrDuplicateSlug, expected: true},
		{name: "other", err: gorm.ErrRecordNotFound, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := qt.New(t)
			c.Assert(repository.IsDuplicateKey(tt.err), qt.Equals, tt.expected)
		})
	}
}

func TestOpenDatabaseUnsupportedDriver(t *testing.T) {
	c := qt.New(t)

	_, err := repository.OpenDatabase(config.DatabaseConfig{Driver: "oracle", DSN: "x"}, config.LogConfig{})
	c.Assert(err, qt.ErrorMatches, `不支持的数据库驱动: "oracle"`)
}
