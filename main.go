package main

import (
	"context"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"job_aggregator/config"
	"job_aggregator/repository"
	"job_aggregator/service"
	"job_aggregator/utils"
)

type Application struct {
	cfg         *config.GlobalConfig
	db          *gorm.DB
	seedService *service.SeedService
}

// Options 命令行参数
type Options struct {
	ConfigPath    string
	FixturePath   string
	SkipSampleJob bool
	Migrate       *bool // nil 表示沿用配置文件
}

// NewApplication 创建新的应用程序实例
func NewApplication() *Application {
	return &Application{}
}

// InitConfig 加载配置并设置日志
func (app *Application) InitConfig(opts Options) error {
	cfg, err := config.InitConfig(utils.ResolvePath(opts.ConfigPath))
	if err != nil {
		return err
	}
	if opts.FixturePath != "" {
		cfg.Seed.FixtureFile = opts.FixturePath
	}
	if opts.Migrate != nil {
		cfg.Database.AutoMigrate = *opts.Migrate
	}
	if err := setupLogger(cfg.Log); err != nil {
		return err
	}
	app.cfg = cfg
	return nil
}

// InitDatabase 初始化数据库连接
func (app *Application) InitDatabase() error {
	log.Info("初始化数据库连接...")

	db, err := repository.OpenDatabase(app.cfg.Database, app.cfg.Log)
	if err != nil {
		return err
	}
	app.db = db
	log.Infof("✓ %s 数据库连接成功", app.cfg.Database.Driver)

	if !app.cfg.Database.AutoMigrate {
		return nil
	}
	if err := repository.AutoMigrate(db); err != nil {
		return err
	}
	log.Info("✓ 数据库表迁移完成")
	return nil
}

// InitServices 初始化种子数据服务
func (app *Application) InitServices(opts Options) error {
	data, err := config.LoadSeedData(utils.ResolvePath(app.cfg.Seed.FixtureFile))
	if err != nil {
		return err
	}

	app.seedService = service.NewSeedService(
		repository.NewRepositories(app.db),
		utils.NewBcryptHasher(app.cfg.Seed.BcryptCost),
		data,
		service.WithSkipSampleJob(opts.SkipSampleJob),
	)
	return nil
}

// Run 执行种子数据初始化
func (app *Application) Run(ctx context.Context) error {
	_, err := app.seedService.Run(ctx)
	return err
}

// Stop 关闭数据库连接，成功与失败路径都会调用
func (app *Application) Stop() {
	if app.db == nil {
		return
	}
	if err := repository.CloseDatabase(app.db); err != nil {
		log.Warnf("关闭数据库连接失败: %v", err)
		return
	}
	log.Debug("数据库连接已关闭")
}

func setupLogger(cfg config.LogConfig) error {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return fmt.Errorf("日志级别无效: %w", err)
	}
	log.SetLevel(level)
	if cfg.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
	return nil
}

func newRootCommand() *cobra.Command {
	var opts Options

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "初始化职位聚合平台的基础数据",
		Long: `按顺序写入管理员用户、社交平台、默认品牌配置、订阅、示例职位来源与示例职位。

前五步可以重复执行；示例职位是普通插入，重复执行会因slug冲突失败，
可用 --skip-sample-job 跳过。`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("migrate") {
				migrate, _ := cmd.Flags().GetBool("migrate")
				opts.Migrate = &migrate
			}

			app := NewApplication()
			defer app.Stop()

			if err := app.InitConfig(opts); err != nil {
				return err
			}
			if err := app.InitDatabase(); err != nil {
				return err
			}
			if err := app.InitServices(opts); err != nil {
				return err
			}
			return app.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "配置文件路径（默认查找 ./config/config.yaml）")
	cmd.Flags().StringVar(&opts.FixturePath, "fixtures", "", "种子数据文件路径（默认使用内置数据）")
	cmd.Flags().BoolVar(&opts.SkipSampleJob, "skip-sample-job", false, "跳过非幂等的示例职位插入")
	cmd.Flags().Bool("migrate", true, "执行前自动迁移数据表（覆盖 database.auto_migrate）")
	return cmd
}

func main() {
	if err := newRootCommand().ExecuteContext(context.Background()); err != nil {
		log.Errorf("❌ 种子数据初始化失败: %v", err)
		os.Exit(1)
	}
}
