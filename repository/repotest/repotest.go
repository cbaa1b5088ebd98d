// Package repotest 为测试提供迁移完毕的内存SQLite数据库
package repotest

import (
	"fmt"
	"strings"
	"testing"

	"gorm.io/gorm"

	"job_aggregator/config"
	"job_aggregator/repository"
)

// SQLiteConfig 每个测试使用独立命名的内存库
func SQLiteConfig(t testing.TB) config.DatabaseConfig {
	name := strings.NewReplacer("/", "_", " ", "_", "#", "_").Replace(t.Name())
	return config.DatabaseConfig{
		Driver:       config.DriverSQLite,
		DSN:          fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", name),
		MaxIdleConns: 1,
		MaxOpenConns: 1,
	}
}

// NewDB 打开并迁移测试数据库，测试结束时自动关闭
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := repository.OpenDatabase(SQLiteConfig(t), config.LogConfig{})
	if err != nil {
		t.Fatalf("打开测试数据库失败: %v", err)
	}
	t.Cleanup(func() {
		_ = repository.CloseDatabase(db)
	})

	if err := repository.AutoMigrate(db); err != nil {
		t.Fatalf("迁移测试数据库失败: %v", err)
	}
	return db
}
