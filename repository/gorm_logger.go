package repository

import (
	"context"
	"errors"
	"time"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const slowQueryThreshold = 200 * time.Millisecond

// gormLogger 将gorm日志转发到logrus
// 查询错误由调用方返回并记录，这里只在开启SQL输出时打印
type gormLogger struct {
	logger  *log.Logger
	level   logger.LogLevel
	showSQL bool
}

// NewGormLogger showSQL为true时以Debug级别输出每条SQL
func NewGormLogger(l *log.Logger, showSQL bool) logger.Interface {
	return &gormLogger{logger: l, level: logger.Warn, showSQL: showSQL}
}

func (g *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	clone := *g
	clone.level = level
	return &clone
}

func (g *gormLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	if g.level >= logger.Info {
		g.logger.WithContext(ctx).Infof(msg, args...)
	}
}

func (g *gormLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	if g.level >= logger.Warn {
		g.logger.WithContext(ctx).Warnf(msg, args...)
	}
}

func (g *gormLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	if g.level >= logger.Error {
		g.logger.WithContext(ctx).Errorf(msg, args...)
	}
}

func (g *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if g.level <= logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	slow := elapsed > slowQueryThreshold && g.level >= logger.Warn
	if !g.showSQL && !slow {
		return
	}

	sql, rows := fc()
	entry := g.logger.WithContext(ctx).WithFields(log.Fields{
		"elapsed": elapsed.String(),
		"rows":    rows,
	})
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		entry = entry.WithError(err)
	}

	if slow {
		entry.Warnf("慢查询: %s", sql)
		return
	}
	entry.Debug(sql)
}
