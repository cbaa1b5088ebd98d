package repository

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

var (
	// ErrDuplicateKey 违反唯一约束
	ErrDuplicateKey = errors.New("违反唯一约束")
	// ErrDuplicateSlug 职位slug已存在
	ErrDuplicateSlug = fmt.Errorf("职位slug已存在: %w", ErrDuplicateKey)
)

// 未实现错误转换的驱动按错误信息识别
var duplicateKeyMessages = []string{
	"UNIQUE constraint failed",
	"Duplicate entry",
	"duplicate key value",
}

// IsDuplicateKey 判断错误是否为唯一约束冲突
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrDuplicateKey) || errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	for _, m := range duplicateKeyMessages {
		if strings.Contains(msg, m) {
			return true
		}
	}
	return false
}

func translateError(err error) error {
	if err == nil || errors.Is(err, ErrDuplicateKey) {
		return err
	}
	if IsDuplicateKey(err) {
		return fmt.Errorf("%w: %v", ErrDuplicateKey, err)
	}
	return err
}
