package utils

import (
	"fmt"
	"regexp"
	"strings"
)

var slugInvalidChars = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify 将标题转换为URL友好的slug，如 "Senior Software Engineer" -> "senior-software-engineer"
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = slugInvalidChars.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// IsSlug 判断字符串是否已经是规范的slug
func IsSlug(s string) bool {
	return s != "" && Slugify(s) == s
}

// FormatSalary 格式化薪资区间用于日志输出
func FormatSalary(salaryMin, salaryMax *int, currency string) string {
	switch {
	case salaryMin != nil && salaryMax != nil:
		return fmt.Sprintf("%s %d-%d", currency, *salaryMin, *salaryMax)
	case salaryMin != nil:
		return fmt.Sprintf("%s %d+", currency, *salaryMin)
	case salaryMax != nil:
		return fmt.Sprintf("%s ≤%d", currency, *salaryMax)
	default:
		return "面议"
	}
}
