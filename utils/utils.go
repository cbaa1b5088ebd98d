package utils

import (
	"fmt"
	"os"
	"path/filepath"
)

// GetProjectRoot 通过查找go.mod文件来获取项目根目录
func GetProjectRoot() (string, error) {
	return findGoModDir("")
}

// ResolvePath 相对路径优先按当前目录解析，不存在时再按项目根目录解析
func ResolvePath(path string) string {
	if path == "" || filepath.IsAbs(path) || fileExists(path) {
		return path
	}
	root, err := GetProjectRoot()
	if err != nil {
		return path
	}
	candidate := filepath.Join(root, path)
	if fileExists(candidate) {
		return candidate
	}
	return path
}

// findGoModDir 从指定目录开始向上查找包含go.mod文件的目录
func findGoModDir(startDir string) (string, error) {
	if startDir == "" {
		var err error
		startDir, err = os.Getwd()
		if err != nil {
			return "", err
		}
	}

	absDir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	currentDir := absDir
	for {
		goModPath := filepath.Join(currentDir, "go.mod")
		if fileExists(goModPath) {
			return currentDir, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}

		currentDir = parentDir
	}

	return "", fmt.Errorf("未找到go.mod文件")
}

// fileExists 检查文件或目录是否存在
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}
