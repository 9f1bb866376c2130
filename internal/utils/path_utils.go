package utils

import (
	"os"
	"path/filepath"
)

// AppName 配置根目录下的应用目录名
const AppName = "socterm"

// GetConfigDir 获取跨平台的配置目录
// 优先使用 SOCTERM_CONFIG_HOME
// Windows: %APPDATA%/socterm
// Linux/macOS: $XDG_CONFIG_HOME/socterm 或 ~/.config/socterm
func GetConfigDir() (string, error) {
	if configHome := os.Getenv("SOCTERM_CONFIG_HOME"); configHome != "" {
		return configHome, nil
	}

	if appData := os.Getenv("APPDATA"); appData != "" {
		return filepath.Join(appData, AppName), nil
	}

	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, AppName), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", AppName), nil
}

// GetLogPath 获取诊断日志文件路径
func GetLogPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, AppName+".log"), nil
}

// GetConfigPathForDisplay 获取用于显示的配置路径字符串
func GetConfigPathForDisplay() string {
	if dir, err := GetConfigDir(); err == nil {
		return filepath.Join(dir, "config.yaml")
	}
	return "~/.config/socterm/config.yaml"
}
