package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/devluplabs/socterm/internal/utils"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// 主题编号，与归档站点的主题表一致
const (
	ThemeNeutral = 0
	ThemeWinter  = 1
	ThemeSummer  = 2
)

type Config struct {
	SheetURL          string      `yaml:"sheet_url"`
	Theme             int         `yaml:"theme"`
	ShowArchived      bool        `yaml:"show_archived"`
	ApplicationsOpen  bool        `yaml:"applications_open"`
	ApplyFormURL      string      `yaml:"apply_form_url"`
	Fetch             FetchConfig `yaml:"fetch"`
	HistoryLimit      int         `yaml:"history_limit"`
	LiveStatsInterval int         `yaml:"live_stats_interval_seconds"`
	LogLevel          string      `yaml:"log_level"`
}

type FetchConfig struct {
	TimeoutSeconds int `yaml:"timeout_seconds"`
	MaxRetries     int `yaml:"max_retries"`
}

// Default 返回配置文件不存在时使用的默认配置
func Default() *Config {
	return &Config{
		Theme:             ThemeWinter,
		Fetch:             DefaultFetchConfig(),
		HistoryLimit:      500,
		LiveStatsInterval: 10,
		LogLevel:          "info",
	}
}

func DefaultFetchConfig() FetchConfig {
	return FetchConfig{
		TimeoutSeconds: 15,
		MaxRetries:     1,
	}
}

// FetchTimeout 整个表格拉取的超时时间，包括重试
func (c *Config) FetchTimeout() time.Duration {
	return time.Duration(c.Fetch.TimeoutSeconds) * time.Second
}

// LiveStatsEvery `stats --live` 的刷新周期
func (c *Config) LiveStatsEvery() time.Duration {
	return time.Duration(c.LiveStatsInterval) * time.Second
}

// LoadConfig 从默认位置加载配置
func LoadConfig() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadConfigFrom(configPath)
}

// LoadConfigFrom 从指定路径加载配置，文件不存在时使用默认配置
func LoadConfigFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}
	config.normalize()

	return config, nil
}

func (c *Config) normalize() {
	if c.Theme < ThemeNeutral || c.Theme > ThemeSummer {
		c.Theme = ThemeWinter
	}
	if c.Fetch.TimeoutSeconds <= 0 {
		c.Fetch.TimeoutSeconds = DefaultFetchConfig().TimeoutSeconds
	}
	if c.Fetch.MaxRetries < 0 {
		c.Fetch.MaxRetries = 0
	}
	if c.HistoryLimit < 0 {
		c.HistoryLimit = 0
	}
	if c.LiveStatsInterval <= 0 {
		c.LiveStatsInterval = 10
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// LoadDotEnv 加载 .env 文件到进程环境变量，不覆盖已有变量
// 文件不存在时不报错
func LoadDotEnv(path string) error {
	if path == "" {
		path = ".env"
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// ApplyEnv 用环境变量覆盖配置
// VITE_* 为归档站点部署时使用的变量名，SOCTERM_* 优先
func (c *Config) ApplyEnv() {
	if v := firstEnv("SOCTERM_SHEET_URL", "VITE_GOOGLE_SHEETS_CSV_URL"); v != "" {
		c.SheetURL = v
	}
	if v := firstEnv("SOCTERM_THEME", "VITE_THEME"); v != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			c.Theme = n
		}
	}
	if v := firstEnv("SOCTERM_SHOW_ARCHIVED", "VITE_SHOW_ARCHIVED"); v != "" {
		c.ShowArchived = v == "1" || strings.EqualFold(v, "true")
	}
	if v := os.Getenv("SOCTERM_APPLY_FORM_URL"); v != "" {
		c.ApplyFormURL = v
	}
	c.normalize()
}

func firstEnv(names ...string) string {
	for _, name := range names {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return ""
}

func SaveConfig(config *Config) error {
	configPath, err := GetConfigPath()
	if err != nil {
		return err
	}
	return SaveConfigTo(config, configPath)
}

func SaveConfigTo(config *Config, configPath string) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// GetConfigPath 获取配置文件路径 <config dir>/config.yaml
func GetConfigPath() (string, error) {
	configDir, err := utils.GetConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(configDir, "config.yaml"), nil
}
