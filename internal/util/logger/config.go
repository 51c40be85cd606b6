// Package logger 提供统一的日志接口
//
// 支持通过环境变量配置日志：
//   - HOSTADDR_LOG_LEVEL: 日志级别，可按子系统配置
//     格式: 子系统=级别,子系统=级别,默认级别
//     示例: netaddr=debug,warn
//   - HOSTADDR_LOG_FORMAT: 日志格式 (text 或 json)
//   - HOSTADDR_LOG_ADD_SOURCE: 是否输出源码位置 (true/false)
package logger

import (
	"log/slog"
	"os"
	"strings"
	"sync"
)

// 环境变量名
const (
	envLevel     = "HOSTADDR_LOG_LEVEL"
	envFormat    = "HOSTADDR_LOG_FORMAT"
	envAddSource = "HOSTADDR_LOG_ADD_SOURCE"
)

// LogFormat 日志输出格式
type LogFormat int

const (
	// FormatText 文本格式（默认）
	FormatText LogFormat = iota
	// FormatJSON JSON 格式
	FormatJSON
)

// Config 日志配置
type Config struct {
	// DefaultLevel 默认日志级别
	DefaultLevel slog.Level

	// SubsystemLevels 各子系统的日志级别
	SubsystemLevels map[string]slog.Level

	// Format 输出格式
	Format LogFormat

	// AddSource 是否添加源码位置
	AddSource bool
}

// LevelForSubsystem 获取指定子系统的日志级别
func (c *Config) LevelForSubsystem(subsystem string) slog.Level {
	if level, ok := c.SubsystemLevels[subsystem]; ok {
		return level
	}
	return c.DefaultLevel
}

var (
	configCache *Config
	configOnce  sync.Once
)

// ConfigFromEnv 从环境变量解析配置，结果只解析一次
func ConfigFromEnv() *Config {
	configOnce.Do(func() {
		configCache = parseConfig(os.Getenv)
	})
	return configCache
}

// parseConfig 解析配置
func parseConfig(getenv func(string) string) *Config {
	cfg := &Config{
		DefaultLevel:    slog.LevelInfo,
		SubsystemLevels: make(map[string]slog.Level),
		Format:          FormatText,
	}

	if levelStr := getenv(envLevel); levelStr != "" {
		parseLevelConfig(cfg, levelStr)
	}

	if strings.EqualFold(getenv(envFormat), "json") {
		cfg.Format = FormatJSON
	}

	if v := getenv(envAddSource); v != "" {
		cfg.AddSource = v != "false" && v != "0"
	}

	return cfg
}

// parseLevelConfig 解析日志级别配置字符串
// 格式: subsystem=level,subsystem=level,defaultLevel
func parseLevelConfig(cfg *Config, levelStr string) {
	for _, part := range strings.Split(levelStr, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		subsystem, levelName, found := strings.Cut(part, "=")
		if !found {
			if level, ok := ParseLevel(part); ok {
				cfg.DefaultLevel = level
			}
			continue
		}
		if level, ok := ParseLevel(strings.TrimSpace(levelName)); ok {
			cfg.SubsystemLevels[strings.TrimSpace(subsystem)] = level
		}
	}
}

// ParseLevel 解析日志级别名称
func ParseLevel(name string) (slog.Level, bool) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// ResetConfig 重置配置缓存（仅用于测试）
func ResetConfig() {
	configOnce = sync.Once{}
	configCache = nil
}
