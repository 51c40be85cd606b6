// Package logger 提供 go-hostaddr 的统一日志系统
//
// 基于标准库 log/slog，支持按子系统配置日志级别和结构化日志。
//
// 使用示例:
//
//	var log = logger.Logger("netaddr")
//
//	func foo() {
//	    log.Debug("主机已解析", "host", host, "addr", addr)
//	}
//
// 环境变量配置:
//
//	# 所有模块为 warn，netaddr 为 debug
//	HOSTADDR_LOG_LEVEL=netaddr=debug,warn
//
//	# 使用 JSON 格式输出
//	HOSTADDR_LOG_FORMAT=json
package logger

import (
	"io"
	"log/slog"
	"sync"
)

var (
	// loggers 缓存各子系统的 Logger
	loggers sync.Map // map[string]*slog.Logger

	// handlers 缓存各子系统的 Handler（用于动态调整级别）
	handlers sync.Map // map[string]*subsystemHandler
)

// Logger 获取指定子系统的 Logger
//
// 同一子系统多次调用返回相同的 Logger 实例。
func Logger(subsystem string) *slog.Logger {
	if l, ok := loggers.Load(subsystem); ok {
		return l.(*slog.Logger)
	}

	cfg := ConfigFromEnv()
	h := newHandler(subsystem, cfg.LevelForSubsystem(subsystem), cfg)

	actual, loaded := loggers.LoadOrStore(subsystem, slog.New(h))
	if !loaded {
		handlers.Store(subsystem, h)
	}
	return actual.(*slog.Logger)
}

// SetLevel 动态设置子系统的日志级别
func SetLevel(subsystem string, level slog.Level) {
	if h, ok := handlers.Load(subsystem); ok {
		h.(*subsystemHandler).level.Set(level)
	}
}

// SetGlobalLevel 设置所有已创建子系统的日志级别
func SetGlobalLevel(level slog.Level) {
	handlers.Range(func(_, value any) bool {
		value.(*subsystemHandler).level.Set(level)
		return true
	})
}

// SetOutput 设置全局日志输出目标，对已创建的 Logger 同样生效
func SetOutput(w io.Writer) {
	globalOutputMu.Lock()
	globalOutput = w
	globalOutputMu.Unlock()
}

// Discard 返回丢弃所有日志的 Logger，主要用于测试
func Discard() *slog.Logger {
	return slog.New(discardHandler{})
}
