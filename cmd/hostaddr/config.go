package main

import (
	"os"

	"github.com/dep2p/go-hostaddr"
	"github.com/dep2p/go-hostaddr/config"
)

// ============================================================================
//                              配置加载（CLI 专用）
// ============================================================================

// 环境变量
const (
	envBackend = "HOSTADDR_BACKEND"
	envServer  = "HOSTADDR_DNS_SERVER"
)

// loadConfig 加载配置
//
// 优先级：命令行参数 > 环境变量 > 配置文件 > 默认值。
func loadConfig(f cliFlags) (*config.Config, error) {
	cfg := config.NewConfig()
	if f.configFile != "" {
		loaded, err := config.LoadFile(f.configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	applyEnvOverrides(cfg, os.Getenv)

	if f.backend != "" {
		cfg.Resolver.Backend = f.backend
	}
	if f.server != "" {
		cfg.Resolver.Server = f.server
		if f.backend == "" {
			cfg.Resolver.Backend = config.BackendDNS
		}
	}
	if f.timeout > 0 {
		cfg.Resolver.Timeout = config.Duration(f.timeout)
	}

	return config.ValidateAndFix(cfg)
}

// applyEnvOverrides 应用环境变量覆盖配置
//
//   - HOSTADDR_BACKEND: 解析后端
//   - HOSTADDR_DNS_SERVER: DNS 服务器
func applyEnvOverrides(cfg *config.Config, getenv func(string) string) {
	if v := getenv(envBackend); v != "" {
		cfg.Resolver.Backend = v
	}
	if v := getenv(envServer); v != "" {
		cfg.Resolver.Server = v
	}
}

// buildOptions 将配置转换为 hostaddr 选项
func buildOptions(f cliFlags) ([]hostaddr.Option, error) {
	cfg, err := loadConfig(f)
	if err != nil {
		return nil, err
	}
	return []hostaddr.Option{hostaddr.WithConfig(cfg)}, nil
}
