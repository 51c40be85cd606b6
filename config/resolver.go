package config

import (
	"errors"
	"fmt"
	"time"
)

// 解析后端
const (
	// BackendSystem 使用系统解析器（net.Resolver）
	BackendSystem = "system"

	// BackendDNS 直接查询 DNS 服务器（miekg/dns）
	BackendDNS = "dns"
)

// ResolverConfig 名称解析配置
type ResolverConfig struct {
	// Backend 解析后端："system" 或 "dns"
	Backend string `json:"backend" yaml:"backend"`

	// Server DNS 服务器地址，格式 <host>[:<port>]
	//
	// Backend 为 "dns" 时必需；Backend 为 "system" 时可选，
	// 设置后系统解析器改为向该服务器查询。
	Server string `json:"server,omitempty" yaml:"server,omitempty"`

	// Net 查询 DNS 服务器使用的协议："udp" 或 "tcp"
	Net string `json:"net,omitempty" yaml:"net,omitempty"`

	// Timeout 查询超时
	Timeout Duration `json:"timeout" yaml:"timeout"`

	// PreferGo 强制使用 Go 内置解析器（仅 system 后端）
	PreferGo bool `json:"prefer_go,omitempty" yaml:"prefer_go,omitempty"`
}

// DefaultResolverConfig 返回默认解析配置
func DefaultResolverConfig() ResolverConfig {
	return ResolverConfig{
		Backend: BackendSystem,
		Net:     "udp",
		Timeout: Duration(5 * time.Second),
	}
}

// Validate 验证解析配置
func (c ResolverConfig) Validate() error {
	switch c.Backend {
	case BackendSystem:
	case BackendDNS:
		if c.Server == "" {
			return errors.New("resolver: dns backend requires a server")
		}
	default:
		return fmt.Errorf("resolver: unknown backend %q", c.Backend)
	}

	switch c.Net {
	case "", "udp", "tcp":
	default:
		return fmt.Errorf("resolver: unknown net %q", c.Net)
	}

	if c.Timeout < 0 {
		return errors.New("resolver: timeout must not be negative")
	}
	return nil
}

// WithBackend 设置解析后端
func (c ResolverConfig) WithBackend(backend string) ResolverConfig {
	c.Backend = backend
	return c
}

// WithServer 设置 DNS 服务器
func (c ResolverConfig) WithServer(server string) ResolverConfig {
	c.Server = server
	return c
}

// WithTimeout 设置查询超时
func (c ResolverConfig) WithTimeout(timeout time.Duration) ResolverConfig {
	c.Timeout = Duration(timeout)
	return c
}
