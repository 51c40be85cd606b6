package hostaddr

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/fx"

	"github.com/dep2p/go-hostaddr/config"
	netaddrif "github.com/dep2p/go-hostaddr/pkg/interfaces/netaddr"
)

// Option 解析器配置选项函数
type Option func(*options) error

// options 内部选项结构
type options struct {
	// 基础配置（WithConfig）
	config *config.Config

	// 覆盖项
	backend  string
	server   string
	timeout  *time.Duration
	preferGo *bool

	// 外部注入的名称解析服务
	nameResolver netaddrif.NameResolver

	// 用户自定义 Fx 选项
	userFxOptions []fx.Option
}

// toConfig 合并基础配置与覆盖项
func (o *options) toConfig() *config.Config {
	var cfg *config.Config
	if o.config != nil {
		cfg = config.CloneConfig(o.config)
	} else {
		cfg = config.NewConfig()
	}

	if o.backend != "" {
		cfg.Resolver.Backend = o.backend
	}
	if o.server != "" {
		cfg.Resolver.Server = o.server
	}
	if o.timeout != nil {
		cfg.Resolver.Timeout = config.Duration(*o.timeout)
	}
	if o.preferGo != nil {
		cfg.Resolver.PreferGo = *o.preferGo
	}
	return cfg
}

// WithConfig 使用完整配置作为基础，其他选项在其上覆盖
func WithConfig(cfg *config.Config) Option {
	return func(o *options) error {
		if cfg == nil {
			return errors.New("config must not be nil")
		}
		o.config = cfg
		return nil
	}
}

// WithBackend 选择解析后端："system" 或 "dns"
func WithBackend(backend string) Option {
	return func(o *options) error {
		switch backend {
		case config.BackendSystem, config.BackendDNS:
			o.backend = backend
			return nil
		default:
			return fmt.Errorf("unknown backend %q", backend)
		}
	}
}

// WithDNSServer 直接查询指定 DNS 服务器
//
// 未显式选择后端时切换到 "dns" 后端。端口缺省为 53。
func WithDNSServer(server string) Option {
	return func(o *options) error {
		if server == "" {
			return errors.New("dns server must not be empty")
		}
		o.server = server
		if o.backend == "" {
			o.backend = config.BackendDNS
		}
		return nil
	}
}

// WithTimeout 设置单次查询超时
func WithTimeout(timeout time.Duration) Option {
	return func(o *options) error {
		if timeout <= 0 {
			return fmt.Errorf("timeout must be positive, got %s", timeout)
		}
		o.timeout = &timeout
		return nil
	}
}

// WithPreferGo 强制系统后端使用 Go 内置解析器
func WithPreferGo(enable bool) Option {
	return func(o *options) error {
		o.preferGo = &enable
		return nil
	}
}

// WithNameResolver 注入自定义名称解析服务，忽略后端配置
func WithNameResolver(r netaddrif.NameResolver) Option {
	return func(o *options) error {
		if r == nil {
			return errors.New("name resolver must not be nil")
		}
		o.nameResolver = r
		return nil
	}
}

// WithFxOptions 追加自定义 Fx 选项
func WithFxOptions(opts ...fx.Option) Option {
	return func(o *options) error {
		o.userFxOptions = append(o.userFxOptions, opts...)
		return nil
	}
}
