package netaddr

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/fx"

	"github.com/dep2p/go-hostaddr/config"
	netaddrif "github.com/dep2p/go-hostaddr/pkg/interfaces/netaddr"
)

// ============================================================================
//                              Fx 模块定义
// ============================================================================

// ModuleInput 模块依赖参数
type ModuleInput struct {
	fx.In

	Config *config.Config `optional:"true"`

	// Backend 外部注入的名称解析服务，设置后忽略配置中的后端
	Backend netaddrif.NameResolver `name:"name_resolver" optional:"true"`
}

// ModuleOutput 模块提供的结果
type ModuleOutput struct {
	fx.Out

	Resolver        *Resolver
	AddressResolver netaddrif.AddressResolver
	Formatter       *AddressFormatter
}

// Module 返回 Fx 模块配置
//
// 提供:
//   - *Resolver: 主机地址解析器
//   - netaddrif.AddressResolver: 解析器接口
//   - *AddressFormatter: 地址格式化器
func Module() fx.Option {
	return fx.Module("netaddr",
		fx.Provide(ProvideServices),
		fx.Invoke(registerLifecycle),
	)
}

// ProvideServices 提供解析与格式化服务
func ProvideServices(input ModuleInput) (ModuleOutput, error) {
	cfg := input.Config
	if cfg == nil {
		cfg = config.NewConfig()
	}
	if err := cfg.Validate(); err != nil {
		return ModuleOutput{}, fmt.Errorf("netaddr: %w", err)
	}

	backend := input.Backend
	if backend == nil {
		var err error
		backend, err = NewBackend(cfg.Resolver)
		if err != nil {
			return ModuleOutput{}, err
		}
	}

	resolver := NewResolver(backend)
	return ModuleOutput{
		Resolver:        resolver,
		AddressResolver: resolver,
		Formatter:       NewAddressFormatter(nil),
	}, nil
}

// NewBackend 按配置创建名称解析服务
func NewBackend(cfg config.ResolverConfig) (netaddrif.NameResolver, error) {
	timeout := cfg.Timeout.Or(5 * time.Second)

	switch cfg.Backend {
	case config.BackendDNS:
		return NewDNSResolver(DNSConfig{
			Server:  cfg.Server,
			Net:     cfg.Net,
			Timeout: timeout,
		})
	case config.BackendSystem, "":
		return NewSystemResolver(SystemConfig{
			Server:   normalizeOptionalServer(cfg.Server),
			Timeout:  timeout,
			PreferGo: cfg.PreferGo,
		}), nil
	default:
		return nil, fmt.Errorf("netaddr: unknown backend %q", cfg.Backend)
	}
}

func normalizeOptionalServer(server string) string {
	if server == "" {
		return ""
	}
	return normalizeServerAddr(server)
}

// lifecycleInput 生命周期输入参数
type lifecycleInput struct {
	fx.In
	LC       fx.Lifecycle
	Resolver *Resolver
}

// registerLifecycle 注册生命周期钩子
func registerLifecycle(input lifecycleInput) {
	input.LC.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			log.Debug("地址解析模块已启动", "backend", fmt.Sprintf("%T", input.Resolver.Backend()))
			return nil
		},
		OnStop: func(_ context.Context) error {
			log.Debug("地址解析模块已停止")
			return nil
		},
	})
}
