package hostaddr

import (
	"fmt"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"github.com/dep2p/go-hostaddr/config"
	"github.com/dep2p/go-hostaddr/internal/core/netaddr"
	netaddrif "github.com/dep2p/go-hostaddr/pkg/interfaces/netaddr"
)

// buildFxApp 构建 Fx 应用
//
// 加载顺序：
//  1. 配置注入（以及可选的外部名称解析服务）
//  2. netaddr 模块：名称解析后端、Resolver、AddressFormatter
//  3. 用户自定义 Fx 选项
//  4. 组件注入到 Resolver
func buildFxApp(cfg *config.Config, o *options, r *Resolver) (*fx.App, error) {
	// ════════════════════════════════════════════════════════════════════════
	// 1. 配置验证（前置）
	// ════════════════════════════════════════════════════════════════════════
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	modules := []fx.Option{
		fx.Supply(cfg),
	}

	if o.nameResolver != nil {
		modules = append(modules, fx.Provide(fx.Annotate(
			func() netaddrif.NameResolver { return o.nameResolver },
			fx.ResultTags(`name:"name_resolver"`),
		)))
	}

	// ════════════════════════════════════════════════════════════════════════
	// 2. 地址解析模块
	// ════════════════════════════════════════════════════════════════════════
	modules = append(modules, netaddr.Module())

	// ════════════════════════════════════════════════════════════════════════
	// 3. 用户自定义选项
	// ════════════════════════════════════════════════════════════════════════
	if len(o.userFxOptions) > 0 {
		modules = append(modules, o.userFxOptions...)
	}

	// ════════════════════════════════════════════════════════════════════════
	// 4. 组件注入
	// ════════════════════════════════════════════════════════════════════════
	modules = append(modules,
		fx.Populate(&r.resolver, &r.formatter),

		// 禁用 Fx 日志输出（避免干扰用户日志）
		fx.WithLogger(func() fxevent.Logger {
			return &fxevent.ZapLogger{Logger: zap.NewNop()}
		}),
	)

	app := fx.New(modules...)
	if err := app.Err(); err != nil {
		return nil, err
	}
	return app, nil
}
