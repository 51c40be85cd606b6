package hostaddr

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/fx"

	"github.com/dep2p/go-hostaddr/config"
	"github.com/dep2p/go-hostaddr/internal/core/netaddr"
	"github.com/dep2p/go-hostaddr/internal/util/logger"
)

var log = logger.Logger("hostaddr")

// ════════════════════════════════════════════════════════════════════════════
//                              Resolver
// ════════════════════════════════════════════════════════════════════════════

// Resolver 可配置的主机地址解析器
//
// 由 New 创建，使用完毕后调用 Close 释放。可被并发使用。
type Resolver struct {
	app       *fx.App
	resolver  *netaddr.Resolver
	formatter *netaddr.AddressFormatter
	text      config.TextConfig

	mu     sync.RWMutex
	closed bool
}

// New 创建并启动解析器
//
// 示例：
//
//	r, err := hostaddr.New(
//	    hostaddr.WithDNSServer("192.0.2.53:53"),
//	    hostaddr.WithTimeout(2*time.Second),
//	)
func New(opts ...Option) (*Resolver, error) {
	o := &options{}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, fmt.Errorf("apply option: %w", err)
		}
	}

	cfg := o.toConfig()
	r := &Resolver{text: cfg.Text}

	app, err := buildFxApp(cfg, o, r)
	if err != nil {
		return nil, fmt.Errorf("build fx app: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), fx.DefaultTimeout)
	defer cancel()
	if err := app.Start(ctx); err != nil {
		return nil, fmt.Errorf("start resolver: %w", err)
	}
	r.app = app

	log.Debug("解析器已创建", "backend", cfg.Resolver.Backend, "server", cfg.Resolver.Server)
	return r, nil
}

// Resolve 将主机名或地址字面量解析为 Address128
//
// 失败时返回包装 ErrResolution 的错误。
func (r *Resolver) Resolve(ctx context.Context, host string) (Address128, error) {
	r.mu.RLock()
	closed := r.closed
	r.mu.RUnlock()

	if closed {
		return Address128{}, fmt.Errorf("%w: %w", ErrResolution, ErrClosed)
	}
	return r.resolver.Resolve(ctx, host)
}

// Format 按配置的地址文本容量渲染地址
func (r *Resolver) Format(a Address128) string {
	return r.formatter.Format(FamilyIPv6, a[:], r.text.AddrCapacity)
}

// SplitHostPort 按配置的主机与服务容量拆分 host[:port]
func (r *Resolver) SplitHostPort(s string) (host, serv string, err error) {
	return netaddr.SplitHostPort(s, r.text.HostCapacity, r.text.ServCapacity)
}

// CombineHostPort 按配置的容量组合主机与端口
func (r *Resolver) CombineHostPort(host string, port uint16) string {
	return netaddr.CombineHostPort(host, port, r.text.CombinedCapacity())
}

// Close 停止解析器，重复调用无副作用
//
// 不等待进行中的解析；之后的 Resolve 返回 ErrClosed。
func (r *Resolver) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil
	}
	r.closed = true

	ctx, cancel := context.WithTimeout(context.Background(), fx.DefaultTimeout)
	defer cancel()
	return r.app.Stop(ctx)
}
