package netaddr

import (
	"context"
	"math"
	"net"
	"strconv"
	"time"

	netaddrif "github.com/dep2p/go-hostaddr/pkg/interfaces/netaddr"
	"github.com/dep2p/go-hostaddr/pkg/types"
)

// SystemConfig 系统解析服务配置
type SystemConfig struct {
	// Server 自定义 DNS 服务器地址，格式 <ip>:<port>，例如 "8.8.8.8:53"
	// 为空时使用系统默认解析器
	Server string

	// Timeout 连接自定义 DNS 服务器的拨号超时
	Timeout time.Duration

	// PreferGo 强制使用 Go 内置解析器
	PreferGo bool
}

// DefaultSystemConfig 返回默认配置
func DefaultSystemConfig() SystemConfig {
	return SystemConfig{
		Timeout: 5 * time.Second,
	}
}

// SystemResolver 基于 net.Resolver 的名称解析服务
type SystemResolver struct {
	resolver *net.Resolver
}

var _ netaddrif.NameResolver = (*SystemResolver)(nil)

// NewSystemResolver 创建系统解析服务
func NewSystemResolver(config SystemConfig) *SystemResolver {
	r := &SystemResolver{}

	switch {
	case config.Server != "":
		server := config.Server
		timeout := config.Timeout
		r.resolver = &net.Resolver{
			PreferGo: true,
			Dial: func(ctx context.Context, network, _ string) (net.Conn, error) {
				d := net.Dialer{
					Timeout: timeout,
				}
				return d.DialContext(ctx, network, server)
			},
		}
	case config.PreferGo:
		r.resolver = &net.Resolver{PreferGo: true}
	default:
		r.resolver = net.DefaultResolver
	}

	return r
}

// LookupCandidates 实现 netaddrif.NameResolver
//
// 按解析器返回的顺序产出候选地址，地址族的判定见 candidateFromIP。
func (r *SystemResolver) LookupCandidates(ctx context.Context, name string, hints types.Hints) ([]types.Candidate, error) {
	addrs, err := r.resolver.LookupIPAddr(ctx, name)
	if err != nil {
		return nil, err
	}

	cands := make([]types.Candidate, 0, len(addrs))
	for _, a := range addrs {
		c, ok := candidateFromIP(a.IP, a.Zone)
		if !ok {
			continue
		}
		if hints.Family != types.FamilyUnspec && c.Family != hints.Family {
			continue
		}
		cands = append(cands, c)
	}
	return cands, nil
}

// candidateFromIP 将解析结果转换为候选地址
//
// IPv4 映射地址一律标记为 FamilyIPv4：系统解析器以 16 字节返回 A 记录，
// 无法与映射形式的 AAAA 记录区分，两种后端统一按 IPv4 处理。
func candidateFromIP(ip net.IP, zone string) (types.Candidate, bool) {
	if ip4 := ip.To4(); ip4 != nil {
		return types.Candidate{Family: types.FamilyIPv4, Addr: ip4}, true
	}
	if ip16 := ip.To16(); ip16 != nil {
		return types.Candidate{Family: types.FamilyIPv6, Addr: ip16, ScopeID: zoneToScopeID(zone)}, true
	}
	return types.Candidate{}, false
}

// zoneToScopeID 将 IPv6 zone 转换为作用域标识
//
// 数字 zone 直接使用；接口名查找接口索引；无法识别的接口名仍视为带作用域。
func zoneToScopeID(zone string) uint32 {
	if zone == "" {
		return 0
	}
	if id, err := strconv.ParseUint(zone, 10, 32); err == nil {
		return uint32(id)
	}
	if ifi, err := net.InterfaceByName(zone); err == nil && ifi.Index > 0 {
		return uint32(ifi.Index)
	}
	return math.MaxUint32
}
