package netaddr

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/netip"
	"time"

	"github.com/miekg/dns"

	netaddrif "github.com/dep2p/go-hostaddr/pkg/interfaces/netaddr"
	"github.com/dep2p/go-hostaddr/pkg/types"
)

// ============================================================================
//                              错误定义
// ============================================================================

var (
	// ErrNoDNSServer 未配置 DNS 服务器
	ErrNoDNSServer = errors.New("no DNS server configured")

	// ErrInvalidName 无效的域名
	ErrInvalidName = errors.New("invalid domain name")

	// ErrNoSuchHost 域名不存在（NXDOMAIN）
	ErrNoSuchHost = errors.New("no such host")

	// ErrNoData 域名存在但没有地址记录
	ErrNoData = errors.New("no address records")
)

// ============================================================================
//                              DNSResolver 实现
// ============================================================================

// DNSConfig DNS 解析服务配置
type DNSConfig struct {
	// Server DNS 服务器地址，格式 <host>[:<port>]，端口缺省为 53
	Server string

	// Net 传输协议，"udp" 或 "tcp"，缺省为 "udp"
	Net string

	// Timeout 单次查询超时
	Timeout time.Duration
}

// DNSResolver 直接向 DNS 服务器查询 A/AAAA 记录的名称解析服务
//
// 不读取 hosts 文件，不使用搜索域。A 记录排在 AAAA 记录之前。
type DNSResolver struct {
	client *dns.Client
	server string
}

var _ netaddrif.NameResolver = (*DNSResolver)(nil)

// NewDNSResolver 创建 DNS 解析服务
func NewDNSResolver(config DNSConfig) (*DNSResolver, error) {
	if config.Server == "" {
		return nil, ErrNoDNSServer
	}

	network := config.Net
	if network == "" {
		network = "udp"
	}

	return &DNSResolver{
		client: &dns.Client{
			Net:     network,
			Timeout: config.Timeout,
		},
		server: normalizeServerAddr(config.Server),
	}, nil
}

// Server 返回查询使用的服务器地址
func (r *DNSResolver) Server() string {
	return r.server
}

// LookupCandidates 实现 netaddrif.NameResolver
func (r *DNSResolver) LookupCandidates(ctx context.Context, name string, hints types.Hints) ([]types.Candidate, error) {
	// 地址字面量不需要查询
	if addr, err := netip.ParseAddr(name); err == nil {
		c := candidateFromAddr(addr)
		if hints.Family != types.FamilyUnspec && c.Family != hints.Family {
			return nil, fmt.Errorf("%w: %s", ErrNoData, name)
		}
		return []types.Candidate{c}, nil
	}

	if _, ok := dns.IsDomainName(name); !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	fqdn := dns.Fqdn(name)

	var qtypes []uint16
	switch hints.Family {
	case types.FamilyIPv4:
		qtypes = []uint16{dns.TypeA}
	case types.FamilyIPv6:
		qtypes = []uint16{dns.TypeAAAA}
	default:
		qtypes = []uint16{dns.TypeA, dns.TypeAAAA}
	}

	var cands []types.Candidate
	for _, qtype := range qtypes {
		answer, err := r.query(ctx, fqdn, qtype)
		if err != nil {
			return nil, err
		}
		for _, rr := range answer {
			switch v := rr.(type) {
			case *dns.A:
				if ip4 := v.A.To4(); ip4 != nil {
					cands = append(cands, types.Candidate{Family: types.FamilyIPv4, Addr: ip4})
				}
			case *dns.AAAA:
				// 映射形式的 AAAA 与系统后端一致，按 IPv4 处理
				c, ok := candidateFromIP(v.AAAA, "")
				if ok && (hints.Family == types.FamilyUnspec || c.Family == hints.Family) {
					cands = append(cands, c)
				}
			}
		}
	}

	if len(cands) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoData, name)
	}
	return cands, nil
}

// query 发送一次查询并返回应答区记录
func (r *DNSResolver) query(ctx context.Context, fqdn string, qtype uint16) ([]dns.RR, error) {
	msg := new(dns.Msg)
	msg.SetQuestion(fqdn, qtype)
	msg.RecursionDesired = true

	resp, rtt, err := r.client.ExchangeContext(ctx, msg, r.server)
	if err != nil {
		return nil, fmt.Errorf("query %s %s: %w", dns.TypeToString[qtype], fqdn, err)
	}

	log.Debug("DNS 查询完成",
		"name", fqdn,
		"type", dns.TypeToString[qtype],
		"rcode", dns.RcodeToString[resp.Rcode],
		"answers", len(resp.Answer),
		"rtt", rtt)

	switch resp.Rcode {
	case dns.RcodeSuccess:
		return resp.Answer, nil
	case dns.RcodeNameError:
		return nil, fmt.Errorf("%w: %s", ErrNoSuchHost, fqdn)
	default:
		return nil, fmt.Errorf("query %s %s: server returned %s",
			dns.TypeToString[qtype], fqdn, dns.RcodeToString[resp.Rcode])
	}
}

// candidateFromAddr 将地址字面量转换为候选地址
func candidateFromAddr(addr netip.Addr) types.Candidate {
	if addr.Is4() || addr.Is4In6() {
		ip4 := addr.Unmap().As4()
		return types.Candidate{Family: types.FamilyIPv4, Addr: ip4[:]}
	}
	ip16 := addr.As16()
	return types.Candidate{
		Family:  types.FamilyIPv6,
		Addr:    ip16[:],
		ScopeID: zoneToScopeID(addr.Zone()),
	}
}

// normalizeServerAddr 规范化服务器地址，未指定端口时补 53
func normalizeServerAddr(server string) string {
	if _, _, err := net.SplitHostPort(server); err == nil {
		return server
	}
	if addr, err := netip.ParseAddr(server); err == nil {
		return netip.AddrPortFrom(addr, 53).String()
	}
	return net.JoinHostPort(server, "53")
}
