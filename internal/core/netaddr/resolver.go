package netaddr

import (
	"context"
	"errors"
	"fmt"
	"net/netip"
	"unicode/utf8"

	"golang.org/x/net/idna"

	netaddrif "github.com/dep2p/go-hostaddr/pkg/interfaces/netaddr"
	"github.com/dep2p/go-hostaddr/pkg/types"
)

// ============================================================================
//                              错误定义
// ============================================================================

var (
	// errEmptyHost 空主机
	errEmptyHost = errors.New("empty host")

	// errNoUsableAddress 解析成功但没有可用的候选地址
	errNoUsableAddress = errors.New("no usable address")

	// errBadCandidate 候选地址字节长度与地址族不符
	errBadCandidate = errors.New("malformed candidate")
)

// ============================================================================
//                              Resolver 实现
// ============================================================================

// Resolver 主机地址解析器
//
// 调用名称解析服务，按首选规则选出一个候选地址，并统一为 Address128。
// Resolver 不持有可变状态，可被并发使用。
type Resolver struct {
	backend netaddrif.NameResolver
}

var _ netaddrif.AddressResolver = (*Resolver)(nil)

// NewResolver 创建解析器
//
// backend 为 nil 时使用系统解析服务。
func NewResolver(backend netaddrif.NameResolver) *Resolver {
	if backend == nil {
		backend = NewSystemResolver(DefaultSystemConfig())
	}
	return &Resolver{backend: backend}
}

// Backend 返回使用的名称解析服务
func (r *Resolver) Backend() netaddrif.NameResolver {
	return r.backend
}

// Resolve 将主机名或地址字面量解析为 Address128
//
// 以下情况返回包装 types.ErrResolution 的错误，且不返回部分结果：
//   - 名称解析服务报告任何失败（未知主机、无数据、临时错误）
//   - 解析成功但没有可用候选（空列表或只有带作用域的 IPv6 地址）
func (r *Resolver) Resolve(ctx context.Context, host string) (types.Address128, error) {
	name, err := normalizeHost(host)
	if err != nil {
		return types.Address128{}, resolutionError(host, err)
	}

	cands, err := r.backend.LookupCandidates(ctx, name, types.DefaultHints())
	if err != nil {
		log.Debug("名称解析失败", "host", host, "err", err)
		return types.Address128{}, resolutionError(host, err)
	}

	pref, ok := SelectPreferred(cands)
	if !ok {
		log.Debug("没有可用的候选地址", "host", host, "candidates", len(cands))
		return types.Address128{}, resolutionError(host, errNoUsableAddress)
	}

	addr, err := candidateToAddress128(pref)
	if err != nil {
		return types.Address128{}, resolutionError(host, err)
	}

	log.Debug("主机已解析",
		"host", host,
		"candidates", len(cands),
		"family", pref.Family,
		"addr", addr)
	return addr, nil
}

// ResolveToAddress128 使用系统解析服务解析主机
func ResolveToAddress128(ctx context.Context, host string) (types.Address128, error) {
	return NewResolver(nil).Resolve(ctx, host)
}

// candidateToAddress128 将选中的候选地址转换为 Address128
func candidateToAddress128(c types.Candidate) (types.Address128, error) {
	switch c.Family {
	case types.FamilyIPv4:
		if len(c.Addr) != 4 {
			return types.Address128{}, errBadCandidate
		}
		return ExpandIPv4([4]byte(c.Addr)), nil
	case types.FamilyIPv6:
		if len(c.Addr) != 16 {
			return types.Address128{}, errBadCandidate
		}
		return types.Address128(c.Addr), nil
	default:
		return types.Address128{}, errBadCandidate
	}
}

// normalizeHost 规范化待解析的主机
//
// 地址字面量原样返回；含非 ASCII 字符的国际化域名转换为 ASCII（punycode）形式。
func normalizeHost(host string) (string, error) {
	if host == "" {
		return "", errEmptyHost
	}
	if _, err := netip.ParseAddr(host); err == nil {
		return host, nil
	}
	if isASCII(host) {
		return host, nil
	}
	ascii, err := idna.Lookup.ToASCII(host)
	if err != nil {
		return "", fmt.Errorf("idna: %w", err)
	}
	return ascii, nil
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// resolutionError 包装为 ErrResolution，内部原因只作为文本附带
func resolutionError(host string, cause error) error {
	return fmt.Errorf("%w: %q: %v", types.ErrResolution, host, cause)
}
