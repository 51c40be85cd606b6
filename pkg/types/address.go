package types

import (
	"net/netip"
	"strings"
)

// ============================================================================
//                              Candidate - 候选地址
// ============================================================================

// Candidate 名称解析返回的一个候选地址
//
// 候选列表中的顺序即解析服务返回的顺序，选择时必须保持。
type Candidate struct {
	// Family 地址族
	Family Family

	// Addr 原始地址字节（IPv4 为 4 字节，IPv6 为 16 字节）
	Addr []byte

	// ScopeID IPv6 作用域标识，0 表示无作用域（全局可路由）
	ScopeID uint32
}

// IsScoped 是否是带作用域的 IPv6 候选
func (c Candidate) IsScoped() bool {
	return c.Family == FamilyIPv6 && c.ScopeID != 0
}

// ============================================================================
//                              Address128 - 统一地址
// ============================================================================

// Address128 统一的 128 位地址
//
// 原生 IPv6 地址按原样存放；IPv4 地址以 IPv4 映射 IPv6 形式存放：
// 字节 0-9 为 0x00，字节 10-11 为 0xff，字节 12-15 为 IPv4 四个字节。
type Address128 [16]byte

// v4InV6Prefix IPv4 映射地址的前 12 字节
var v4InV6Prefix = [12]byte{10: 0xff, 11: 0xff}

// Is4In6 是否是 IPv4 映射地址
func (a Address128) Is4In6() bool {
	return [12]byte(a[:12]) == v4InV6Prefix
}

// IPv4 返回映射地址中的 IPv4 部分
func (a Address128) IPv4() ([4]byte, bool) {
	if !a.Is4In6() {
		return [4]byte{}, false
	}
	return [4]byte(a[12:]), true
}

// NetIP 返回对应的 netip.Addr（总是 16 字节形式）
func (a Address128) NetIP() netip.Addr {
	return netip.AddrFrom16(a)
}

// IsZero 是否是全零地址
func (a Address128) IsZero() bool {
	return a == Address128{}
}

// String 返回地址的显示形式
//
// IPv4 映射地址显示为点分十进制，其余按 IPv6 标准形式显示。
func (a Address128) String() string {
	return strings.TrimPrefix(a.NetIP().String(), "::ffff:")
}
