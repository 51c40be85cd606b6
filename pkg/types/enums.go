package types

import "fmt"

// ============================================================================
//                              Family - 地址族
// ============================================================================

// Family 地址族
type Family int

const (
	// FamilyUnspec 未指定地址族（解析时表示 IPv4 与 IPv6 均可）
	FamilyUnspec Family = iota
	// FamilyIPv4 IPv4 地址族
	FamilyIPv4
	// FamilyIPv6 IPv6 地址族
	FamilyIPv6
)

// String 返回地址族的字符串表示
func (f Family) String() string {
	switch f {
	case FamilyUnspec:
		return "unspec"
	case FamilyIPv4:
		return "ipv4"
	case FamilyIPv6:
		return "ipv6"
	default:
		return fmt.Sprintf("family(%d)", int(f))
	}
}

// Network 返回 Go net 包使用的网络名
//
//   - FamilyIPv4 → "ip4"
//   - FamilyIPv6 → "ip6"
//   - 其他 → "ip"
func (f Family) Network() string {
	switch f {
	case FamilyIPv4:
		return "ip4"
	case FamilyIPv6:
		return "ip6"
	default:
		return "ip"
	}
}

// ============================================================================
//                              SockType / Protocol - 解析提示
// ============================================================================

// SockType 套接字类型提示
type SockType int

const (
	// SockAny 不限制套接字类型
	SockAny SockType = iota
	// SockStream 流式套接字
	SockStream
	// SockDatagram 数据报套接字
	SockDatagram
)

// String 返回套接字类型的字符串表示
func (s SockType) String() string {
	switch s {
	case SockStream:
		return "stream"
	case SockDatagram:
		return "datagram"
	default:
		return "any"
	}
}

// Protocol 传输协议提示
type Protocol int

const (
	// ProtoAny 不限制协议
	ProtoAny Protocol = iota
	// ProtoTCP TCP
	ProtoTCP
	// ProtoUDP UDP
	ProtoUDP
)

// String 返回协议的字符串表示
func (p Protocol) String() string {
	switch p {
	case ProtoTCP:
		return "tcp"
	case ProtoUDP:
		return "udp"
	default:
		return "any"
	}
}

// Hints 名称解析提示
//
// 提示只影响解析服务返回哪些记录，不改变候选地址的选择规则。
type Hints struct {
	Family   Family
	SockType SockType
	Protocol Protocol
}

// DefaultHints 返回地址解析使用的默认提示：任意地址族、流式、TCP
func DefaultHints() Hints {
	return Hints{
		Family:   FamilyUnspec,
		SockType: SockStream,
		Protocol: ProtoTCP,
	}
}
