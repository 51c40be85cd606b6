package hostaddr

import (
	"context"
	"syscall"

	"github.com/dep2p/go-hostaddr/internal/core/netaddr"
	netaddrif "github.com/dep2p/go-hostaddr/pkg/interfaces/netaddr"
	"github.com/dep2p/go-hostaddr/pkg/types"
)

// ════════════════════════════════════════════════════════════════════════════
//                              类型导出
// ════════════════════════════════════════════════════════════════════════════

type (
	// Address128 16 字节地址
	Address128 = types.Address128

	// Family 地址族
	Family = types.Family

	// Candidate 名称解析返回的候选地址
	Candidate = types.Candidate

	// Hints 名称解析提示
	Hints = types.Hints

	// NameResolver 名称解析服务接口
	NameResolver = netaddrif.NameResolver
)

// 地址族
const (
	FamilyUnspec = types.FamilyUnspec
	FamilyIPv4   = types.FamilyIPv4
	FamilyIPv6   = types.FamilyIPv6
)

// AddrStrLen 地址文本缓冲区的默认大小
const AddrStrLen = netaddr.AddrStrLen

// ════════════════════════════════════════════════════════════════════════════
//                              便捷函数
// ════════════════════════════════════════════════════════════════════════════

// ResolveToAddress128 使用系统解析器解析主机
//
// IPv4 结果以映射形式返回；没有 IPv4 时取第一个无作用域的 IPv6 地址。
func ResolveToAddress128(ctx context.Context, host string) (Address128, error) {
	return netaddr.ResolveToAddress128(ctx, host)
}

// ExpandIPv4 将 IPv4 地址扩展为 IPv4 映射的 IPv6 地址
func ExpandIPv4(ip4 [4]byte) Address128 {
	return netaddr.ExpandIPv4(ip4)
}

// FormatAddress 将原始地址渲染为显示文本，失败时为 "null"
func FormatAddress(family Family, raw []byte, capacity int) string {
	return netaddr.FormatAddress(family, raw, capacity)
}

// FormatAddress128 渲染 Address128
func FormatAddress128(a Address128) string {
	return netaddr.FormatAddress128(a)
}

// SplitHostPort 将 host[:port] 拆分为主机与服务
func SplitHostPort(s string, hostCap, servCap int) (host, serv string, err error) {
	return netaddr.SplitHostPort(s, hostCap, servCap)
}

// CombineHostPort 组合主机与端口，host 为空时输出 *:port
func CombineHostPort(host string, port uint16, capacity int) string {
	return netaddr.CombineHostPort(host, port, capacity)
}

// CheckSocketHup 检查连接是否已被对端挂断
//
// 以零超时探测一次，不读取数据。连接已关闭或无法取得描述符时返回 true。
// 非 unix 平台只能发现已关闭的连接。
func CheckSocketHup(conn syscall.Conn) bool {
	return netaddr.CheckSocketHup(conn)
}
