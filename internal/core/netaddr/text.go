package netaddr

import (
	"fmt"
	"strconv"
	"strings"

	netaddrif "github.com/dep2p/go-hostaddr/pkg/interfaces/netaddr"
	"github.com/dep2p/go-hostaddr/pkg/types"
)

// ============================================================================
//                              常量定义
// ============================================================================

const (
	// AddrStrLen 地址文本缓冲区的默认大小（INET6_ADDRSTRLEN）
	AddrStrLen = 46

	// mappedPrefix 部分平台为 IPv4 映射地址输出的前缀
	mappedPrefix = "::ffff:"

	// nullText 无法渲染时写入的哨兵文本
	nullText = "null"
)

// ============================================================================
//                              地址格式化
// ============================================================================

// AddressFormatter 地址格式化器
//
// 格式化从不向调用方报告错误：无法渲染时结果为 "null"（按容量截断），
// 只做显示的调用方因此不需要错误分支。
type AddressFormatter struct {
	numeric netaddrif.NumericFormatter
}

// NewAddressFormatter 创建地址格式化器
//
// numeric 为 nil 时使用内置的数值格式化服务。
func NewAddressFormatter(numeric netaddrif.NumericFormatter) *AddressFormatter {
	if numeric == nil {
		numeric = NewNumericFormatter()
	}
	return &AddressFormatter{numeric: numeric}
}

var defaultFormatter = NewAddressFormatter(nil)

// Format 将原始地址渲染为显示文本
//
// capacity 是目标缓冲区大小（含结束符），至少为 1；结果长度总是小于 capacity。
// IPv6 结果若以 "::ffff:" 开头，去掉该前缀，只保留点分十进制部分。
func (f *AddressFormatter) Format(family types.Family, raw []byte, capacity int) string {
	if capacity < 1 {
		panic("netaddr: format capacity must be at least 1")
	}

	switch family {
	case types.FamilyIPv4, types.FamilyIPv6:
		text, err := f.numeric.FormatNumeric(family, raw, capacity)
		if err == nil {
			if family == types.FamilyIPv6 {
				text = strings.TrimPrefix(text, mappedPrefix)
			}
			return text
		}
		log.Debug("地址格式化失败", "family", family, "err", err)
	}

	return truncate(nullText, capacity-1)
}

// FormatAddress 使用内置数值格式化服务渲染地址，见 AddressFormatter.Format
func FormatAddress(family types.Family, raw []byte, capacity int) string {
	return defaultFormatter.Format(family, raw, capacity)
}

// FormatAddress128 渲染 Address128，IPv4 映射地址显示为点分十进制
func FormatAddress128(a types.Address128) string {
	return defaultFormatter.Format(types.FamilyIPv6, a[:], AddrStrLen)
}

// ============================================================================
//                              host:port 拆分
// ============================================================================

// SplitHostPort 将 host[:port] 拆分为主机和服务两部分
//
// 判定顺序：
//  1. 以 '[' 开头：必须有 ']'，其后紧跟 ':' 或字符串结束；方括号内必须含 ':'。
//  2. 恰好一个 ':'：冒号前为主机，冒号后为服务。
//  3. 其他情况（无冒号，或多个冒号且无方括号）：整个输入都是主机，服务为空。
//
// 不带方括号的多冒号字符串不会被当作 host:port，IPv6 字面量要携带端口必须加方括号。
//
// hostCap 和 servCap 为目标缓冲区大小（含结束符）：长度为 n 的字段需要 n+1。
// 任何截断都视为失败，返回包装 types.ErrFormat 的错误。
func SplitHostPort(s string, hostCap, servCap int) (host, serv string, err error) {
	switch {
	case strings.HasPrefix(s, "["):
		// [IPv6_address]:port 或 [IPv6_address]
		end := strings.IndexByte(s, ']')
		if end < 0 {
			return "", "", formatError(s, "missing ']'")
		}
		rest := s[end+1:]
		if rest != "" && rest[0] != ':' {
			return "", "", formatError(s, "unexpected text after ']'")
		}
		host = s[1:end]
		if !strings.Contains(host, ":") {
			return "", "", formatError(s, "bracketed host is not an IPv6 address")
		}
		if rest != "" {
			serv = rest[1:]
		}

	case strings.Count(s, ":") == 1:
		// IPv4_address:port 或 hostname:port
		i := strings.IndexByte(s, ':')
		host, serv = s[:i], s[i+1:]

	default:
		host = s
	}

	if host == "" {
		return "", "", formatError(s, "empty host")
	}
	if len(host) >= hostCap {
		return "", "", formatError(s, "host exceeds capacity")
	}
	if len(serv) >= servCap {
		return "", "", formatError(s, "service exceeds capacity")
	}
	return host, serv, nil
}

// ============================================================================
//                              host:port 组合
// ============================================================================

// CombineHostPort 组合主机与端口
//
//   - host 为空（缺省）：*:port
//   - host 不含 ':'：host:port
//   - 其他（IPv6 字面量）：[host]:port
//
// 结果按 capacity（含结束符）截断，长度总是小于 capacity；capacity <= 0 时返回空串。
func CombineHostPort(host string, port uint16, capacity int) string {
	p := strconv.FormatUint(uint64(port), 10)

	var text string
	switch {
	case host == "":
		text = "*:" + p
	case !strings.Contains(host, ":"):
		text = host + ":" + p
	default:
		text = "[" + host + "]:" + p
	}
	return truncate(text, capacity-1)
}

// ============================================================================
//                              辅助函数
// ============================================================================

// truncate 截断到最多 n 字节
func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if len(s) > n {
		return s[:n]
	}
	return s
}

func formatError(s, reason string) error {
	return fmt.Errorf("%w: %q: %s", types.ErrFormat, s, reason)
}
