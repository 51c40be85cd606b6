package netaddr

import (
	"errors"
	"fmt"
	"net/netip"

	netaddrif "github.com/dep2p/go-hostaddr/pkg/interfaces/netaddr"
	"github.com/dep2p/go-hostaddr/pkg/types"
)

var (
	// errUnsupportedFamily 不支持的地址族
	errUnsupportedFamily = errors.New("unsupported address family")

	// errTextOverflow 渲染结果超出缓冲区容量
	errTextOverflow = errors.New("address text exceeds capacity")
)

// numericFormatter 基于 net/netip 的数值格式化服务
//
// 只输出数值形式，不做反向解析。IPv4 映射地址按 netip 的惯例输出为
// ::ffff:a.b.c.d，去前缀由 AddressFormatter 负责。
type numericFormatter struct{}

var _ netaddrif.NumericFormatter = numericFormatter{}

// NewNumericFormatter 创建数值格式化服务
func NewNumericFormatter() netaddrif.NumericFormatter {
	return numericFormatter{}
}

// FormatNumeric 实现 netaddrif.NumericFormatter
func (numericFormatter) FormatNumeric(family types.Family, raw []byte, capacity int) (string, error) {
	var addr netip.Addr
	switch family {
	case types.FamilyIPv4:
		if len(raw) != 4 {
			return "", fmt.Errorf("ipv4 address needs 4 bytes, got %d", len(raw))
		}
		addr = netip.AddrFrom4([4]byte(raw))
	case types.FamilyIPv6:
		if len(raw) != 16 {
			return "", fmt.Errorf("ipv6 address needs 16 bytes, got %d", len(raw))
		}
		addr = netip.AddrFrom16([16]byte(raw))
	default:
		return "", fmt.Errorf("%w: %s", errUnsupportedFamily, family)
	}

	text := addr.String()
	if len(text) >= capacity {
		return "", errTextOverflow
	}
	return text, nil
}
