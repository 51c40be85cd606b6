package netaddr

import "github.com/dep2p/go-hostaddr/pkg/types"

// ExpandIPv4 将 IPv4 地址转换为 IPv4 映射 IPv6 地址
//
// 映射形式为 ::ffff:a.b.c.d，完整展开为
// 0000:0000:0000:0000:0000:ffff:AABB:CCDD
func ExpandIPv4(ip4 [4]byte) types.Address128 {
	var dst types.Address128
	dst[10] = 0xff
	dst[11] = 0xff
	copy(dst[12:], ip4[:])
	return dst
}
