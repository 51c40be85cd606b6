package netaddr

import "github.com/dep2p/go-hostaddr/pkg/types"

// SelectPreferred 从候选列表中选出首选地址
//
// 一个名称解析出多个地址时：
//  1. 使用第一个 IPv4 地址，找到即停止扫描。便于与只支持 IPv4 的旧节点互通。
//  2. 没有 IPv4 时，使用第一个无作用域（ScopeID == 0）的 IPv6 地址。
//  3. 都没有时返回 false。
//
// 带作用域的链路本地 IPv6 地址没有接口上下文就没有意义，永远不会被选中。
func SelectPreferred(cands []types.Candidate) (types.Candidate, bool) {
	var (
		pref  types.Candidate
		found bool
	)
	for _, c := range cands {
		switch c.Family {
		case types.FamilyIPv4:
			return c, true
		case types.FamilyIPv6:
			if !found && c.ScopeID == 0 {
				// 继续寻找 IPv4 地址
				pref = c
				found = true
			}
		}
	}
	return pref, found
}
