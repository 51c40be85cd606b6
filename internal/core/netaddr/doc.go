// Package netaddr 提供主机地址解析与规范文本的核心实现
//
// 本模块对应 pkg/interfaces/netaddr 接口包，由四个无状态组件组成：
//
//   - AddressExpander（expand.go）：IPv4 → IPv4 映射 IPv6
//   - PreferenceSelector（preference.go）：从候选列表中选出首选地址
//   - Resolver（resolver.go）：调用名称解析服务并产出 Address128
//   - AddressText（text.go）：地址格式化、host:port 拆分与组合
//
// 名称解析与数值格式化都是外部协作者：
//
//   - SystemResolver（system.go）：基于 net.Resolver
//   - DNSResolver（dnsclient.go）：基于 miekg/dns 直接查询 DNS 服务器
//   - numericFormatter（formatter.go）：基于 net/netip
//
// 所有调用都是同步、一次性的：不缓存、不重试、不做异步解析。
// 调用之间没有共享的可变状态，可被多个 goroutine 并发调用。
package netaddr

import "github.com/dep2p/go-hostaddr/internal/util/logger"

var log = logger.Logger("netaddr")
