// Package netaddr 定义地址解析与格式化的基础接口
//
// 本包只包含接口，不依赖任何实现包。名称解析服务和数值格式化服务
// 都是外部协作者，core 层只通过这里的窄接口使用它们。
package netaddr

import (
	"context"

	"github.com/dep2p/go-hostaddr/pkg/types"
)

// NameResolver 名称解析服务（getaddrinfo 的等价物）
//
// 可以返回零个、一个或多个候选地址；返回顺序在选择首选地址时保持不变。
// 实现不得缓存或重试。
type NameResolver interface {
	// LookupCandidates 解析名称，返回按原始顺序排列的候选地址
	LookupCandidates(ctx context.Context, name string, hints types.Hints) ([]types.Candidate, error)
}

// NumericFormatter 数值格式化服务（getnameinfo NI_NUMERICHOST 的等价物）
//
// 只输出数值形式，从不进行反向解析。
type NumericFormatter interface {
	// FormatNumeric 将原始地址渲染为文本
	//
	// capacity 为目标缓冲区大小（含结束符），渲染结果长度必须小于 capacity，
	// 否则返回错误。
	FormatNumeric(family types.Family, raw []byte, capacity int) (string, error)
}

// AddressResolver 地址解析服务
//
// 将主机名或地址字面量解析为统一的 128 位地址。
type AddressResolver interface {
	// Resolve 解析主机，失败时返回包装 types.ErrResolution 的错误
	Resolve(ctx context.Context, host string) (types.Address128, error)
}
