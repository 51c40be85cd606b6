// Package mocks 提供统一的测试 Mock 实现
//
// # 核心 Mock
//
//   - MockNameResolver: 模拟 netaddr.NameResolver，返回预设候选列表或错误
//   - MockNumericFormatter: 模拟 netaddr.NumericFormatter
//
// # 设计原则
//
// 1. 函数式注入: 每个 Mock 都支持通过 XxxFunc 字段注入自定义行为
// 2. 调用记录: 记录调用历史，便于验证测试行为
//
// # 使用示例
//
//	resolver := mocks.NewMockNameResolver(
//	    types.Candidate{Family: types.FamilyIPv4, Addr: []byte{10, 0, 0, 1}},
//	)
//	r := netaddr.NewResolver(resolver)
//	addr, err := r.Resolve(ctx, "node1")
//
//	if len(resolver.LookupCalls) != 1 {
//	    t.Error("expected one lookup")
//	}
package mocks
