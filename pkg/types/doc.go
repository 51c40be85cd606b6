// Package types 定义 go-hostaddr 的公共数据结构
//
// 这是整个系统的最底层包，不依赖任何其他内部包。
// 所有类型都是纯值类型，只在单次调用内存活，不在调用之间共享。
//
// # 文件组织
//
//   - enums.go    - Family, SockType, Protocol, Hints
//   - address.go  - Candidate, Address128
//   - errors.go   - 公共错误定义
package types
