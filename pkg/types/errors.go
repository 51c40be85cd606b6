// Package types 定义 go-hostaddr 的基础类型
//
// 本文件定义所有公共错误类型。
package types

import "errors"

// ============================================================================
//                              地址错误
// ============================================================================

var (
	// ErrResolution 主机无法解析
	//
	// 解析服务失败（未知主机、无数据、临时错误），或解析成功但没有
	// 可用的候选地址时返回。不携带更细的结构化信息。
	ErrResolution = errors.New("could not resolve host")

	// ErrFormat host[:port] 文本不符合语法，或结果超出调用方给定的容量
	ErrFormat = errors.New("malformed host:port")
)
