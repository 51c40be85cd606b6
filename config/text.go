package config

import "fmt"

// TextConfig 地址文本配置
//
// 容量均为目标缓冲区大小（含结束符），文本长度必须小于容量。
type TextConfig struct {
	// HostCapacity 主机部分容量
	HostCapacity int `json:"host_capacity" yaml:"host_capacity"`

	// ServCapacity 服务（端口）部分容量
	ServCapacity int `json:"serv_capacity" yaml:"serv_capacity"`

	// AddrCapacity 地址显示文本容量
	AddrCapacity int `json:"addr_capacity" yaml:"addr_capacity"`
}

// DefaultTextConfig 返回默认文本配置
func DefaultTextConfig() TextConfig {
	return TextConfig{
		HostCapacity: 256,
		ServCapacity: 32,
		AddrCapacity: 46,
	}
}

// Validate 验证文本配置
func (c TextConfig) Validate() error {
	if c.HostCapacity < 1 {
		return fmt.Errorf("text: host_capacity must be at least 1, got %d", c.HostCapacity)
	}
	if c.ServCapacity < 1 {
		return fmt.Errorf("text: serv_capacity must be at least 1, got %d", c.ServCapacity)
	}
	if c.AddrCapacity < 1 {
		return fmt.Errorf("text: addr_capacity must be at least 1, got %d", c.AddrCapacity)
	}
	return nil
}

// CombinedCapacity 返回 [host]:port 组合文本所需容量
func (c TextConfig) CombinedCapacity() int {
	// 方括号、冒号和最长 5 位端口
	return c.HostCapacity + 8
}
