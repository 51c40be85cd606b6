// Package config 提供统一的配置管理
//
// 本包采用混合配置模式：
//   - 主 Config 结构体嵌入所有子配置
//   - 每个子配置在独立文件中定义
//   - 支持从 JSON 加载配置
//
// 使用示例：
//
//	// 创建默认配置
//	cfg := config.NewConfig()
//	cfg.Resolver.Backend = config.BackendDNS
//	cfg.Resolver.Server = "8.8.8.8:53"
//
//	// 从 JSON 文件加载
//	cfg, err := config.LoadFile("hostaddr.json")
package config

import "go.uber.org/multierr"

// Config 是 go-hostaddr 的完整配置结构
//
// 配置按照功能模块组织：
//   - Resolver: 名称解析服务（system/dns）
//   - Text: 地址文本缓冲区容量
type Config struct {
	// Resolver 名称解析配置
	Resolver ResolverConfig `json:"resolver" yaml:"resolver"`

	// Text 地址文本配置
	Text TextConfig `json:"text" yaml:"text"`
}

// NewConfig 创建默认配置
func NewConfig() *Config {
	return &Config{
		Resolver: DefaultResolverConfig(),
		Text:     DefaultTextConfig(),
	}
}

// Validate 验证配置的有效性
//
// 检查所有子配置，返回合并后的全部错误。
func (c *Config) Validate() error {
	return multierr.Combine(
		c.Resolver.Validate(),
		c.Text.Validate(),
	)
}
