package config

import "errors"

// ValidateAll 验证整个配置的有效性
//
// 这是 Config.Validate() 的别名，额外处理 nil 配置。
func ValidateAll(c *Config) error {
	if c == nil {
		return errors.New("config is nil")
	}
	return c.Validate()
}

// ValidateAndFix 验证配置并尝试自动修复常见问题
//
// 可修复的问题：
//   - 空的解析后端 -> system
//   - 空的查询协议 -> udp
//   - 负的超时 -> 默认值
//   - 非正的容量 -> 默认值
func ValidateAndFix(c *Config) (*Config, error) {
	if c == nil {
		return NewConfig(), nil
	}

	def := NewConfig()

	if c.Resolver.Backend == "" {
		c.Resolver.Backend = BackendSystem
	}
	if c.Resolver.Net == "" {
		c.Resolver.Net = def.Resolver.Net
	}
	if c.Resolver.Timeout < 0 {
		c.Resolver.Timeout = def.Resolver.Timeout
	}

	if c.Text.HostCapacity < 1 {
		c.Text.HostCapacity = def.Text.HostCapacity
	}
	if c.Text.ServCapacity < 1 {
		c.Text.ServCapacity = def.Text.ServCapacity
	}
	if c.Text.AddrCapacity < 1 {
		c.Text.AddrCapacity = def.Text.AddrCapacity
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}
