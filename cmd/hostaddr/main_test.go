package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dep2p/go-hostaddr"
	"github.com/dep2p/go-hostaddr/config"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(args, &stdout, &stderr)
	return stdout.String(), err
}

func TestRun_Commands(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"解析 IPv4 字面量", []string{"resolve", "127.0.0.1"}, "127.0.0.1 127.0.0.1\n"},
		{"解析 IPv6 字面量", []string{"resolve", "::1"}, "::1 ::1\n"},
		{"拆分方括号形式", []string{"split", "[::1]:1186"}, "::1 1186\n"},
		{"拆分 host:port", []string{"split", "node1:1186"}, "node1 1186\n"},
		{"组合 IPv6", []string{"combine", "::1", "1186"}, "[::1]:1186\n"},
		{"组合缺省主机", []string{"combine", "*", "1186"}, "*:1186\n"},
		{"格式化映射地址", []string{"format", "::ffff:10.0.0.1"}, "10.0.0.1\n"},
		{"格式化 IPv6", []string{"format", "2001:db8:0:0:0:0:0:1"}, "2001:db8::1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCLI(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		usage bool
	}{
		{"缺少命令", nil, true},
		{"未知命令", []string{"ping"}, true},
		{"resolve 缺少参数", []string{"resolve"}, true},
		{"端口无效", []string{"combine", "host", "70000"}, true},
		{"地址无效", []string{"format", "not-an-ip"}, true},
		{"日志级别无效", []string{"-log-level", "loud", "split", "a:1"}, true},
		{"拆分格式错误", []string{"split", "[::1"}, false},
		{"dns 后端缺少服务器", []string{"-backend", "dns", "resolve", "a"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCLI(t, tt.args...)
			require.Error(t, err)
			assert.Equal(t, tt.usage, isUsage(err))
		})
	}
}

func TestRun_SplitFormatError(t *testing.T) {
	_, err := runCLI(t, "split", "[host]:80")
	assert.ErrorIs(t, err, hostaddr.ErrFormat)
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hostaddr.json")
	require.NoError(t, os.WriteFile(path,
		[]byte(`{"resolver":{"backend":"dns","server":"192.0.2.53","timeout":"2s"},"text":{"host_capacity":64}}`),
		0o600))

	cfg, err := loadConfig(cliFlags{configFile: path})
	require.NoError(t, err)
	assert.Equal(t, config.BackendDNS, cfg.Resolver.Backend)
	assert.Equal(t, "192.0.2.53", cfg.Resolver.Server)
	assert.Equal(t, 64, cfg.Text.HostCapacity)

	// 命令行参数覆盖配置文件
	cfg, err = loadConfig(cliFlags{configFile: path, backend: config.BackendSystem})
	require.NoError(t, err)
	assert.Equal(t, config.BackendSystem, cfg.Resolver.Backend)

	_, err = loadConfig(cliFlags{configFile: filepath.Join(dir, "missing.json")})
	assert.Error(t, err)
}

func TestApplyEnvOverrides(t *testing.T) {
	env := map[string]string{
		envBackend: config.BackendDNS,
		envServer:  "192.0.2.1:5353",
	}
	cfg := config.NewConfig()
	applyEnvOverrides(cfg, func(k string) string { return env[k] })

	assert.Equal(t, config.BackendDNS, cfg.Resolver.Backend)
	assert.Equal(t, "192.0.2.1:5353", cfg.Resolver.Server)
}
