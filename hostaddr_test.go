package hostaddr

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"

	"github.com/dep2p/go-hostaddr/config"
	"github.com/dep2p/go-hostaddr/tests/mocks"
)

func TestResolveToAddress128_Literal(t *testing.T) {
	addr, err := ResolveToAddress128(context.Background(), "127.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, ExpandIPv4([4]byte{127, 0, 0, 1}), addr)
	assert.Equal(t, "127.0.0.1", FormatAddress128(addr))
}

func TestTextHelpers(t *testing.T) {
	host, serv, err := SplitHostPort("[::1]:80", 256, 32)
	require.NoError(t, err)
	assert.Equal(t, "::1", host)
	assert.Equal(t, "80", serv)

	_, _, err = SplitHostPort("[::1", 256, 32)
	assert.ErrorIs(t, err, ErrFormat)

	assert.Equal(t, "[::1]:80", CombineHostPort("::1", 80, 64))
	assert.Equal(t, "*:80", CombineHostPort("", 80, 64))
	assert.Equal(t, "null", FormatAddress(FamilyUnspec, nil, AddrStrLen))
}

// ============================================================================
//                              New 测试
// ============================================================================

func TestNew_Default(t *testing.T) {
	r, err := New()
	require.NoError(t, err)
	defer r.Close()

	addr, err := r.Resolve(context.Background(), "::1")
	require.NoError(t, err)
	assert.Equal(t, "::1", r.Format(addr))
}

func TestNew_WithNameResolver(t *testing.T) {
	backend := mocks.NewMockNameResolver(
		Candidate{Family: FamilyIPv6, Addr: make([]byte, 16), ScopeID: 3},
		Candidate{Family: FamilyIPv4, Addr: []byte{192, 0, 2, 1}},
	)

	r, err := New(WithNameResolver(backend))
	require.NoError(t, err)
	defer r.Close()

	addr, err := r.Resolve(context.Background(), "node1")
	require.NoError(t, err)
	assert.Equal(t, "192.0.2.1", r.Format(addr))

	require.Len(t, backend.LookupCalls, 1)
	assert.Equal(t, "node1", backend.LookupCalls[0].Name)
	assert.Equal(t, FamilyUnspec, backend.LookupCalls[0].Hints.Family)
}

func TestNew_BackendFailure(t *testing.T) {
	r, err := New(WithNameResolver(mocks.NewFailingNameResolver(errors.New("EAI_NONAME"))))
	require.NoError(t, err)
	defer r.Close()

	_, err = r.Resolve(context.Background(), "nowhere")
	assert.ErrorIs(t, err, ErrResolution)
}

func TestNew_TextCapacities(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Text.HostCapacity = 5
	cfg.Text.ServCapacity = 3

	r, err := New(WithConfig(cfg))
	require.NoError(t, err)
	defer r.Close()

	host, serv, err := r.SplitHostPort("node:80")
	require.NoError(t, err)
	assert.Equal(t, "node", host)
	assert.Equal(t, "80", serv)

	_, _, err = r.SplitHostPort("node1:80")
	assert.ErrorIs(t, err, ErrFormat)

	// 组合容量为 HostCapacity + 8
	assert.Equal(t, "[::1]:1186", r.CombineHostPort("::1", 1186))
	assert.Equal(t, "[fe80::1]:11", r.CombineHostPort("fe80::1", 1186))
}

func TestNew_OptionErrors(t *testing.T) {
	tests := []struct {
		name string
		opt  Option
	}{
		{"空配置", WithConfig(nil)},
		{"未知后端", WithBackend("mdns")},
		{"空 DNS 服务器", WithDNSServer("")},
		{"非正超时", WithTimeout(0)},
		{"空名称解析服务", WithNameResolver(nil)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := New(tt.opt)
			assert.Error(t, err)
			assert.Nil(t, r)
		})
	}
}

func TestNew_InvalidConfig(t *testing.T) {
	r, err := New(WithBackend(config.BackendDNS))
	require.Error(t, err)
	assert.Nil(t, r)
	assert.Contains(t, err.Error(), "dns backend requires a server")
}

func TestOptions_ToConfig(t *testing.T) {
	o := &options{}
	require.NoError(t, WithDNSServer("192.0.2.53")(o))
	require.NoError(t, WithTimeout(2*time.Second)(o))
	require.NoError(t, WithPreferGo(true)(o))

	cfg := o.toConfig()
	assert.Equal(t, config.BackendDNS, cfg.Resolver.Backend)
	assert.Equal(t, "192.0.2.53", cfg.Resolver.Server)
	assert.Equal(t, 2*time.Second, cfg.Resolver.Timeout.Duration())
	assert.True(t, cfg.Resolver.PreferGo)

	// 显式选择的后端不被 WithDNSServer 覆盖
	o = &options{}
	require.NoError(t, WithBackend(config.BackendSystem)(o))
	require.NoError(t, WithDNSServer("192.0.2.53")(o))
	assert.Equal(t, config.BackendSystem, o.toConfig().Resolver.Backend)

	// WithConfig 不修改调用方的配置
	base := config.NewConfig()
	o = &options{}
	require.NoError(t, WithConfig(base)(o))
	require.NoError(t, WithDNSServer("192.0.2.53")(o))
	o.toConfig()
	assert.Equal(t, config.BackendSystem, base.Resolver.Backend)
}

func TestResolver_Close(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	require.NoError(t, r.Close())
	require.NoError(t, r.Close())

	_, err = r.Resolve(context.Background(), "127.0.0.1")
	assert.ErrorIs(t, err, ErrResolution)
	assert.ErrorIs(t, err, ErrClosed)
}

func TestNew_WithFxOptions(t *testing.T) {
	var invoked bool
	var seen *config.Config

	r, err := New(
		WithDNSServer("192.0.2.53"),
		WithFxOptions(fx.Invoke(func(cfg *config.Config) {
			invoked = true
			seen = cfg
		})),
	)
	require.NoError(t, err)
	defer r.Close()

	assert.True(t, invoked)
	require.NotNil(t, seen)
	assert.Equal(t, config.BackendDNS, seen.Resolver.Backend)
	assert.Equal(t, "192.0.2.53", seen.Resolver.Server)
}

func TestNew_WithFxOptionsError(t *testing.T) {
	r, err := New(WithFxOptions(fx.Invoke(func() error {
		return errors.New("invoke failed")
	})))
	require.Error(t, err)
	assert.Nil(t, r)
	assert.Contains(t, err.Error(), "invoke failed")
}

// TestResolver_CloseDoesNotWaitForLookup 进行中的解析不阻塞 Close
func TestResolver_CloseDoesNotWaitForLookup(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	backend := &mocks.MockNameResolver{
		LookupCandidatesFunc: func(ctx context.Context, _ string, _ Hints) ([]Candidate, error) {
			close(entered)
			<-release
			return []Candidate{{Family: FamilyIPv4, Addr: []byte{192, 0, 2, 1}}}, nil
		},
	}

	r, err := New(WithNameResolver(backend))
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		_, err := r.Resolve(context.Background(), "slow")
		done <- err
	}()
	<-entered

	closed := make(chan error, 1)
	go func() { closed <- r.Close() }()

	select {
	case err := <-closed:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		close(release)
		t.Fatal("Close 等待了进行中的解析")
	}

	close(release)
	assert.NoError(t, <-done)

	_, err = r.Resolve(context.Background(), "slow")
	assert.ErrorIs(t, err, ErrClosed)
}
