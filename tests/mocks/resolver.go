package mocks

import (
	"context"
	"sync"

	netaddrif "github.com/dep2p/go-hostaddr/pkg/interfaces/netaddr"
	"github.com/dep2p/go-hostaddr/pkg/types"
)

// LookupCall 记录一次 LookupCandidates 调用
type LookupCall struct {
	Name  string
	Hints types.Hints
}

// MockNameResolver 模拟 netaddr.NameResolver 接口实现
type MockNameResolver struct {
	// 默认返回值
	Candidates []types.Candidate
	Err        error

	// 可覆盖的方法
	LookupCandidatesFunc func(ctx context.Context, name string, hints types.Hints) ([]types.Candidate, error)

	// 调用记录
	mu          sync.Mutex
	LookupCalls []LookupCall
}

var _ netaddrif.NameResolver = (*MockNameResolver)(nil)

// NewMockNameResolver 创建返回固定候选列表的 MockNameResolver
func NewMockNameResolver(cands ...types.Candidate) *MockNameResolver {
	return &MockNameResolver{Candidates: cands}
}

// NewFailingNameResolver 创建总是返回 err 的 MockNameResolver
func NewFailingNameResolver(err error) *MockNameResolver {
	return &MockNameResolver{Err: err}
}

// LookupCandidates 解析名称
func (m *MockNameResolver) LookupCandidates(ctx context.Context, name string, hints types.Hints) ([]types.Candidate, error) {
	m.mu.Lock()
	m.LookupCalls = append(m.LookupCalls, LookupCall{Name: name, Hints: hints})
	m.mu.Unlock()

	if m.LookupCandidatesFunc != nil {
		return m.LookupCandidatesFunc(ctx, name, hints)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	out := make([]types.Candidate, len(m.Candidates))
	copy(out, m.Candidates)
	return out, nil
}

// Calls 返回调用次数
func (m *MockNameResolver) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.LookupCalls)
}

// MockNumericFormatter 模拟 netaddr.NumericFormatter 接口实现
type MockNumericFormatter struct {
	Text string
	Err  error

	FormatNumericFunc func(family types.Family, raw []byte, capacity int) (string, error)

	FormatCalls int
}

var _ netaddrif.NumericFormatter = (*MockNumericFormatter)(nil)

// FormatNumeric 渲染地址
func (m *MockNumericFormatter) FormatNumeric(family types.Family, raw []byte, capacity int) (string, error) {
	m.FormatCalls++
	if m.FormatNumericFunc != nil {
		return m.FormatNumericFunc(family, raw, capacity)
	}
	return m.Text, m.Err
}
