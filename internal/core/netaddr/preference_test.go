package netaddr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dep2p/go-hostaddr/pkg/types"
)

func v4(a, b, c, d byte) types.Candidate {
	return types.Candidate{Family: types.FamilyIPv4, Addr: []byte{a, b, c, d}}
}

func v6(last byte, scope uint32) types.Candidate {
	addr := make([]byte, 16)
	addr[0], addr[1] = 0x20, 0x01
	addr[15] = last
	return types.Candidate{Family: types.FamilyIPv6, Addr: addr, ScopeID: scope}
}

func TestSelectPreferred(t *testing.T) {
	tests := []struct {
		name   string
		cands  []types.Candidate
		want   types.Candidate
		wantOK bool
	}{
		{
			name:   "空列表",
			cands:  nil,
			wantOK: false,
		},
		{
			name:   "单个 IPv4",
			cands:  []types.Candidate{v4(10, 0, 0, 1)},
			want:   v4(10, 0, 0, 1),
			wantOK: true,
		},
		{
			name:   "IPv4 在 IPv6 之后仍然优先",
			cands:  []types.Candidate{v6(1, 0), v6(2, 0), v4(10, 0, 0, 1)},
			want:   v4(10, 0, 0, 1),
			wantOK: true,
		},
		{
			name:   "多个 IPv4 取第一个",
			cands:  []types.Candidate{v6(1, 0), v4(10, 0, 0, 1), v4(10, 0, 0, 2)},
			want:   v4(10, 0, 0, 1),
			wantOK: true,
		},
		{
			name:   "只有无作用域 IPv6 取第一个",
			cands:  []types.Candidate{v6(1, 0), v6(2, 0)},
			want:   v6(1, 0),
			wantOK: true,
		},
		{
			name:   "跳过带作用域的 IPv6",
			cands:  []types.Candidate{v6(1, 3), v6(2, 0), v6(3, 0)},
			want:   v6(2, 0),
			wantOK: true,
		},
		{
			name:   "只有带作用域的 IPv6",
			cands:  []types.Candidate{v6(1, 2), v6(2, 7)},
			wantOK: false,
		},
		{
			name:   "带作用域的 IPv6 与 IPv4",
			cands:  []types.Candidate{v6(1, 2), v4(192, 168, 1, 1)},
			want:   v4(192, 168, 1, 1),
			wantOK: true,
		},
		{
			name:   "忽略未知地址族",
			cands:  []types.Candidate{{Family: types.FamilyUnspec, Addr: []byte{1}}, v6(9, 0)},
			want:   v6(9, 0),
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SelectPreferred(tt.cands)
			require.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

// TestSelectPreferred_FirstIPv4AnyPosition IPv4 出现在任意位置都被选中
func TestSelectPreferred_FirstIPv4AnyPosition(t *testing.T) {
	for pos := 0; pos <= 4; pos++ {
		cands := []types.Candidate{v6(1, 0), v6(2, 0), v6(3, 5), v6(4, 0)}
		cands = append(cands[:pos], append([]types.Candidate{v4(1, 2, 3, 4)}, cands[pos:]...)...)

		got, ok := SelectPreferred(cands)
		require.True(t, ok)
		assert.Equal(t, types.FamilyIPv4, got.Family, "position %d", pos)
		assert.Equal(t, []byte{1, 2, 3, 4}, got.Addr)
	}
}
