package types

import (
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFamily(t *testing.T) {
	tests := []struct {
		family  Family
		str     string
		network string
	}{
		{FamilyUnspec, "unspec", "ip"},
		{FamilyIPv4, "ipv4", "ip4"},
		{FamilyIPv6, "ipv6", "ip6"},
		{Family(7), "family(7)", "ip"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.str, tt.family.String())
		assert.Equal(t, tt.network, tt.family.Network())
	}
}

func TestDefaultHints(t *testing.T) {
	h := DefaultHints()
	assert.Equal(t, FamilyUnspec, h.Family)
	assert.Equal(t, SockStream, h.SockType)
	assert.Equal(t, ProtoTCP, h.Protocol)
	assert.Equal(t, "stream", h.SockType.String())
	assert.Equal(t, "tcp", h.Protocol.String())
}

func TestCandidate_IsScoped(t *testing.T) {
	assert.False(t, Candidate{Family: FamilyIPv4, ScopeID: 2}.IsScoped())
	assert.False(t, Candidate{Family: FamilyIPv6}.IsScoped())
	assert.True(t, Candidate{Family: FamilyIPv6, ScopeID: 2}.IsScoped())
}

func TestAddress128(t *testing.T) {
	mapped := Address128(netip.MustParseAddr("::ffff:192.0.2.7").As16())
	assert.True(t, mapped.Is4In6())
	ip4, ok := mapped.IPv4()
	assert.True(t, ok)
	assert.Equal(t, [4]byte{192, 0, 2, 7}, ip4)
	assert.Equal(t, "192.0.2.7", mapped.String())

	native := Address128(netip.MustParseAddr("2001:db8::1").As16())
	assert.False(t, native.Is4In6())
	_, ok = native.IPv4()
	assert.False(t, ok)
	assert.Equal(t, "2001:db8::1", native.String())
	assert.Equal(t, netip.MustParseAddr("2001:db8::1"), native.NetIP())

	assert.True(t, Address128{}.IsZero())
	assert.False(t, native.IsZero())
	assert.Equal(t, "::", Address128{}.String())
}
