package netaddr

import (
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dep2p/go-hostaddr/pkg/types"
)

func TestExpandIPv4(t *testing.T) {
	got := ExpandIPv4([4]byte{127, 0, 0, 1})

	want := types.Address128{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0xff, 0xff, 127, 0, 0, 1}
	assert.Equal(t, want, got)
	assert.True(t, got.Is4In6())
	assert.Equal(t, netip.MustParseAddr("::ffff:127.0.0.1"), got.NetIP())
}

func TestExpandIPv4_Layout(t *testing.T) {
	inputs := [][4]byte{
		{0, 0, 0, 0},
		{255, 255, 255, 255},
		{10, 1, 2, 3},
		{192, 168, 0, 254},
	}

	for _, in := range inputs {
		got := ExpandIPv4(in)
		for i := 0; i < 10; i++ {
			assert.Zero(t, got[i], "byte %d of %v", i, in)
		}
		assert.Equal(t, byte(0xff), got[10])
		assert.Equal(t, byte(0xff), got[11])
		assert.Equal(t, in[:], got[12:])

		ip4, ok := got.IPv4()
		assert.True(t, ok)
		assert.Equal(t, in, ip4)

		// 与 netip 的映射形式一致
		assert.Equal(t, netip.AddrFrom4(in).As16(), [16]byte(got))
	}
}

func TestAddress128_String(t *testing.T) {
	assert.Equal(t, "127.0.0.1", ExpandIPv4([4]byte{127, 0, 0, 1}).String())
	assert.Equal(t, "::1", types.Address128(netip.IPv6Loopback().As16()).String())

	_, ok := types.Address128(netip.IPv6Loopback().As16()).IPv4()
	assert.False(t, ok)
	assert.True(t, types.Address128{}.IsZero())
}
