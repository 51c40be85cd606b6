//go:build linux

package hostaddr

import (
	"net"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func connPair(t *testing.T) (net.Conn, net.Conn) {
	t.Helper()

	fds, err := unix.Socketpair(unix.AF_UNIX, unix.SOCK_STREAM, 0)
	require.NoError(t, err)

	conn := func(fd int, name string) net.Conn {
		f := os.NewFile(uintptr(fd), name)
		defer f.Close()
		c, err := net.FileConn(f)
		require.NoError(t, err)
		return c
	}
	return conn(fds[0], "local"), conn(fds[1], "peer")
}

func TestCheckSocketHup(t *testing.T) {
	local, peer := connPair(t)
	defer local.Close()

	assert.False(t, CheckSocketHup(local.(syscall.Conn)))

	// 对端写入的数据未被读取时连接仍然存活
	_, err := peer.Write([]byte("ping"))
	require.NoError(t, err)
	assert.False(t, CheckSocketHup(local.(syscall.Conn)))

	require.NoError(t, peer.Close())
	assert.True(t, CheckSocketHup(local.(syscall.Conn)))
}

func TestCheckSocketHup_TCP(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	accepted := make(chan net.Conn, 1)
	go func() {
		c, err := ln.Accept()
		if err == nil {
			accepted <- c
		}
		close(accepted)
	}()

	client, err := net.Dial("tcp", ln.Addr().String())
	require.NoError(t, err)
	server, ok := <-accepted
	require.True(t, ok)

	assert.False(t, CheckSocketHup(server.(syscall.Conn)))

	// 只收到 FIN 时仍可写；向已关闭的对端写入触发 RST 后才算挂断
	require.NoError(t, client.Close())
	require.Eventually(t, func() bool {
		_, _ = server.Write([]byte("x"))
		return CheckSocketHup(server.(syscall.Conn))
	}, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, server.Close())
	assert.True(t, CheckSocketHup(server.(syscall.Conn)))
}
