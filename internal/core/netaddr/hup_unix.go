//go:build unix

package netaddr

import (
	"syscall"

	"golang.org/x/sys/unix"
)

// CheckSocketHup 检查套接字是否已挂断
//
// 以零超时 poll 一次，POLLHUP 或 POLLERR 置位时返回 true。
// 无法取得底层描述符（例如连接已关闭）也视为挂断。
func CheckSocketHup(conn syscall.Conn) bool {
	raw, err := conn.SyscallConn()
	if err != nil {
		return true
	}

	hup := false
	err = raw.Control(func(fd uintptr) {
		fds := []unix.PollFd{{
			Fd:     int32(fd),
			Events: unix.POLLHUP | unix.POLLIN | unix.POLLOUT | unix.POLLNVAL,
		}}
		if _, perr := unix.Poll(fds, 0); perr != nil {
			log.Debug("poll 失败", "err", perr)
			return
		}
		hup = fds[0].Revents&(unix.POLLHUP|unix.POLLERR) != 0
	})
	if err != nil {
		return true
	}
	return hup
}
