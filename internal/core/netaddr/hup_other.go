//go:build !unix

package netaddr

import "syscall"

// CheckSocketHup 检查套接字是否已挂断
//
// 非 unix 平台只能发现已关闭的连接。
func CheckSocketHup(conn syscall.Conn) bool {
	raw, err := conn.SyscallConn()
	if err != nil {
		return true
	}
	return raw.Control(func(uintptr) {}) != nil
}
