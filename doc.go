// Package hostaddr 将主机标识解析为统一的 128 位地址，并提供地址与
// host:port 文本的互相转换
//
// # 核心概念
//
//   - Address128: 16 字节地址，IPv4 以 IPv4 映射形式（::ffff:a.b.c.d）存放
//   - Resolver: 调用名称解析服务并按首选规则（先 IPv4，再无作用域的 IPv6）选出一个地址
//   - 文本工具: 地址显示、host[:port] 拆分、host:port 组合
//
// 每次解析都是同步、一次性的：不缓存、不重试。
//
// # 快速开始
//
//	import "github.com/dep2p/go-hostaddr"
//
//	// 一次性解析，使用系统解析器
//	addr, err := hostaddr.ResolveToAddress128(ctx, "db1.example.com")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(hostaddr.FormatAddress128(addr))
//
//	// 指定 DNS 服务器
//	r, err := hostaddr.New(
//	    hostaddr.WithDNSServer("192.0.2.53"),
//	    hostaddr.WithTimeout(2*time.Second),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer r.Close()
//	addr, err = r.Resolve(ctx, "db1.example.com")
//
// # 文本格式
//
//	hostaddr.CombineHostPort("::1", 1186, 64)      // "[::1]:1186"
//	hostaddr.CombineHostPort("", 1186, 64)         // "*:1186"
//	hostaddr.SplitHostPort("[::1]:1186", 256, 32)  // "::1", "1186"
//	hostaddr.SplitHostPort("node1:1186", 256, 32)  // "node1", "1186"
//
// 容量参数按目标缓冲区大小计算（含结束符）：长度为 n 的文本需要 n+1。
//
// # 错误
//
// 解析失败统一返回包装 ErrResolution 的错误，拆分失败返回包装 ErrFormat 的错误，
// 调用方使用 errors.Is 判断。
package hostaddr
