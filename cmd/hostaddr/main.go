// Package main 提供 hostaddr 命令行入口
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/netip"
	"os"
	"strconv"
	"time"

	"github.com/dep2p/go-hostaddr"
	"github.com/dep2p/go-hostaddr/internal/util/logger"
)

var log = logger.Logger("cmd")

// errUsage 命令行用法错误
var errUsage = errors.New("usage error")

// cliFlags 命令行参数
type cliFlags struct {
	configFile string
	backend    string
	server     string
	timeout    time.Duration
	logLevel   string
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		if isUsage(err) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("hostaddr", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var f cliFlags
	fs.StringVar(&f.configFile, "config", "", "配置文件路径（JSON）")
	fs.StringVar(&f.backend, "backend", "", "解析后端 (system/dns)")
	fs.StringVar(&f.server, "server", "", "DNS 服务器地址 <host>[:<port>]")
	fs.DurationVar(&f.timeout, "timeout", 0, "单次查询超时")
	fs.StringVar(&f.logLevel, "log-level", "", "日志级别 (debug/info/warn/error)")
	fs.Usage = func() { printHelp(stderr, fs) }

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	if f.logLevel != "" {
		level, ok := logger.ParseLevel(f.logLevel)
		if !ok {
			return fmt.Errorf("%w: unknown log level %q", errUsage, f.logLevel)
		}
		logger.SetGlobalLevel(level)
	}

	rest := fs.Args()
	if len(rest) == 0 {
		printHelp(stderr, fs)
		return fmt.Errorf("%w: missing command", errUsage)
	}

	cmd, cmdArgs := rest[0], rest[1:]
	switch cmd {
	case "resolve":
		return runResolve(f, cmdArgs, stdout)
	case "split":
		return runSplit(f, cmdArgs, stdout)
	case "combine":
		return runCombine(f, cmdArgs, stdout)
	case "format":
		return runFormat(cmdArgs, stdout)
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}
}

// ═══════════════════════════════════════════════════════════════════════════
// 子命令
// ═══════════════════════════════════════════════════════════════════════════

// runResolve 解析每个主机并输出 "<host> <address>"
func runResolve(f cliFlags, args []string, stdout io.Writer) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: resolve <host>...", errUsage)
	}

	opts, err := buildOptions(f)
	if err != nil {
		return fmt.Errorf("配置错误: %w", err)
	}
	r, err := hostaddr.New(opts...)
	if err != nil {
		return err
	}
	defer func() { _ = r.Close() }()

	ctx := context.Background()
	var failed error
	for _, host := range args {
		addr, err := r.Resolve(ctx, host)
		if err != nil {
			log.Debug("解析失败", "host", host, "err", err)
			fmt.Fprintf(stdout, "%s null\n", host)
			failed = err
			continue
		}
		fmt.Fprintf(stdout, "%s %s\n", host, r.Format(addr))
	}
	return failed
}

// runSplit 拆分 host[:port]，输出 "<host> <service>"
func runSplit(f cliFlags, args []string, stdout io.Writer) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: split <host[:port]>", errUsage)
	}

	cfg, err := loadConfig(f)
	if err != nil {
		return fmt.Errorf("配置错误: %w", err)
	}

	host, serv, err := hostaddr.SplitHostPort(args[0], cfg.Text.HostCapacity, cfg.Text.ServCapacity)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "%s %s\n", host, serv)
	return nil
}

// runCombine 组合主机与端口，主机为 "*" 表示缺省
func runCombine(f cliFlags, args []string, stdout io.Writer) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: combine <host|*> <port>", errUsage)
	}

	port, err := strconv.ParseUint(args[1], 10, 16)
	if err != nil {
		return fmt.Errorf("%w: invalid port %q", errUsage, args[1])
	}

	cfg, err := loadConfig(f)
	if err != nil {
		return fmt.Errorf("配置错误: %w", err)
	}

	host := args[0]
	if host == "*" {
		host = ""
	}
	fmt.Fprintln(stdout, hostaddr.CombineHostPort(host, uint16(port), cfg.Text.CombinedCapacity()))
	return nil
}

// runFormat 以显示形式输出地址字面量
func runFormat(args []string, stdout io.Writer) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: format <ip>", errUsage)
	}

	addr, err := netip.ParseAddr(args[0])
	if err != nil {
		return fmt.Errorf("%w: invalid address %q", errUsage, args[0])
	}

	var text string
	if addr.Is4() {
		ip4 := addr.As4()
		text = hostaddr.FormatAddress(hostaddr.FamilyIPv4, ip4[:], hostaddr.AddrStrLen)
	} else {
		text = hostaddr.FormatAddress128(addr.As16())
	}
	fmt.Fprintln(stdout, text)
	return nil
}

func printHelp(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(w, "用法: hostaddr [flags] <command> [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "命令:")
	fmt.Fprintln(w, "  resolve <host>...        解析主机为地址")
	fmt.Fprintln(w, "  split <host[:port]>      拆分 host:port")
	fmt.Fprintln(w, "  combine <host|*> <port>  组合 host:port")
	fmt.Fprintln(w, "  format <ip>              输出地址的显示形式")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "参数:")
	fs.PrintDefaults()
}

func isUsage(err error) bool {
	return errors.Is(err, errUsage)
}
