package main

import (
	"bufio"
	"context"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
)

// CRLF \r\n 是两个字符组成的序列：
// \r：carriage return，中文通常叫 回车
// \n：line feed，中文通常叫 换行
var CRLF = "\r\n" // 回车换行

var (
	addr          = flag.String("addr", "127.0.0.1:8080", "监听地址")
	directory     = flag.String("directory", "", "静态资源根目录, 默认为当前目录下的 WebContent")
	stdinShutdown = flag.Bool("stdin-shutdown", true, "在控制台输入 c 停止服务器")
)

func main() {
	// 示例：./your_program.sh --directory /tmp/data/ --addr 127.0.0.1:8080
	flag.Parse()
	logger := log.New(os.Stdout, "httpd: ", log.LstdFlags)

	root, err := webRoot(*directory)
	if err != nil {
		logger.Fatalf("无法确定静态资源目录: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if *stdinShutdown {
		var cancel context.CancelFunc
		ctx, cancel = context.WithCancel(ctx)
		defer cancel()
		logger.Println("输入 c 以停止服务器...")
		go watchStdin(os.Stdin, cancel, logger)
	}

	// 启动 HTTP 服务器
	if err := NewServer(*addr, root, logger).ListenAndServe(ctx); err != nil {
		logger.Printf("服务器启动失败: %v", err)
		os.Exit(1)
	}
}

// webRoot 未指定目录时使用 <cwd>/WebContent, 统一转成绝对路径
func webRoot(dir string) (string, error) {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(wd, "WebContent")
	}
	return filepath.Abs(dir)
}

// watchStdin 读到单独一行 "c" (不区分大小写) 时触发 cancel
func watchStdin(r io.Reader, cancel context.CancelFunc, logger *log.Logger) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if strings.EqualFold(strings.TrimSpace(scanner.Text()), "c") {
			logger.Println("服务器正在关闭...")
			cancel()
			return
		}
	}
}
