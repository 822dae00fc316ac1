package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
)

// 请求只读一次, 超过该长度的请求行会被截断
const requestBufferSize = 2048

var (
	ErrEmptyRequest         = errors.New("empty request")
	ErrMalformedRequestLine = errors.New("malformed request line")
)

// Request 解析后的请求, 只保留请求行中的方法和资源路径
type Request struct {
	Method string
	Path   string
}

// ParseRequest 从连接读取一次数据并解析请求行
// 不会循环读满缓冲区, 也不解析请求头和请求体
func ParseRequest(r io.Reader, logger *log.Logger) (*Request, error) {
	buf := make([]byte, requestBufferSize)
	n, err := r.Read(buf)
	if n == 0 {
		if err == nil || errors.Is(err, io.EOF) {
			return nil, ErrEmptyRequest
		}
		logger.Printf("读取请求时发生错误: %v", err)
		return nil, fmt.Errorf("reading request: %w", err)
	}
	// 读到数据的同时返回的错误留给写响应时再暴露
	line := decodeSingleByte(buf[:n])

	// 请求行形如 "GET /index.html HTTP/1.1", 取前两个空格之间的内容
	first := strings.IndexByte(line, ' ')
	if first <= 0 {
		return nil, ErrMalformedRequestLine
	}
	second := strings.IndexByte(line[first+1:], ' ')
	if second == -1 {
		return nil, ErrMalformedRequestLine
	}
	second += first + 1

	req := &Request{
		Method: line[:first],
		Path:   line[first+1 : second],
	}
	logger.Printf("======= HTTP 请求 ======= 请求方式: %s 请求资源: %s", req.Method, req.Path)
	return req, nil
}

// decodeSingleByte 每个字节当作一个字符 (ISO-8859-1), 不做多字节解码
func decodeSingleByte(b []byte) string {
	var sb strings.Builder
	sb.Grow(len(b))
	for _, c := range b {
		sb.WriteRune(rune(c))
	}
	return sb.String()
}
