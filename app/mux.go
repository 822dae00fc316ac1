package main

import (
	"io"
	"strings"
)

// HandlerFunc 处理一个已通过校验的请求, 把完整响应写入 w
type HandlerFunc func(req *Request, w io.Writer) error

// Mux 按请求方法分发, 未注册的方法由调用方回复 405
type Mux struct {
	routes map[string]HandlerFunc
}

// NewMux 创建一个新的路由器
func NewMux() *Mux {
	return &Mux{
		routes: make(map[string]HandlerFunc),
	}
}

// Handle 注册方法, 方法名不区分大小写
//
//	"GET"  -> 静态资源
//	"get"  -> 同上
func (m *Mux) Handle(method string, handler HandlerFunc) {
	m.routes[strings.ToUpper(method)] = handler
}

// Lookup 根据方法查找 Handler, 找不到时 ok 为 false
func (m *Mux) Lookup(method string) (HandlerFunc, bool) {
	h, ok := m.routes[strings.ToUpper(method)]
	return h, ok
}
