package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"sync"
)

// Server 监听 TCP 端口, 每个连接只处理一次请求-响应
type Server struct {
	Addr   string
	Root   string
	Logger *log.Logger

	responder *ResponseWriter
	wg        sync.WaitGroup
}

// NewServer 扩展名映射表在这里构建一次, 之后所有连接共享只读
func NewServer(addr, root string, logger *log.Logger) *Server {
	return &Server{
		Addr:      addr,
		Root:      root,
		Logger:    logger,
		responder: NewResponseWriter(root, NewMimeClassifier(DefaultMimeTypes()), logger),
	}
}

// ListenAndServe 绑定 Addr 并开始服务, ctx 取消后返回
func (s *Server) ListenAndServe(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return fmt.Errorf("绑定端口失败: %w", err)
	}
	return s.Serve(ctx, listener)
}

// Serve 在 listener 上接受连接, ctx 取消时关闭监听器并等待已有连接处理完
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	stop := context.AfterFunc(ctx, func() {
		if err := listener.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
			s.Logger.Printf("关闭监听器时出错: %v", err)
		}
	})
	defer func() {
		stop()
		listener.Close()
		s.wg.Wait()
		s.Logger.Println("服务器关闭成功!")
	}()

	s.Logger.Printf("服务器启动成功, 监听 %s, 根目录 %s", listener.Addr(), s.Root)
	for {
		conn, err := listener.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				s.Logger.Println("监听器已关闭，停止接受新连接")
				return nil
			}
			s.Logger.Printf("接受连接时出错: %v", err)
			continue
		}
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.handleConnection(conn)
		}()
	}
}

// handleConnection 不支持 keep-alive, 写完响应即关闭连接
func (s *Server) handleConnection(conn net.Conn) {
	defer conn.Close()

	req, err := ParseRequest(conn, s.Logger)
	if err != nil {
		s.Logger.Printf("Error parsing request from %s: %v", conn.RemoteAddr(), err)
		err = s.responder.SendStatus(conn, StatusBadRequest)
	} else {
		err = s.responder.Serve(req, conn)
	}
	if err != nil {
		s.Logger.Printf("服务器在返回响应时发生了错误: %v", err)
	}
}
