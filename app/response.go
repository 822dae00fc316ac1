package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strconv"
)

const (
	StatusOK                  = 200
	StatusBadRequest          = 400
	StatusNotFound            = 404
	StatusMethodNotAllowed    = 405
	StatusInternalServerError = 500
)

var statusText = map[int]string{
	StatusOK:                  "OK",
	StatusBadRequest:          "Bad Request",
	StatusNotFound:            "Not Found",
	StatusMethodNotAllowed:    "Method Not Allowed",
	StatusInternalServerError: "Internal Server Error",
}

// 二进制资源每次写出的块大小
const chunkSize = 2048

// 找不到 <code>.html 时使用的通用正文
const fallbackMessage = "服务器发生了错误, 请稍后再试!"

var errNotRegular = errors.New("not a regular file")

// ResponseWriter 把请求映射到 web 根目录下的文件并写回 HTTP 响应
// 自身不持有可变状态, 可被多个连接同时使用
type ResponseWriter struct {
	root   string
	mime   *MimeClassifier
	mux    *Mux
	logger *log.Logger
}

func NewResponseWriter(root string, mime *MimeClassifier, logger *log.Logger) *ResponseWriter {
	rw := &ResponseWriter{
		root:   root,
		mime:   mime,
		mux:    NewMux(),
		logger: logger,
	}
	rw.mux.Handle("GET", rw.serveStatic)
	return rw
}

// Serve 为一次请求写出完整响应
// 返回的错误只表示写连接失败, 调用方应直接放弃该连接
func (rw *ResponseWriter) Serve(req *Request, w io.Writer) error {
	if req == nil || req.Path == "" {
		return rw.SendStatus(w, StatusNotFound)
	}
	handler, ok := rw.mux.Lookup(req.Method)
	if !ok {
		return rw.SendStatus(w, StatusMethodNotAllowed)
	}
	return handler(req, w)
}

// SendStatus 优先返回根目录下的 <code>.html, 不存在时返回通用的纯文本提示
func (rw *ResponseWriter) SendStatus(w io.Writer, status int) error {
	page := filepath.Join(rw.root, strconv.Itoa(status)+".html")
	body, err := readRegularFile(page)
	if err == nil {
		return rw.sendText(w, status, "text/html", body)
	}
	if !errors.Is(err, fs.ErrNotExist) && !errors.Is(err, errNotRegular) {
		rw.logger.Printf("服务器在读取%d页面时发生了错误: %v", status, err)
	}
	return rw.sendText(w, status, "text/plain", []byte(fallbackMessage))
}

// sendText 头部和正文一次写出, Content-Length 为 UTF-8 编码后的字节数
func (rw *ResponseWriter) sendText(w io.Writer, status int, contentType string, body []byte) error {
	body = bytes.ToValidUTF8(body, []byte("\uFFFD"))
	header := statusLine(status) +
		"Content-Type: " + contentType + "; charset=UTF-8" + CRLF +
		"Content-Length: " + strconv.Itoa(len(body)) + CRLF + CRLF

	msg := make([]byte, 0, len(header)+len(body))
	msg = append(msg, header...)
	msg = append(msg, body...)
	if _, err := w.Write(msg); err != nil {
		return fmt.Errorf("writing %d response: %w", status, err)
	}
	return nil
}

// sendRaw 先写头部, 再按 chunkSize 分块写出文件内容, 不把整个文件读入内存
func (rw *ResponseWriter) sendRaw(w io.Writer, r io.Reader, contentType string, size int64) error {
	header := statusLine(StatusOK) +
		"Content-Type: " + contentType + CRLF +
		"Content-Length: " + strconv.FormatInt(size, 10) + CRLF + CRLF
	if _, err := io.WriteString(w, header); err != nil {
		return fmt.Errorf("writing response header: %w", err)
	}

	buf := make([]byte, chunkSize)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			if _, werr := w.Write(buf[:n]); werr != nil {
				return fmt.Errorf("writing response body: %w", werr)
			}
		}
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return fmt.Errorf("reading file: %w", err)
		}
	}
}

func statusLine(status int) string {
	line := "HTTP/1.1 " + strconv.Itoa(status)
	if text, ok := statusText[status]; ok {
		line += " " + text
	}
	return line + CRLF
}

func readRegularFile(name string) ([]byte, error) {
	info, err := os.Stat(name)
	if err != nil {
		return nil, err
	}
	if !info.Mode().IsRegular() {
		return nil, errNotRegular
	}
	return os.ReadFile(name)
}
