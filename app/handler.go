package main

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
)

// resolve 把请求路径拼到根目录下, 先按绝对路径 Clean 掉 "..", 防止越过根目录
func (rw *ResponseWriter) resolve(reqPath string) string {
	return filepath.Join(rw.root, filepath.FromSlash(path.Clean("/"+reqPath)))
}

// serveStatic GET 请求的 Handler: 返回根目录下的普通文件
func (rw *ResponseWriter) serveStatic(req *Request, w io.Writer) error {
	filePath := rw.resolve(req.Path)
	info, err := os.Stat(filePath)
	if err != nil || !info.Mode().IsRegular() {
		return rw.SendStatus(w, StatusNotFound)
	}

	contentType := rw.mime.ContentType(info.Name())
	rw.logger.Printf("请求的uri: %s", req.Path)
	rw.logger.Printf("资源绝对地址: %s", filePath)

	file, err := os.Open(filePath)
	if err != nil {
		// Stat 与 Open 之间文件可能被删除
		if errors.Is(err, fs.ErrNotExist) {
			rw.logger.Printf("用户请求的资源未找到: %s", filePath)
			return rw.SendStatus(w, StatusNotFound)
		}
		rw.logger.Printf("打开文件时发生错误: %v", err)
		return rw.SendStatus(w, StatusInternalServerError)
	}
	defer file.Close()

	if !IsText(contentType) {
		return rw.sendRaw(w, file, contentType, info.Size())
	}

	body, err := io.ReadAll(file)
	if err != nil {
		rw.logger.Printf("服务器在读取文件的时候发生了错误: %v", err)
		return rw.SendStatus(w, StatusInternalServerError)
	}
	return rw.sendText(w, StatusOK, contentType, body)
}
