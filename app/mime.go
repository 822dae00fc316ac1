package main

import "strings"

// 未知扩展名统一按二进制流处理
const defaultContentType = "application/octet-stream"

// MimeTable 扩展名(小写, 不带点) -> Content-Type
type MimeTable map[string]string

// DefaultMimeTypes 返回内置的扩展名映射表
func DefaultMimeTypes() MimeTable {
	return MimeTable{
		"html": "text/html",
		"css":  "text/css",
		"js":   "application/javascript",
		"png":  "image/png",
		"jpg":  "image/jpeg",
		"jpeg": "image/jpeg",
		"gif":  "image/gif",
		"svg":  "image/svg+xml",
		"ico":  "image/x-icon",
		"json": "application/json",
		"xml":  "application/xml",
		"txt":  "text/plain",
	}
}

// MimeClassifier 根据文件名判断 Content-Type
// 映射表在启动时构建一次, 之后只读, 多个连接并发使用无需加锁
type MimeClassifier struct {
	types MimeTable
}

// NewMimeClassifier 复制一份映射表, 调用方之后修改 table 不会影响分类结果
func NewMimeClassifier(table MimeTable) *MimeClassifier {
	types := make(MimeTable, len(table))
	for ext, ct := range table {
		types[strings.ToLower(ext)] = ct
	}
	return &MimeClassifier{types: types}
}

// ContentType 取最后一个 '.' 之后的扩展名查表
func (m *MimeClassifier) ContentType(fileName string) string {
	dot := strings.LastIndexByte(fileName, '.')
	if dot == -1 || dot == len(fileName)-1 {
		return defaultContentType
	}
	if ct, ok := m.types[strings.ToLower(fileName[dot+1:])]; ok {
		return ct
	}
	return defaultContentType
}

// IsText 文本资源整体读入后按 UTF-8 发送, 其余类型按块流式发送
func IsText(contentType string) bool {
	if strings.HasPrefix(contentType, "text/") {
		return true
	}
	switch contentType {
	case "application/json", "application/xml", "application/javascript":
		return true
	}
	return false
}
