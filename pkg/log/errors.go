package log

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// 通用错误定义
var (
	// ErrSinkOpen 日志文件无法打开
	ErrSinkOpen = errors.New("log sink open failed")

	// ErrMalformedMessage 格式串与参数不匹配
	ErrMalformedMessage = errors.New("malformed log message")

	// ErrUnknownSeverity 未知的日志级别
	ErrUnknownSeverity = errors.New("unknown severity")
)

// 错误类型
const (
	KindSinkOpen = "SinkOpenFailure"
	KindFormat   = "FormatFailure"
)

// SinkError 日志输出端的错误，只在内部记录，不会返回给调用方
type SinkError struct {
	Kind    string
	Path    string
	Message string
	Cause   error
}

// Error 实现 error 接口
func (e *SinkError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap 实现错误解包
func (e *SinkError) Unwrap() error {
	return e.Cause
}

// NewSinkOpenError 创建文件打开失败错误
func NewSinkOpenError(path string, err error) *SinkError {
	return &SinkError{
		Kind:    KindSinkOpen,
		Path:    path,
		Message: fmt.Sprintf("Failed to open file at %s", path),
		Cause:   errors.Mark(errors.Wrap(err, "open"), ErrSinkOpen),
	}
}

// NewFormatError 创建格式化失败错误
func NewFormatError(format, rendered string) *SinkError {
	return &SinkError{
		Kind:    KindFormat,
		Message: fmt.Sprintf("format=%q rendered=%q", format, rendered),
		Cause:   ErrMalformedMessage,
	}
}

// IsSinkOpenError 检查是否是文件打开失败
func IsSinkOpenError(err error) bool {
	var sinkErr *SinkError
	if errors.As(err, &sinkErr) {
		return sinkErr.Kind == KindSinkOpen
	}
	return errors.Is(err, ErrSinkOpen)
}

// IsFormatError 检查是否是格式化失败
func IsFormatError(err error) bool {
	var sinkErr *SinkError
	if errors.As(err, &sinkErr) {
		return sinkErr.Kind == KindFormat
	}
	return errors.Is(err, ErrMalformedMessage)
}
