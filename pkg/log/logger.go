package log

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
)

// DefaultFilePath 默认日志文件名
const DefaultFilePath = "log.txt"

// Logger 按级别输出日志的接口
type Logger interface {
	Trace(format string, args ...any)
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warning(format string, args ...any)
	Error(format string, args ...any)
	Critical(format string, args ...any)
}

var _ Logger = (*Facility)(nil)

// Facility 日志设施：级别阈值、可选的日志文件和一把互斥锁
//
// 控制台和文件的写入都在同一把锁内完成，并发调用的日志行不会交错。
type Facility struct {
	mu        sync.Mutex
	threshold Severity
	filePath  string
	file      *os.File
	console   io.Writer
	now       func() time.Time
	lastErr   error
}

// Option 构造选项
type Option func(*Facility)

// WithConsole 替换控制台输出（默认 os.Stdout）
func WithConsole(w io.Writer) Option {
	return func(f *Facility) {
		f.console = w
	}
}

// WithClock 替换时间源
func WithClock(now func() time.Time) Option {
	return func(f *Facility) {
		f.now = now
	}
}

// WithThreshold 设置初始级别阈值
func WithThreshold(level Severity) Option {
	return func(f *Facility) {
		f.threshold = level
	}
}

// New 创建日志设施，不做任何 I/O
func New(opts ...Option) *Facility {
	f := &Facility{
		threshold: InfoLevel,
		console:   os.Stdout,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// SetThreshold 设置最低输出级别
func (f *Facility) SetThreshold(level Severity) {
	f.mu.Lock()
	f.threshold = level
	f.mu.Unlock()
}

// Threshold 获取当前最低输出级别
func (f *Facility) Threshold() Severity {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.threshold
}

// Enabled 判断该级别的日志是否会输出
func (f *Facility) Enabled(level Severity) bool {
	return level >= f.Threshold()
}

// EnableFileOutput 输出到默认日志文件 log.txt
func (f *Facility) EnableFileOutput() {
	f.EnableFileOutputAt(DefaultFilePath)
}

// EnableFileOutputAt 输出到指定日志文件（追加模式）
//
// 已打开的文件会先关闭。打开失败时在控制台提示一次，之后只输出到控制台。
func (f *Facility) EnableFileOutputAt(path string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.filePath = path
	_ = f.closeFileLocked()

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		sinkErr := NewSinkOpenError(path, err)
		f.lastErr = sinkErr
		sinkOpenFailures.Inc()
		fmt.Fprintf(f.console, "Logger: %s: %v\n", sinkErr.Message, openCause(err))
		return
	}
	f.file = file
	f.lastErr = nil
}

// FilePath 获取最近一次配置的日志文件路径
func (f *Facility) FilePath() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.filePath
}

// FileOutputEnabled 判断日志文件是否处于打开状态
func (f *Facility) FileOutputEnabled() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.file != nil
}

// LastError 获取最近一次输出端错误（打开失败或格式错误）
func (f *Facility) LastError() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastErr
}

// Close 关闭日志文件，之后只输出到控制台；可重复调用
func (f *Facility) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closeFileLocked()
}

// openCause 去掉 PathError 中重复的路径
func openCause(err error) error {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err
	}
	return err
}

func (f *Facility) closeFileLocked() error {
	if f.file == nil {
		return nil
	}
	err := f.file.Close()
	f.file = nil
	return err
}

// emit 统一日志输出
func (f *Facility) emit(level Severity, loc *Location, format string, args ...any) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if level < f.threshold {
		suppressedTotal.WithLabelValues(level.String()).Inc()
		return
	}

	message, ferr := formatMessage(format, args...)
	if ferr != nil {
		f.lastErr = ferr
	}
	line := renderLine(f.now(), level, loc, message)

	// 写入失败直接丢弃，日志不能影响调用方
	_, err := io.WriteString(f.console, line)
	recordLine(level, sinkConsole, err)

	if f.file != nil {
		_, err = f.file.WriteString(line)
		recordLine(level, sinkFile, err)
	}
}

// Trace 输出 Trace 级别日志
func (f *Facility) Trace(format string, args ...any) {
	f.emit(TraceLevel, nil, format, args...)
}

// Debug 输出 Debug 级别日志
func (f *Facility) Debug(format string, args ...any) {
	f.emit(DebugLevel, nil, format, args...)
}

// Info 输出 Info 级别日志
func (f *Facility) Info(format string, args ...any) {
	f.emit(InfoLevel, nil, format, args...)
}

// Warning 输出 Warning 级别日志
func (f *Facility) Warning(format string, args ...any) {
	f.emit(WarningLevel, nil, format, args...)
}

// Error 输出 Error 级别日志
func (f *Facility) Error(format string, args ...any) {
	f.emit(ErrorLevel, nil, format, args...)
}

// Critical 输出 Critical 级别日志
func (f *Facility) Critical(format string, args ...any) {
	f.emit(CriticalLevel, nil, format, args...)
}

// 带源文件和行号的版本

func (f *Facility) TraceAt(line int, file string, format string, args ...any) {
	f.emit(TraceLevel, &Location{Line: line, File: file}, format, args...)
}

func (f *Facility) DebugAt(line int, file string, format string, args ...any) {
	f.emit(DebugLevel, &Location{Line: line, File: file}, format, args...)
}

func (f *Facility) InfoAt(line int, file string, format string, args ...any) {
	f.emit(InfoLevel, &Location{Line: line, File: file}, format, args...)
}

func (f *Facility) WarningAt(line int, file string, format string, args ...any) {
	f.emit(WarningLevel, &Location{Line: line, File: file}, format, args...)
}

func (f *Facility) ErrorAt(line int, file string, format string, args ...any) {
	f.emit(ErrorLevel, &Location{Line: line, File: file}, format, args...)
}

func (f *Facility) CriticalAt(line int, file string, format string, args ...any) {
	f.emit(CriticalLevel, &Location{Line: line, File: file}, format, args...)
}

// Log 以指定级别输出，loc 为 nil 时不带位置
func (f *Facility) Log(level Severity, loc *Location, format string, args ...any) {
	f.emit(level, loc, format, args...)
}
