// Package log 提供进程级的分级日志功能
//
// 基本用法:
//
//	log.SetThreshold(log.WarningLevel)
//	log.EnableFileOutputAt("engine.log")
//	defer log.Shutdown()
//	log.Error("order rejected: %d", orderID)
//
// 带调用位置:
//
//	log.LogError("order rejected: %d", orderID) // ... [line 42 in engine.go]
//
// 日志行格式: [时间]\t[级别]\t消息[\t[line N in 文件]]
package log

import "sync"

// 全局实例，首次使用时创建
var (
	instance     *Facility
	instanceOnce sync.Once
)

// Default 获取进程级日志设施
func Default() *Facility {
	instanceOnce.Do(func() {
		instance = New()
	})
	return instance
}

// Shutdown 关闭进程级日志设施的日志文件，应在程序退出前调用
func Shutdown() error {
	return Default().Close()
}

// SetThreshold 设置全局最低输出级别
func SetThreshold(level Severity) {
	Default().SetThreshold(level)
}

// EnableFileOutput 全局实例输出到 log.txt
func EnableFileOutput() {
	Default().EnableFileOutput()
}

// EnableFileOutputAt 全局实例输出到指定文件
func EnableFileOutputAt(path string) {
	Default().EnableFileOutputAt(path)
}

// 便捷函数，使用全局实例

func Trace(format string, args ...any)    { Default().Trace(format, args...) }
func Debug(format string, args ...any)    { Default().Debug(format, args...) }
func Info(format string, args ...any)     { Default().Info(format, args...) }
func Warning(format string, args ...any)  { Default().Warning(format, args...) }
func Error(format string, args ...any)    { Default().Error(format, args...) }
func Critical(format string, args ...any) { Default().Critical(format, args...) }

func TraceAt(line int, file, format string, args ...any) {
	Default().TraceAt(line, file, format, args...)
}

func DebugAt(line int, file, format string, args ...any) {
	Default().DebugAt(line, file, format, args...)
}

func InfoAt(line int, file, format string, args ...any) {
	Default().InfoAt(line, file, format, args...)
}

func WarningAt(line int, file, format string, args ...any) {
	Default().WarningAt(line, file, format, args...)
}

func ErrorAt(line int, file, format string, args ...any) {
	Default().ErrorAt(line, file, format, args...)
}

func CriticalAt(line int, file, format string, args ...any) {
	Default().CriticalAt(line, file, format, args...)
}

// 自动记录调用位置的版本

func LogTrace(format string, args ...any) {
	logHere(TraceLevel, format, args...)
}

func LogDebug(format string, args ...any) {
	logHere(DebugLevel, format, args...)
}

func LogInfo(format string, args ...any) {
	logHere(InfoLevel, format, args...)
}

func LogWarning(format string, args ...any) {
	logHere(WarningLevel, format, args...)
}

func LogError(format string, args ...any) {
	logHere(ErrorLevel, format, args...)
}

func LogCritical(format string, args ...any) {
	logHere(CriticalLevel, format, args...)
}

// logHere 跳过 logHere 和 LogXxx 两层
func logHere(level Severity, format string, args ...any) {
	loc := Caller(2)
	Default().emit(level, &loc, format, args...)
}
