package log

import (
	"fmt"
	"path/filepath"
	"runtime"
)

// Location 调用位置（源文件和行号）
type Location struct {
	Line int
	File string
}

// At 用显式的行号和文件名构造调用位置
func At(line int, file string) Location {
	return Location{Line: line, File: file}
}

// Caller 获取调用栈上第 skip 层的位置，skip=0 表示 Caller 的调用方
func Caller(skip int) Location {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return Location{Line: 0, File: "???"}
	}
	return Location{Line: line, File: filepath.Base(file)}
}

// Here 获取当前调用位置
func Here() Location {
	return Caller(1)
}

// String 渲染为日志行尾部的标注
func (l Location) String() string {
	return fmt.Sprintf("[line %d in %s]", l.Line, l.File)
}
