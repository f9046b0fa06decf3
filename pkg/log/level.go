package log

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// Severity 日志级别，按严重程度递增
type Severity int

const (
	TraceLevel Severity = iota
	DebugLevel
	InfoLevel
	WarningLevel
	ErrorLevel
	CriticalLevel
)

var severityNames = [...]string{
	TraceLevel:    "Trace",
	DebugLevel:    "Debug",
	InfoLevel:     "Info",
	WarningLevel:  "Warning",
	ErrorLevel:    "Error",
	CriticalLevel: "Critical",
}

// 解析用的别名表，键一律小写
var severityAliases = map[string]Severity{
	"trace":    TraceLevel,
	"debug":    DebugLevel,
	"info":     InfoLevel,
	"warning":  WarningLevel,
	"warn":     WarningLevel,
	"error":    ErrorLevel,
	"critical": CriticalLevel,
	"fatal":    CriticalLevel,
}

func (s Severity) String() string {
	if s.Valid() {
		return severityNames[s]
	}
	return "Unknown"
}

// Label 返回带方括号的级别标签，如 "[Info]"
func (s Severity) Label() string {
	return "[" + s.String() + "]"
}

// Valid 判断是否为已定义的级别
func (s Severity) Valid() bool {
	return s >= TraceLevel && s <= CriticalLevel
}

// ParseSeverity 从字符串解析级别（不区分大小写）
func ParseSeverity(name string) (Severity, error) {
	if s, ok := severityAliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return s, nil
	}
	return InfoLevel, errors.Wrapf(ErrUnknownSeverity, "%q", name)
}

// MarshalText 实现 encoding.TextMarshaler
func (s Severity) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, errors.Wrapf(ErrUnknownSeverity, "%d", int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText 实现 encoding.TextUnmarshaler
func (s *Severity) UnmarshalText(text []byte) error {
	parsed, err := ParseSeverity(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Severities 按顺序返回全部级别
func Severities() []Severity {
	return []Severity{TraceLevel, DebugLevel, InfoLevel, WarningLevel, ErrorLevel, CriticalLevel}
}
