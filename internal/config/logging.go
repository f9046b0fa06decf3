package config

import (
	"github.com/cockroachdb/errors"

	"tradelog/pkg/log"
)

// DefaultFileKeyword 配置中表示默认日志文件的关键字
const DefaultFileKeyword = "default"

// LoggingConfig 日志配置，对应 logging.level 和 logging.file
type LoggingConfig struct {
	Level string
	File  string
}

// Severity 解析配置的日志级别，为空时返回 Info
func (c LoggingConfig) Severity() (log.Severity, error) {
	if c.Level == "" {
		return log.InfoLevel, nil
	}
	level, err := log.ParseSeverity(c.Level)
	if err != nil {
		return log.InfoLevel, errors.Wrap(err, "logging.level")
	}
	return level, nil
}

// Apply 把配置应用到日志设施
func (c LoggingConfig) Apply(f *log.Facility) error {
	level, err := c.Severity()
	if err != nil {
		return err
	}
	f.SetThreshold(level)

	switch c.File {
	case "":
	case DefaultFileKeyword:
		f.EnableFileOutput()
	default:
		f.EnableFileOutputAt(c.File)
	}
	return nil
}
