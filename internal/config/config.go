package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"tradelog/pkg/log"
)

const (
	ConfigDir = ".tradelog"
	EnvPrefix = "TRADELOG"
)

// Config 配置管理器
type Config struct {
	serverName string
	configPath string
	v          *viper.Viper
}

// NewConfig 创建配置管理器，配置文件位于 ~/.tradelog/<name>.yaml
func NewConfig(serverName string) *Config {
	home, _ := os.UserHomeDir()
	return NewConfigAt(serverName, filepath.Join(home, ConfigDir, serverName+".yaml"))
}

// NewConfigAt 使用指定路径的配置文件
func NewConfigAt(serverName, path string) *Config {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.file", "")

	return &Config{
		serverName: serverName,
		configPath: path,
		v:          v,
	}
}

// Init 初始化配置（如果不存在则创建默认配置）
func (c *Config) Init(ctx context.Context) error {
	logger := log.FromContext(ctx)

	// 确保配置目录存在
	configDir := filepath.Dir(c.configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	// 如果配置文件不存在，写入默认配置
	if _, err := os.Stat(c.configPath); os.IsNotExist(err) {
		if err := os.WriteFile(c.configPath, []byte(c.getDefaultConfig()), 0644); err != nil {
			return fmt.Errorf("write default config: %w", err)
		}
		logger.Info("created config file %s", c.configPath)
	}

	c.v.SetConfigFile(c.configPath)
	c.v.SetConfigType("yaml")
	if err := c.v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config %s: %w", c.configPath, err)
	}

	logger.Debug("loaded config file %s", c.configPath)
	return nil
}

// GetConfigPath 获取配置文件路径
func (c *Config) GetConfigPath() string {
	return c.configPath
}

// Logging 读取日志配置，环境变量优先于配置文件
func (c *Config) Logging() LoggingConfig {
	return LoggingConfig{
		Level: c.v.GetString("logging.level"),
		File:  c.v.GetString("logging.file"),
	}
}

// getDefaultConfig 获取默认配置
func (c *Config) getDefaultConfig() string {
	return `# ` + c.serverName + ` 配置

# 日志配置
logging:
  # trace | debug | info | warning | error | critical
  level: "info"
  # 为空只输出到控制台，default 表示 log.txt
  file: ""
`
}
