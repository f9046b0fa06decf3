package i18n

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed messages.yaml
var messagesYAML string

// Messages 存储所有消息
type Messages struct {
	Root     CommandDesc            `yaml:"root"`
	Commands map[string]CommandDesc `yaml:"commands"`
	Flags    map[string]string      `yaml:"flags"`
	Messages map[string]string      `yaml:"messages"`
}

// CommandDesc 命令描述
type CommandDesc struct {
	Use   string `yaml:"use"`
	Short string `yaml:"short"`
	Long  string `yaml:"long"`
}

var messages Messages

func init() {
	if err := yaml.Unmarshal([]byte(messagesYAML), &messages); err != nil {
		panic(fmt.Sprintf("load messages: %v", err))
	}
}

// GetRootCommand 获取根命令描述
func GetRootCommand() CommandDesc {
	return trim(messages.Root)
}

// GetCommand 获取子命令描述，未定义时 Use 为命令名
func GetCommand(name string) CommandDesc {
	desc, ok := messages.Commands[name]
	if !ok {
		return CommandDesc{Use: name}
	}
	return trim(desc)
}

// GetFlagDesc 获取标志描述
func GetFlagDesc(key string) string {
	return messages.Flags[key]
}

// GetMessage 获取消息
func GetMessage(key string, args ...any) string {
	if val, ok := messages.Messages[key]; ok {
		if len(args) > 0 {
			return fmt.Sprintf(val, args...)
		}
		return val
	}
	return key
}

// FormatError 格式化错误
func FormatError(err error) string {
	return GetMessage("error", err)
}

func trim(d CommandDesc) CommandDesc {
	d.Short = strings.TrimSpace(d.Short)
	d.Long = strings.TrimSpace(d.Long)
	return d
}
