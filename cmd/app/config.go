package app

import (
	"os"

	"github.com/BurntSushi/toml"

	logs "github.com/zuozikang/bytedup/logurs"
)

// Config 应用配置
type Config struct {
	Allocator *AllocatorConfig `toml:"allocator"` // 分配器配置
	Retry     *RetryConfig     `toml:"retry"`     // 重试配置
	Log       *logs.FileConfig `toml:"log"`       // 日志配置
}

// AllocatorConfig 分配器配置
type AllocatorConfig struct {
	Type     string `toml:"type"`
	MaxBytes int64  `toml:"max_bytes"`
}

// RetryConfig 重试配置
type RetryConfig struct {
	MaxAttempts uint  `toml:"max_attempts"`
	DelayMs     int64 `toml:"delay_ms"`
}

// NewConfig wire
func NewConfig(path string) (*Config, error) {
	// 读取TOML配置文件，缺省项用默认值补齐
	config := DefaultConfig()
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if _, err = toml.Decode(string(file), config); err != nil {
		return nil, err
	}
	return config, nil
}

// DefaultConfig 默认配置
func DefaultConfig() *Config {
	return &Config{
		Allocator: &AllocatorConfig{
			Type:     "heap",
			MaxBytes: 8 * 1024 * 1024, // 8MB
		},
		Retry: &RetryConfig{
			MaxAttempts: 3,
			DelayMs:     100,
		},
		Log: &logs.FileConfig{},
	}
}
