// =============================================================================
// 📦 PoseVal 配置加载器
// =============================================================================
// 统一套件配置加载，YAML 文件 + 自定义验证器
//
// 使用方法:
//
//	cfg, err := config.NewLoader().
//	    WithConfigPath("suite.yaml").
//	    Load()
//
// 配置优先级: 默认值 → YAML 文件 → 验证器
// =============================================================================
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Loader 套件配置加载器
type Loader struct {
	configPath string
	validators []func(*SuiteConfig) error
}

// NewLoader 创建新的配置加载器
func NewLoader() *Loader {
	return &Loader{
		validators: make([]func(*SuiteConfig) error, 0),
	}
}

// WithConfigPath 设置配置文件路径
func (l *Loader) WithConfigPath(path string) *Loader {
	l.configPath = path
	return l
}

// WithValidator 添加配置验证器
func (l *Loader) WithValidator(v func(*SuiteConfig) error) *Loader {
	l.validators = append(l.validators, v)
	return l
}

// Load 加载套件配置
// 优先级: 默认值 → YAML 文件 → 验证器
func (l *Loader) Load() (*SuiteConfig, error) {
	cfg := DefaultSuiteConfig()

	if l.configPath != "" {
		if err := l.loadFromFile(cfg); err != nil {
			return nil, fmt.Errorf("failed to load suite config from file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	for _, v := range l.validators {
		if err := v(cfg); err != nil {
			return nil, fmt.Errorf("suite config validation failed: %w", err)
		}
	}

	return cfg, nil
}

// Parse 从内存中的 YAML 数据解析套件配置。
func Parse(data []byte) (*SuiteConfig, error) {
	cfg := DefaultSuiteConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse suite config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadFromFile 从 YAML 文件加载套件配置
func (l *Loader) loadFromFile(cfg *SuiteConfig) error {
	data, err := os.ReadFile(l.configPath)
	if err != nil {
		if os.IsNotExist(err) {
			// 文件不存在，使用默认值
			return nil
		}
		return fmt.Errorf("failed to read suite config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse suite config file: %w", err)
	}

	return nil
}
