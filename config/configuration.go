package config

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Configuration 配置接口
type Configuration interface {
	// Get 获取配置值，不存在时返回空字符串
	Get(key string) string
	// GetWithDefault 获取配置值，不存在时返回默认值
	GetWithDefault(key, defaultValue string) string
	// GetInt 获取整数配置值
	GetInt(key string) (int, error)
	// GetBool 获取布尔配置值
	GetBool(key string) (bool, error)
	// GetSection 获取配置节
	GetSection(key string) Configuration
	// Bind 把配置节绑定到结构体，key 为空时绑定整个配置
	Bind(key string, target any) error
	// GetAll 获取当前配置快照
	GetAll() map[string]any
}

// configuration Configuration 的默认实现，数据来自 ValueStore 快照
type configuration struct {
	store  *ValueStore
	prefix []string
}

// NewConfiguration 创建空配置（通常通过 ConfigurationBuilder 构建）。
func NewConfiguration() Configuration {
	return &configuration{store: NewValueStore()}
}

// lookup 沿路径片段下钻嵌套 map。
func (c *configuration) lookup(key string) (any, bool) {
	segments := c.prefix
	if key != "" {
		segments = append(append([]string{}, c.prefix...), splitPath(key)...)
	}

	var current any = c.store.Load()
	for _, seg := range segments {
		m, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = m[seg]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// Get 获取配置值。
func (c *configuration) Get(key string) string {
	v, ok := c.lookup(key)
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

// GetWithDefault 获取配置值，不存在时返回默认值。
func (c *configuration) GetWithDefault(key, defaultValue string) string {
	if _, ok := c.lookup(key); !ok {
		return defaultValue
	}
	return c.Get(key)
}

// GetInt 获取整数配置值。
func (c *configuration) GetInt(key string) (int, error) {
	v, ok := c.lookup(key)
	if !ok {
		return 0, fmt.Errorf("config: key %q not found", key)
	}
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		return int(n), nil
	case string:
		return strconv.Atoi(n)
	default:
		return 0, fmt.Errorf("config: key %q is not an integer (%T)", key, v)
	}
}

// GetBool 获取布尔配置值。
func (c *configuration) GetBool(key string) (bool, error) {
	v, ok := c.lookup(key)
	if !ok {
		return false, fmt.Errorf("config: key %q not found", key)
	}
	switch b := v.(type) {
	case bool:
		return b, nil
	case string:
		return strconv.ParseBool(b)
	default:
		return false, fmt.Errorf("config: key %q is not a bool (%T)", key, v)
	}
}

// GetSection 获取配置节。节不存在时返回的配置所有查询为空。
func (c *configuration) GetSection(key string) Configuration {
	prefix := append(append([]string{}, c.prefix...), splitPath(key)...)
	return &configuration{store: c.store, prefix: prefix}
}

// Bind 把配置节绑定到结构体。
// 经由 yaml 往返完成，结构体使用 yaml 标签。
func (c *configuration) Bind(key string, target any) error {
	v, ok := c.lookup(key)
	if !ok {
		return fmt.Errorf("config: key %q not found", key)
	}

	raw, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("config: failed to encode section %q: %w", key, err)
	}
	if err := yaml.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("config: failed to bind section %q: %w", key, err)
	}
	return nil
}

// GetAll 获取当前配置快照。
func (c *configuration) GetAll() map[string]any {
	v, ok := c.lookup("")
	if !ok {
		return nil
	}
	m, _ := v.(map[string]any)
	return m
}

// Load 加载并绑定指定节的配置到结构体 T（泛型辅助函数）。
func Load[T any](cfg Configuration, section string) (T, error) {
	var t T
	err := cfg.Bind(section, &t)
	return t, err
}
