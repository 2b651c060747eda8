package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ConfigurationSource 配置源，Load 返回一棵嵌套配置树
type ConfigurationSource interface {
	Load() (map[string]any, error)
}

// ConfigurationBuilder 配置构建器。
// 按添加顺序加载所有源并深度合并，后加载的源覆盖先加载的。
type ConfigurationBuilder struct {
	sources []ConfigurationSource
}

// NewConfigurationBuilder 创建配置构建器
func NewConfigurationBuilder() *ConfigurationBuilder {
	return &ConfigurationBuilder{}
}

// AddSource 添加自定义配置源
func (b *ConfigurationBuilder) AddSource(source ConfigurationSource) *ConfigurationBuilder {
	b.sources = append(b.sources, source)
	return b
}

// AddInMemory 添加内存配置源（常用于测试和缺省值）
func (b *ConfigurationBuilder) AddInMemory(data map[string]any) *ConfigurationBuilder {
	return b.AddSource(inMemorySource{data: data})
}

// AddYamlFile 添加 YAML 文件配置源。
// optional 为 true 时文件缺失不报错。
func (b *ConfigurationBuilder) AddYamlFile(path string, optional bool) *ConfigurationBuilder {
	return b.AddSource(yamlFileSource{path: path, optional: optional})
}

// AddEnvVariables 添加环境变量配置源。
// 仅加载带 prefix 的变量，APP_SERVER_PORT（prefix "APP_"）映射为 server.port。
func (b *ConfigurationBuilder) AddEnvVariables(prefix string) *ConfigurationBuilder {
	return b.AddSource(envSource{prefix: prefix})
}

// Build 加载全部源并构建 Configuration。
func (b *ConfigurationBuilder) Build() (Configuration, error) {
	merged := make(map[string]any)

	for _, source := range b.sources {
		data, err := source.Load()
		if err != nil {
			return nil, err
		}
		merged = mergeMaps(merged, data)
	}

	store := NewValueStore()
	store.Store(merged)
	return &configuration{store: store}, nil
}

// mergeMaps 深度合并两棵配置树，overlay 覆盖 base。
func mergeMaps(base, overlay map[string]any) map[string]any {
	for key, val := range overlay {
		if subOverlay, ok := val.(map[string]any); ok {
			if subBase, ok := base[key].(map[string]any); ok {
				base[key] = mergeMaps(subBase, subOverlay)
				continue
			}
		}
		base[key] = val
	}
	return base
}

// ---------------- 内建配置源 ----------------

type inMemorySource struct {
	data map[string]any
}

func (s inMemorySource) Load() (map[string]any, error) {
	return s.data, nil
}

type yamlFileSource struct {
	path     string
	optional bool
}

func (s yamlFileSource) Load() (map[string]any, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if s.optional && os.IsNotExist(err) {
			return map[string]any{}, nil
		}
		return nil, fmt.Errorf("config: failed to read %s: %w", s.path, err)
	}

	data := make(map[string]any)
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("config: failed to parse %s: %w", s.path, err)
	}
	return data, nil
}

type envSource struct {
	prefix string
}

func (s envSource) Load() (map[string]any, error) {
	data := make(map[string]any)

	for _, kv := range os.Environ() {
		key, val, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(key, s.prefix) {
			continue
		}

		// APP_SERVER_PORT -> server.port
		path := strings.ToLower(strings.TrimPrefix(key, s.prefix))
		segments := strings.Split(path, "_")
		setPath(data, segments, val)
	}

	return data, nil
}

// setPath 沿路径片段写入嵌套 map，按需创建中间节点。
func setPath(data map[string]any, segments []string, val any) {
	current := data
	for i, seg := range segments {
		if i == len(segments)-1 {
			current[seg] = val
			return
		}
		next, ok := current[seg].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[seg] = next
		}
		current = next
	}
}
