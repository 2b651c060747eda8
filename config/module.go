package config

import "github.com/gocrud/inject/di"

// TokenConfiguration 应用配置的接口令牌
var TokenConfiguration = di.NewToken("config.configuration")

// Module 把 Configuration 绑定进注入器。
//
// 使用示例:
//
//	inj, err := di.NewInjector(
//		config.NewModule(func(b *config.ConfigurationBuilder) {
//			b.AddYamlFile("config.yaml", true).AddEnvVariables("APP_")
//		}),
//		...,
//	)
type Module struct {
	di.ModuleBase
	configure func(*ConfigurationBuilder)
}

// NewModule 创建配置模块。configure 为 nil 时得到空配置。
func NewModule(configure func(*ConfigurationBuilder)) *Module {
	return &Module{configure: configure}
}

// Configure 实现 di.Module。配置源加载失败会中止注入器构造。
func (m *Module) Configure() error {
	builder := NewConfigurationBuilder()
	if m.configure != nil {
		m.configure(builder)
	}

	cfg, err := builder.Build()
	if err != nil {
		return err
	}

	m.Bind(TokenConfiguration).ToValue(cfg)
	return nil
}
