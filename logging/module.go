package logging

import "github.com/gocrud/inject/di"

// TokenLogger 日志记录器的接口令牌
var TokenLogger = di.NewToken("logging.logger")

// Module 把 Logger 绑定进注入器，让其他模块的提供者可以声明
// TokenLogger 依赖。
//
// 使用示例:
//
//	inj, err := di.NewInjector(
//		logging.NewModule(func(b *logging.LoggingBuilder) {
//			b.SetMinimumLevel(logging.LogLevelDebug).UseJSONFormatter()
//		}),
//		...,
//	)
type Module struct {
	di.ModuleBase
	configure func(*LoggingBuilder)
}

// NewModule 创建日志模块。configure 为 nil 时使用默认配置。
func NewModule(configure func(*LoggingBuilder)) *Module {
	return &Module{configure: configure}
}

// Configure 实现 di.Module。
func (m *Module) Configure() error {
	builder := NewLoggingBuilder()
	if m.configure != nil {
		m.configure(builder)
	}

	m.Bind(TokenLogger).ToValue(builder.Build())
	return nil
}
