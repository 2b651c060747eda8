package web

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gocrud/inject/di"
	"github.com/gocrud/inject/logging"
)

var (
	// TokenEngine Gin 引擎的接口令牌
	TokenEngine = di.NewToken("web.engine")
	// TokenServer HTTP 服务器的接口令牌
	TokenServer = di.NewToken("web.server")
	// TokenOptions Web 配置选项的接口令牌
	TokenOptions = di.NewToken("web.options")
)

// Options Web 模块配置选项
type Options struct {
	Port         int           // 监听端口
	Mode         string        // Gin 运行模式
	ReadTimeout  time.Duration // 读取超时
	WriteTimeout time.Duration // 写入超时
	Routes       []func(*gin.Engine)
}

// NewDefaultOptions 创建默认配置
func NewDefaultOptions() *Options {
	return &Options{
		Port:         8080,
		Mode:         gin.ReleaseMode,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}
}

// Validate 验证配置
func (o *Options) Validate() error {
	if o.Port <= 0 || o.Port > 65535 {
		return fmt.Errorf("web port must be in (0, 65535], got %d", o.Port)
	}
	if o.Mode != gin.ReleaseMode && o.Mode != gin.DebugMode && o.Mode != gin.TestMode {
		return fmt.Errorf("unknown gin mode %q", o.Mode)
	}
	return nil
}

// AddRoutes 追加一段路由注册回调
func (o *Options) AddRoutes(register func(*gin.Engine)) *Options {
	o.Routes = append(o.Routes, register)
	return o
}

// Module Web 模块：提供 *gin.Engine 与 *http.Server。
//
// 引擎与服务器都经由提供者方法按需构造；注意解析不做缓存，
// 两次解析 TokenEngine 会得到两个独立的引擎。
type Module struct {
	di.ModuleBase
	opts *Options
}

// NewModule 创建 Web 模块。
func NewModule(configure func(*Options)) *Module {
	opts := NewDefaultOptions()
	if configure != nil {
		configure(opts)
	}
	return &Module{opts: opts}
}

// Configure 实现 di.Module。
func (m *Module) Configure() error {
	if err := m.opts.Validate(); err != nil {
		return fmt.Errorf("invalid web configuration: %w", err)
	}

	m.Bind(TokenOptions).ToValue(m.opts)
	return nil
}

// ProvideEngine 构造 Gin 引擎并注册全部路由。
func (m *Module) ProvideEngine(logger logging.Logger) *gin.Engine {
	gin.SetMode(m.opts.Mode)

	engine := gin.New()
	engine.Use(gin.Recovery())

	for _, register := range m.opts.Routes {
		register(engine)
	}

	logger.Info("web engine built",
		logging.Field{Key: "mode", Value: m.opts.Mode},
		logging.Field{Key: "routes", Value: len(engine.Routes())})

	return engine
}

// ProvideServer 用已解析的引擎构造 HTTP 服务器。
func (m *Module) ProvideServer(engine *gin.Engine) *http.Server {
	return &http.Server{
		Addr:         fmt.Sprintf(":%d", m.opts.Port),
		Handler:      engine,
		ReadTimeout:  m.opts.ReadTimeout,
		WriteTimeout: m.opts.WriteTimeout,
	}
}

func init() {
	di.Provides(TokenEngine, (*Module).ProvideEngine)
	di.DependsOn((*Module).ProvideEngine, logging.TokenLogger)

	di.Provides(TokenServer, (*Module).ProvideServer)
	di.DependsOn((*Module).ProvideServer, TokenEngine)
}
