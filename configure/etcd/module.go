package etcd

import (
	"fmt"
	"time"

	"github.com/gocrud/inject/di"
	"github.com/gocrud/inject/logging"
	clientv3 "go.etcd.io/etcd/client/v3"
)

// TokenClient etcd 客户端的接口令牌
var TokenClient = di.NewToken("etcd.client")

// Options etcd 客户端配置选项
type Options struct {
	Endpoints   []string      // etcd 节点地址
	Username    string        // 用户名（可选）
	Password    string        // 密码（可选）
	DialTimeout time.Duration // 连接超时时间
}

// NewDefaultOptions 创建默认配置
func NewDefaultOptions() *Options {
	return &Options{
		Endpoints:   []string{"localhost:2379"},
		DialTimeout: 5 * time.Second,
	}
}

// Validate 验证配置
func (o *Options) Validate() error {
	if len(o.Endpoints) == 0 {
		return fmt.Errorf("etcd endpoints are required")
	}
	if o.DialTimeout <= 0 {
		return fmt.Errorf("etcd dial timeout must be positive")
	}
	return nil
}

// Module etcd 模块：提供 *clientv3.Client。
type Module struct {
	di.ModuleBase
	opts *Options
}

// NewModule 创建 etcd 模块。
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
		return fmt.Errorf("invalid etcd configuration: %w", err)
	}
	return nil
}

// ProvideClient 构造 etcd 客户端。连接是惰性建立的，
// 构造成功不代表节点可达。
func (m *Module) ProvideClient(logger logging.Logger) (*clientv3.Client, error) {
	client, err := clientv3.New(clientv3.Config{
		Endpoints:   m.opts.Endpoints,
		Username:    m.opts.Username,
		Password:    m.opts.Password,
		DialTimeout: m.opts.DialTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create etcd client: %w", err)
	}

	logger.Info("etcd client built",
		logging.Field{Key: "endpoints", Value: m.opts.Endpoints})

	return client, nil
}

func init() {
	di.Provides(TokenClient, (*Module).ProvideClient)
	di.DependsOn((*Module).ProvideClient, logging.TokenLogger)
}
