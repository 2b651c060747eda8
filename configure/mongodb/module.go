package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/gocrud/inject/di"
	"github.com/gocrud/inject/logging"
	"github.com/gocrud/mgo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// TokenClient MongoDB 客户端的接口令牌
var TokenClient = di.NewToken("mongodb.client")

// Options MongoDB 客户端配置选项
type Options struct {
	Uri         string
	Username    string
	Password    string
	MaxPoolSize uint64
	MinPoolSize uint64
	Timeout     time.Duration
}

// NewDefaultOptions 创建默认配置
func NewDefaultOptions(uri string) *Options {
	return &Options{
		Uri:         uri,
		MaxPoolSize: 100,
		MinPoolSize: 5,
		Timeout:     10 * time.Second,
	}
}

// Validate 验证配置
func (o *Options) Validate() error {
	if o.Uri == "" {
		return fmt.Errorf("mongo uri is required")
	}
	if o.Timeout <= 0 {
		return fmt.Errorf("mongo timeout must be positive")
	}
	return nil
}

// Module MongoDB 模块：提供 *mgo.Client。
type Module struct {
	di.ModuleBase
	opts *Options
}

// NewModule 创建 MongoDB 模块。
func NewModule(uri string, configure func(*Options)) *Module {
	opts := NewDefaultOptions(uri)
	if configure != nil {
		configure(opts)
	}
	return &Module{opts: opts}
}

// Configure 实现 di.Module。
func (m *Module) Configure() error {
	if err := m.opts.Validate(); err != nil {
		return fmt.Errorf("invalid mongo configuration: %w", err)
	}
	return nil
}

// ProvideClient 连接 MongoDB 并返回客户端。
func (m *Module) ProvideClient(logger logging.Logger) (*mgo.Client, error) {
	clientOpts := options.Client()
	if m.opts.Username != "" || m.opts.Password != "" {
		clientOpts.SetAuth(options.Credential{
			Username: m.opts.Username,
			Password: m.opts.Password,
		})
	}
	if m.opts.MaxPoolSize > 0 {
		clientOpts.SetMaxPoolSize(m.opts.MaxPoolSize)
	}
	if m.opts.MinPoolSize > 0 {
		clientOpts.SetMinPoolSize(m.opts.MinPoolSize)
	}
	clientOpts.SetConnectTimeout(m.opts.Timeout)

	ctx, cancel := context.WithTimeout(context.Background(), m.opts.Timeout)
	defer cancel()

	client, err := mgo.NewClient(ctx, m.opts.Uri, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to create mongo client: %w", err)
	}

	logger.Info("mongo client built",
		logging.Field{Key: "uri", Value: m.opts.Uri})

	return client, nil
}

func init() {
	di.Provides(TokenClient, (*Module).ProvideClient)
	di.DependsOn((*Module).ProvideClient, logging.TokenLogger)
}
