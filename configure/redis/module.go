package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/gocrud/inject/di"
	"github.com/gocrud/inject/logging"
	"github.com/redis/go-redis/v9"
)

// TokenClient Redis 客户端的接口令牌
var TokenClient = di.NewToken("redis.client")

// Options Redis 客户端配置选项
type Options struct {
	Addr         string        // Redis 服务器地址 (host:port)
	Password     string        // 密码（可选）
	DB           int           // 数据库编号
	DialTimeout  time.Duration // 连接超时时间
	ReadTimeout  time.Duration // 读取超时时间
	WriteTimeout time.Duration // 写入超时时间
	PoolSize     int           // 连接池大小
	MinIdleConns int           // 最小空闲连接数
	MaxRetries   int           // 最大重试次数
	// VerifyConnection 构造时是否 Ping 验证连通性
	VerifyConnection bool
}

// NewDefaultOptions 创建默认配置
func NewDefaultOptions() *Options {
	return &Options{
		Addr:         "localhost:6379",
		DB:           0,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 5,
		MaxRetries:   3,
	}
}

// Validate 验证配置
func (o *Options) Validate() error {
	if o.Addr == "" {
		return fmt.Errorf("redis address is required")
	}
	if o.DB < 0 {
		return fmt.Errorf("redis database number must be non-negative")
	}
	if o.DialTimeout <= 0 {
		return fmt.Errorf("redis dial timeout must be positive")
	}
	return nil
}

// Module Redis 模块：提供 *redis.Client。
type Module struct {
	di.ModuleBase
	opts *Options
}

// NewModule 创建 Redis 模块。
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
		return fmt.Errorf("invalid redis configuration: %w", err)
	}
	return nil
}

// ProvideClient 构造 Redis 客户端，按配置验证连通性。
func (m *Module) ProvideClient(logger logging.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         m.opts.Addr,
		Password:     m.opts.Password,
		DB:           m.opts.DB,
		DialTimeout:  m.opts.DialTimeout,
		ReadTimeout:  m.opts.ReadTimeout,
		WriteTimeout: m.opts.WriteTimeout,
		PoolSize:     m.opts.PoolSize,
		MinIdleConns: m.opts.MinIdleConns,
		MaxRetries:   m.opts.MaxRetries,
	})

	if m.opts.VerifyConnection {
		ctx, cancel := context.WithTimeout(context.Background(), m.opts.DialTimeout)
		defer cancel()

		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
	}

	logger.Info("redis client built",
		logging.Field{Key: "addr", Value: m.opts.Addr},
		logging.Field{Key: "db", Value: m.opts.DB})

	return client, nil
}

func init() {
	di.Provides(TokenClient, (*Module).ProvideClient)
	di.DependsOn((*Module).ProvideClient, logging.TokenLogger)
}
