package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	clientv3 "go.etcd.io/etcd/client/v3"
	"gopkg.in/yaml.v3"
)

// EtcdSourceOptions etcd 配置源选项
type EtcdSourceOptions struct {
	// Endpoints etcd 节点地址
	Endpoints []string
	// KeyPrefix 读取的键前缀，例如 "/myapp/config/"
	KeyPrefix string
	// DialTimeout 连接超时，默认 5s
	DialTimeout time.Duration
	// RequestTimeout 单次读取超时，默认 3s
	RequestTimeout time.Duration
}

// AddEtcd 添加 etcd 配置源。
// 前缀下每个键映射为一条配置路径（"/" 作为层级分隔符），
// 值按 YAML 标量解析，因此 "8080" 会得到整数、"true" 会得到布尔值。
func (b *ConfigurationBuilder) AddEtcd(opts EtcdSourceOptions) *ConfigurationBuilder {
	return b.AddSource(&etcdSource{opts: opts})
}

type etcdSource struct {
	opts EtcdSourceOptions
}

func (s *etcdSource) Load() (map[string]any, error) {
	opts := s.opts
	if opts.DialTimeout <= 0 {
		opts.DialTimeout = 5 * time.Second
	}
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = 3 * time.Second
	}

	client, err := clientv3.New(clientv3.Config{
		Endpoints:   opts.Endpoints,
		DialTimeout: opts.DialTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("config: failed to connect to etcd: %w", err)
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), opts.RequestTimeout)
	defer cancel()

	resp, err := client.Get(ctx, opts.KeyPrefix, clientv3.WithPrefix())
	if err != nil {
		return nil, fmt.Errorf("config: failed to read etcd prefix %q: %w", opts.KeyPrefix, err)
	}

	data := make(map[string]any)
	for _, kv := range resp.Kvs {
		path := strings.TrimPrefix(string(kv.Key), opts.KeyPrefix)
		path = strings.Trim(path, "/")
		if path == "" {
			continue
		}

		var val any
		if err := yaml.Unmarshal(kv.Value, &val); err != nil {
			val = string(kv.Value)
		}
		setPath(data, strings.Split(path, "/"), val)
	}

	return data, nil
}
