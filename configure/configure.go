// Package configure 汇集内建的注入模块：每个子包用第三方客户端实现一个
// di.Module，通过提供者方法把客户端实例暴露为可注入的令牌。
package configure

import (
	"github.com/gocrud/inject/configure/cron"
	"github.com/gocrud/inject/configure/database"
	"github.com/gocrud/inject/configure/etcd"
	"github.com/gocrud/inject/configure/mongodb"
	"github.com/gocrud/inject/configure/redis"
	"github.com/gocrud/inject/configure/web"
	"github.com/gocrud/inject/di"
)

// Web 便捷导出 Web 模块
// 使用示例: di.NewInjector(configure.Web(func(o *web.Options) { ... }))
func Web(options func(*web.Options)) di.Module {
	return web.NewModule(options)
}

// Database 便捷导出数据库模块
func Database(options func(*database.Options)) di.Module {
	return database.NewModule(options)
}

// Redis 便捷导出 Redis 模块
func Redis(options func(*redis.Options)) di.Module {
	return redis.NewModule(options)
}

// Mongo 便捷导出 MongoDB 模块
func Mongo(uri string, options func(*mongodb.Options)) di.Module {
	return mongodb.NewModule(uri, options)
}

// Etcd 便捷导出 etcd 模块
func Etcd(options func(*etcd.Options)) di.Module {
	return etcd.NewModule(options)
}

// Cron 便捷导出 Cron 模块
func Cron(options func(*cron.Options)) di.Module {
	return cron.NewModule(options)
}
