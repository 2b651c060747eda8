package database

import (
	"fmt"
	"time"

	"github.com/gocrud/inject/di"
	"github.com/gocrud/inject/logging"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// TokenDB 数据库连接的接口令牌
var TokenDB = di.NewToken("database.db")

// Options 数据库配置选项
type Options struct {
	DSN          string         // 数据源，Dialector 未指定时用于 sqlite
	Dialector    gorm.Dialector // 自定义方言，优先于 DSN
	GormConfig   *gorm.Config
	MaxIdleConns int
	MaxOpenConns int
	MaxLifetime  time.Duration
	AutoMigrate  []any // 需要自动迁移的模型
}

// NewDefaultOptions 创建默认配置（内存 sqlite）
func NewDefaultOptions() *Options {
	return &Options{
		DSN:          "file::memory:?cache=shared",
		GormConfig:   &gorm.Config{},
		MaxIdleConns: 10,
		MaxOpenConns: 100,
		MaxLifetime:  time.Hour,
	}
}

// Validate 验证配置
func (o *Options) Validate() error {
	if o.Dialector == nil && o.DSN == "" {
		return fmt.Errorf("database DSN or dialector is required")
	}
	return nil
}

// dialector 返回生效的方言。
func (o *Options) dialector() gorm.Dialector {
	if o.Dialector != nil {
		return o.Dialector
	}
	return sqlite.Open(o.DSN)
}

// Module 数据库模块：提供 *gorm.DB。
//
// 解析不做缓存，每次解析 TokenDB 都会打开一条新连接；
// 需要共享连接的应用应解析一次后自行传递。
type Module struct {
	di.ModuleBase
	opts *Options
}

// NewModule 创建数据库模块。
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
		return fmt.Errorf("invalid database configuration: %w", err)
	}
	return nil
}

// ProvideDB 打开数据库连接，配置连接池并执行自动迁移。
func (m *Module) ProvideDB(logger logging.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(m.opts.dialector(), m.opts.GormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	sqlDB.SetMaxIdleConns(m.opts.MaxIdleConns)
	sqlDB.SetMaxOpenConns(m.opts.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(m.opts.MaxLifetime)

	if len(m.opts.AutoMigrate) > 0 {
		if err := db.AutoMigrate(m.opts.AutoMigrate...); err != nil {
			return nil, fmt.Errorf("auto migrate failed: %w", err)
		}
	}

	logger.Info("database opened",
		logging.Field{Key: "models", Value: len(m.opts.AutoMigrate)})

	return db, nil
}

func init() {
	di.Provides(TokenDB, (*Module).ProvideDB)
	di.DependsOn((*Module).ProvideDB, logging.TokenLogger)
}
