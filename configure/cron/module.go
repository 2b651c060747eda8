package cron

import (
	"fmt"
	"time"

	"github.com/gocrud/inject/di"
	"github.com/gocrud/inject/logging"
	"github.com/robfig/cron/v3"
)

// TokenScheduler 定时任务调度器的接口令牌
var TokenScheduler = di.NewToken("cron.scheduler")

// Job 一条定时任务
type Job struct {
	Name string // 任务名称，用于日志
	Spec string // cron 表达式
	Cmd  func()
}

// Options Cron 调度器配置选项
type Options struct {
	// Location 时区，默认 UTC
	Location string
	// EnableSeconds 是否启用秒级精度（默认分钟级）
	EnableSeconds bool
	// Jobs 声明式任务列表
	Jobs []Job
}

// NewDefaultOptions 创建默认配置
func NewDefaultOptions() *Options {
	return &Options{
		Location: "UTC",
	}
}

// Validate 验证配置
func (o *Options) Validate() error {
	for _, job := range o.Jobs {
		if job.Spec == "" {
			return fmt.Errorf("cron job %q has empty spec", job.Name)
		}
		if job.Cmd == nil {
			return fmt.Errorf("cron job %q has nil command", job.Name)
		}
	}
	return nil
}

// AddJob 追加一条任务
func (o *Options) AddJob(name, spec string, cmd func()) *Options {
	o.Jobs = append(o.Jobs, Job{Name: name, Spec: spec, Cmd: cmd})
	return o
}

// Module Cron 模块：提供已注册全部任务的 *cron.Cron。
// 调度器不会自动启动，由调用方决定何时 Start/Stop。
type Module struct {
	di.ModuleBase
	opts *Options
}

// NewModule 创建 Cron 模块。
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
		return fmt.Errorf("invalid cron configuration: %w", err)
	}
	return nil
}

// ProvideScheduler 构造调度器并注册任务。
func (m *Module) ProvideScheduler(logger logging.Logger) (*cron.Cron, error) {
	location, err := time.LoadLocation(m.opts.Location)
	if err != nil {
		return nil, fmt.Errorf("invalid cron location %q: %w", m.opts.Location, err)
	}

	cronOpts := []cron.Option{cron.WithLocation(location)}
	if m.opts.EnableSeconds {
		cronOpts = append(cronOpts, cron.WithSeconds())
	}

	scheduler := cron.New(cronOpts...)

	for _, job := range m.opts.Jobs {
		if _, err := scheduler.AddFunc(job.Spec, job.Cmd); err != nil {
			return nil, fmt.Errorf("failed to add cron job %q: %w", job.Name, err)
		}
		logger.Info("cron job registered",
			logging.Field{Key: "name", Value: job.Name},
			logging.Field{Key: "spec", Value: job.Spec})
	}

	return scheduler, nil
}

func init() {
	di.Provides(TokenScheduler, (*Module).ProvideScheduler)
	di.DependsOn((*Module).ProvideScheduler, logging.TokenLogger)
}
