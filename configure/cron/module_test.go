package cron_test

import (
	"io"
	"testing"

	cronmod "github.com/gocrud/inject/configure/cron"
	"github.com/gocrud/inject/di"
	"github.com/gocrud/inject/logging"
	"github.com/robfig/cron/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogging() di.Module {
	return logging.NewModule(func(b *logging.LoggingBuilder) {
		b.SetOutput(io.Discard)
	})
}

func TestProvideSchedulerWithJobs(t *testing.T) {
	inj, err := di.NewInjector(
		quietLogging(),
		cronmod.NewModule(func(o *cronmod.Options) {
			o.AddJob("cleanup", "@hourly", func() {})
			o.AddJob("report", "0 0 * * *", func() {})
		}),
	)
	require.NoError(t, err)

	scheduler, err := di.Get[*cron.Cron](inj, cronmod.TokenScheduler)
	require.NoError(t, err)

	// 调度器未启动，任务已注册
	assert.Len(t, scheduler.Entries(), 2)
}

func TestInvalidSpecFailsResolution(t *testing.T) {
	inj, err := di.NewInjector(
		quietLogging(),
		cronmod.NewModule(func(o *cronmod.Options) {
			o.AddJob("broken", "not-a-spec", func() {})
		}),
	)
	require.NoError(t, err)

	// 配置本身合法，解析时注册任务失败并传播
	_, err = di.Get[*cron.Cron](inj, cronmod.TokenScheduler)
	assert.Error(t, err)
}

func TestOptionsValidation(t *testing.T) {
	opts := cronmod.NewDefaultOptions()
	assert.NoError(t, opts.Validate())

	opts.AddJob("bad", "", func() {})
	assert.Error(t, opts.Validate())

	opts = cronmod.NewDefaultOptions()
	opts.AddJob("nil-cmd", "@daily", nil)
	assert.Error(t, opts.Validate())
}
