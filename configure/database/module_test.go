package database_test

import (
	"io"
	"testing"

	"github.com/gocrud/inject/configure/database"
	"github.com/gocrud/inject/di"
	"github.com/gocrud/inject/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type Account struct {
	ID   uint `gorm:"primarykey"`
	Name string
}

func quietLogging() di.Module {
	return logging.NewModule(func(b *logging.LoggingBuilder) {
		b.SetOutput(io.Discard)
	})
}

func TestProvideDBWithAutoMigrate(t *testing.T) {
	inj, err := di.NewInjector(
		quietLogging(),
		database.NewModule(func(o *database.Options) {
			o.DSN = "file::memory:"
			o.AutoMigrate = []any{&Account{}}
		}),
	)
	require.NoError(t, err)

	db, err := di.Get[*gorm.DB](inj, database.TokenDB)
	require.NoError(t, err)

	// 迁移生效：可以直接写入
	require.NoError(t, db.Create(&Account{Name: "alice"}).Error)

	var count int64
	require.NoError(t, db.Model(&Account{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestResolutionIsNotCached(t *testing.T) {
	inj, err := di.NewInjector(
		quietLogging(),
		database.NewModule(func(o *database.Options) {
			o.DSN = "file::memory:"
		}),
	)
	require.NoError(t, err)

	first, err := di.Get[*gorm.DB](inj, database.TokenDB)
	require.NoError(t, err)
	second, err := di.Get[*gorm.DB](inj, database.TokenDB)
	require.NoError(t, err)

	// 每次解析都重新打开连接
	assert.NotSame(t, first, second)
}

func TestOptionsValidation(t *testing.T) {
	opts := database.NewDefaultOptions()
	assert.NoError(t, opts.Validate())

	opts.DSN = ""
	opts.Dialector = nil
	assert.Error(t, opts.Validate())
}
