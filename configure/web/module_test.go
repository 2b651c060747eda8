package web_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gocrud/inject/configure/web"
	"github.com/gocrud/inject/di"
	"github.com/gocrud/inject/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogging() di.Module {
	return logging.NewModule(func(b *logging.LoggingBuilder) {
		b.SetOutput(io.Discard)
	})
}

func TestProvideEngineWithRoutes(t *testing.T) {
	inj, err := di.NewInjector(
		quietLogging(),
		web.NewModule(func(o *web.Options) {
			o.Mode = gin.TestMode
			o.AddRoutes(func(e *gin.Engine) {
				e.GET("/ping", func(c *gin.Context) {
					c.String(http.StatusOK, "pong")
				})
			})
		}),
	)
	require.NoError(t, err)

	engine, err := di.Get[*gin.Engine](inj, web.TokenEngine)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", rec.Body.String())
}

func TestProvideServerDependsOnEngine(t *testing.T) {
	inj, err := di.NewInjector(
		quietLogging(),
		web.NewModule(func(o *web.Options) {
			o.Mode = gin.TestMode
			o.Port = 9091
		}),
	)
	require.NoError(t, err)

	server, err := di.Get[*http.Server](inj, web.TokenServer)
	require.NoError(t, err)

	assert.Equal(t, ":9091", server.Addr)
	assert.NotNil(t, server.Handler)
}

func TestOptionsValidation(t *testing.T) {
	opts := web.NewDefaultOptions()
	assert.NoError(t, opts.Validate())

	opts.Port = 0
	assert.Error(t, opts.Validate())

	opts = web.NewDefaultOptions()
	opts.Mode = "bogus"
	assert.Error(t, opts.Validate())
}

func TestConfigureRejectsInvalidOptions(t *testing.T) {
	_, err := di.NewInjector(
		quietLogging(),
		web.NewModule(func(o *web.Options) {
			o.Port = -1
		}),
	)
	assert.Error(t, err)
}
