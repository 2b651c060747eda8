package main

import (
	"fmt"

	"github.com/gocrud/inject/di"
)

var tokenTheme = di.NewToken("ui.theme")

type ThemeModule struct {
	di.ModuleBase
}

func (m *ThemeModule) Configure() error {
	m.Bind(tokenTheme).ToValue("dark")
	return nil
}

// Panel 由外部 UI 框架实例化的组件：构造签名不受我们控制，
// 框架传入的第一个参数携带 Injector。
type Panel struct {
	Theme string
	Raw   []any
}

func NewPanel(theme string, raw []any) *Panel {
	return &Panel{Theme: theme, Raw: raw}
}

// frameworkCtx 模拟框架传入的上下文对象
type frameworkCtx struct {
	inj *di.Injector
}

func (c *frameworkCtx) Injector() *di.Injector { return c.inj }

func main() {
	inj, err := di.NewInjector(&ThemeModule{})
	if err != nil {
		panic(err)
	}

	wrapped := di.Wrap(NewPanel, di.WrapConfig{
		Hook: func(target any, args []any) {
			fmt.Printf("constructing with %d raw args\n", len(args))
		},
	}, tokenTheme)

	instance, err := wrapped.New(&frameworkCtx{inj: inj}, "title=Settings")
	if err != nil {
		panic(err)
	}

	panel := instance.(*Panel)
	fmt.Printf("theme=%s raw=%v\n", panel.Theme, panel.Raw[1:])
}
