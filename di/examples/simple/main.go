package main

import (
	"fmt"

	"github.com/gocrud/inject/di"
)

var (
	tokenDSN   = di.NewToken("demo.dsn")
	tokenStore = di.NewToken("demo.store")
	tokenHello = di.NewToken("demo.hello")
)

type Store struct {
	DSN string
}

func NewStore(dsn string) *Store {
	return &Store{DSN: dsn}
}

// DemoModule 值绑定 + 构造函数绑定 + 提供者方法
type DemoModule struct {
	di.ModuleBase
}

func (m *DemoModule) Configure() error {
	m.Bind(tokenDSN).ToValue("file::memory:")
	m.Bind(tokenStore).ToConstructor(NewStore)
	return nil
}

func (m *DemoModule) ProvideHello(store *Store) string {
	return "hello from " + store.DSN
}

func init() {
	di.DependsOn(NewStore, tokenDSN)
	di.Provides(tokenHello, (*DemoModule).ProvideHello)
	di.DependsOn((*DemoModule).ProvideHello, tokenStore)
}

type App struct {
	store *Store
	name  string
}

func NewApp(store *Store, name string) *App {
	return &App{store: store, name: name}
}

func main() {
	inj, err := di.NewInjector(&DemoModule{})
	if err != nil {
		panic(err)
	}

	// 声明依赖 + 额外参数
	di.DependsOn(NewApp, tokenStore)
	app, err := inj.Create(NewApp, "demo")
	if err != nil {
		panic(err)
	}
	fmt.Printf("app=%s store=%s\n", app.(*App).name, app.(*App).store.DSN)

	// 提供者解析：每次调用都重新执行
	hello := di.MustGet[string](inj, tokenHello)
	fmt.Println(hello)
}
