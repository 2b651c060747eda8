package di

import (
	"reflect"
	"sync"
)

// Module 是配置单元的接口，拥有一组令牌的绑定和提供者。
//
// 具体模块通过内嵌 ModuleBase 获得除 Configure 之外的全部实现，
// 并重写 Configure 完成自己的绑定：
//
//	type AppModule struct {
//		di.ModuleBase
//	}
//
//	func (m *AppModule) Configure() error {
//		m.Bind(TokenAddr).ToValue(":8080")
//		return nil
//	}
type Module interface {
	// Configure 填充模块的绑定表。由 Injector 在构造时调用，恰好一次。
	Configure() error

	// Has 报告模块是否拥有该令牌（绑定表或提供者表二者之一包含即可）。
	// 这是 Injector 选择归属模块时唯一使用的存在性检查。
	Has(token Token) bool

	// GetBinding 返回实例级绑定，不存在时 ok 为 false。
	GetBinding(token Token) (Binding, bool)

	// GetProvider 返回模块类型上注册的提供者方法，不存在时 ok 为 false。
	GetProvider(token Token) (any, bool)
}

// selfBinder 由 Injector 在构造时调用，让 ModuleBase 知道外层具体类型。
// 提供者表以具体模块类型为键，内嵌的基类自身无法看到外层类型。
type selfBinder interface {
	bindSelf(self Module)
}

// ModuleBase 是 Module 的基类实现。
//
// 绑定表是实例级的可变状态，只应在 Configure 期间写入；
// 提供者表是模块类型级的共享状态，见 Provides。
type ModuleBase struct {
	bindings map[Token]Binding
	self     Module
}

// Configure 基类实现：未重写即为配置错误。
func (m *ModuleBase) Configure() error {
	return ErrConfigureNotImplemented
}

// Bind 开始一条绑定，返回 Binder 以指定实现。
func (m *ModuleBase) Bind(token Token) *Binder {
	return &Binder{module: m, token: token}
}

func (m *ModuleBase) setBinding(token Token, b Binding) {
	if m.bindings == nil {
		m.bindings = make(map[Token]Binding)
	}
	m.bindings[token] = b
}

// GetBinding 返回实例级绑定。
func (m *ModuleBase) GetBinding(token Token) (Binding, bool) {
	b, ok := m.bindings[token]
	return b, ok
}

// GetProvider 返回模块类型上为该令牌注册的提供者方法表达式。
func (m *ModuleBase) GetProvider(token Token) (any, bool) {
	if m.self == nil {
		return nil, false
	}
	return lookupProvider(reflect.TypeOf(m.self), token)
}

// Has 报告绑定表或提供者表是否包含该令牌。
// 与 GetBinding/GetProvider 的后续返回保持一致（单线程同步，无竞争）。
func (m *ModuleBase) Has(token Token) bool {
	if _, ok := m.bindings[token]; ok {
		return true
	}
	_, ok := m.GetProvider(token)
	return ok
}

func (m *ModuleBase) bindSelf(self Module) {
	m.self = self
}

// ---------------- 模块类型级提供者表 ----------------

// 提供者表以具体模块类型为键，被该类型的所有实例共享：
// 提供者是模块类型的固定能力，绑定才是实例级配置。
var (
	providerMu sync.RWMutex
	providers  = make(map[reflect.Type]map[Token]any)
)

// Provides 将方法表达式注册为其所属模块类型上该令牌的提供者。
//
// method 必须是方法表达式，第一个参数为模块指针类型：
//
//	func init() {
//		di.Provides(TokenEngine, (*WebModule).ProvideEngine)
//	}
//
// 提供者方法自身声明的依赖（见 DependsOn）会在调用前被递归解析，
// 解析结果作为位置参数跟在模块实例之后传入。
// 同一类型同一令牌重复注册时后写覆盖前写。
func Provides(token Token, method any) {
	v := reflect.ValueOf(method)
	if v.Kind() != reflect.Func || v.Type().NumIn() == 0 {
		panic(InvalidProviderError{Method: method})
	}

	recv := v.Type().In(0)
	if recv.Kind() != reflect.Ptr || recv.Elem().Kind() != reflect.Struct {
		panic(InvalidProviderError{Method: method})
	}

	providerMu.Lock()
	defer providerMu.Unlock()

	table, ok := providers[recv]
	if !ok {
		table = make(map[Token]any)
		providers[recv] = table
	}
	table[token] = method
}

func lookupProvider(moduleType reflect.Type, token Token) (any, bool) {
	providerMu.RLock()
	defer providerMu.RUnlock()

	table, ok := providers[moduleType]
	if !ok {
		return nil, false
	}
	method, ok := table[token]
	return method, ok
}
