package di

import "reflect"

// InjectorProvider 由 Wrapped.New 的第一个构造参数实现，
// 用于暴露当前活动的 Injector。
//
// 适配那些由第三方框架自行实例化、构造签名不受调用方控制的场景：
// 框架传入的第一个参数对象携带 Injector，包装层从中取出并完成注入。
type InjectorProvider interface {
	Injector() *Injector
}

// WrapConfig 包装配置。
type WrapConfig struct {
	// Hook 可选的副作用回调，在注入发生前调用，
	// 可以检查/变更原始传入参数（就地修改 args 切片）。
	Hook func(target any, args []any)

	// Pass 直通模式（构造未包装的原始实例）。
	// 概念保留，当前未实现，设置后无任何效果。
	Pass bool
}

// Wrapped 是构造拦截器：在外部框架控制构造签名的场景下，
// 把解析出的依赖作为前置参数注入目标构造函数。
type Wrapped struct {
	target any
	cfg    WrapConfig
	tokens []Token
}

// Wrap 用给定配置包装目标构造函数，并把 tokens 记录为其声明的依赖列表。
//
// 目标必须是函数；误把非函数目标（例如方法名字符串或已构造的值）
// 传入时在包装时立即 panic，而不是等到解析时才失败。
//
// 目标构造函数的签名约定：解析出的依赖按声明顺序作为前置参数，
// 原始构造参数整体作为最后一个 []any 参数传入（不展开）：
//
//	func NewWidget(store *Store, logger logging.Logger, raw []any) *Widget
func Wrap(target any, cfg WrapConfig, tokens ...Token) *Wrapped {
	v := reflect.ValueOf(target)
	if v.Kind() != reflect.Func || v.IsNil() {
		panic(InvalidWrapTargetError{Target: target})
	}

	DependsOn(target, tokens...)

	return &Wrapped{target: target, cfg: cfg, tokens: tokens}
}

// New 拦截构造：第一个参数必须实现 InjectorProvider。
//
// 执行顺序：先调用 Hook(target, args)（如果设置），然后通过 Injector
// 解析包装时声明的依赖列表，最后以"依赖值... + 原始参数整体"调用目标。
func (w *Wrapped) New(args ...any) (any, error) {
	if len(args) == 0 {
		return nil, ErrNoInjector
	}

	provider, ok := args[0].(InjectorProvider)
	if !ok {
		return nil, ErrNoInjector
	}
	inj := provider.Injector()

	if w.cfg.Hook != nil {
		w.cfg.Hook(w.target, args)
	}

	// 原始参数整体作为单个尾部元素追加，不展开
	return inj.Execute(w.target, nil, args)
}

// Unwrap 返回未包装的原始构造函数，供调用方和工具恢复原始类型身份。
func (w *Wrapped) Unwrap() any {
	return w.target
}

// Tokens 返回包装时声明的依赖令牌列表。
func (w *Wrapped) Tokens() []Token {
	return w.tokens
}
