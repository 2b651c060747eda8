package di

// BindingKind 绑定类型，由注册方显式指定
type BindingKind int

const (
	// BindingValue 值绑定，解析时原样返回，不做任何递归解析
	BindingValue BindingKind = iota
	// BindingFactory 工厂绑定，解析时作为自由函数调用，参数为其声明的依赖
	BindingFactory
	// BindingConstructor 构造函数绑定，解析时实例化，参数为其声明的依赖
	// 在 Go 中构造即调用，解析路径与 Factory 相同；保留两种标记
	// 是为了让注册方表达意图
	BindingConstructor
)

// Binding 模块实例级的绑定条目：令牌 → {值, 工厂, 构造函数} 之一。
type Binding struct {
	Kind  BindingKind
	Value any // BindingValue 时有效
	Func  any // BindingFactory / BindingConstructor 时有效
}

// Binder 由 ModuleBase.Bind 返回，用于完成一条绑定。
//
// 示例：
//
//	func (m *AppModule) Configure() error {
//		m.Bind(TokenAddr).ToValue(":8080")
//		m.Bind(TokenStore).ToConstructor(NewStore)
//		return nil
//	}
type Binder struct {
	module *ModuleBase
	token  Token
}

// ToValue 绑定一个具体值。重复绑定同一令牌时静默覆盖。
func (b *Binder) ToValue(v any) {
	b.module.setBinding(b.token, Binding{Kind: BindingValue, Value: v})
}

// ToFactory 绑定一个工厂函数。函数声明的依赖令牌会在调用前被递归解析。
func (b *Binder) ToFactory(fn any) {
	b.module.setBinding(b.token, Binding{Kind: BindingFactory, Func: fn})
}

// ToConstructor 绑定一个构造函数。每次解析都会重新实例化，不做缓存。
func (b *Binder) ToConstructor(fn any) {
	b.module.setBinding(b.token, Binding{Kind: BindingConstructor, Func: fn})
}
