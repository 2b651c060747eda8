package di

import (
	"fmt"
	"reflect"
)

// Injector 针对一个有序的模块列表解析令牌，并执行构造/调用。
//
// 解析是深度优先且无记忆化的：同一令牌被请求两次（直接或经由两个
// 不同的依赖方传递）会触发两次独立解析，可能构造出两个不同的实例。
// 这是设计上可观察的性质，不是缺陷——任何实现都不得加入缓存或
// 循环检测，否则会改变可观察行为。
type Injector struct {
	modules []Module
}

// NewInjector 用一组模块构造 Injector。
//
// 每个模块按给定顺序立即被 Configure；任一 Configure 失败都会
// 同步传播并中止构造。构造完成后模块列表不再变化。
func NewInjector(mods ...Module) (*Injector, error) {
	inj := &Injector{modules: make([]Module, 0, len(mods))}

	for _, mod := range mods {
		if sb, ok := mod.(selfBinder); ok {
			sb.bindSelf(mod)
		}
		if err := mod.Configure(); err != nil {
			return nil, fmt.Errorf("di: 配置模块 %T 失败: %w", mod, err)
		}
		inj.modules = append(inj.modules, mod)
	}

	return inj, nil
}

// Modules 返回已配置模块的只读副本，顺序即注册顺序。
func (inj *Injector) Modules() []Module {
	out := make([]Module, len(inj.modules))
	copy(out, inj.modules)
	return out
}

// GetDependencies 独立解析每个令牌（保持顺序）并返回值序列。
//
// 对每个令牌：按注册顺序扫描模块列表，第一个 Has 为真的模块胜出，
// 之后的模块即使也能满足该令牌也永远不会被咨询（无诊断）。
// 同一模块同时拥有提供者和绑定时，提供者优先。
func (inj *Injector) GetDependencies(tokens []Token) ([]any, error) {
	values := make([]any, 0, len(tokens))

	for _, token := range tokens {
		val, err := inj.resolve(token)
		if err != nil {
			return nil, err
		}
		values = append(values, val)
	}

	return values, nil
}

// resolve 解析单个令牌。
func (inj *Injector) resolve(token Token) (any, error) {
	owner := inj.findOwner(token)
	if owner == nil {
		return nil, MissingBindingError{Token: token}
	}

	// 提供者优先于实例绑定
	if method, ok := owner.GetProvider(token); ok {
		return inj.Execute(method, owner)
	}

	binding, ok := owner.GetBinding(token)
	if !ok {
		// Has 与 GetBinding/GetProvider 不一致只可能出在自定义 Module 实现上
		return nil, MissingBindingError{Token: token}
	}

	switch binding.Kind {
	case BindingValue:
		return binding.Value, nil
	case BindingFactory, BindingConstructor:
		return inj.Execute(binding.Func, nil)
	default:
		return nil, fmt.Errorf("di: 令牌 %v 的绑定类型 %d 未知", token, binding.Kind)
	}
}

// findOwner 返回第一个拥有该令牌的模块，没有时返回 nil。
func (inj *Injector) findOwner(token Token) Module {
	for _, mod := range inj.modules {
		if mod.Has(token) {
			return mod
		}
	}
	return nil
}

// Execute 解析 fn 声明的依赖令牌（未声明视为空列表），与 extra 拼接后
// 反射调用 fn。scope 非 nil 时作为第一个参数前置传入——这是方法表达式
// 的接收者位置，对应"以 scope 为调用作用域"的语义。
//
// 构造与调用在 Go 中是同一件事：构造函数就是返回实例的函数。
// 提供者调用、工厂绑定调用与显式 Create 都复用本方法。
//
// 返回值约定沿用惯例：最后一个返回值若是非 nil 的 error 则传播；
// 否则返回第一个非 error 返回值，没有返回值时返回 nil。
func (inj *Injector) Execute(fn any, scope any, extra ...any) (any, error) {
	fnVal := reflect.ValueOf(fn)
	if fnVal.Kind() != reflect.Func || fnVal.IsNil() {
		return nil, NotInvocableError{Type: reflect.TypeOf(fn)}
	}

	deps, err := inj.GetDependencies(dependenciesOf(fn))
	if err != nil {
		return nil, err
	}

	callArgs := make([]any, 0, 1+len(deps)+len(extra))
	if scope != nil {
		callArgs = append(callArgs, scope)
	}
	callArgs = append(callArgs, deps...)
	callArgs = append(callArgs, extra...)

	args, err := buildCallArgs(fnVal.Type(), callArgs)
	if err != nil {
		return nil, err
	}

	return extractResult(fnVal.Call(args))
}

// Create 获得一个完全装配好的实例：Execute(ctor, nil, params...) 的便捷入口。
func (inj *Injector) Create(ctor any, params ...any) (any, error) {
	return inj.Execute(ctor, nil, params...)
}

// buildCallArgs 将 any 参数列表转换为反射调用参数，处理 nil 与接口赋值。
func buildCallArgs(fnType reflect.Type, callArgs []any) ([]reflect.Value, error) {
	args := make([]reflect.Value, len(callArgs))

	for i, arg := range callArgs {
		paramType := paramTypeAt(fnType, i)

		if arg == nil {
			if paramType == nil {
				return nil, fmt.Errorf("di: 参数 %d 为 nil 且无法推断类型", i)
			}
			args[i] = reflect.Zero(paramType)
			continue
		}

		v := reflect.ValueOf(arg)
		if paramType != nil && v.Type() != paramType {
			if v.Type().AssignableTo(paramType) {
				// 接口参数：保持动态值，Call 会完成装箱
			} else if v.Type().ConvertibleTo(paramType) {
				v = v.Convert(paramType)
			}
		}
		args[i] = v
	}

	return args, nil
}

// paramTypeAt 返回第 i 个形参类型，可变参数展开为元素类型。
// 参数个数与签名不匹配时返回 nil，让 Call 自己 panic 出清晰的信息。
func paramTypeAt(fnType reflect.Type, i int) reflect.Type {
	numIn := fnType.NumIn()
	if fnType.IsVariadic() {
		if i >= numIn-1 {
			return fnType.In(numIn - 1).Elem()
		}
		return fnType.In(i)
	}
	if i < numIn {
		return fnType.In(i)
	}
	return nil
}

var errType = reflect.TypeOf((*error)(nil)).Elem()

// extractResult 处理调用结果：尾部 error 传播，返回首个值。
func extractResult(results []reflect.Value) (any, error) {
	if len(results) == 0 {
		return nil, nil
	}

	last := results[len(results)-1]
	if last.Type().Implements(errType) {
		if !last.IsNil() {
			return nil, last.Interface().(error)
		}
		results = results[:len(results)-1]
	}

	if len(results) == 0 {
		return nil, nil
	}
	return results[0].Interface(), nil
}
