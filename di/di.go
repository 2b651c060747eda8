// Package di 实现一个小型的依赖注入库：按接口令牌声明依赖，
// Module 把令牌绑定到实现（值、工厂或构造函数）或指定提供者方法，
// Injector 针对有序模块列表递归解析依赖图并按需实例化。
//
// 设计上的明确取舍（不是待修复项）：
//   - 不做编译期图校验
//   - 不检测、不打断循环依赖
//   - 不缓存单例实例——除值绑定外每次解析都重新执行提供者/构造函数
//   - 不支持作用域/子注入器
package di

import "fmt"

// Get 解析单个令牌并断言为类型 T。
//
// 示例：
//
//	engine, err := di.Get[*gin.Engine](inj, web.TokenEngine)
func Get[T any](inj *Injector, token Token) (T, error) {
	var zero T

	deps, err := inj.GetDependencies([]Token{token})
	if err != nil {
		return zero, err
	}

	if deps[0] == nil {
		return zero, nil
	}

	v, ok := deps[0].(T)
	if !ok {
		return zero, fmt.Errorf("di: 令牌 %v 解析结果为 %T，期望 %T", token, deps[0], zero)
	}
	return v, nil
}

// MustGet 解析单个令牌，失败时 panic。适合在装配代码中快速失败。
func MustGet[T any](inj *Injector, token Token) T {
	v, err := Get[T](inj, token)
	if err != nil {
		panic(err)
	}
	return v
}
