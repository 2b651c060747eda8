package di

import (
	"reflect"
	"sync"
)

// declaration 依赖声明描述符：目标身份 + 有序令牌列表 + 可选的成员名。
type declaration struct {
	member string
	tokens []Token
}

// 进程级声明注册表，以函数代码指针为键。
// 方法表达式 (*M).Provide 对所有 *M 实例共享同一个代码指针，
// 因此声明天然是"类级"的。
var (
	declMu       sync.RWMutex
	declarations = make(map[uintptr]declaration)
)

// DependsOn 为构造函数、工厂函数或提供者方法声明有序的依赖令牌列表。
//
// 令牌顺序即解析时的位置参数顺序。重复声明同一目标时后写覆盖前写，
// 没有合并语义。重复令牌、空列表均被静默接受，不做任何校验。
//
// 示例：
//
//	di.DependsOn(NewUserService, TokenDB, TokenLogger)
//	di.DependsOn((*AppModule).ProvideServer, TokenEngine)
func DependsOn(fn any, tokens ...Token) {
	declare(fn, "", tokens)
}

// DependsOnMethod 与 DependsOn 相同，但额外记录成员名，
// 用于为具名方法声明依赖时的诊断输出。
func DependsOnMethod(fn any, member string, tokens ...Token) {
	declare(fn, member, tokens)
}

func declare(fn any, member string, tokens []Token) {
	key, ok := funcKey(fn)
	if !ok {
		// 非函数目标静默接受：声明永远不会被执行到
		return
	}

	declMu.Lock()
	declarations[key] = declaration{member: member, tokens: tokens}
	declMu.Unlock()
}

// dependenciesOf 返回目标声明的令牌列表，未声明时返回 nil。
func dependenciesOf(fn any) []Token {
	key, ok := funcKey(fn)
	if !ok {
		return nil
	}

	declMu.RLock()
	decl, ok := declarations[key]
	declMu.RUnlock()

	if !ok {
		return nil
	}
	return decl.tokens
}

// funcKey 计算函数的身份键（代码入口指针）。
func funcKey(fn any) (uintptr, bool) {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.IsNil() {
		return 0, false
	}
	return v.Pointer(), true
}
