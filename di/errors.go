package di

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrConfigureNotImplemented 表示 Module 子类没有重写 Configure。
// 基类的 Configure 不绑定任何东西，直接使用属于配置错误。
var ErrConfigureNotImplemented = errors.New("di: Configure 未实现，Module 子类必须重写 Configure")

// MissingBindingError 表示没有任何已配置的模块拥有请求的令牌。
// 携带未解析的令牌以便诊断。
type MissingBindingError struct {
	Token Token
}

// Error 实现 error 接口。
func (e MissingBindingError) Error() string {
	return fmt.Sprintf("di: 未找到令牌 %v 的实现", e.Token)
}

// ErrNoInjector 表示 Wrapped.New 的第一个参数没有携带 Injector。
var ErrNoInjector = errors.New("di: 包装构造的第一个参数必须实现 InjectorProvider")

// InvalidWrapTargetError 表示 Wrap 被应用到了非函数目标上。
// 在包装时立即抛出，而不是等到解析时。
type InvalidWrapTargetError struct {
	Target any
}

// Error 实现 error 接口。
func (e InvalidWrapTargetError) Error() string {
	return fmt.Sprintf("di: Wrap 目标必须是构造函数，得到 %T", e.Target)
}

// NotInvocableError 表示 Execute/Create 收到了不可调用的目标。
type NotInvocableError struct {
	Type reflect.Type
}

// Error 实现 error 接口。
func (e NotInvocableError) Error() string {
	return fmt.Sprintf("di: 期望函数，得到 %v", e.Type)
}

// InvalidProviderError 表示 Provides 收到的方法不是合法的提供者方法表达式。
type InvalidProviderError struct {
	Method any
}

// Error 实现 error 接口。
func (e InvalidProviderError) Error() string {
	return fmt.Sprintf("di: 提供者必须是方法表达式 func(*Module, ...)，得到 %T", e.Method)
}
