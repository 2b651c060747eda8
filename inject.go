// Package inject 在根包薄薄地导出 di 核心的入口，
// 应用代码通常只需要 import 这一个包加上所需的 configure 子包。
package inject

import "github.com/gocrud/inject/di"

// Token 接口令牌
type Token = di.Token

// Module 配置单元接口
type Module = di.Module

// ModuleBase Module 基类
type ModuleBase = di.ModuleBase

// Injector 依赖解析器
type Injector = di.Injector

// WrapConfig 包装配置
type WrapConfig = di.WrapConfig

// NewToken 创建指针身份令牌
func NewToken(name string) Token {
	return di.NewToken(name)
}

// NewInjector 配置模块并构造 Injector
func NewInjector(mods ...Module) (*Injector, error) {
	return di.NewInjector(mods...)
}

// DependsOn 为构造函数/工厂/提供者方法声明依赖令牌
func DependsOn(fn any, tokens ...Token) {
	di.DependsOn(fn, tokens...)
}

// Provides 注册模块类型级提供者方法
func Provides(token Token, method any) {
	di.Provides(token, method)
}

// Wrap 包装构造函数以支持外部框架控制的构造签名
func Wrap(target any, cfg WrapConfig, tokens ...Token) *di.Wrapped {
	return di.Wrap(target, cfg, tokens...)
}
