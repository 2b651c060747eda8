package di_test

import (
	"errors"
	"testing"

	"github.com/gocrud/inject/di"
)

var tokenTheme = di.NewToken("test.theme")

type themeModule struct {
	di.ModuleBase
}

func (m *themeModule) Configure() error {
	m.Bind(tokenTheme).ToValue("dark")
	return nil
}

// frameworkCtx 模拟外部框架传入的第一个构造参数
type frameworkCtx struct {
	inj *di.Injector
}

func (c *frameworkCtx) Injector() *di.Injector {
	return c.inj
}

type widget struct {
	theme string
	raw   []any
}

func newWidget(theme string, raw []any) *widget {
	return &widget{theme: theme, raw: raw}
}

func TestWrapInjectsDepsAndAppendsRawArgs(t *testing.T) {
	inj, err := di.NewInjector(&themeModule{})
	if err != nil {
		t.Fatalf("NewInjector failed: %v", err)
	}

	var hookedTarget any
	var hookedArgs []any

	wrapped := di.Wrap(newWidget, di.WrapConfig{
		Hook: func(target any, args []any) {
			hookedTarget = target
			hookedArgs = args
		},
	}, tokenTheme)

	ctx := &frameworkCtx{inj: inj}
	instance, err := wrapped.New(ctx, "extra-1", 2)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if hookedTarget == nil {
		t.Fatal("Hook was not invoked")
	}
	if len(hookedArgs) != 3 {
		t.Fatalf("Hook should see the raw incoming args, got %v", hookedArgs)
	}

	w := instance.(*widget)
	if w.theme != "dark" {
		t.Errorf("Resolved dependency not injected, theme=%q", w.theme)
	}

	// 原始参数整体作为单个尾部元素传入，不展开
	if len(w.raw) != 3 {
		t.Fatalf("Expected raw args as one trailing slice, got %v", w.raw)
	}
	if w.raw[0] != any(ctx) || w.raw[1] != "extra-1" || w.raw[2] != 2 {
		t.Errorf("Raw args not preserved: %v", w.raw)
	}
}

func TestWrapHookCanMutateArgs(t *testing.T) {
	inj, err := di.NewInjector(&themeModule{})
	if err != nil {
		t.Fatalf("NewInjector failed: %v", err)
	}

	wrapped := di.Wrap(newWidget, di.WrapConfig{
		Hook: func(target any, args []any) {
			args[1] = "mutated"
		},
	}, tokenTheme)

	instance, err := wrapped.New(&frameworkCtx{inj: inj}, "original")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	w := instance.(*widget)
	if w.raw[1] != "mutated" {
		t.Errorf("Hook mutation must be visible to the constructor, got %v", w.raw[1])
	}
}

func TestWrapExposesOriginalTarget(t *testing.T) {
	wrapped := di.Wrap(newWidget, di.WrapConfig{}, tokenTheme)

	if wrapped.Unwrap() == nil {
		t.Fatal("Unwrap returned nil")
	}
	if len(wrapped.Tokens()) != 1 || wrapped.Tokens()[0] != tokenTheme {
		t.Errorf("Tokens should expose the declared list, got %v", wrapped.Tokens())
	}
}

func TestWrapPanicsOnNonFunctionTarget(t *testing.T) {
	defer func() {
		rec := recover()
		if rec == nil {
			t.Fatal("Wrap must panic for non-function targets")
		}
		if _, ok := rec.(di.InvalidWrapTargetError); !ok {
			t.Errorf("Expected InvalidWrapTargetError, got %T", rec)
		}
	}()
	di.Wrap("not-a-constructor", di.WrapConfig{})
}

func TestWrapRequiresInjectorProvider(t *testing.T) {
	wrapped := di.Wrap(newWidget, di.WrapConfig{}, tokenTheme)

	if _, err := wrapped.New("plain-arg"); !errors.Is(err, di.ErrNoInjector) {
		t.Errorf("Expected ErrNoInjector, got %v", err)
	}
	if _, err := wrapped.New(); !errors.Is(err, di.ErrNoInjector) {
		t.Errorf("Expected ErrNoInjector for empty args, got %v", err)
	}
}
