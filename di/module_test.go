package di_test

import (
	"testing"

	"github.com/gocrud/inject/di"
)

var tokenMode = di.NewToken("test.mode")

// overlapModule 同一令牌既有实例绑定又有提供者
type overlapModule struct {
	di.ModuleBase
}

func (m *overlapModule) Configure() error {
	m.Bind(tokenMode).ToValue("from-binding")
	return nil
}

func (m *overlapModule) ProvideMode() string {
	return "from-provider"
}

func init() {
	di.Provides(tokenMode, (*overlapModule).ProvideMode)
}

func TestProviderWinsOverInstanceBinding(t *testing.T) {
	inj, err := di.NewInjector(&overlapModule{})
	if err != nil {
		t.Fatalf("NewInjector failed: %v", err)
	}

	mode, err := di.Get[string](inj, tokenMode)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if mode != "from-provider" {
		t.Errorf("Expected provider to take precedence, got %q", mode)
	}
}

func TestHasCoversBindingsAndProviders(t *testing.T) {
	mod := &overlapModule{}
	if _, err := di.NewInjector(mod); err != nil {
		t.Fatalf("NewInjector failed: %v", err)
	}

	if !mod.Has(tokenMode) {
		t.Error("Has should report tokens owned via binding or provider")
	}

	if _, ok := mod.GetBinding(tokenMode); !ok {
		t.Error("GetBinding should still expose the shadowed instance binding")
	}
	if _, ok := mod.GetProvider(tokenMode); !ok {
		t.Error("GetProvider should expose the class-level provider")
	}
	if mod.Has(di.NewToken("unknown")) {
		t.Error("Has must be false for unowned tokens")
	}
}

func TestRebindOverwritesSilently(t *testing.T) {
	mod := &rebindModule{}
	inj, err := di.NewInjector(mod)
	if err != nil {
		t.Fatalf("NewInjector failed: %v", err)
	}

	v, err := di.Get[int](inj, tokenRebind)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if v != 2 {
		t.Errorf("Expected last bind to win, got %d", v)
	}
}

var tokenRebind = di.NewToken("test.rebind")

type rebindModule struct {
	di.ModuleBase
}

func (m *rebindModule) Configure() error {
	m.Bind(tokenRebind).ToValue(1)
	m.Bind(tokenRebind).ToValue(2)
	return nil
}

func TestProvidesRejectsNonMethod(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Provides must panic for non-method targets")
		}
	}()
	di.Provides(di.NewToken("bad"), 42)
}

// 提供者表是类型级的：两个实例共享同一张表，但各自作为接收者被调用
func TestProvidersAreSharedPerType(t *testing.T) {
	m1 := &BannerModule{}
	m2 := &BannerModule{}

	inj, err := di.NewInjector(m1)
	if err != nil {
		t.Fatalf("NewInjector failed: %v", err)
	}
	inj2, err := di.NewInjector(m2)
	if err != nil {
		t.Fatalf("NewInjector failed: %v", err)
	}

	if _, err := di.Get[string](inj, tokenBanner); err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if _, err := di.Get[string](inj2, tokenBanner); err != nil {
		t.Fatalf("Get failed: %v", err)
	}

	if m1.Calls != 1 || m2.Calls != 1 {
		t.Errorf("Each module instance should receive its own calls, got %d/%d", m1.Calls, m2.Calls)
	}
}
