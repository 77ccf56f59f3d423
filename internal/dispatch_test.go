package internal_test

import (
	"testing"

	"github.com/kddnewton/natalie/internal"
)

func constMethod(rt *internal.Runtime, s string) internal.NativeFn {
	return func(env *internal.Env, self internal.Value, args []internal.Value, block *internal.Block) internal.Value {
		return rt.NewString(s)
	}
}

// TestSendModuleShadowsSuperclass checks the module-shadows-class dispatch
// scenario: a method defined on an included module takes precedence over
// one inherited from the superclass.
func TestSendModuleShadowsSuperclass(t *testing.T) {
	rt := internal.NewRuntime()
	animal := rt.NewClass("Animal", rt.ObjectClass)
	animal.DefineMethod("speak", constMethod(rt, "animal"))

	mod := rt.NewModule("Loud")
	mod.DefineMethod("speak", constMethod(rt, "module"))

	dog := rt.NewClass("Dog", animal)
	dog.IncludeModule(mod)

	env := rt.NewTopEnv()
	obj := rt.NewObject(dog)
	result := rt.Send(env, obj, "speak", nil, nil)
	s, ok := result.(*internal.StringValue)
	if !ok || s.Str != "module" {
		t.Errorf("Send must prefer the included module's method, got %v", result)
	}
}

// TestSendModuleShadowsOwnClassMethod checks the stronger module-shadows-
// class case: a method defined directly on a class is still shadowed by a
// same-named method on a module that class includes.
func TestSendModuleShadowsOwnClassMethod(t *testing.T) {
	rt := internal.NewRuntime()
	a := rt.NewClass("A", rt.ObjectClass)
	a.DefineMethod("foo", func(env *internal.Env, self internal.Value, args []internal.Value, block *internal.Block) internal.Value {
		return internal.Integer(1)
	})

	m := rt.NewModule("M")
	m.DefineMethod("foo", func(env *internal.Env, self internal.Value, args []internal.Value, block *internal.Block) internal.Value {
		return internal.Integer(2)
	})
	a.IncludeModule(m)

	env := rt.NewTopEnv()
	obj := rt.NewObject(a)
	result := rt.Send(env, obj, "foo", nil, nil)
	n, ok := result.(internal.Integer)
	if !ok || n != 2 {
		t.Errorf("Send(A.new, %q) = %v, want Integer(2): an included module must shadow the including class's own method", "foo", result)
	}
}

// TestSendSingletonMethodTakesPrecedence checks that a singleton method
// takes precedence over a class method.
func TestSendSingletonMethodTakesPrecedence(t *testing.T) {
	rt := internal.NewRuntime()
	animal := rt.NewClass("Animal", rt.ObjectClass)
	animal.DefineMethod("speak", constMethod(rt, "animal"))
	obj := rt.NewObject(animal)

	rt.DefineSingletonMethod(obj, "speak", constMethod(rt, "singleton"))

	env := rt.NewTopEnv()
	result := rt.Send(env, obj, "speak", nil, nil)
	s, ok := result.(*internal.StringValue)
	if !ok || s.Str != "singleton" {
		t.Errorf("Send must prefer a singleton method over the class method, got %v", result)
	}

	other := rt.NewObject(animal)
	result = rt.Send(env, other, "speak", nil, nil)
	s, ok = result.(*internal.StringValue)
	if !ok || s.Str != "animal" {
		t.Errorf("a singleton method must not leak to other instances, got %v", result)
	}
}

// TestSendUndefinedSingletonMethodRaises covers natalie.cpp's
// "undefined method `%s' for %s:Class" NoMethodError wording for an
// undefined singleton method.
func TestSendUndefinedSingletonMethodRaises(t *testing.T) {
	rt := internal.NewRuntime()
	animal := rt.NewClass("Animal", rt.ObjectClass)
	animal.DefineMethod("speak", constMethod(rt, "animal"))
	obj := rt.NewObject(animal)
	singleton := internal.SingletonClassOf(rt, obj)
	singleton.UndefineMethod("speak")

	env := rt.NewTopEnv()
	_, caught := rt.CallBegin(env, func(env *internal.Env) internal.Value {
		return rt.Send(env, obj, "speak", nil, nil)
	})
	if caught == nil {
		t.Fatal("expected NoMethodError to be raised")
	}
	if caught.Class() != rt.NoMethodErrorClass {
		t.Errorf("expected NoMethodError, got %s", caught.Class().Name)
	}
}

// TestSendUnknownMethodRaisesNoMethodError covers the baseline NoMethodError
// case: no ancestor defines the method at all.
func TestSendUnknownMethodRaisesNoMethodError(t *testing.T) {
	rt := internal.NewRuntime()
	obj := rt.NewObject(rt.ObjectClass)
	env := rt.NewTopEnv()

	_, caught := rt.CallBegin(env, func(env *internal.Env) internal.Value {
		return rt.Send(env, obj, "fly", nil, nil)
	})
	if caught == nil || caught.Class() != rt.NoMethodErrorClass {
		t.Errorf("expected NoMethodError for an unknown method, got %v", caught)
	}
}

// TestSendIntegerNeverUsesSingleton checks that Integer always dispatches
// through IntegerClass, never a singleton class.
func TestSendIntegerNeverUsesSingleton(t *testing.T) {
	rt := internal.NewRuntime()
	rt.IntegerClass.DefineMethod("double", func(env *internal.Env, self internal.Value, args []internal.Value, block *internal.Block) internal.Value {
		n := self.(internal.Integer)
		return internal.Integer(n * 2)
	})

	env := rt.NewTopEnv()
	result := rt.Send(env, internal.Integer(21), "double", nil, nil)
	n, ok := result.(internal.Integer)
	if !ok || n != 42 {
		t.Errorf("Send on Integer = %v, want Integer(42)", result)
	}
}

// TestFindMethodWithoutUndefinedMatchesSend checks that Send's resolution
// result always agrees with FindMethodWithoutUndefined's answer for the
// receiver's own class.
func TestFindMethodWithoutUndefinedMatchesSend(t *testing.T) {
	rt := internal.NewRuntime()
	animal := rt.NewClass("Animal", rt.ObjectClass)
	animal.DefineMethod("speak", constMethod(rt, "animal"))
	obj := rt.NewObject(animal)

	m, _ := internal.FindMethodWithoutUndefined(internal.ClassOf(rt, obj), "speak")
	if m == nil {
		t.Fatal("expected to find speak")
	}

	env := rt.NewTopEnv()
	result := rt.Send(env, obj, "speak", nil, nil)
	want := m.Fn(env, obj, nil, nil)
	if result.(*internal.StringValue).Str != want.(*internal.StringValue).Str {
		t.Errorf("Send and FindMethodWithoutUndefined disagree: %v vs %v", result, want)
	}
}
