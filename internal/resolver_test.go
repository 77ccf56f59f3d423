package internal_test

import (
	"testing"

	"github.com/kddnewton/natalie/internal"
)

func TestRespondToHonorsUndefined(t *testing.T) {
	rt := internal.NewRuntime()
	animal := rt.NewClass("Animal", rt.ObjectClass)
	animal.DefineMethod("speak", constMethod(rt, "animal"))
	dog := rt.NewClass("Dog", animal)
	obj := rt.NewObject(dog)

	if !internal.RespondTo(rt, obj, "speak") {
		t.Errorf("expected respond_to?(:speak) to be true before undefine_method")
	}

	dog.UndefineMethod("speak")
	if internal.RespondTo(rt, obj, "speak") {
		t.Errorf("expected respond_to?(:speak) to be false after undefine_method")
	}
}

func TestDefinedMethodCategory(t *testing.T) {
	rt := internal.NewRuntime()
	animal := rt.NewClass("Animal", rt.ObjectClass)
	animal.DefineMethod("speak", constMethod(rt, "animal"))
	obj := rt.NewObject(animal)
	env := rt.NewTopEnv()

	if got := internal.Defined(rt, env, obj, "speak"); got != "method" {
		t.Errorf("Defined(speak) = %q, want %q", got, "method")
	}
	if got := internal.Defined(rt, env, obj, "fly"); got != "" {
		t.Errorf("Defined(fly) = %q, want empty", got)
	}
}

func TestDefinedConstantCategory(t *testing.T) {
	rt := internal.NewRuntime()
	animal := rt.NewClass("Animal", rt.ObjectClass)
	animal.ConstSet("LEGS", internal.Integer(4))
	env := rt.NewTopEnv()

	if got := internal.Defined(rt, env, animal, "LEGS"); got != "constant" {
		t.Errorf("Defined(LEGS) = %q, want %q", got, "constant")
	}
}

func TestDefinedGlobalVariableCategory(t *testing.T) {
	rt := internal.NewRuntime()
	obj := rt.NewObject(rt.ObjectClass)
	env := rt.NewTopEnv()
	env.GlobalSet("$count", internal.Integer(1))

	if got := internal.Defined(rt, env, obj, "$count"); got != "global-variable" {
		t.Errorf("Defined($count) = %q, want %q", got, "global-variable")
	}
	if got := internal.Defined(rt, env, obj, "$missing"); got != "" {
		t.Errorf("Defined($missing) = %q, want empty", got)
	}
}
