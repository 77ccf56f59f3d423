package internal_test

import (
	"testing"

	"github.com/kddnewton/natalie/internal"
)

func ints(vs ...int64) []internal.Value {
	out := make([]internal.Value, len(vs))
	for i, v := range vs {
		out[i] = internal.Integer(v)
	}
	return out
}

func intAt(t *testing.T, v internal.Value) int64 {
	t.Helper()
	n, ok := v.(internal.Integer)
	if !ok {
		t.Fatalf("expected Integer, got %T (%v)", v, v)
	}
	return int64(n)
}

// TestArgValueByPathRequiredOnly covers def f(a, b); f(1, 2): every
// positional slot is required, no defaults, straightforward index lookup.
func TestArgValueByPathRequiredOnly(t *testing.T) {
	rt := internal.NewRuntime()
	args := rt.NewArray(ints(1, 2))

	a := internal.ArgValueByPath(rt, args, rt.Nil, false, 2, 0, false, 0, []int{0})
	b := internal.ArgValueByPath(rt, args, rt.Nil, false, 2, 0, false, 0, []int{1})

	if intAt(t, a) != 1 || intAt(t, b) != 2 {
		t.Errorf("got a=%v b=%v, want 1, 2", a, b)
	}
}

// TestArgValueByPathDefaultFillsWhenMissing covers def f(a, b=9); f(1):
// not enough values for the defaulted arg, so the default fills in.
func TestArgValueByPathDefaultFillsWhenMissing(t *testing.T) {
	rt := internal.NewRuntime()
	args := rt.NewArray(ints(1))

	// The default parameter sits on the right (def f(a, b=9)), so
	// defaultsOnRight is true for every path lookup in this signature.
	a := internal.ArgValueByPath(rt, args, rt.Nil, false, 2, 1, true, 0, []int{0})
	b := internal.ArgValueByPath(rt, args, internal.Integer(9), false, 2, 1, true, 0, []int{1})

	if intAt(t, a) != 1 {
		t.Errorf("a = %v, want 1", a)
	}
	if intAt(t, b) != 9 {
		t.Errorf("b = %v, want default 9 when the caller didn't supply it", b)
	}
}

// TestArgValueByPathDefaultOverriddenWhenPresent covers def f(a, b=9);
// f(1, 2): enough values are given that the default is not used.
func TestArgValueByPathDefaultOverriddenWhenPresent(t *testing.T) {
	rt := internal.NewRuntime()
	args := rt.NewArray(ints(1, 2))

	b := internal.ArgValueByPath(rt, args, internal.Integer(9), false, 2, 1, true, 0, []int{1})
	if intAt(t, b) != 2 {
		t.Errorf("b = %v, want the supplied value 2, not the default", b)
	}
}

// TestArgValueByPathSplatCollectsRemainder covers def f(a, *rest);
// f(1, 2, 3): the splat slot collects everything after the required args.
func TestArgValueByPathSplatCollectsRemainder(t *testing.T) {
	rt := internal.NewRuntime()
	args := rt.NewArray(ints(1, 2, 3))

	rest := internal.ArgValueByPath(rt, args, rt.Nil, true, 2, 0, false, 0, []int{1})
	ary, ok := rest.(*internal.ArrayValue)
	if !ok {
		t.Fatalf("expected an Array for the splat, got %T", rest)
	}
	if len(ary.Elems) != 2 || intAt(t, ary.Elems[0]) != 2 || intAt(t, ary.Elems[1]) != 3 {
		t.Errorf("splat = %v, want [2, 3]", ary.Elems)
	}
}

// TestArgValueByPathNegativeIndexFromRight covers def f(a, *rest, z);
// f(1, 2, 3): z is addressed with a negative offset from the end of the
// argument list.
func TestArgValueByPathNegativeIndexFromRight(t *testing.T) {
	rt := internal.NewRuntime()
	args := rt.NewArray(ints(1, 2, 3))

	z := internal.ArgValueByPath(rt, args, rt.Nil, false, 3, 0, false, 0, []int{-1})
	if intAt(t, z) != 3 {
		t.Errorf("z = %v, want the last element 3", z)
	}
}

func TestArrayValueByPathNegativeIndex(t *testing.T) {
	rt := internal.NewRuntime()
	args := rt.NewArray(ints(1, 2, 3))

	last := internal.ArrayValueByPath(rt, args, rt.Nil, false, 0, []int{-1})
	if intAt(t, last) != 3 {
		t.Errorf("last = %v, want 3", last)
	}

	missing := internal.ArrayValueByPath(rt, args, internal.Integer(-1), false, 0, []int{5})
	if intAt(t, missing) != -1 {
		t.Errorf("out-of-range index must use the default, got %v", missing)
	}
}

func TestKwargValueByNamePresentAndMissing(t *testing.T) {
	rt := internal.NewRuntime()
	env := rt.NewTopEnv()
	hash := rt.NewHash()
	hash.Set(rt.Intern("count"), internal.Integer(5))
	args := []internal.Value{hash}

	got := internal.KwargValueByName(rt, env, args, "count", nil)
	if intAt(t, got) != 5 {
		t.Errorf("count = %v, want 5", got)
	}

	got = internal.KwargValueByName(rt, env, args, "missing", internal.Integer(7))
	if intAt(t, got) != 7 {
		t.Errorf("missing keyword with a default = %v, want 7", got)
	}

	_, caught := rt.CallBegin(env, func(env *internal.Env) internal.Value {
		return internal.KwargValueByName(rt, env, args, "missing", nil)
	})
	if caught == nil || caught.Class() != rt.ArgumentErrorClass {
		t.Errorf("missing required keyword must raise ArgumentError, got %v", caught)
	}
}

func TestBlockArgsToArraySplatsSingleArgForMultiParamBlock(t *testing.T) {
	rt := internal.NewRuntime()
	env := rt.NewTopEnv()
	pair := rt.NewArray(ints(1, 2))

	got := internal.BlockArgsToArray(rt, env, 2, []internal.Value{pair})
	if len(got.Elems) != 2 || intAt(t, got.Elems[0]) != 1 || intAt(t, got.Elems[1]) != 2 {
		t.Errorf("BlockArgsToArray must destructure a single Array arg, got %v", got.Elems)
	}

	got = internal.BlockArgsToArray(rt, env, 1, []internal.Value{internal.Integer(9)})
	if len(got.Elems) != 1 || intAt(t, got.Elems[0]) != 9 {
		t.Errorf("BlockArgsToArray must not destructure for a single-param block, got %v", got.Elems)
	}
}
