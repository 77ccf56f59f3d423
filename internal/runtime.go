package internal

import (
	"io"
	"os"
)

// Runtime is the explicit context every global, every symbol, and every
// at-exit handler lives on, instead of ambient package-level state (spec
// §9's design note). Exactly one Runtime exists per embedding program; the
// teacher's analogue is VM (internal/vm.go), which plays the same role for
// its object graph's bootstrap singletons.
type Runtime struct {
	ObjectClass *Class
	ClassClass  *Class
	ModuleClass *Class

	IntegerClass   *Class
	NilClass       *Class
	TrueClass      *Class
	FalseClass     *Class
	SymbolClass    *Class
	StringClass    *Class
	ArrayClass     *Class
	HashClass      *Class
	RangeClass     *Class
	RegexpClass    *Class
	MatchDataClass *Class
	ProcClass      *Class
	IOClass        *Class

	ExceptionClass      *Class
	StandardErrorClass  *Class
	NoMethodErrorClass  *Class
	NameErrorClass      *Class
	ArgumentErrorClass  *Class
	TypeErrorClass      *Class
	LocalJumpErrorClass *Class
	SyntaxErrorClass    *Class
	SystemExitClass     *Class

	Nil   *NilValue
	True  *TrueValue
	False *FalseValue

	Globals map[string]Value
	Symbols map[string]*SymbolValue

	Stderr io.Writer
	Exit   func(code int)
}

// NewRuntime bootstraps the full class hierarchy and built-in singletons a
// compiled host program needs before it can register anything of its own,
// mirroring the init-order sequencing in zephyrtronium/iolang's NewVM (top-level
// vm.go/internal/vm.go).
func NewRuntime() *Runtime {
	rt := &Runtime{
		Globals: make(map[string]Value),
		Symbols: make(map[string]*SymbolValue),
		Stderr:  os.Stderr,
		Exit:    os.Exit,
	}

	// Object is the top class: its Super is nil, per spec invariant that
	// superclass is nil only for the top class.
	rt.ObjectClass = rt.NewClass("Object", nil)
	rt.ModuleClass = rt.NewClass("Module", rt.ObjectClass)
	rt.ClassClass = rt.NewClass("Class", rt.ModuleClass)

	// Every class created above received a placeholder Class() pointer
	// from NewClass's own bootstrap before ClassClass existed; fix them up
	// now that the metaclass chain is complete.
	rt.ObjectClass.SetClass(rt.ClassClass)
	rt.ModuleClass.SetClass(rt.ClassClass)
	rt.ClassClass.SetClass(rt.ClassClass)

	rt.IntegerClass = rt.NewClass("Integer", rt.ObjectClass)
	rt.NilClass = rt.NewClass("NilClass", rt.ObjectClass)
	rt.TrueClass = rt.NewClass("TrueClass", rt.ObjectClass)
	rt.FalseClass = rt.NewClass("FalseClass", rt.ObjectClass)
	rt.SymbolClass = rt.NewClass("Symbol", rt.ObjectClass)
	rt.StringClass = rt.NewClass("String", rt.ObjectClass)
	rt.ArrayClass = rt.NewClass("Array", rt.ObjectClass)
	rt.HashClass = rt.NewClass("Hash", rt.ObjectClass)
	rt.RangeClass = rt.NewClass("Range", rt.ObjectClass)
	rt.RegexpClass = rt.NewClass("Regexp", rt.ObjectClass)
	rt.MatchDataClass = rt.NewClass("MatchData", rt.ObjectClass)
	rt.ProcClass = rt.NewClass("Proc", rt.ObjectClass)
	rt.IOClass = rt.NewClass("IO", rt.ObjectClass)

	rt.ExceptionClass = rt.NewClass("Exception", rt.ObjectClass)
	rt.StandardErrorClass = rt.NewClass("StandardError", rt.ExceptionClass)
	rt.NameErrorClass = rt.NewClass("NameError", rt.StandardErrorClass)
	rt.NoMethodErrorClass = rt.NewClass("NoMethodError", rt.NameErrorClass)
	rt.ArgumentErrorClass = rt.NewClass("ArgumentError", rt.StandardErrorClass)
	rt.TypeErrorClass = rt.NewClass("TypeError", rt.StandardErrorClass)
	rt.LocalJumpErrorClass = rt.NewClass("LocalJumpError", rt.StandardErrorClass)
	rt.SyntaxErrorClass = rt.NewClass("SyntaxError", rt.StandardErrorClass)
	// SystemExit descends from Exception directly, not StandardError, so a
	// bare "rescue => e" does not accidentally swallow a process exit.
	rt.SystemExitClass = rt.NewClass("SystemExit", rt.ExceptionClass)

	rt.Nil = &NilValue{Header: newHeader(rt.NilClass)}
	rt.True = &TrueValue{Header: newHeader(rt.TrueClass)}
	rt.False = &FalseValue{Header: newHeader(rt.FalseClass)}

	rt.Globals["$stderr"] = &IOValue{Header: newHeader(rt.IOClass), Writer: os.Stderr, FD: 2}
	rt.Globals["$NAT_at_exit_handlers"] = &ArrayValue{Header: newHeader(rt.ArrayClass)}

	registerBuiltinMethods(rt)

	return rt
}

// Intern returns the unique SymbolValue for name, creating it on first use,
// so that symbol identity can double as symbol equality.
func (rt *Runtime) Intern(name string) *SymbolValue {
	if s, ok := rt.Symbols[name]; ok {
		return s
	}
	s := &SymbolValue{Name: name}
	s.Header = newHeader(rt.SymbolClass)
	rt.Symbols[name] = s
	return s
}

// Bool returns rt.True or rt.False for a Go bool, the mirror image of
// IsTruthy.
func (rt *Runtime) Bool(b bool) Value {
	if b {
		return rt.True
	}
	return rt.False
}

// NewString wraps a Go string as a StringValue.
func (rt *Runtime) NewString(s string) *StringValue {
	v := &StringValue{Str: s}
	v.Header = newHeader(rt.StringClass)
	return v
}

// NewArray wraps a Go slice as an ArrayValue.
func (rt *Runtime) NewArray(elems []Value) *ArrayValue {
	v := &ArrayValue{Elems: elems}
	v.Header = newHeader(rt.ArrayClass)
	return v
}
