// Package natalie re-exports the object-model and method-dispatch core
// built in internal, mirroring the thin alias package zephyrtronium/iolang
// exposes at its own module root (iolang.go re-exporting its internal
// package).
package natalie

import "github.com/kddnewton/natalie/internal"

type (
	Runtime        = internal.Runtime
	Value          = internal.Value
	Kind           = internal.Kind
	Integer        = internal.Integer
	Class          = internal.Class
	Method         = internal.Method
	Env            = internal.Env
	Block          = internal.Block
	ProcValue      = internal.ProcValue
	ExceptionValue = internal.ExceptionValue
	NativeFn       = internal.NativeFn
	ArrayValue     = internal.ArrayValue
	HashValue      = internal.HashValue
	StringValue    = internal.StringValue
	SymbolValue    = internal.SymbolValue
	RangeValue     = internal.RangeValue
	RegexpValue    = internal.RegexpValue
	MatchDataValue = internal.MatchDataValue
)

// NewRuntime bootstraps a new object-model core.
func NewRuntime() *Runtime {
	return internal.NewRuntime()
}

// Send dispatches a method call, the single entry point a compiled host
// program uses to invoke any method on any value.
func Send(rt *Runtime, env *Env, receiver Value, name string, args []Value, block *Block) Value {
	return rt.Send(env, receiver, name, args, block)
}

// IsTruthy reports the host language's truthiness rule for v.
func IsTruthy(v Value) bool {
	return internal.IsTruthy(v)
}
