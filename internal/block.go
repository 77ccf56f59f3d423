package internal

// Block is a callable chunk of code captured together with the environment
// and receiver it closed over: the shared machinery behind both do...end/
// brace blocks passed to a method call and the Proc/lambda values a
// compiled host program can hold onto, grounded on
// original_source/include/natalie/proc_value.hpp's Block/ProcValue split.
type Block struct {
	Fn   NativeFn
	Env  *Env
	Self Value
}

// NewBlock captures fn together with the environment and receiver it
// should run against.
func NewBlock(env *Env, self Value, fn NativeFn) *Block {
	return &Block{Fn: fn, Env: env, Self: self}
}

// RunBlock invokes blk in a fresh Env lexically nested in blk.Env and
// dynamically called from caller. A nil blk raises LocalJumpError, matching
// natalie.cpp's "no block given" NAT_RAISE (line 356) for yield without an
// attached block.
func RunBlock(rt *Runtime, caller *Env, blk *Block, args []Value, inner *Block) Value {
	if blk == nil {
		return rt.RaiseExceptionf(caller, rt.LocalJumpErrorClass, "no block given")
	}
	child := rt.NewBlockEnv(blk.Env, caller)
	return blk.Fn(child, blk.Self, args, inner)
}

// ProcKind records whether a Proc was created as an ordinary proc or as a
// lambda, a distinction original_source models as ProcValue::ProcType. It
// is reported by IsLambda only: Call runs both kinds the same way and does
// not check arity.
type ProcKind int

const (
	ProcKindProc ProcKind = iota
	ProcKindLambda
)

// ProcValue wraps a Block as a first-class value a compiled host program
// can pass around, store, and invoke later via Call.
type ProcValue struct {
	Header
	Blk    *Block
	Flavor ProcKind
}

// Kind implements Value.
func (*ProcValue) Kind() Kind { return KindProc }

// IsLambda reports whether p was created as a lambda rather than an
// ordinary proc.
func (p *ProcValue) IsLambda() bool { return p.Flavor == ProcKindLambda }

// NewProc wraps blk as a first-class Proc or lambda value.
func (rt *Runtime) NewProc(blk *Block, kind ProcKind) *ProcValue {
	p := &ProcValue{Blk: blk, Flavor: kind}
	p.Header = newHeader(rt.ProcClass)
	return p
}

// Call invokes the wrapped block, matching natalie.cpp's
// ProcValue::call/ProcValue::arity pairing.
func (p *ProcValue) Call(rt *Runtime, caller *Env, args []Value, inner *Block) Value {
	return RunBlock(rt, caller, p.Blk, args, inner)
}

// ToProc coerces v to a *ProcValue: if v already is one, it is returned as
// is; otherwise, if v responds to to_proc, that method is sent. A value that
// does not respond to to_proc, or whose to_proc result is not a Proc,
// raises TypeError.
func ToProc(rt *Runtime, env *Env, v Value) *ProcValue {
	if p, ok := v.(*ProcValue); ok {
		return p
	}
	if RespondTo(rt, v, "to_proc") {
		result := rt.Send(env, v, "to_proc", nil, nil)
		if p, ok := result.(*ProcValue); ok {
			return p
		}
	}
	rt.RaiseExceptionf(env, rt.TypeErrorClass, "wrong argument type %s (expected Proc)", ClassOf(rt, v).Name)
	return nil
}
