package internal

// Env is one frame of the environment chain: a scope tying together lexical
// variable lookup, dynamic method-caller tracking, and the bookkeeping the
// exception pipeline needs to build a backtrace and find the nearest
// rescue-capable frame.
//
// Outer is the lexical parent: the scope this Env was textually nested
// inside, used for closures reading enclosing locals. Caller is the dynamic
// parent: whoever invoked the call this Env represents, used for
// backtraces and exception propagation. The call-time Envs built by
// NewMethodEnv, NewBlockEnv and CallBegin keep a live Caller link; an Env
// captured into a Method or Block keeps whatever Caller it had when it was
// captured.
type Env struct {
	Outer  *Env
	Caller *Env
	Locals map[string]Value

	RT *Runtime

	File   string
	Line   int
	Method string
	Block  *Block

	Rescue    bool
	Exception *ExceptionValue
	LastMatch *MatchDataValue
}

// NewTopEnv creates the single root Env a Runtime's top-level execution
// runs in: no lexical or dynamic parent, rescue disabled.
func (rt *Runtime) NewTopEnv() *Env {
	return &Env{RT: rt, Locals: make(map[string]Value), Method: "main"}
}

// NewMethodEnv builds the Env a method body runs in. Its lexical parent is
// the method's own captured environment if it has one (a method defined
// with DefineMethodWithBlock), otherwise the defining class/module's Env;
// its dynamic parent is the calling Env. Per invariant 6, Caller is
// re-attached to the calling Env by the Dispatcher, not cleared: only the
// method's closure capture itself (Outer) never depends on call-site
// lexical state.
func (rt *Runtime) NewMethodEnv(closure *Env, definingScope *Env, caller *Env) *Env {
	outer := closure
	if outer == nil {
		outer = definingScope
	}
	return &Env{
		Outer:  outer,
		Caller: caller,
		Locals: make(map[string]Value),
		RT:     rt,
	}
}

// NewBlockEnv builds the Env a block body runs in: lexically nested inside
// the block's captured Env, dynamically called from caller.
func (rt *Runtime) NewBlockEnv(closure *Env, caller *Env) *Env {
	return &Env{
		Outer:  closure,
		Caller: caller,
		Locals: make(map[string]Value),
		RT:     rt,
	}
}

// Lookup searches this Env and its lexical ancestors for a local variable
// named name.
func (e *Env) Lookup(name string) (Value, bool) {
	for cur := e; cur != nil; cur = cur.Outer {
		if v, ok := cur.Locals[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Assign sets name in the nearest lexical frame that already declares it,
// or in this frame if none does, matching ordinary local-variable
// assignment semantics.
func (e *Env) Assign(name string, v Value) {
	for cur := e; cur != nil; cur = cur.Outer {
		if _, ok := cur.Locals[name]; ok {
			cur.Locals[name] = v
			return
		}
	}
	e.Locals[name] = v
}

// Declare sets name in this exact frame, used for parameter binding where
// shadowing an outer local of the same name is intentional.
func (e *Env) Declare(name string, v Value) {
	e.Locals[name] = v
}

// GlobalGet and GlobalSet delegate to the owning Runtime, keeping globals
// modeled as explicit Runtime state rather than ambient package-level
// variables.
func (e *Env) GlobalGet(name string) Value {
	return e.RT.Globals[name]
}

func (e *Env) GlobalSet(name string, v Value) {
	e.RT.Globals[name] = v
}

// backtraceFrame is one entry of a captured exception backtrace.
type backtraceFrame struct {
	File   string
	Line   int
	Method string
}

// Backtrace walks e's dynamic Caller chain, collecting one frame per Env,
// most recent call first, matching natalie.cpp's Backtrace::to_array.
func (e *Env) Backtrace() []backtraceFrame {
	var frames []backtraceFrame
	for cur := e; cur != nil; cur = cur.Caller {
		frames = append(frames, backtraceFrame{File: cur.File, Line: cur.Line, Method: cur.Method})
	}
	return frames
}
