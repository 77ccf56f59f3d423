package internal

import (
	"fmt"
	"io"
)

// ExceptionValue is a raised condition: a class, a message, and a
// backtrace captured at the point it was raised.
type ExceptionValue struct {
	Header
	Message   string
	Backtrace []backtraceFrame
}

// Kind implements Value.
func (*ExceptionValue) Kind() Kind { return KindException }

// Error implements the Go error interface, so a raised host-language
// exception crosses into Go-level error handling without a translation
// layer, matching zephyrtronium/iolang's Exception/Error types (internal's
// exception.go in zephyrtronium/iolang).
func (e *ExceptionValue) Error() string {
	return fmt.Sprintf("%s: %s", e.class.Name, e.Message)
}

// NewException builds an exception value of the given class without
// raising it.
func (rt *Runtime) NewException(class *Class, message string) *ExceptionValue {
	e := &ExceptionValue{Message: message}
	e.Header = newHeader(class)
	return e
}

// raiseSignal is the payload carried by panic when Raise unwinds the Go
// call stack looking for a rescue-capable frame. It is never observed
// outside CallBegin/Run's recover, and any other panic value is
// re-panicked untouched so a genuine Go runtime fault is never mistaken
// for a host-language exception.
type raiseSignal struct {
	exc *ExceptionValue
}

// fatalSignal is the payload carried by panic for conditions treated as
// fatal implementation aborts rather than catchable exceptions (dup on an
// unsupported kind, for instance). It is deliberately a different type
// than raiseSignal so CallBegin's recover lets it continue unwinding.
type fatalSignal struct {
	msg string
}

// Raise records exc as env's exception and unwinds the Go call stack to
// the nearest enclosing CallBegin (or, if there is none, to the Runtime's
// top-level Run), walking the dynamic Caller chain. Using panic/recover to
// implement this unwind, rather than threading an explicit error return
// through every call site the way a coroutine scheduler threads a Stop
// signal, is a deliberate adaptation: natalie.cpp's
// exception propagation crosses arbitrarily many native call frames that
// were never written to check a return value, which is precisely the
// shape Go's own standard library reaches for panic/recover to handle
// (e.g. encoding/json's decodeState, text/template's execution engine).
func (rt *Runtime) Raise(env *Env, exc *ExceptionValue) {
	env.Exception = exc
	exc.Backtrace = env.Backtrace()
	panic(raiseSignal{exc: exc})
}

// RaiseExceptionf builds an exception of class with a formatted message,
// then raises it. Its Value return type exists purely so call sites can
// write "return rt.RaiseExceptionf(...)"; the call never actually returns.
func (rt *Runtime) RaiseExceptionf(env *Env, class *Class, format string, a ...interface{}) Value {
	exc := rt.NewException(class, fmt.Sprintf(format, a...))
	rt.Raise(env, exc)
	panic("unreachable")
}

// Fatal aborts with a message for conditions the core treats as
// unrecoverable programmer errors rather than catchable host-language
// exceptions.
func Fatal(msg string) {
	panic(fatalSignal{msg: msg})
}

// CallBegin runs fn in a fresh Env lexically and dynamically nested under
// env, with Rescue set, and recovers any exception fn raises, matching
// natalie.cpp's call_begin plus the rescue-frame bookkeeping its callers
// perform around it. It returns fn's result and nil on success, or
// (rt.Nil, the caught exception) if fn raised one. A fatalSignal, or any
// panic value that is not ours, continues unwinding.
func (rt *Runtime) CallBegin(env *Env, fn func(*Env) Value) (result Value, caught *ExceptionValue) {
	child := rt.NewBlockEnv(env, env)
	child.Rescue = true
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		sig, ok := r.(raiseSignal)
		if !ok {
			panic(r)
		}
		caught = sig.exc
		child.Exception = nil
		result = rt.Nil
	}()
	result = fn(child)
	return
}

// Run executes fn as the top-level program: if an exception escapes every
// CallBegin frame, Run catches it here and calls HandleTopLevelException
// before returning, matching natalie.cpp's top-level driver wrapping
// main(). A fatalSignal is not caught; it is meant to abort the process.
func (rt *Runtime) Run(env *Env, fn func(*Env) Value) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		sig, ok := r.(raiseSignal)
		if !ok {
			panic(r)
		}
		rt.HandleTopLevelException(env, sig.exc, true)
	}()
	fn(env)
}

// HandleTopLevelException implements natalie.cpp's
// handle_top_level_exception: a SystemExit is handled by optionally
// running at-exit handlers and exiting with its @status ivar (an Integer
// is clamped to [0,255]; 0 if @status is Nil/absent, 1 if it is present
// but not an Integer); any other exception is printed with
// its backtrace to rt.Stderr.
func (rt *Runtime) HandleTopLevelException(env *Env, exc *ExceptionValue, runAtExit bool) {
	env.Rescue = false
	env.Exception = nil
	if IsKindOfClass(exc, rt.SystemExitClass) {
		status := 0
		if v := exc.IVarGet("@status"); v != nil {
			if n, ok := v.(Integer); ok {
				status = clampExitStatus(int64(n))
			} else if _, ok := v.(*NilValue); !ok {
				status = 1
			}
		}
		if runAtExit {
			rt.RunAtExitHandlers(env)
		}
		rt.Exit(status)
		return
	}
	if runAtExit {
		rt.RunAtExitHandlers(env)
	}
	rt.PrintExceptionWithBacktrace(rt.Stderr, exc)
}

func clampExitStatus(n int64) int {
	if n < 0 {
		return 0
	}
	if n > 255 {
		return 255
	}
	return int(n)
}

// PrintExceptionWithBacktrace writes exc's backtrace in the exact format
// natalie.cpp's print_exception_with_backtrace uses: a leading
// "Traceback (most recent call last):\n" line, then each captured frame
// from the oldest call down to (but not including) the raise site
// rendered as "        N: from file:line:in `method'\n", then the raise
// site rendered as "file:line:in `method': message (ClassName)\n". With no
// backtrace at all, it falls back to just the message and class.
func (rt *Runtime) PrintExceptionWithBacktrace(w io.Writer, exc *ExceptionValue) {
	frames := exc.Backtrace
	if len(frames) > 0 {
		fmt.Fprint(w, "Traceback (most recent call last):\n")
		for i := len(frames) - 1; i >= 1; i-- {
			f := frames[i]
			fmt.Fprintf(w, "        %d: from %s:%d:in `%s'\n", i, f.File, f.Line, f.Method)
		}
		f := frames[0]
		fmt.Fprintf(w, "%s:%d:in `%s': ", f.File, f.Line, f.Method)
	}
	fmt.Fprintf(w, "%s (%s)\n", exc.Message, exc.class.Name)
}

// RunAtExitHandlers runs every registered at-exit proc in LIFO order (most
// recently registered first), matching natalie.cpp's run_at_exit_handlers,
// which walks $NAT_at_exit_handlers from its last element to its first.
// Handlers run with the Runtime's top-level Env as their calling context
// and receive no arguments.
func (rt *Runtime) RunAtExitHandlers(env *Env) {
	arr, ok := rt.Globals["$NAT_at_exit_handlers"].(*ArrayValue)
	if !ok {
		return
	}
	for i := len(arr.Elems) - 1; i >= 0; i-- {
		if p, ok := arr.Elems[i].(*ProcValue); ok {
			p.Call(rt, env, nil, nil)
		}
	}
	arr.Elems = nil
}

// RegisterAtExit appends proc to the global at-exit handler list.
func (rt *Runtime) RegisterAtExit(proc *ProcValue) {
	arr, ok := rt.Globals["$NAT_at_exit_handlers"].(*ArrayValue)
	if !ok {
		arr = &ArrayValue{}
		arr.Header = newHeader(rt.ArrayClass)
		rt.Globals["$NAT_at_exit_handlers"] = arr
	}
	arr.Elems = append(arr.Elems, proc)
}

// IsKindOfClass reports whether v's class chain (not including any
// singleton class) includes target, used for exception-class checks like
// the SystemExit test in HandleTopLevelException.
func IsKindOfClass(v Value, target *Class) bool {
	for _, a := range ClassAncestors(ClassOfAny(v)) {
		if a == target {
			return true
		}
	}
	return false
}

// ClassOfAny returns v's class pointer for values that always carry one
// directly (Class/Module values answer with their own class field, not
// ClassOf's Integer special case), used by IsKindOfClass which is called
// both with ordinary values and with Class/Module values themselves.
func ClassOfAny(v Value) *Class {
	if c, ok := v.(*Class); ok {
		return c.Class()
	}
	if h, ok := headerOf(v); ok {
		return h.Class()
	}
	return nil
}
