package internal

import (
	"reflect"
	"runtime"
)

// NativeFuncName derives a diagnostic name for fn using reflection, the
// same trick zephyrtronium/iolang's NewTypedCFunction uses (cfunction.go) to label
// backtrace frames for methods defined directly in Go rather than by a
// compiled host program's own source.
func NativeFuncName(fn NativeFn) string {
	ptr := reflect.ValueOf(fn).Pointer()
	f := runtime.FuncForPC(ptr)
	if f == nil {
		return "<native>"
	}
	return f.Name()
}

// DefineNativeMethod installs fn on target under name, exactly as
// target.DefineMethod does. Backtrace frames take their method name from
// the call's Env; NativeFuncName is not consulted for them.
func DefineNativeMethod(target *Class, name string, fn NativeFn) {
	target.DefineMethod(name, fn)
}
