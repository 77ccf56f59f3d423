package internal

import "fmt"

// ObjectPointerID renders v's identity the way an embedding host program
// might want to print it for debugging, matching natalie.cpp's
// object_pointer_id (a "%p"-style pointer rendering into a caller buffer).
// Go values have no address an embedding caller could dereference, so this
// renders v's ObjectID (derived from the Header's monotonic counter) in the
// same shape instead.
func ObjectPointerID(v Value) string {
	return fmt.Sprintf("0x%x", ObjectID(v))
}

// ArgOut is the out-parameter an ArgSpread caller supplies for one
// arrangement character: exactly one of its fields is populated depending
// on the corresponding character ('o' -> Obj, 'i' -> Int, 's' -> Str,
// 'b' -> Bool, 'v' -> Ptr).
type ArgOut struct {
	Obj  *Value
	Int  *int64
	Str  *string
	Bool *bool
	Ptr  *interface{}
}

// ArgSpread extracts args into the out-parameters in outs according to
// arrangement, one character per out-parameter, raising ArgumentError if
// fewer arguments were supplied than arrangement requires. It is a direct
// port of natalie.cpp's arg_spread, replacing its va_list-based typed
// pointers with the ArgOut union above.
func ArgSpread(rt *Runtime, env *Env, args []Value, arrangement string, outs []ArgOut) {
	argIndex := 0
	for i := 0; i < len(arrangement) && i < len(outs); i++ {
		c := arrangement[i]
		out := outs[i]
		if argIndex >= len(args) {
			rt.RaiseExceptionf(env, rt.ArgumentErrorClass,
				"wrong number of arguments (given %d, expected %d)", len(args), argIndex+1)
			return
		}
		obj := args[argIndex]
		argIndex++
		switch c {
		case 'o':
			*out.Obj = obj
		case 'i':
			n, ok := obj.(Integer)
			if !ok {
				rt.RaiseExceptionf(env, rt.TypeErrorClass, "wrong argument type %s (expected Integer)", ClassOf(rt, obj).Name)
				return
			}
			*out.Int = int64(n)
		case 's':
			if _, isNil := obj.(*NilValue); isNil {
				*out.Str = ""
				continue
			}
			s, ok := obj.(*StringValue)
			if !ok {
				rt.RaiseExceptionf(env, rt.TypeErrorClass, "wrong argument type %s (expected String)", ClassOf(rt, obj).Name)
				return
			}
			*out.Str = s.Str
		case 'b':
			*out.Bool = IsTruthy(obj)
		case 'v':
			ptr := IVarGet(obj, "@_ptr")
			vp, ok := ptr.(*VoidPointerValue)
			if !ok {
				Fatal("arg_spread: @_ptr is not a VoidPointer")
				return
			}
			*out.Ptr = vp.Ptr
		default:
			Fatal(fmt.Sprintf("unknown arg spread arrangement specifier: %%%c", c))
		}
	}
}
