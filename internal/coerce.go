package internal

// ToAry coerces obj to an *ArrayValue: an Array is returned as is;
// otherwise, if obj responds to to_ary, that method is sent and its
// result used provided it is itself an Array; a Nil result, or any result
// when raiseForNonArray is false, falls back to wrapping obj in a
// single-element array; otherwise TypeError is raised. Ported from
// natalie.cpp's to_ary.
func ToAry(rt *Runtime, env *Env, obj Value, raiseForNonArray bool) *ArrayValue {
	if ary, ok := obj.(*ArrayValue); ok {
		return ary
	}
	if RespondTo(rt, obj, "to_ary") {
		result := rt.Send(env, obj, "to_ary", nil, nil)
		if ary, ok := result.(*ArrayValue); ok {
			return ary
		}
		if _, isNil := result.(*NilValue); isNil || !raiseForNonArray {
			return rt.NewArray([]Value{obj})
		}
		className := ClassOf(rt, obj).Name
		resultClassName := ClassOf(rt, result).Name
		rt.RaiseExceptionf(env, rt.TypeErrorClass,
			"can't convert %s to Array (%s#to_ary gives %s)", className, className, resultClassName)
		return nil
	}
	return rt.NewArray([]Value{obj})
}

// Splat is the argument-spread conversion used wherever a compiled host
// program expands *obj into a call's argument list: it is exactly ToAry
// with TypeError raising enabled.
func Splat(rt *Runtime, env *Env, obj Value) *ArrayValue {
	return ToAry(rt, env, obj, true)
}

// Dup produces a shallow copy of obj. true, false, and nil are singletons
// and dup on them returns the same instance. Kinds with no defined copy
// semantics abort fatally rather than raising a catchable exception,
// matching the core's framing of dup as an implementation detail rather
// than a full copy-on-write protocol.
func Dup(rt *Runtime, obj Value) Value {
	switch v := obj.(type) {
	case Integer:
		return v
	case *NilValue:
		return v
	case *TrueValue:
		return v
	case *FalseValue:
		return v
	case *StringValue:
		return rt.NewString(v.Str)
	case *ArrayValue:
		elems := make([]Value, len(v.Elems))
		copy(elems, v.Elems)
		return rt.NewArray(elems)
	case *HashValue:
		dup := rt.NewHash()
		for _, k := range v.keys {
			val, _ := v.Get(k)
			dup.Set(k, val)
		}
		return dup
	case *SymbolValue:
		return v
	default:
		Fatal("dup: unsupported kind " + obj.Kind().String())
		return nil
	}
}

// BoolNot implements logical negation over the host language's
// truthiness rule: any falsy value negates to True, anything truthy
// negates to False.
func BoolNot(rt *Runtime, v Value) Value {
	return rt.Bool(!IsTruthy(v))
}
