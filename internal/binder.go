package internal

// splatValue collects value[index:len(value)-offsetFromEnd] into a new
// array, or an empty array if that range is empty or value isn't an array,
// ported from natalie.cpp's splat_value.
func splatValue(rt *Runtime, value Value, index, offsetFromEnd int) *ArrayValue {
	out := rt.NewArray(nil)
	if ary, ok := value.(*ArrayValue); ok {
		end := len(ary.Elems) - offsetFromEnd
		for s := index; s < end; s++ {
			out.Elems = append(out.Elems, ary.Elems[s])
		}
	}
	return out
}

// ArgValueByPath extracts one positional argument value (or a splat
// collecting several) from a nested argument structure, honoring
// default-value placement and splat position. It is a direct port of
// natalie.cpp's arg_value_by_path, preserving its index-shifting and
// negative-index-from-the-right behavior exactly.
//
// path holds the sequence of indices to descend through nested
// destructuring; splat and offsetFromEnd apply only to the final path
// element. Passing rt.Nil as defaultValue means "this parameter has no
// default", matching natalie.cpp's has_default = default_value != NAT_NIL:
// Nil is itself a legitimate value but never a legitimate default.
func ArgValueByPath(rt *Runtime, value Value, defaultValue Value, splat bool, totalCount, defaultCount int, defaultsOnRight bool, offsetFromEnd int, path []int) Value {
	hasDefault := defaultValue != rt.Nil
	defaultsOnLeft := !defaultsOnRight
	requiredCount := totalCount - defaultCount
	returnValue := value

	for i, index := range path {
		if splat && i == len(path)-1 {
			return splatValue(rt, returnValue, index, offsetFromEnd)
		}

		ary, isArray := returnValue.(*ArrayValue)
		if !isArray {
			if index == 0 {
				continue
			}
			returnValue = defaultValue
			continue
		}

		aryLen := len(ary.Elems)
		firstRequired := defaultCount
		remain := aryLen - requiredCount

		if hasDefault && index >= remain && index < firstRequired && defaultsOnLeft {
			return defaultValue
		}

		if i == 0 && len(path) == 1 {
			extraCount := aryLen - requiredCount
			if defaultsOnLeft && extraCount > 0 && defaultCount >= extraCount && index >= extraCount {
				index -= defaultCount - extraCount
			} else if aryLen <= requiredCount && defaultsOnLeft {
				index -= defaultCount
			}
		}

		if index < 0 {
			if aryLen >= totalCount {
				index = aryLen + index
			} else {
				index = totalCount - 1 + index
			}
		}

		switch {
		case index < 0:
			returnValue = defaultValue
		case index < aryLen:
			returnValue = ary.Elems[index]
		default:
			returnValue = defaultValue
		}
	}

	return returnValue
}

// ArrayValueByPath is the simpler sibling of ArgValueByPath used for plain
// array/multiple-assignment destructuring, with no required/default
// accounting: only a negative-index-from-the-right adjustment, ported from
// natalie.cpp's array_value_by_path.
func ArrayValueByPath(rt *Runtime, value Value, defaultValue Value, splat bool, offsetFromEnd int, path []int) Value {
	returnValue := value

	for i, index := range path {
		if splat && i == len(path)-1 {
			return splatValue(rt, returnValue, index, offsetFromEnd)
		}

		ary, isArray := returnValue.(*ArrayValue)
		if !isArray {
			if index == 0 {
				continue
			}
			returnValue = defaultValue
			continue
		}

		aryLen := len(ary.Elems)
		if index < 0 {
			index = aryLen + index
		}

		switch {
		case index < 0:
			returnValue = defaultValue
		case index < aryLen:
			returnValue = ary.Elems[index]
		default:
			returnValue = defaultValue
		}
	}

	return returnValue
}

// KwargValueByName extracts a keyword argument named name from args's
// trailing Hash argument, if the last element is a Hash; otherwise it
// behaves as though an empty Hash were passed. A missing keyword raises
// ArgumentError when no default was given (defaultValue == nil), matching
// natalie.cpp's kwarg_value_by_name.
func KwargValueByName(rt *Runtime, env *Env, args []Value, name string, defaultValue Value) Value {
	var hash *HashValue
	if len(args) > 0 {
		if h, ok := args[len(args)-1].(*HashValue); ok {
			hash = h
		}
	}
	if hash == nil {
		hash = rt.NewHash()
	}
	if v, ok := hash.Get(rt.Intern(name)); ok {
		return v
	}
	if defaultValue != nil {
		return defaultValue
	}
	return rt.RaiseExceptionf(env, rt.ArgumentErrorClass, "missing keyword: :%s", name)
}

// ArgsToArray collects a raw argument slice into an ArrayValue, ported
// from natalie.cpp's args_to_array.
func ArgsToArray(rt *Runtime, args []Value) *ArrayValue {
	elems := make([]Value, len(args))
	copy(elems, args)
	return rt.NewArray(elems)
}

// BlockArgsToArray behaves like ArgsToArray, except when the block was
// given exactly one argument but its signature names more than one
// parameter: in that case the single argument is coerced via to_ary and
// its elements become the destructured arguments, matching natalie.cpp's
// block_args_to_array.
func BlockArgsToArray(rt *Runtime, env *Env, signatureSize int, args []Value) *ArrayValue {
	if len(args) == 1 && signatureSize > 1 {
		return ToAry(rt, env, args[0], true)
	}
	return ArgsToArray(rt, args)
}
