package internal

// registerBuiltinMethods installs the handful of methods every value needs
// regardless of what a compiled host program defines on top, mirroring
// zephyrtronium/iolang's initObject (internal/object.go), which wires clone,
// setSlot, getSlot, isKindOf, perform, and the comparison operators onto its
// base object before anything else runs.
func registerBuiltinMethods(rt *Runtime) {
	rt.ObjectClass.DefineMethod("class", func(env *Env, self Value, args []Value, block *Block) Value {
		return ClassOf(rt, self)
	})

	rt.ObjectClass.DefineMethod("dup", func(env *Env, self Value, args []Value, block *Block) Value {
		return Dup(rt, self)
	})

	rt.ObjectClass.DefineMethod("is_a?", func(env *Env, self Value, args []Value, block *Block) Value {
		target, ok := args[0].(*Class)
		if !ok {
			return rt.False
		}
		return rt.Bool(IsKindOfClass(self, target))
	})

	rt.ObjectClass.DefineMethod("respond_to?", func(env *Env, self Value, args []Value, block *Block) Value {
		name, ok := args[0].(*SymbolValue)
		if !ok {
			if s, ok := args[0].(*StringValue); ok {
				return rt.Bool(RespondTo(rt, self, s.Str))
			}
			return rt.False
		}
		return rt.Bool(RespondTo(rt, self, name.Name))
	})

	rt.ObjectClass.DefineMethod("send", func(env *Env, self Value, args []Value, block *Block) Value {
		if len(args) == 0 {
			return rt.RaiseExceptionf(env, rt.ArgumentErrorClass, "no method name given")
		}
		name := symbolOrStringName(args[0])
		return rt.Send(env, self, name, args[1:], block)
	})

	rt.ObjectClass.DefineMethod("object_id", func(env *Env, self Value, args []Value, block *Block) Value {
		return Integer(ObjectID(self))
	})

	rt.ObjectClass.DefineMethod("==", func(env *Env, self Value, args []Value, block *Block) Value {
		return rt.Bool(self == args[0])
	})

	rt.ObjectClass.DefineMethod("!=", func(env *Env, self Value, args []Value, block *Block) Value {
		return rt.Bool(self != args[0])
	})

	rt.ObjectClass.DefineMethod("!", func(env *Env, self Value, args []Value, block *Block) Value {
		return BoolNot(rt, self)
	})

	rt.ModuleClass.DefineMethod("include", func(env *Env, self Value, args []Value, block *Block) Value {
		target, ok := self.(*Class)
		if !ok {
			Fatal("include: receiver is not a Class/Module")
			return rt.Nil
		}
		for _, a := range args {
			if mod, ok := a.(*Class); ok {
				target.IncludeModule(mod)
			}
		}
		return self
	})

	rt.ModuleClass.DefineMethod("ancestors", func(env *Env, self Value, args []Value, block *Block) Value {
		klass, ok := self.(*Class)
		if !ok {
			Fatal("ancestors: receiver is not a Class/Module")
			return rt.Nil
		}
		anc := ClassAncestors(klass)
		elems := make([]Value, len(anc))
		for i, a := range anc {
			elems[i] = a
		}
		return rt.NewArray(elems)
	})

	rt.ModuleClass.DefineMethod("instance_method_defined?", func(env *Env, self Value, args []Value, block *Block) Value {
		klass, ok := self.(*Class)
		if !ok {
			return rt.False
		}
		name := symbolOrStringName(args[0])
		m, _ := FindMethodWithoutUndefined(klass, name)
		return rt.Bool(m != nil)
	})
}

// symbolOrStringName extracts a bare method/constant name from either a
// Symbol or a String argument, the two shapes natalie.cpp's send()
// accepts for its method-name argument.
func symbolOrStringName(v Value) string {
	switch n := v.(type) {
	case *SymbolValue:
		return n.Name
	case *StringValue:
		return n.Str
	default:
		return ""
	}
}
