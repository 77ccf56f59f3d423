package internal

// Send dispatches a method call on receiver: it is the single entry point
// every call site in a compiled host program (and the core's own coercion
// helpers) funnels through, grounded on natalie.cpp's send()
// and call_method_on_class().
//
// Integer receivers always dispatch through IntegerClass directly (they
// can never have a singleton class). Every other receiver
// is checked against its own singleton class first, if one has already
// been created by a prior define_singleton_method call; an undefined
// marker found there raises NoMethodError immediately rather than falling
// through to the receiver's ordinary class, matching natalie.cpp line 218's
// "undefined method `%s' for %s:Class" wording. The ":Class" suffix is
// kept even when the receiver is not itself a class, so the message names
// the receiver's class followed by ":Class".
func (rt *Runtime) Send(env *Env, receiver Value, name string, args []Value, block *Block) Value {
	var klass *Class

	if _, isInt := receiver.(Integer); isInt {
		klass = rt.IntegerClass
	} else if singleton := ExistingSingletonClassOf(receiver); singleton != nil {
		if m, anc := FindMethod(singleton, name); m != nil {
			if m.Undefined {
				return rt.RaiseExceptionf(env, rt.NoMethodErrorClass,
					"undefined method `%s' for %s:Class", name, className(rt, receiver))
			}
			return rt.invoke(env, receiver, name, m, anc, args, block)
		}
		klass = ClassOf(rt, receiver)
	} else {
		klass = ClassOf(rt, receiver)
	}

	m, anc := FindMethod(klass, name)
	if m == nil {
		return rt.RaiseExceptionf(env, rt.NoMethodErrorClass,
			"undefined method `%s' for %s", name, klass.Name)
	}
	if m.Undefined {
		return rt.RaiseExceptionf(env, rt.NoMethodErrorClass,
			"undefined method `%s' for %s", name, klass.Name)
	}
	return rt.invoke(env, receiver, name, m, anc, args, block)
}

// invoke builds the Env a method body runs in and calls it, matching
// natalie.cpp's call_method_on_class: the new Env's lexical parent is the
// method's own captured Env if it was defined with one, otherwise the
// defining class/module's Env; its dynamic parent is the calling Env, and
// file/line/method name/block are copied down from the call site.
func (rt *Runtime) invoke(env *Env, receiver Value, name string, m *Method, definingClass *Class, args []Value, block *Block) Value {
	definingEnv := m.Env
	if definingEnv == nil {
		definingEnv = definingClass.Env
	}
	child := rt.NewMethodEnv(definingEnv, nil, env)
	child.File = env.File
	child.Line = env.Line
	child.Method = name
	child.Block = block
	return m.Fn(child, receiver, args, block)
}

// className renders receiver's class name for error messages, mirroring
// natalie.cpp's %s:Class format directive in its NoMethodError wording.
func className(rt *Runtime, v Value) string {
	return ClassOf(rt, v).Name
}
