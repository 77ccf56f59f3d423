package internal

// FindMethod walks the method-resolution order starting at klass and
// returns the first Method entry found under name, whether or not it is an
// undefined marker, together with the class/module it was found on. It
// mirrors natalie.cpp's find_method: no included modules means search
// klass's own table then recurse to its superclass; otherwise walk
// included modules in inclusion order first.
func FindMethod(klass *Class, name string) (*Method, *Class) {
	for _, anc := range ClassAncestors(klass) {
		if m, ok := anc.Methods[name]; ok {
			return m, anc
		}
	}
	return nil, nil
}

// FindMethodWithoutUndefined behaves like FindMethod but reports no method
// when the first entry found is an undefined marker: the ancestor walk
// stops there and does not continue past it. RespondTo and
// instance_method_defined? use this variant; Send uses FindMethod itself,
// which exposes the undefined marker so Send can raise NoMethodError.
func FindMethodWithoutUndefined(klass *Class, name string) (*Method, *Class) {
	for _, anc := range ClassAncestors(klass) {
		m, ok := anc.Methods[name]
		if !ok {
			continue
		}
		if m.Undefined {
			return nil, nil
		}
		return m, anc
	}
	return nil, nil
}

// RespondTo reports whether obj has a non-undefined method named name,
// checking obj's singleton class (if it has one) before its ordinary class
// chain, matching natalie.cpp's respond_to.
func RespondTo(rt *Runtime, obj Value, name string) bool {
	if s := ExistingSingletonClassOf(obj); s != nil {
		if m, _ := FindMethodWithoutUndefined(s, name); m != nil {
			return true
		}
	}
	m, _ := FindMethodWithoutUndefined(ClassOf(rt, obj), name)
	return m != nil
}

// Defined implements the defined? operator's three checks in priority
// order: a constant named name on receiver or its superclass chain (checked
// only when receiver is itself a Class or module), a global
// variable named name, then a method named name that obj responds to. It
// returns the matched category's label, or "" if none matched, matching
// natalie.cpp's defined().
func Defined(rt *Runtime, env *Env, obj Value, name string) string {
	if klass, ok := obj.(*Class); ok {
		if klass.ConstGetOrNull(name) != nil {
			return "constant"
		}
	}
	if len(name) > 0 && name[0] == '$' {
		if _, ok := env.RT.Globals[name]; ok {
			return "global-variable"
		}
		return ""
	}
	if RespondTo(rt, obj, name) {
		return "method"
	}
	return ""
}
