package internal

import (
	"github.com/zephyrtronium/contains"
)

// Class represents both classes and modules: the two share a method table,
// a constants map, and an ancestor-walk algorithm, differing only in
// whether they have a superclass and whether they can be instantiated
// directly.
type Class struct {
	Header
	Name     string
	Super    *Class
	Included []*Class
	Methods  map[string]*Method
	Constants map[string]Value
	Env      *Env
	IsModule bool

	singletonOf *Class // non-nil if this Class is itself a singleton class
}

// Kind implements Value. Modules and classes share a Go type but report
// distinct Kinds so that Kind-based dispatch (e.g. in a compiled host
// program's type checks) can tell them apart.
func (c *Class) Kind() Kind {
	if c.IsModule {
		return KindModule
	}
	return KindClass
}

// NewClass creates a class with the given superclass. super may be nil only
// for the top class (spec invariant: superclass is nil only for the top
// class).
func (rt *Runtime) NewClass(name string, super *Class) *Class {
	c := &Class{
		Name:      name,
		Super:     super,
		Methods:   make(map[string]*Method),
		Constants: make(map[string]Value),
	}
	c.Header = newHeader(rt.ClassClass)
	return c
}

// NewModule creates a module, which has no superclass of its own but can be
// included into classes and other modules.
func (rt *Runtime) NewModule(name string) *Class {
	m := &Class{
		Name:      name,
		IsModule:  true,
		Methods:   make(map[string]*Method),
		Constants: make(map[string]Value),
	}
	m.Header = newHeader(rt.ModuleClass)
	return m
}

// newSingletonClass builds the hidden per-object class inserted ahead of
// delegate in the ancestor chain. It is never registered under a name and
// is never itself instantiated.
func newSingletonClass(rt *Runtime, delegate *Class) *Class {
	s := &Class{
		Name:        "",
		Super:       delegate,
		Methods:     make(map[string]*Method),
		Constants:   make(map[string]Value),
		singletonOf: delegate,
	}
	s.Header = newHeader(rt.ClassClass)
	return s
}

// IsSingleton reports whether c is a singleton class rather than a class a
// compiled host program can name and instantiate.
func (c *Class) IsSingleton() bool {
	return c.singletonOf != nil
}

// IncludeModule appends mod to c's included-modules list, preserving
// invariant 3 (no duplicates, a class never includes itself) and invariant
// 4 (inclusion order is preserved: modules are searched in the order they
// were included, first-included first).
func (c *Class) IncludeModule(mod *Class) {
	if mod == c {
		return
	}
	for _, m := range c.Included {
		if m == mod {
			return
		}
	}
	c.Included = append(c.Included, mod)
}

// DefineMethod installs a native method under name, overwriting whatever
// was previously stored there.
func (c *Class) DefineMethod(name string, fn NativeFn) {
	c.Methods[name] = &Method{Fn: fn}
}

// DefineMethodWithBlock installs a method backed by a block's captured
// environment, used when a compiled host program defines a method whose
// body needs access to lexically enclosing locals.
func (c *Class) DefineMethodWithBlock(name string, fn NativeFn, env *Env) {
	c.Methods[name] = &Method{Fn: fn, Env: env}
}

// UndefineMethod installs an undefined marker under name rather than
// deleting any entry, so that ancestor lookups started from c stop instead
// of falling through to a superclass or module's definition.
func (c *Class) UndefineMethod(name string) {
	c.Methods[name] = &Method{Undefined: true}
}

// RemoveMethod deletes the method entry outright, which (unlike
// UndefineMethod) lets ancestor lookup fall through to a superclass or
// included module's definition of the same name.
func (c *Class) RemoveMethod(name string) {
	delete(c.Methods, name)
}

// DefineSingletonMethod installs a method reachable only through recv
// itself, lazily creating recv's singleton class.
func (rt *Runtime) DefineSingletonMethod(recv Value, name string, fn NativeFn) {
	s := SingletonClassOf(rt, recv)
	if s == nil {
		return
	}
	s.DefineMethod(name, fn)
}

// ClassAncestors returns the method-resolution order starting at c. When c
// has no included modules, c itself is emitted directly. When it does, its
// included modules are emitted first, in inclusion order, and c is emitted
// only after all of them — so a method defined on an included module
// shadows one defined on c itself, matching natalie.cpp's class_ancestors
// (original_source/src/natalie.cpp): "if there are included modules, then
// they will include this klass" rather than listing klass up front. The
// walk then repeats at c's superclass, ending at the top class. Cycle
// safety mirrors zephyrtronium/iolang's use of contains.Set in IsKindOf
// (internal/object.go). IncludeModule rejects only self-inclusion and
// duplicates, so two modules that include each other form a cycle; the
// visited set cuts it.
func ClassAncestors(c *Class) []*Class {
	var out []*Class
	seen := contains.Set{}
	cur := c
	for cur != nil {
		if !seen.Add(cur.UniqueID()) {
			break
		}
		if len(cur.Included) == 0 {
			out = append(out, cur)
		} else {
			for _, m := range cur.Included {
				addModuleAncestors(m, &out, &seen)
			}
			out = append(out, cur)
		}
		cur = cur.Super
	}
	return out
}

func addModuleAncestors(m *Class, out *[]*Class, seen *contains.Set) {
	if !seen.Add(m.UniqueID()) {
		return
	}
	*out = append(*out, m)
	for _, sub := range m.Included {
		addModuleAncestors(sub, out, seen)
	}
}

// ConstGetOrNull looks up name in c's own constants, then walks c's
// superclass chain, matching natalie.cpp's const_get_or_null call sites
// (e.g. the lookup at send()'s constant-dispatch path). It does not raise;
// callers that need NameError semantics wrap this with their own raise.
func (c *Class) ConstGetOrNull(name string) Value {
	for cur := c; cur != nil; cur = cur.Super {
		if v, ok := cur.Constants[name]; ok {
			return v
		}
	}
	return nil
}

// ConstSet defines or overwrites a constant directly on c, without walking
// ancestors (constants are always defined on the exact class or module
// naming them).
func (c *Class) ConstSet(name string, v Value) {
	c.Constants[name] = v
}
