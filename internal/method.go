package internal

// NativeFn is the shape every method body and block body takes: given the
// environment constructed for this call, the receiver, the evaluated
// argument list, and an optional attached block, produce a result or raise
// by panicking through Runtime.Raise. Natively this plays the role
// natalie.cpp's block_fn function pointers play, and in Go terms it is the
// exact analogue of zephyrtronium/iolang's Fn type (cfunction.go).
type NativeFn func(env *Env, self Value, args []Value, block *Block) Value

// Method is one entry in a Class's method table. A Method with Undefined
// set is a tombstone: find_method_without_undefined's walk stops at it
// instead of continuing to a superclass or included module.
type Method struct {
	Fn        NativeFn
	Env       *Env
	Undefined bool
}
