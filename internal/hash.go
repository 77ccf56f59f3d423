package internal

// HashValue is an insertion-ordered key/value map. Keys are compared by
// canonical string form rather than Go equality so that two distinct
// Integer or SymbolValue keys with the same logical value collide the way
// the host language expects.
type HashValue struct {
	Header
	keys   []Value
	lookup map[string]int // canonical key -> index into keys/vals
	vals   []Value
}

// Kind implements Value.
func (*HashValue) Kind() Kind { return KindHash }

// NewHash creates an empty hash.
func (rt *Runtime) NewHash() *HashValue {
	h := &HashValue{lookup: make(map[string]int)}
	h.Header = newHeader(rt.HashClass)
	return h
}

// hashKey produces the canonical string a HashValue indexes Value keys by.
// Symbol, String and Integer keys (the shapes the binder needs) and nil,
// true and false are given stable keys; anything else falls back to unique
// per Value
// identity, matching the narrower equality keyword-argument lookups
// actually require.
func hashKey(v Value) string {
	switch k := v.(type) {
	case Integer:
		return "i:" + intToStringDecimal(int64(k))
	case *SymbolValue:
		return "y:" + k.Name
	case *StringValue:
		return "s:" + k.Str
	case *NilValue:
		return "n"
	case *TrueValue:
		return "t"
	case *FalseValue:
		return "f"
	default:
		if h, ok := headerOf(v); ok {
			return "o:" + intToStringDecimal(int64(h.UniqueID()))
		}
		return "?"
	}
}

// Get returns the value stored under key, and whether it was present.
func (h *HashValue) Get(key Value) (Value, bool) {
	idx, ok := h.lookup[hashKey(key)]
	if !ok {
		return nil, false
	}
	return h.vals[idx], true
}

// Set stores value under key, preserving first-insertion order for
// iteration the way the host language's Hash does.
func (h *HashValue) Set(key, value Value) {
	k := hashKey(key)
	if idx, ok := h.lookup[k]; ok {
		h.vals[idx] = value
		return
	}
	h.lookup[k] = len(h.keys)
	h.keys = append(h.keys, key)
	h.vals = append(h.vals, value)
}

// Len returns the number of key/value pairs stored.
func (h *HashValue) Len() int {
	return len(h.keys)
}

// Keys returns the hash's keys in insertion order.
func (h *HashValue) Keys() []Value {
	return h.keys
}

// RangeValue is an inclusive-or-exclusive pair of endpoints.
type RangeValue struct {
	Header
	Begin     Value
	End       Value
	Exclusive bool
}

// Kind implements Value.
func (*RangeValue) Kind() Kind { return KindRange }

// NewRange creates a range.
func (rt *Runtime) NewRange(begin, end Value, exclusive bool) *RangeValue {
	r := &RangeValue{Begin: begin, End: end, Exclusive: exclusive}
	r.Header = newHeader(rt.RangeClass)
	return r
}
