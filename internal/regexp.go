package internal

import "regexp"

// RegexpValue wraps a compiled pattern. Concrete regex semantics (character
// classes, backreferences, etc.) are delegated entirely to Go's stdlib
// regexp package rather than reimplemented.
type RegexpValue struct {
	Header
	Source   string
	Compiled *regexp.Regexp
}

// Kind implements Value.
func (*RegexpValue) Kind() Kind { return KindRegexp }

// NewRegexp compiles source, raising SyntaxError on failure, matching
// natalie.cpp's NAT_RAISE(env, "SyntaxError", ...) at regexp compile time.
func (rt *Runtime) NewRegexp(env *Env, source string) *RegexpValue {
	compiled, err := regexp.Compile(source)
	if err != nil {
		rt.RaiseExceptionf(env, rt.SyntaxErrorClass, "%s", err.Error())
		return nil
	}
	r := &RegexpValue{Source: source, Compiled: compiled}
	r.Header = newHeader(rt.RegexpClass)
	return r
}

// MatchDataValue carries one match result: the subject string and the byte
// index pairs Go's regexp package reports for the whole match and each
// capture group.
type MatchDataValue struct {
	Header
	Re      *RegexpValue
	Subject string
	Indices []int
}

// Kind implements Value.
func (*MatchDataValue) Kind() Kind { return KindMatchData }

// NewMatchData wraps a FindSubmatchIndex result as a MatchData value.
func (rt *Runtime) NewMatchData(re *RegexpValue, subject string, indices []int) *MatchDataValue {
	m := &MatchDataValue{Re: re, Subject: subject, Indices: indices}
	m.Header = newHeader(rt.MatchDataClass)
	return m
}

// Match runs re against subject, recording the result as env's last match
// and returning it, or rt.Nil if there was no match.
func (rt *Runtime) Match(env *Env, re *RegexpValue, subject string) Value {
	idx := re.Compiled.FindStringSubmatchIndex(subject)
	if idx == nil {
		env.LastMatch = nil
		return rt.Nil
	}
	md := rt.NewMatchData(re, subject, idx)
	env.LastMatch = md
	return md
}

// LastMatch returns env's most recently recorded MatchData, walking the
// dynamic caller chain the way a global-like $~ lookup would, or rt.Nil if
// none has been recorded.
func LastMatch(rt *Runtime, env *Env) Value {
	for cur := env; cur != nil; cur = cur.Caller {
		if cur.LastMatch != nil {
			return cur.LastMatch
		}
	}
	return rt.Nil
}
