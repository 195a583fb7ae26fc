// Package ident provides string interning for identifiers and string
// literal contents.
//
// The scanner interns every identifier and decoded string literal it
// produces, so tokens and AST nodes carry a small Str handle instead of the
// bytes themselves. Two handles issued by the same Interner are equal if and
// only if the underlying strings are equal, which makes identifier
// comparison (method lookup, map keys) a single integer compare. Keywords
// are recognized by spelling before interning and never get a handle.
package ident

// Str is a compact handle for an interned string. Handles are dense indexes
// starting at 0, valid for the lifetime of the Interner that issued them.
// Str is comparable and usable as a map key.
type Str int

// Interner deduplicates strings and hands out Str handles for them.
// It is append-only: once interned, a string stays for the lifetime of the
// Interner.
//
// The zero value is not usable; create one with New.
type Interner struct {
	lookup map[string]Str
	strs   []string
}

// New creates an empty Interner.
func New() *Interner {
	return &Interner{
		lookup: make(map[string]Str),
	}
}

// Intern returns the handle for s, allocating a new one if s has not been
// seen before. Interning the same string twice returns the same handle.
func (in *Interner) Intern(s string) Str {
	if id, ok := in.lookup[s]; ok {
		return id
	}
	id := Str(len(in.strs))
	in.strs = append(in.strs, s)
	in.lookup[s] = id
	return id
}

// Lookup returns the string for a handle. The second result is false if the
// handle was not issued by this Interner.
func (in *Interner) Lookup(id Str) (string, bool) {
	if id < 0 || int(id) >= len(in.strs) {
		return "", false
	}
	return in.strs[id], true
}

// MustLookup returns the string for a handle and panics if the handle is
// unknown. Use it where the handle is known to come from this Interner,
// such as when printing an AST it produced.
func (in *Interner) MustLookup(id Str) string {
	s, ok := in.Lookup(id)
	if !ok {
		panic("ident: lookup of unknown Str handle")
	}
	return s
}

// Len returns the number of distinct strings interned so far.
func (in *Interner) Len() int {
	return len(in.strs)
}
