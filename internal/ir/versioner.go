package ir

import "sort"

// TemporaryTag is the base name of values that are not bound to a variable
const TemporaryTag = "bin"

// Versioner hands out SSA names for one compilation unit.
//
// Variables and temporaries draw from the same per-base counter, so a source
// variable that happens to be called "bin" can never collide with a temporary.
type Versioner struct {
	counters map[string]int
	live     map[string]Name
}

// NewVersioner creates a versioner with no definitions
func NewVersioner() *Versioner {
	return &Versioner{
		counters: make(map[string]int),
		live:     make(map[string]Name),
	}
}

// Define allocates the next version of base and makes it the live one
func (v *Versioner) Define(base string) Name {
	name := v.next(base, false)
	v.live[base] = name
	return name
}

// Lookup returns the live version of base
func (v *Versioner) Lookup(base string) (Name, error) {
	name, ok := v.live[base]
	if !ok {
		return Name{}, &UndefinedVariableError{Name: base}
	}
	return name, nil
}

// FreshTemporary allocates a name that has never been used, without touching
// the live version of any variable
func (v *Versioner) FreshTemporary(tag string) Name {
	return v.next(tag, true)
}

// Defined returns the variables defined so far, sorted
func (v *Versioner) Defined() []string {
	names := make([]string, 0, len(v.live))
	for base := range v.live {
		names = append(names, base)
	}
	sort.Strings(names)
	return names
}

func (v *Versioner) next(base string, temp bool) Name {
	v.counters[base]++
	return Name{Base: base, Version: v.counters[base], Temp: temp}
}
