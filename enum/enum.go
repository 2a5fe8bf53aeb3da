// Package enum provides bijection tables between foreign integer constants
// and typed Go enumerations and flag sets.
//
// Enumeration types are declared with the foreign constant values, so the
// conversion in either direction is a type conversion. A table adds names
// and membership: FromGlib rejects values the table does not declare.
package enum

import (
	"sort"
	"strconv"
	"strings"

	"github.com/wippyai/pangobind/errors"
)

// Table is a closed enumeration.
type Table[E ~int32] struct {
	name   string
	names  map[E]string
	byName map[string]E
	values []E
}

// New builds a table. Names must be unique.
func New[E ~int32](name string, names map[E]string) *Table[E] {
	t := &Table[E]{
		name:   name,
		names:  names,
		byName: make(map[string]E, len(names)),
		values: make([]E, 0, len(names)),
	}
	for v, n := range names {
		if _, dup := t.byName[n]; dup {
			panic(errors.New(errors.PhaseBind, errors.KindInvalidEnum).
				Type(name).Detail("duplicate name %q", n).Build())
		}
		t.byName[n] = v
		t.values = append(t.values, v)
	}
	sort.Slice(t.values, func(i, j int) bool { return t.values[i] < t.values[j] })
	return t
}

// Name returns the foreign type name.
func (t *Table[E]) Name() string { return t.name }

// String returns the constant name, or "Type(n)" for undeclared values.
func (t *Table[E]) String(e E) string {
	if n, ok := t.names[e]; ok {
		return n
	}
	return t.name + "(" + strconv.FormatInt(int64(e), 10) + ")"
}

// FromGlib converts a foreign integer. It returns false for values the
// table does not declare.
func (t *Table[E]) FromGlib(v int32) (E, bool) {
	e := E(v)
	_, ok := t.names[e]
	return e, ok
}

// MustFromGlib is FromGlib for values the foreign side guarantees.
func (t *Table[E]) MustFromGlib(v int32) E {
	e, ok := t.FromGlib(v)
	if !ok {
		panic(errors.InvalidEnum(v, t.name))
	}
	return e
}

// ToGlib converts to the foreign integer.
func (t *Table[E]) ToGlib(e E) int32 { return int32(e) }

// Contains reports whether e is declared.
func (t *Table[E]) Contains(e E) bool {
	_, ok := t.names[e]
	return ok
}

// Values returns the declared values in ascending order.
func (t *Table[E]) Values() []E {
	return append([]E(nil), t.values...)
}

// Lookup finds a value by constant name, case-insensitively.
func (t *Table[E]) Lookup(name string) (E, bool) {
	if e, ok := t.byName[name]; ok {
		return e, true
	}
	for n, e := range t.byName {
		if strings.EqualFold(n, name) {
			return e, true
		}
	}
	return 0, false
}
