package enum

import (
	"math/bits"
	"sort"
	"strconv"
	"strings"

	"github.com/wippyai/pangobind/errors"
)

// Flag is a named bit or mask of a flag set.
type Flag[F ~uint32] struct {
	Value F
	Name  string
}

// FlagTable is a bit-flag set. Named entries may be single bits, composite
// masks or zero.
type FlagTable[F ~uint32] struct {
	name   string
	flags  []Flag[F]
	byName map[string]F
	known  F
}

// NewFlags builds a flag table.
func NewFlags[F ~uint32](name string, flags ...Flag[F]) *FlagTable[F] {
	t := &FlagTable[F]{
		name:   name,
		flags:  append([]Flag[F](nil), flags...),
		byName: make(map[string]F, len(flags)),
	}
	for _, f := range flags {
		if _, dup := t.byName[f.Name]; dup {
			panic(errors.New(errors.PhaseBind, errors.KindInvalidEnum).
				Type(name).Detail("duplicate name %q", f.Name).Build())
		}
		t.byName[f.Name] = f.Value
		t.known |= f.Value
	}
	sort.SliceStable(t.flags, func(i, j int) bool { return t.flags[i].Value < t.flags[j].Value })
	return t
}

// Name returns the foreign type name.
func (t *FlagTable[F]) Name() string { return t.name }

// Known is the union of every declared bit.
func (t *FlagTable[F]) Known() F { return t.known }

// FromGlib converts a foreign bit set. It returns false when bits outside
// the declared set are present; the returned value keeps them.
func (t *FlagTable[F]) FromGlib(v uint32) (F, bool) {
	f := F(v)
	return f, f&^t.known == 0
}

// Truncate drops undeclared bits.
func (t *FlagTable[F]) Truncate(v uint32) F {
	return F(v) & t.known
}

// MustFromGlib is FromGlib for values the foreign side guarantees.
func (t *FlagTable[F]) MustFromGlib(v uint32) F {
	f, ok := t.FromGlib(v)
	if !ok {
		panic(errors.InvalidEnum(v, t.name))
	}
	return f
}

// ToGlib converts to the foreign bit set.
func (t *FlagTable[F]) ToGlib(f F) uint32 { return uint32(f) }

// Flags lists the declared entries in ascending value order.
func (t *FlagTable[F]) Flags() []Flag[F] {
	return append([]Flag[F](nil), t.flags...)
}

// Lookup finds a named entry, case-insensitively.
func (t *FlagTable[F]) Lookup(name string) (F, bool) {
	if f, ok := t.byName[name]; ok {
		return f, true
	}
	for n, f := range t.byName {
		if strings.EqualFold(n, name) {
			return f, true
		}
	}
	return 0, false
}

// Parse reads a "|"-separated list of names as produced by String.
func (t *FlagTable[F]) Parse(s string) (F, bool) {
	var out F
	for _, part := range strings.Split(s, "|") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if strings.HasPrefix(part, "0x") {
			v, err := strconv.ParseUint(part[2:], 16, 32)
			if err != nil {
				return 0, false
			}
			out |= F(v)
			continue
		}
		f, ok := t.Lookup(part)
		if !ok {
			return 0, false
		}
		out |= f
	}
	return out, true
}

// String names the set bits joined by "|". An exact match of a named entry
// (including zero and composite masks) prints that name alone; otherwise
// single-bit names are used and leftover bits print in hex.
func (t *FlagTable[F]) String(f F) string {
	for _, e := range t.flags {
		if e.Value == f {
			return e.Name
		}
	}
	if f == 0 {
		return "0"
	}
	var parts []string
	rest := f
	for _, e := range t.flags {
		if bits.OnesCount32(uint32(e.Value)) == 1 && rest&e.Value != 0 {
			parts = append(parts, e.Name)
			rest &^= e.Value
		}
	}
	if rest != 0 {
		parts = append(parts, "0x"+strconv.FormatUint(uint64(rest), 16))
	}
	return strings.Join(parts, "|")
}

// Has reports whether every bit of want is set in f.
func Has[F ~uint32](f, want F) bool { return f&want == want }

// Union returns f | g.
func Union[F ~uint32](f, g F) F { return f | g }

// Intersect returns f & g.
func Intersect[F ~uint32](f, g F) F { return f & g }

// Without returns f with the bits of g cleared.
func Without[F ~uint32](f, g F) F { return f &^ g }
