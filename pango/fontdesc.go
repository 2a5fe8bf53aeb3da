package pango

import (
	"github.com/wippyai/pangobind/ffi"
	"github.com/wippyai/pangobind/handle"
)

// FontDescription describes a font by family, style, weight, stretch and
// size. It is a boxed value: the wrapper is its only owner.
type FontDescription struct {
	b *Binding
	h *handle.Full
}

func (b *Binding) wrapFontDescription(h *handle.Full, ok bool) (*FontDescription, bool) {
	if !ok {
		return nil, false
	}
	return &FontDescription{b: b, h: h}, true
}

// NewFontDescription creates a description with no fields set.
func (b *Binding) NewFontDescription() *FontDescription {
	return &FontDescription{b: b, h: handle.TakeFull(b.fontDesc, b.lib.FontDescriptionNew())}
}

// ParseFontDescription parses a string such as "Sans Bold Italic 12".
func (b *Binding) ParseFontDescription(s string) (*FontDescription, bool) {
	cs := b.cstring(s)
	defer b.lib.Free(cs)
	return b.wrapFontDescription(handle.TryTakeFull(b.fontDesc, b.lib.FontDescriptionFromString(cs)))
}

// CopyFontDescription owns a copy of a borrowed description. It panics
// when v is a view of another type.
func (b *Binding) CopyFontDescription(v handle.Borrowed) (*FontDescription, bool) {
	return b.wrapFontDescription(handle.CopyBorrowed(v, b.fontDesc))
}

// Family returns the family list, or false when unset.
func (d *FontDescription) Family() (string, bool) {
	return ffi.GoString(d.b.lib, d.b.lib.FontDescriptionGetFamily(d.h.Raw()))
}

// SetFamily sets a comma-separated family list.
func (d *FontDescription) SetFamily(family string) {
	cs := d.b.cstring(family)
	defer d.b.lib.Free(cs)
	d.b.lib.FontDescriptionSetFamily(d.h.Raw(), cs)
}

// Size returns the size in Pango units, 0 when unset.
func (d *FontDescription) Size() int32 { return d.b.lib.FontDescriptionGetSize(d.h.Raw()) }

// SetSize sets the size in Pango units (points times Scale).
func (d *FontDescription) SetSize(size int32) { d.b.lib.FontDescriptionSetSize(d.h.Raw(), size) }

// SizePoints returns the size in points.
func (d *FontDescription) SizePoints() float64 { return float64(d.Size()) / Scale }

// Weight returns the weight, WeightNormal when unset.
func (d *FontDescription) Weight() Weight { return Weight(d.b.lib.FontDescriptionGetWeight(d.h.Raw())) }

// SetWeight sets the weight and marks it set.
func (d *FontDescription) SetWeight(w Weight) { d.b.lib.FontDescriptionSetWeight(d.h.Raw(), w.ToGlib()) }

// Style returns the slant style, StyleNormal when unset.
func (d *FontDescription) Style() Style { return Style(d.b.lib.FontDescriptionGetStyle(d.h.Raw())) }

// SetStyle sets the slant style and marks it set.
func (d *FontDescription) SetStyle(s Style) { d.b.lib.FontDescriptionSetStyle(d.h.Raw(), s.ToGlib()) }

// Variant returns the capitalization variant, VariantNormal when unset.
func (d *FontDescription) Variant() Variant {
	return Variant(d.b.lib.FontDescriptionGetVariant(d.h.Raw()))
}

// SetVariant sets the capitalization variant and marks it set.
func (d *FontDescription) SetVariant(v Variant) {
	d.b.lib.FontDescriptionSetVariant(d.h.Raw(), v.ToGlib())
}

// Stretch returns the width, StretchNormal when unset.
func (d *FontDescription) Stretch() Stretch {
	return Stretch(d.b.lib.FontDescriptionGetStretch(d.h.Raw()))
}

// SetStretch sets the width and marks it set.
func (d *FontDescription) SetStretch(s Stretch) {
	d.b.lib.FontDescriptionSetStretch(d.h.Raw(), s.ToGlib())
}

// SetFields returns the fields that were explicitly set. Bits this package
// does not know are dropped.
func (d *FontDescription) SetFields() FontMask {
	return fontMaskTable.Truncate(d.b.lib.FontDescriptionGetSetFields(d.h.Raw()))
}

// String formats the description in the syntax ParseFontDescription reads.
func (d *FontDescription) String() string {
	s, _ := ffi.TakeString(d.b.lib, d.b.lib.FontDescriptionToString(d.h.Raw()))
	return s
}

// Equal compares field by field on the foreign side. Family names compare
// case-insensitively there.
func (d *FontDescription) Equal(other *FontDescription) bool {
	return d.b.lib.FontDescriptionEqual(d.h.Raw(), other.h.Raw())
}

// Hash is consistent with Equal.
func (d *FontDescription) Hash() uint32 { return d.b.lib.FontDescriptionHash(d.h.Raw()) }

// DeepCopy returns an independent description with the same fields.
func (d *FontDescription) DeepCopy() (*FontDescription, bool) {
	return d.b.wrapFontDescription(d.h.DeepCopy())
}

// Release frees the description.
func (d *FontDescription) Release() { d.h.Release() }

// Released reports whether Release was called.
func (d *FontDescription) Released() bool { return d.h.Released() }

// Raw returns the foreign pointer. It panics after Release.
func (d *FontDescription) Raw() ffi.Ptr { return d.h.Raw() }

// Borrow returns a view valid until the description is released.
func (d *FontDescription) Borrow() handle.Borrowed { return d.h.Borrow() }
