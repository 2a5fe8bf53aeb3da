package hostlib

import (
	"hash/fnv"
	"strconv"
	"strings"

	"github.com/wippyai/pangobind/ffi"
)

const (
	maskFamily uint32 = 1 << iota
	maskStyle
	maskVariant
	maskWeight
	maskStretch
	maskSize

	maskParsed = maskStyle | maskVariant | maskWeight | maskStretch
)

type descFields struct {
	family  string
	hasFam  bool
	size    int32
	weight  int32
	style   int32
	variant int32
	stretch int32
	mask    uint32
}

func newDescFields() descFields {
	return descFields{weight: weightNormal, stretch: stretchNormal}
}

func (d *descFields) setFamily(s string) {
	d.family = s
	d.hasFam = true
	d.mask |= maskFamily
}

func (d descFields) equal(o descFields) bool {
	return d.mask == o.mask &&
		d.hasFam == o.hasFam &&
		strings.EqualFold(d.family, o.family) &&
		d.size == o.size &&
		d.weight == o.weight &&
		d.style == o.style &&
		d.variant == o.variant &&
		d.stretch == o.stretch
}

func (d descFields) hash() uint32 {
	h := fnv.New32a()
	if d.hasFam {
		h.Write([]byte(strings.ToLower(d.family)))
	}
	var buf [4]byte
	for _, v := range []int32{d.size, d.weight, d.style, d.variant, d.stretch, int32(d.mask)} {
		buf[0], buf[1], buf[2], buf[3] = byte(v), byte(v>>8), byte(v>>16), byte(v>>24)
		h.Write(buf[:])
	}
	return h.Sum32()
}

var (
	styleWords   = map[int32]string{1: "Oblique", 2: "Italic"}
	variantWords = map[int32]string{1: "Small-Caps"}
	weightWords  = map[int32]string{
		100: "Thin", 200: "Ultra-Light", 300: "Light", 350: "Semi-Light", 380: "Book",
		500: "Medium", 600: "Semi-Bold", 700: "Bold", 800: "Ultra-Bold", 900: "Heavy", 1000: "Ultra-Heavy",
	}
	stretchWords = map[int32]string{
		0: "Ultra-Condensed", 1: "Extra-Condensed", 2: "Condensed", 3: "Semi-Condensed",
		5: "Semi-Expanded", 6: "Expanded", 7: "Extra-Expanded", 8: "Ultra-Expanded",
	}
)

// String formats fields as "Family [Style words] [Size]", the syntax of
// pango_font_description_to_string. A family ending in a style word or a
// number gets a trailing comma so that parsing it back is unambiguous.
func (d descFields) String() string {
	var words []string
	if d.hasFam && d.family != "" {
		f := d.family
		if last := f[strings.LastIndexByte(f, ' ')+1:]; isStyleWord(last) || isSize(last) {
			f += ","
		}
		words = append(words, f)
	}
	if w, ok := weightWords[d.weight]; ok {
		words = append(words, w)
	} else if d.weight != weightNormal {
		words = append(words, "weight="+strconv.Itoa(int(d.weight)))
	}
	if w, ok := styleWords[d.style]; ok {
		words = append(words, w)
	}
	if w, ok := variantWords[d.variant]; ok {
		words = append(words, w)
	}
	if w, ok := stretchWords[d.stretch]; ok {
		words = append(words, w)
	}
	if len(words) == 0 {
		words = append(words, "Normal")
	}
	if d.mask&maskSize != 0 && d.size > 0 {
		words = append(words, strconv.FormatFloat(float64(d.size)/pangoScale, 'f', -1, 64))
	}
	return strings.Join(words, " ")
}

func lookupWord(m map[int32]string, w string) (int32, bool) {
	for v, name := range m {
		if strings.EqualFold(name, w) {
			return v, true
		}
	}
	return 0, false
}

func isStyleWord(w string) bool {
	if strings.EqualFold(w, "Normal") || strings.HasPrefix(strings.ToLower(w), "weight=") {
		return true
	}
	for _, m := range []map[int32]string{styleWords, variantWords, weightWords, stretchWords} {
		if _, ok := lookupWord(m, w); ok {
			return true
		}
	}
	return false
}

func isSize(w string) bool {
	_, err := strconv.ParseFloat(w, 64)
	return err == nil
}

// parseDesc reads the syntax produced by String. Style words and the size
// are taken from the end; what remains is the family. Style, weight,
// variant and stretch are always marked set, defaulting to normal.
func parseDesc(s string) descFields {
	d := newDescFields()
	d.mask = maskParsed
	words := strings.Fields(s)

	if n := len(words); n > 0 {
		if v, err := strconv.ParseFloat(words[n-1], 64); err == nil && v >= 0 && v < 1e6 {
			d.size = int32(v*pangoScale + 0.5)
			d.mask |= maskSize
			words = words[:n-1]
		}
	}
	for len(words) > 0 {
		w := words[len(words)-1]
		if !applyWord(&d, w) {
			break
		}
		words = words[:len(words)-1]
	}
	if fam := strings.TrimRight(strings.Join(words, " "), ", "); fam != "" {
		d.setFamily(fam)
	}
	return d
}

func applyWord(d *descFields, w string) bool {
	if strings.EqualFold(w, "Normal") {
		return true
	}
	if lw := strings.ToLower(w); strings.HasPrefix(lw, "weight=") {
		v, err := strconv.Atoi(lw[len("weight="):])
		if err != nil {
			return false
		}
		d.weight = int32(v)
		d.mask |= maskWeight
		return true
	}
	if v, ok := lookupWord(weightWords, w); ok {
		d.weight, d.mask = v, d.mask|maskWeight
		return true
	}
	if v, ok := lookupWord(styleWords, w); ok {
		d.style, d.mask = v, d.mask|maskStyle
		return true
	}
	if v, ok := lookupWord(variantWords, w); ok {
		d.variant, d.mask = v, d.mask|maskVariant
		return true
	}
	if v, ok := lookupWord(stretchWords, w); ok {
		d.stretch, d.mask = v, d.mask|maskStretch
		return true
	}
	return false
}

type fontDescObj struct {
	lib       *Library
	fields    descFields
	familyPtr ffi.Ptr
}

func (d *fontDescObj) Finalize() {
	d.lib.free(ffi.SymFontDescriptionFree, d.familyPtr)
}

func (l *Library) newFontDescription(f descFields) ffi.Ptr {
	return l.insert(TypeFontDescription, &fontDescObj{lib: l, fields: f})
}

func (l *Library) fontDesc(sym string, p ffi.Ptr) (*fontDescObj, bool) {
	v, ok := l.object(sym, p, TypeFontDescription)
	if !ok {
		return nil, false
	}
	return v.(*fontDescObj), true
}

// FontDescriptionNew implements pango_font_description_new.
func (l *Library) FontDescriptionNew() ffi.Ptr {
	l.enter(ffi.SymFontDescriptionNew)
	return l.newFontDescription(newDescFields())
}

// FontDescriptionCopy implements pango_font_description_copy. Copying
// NULL returns NULL without a warning.
func (l *Library) FontDescriptionCopy(p ffi.Ptr) ffi.Ptr {
	if l.enter(ffi.SymFontDescriptionCopy) || p.IsNull() {
		return 0
	}
	d, ok := l.fontDesc(ffi.SymFontDescriptionCopy, p)
	if !ok {
		return 0
	}
	return l.newFontDescription(d.fields)
}

// FontDescriptionFree implements pango_font_description_free.
func (l *Library) FontDescriptionFree(p ffi.Ptr) {
	l.enter(ffi.SymFontDescriptionFree)
	if p.IsNull() {
		return
	}
	if _, ok := l.fontDesc(ffi.SymFontDescriptionFree, p); !ok {
		return
	}
	l.unref(p)
}

// FontDescriptionEqual implements pango_font_description_equal.
func (l *Library) FontDescriptionEqual(a, b ffi.Ptr) bool {
	l.enter(ffi.SymFontDescriptionEqual)
	da, ok := l.fontDesc(ffi.SymFontDescriptionEqual, a)
	if !ok {
		return false
	}
	db, ok := l.fontDesc(ffi.SymFontDescriptionEqual, b)
	if !ok {
		return false
	}
	return da.fields.equal(db.fields)
}

// FontDescriptionHash implements pango_font_description_hash.
func (l *Library) FontDescriptionHash(p ffi.Ptr) uint32 {
	l.enter(ffi.SymFontDescriptionHash)
	d, ok := l.fontDesc(ffi.SymFontDescriptionHash, p)
	if !ok {
		return 0
	}
	return d.fields.hash()
}

// FontDescriptionGetFamily implements pango_font_description_get_family.
// The string stays valid until the family changes or d is freed.
func (l *Library) FontDescriptionGetFamily(p ffi.Ptr) ffi.Ptr {
	l.enter(ffi.SymFontDescriptionGetFamily)
	d, ok := l.fontDesc(ffi.SymFontDescriptionGetFamily, p)
	if !ok || !d.fields.hasFam {
		return 0
	}
	if d.familyPtr.IsNull() {
		d.familyPtr = l.newString(d.fields.family)
	}
	return d.familyPtr
}

// FontDescriptionSetFamily implements pango_font_description_set_family.
// A NULL family unsets the field.
func (l *Library) FontDescriptionSetFamily(p, family ffi.Ptr) {
	l.enter(ffi.SymFontDescriptionSetFamily)
	d, ok := l.fontDesc(ffi.SymFontDescriptionSetFamily, p)
	if !ok {
		return
	}
	l.free(ffi.SymFontDescriptionSetFamily, d.familyPtr)
	d.familyPtr = 0
	if family.IsNull() {
		d.fields.family, d.fields.hasFam = "", false
		d.fields.mask &^= maskFamily
		return
	}
	s, ok := l.ReadCString(family)
	if !ok {
		l.critical(ffi.SymFontDescriptionSetFamily, family, "string out of bounds")
		return
	}
	d.fields.setFamily(s)
}

// getField and setField implement the accessors of integer fields.
func (l *Library) getField(sym string, p ffi.Ptr, get func(*descFields) int32) int32 {
	l.enter(sym)
	d, ok := l.fontDesc(sym, p)
	if !ok {
		return 0
	}
	return get(&d.fields)
}

func (l *Library) setField(sym string, p ffi.Ptr, mask uint32, set func(*descFields)) {
	l.enter(sym)
	d, ok := l.fontDesc(sym, p)
	if !ok {
		return
	}
	set(&d.fields)
	d.fields.mask |= mask
}

func (l *Library) FontDescriptionGetSize(p ffi.Ptr) int32 {
	return l.getField(ffi.SymFontDescriptionGetSize, p, func(d *descFields) int32 { return d.size })
}

// FontDescriptionSetSize implements pango_font_description_set_size.
// Negative sizes are rejected.
func (l *Library) FontDescriptionSetSize(p ffi.Ptr, size int32) {
	if size < 0 {
		l.enter(ffi.SymFontDescriptionSetSize)
		l.critical(ffi.SymFontDescriptionSetSize, p, "assertion 'size >= 0' failed")
		return
	}
	l.setField(ffi.SymFontDescriptionSetSize, p, maskSize, func(d *descFields) { d.size = size })
}

func (l *Library) FontDescriptionGetWeight(p ffi.Ptr) int32 {
	return l.getField(ffi.SymFontDescriptionGetWeight, p, func(d *descFields) int32 { return d.weight })
}

func (l *Library) FontDescriptionSetWeight(p ffi.Ptr, weight int32) {
	l.setField(ffi.SymFontDescriptionSetWeight, p, maskWeight, func(d *descFields) { d.weight = weight })
}

func (l *Library) FontDescriptionGetStyle(p ffi.Ptr) int32 {
	return l.getField(ffi.SymFontDescriptionGetStyle, p, func(d *descFields) int32 { return d.style })
}

func (l *Library) FontDescriptionSetStyle(p ffi.Ptr, style int32) {
	l.setField(ffi.SymFontDescriptionSetStyle, p, maskStyle, func(d *descFields) { d.style = style })
}

func (l *Library) FontDescriptionGetVariant(p ffi.Ptr) int32 {
	return l.getField(ffi.SymFontDescriptionGetVariant, p, func(d *descFields) int32 { return d.variant })
}

func (l *Library) FontDescriptionSetVariant(p ffi.Ptr, variant int32) {
	l.setField(ffi.SymFontDescriptionSetVariant, p, maskVariant, func(d *descFields) { d.variant = variant })
}

func (l *Library) FontDescriptionGetStretch(p ffi.Ptr) int32 {
	return l.getField(ffi.SymFontDescriptionGetStretch, p, func(d *descFields) int32 { return d.stretch })
}

func (l *Library) FontDescriptionSetStretch(p ffi.Ptr, stretch int32) {
	l.setField(ffi.SymFontDescriptionSetStretch, p, maskStretch, func(d *descFields) { d.stretch = stretch })
}

// FontDescriptionGetSetFields implements pango_font_description_get_set_fields.
func (l *Library) FontDescriptionGetSetFields(p ffi.Ptr) uint32 {
	return uint32(l.getField(ffi.SymFontDescriptionGetSetFields, p, func(d *descFields) int32 { return int32(d.mask) }))
}

// FontDescriptionToString implements pango_font_description_to_string.
// The result is g_malloc'd.
func (l *Library) FontDescriptionToString(p ffi.Ptr) ffi.Ptr {
	l.enter(ffi.SymFontDescriptionToString)
	d, ok := l.fontDesc(ffi.SymFontDescriptionToString, p)
	if !ok {
		return 0
	}
	return l.newString(d.fields.String())
}

// FontDescriptionFromString implements pango_font_description_from_string.
func (l *Library) FontDescriptionFromString(s ffi.Ptr) ffi.Ptr {
	if l.enter(ffi.SymFontDescriptionFromString) {
		return 0
	}
	str, ok := l.ReadCString(s)
	if !ok {
		l.critical(ffi.SymFontDescriptionFromString, s, "assertion 'str != NULL' failed")
		return 0
	}
	return l.newFontDescription(parseDesc(str))
}
