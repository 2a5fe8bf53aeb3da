package hostlib

import (
	"github.com/wippyai/pangobind/ffi"
)

// FamilySpec seeds one family of the default font map.
type FamilySpec struct {
	Name      string
	Monospace bool
	Faces     []FaceSpec
}

// FaceSpec seeds one face. Sizes are in Pango units and mark a bitmap
// face; scalable faces leave it empty. Zero Weight and Stretch mean normal.
type FaceSpec struct {
	Name        string
	Synthesized bool
	Sizes       []int32
	Weight      int32
	Style       int32
	Variant     int32
	Stretch     int32
}

const (
	weightNormal  = 400
	weightBold    = 700
	styleItalic   = 2
	stretchNormal = 4
	pangoScale    = 1024
)

// DefaultFamilies is the font set used unless WithFamilies is given.
func DefaultFamilies() []FamilySpec {
	regular := FaceSpec{Name: "Regular"}
	bold := FaceSpec{Name: "Bold", Weight: weightBold}
	italic := FaceSpec{Name: "Italic", Style: styleItalic}
	boldItalic := FaceSpec{Name: "Bold Italic", Weight: weightBold, Style: styleItalic}
	return []FamilySpec{
		{Name: "Sans", Faces: []FaceSpec{regular, bold, italic, boldItalic}},
		{Name: "Serif", Faces: []FaceSpec{regular, bold, italic, boldItalic}},
		{Name: "Monospace", Monospace: true, Faces: []FaceSpec{
			regular,
			{Name: "Bold", Weight: weightBold, Synthesized: true},
		}},
		{Name: "Fixed", Monospace: true, Faces: []FaceSpec{
			{Name: "Regular", Sizes: []int32{8 * pangoScale, 10 * pangoScale, 12 * pangoScale}},
		}},
	}
}

type fontMapObj struct {
	lib      *Library
	families []ffi.Ptr
}

func (m *fontMapObj) Finalize() {
	if m.lib.closing {
		return
	}
	for _, f := range m.families {
		m.lib.unref(f)
	}
}

type familyObj struct {
	lib   *Library
	name  ffi.Ptr
	mono  bool
	faces []ffi.Ptr
}

func (f *familyObj) Finalize() {
	f.lib.free(ffi.SymObjectUnref, f.name)
	if f.lib.closing {
		return
	}
	for _, p := range f.faces {
		f.lib.unref(p)
	}
}

type faceObj struct {
	lib         *Library
	name        ffi.Ptr
	synthesized bool
	sizes       []int32
	desc        descFields
}

func (f *faceObj) Finalize() {
	f.lib.free(ffi.SymObjectUnref, f.name)
}

// newFontMap builds a font map from the seed. Each family and face is
// owned by its parent.
func (l *Library) newFontMap() ffi.Ptr {
	m := &fontMapObj{lib: l}
	for _, fs := range l.seed {
		fam := &familyObj{lib: l, name: l.newString(fs.Name), mono: fs.Monospace}
		for _, fc := range fs.Faces {
			d := newDescFields()
			d.setFamily(fs.Name)
			if fc.Weight != 0 {
				d.weight = fc.Weight
			}
			if fc.Stretch != 0 {
				d.stretch = fc.Stretch
			}
			d.style = fc.Style
			d.variant = fc.Variant
			d.mask |= maskStyle | maskVariant | maskWeight | maskStretch
			fam.faces = append(fam.faces, l.insert(TypeFontFace, &faceObj{
				lib:         l,
				name:        l.newString(fc.Name),
				synthesized: fc.Synthesized,
				sizes:       append([]int32(nil), fc.Sizes...),
				desc:        d,
			}))
		}
		m.families = append(m.families, l.insert(TypeFontFamily, fam))
	}
	return l.insert(TypeFontMap, m)
}

// FontMapGetDefault implements pango_cairo_font_map_get_default. The
// library keeps one count on the map; callers receive it unowned.
func (l *Library) FontMapGetDefault() ffi.Ptr {
	if l.enter(ffi.SymFontMapGetDefault) {
		return 0
	}
	if l.defaultMap.IsNull() {
		l.defaultMap = l.newFontMap()
	}
	return l.defaultMap
}

// FontMapListFamilies implements pango_font_map_list_families.
func (l *Library) FontMapListFamilies(p, familiesOut, nOut ffi.Ptr) {
	l.enter(ffi.SymFontMapListFamilies)
	v, ok := l.object(ffi.SymFontMapListFamilies, p, TypeFontMap)
	if !ok {
		l.writeOut(familiesOut, nOut, nil)
		return
	}
	l.writeOut(familiesOut, nOut, ptrs32(v.(*fontMapObj).families))
}

func (l *Library) family(sym string, p ffi.Ptr) (*familyObj, bool) {
	v, ok := l.object(sym, p, TypeFontFamily)
	if !ok {
		return nil, false
	}
	return v.(*familyObj), true
}

// FontFamilyGetName implements pango_font_family_get_name.
func (l *Library) FontFamilyGetName(p ffi.Ptr) ffi.Ptr {
	l.enter(ffi.SymFontFamilyGetName)
	f, ok := l.family(ffi.SymFontFamilyGetName, p)
	if !ok {
		return 0
	}
	return f.name
}

// FontFamilyIsMonospace implements pango_font_family_is_monospace.
func (l *Library) FontFamilyIsMonospace(p ffi.Ptr) bool {
	l.enter(ffi.SymFontFamilyIsMonospace)
	f, ok := l.family(ffi.SymFontFamilyIsMonospace, p)
	return ok && f.mono
}

// FontFamilyListFaces implements pango_font_family_list_faces.
func (l *Library) FontFamilyListFaces(p, facesOut, nOut ffi.Ptr) {
	l.enter(ffi.SymFontFamilyListFaces)
	f, ok := l.family(ffi.SymFontFamilyListFaces, p)
	if !ok {
		l.writeOut(facesOut, nOut, nil)
		return
	}
	l.writeOut(facesOut, nOut, ptrs32(f.faces))
}

func (l *Library) face(sym string, p ffi.Ptr) (*faceObj, bool) {
	v, ok := l.object(sym, p, TypeFontFace)
	if !ok {
		return nil, false
	}
	return v.(*faceObj), true
}

// FontFaceDescribe implements pango_font_face_describe. The description
// has no size.
func (l *Library) FontFaceDescribe(p ffi.Ptr) ffi.Ptr {
	if l.enter(ffi.SymFontFaceDescribe) {
		return 0
	}
	f, ok := l.face(ffi.SymFontFaceDescribe, p)
	if !ok {
		return 0
	}
	return l.newFontDescription(f.desc)
}

// FontFaceGetFaceName implements pango_font_face_get_face_name.
func (l *Library) FontFaceGetFaceName(p ffi.Ptr) ffi.Ptr {
	l.enter(ffi.SymFontFaceGetFaceName)
	f, ok := l.face(ffi.SymFontFaceGetFaceName, p)
	if !ok {
		return 0
	}
	return f.name
}

// FontFaceIsSynthesized implements pango_font_face_is_synthesized.
func (l *Library) FontFaceIsSynthesized(p ffi.Ptr) bool {
	l.enter(ffi.SymFontFaceIsSynthesized)
	f, ok := l.face(ffi.SymFontFaceIsSynthesized, p)
	return ok && f.synthesized
}

// FontFaceListSizes implements pango_font_face_list_sizes. Scalable
// faces yield NULL and zero.
func (l *Library) FontFaceListSizes(p, sizesOut, nOut ffi.Ptr) {
	l.enter(ffi.SymFontFaceListSizes)
	f, ok := l.face(ffi.SymFontFaceListSizes, p)
	if !ok {
		l.writeOut(sizesOut, nOut, nil)
		return
	}
	vals := make([]uint32, len(f.sizes))
	for i, s := range f.sizes {
		vals[i] = uint32(s)
	}
	l.writeOut(sizesOut, nOut, vals)
}

func ptrs32(ps []ffi.Ptr) []uint32 {
	out := make([]uint32, len(ps))
	for i, p := range ps {
		out[i] = uint32(p)
	}
	return out
}
