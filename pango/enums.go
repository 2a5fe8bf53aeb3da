package pango

import (
	"strings"

	"github.com/wippyai/pangobind/enum"
)

// Scale is the number of Pango units in one device unit (PANGO_SCALE).
const Scale = 1024

// CoverageLevel is how well a font covers a character.
type CoverageLevel int32

const (
	CoverageNone        CoverageLevel = 0
	CoverageFallback    CoverageLevel = 1
	CoverageApproximate CoverageLevel = 2
	CoverageExact       CoverageLevel = 3
)

var coverageLevelTable = enum.New("PangoCoverageLevel", map[CoverageLevel]string{
	CoverageNone:        "PANGO_COVERAGE_NONE",
	CoverageFallback:    "PANGO_COVERAGE_FALLBACK",
	CoverageApproximate: "PANGO_COVERAGE_APPROXIMATE",
	CoverageExact:       "PANGO_COVERAGE_EXACT",
})

func (l CoverageLevel) String() string { return coverageLevelTable.String(l) }

// ToGlib returns the foreign constant.
func (l CoverageLevel) ToGlib() int32 { return int32(l) }

// CoverageLevelFromGlib converts a foreign PangoCoverageLevel.
func CoverageLevelFromGlib(v int32) (CoverageLevel, bool) { return coverageLevelTable.FromGlib(v) }

// ParseCoverageLevel accepts a constant name or its short form ("exact").
func ParseCoverageLevel(s string) (CoverageLevel, bool) {
	if l, ok := coverageLevelTable.Lookup(s); ok {
		return l, true
	}
	return coverageLevelTable.Lookup("PANGO_COVERAGE_" + strings.TrimSpace(s))
}

// CoverageLevels returns the levels in ascending order.
func CoverageLevels() []CoverageLevel { return coverageLevelTable.Values() }

// Style is the slant of a font.
type Style int32

const (
	StyleNormal  Style = 0
	StyleOblique Style = 1
	StyleItalic  Style = 2
)

var styleTable = enum.New("PangoStyle", map[Style]string{
	StyleNormal:  "PANGO_STYLE_NORMAL",
	StyleOblique: "PANGO_STYLE_OBLIQUE",
	StyleItalic:  "PANGO_STYLE_ITALIC",
})

func (s Style) String() string { return styleTable.String(s) }

func (s Style) ToGlib() int32 { return int32(s) }

func StyleFromGlib(v int32) (Style, bool) { return styleTable.FromGlib(v) }

// Variant is PangoVariant.
type Variant int32

const (
	VariantNormal    Variant = 0
	VariantSmallCaps Variant = 1
)

var variantTable = enum.New("PangoVariant", map[Variant]string{
	VariantNormal:    "PANGO_VARIANT_NORMAL",
	VariantSmallCaps: "PANGO_VARIANT_SMALL_CAPS",
})

func (v Variant) String() string { return variantTable.String(v) }

func (v Variant) ToGlib() int32 { return int32(v) }

func VariantFromGlib(v int32) (Variant, bool) { return variantTable.FromGlib(v) }

// Weight is the boldness of a font. The named constants are sparse; any
// value from 100 to 1000 is meaningful to the foreign side.
type Weight int32

const (
	WeightThin       Weight = 100
	WeightUltraLight Weight = 200
	WeightLight      Weight = 300
	WeightSemiLight  Weight = 350
	WeightBook       Weight = 380
	WeightNormal     Weight = 400
	WeightMedium     Weight = 500
	WeightSemiBold   Weight = 600
	WeightBold       Weight = 700
	WeightUltraBold  Weight = 800
	WeightHeavy      Weight = 900
	WeightUltraHeavy Weight = 1000
)

var weightTable = enum.New("PangoWeight", map[Weight]string{
	WeightThin:       "PANGO_WEIGHT_THIN",
	WeightUltraLight: "PANGO_WEIGHT_ULTRALIGHT",
	WeightLight:      "PANGO_WEIGHT_LIGHT",
	WeightSemiLight:  "PANGO_WEIGHT_SEMILIGHT",
	WeightBook:       "PANGO_WEIGHT_BOOK",
	WeightNormal:     "PANGO_WEIGHT_NORMAL",
	WeightMedium:     "PANGO_WEIGHT_MEDIUM",
	WeightSemiBold:   "PANGO_WEIGHT_SEMIBOLD",
	WeightBold:       "PANGO_WEIGHT_BOLD",
	WeightUltraBold:  "PANGO_WEIGHT_ULTRABOLD",
	WeightHeavy:      "PANGO_WEIGHT_HEAVY",
	WeightUltraHeavy: "PANGO_WEIGHT_ULTRAHEAVY",
})

func (w Weight) String() string { return weightTable.String(w) }

func (w Weight) ToGlib() int32 { return int32(w) }

// WeightFromGlib converts a foreign weight. Numeric weights between the
// named constants are accepted; only values outside 100..1000 are not.
func WeightFromGlib(v int32) (Weight, bool) {
	return Weight(v), v >= int32(WeightThin) && v <= int32(WeightUltraHeavy)
}

// Stretch is the width of a font relative to its normal width.
type Stretch int32

const (
	StretchUltraCondensed Stretch = iota
	StretchExtraCondensed
	StretchCondensed
	StretchSemiCondensed
	StretchNormal
	StretchSemiExpanded
	StretchExpanded
	StretchExtraExpanded
	StretchUltraExpanded
)

var stretchTable = enum.New("PangoStretch", map[Stretch]string{
	StretchUltraCondensed: "PANGO_STRETCH_ULTRA_CONDENSED",
	StretchExtraCondensed: "PANGO_STRETCH_EXTRA_CONDENSED",
	StretchCondensed:      "PANGO_STRETCH_CONDENSED",
	StretchSemiCondensed:  "PANGO_STRETCH_SEMI_CONDENSED",
	StretchNormal:         "PANGO_STRETCH_NORMAL",
	StretchSemiExpanded:   "PANGO_STRETCH_SEMI_EXPANDED",
	StretchExpanded:       "PANGO_STRETCH_EXPANDED",
	StretchExtraExpanded:  "PANGO_STRETCH_EXTRA_EXPANDED",
	StretchUltraExpanded:  "PANGO_STRETCH_ULTRA_EXPANDED",
})

func (s Stretch) String() string { return stretchTable.String(s) }

func (s Stretch) ToGlib() int32 { return int32(s) }

func StretchFromGlib(v int32) (Stretch, bool) { return stretchTable.FromGlib(v) }

// FontMask is the set of fields explicitly set in a FontDescription.
type FontMask uint32

const (
	FontMaskFamily  FontMask = 1 << 0
	FontMaskStyle   FontMask = 1 << 1
	FontMaskVariant FontMask = 1 << 2
	FontMaskWeight  FontMask = 1 << 3
	FontMaskStretch FontMask = 1 << 4
	FontMaskSize    FontMask = 1 << 5
	FontMaskGravity FontMask = 1 << 6
)

var fontMaskTable = enum.NewFlags("PangoFontMask",
	enum.Flag[FontMask]{Value: FontMaskFamily, Name: "PANGO_FONT_MASK_FAMILY"},
	enum.Flag[FontMask]{Value: FontMaskStyle, Name: "PANGO_FONT_MASK_STYLE"},
	enum.Flag[FontMask]{Value: FontMaskVariant, Name: "PANGO_FONT_MASK_VARIANT"},
	enum.Flag[FontMask]{Value: FontMaskWeight, Name: "PANGO_FONT_MASK_WEIGHT"},
	enum.Flag[FontMask]{Value: FontMaskStretch, Name: "PANGO_FONT_MASK_STRETCH"},
	enum.Flag[FontMask]{Value: FontMaskSize, Name: "PANGO_FONT_MASK_SIZE"},
	enum.Flag[FontMask]{Value: FontMaskGravity, Name: "PANGO_FONT_MASK_GRAVITY"},
)

func (m FontMask) String() string { return fontMaskTable.String(m) }

func (m FontMask) ToGlib() uint32 { return uint32(m) }

// FontMaskFromGlib converts a foreign PangoFontMask. It returns false when
// undeclared bits are set.
func FontMaskFromGlib(v uint32) (FontMask, bool) { return fontMaskTable.FromGlib(v) }

func (m FontMask) Has(want FontMask) bool { return enum.Has(m, want) }

func (m FontMask) Union(o FontMask) FontMask { return enum.Union(m, o) }

func (m FontMask) Intersect(o FontMask) FontMask { return enum.Intersect(m, o) }

func (m FontMask) Without(o FontMask) FontMask { return enum.Without(m, o) }
