package gtk

import "github.com/wippyai/pangobind/enum"

// Orientation is GtkOrientation.
type Orientation int32

const (
	OrientationHorizontal Orientation = 0
	OrientationVertical   Orientation = 1
)

var orientationTable = enum.New("GtkOrientation", map[Orientation]string{
	OrientationHorizontal: "GTK_ORIENTATION_HORIZONTAL",
	OrientationVertical:   "GTK_ORIENTATION_VERTICAL",
})

func (v Orientation) String() string { return orientationTable.String(v) }

// ToGlib returns the foreign constant.
func (v Orientation) ToGlib() int32 { return int32(v) }

// OrientationFromGlib converts a foreign GtkOrientation, rejecting undeclared values.
func OrientationFromGlib(v int32) (Orientation, bool) { return orientationTable.FromGlib(v) }

// ButtonBoxStyle is the layout of buttons in a button box. It starts at 1.
type ButtonBoxStyle int32

const (
	ButtonBoxSpread ButtonBoxStyle = 1
	ButtonBoxEdge   ButtonBoxStyle = 2
	ButtonBoxStart  ButtonBoxStyle = 3
	ButtonBoxEnd    ButtonBoxStyle = 4
	ButtonBoxCenter ButtonBoxStyle = 5
	ButtonBoxExpand ButtonBoxStyle = 6
)

var buttonBoxStyleTable = enum.New("GtkButtonBoxStyle", map[ButtonBoxStyle]string{
	ButtonBoxSpread: "GTK_BUTTONBOX_SPREAD",
	ButtonBoxEdge:   "GTK_BUTTONBOX_EDGE",
	ButtonBoxStart:  "GTK_BUTTONBOX_START",
	ButtonBoxEnd:    "GTK_BUTTONBOX_END",
	ButtonBoxCenter: "GTK_BUTTONBOX_CENTER",
	ButtonBoxExpand: "GTK_BUTTONBOX_EXPAND",
})

func (v ButtonBoxStyle) String() string { return buttonBoxStyleTable.String(v) }

// ToGlib returns the foreign constant.
func (v ButtonBoxStyle) ToGlib() int32 { return int32(v) }

// ButtonBoxStyleFromGlib converts a foreign GtkButtonBoxStyle, rejecting undeclared values.
func ButtonBoxStyleFromGlib(v int32) (ButtonBoxStyle, bool) { return buttonBoxStyleTable.FromGlib(v) }

// PackType is GtkPackType.
type PackType int32

const (
	PackStart PackType = 0
	PackEnd   PackType = 1
)

var packTypeTable = enum.New("GtkPackType", map[PackType]string{
	PackStart: "GTK_PACK_START",
	PackEnd:   "GTK_PACK_END",
})

func (v PackType) String() string { return packTypeTable.String(v) }

// ToGlib returns the foreign constant.
func (v PackType) ToGlib() int32 { return int32(v) }

// PackTypeFromGlib converts a foreign GtkPackType, rejecting undeclared values.
func PackTypeFromGlib(v int32) (PackType, bool) { return packTypeTable.FromGlib(v) }

// PositionType names the edge of a widget a feature sits on.
type PositionType int32

const (
	PosLeft   PositionType = 0
	PosRight  PositionType = 1
	PosTop    PositionType = 2
	PosBottom PositionType = 3
)

var positionTypeTable = enum.New("GtkPositionType", map[PositionType]string{
	PosLeft:   "GTK_POS_LEFT",
	PosRight:  "GTK_POS_RIGHT",
	PosTop:    "GTK_POS_TOP",
	PosBottom: "GTK_POS_BOTTOM",
})

func (v PositionType) String() string { return positionTypeTable.String(v) }

// ToGlib returns the foreign constant.
func (v PositionType) ToGlib() int32 { return int32(v) }

// PositionTypeFromGlib converts a foreign GtkPositionType, rejecting undeclared values.
func PositionTypeFromGlib(v int32) (PositionType, bool) { return positionTypeTable.FromGlib(v) }

// Justification is GtkJustification.
type Justification int32

const (
	JustifyLeft   Justification = 0
	JustifyRight  Justification = 1
	JustifyCenter Justification = 2
	JustifyFill   Justification = 3
)

var justificationTable = enum.New("GtkJustification", map[Justification]string{
	JustifyLeft:   "GTK_JUSTIFY_LEFT",
	JustifyRight:  "GTK_JUSTIFY_RIGHT",
	JustifyCenter: "GTK_JUSTIFY_CENTER",
	JustifyFill:   "GTK_JUSTIFY_FILL",
})

func (v Justification) String() string { return justificationTable.String(v) }

// ToGlib returns the foreign constant.
func (v Justification) ToGlib() int32 { return int32(v) }

// JustificationFromGlib converts a foreign GtkJustification, rejecting undeclared values.
func JustificationFromGlib(v int32) (Justification, bool) { return justificationTable.FromGlib(v) }

// CornerType is where a scrolled window places its child, the opposite
// of where the scrollbars go.
type CornerType int32

const (
	CornerTopLeft     CornerType = 0
	CornerBottomLeft  CornerType = 1
	CornerTopRight    CornerType = 2
	CornerBottomRight CornerType = 3
)

var cornerTypeTable = enum.New("GtkCornerType", map[CornerType]string{
	CornerTopLeft:     "GTK_CORNER_TOP_LEFT",
	CornerBottomLeft:  "GTK_CORNER_BOTTOM_LEFT",
	CornerTopRight:    "GTK_CORNER_TOP_RIGHT",
	CornerBottomRight: "GTK_CORNER_BOTTOM_RIGHT",
})

func (v CornerType) String() string { return cornerTypeTable.String(v) }

// ToGlib returns the foreign constant.
func (v CornerType) ToGlib() int32 { return int32(v) }

// CornerTypeFromGlib converts a foreign GtkCornerType, rejecting undeclared values.
func CornerTypeFromGlib(v int32) (CornerType, bool) { return cornerTypeTable.FromGlib(v) }

// ResizeMode is GtkResizeMode.
type ResizeMode int32

const (
	ResizeParent    ResizeMode = 0
	ResizeQueue     ResizeMode = 1
	ResizeImmediate ResizeMode = 2
)

var resizeModeTable = enum.New("GtkResizeMode", map[ResizeMode]string{
	ResizeParent:    "GTK_RESIZE_PARENT",
	ResizeQueue:     "GTK_RESIZE_QUEUE",
	ResizeImmediate: "GTK_RESIZE_IMMEDIATE",
})

func (v ResizeMode) String() string { return resizeModeTable.String(v) }

// ToGlib returns the foreign constant.
func (v ResizeMode) ToGlib() int32 { return int32(v) }

// ResizeModeFromGlib converts a foreign GtkResizeMode, rejecting undeclared values.
func ResizeModeFromGlib(v int32) (ResizeMode, bool) { return resizeModeTable.FromGlib(v) }

// AttachOptions are the expansion properties of a table child.
type AttachOptions uint32

const (
	AttachExpand AttachOptions = 1 << 0
	AttachShrink AttachOptions = 1 << 1
	AttachFill   AttachOptions = 1 << 2
)

var attachOptionsTable = enum.NewFlags("GtkAttachOptions",
	enum.Flag[AttachOptions]{Value: AttachExpand, Name: "GTK_EXPAND"},
	enum.Flag[AttachOptions]{Value: AttachShrink, Name: "GTK_SHRINK"},
	enum.Flag[AttachOptions]{Value: AttachFill, Name: "GTK_FILL"},
)

func (f AttachOptions) String() string { return attachOptionsTable.String(f) }

// ToGlib returns the foreign bit set.
func (f AttachOptions) ToGlib() uint32 { return uint32(f) }

// AttachOptionsFromGlib converts a foreign GtkAttachOptions. It returns false when
// undeclared bits are set.
func AttachOptionsFromGlib(v uint32) (AttachOptions, bool) { return attachOptionsTable.FromGlib(v) }

// Has reports whether every bit of want is set.
func (f AttachOptions) Has(want AttachOptions) bool { return enum.Has(f, want) }

func (f AttachOptions) Union(g AttachOptions) AttachOptions { return enum.Union(f, g) }

func (f AttachOptions) Intersect(g AttachOptions) AttachOptions { return enum.Intersect(f, g) }

func (f AttachOptions) Without(g AttachOptions) AttachOptions { return enum.Without(f, g) }

// PolicyType decides when a scrollbar is visible.
type PolicyType int32

const (
	PolicyAlways    PolicyType = 0
	PolicyAutomatic PolicyType = 1
	PolicyNever     PolicyType = 2
	PolicyExternal  PolicyType = 3
)

var policyTypeTable = enum.New("GtkPolicyType", map[PolicyType]string{
	PolicyAlways:    "GTK_POLICY_ALWAYS",
	PolicyAutomatic: "GTK_POLICY_AUTOMATIC",
	PolicyNever:     "GTK_POLICY_NEVER",
	PolicyExternal:  "GTK_POLICY_EXTERNAL",
})

func (v PolicyType) String() string { return policyTypeTable.String(v) }

// ToGlib returns the foreign constant.
func (v PolicyType) ToGlib() int32 { return int32(v) }

// PolicyTypeFromGlib converts a foreign GtkPolicyType, rejecting undeclared values.
func PolicyTypeFromGlib(v int32) (PolicyType, bool) { return policyTypeTable.FromGlib(v) }

// ShadowType is GtkShadowType.
type ShadowType int32

const (
	ShadowNone      ShadowType = 0
	ShadowIn        ShadowType = 1
	ShadowOut       ShadowType = 2
	ShadowEtchedIn  ShadowType = 3
	ShadowEtchedOut ShadowType = 4
)

var shadowTypeTable = enum.New("GtkShadowType", map[ShadowType]string{
	ShadowNone:      "GTK_SHADOW_NONE",
	ShadowIn:        "GTK_SHADOW_IN",
	ShadowOut:       "GTK_SHADOW_OUT",
	ShadowEtchedIn:  "GTK_SHADOW_ETCHED_IN",
	ShadowEtchedOut: "GTK_SHADOW_ETCHED_OUT",
})

func (v ShadowType) String() string { return shadowTypeTable.String(v) }

// ToGlib returns the foreign constant.
func (v ShadowType) ToGlib() int32 { return int32(v) }

// ShadowTypeFromGlib converts a foreign GtkShadowType, rejecting undeclared values.
func ShadowTypeFromGlib(v int32) (ShadowType, bool) { return shadowTypeTable.FromGlib(v) }

// BorderStyle is GtkBorderStyle.
type BorderStyle int32

const (
	BorderStyleNone   BorderStyle = 0
	BorderStyleSolid  BorderStyle = 1
	BorderStyleInset  BorderStyle = 2
	BorderStyleOutset BorderStyle = 3
	BorderStyleHidden BorderStyle = 4
	BorderStyleDotted BorderStyle = 5
	BorderStyleDashed BorderStyle = 6
	BorderStyleDouble BorderStyle = 7
	BorderStyleGroove BorderStyle = 8
	BorderStyleRidge  BorderStyle = 9
)

var borderStyleTable = enum.New("GtkBorderStyle", map[BorderStyle]string{
	BorderStyleNone:   "GTK_BORDER_STYLE_NONE",
	BorderStyleSolid:  "GTK_BORDER_STYLE_SOLID",
	BorderStyleInset:  "GTK_BORDER_STYLE_INSET",
	BorderStyleOutset: "GTK_BORDER_STYLE_OUTSET",
	BorderStyleHidden: "GTK_BORDER_STYLE_HIDDEN",
	BorderStyleDotted: "GTK_BORDER_STYLE_DOTTED",
	BorderStyleDashed: "GTK_BORDER_STYLE_DASHED",
	BorderStyleDouble: "GTK_BORDER_STYLE_DOUBLE",
	BorderStyleGroove: "GTK_BORDER_STYLE_GROOVE",
	BorderStyleRidge:  "GTK_BORDER_STYLE_RIDGE",
})

func (v BorderStyle) String() string { return borderStyleTable.String(v) }

// ToGlib returns the foreign constant.
func (v BorderStyle) ToGlib() int32 { return int32(v) }

// BorderStyleFromGlib converts a foreign GtkBorderStyle, rejecting undeclared values.
func BorderStyleFromGlib(v int32) (BorderStyle, bool) { return borderStyleTable.FromGlib(v) }

// JunctionSides describes how a rendered element connects to its
// neighbours. Top, Bottom, Left and Right are two-corner masks.
type JunctionSides uint32

const (
	JunctionNone              JunctionSides = 0
	JunctionCornerTopLeft     JunctionSides = 1 << 0
	JunctionCornerTopRight    JunctionSides = 1 << 1
	JunctionCornerBottomLeft  JunctionSides = 1 << 2
	JunctionCornerBottomRight JunctionSides = 1 << 3
	JunctionTop               JunctionSides = JunctionCornerTopLeft | JunctionCornerTopRight
	JunctionBottom            JunctionSides = JunctionCornerBottomLeft | JunctionCornerBottomRight
	JunctionLeft              JunctionSides = JunctionCornerTopLeft | JunctionCornerBottomLeft
	JunctionRight             JunctionSides = JunctionCornerTopRight | JunctionCornerBottomRight
)

var junctionSidesTable = enum.NewFlags("GtkJunctionSides",
	enum.Flag[JunctionSides]{Value: JunctionNone, Name: "GTK_JUNCTION_NONE"},
	enum.Flag[JunctionSides]{Value: JunctionCornerTopLeft, Name: "GTK_JUNCTION_CORNER_TOPLEFT"},
	enum.Flag[JunctionSides]{Value: JunctionCornerTopRight, Name: "GTK_JUNCTION_CORNER_TOPRIGHT"},
	enum.Flag[JunctionSides]{Value: JunctionCornerBottomLeft, Name: "GTK_JUNCTION_CORNER_BOTTOMLEFT"},
	enum.Flag[JunctionSides]{Value: JunctionCornerBottomRight, Name: "GTK_JUNCTION_CORNER_BOTTOMRIGHT"},
	enum.Flag[JunctionSides]{Value: JunctionTop, Name: "GTK_JUNCTION_TOP"},
	enum.Flag[JunctionSides]{Value: JunctionBottom, Name: "GTK_JUNCTION_BOTTOM"},
	enum.Flag[JunctionSides]{Value: JunctionLeft, Name: "GTK_JUNCTION_LEFT"},
	enum.Flag[JunctionSides]{Value: JunctionRight, Name: "GTK_JUNCTION_RIGHT"},
)

func (f JunctionSides) String() string { return junctionSidesTable.String(f) }

// ToGlib returns the foreign bit set.
func (f JunctionSides) ToGlib() uint32 { return uint32(f) }

// JunctionSidesFromGlib converts a foreign GtkJunctionSides. It returns false when
// undeclared bits are set.
func JunctionSidesFromGlib(v uint32) (JunctionSides, bool) { return junctionSidesTable.FromGlib(v) }

// Has reports whether every bit of want is set.
func (f JunctionSides) Has(want JunctionSides) bool { return enum.Has(f, want) }

func (f JunctionSides) Union(g JunctionSides) JunctionSides { return enum.Union(f, g) }

func (f JunctionSides) Intersect(g JunctionSides) JunctionSides { return enum.Intersect(f, g) }

func (f JunctionSides) Without(g JunctionSides) JunctionSides { return enum.Without(f, g) }

// RegionFlags is GtkRegionFlags.
type RegionFlags uint32

const (
	RegionEven   RegionFlags = 1 << 0
	RegionOdd    RegionFlags = 1 << 1
	RegionFirst  RegionFlags = 1 << 2
	RegionLast   RegionFlags = 1 << 3
	RegionOnly   RegionFlags = 1 << 4
	RegionSorted RegionFlags = 1 << 5
)

var regionFlagsTable = enum.NewFlags("GtkRegionFlags",
	enum.Flag[RegionFlags]{Value: RegionEven, Name: "GTK_REGION_EVEN"},
	enum.Flag[RegionFlags]{Value: RegionOdd, Name: "GTK_REGION_ODD"},
	enum.Flag[RegionFlags]{Value: RegionFirst, Name: "GTK_REGION_FIRST"},
	enum.Flag[RegionFlags]{Value: RegionLast, Name: "GTK_REGION_LAST"},
	enum.Flag[RegionFlags]{Value: RegionOnly, Name: "GTK_REGION_ONLY"},
	enum.Flag[RegionFlags]{Value: RegionSorted, Name: "GTK_REGION_SORTED"},
)

func (f RegionFlags) String() string { return regionFlagsTable.String(f) }

// ToGlib returns the foreign bit set.
func (f RegionFlags) ToGlib() uint32 { return uint32(f) }

// RegionFlagsFromGlib converts a foreign GtkRegionFlags. It returns false when
// undeclared bits are set.
func RegionFlagsFromGlib(v uint32) (RegionFlags, bool) { return regionFlagsTable.FromGlib(v) }

// Has reports whether every bit of want is set.
func (f RegionFlags) Has(want RegionFlags) bool { return enum.Has(f, want) }

func (f RegionFlags) Union(g RegionFlags) RegionFlags { return enum.Union(f, g) }

func (f RegionFlags) Intersect(g RegionFlags) RegionFlags { return enum.Intersect(f, g) }

func (f RegionFlags) Without(g RegionFlags) RegionFlags { return enum.Without(f, g) }

// ArrowPlacement is GtkArrowPlacement.
type ArrowPlacement int32

const (
	ArrowsBoth  ArrowPlacement = 0
	ArrowsStart ArrowPlacement = 1
	ArrowsEnd   ArrowPlacement = 2
)

var arrowPlacementTable = enum.New("GtkArrowPlacement", map[ArrowPlacement]string{
	ArrowsBoth:  "GTK_ARROWS_BOTH",
	ArrowsStart: "GTK_ARROWS_START",
	ArrowsEnd:   "GTK_ARROWS_END",
})

func (v ArrowPlacement) String() string { return arrowPlacementTable.String(v) }

// ToGlib returns the foreign constant.
func (v ArrowPlacement) ToGlib() int32 { return int32(v) }

// ArrowPlacementFromGlib converts a foreign GtkArrowPlacement, rejecting undeclared values.
func ArrowPlacementFromGlib(v int32) (ArrowPlacement, bool) { return arrowPlacementTable.FromGlib(v) }

// ArrowType is the direction an arrow points in.
type ArrowType int32

const (
	ArrowUp    ArrowType = 0
	ArrowDown  ArrowType = 1
	ArrowLeft  ArrowType = 2
	ArrowRight ArrowType = 3
	ArrowNone  ArrowType = 4
)

var arrowTypeTable = enum.New("GtkArrowType", map[ArrowType]string{
	ArrowUp:    "GTK_ARROW_UP",
	ArrowDown:  "GTK_ARROW_DOWN",
	ArrowLeft:  "GTK_ARROW_LEFT",
	ArrowRight: "GTK_ARROW_RIGHT",
	ArrowNone:  "GTK_ARROW_NONE",
})

func (v ArrowType) String() string { return arrowTypeTable.String(v) }

// ToGlib returns the foreign constant.
func (v ArrowType) ToGlib() int32 { return int32(v) }

// ArrowTypeFromGlib converts a foreign GtkArrowType, rejecting undeclared values.
func ArrowTypeFromGlib(v int32) (ArrowType, bool) { return arrowTypeTable.FromGlib(v) }

// ReliefStyle is GtkReliefStyle.
type ReliefStyle int32

const (
	ReliefNormal ReliefStyle = 0
	ReliefHalf   ReliefStyle = 1
	ReliefNone   ReliefStyle = 2
)

var reliefStyleTable = enum.New("GtkReliefStyle", map[ReliefStyle]string{
	ReliefNormal: "GTK_RELIEF_NORMAL",
	ReliefHalf:   "GTK_RELIEF_HALF",
	ReliefNone:   "GTK_RELIEF_NONE",
})

func (v ReliefStyle) String() string { return reliefStyleTable.String(v) }

// ToGlib returns the foreign constant.
func (v ReliefStyle) ToGlib() int32 { return int32(v) }

// ReliefStyleFromGlib converts a foreign GtkReliefStyle, rejecting undeclared values.
func ReliefStyleFromGlib(v int32) (ReliefStyle, bool) { return reliefStyleTable.FromGlib(v) }

// ToolbarStyle is GtkToolbarStyle.
type ToolbarStyle int32

const (
	ToolbarIcons     ToolbarStyle = 0
	ToolbarText      ToolbarStyle = 1
	ToolbarBoth      ToolbarStyle = 2
	ToolbarBothHoriz ToolbarStyle = 3
)

var toolbarStyleTable = enum.New("GtkToolbarStyle", map[ToolbarStyle]string{
	ToolbarIcons:     "GTK_TOOLBAR_ICONS",
	ToolbarText:      "GTK_TOOLBAR_TEXT",
	ToolbarBoth:      "GTK_TOOLBAR_BOTH",
	ToolbarBothHoriz: "GTK_TOOLBAR_BOTH_HORIZ",
})

func (v ToolbarStyle) String() string { return toolbarStyleTable.String(v) }

// ToGlib returns the foreign constant.
func (v ToolbarStyle) ToGlib() int32 { return int32(v) }

// ToolbarStyleFromGlib converts a foreign GtkToolbarStyle, rejecting undeclared values.
func ToolbarStyleFromGlib(v int32) (ToolbarStyle, bool) { return toolbarStyleTable.FromGlib(v) }

// IconSize is GtkIconSize.
type IconSize int32

const (
	IconSizeInvalid      IconSize = 0
	IconSizeMenu         IconSize = 1
	IconSizeSmallToolbar IconSize = 2
	IconSizeLargeToolbar IconSize = 3
	IconSizeButton       IconSize = 4
	IconSizeDND          IconSize = 5
	IconSizeDialog       IconSize = 6
)

var iconSizeTable = enum.New("GtkIconSize", map[IconSize]string{
	IconSizeInvalid:      "GTK_ICON_SIZE_INVALID",
	IconSizeMenu:         "GTK_ICON_SIZE_MENU",
	IconSizeSmallToolbar: "GTK_ICON_SIZE_SMALL_TOOLBAR",
	IconSizeLargeToolbar: "GTK_ICON_SIZE_LARGE_TOOLBAR",
	IconSizeButton:       "GTK_ICON_SIZE_BUTTON",
	IconSizeDND:          "GTK_ICON_SIZE_DND",
	IconSizeDialog:       "GTK_ICON_SIZE_DIALOG",
})

func (v IconSize) String() string { return iconSizeTable.String(v) }

// ToGlib returns the foreign constant.
func (v IconSize) ToGlib() int32 { return int32(v) }

// IconSizeFromGlib converts a foreign GtkIconSize, rejecting undeclared values.
func IconSizeFromGlib(v int32) (IconSize, bool) { return iconSizeTable.FromGlib(v) }

// ImageType is the representation of the data an image widget shows.
type ImageType int32

const (
	ImageEmpty     ImageType = 0
	ImagePixbuf    ImageType = 1
	ImageStock     ImageType = 2
	ImageIconSet   ImageType = 3
	ImageAnimation ImageType = 4
	ImageIconName  ImageType = 5
	ImageGIcon     ImageType = 6
	ImageSurface   ImageType = 7
)

var imageTypeTable = enum.New("GtkImageType", map[ImageType]string{
	ImageEmpty:     "GTK_IMAGE_EMPTY",
	ImagePixbuf:    "GTK_IMAGE_PIXBUF",
	ImageStock:     "GTK_IMAGE_STOCK",
	ImageIconSet:   "GTK_IMAGE_ICON_SET",
	ImageAnimation: "GTK_IMAGE_ANIMATION",
	ImageIconName:  "GTK_IMAGE_ICON_NAME",
	ImageGIcon:     "GTK_IMAGE_GICON",
	ImageSurface:   "GTK_IMAGE_SURFACE",
})

func (v ImageType) String() string { return imageTypeTable.String(v) }

// ToGlib returns the foreign constant.
func (v ImageType) ToGlib() int32 { return int32(v) }

// ImageTypeFromGlib converts a foreign GtkImageType, rejecting undeclared values.
func ImageTypeFromGlib(v int32) (ImageType, bool) { return imageTypeTable.FromGlib(v) }

// ExpanderStyle is GtkExpanderStyle.
type ExpanderStyle int32

const (
	ExpanderCollapsed     ExpanderStyle = 0
	ExpanderSemiCollapsed ExpanderStyle = 1
	ExpanderSemiExpanded  ExpanderStyle = 2
	ExpanderExpanded      ExpanderStyle = 3
)

var expanderStyleTable = enum.New("GtkExpanderStyle", map[ExpanderStyle]string{
	ExpanderCollapsed:     "GTK_EXPANDER_COLLAPSED",
	ExpanderSemiCollapsed: "GTK_EXPANDER_SEMI_COLLAPSED",
	ExpanderSemiExpanded:  "GTK_EXPANDER_SEMI_EXPANDED",
	ExpanderExpanded:      "GTK_EXPANDER_EXPANDED",
})

func (v ExpanderStyle) String() string { return expanderStyleTable.String(v) }

// ToGlib returns the foreign constant.
func (v ExpanderStyle) ToGlib() int32 { return int32(v) }

// ExpanderStyleFromGlib converts a foreign GtkExpanderStyle, rejecting undeclared values.
func ExpanderStyleFromGlib(v int32) (ExpanderStyle, bool) { return expanderStyleTable.FromGlib(v) }

// LevelBarMode is GtkLevelBarMode.
type LevelBarMode int32

const (
	LevelBarModeContinuous LevelBarMode = 0
	LevelBarModeDiscrete   LevelBarMode = 1
)

var levelBarModeTable = enum.New("GtkLevelBarMode", map[LevelBarMode]string{
	LevelBarModeContinuous: "GTK_LEVEL_BAR_MODE_CONTINUOUS",
	LevelBarModeDiscrete:   "GTK_LEVEL_BAR_MODE_DISCRETE",
})

func (v LevelBarMode) String() string { return levelBarModeTable.String(v) }

// ToGlib returns the foreign constant.
func (v LevelBarMode) ToGlib() int32 { return int32(v) }

// LevelBarModeFromGlib converts a foreign GtkLevelBarMode, rejecting undeclared values.
func LevelBarModeFromGlib(v int32) (LevelBarMode, bool) { return levelBarModeTable.FromGlib(v) }
