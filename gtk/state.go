package gtk

import "github.com/wippyai/pangobind/enum"

// StateFlags is the widget state matched against CSS pseudo-classes.
type StateFlags uint32

const (
	StateFlagNormal       StateFlags = 0
	StateFlagActive       StateFlags = 1 << 0
	StateFlagPrelight     StateFlags = 1 << 1
	StateFlagSelected     StateFlags = 1 << 2
	StateFlagInsensitive  StateFlags = 1 << 3
	StateFlagInconsistent StateFlags = 1 << 4
	StateFlagFocused      StateFlags = 1 << 5
	StateFlagBackdrop     StateFlags = 1 << 6
	StateFlagDirLTR       StateFlags = 1 << 7
	StateFlagDirRTL       StateFlags = 1 << 8
)

var stateFlagsTable = enum.NewFlags("GtkStateFlags",
	enum.Flag[StateFlags]{Value: StateFlagNormal, Name: "GTK_STATE_FLAG_NORMAL"},
	enum.Flag[StateFlags]{Value: StateFlagActive, Name: "GTK_STATE_FLAG_ACTIVE"},
	enum.Flag[StateFlags]{Value: StateFlagPrelight, Name: "GTK_STATE_FLAG_PRELIGHT"},
	enum.Flag[StateFlags]{Value: StateFlagSelected, Name: "GTK_STATE_FLAG_SELECTED"},
	enum.Flag[StateFlags]{Value: StateFlagInsensitive, Name: "GTK_STATE_FLAG_INSENSITIVE"},
	enum.Flag[StateFlags]{Value: StateFlagInconsistent, Name: "GTK_STATE_FLAG_INCONSISTENT"},
	enum.Flag[StateFlags]{Value: StateFlagFocused, Name: "GTK_STATE_FLAG_FOCUSED"},
	enum.Flag[StateFlags]{Value: StateFlagBackdrop, Name: "GTK_STATE_FLAG_BACKDROP"},
	enum.Flag[StateFlags]{Value: StateFlagDirLTR, Name: "GTK_STATE_FLAG_DIR_LTR"},
	enum.Flag[StateFlags]{Value: StateFlagDirRTL, Name: "GTK_STATE_FLAG_DIR_RTL"},
)

func (f StateFlags) String() string { return stateFlagsTable.String(f) }

// ToGlib returns the foreign bit set.
func (f StateFlags) ToGlib() uint32 { return uint32(f) }

// StateFlagsFromGlib converts a foreign GtkStateFlags. It returns false when
// undeclared bits are set.
func StateFlagsFromGlib(v uint32) (StateFlags, bool) { return stateFlagsTable.FromGlib(v) }

// Has reports whether every bit of want is set.
func (f StateFlags) Has(want StateFlags) bool { return enum.Has(f, want) }

func (f StateFlags) Union(g StateFlags) StateFlags { return enum.Union(f, g) }

func (f StateFlags) Intersect(g StateFlags) StateFlags { return enum.Intersect(f, g) }

func (f StateFlags) Without(g StateFlags) StateFlags { return enum.Without(f, g) }

// StateType is the older single-valued widget state.
type StateType int32

const (
	StateNormal       StateType = 0
	StateActive       StateType = 1
	StatePrelight     StateType = 2
	StateSelected     StateType = 3
	StateInsensitive  StateType = 4
	StateInconsistent StateType = 5
	StateFocused      StateType = 6
)

var stateTypeTable = enum.New("GtkStateType", map[StateType]string{
	StateNormal:       "GTK_STATE_NORMAL",
	StateActive:       "GTK_STATE_ACTIVE",
	StatePrelight:     "GTK_STATE_PRELIGHT",
	StateSelected:     "GTK_STATE_SELECTED",
	StateInsensitive:  "GTK_STATE_INSENSITIVE",
	StateInconsistent: "GTK_STATE_INCONSISTENT",
	StateFocused:      "GTK_STATE_FOCUSED",
})

func (v StateType) String() string { return stateTypeTable.String(v) }

// ToGlib returns the foreign constant.
func (v StateType) ToGlib() int32 { return int32(v) }

// StateTypeFromGlib converts a foreign GtkStateType, rejecting undeclared values.
func StateTypeFromGlib(v int32) (StateType, bool) { return stateTypeTable.FromGlib(v) }

// TextDirection is GtkTextDirection.
type TextDirection int32

const (
	TextDirNone TextDirection = 0
	TextDirLTR  TextDirection = 1
	TextDirRTL  TextDirection = 2
)

var textDirectionTable = enum.New("GtkTextDirection", map[TextDirection]string{
	TextDirNone: "GTK_TEXT_DIR_NONE",
	TextDirLTR:  "GTK_TEXT_DIR_LTR",
	TextDirRTL:  "GTK_TEXT_DIR_RTL",
})

func (v TextDirection) String() string { return textDirectionTable.String(v) }

// ToGlib returns the foreign constant.
func (v TextDirection) ToGlib() int32 { return int32(v) }

// TextDirectionFromGlib converts a foreign GtkTextDirection, rejecting undeclared values.
func TextDirectionFromGlib(v int32) (TextDirection, bool) { return textDirectionTable.FromGlib(v) }

// SelectionMode is GtkSelectionMode.
type SelectionMode int32

const (
	SelectionNone     SelectionMode = 0
	SelectionSingle   SelectionMode = 1
	SelectionBrowse   SelectionMode = 2
	SelectionMultiple SelectionMode = 3
)

var selectionModeTable = enum.New("GtkSelectionMode", map[SelectionMode]string{
	SelectionNone:     "GTK_SELECTION_NONE",
	SelectionSingle:   "GTK_SELECTION_SINGLE",
	SelectionBrowse:   "GTK_SELECTION_BROWSE",
	SelectionMultiple: "GTK_SELECTION_MULTIPLE",
})

func (v SelectionMode) String() string { return selectionModeTable.String(v) }

// ToGlib returns the foreign constant.
func (v SelectionMode) ToGlib() int32 { return int32(v) }

// SelectionModeFromGlib converts a foreign GtkSelectionMode, rejecting undeclared values.
func SelectionModeFromGlib(v int32) (SelectionMode, bool) { return selectionModeTable.FromGlib(v) }

// SortType is GtkSortType.
type SortType int32

const (
	SortAscending  SortType = 0
	SortDescending SortType = 1
)

var sortTypeTable = enum.New("GtkSortType", map[SortType]string{
	SortAscending:  "GTK_SORT_ASCENDING",
	SortDescending: "GTK_SORT_DESCENDING",
})

func (v SortType) String() string { return sortTypeTable.String(v) }

// ToGlib returns the foreign constant.
func (v SortType) ToGlib() int32 { return int32(v) }

// SortTypeFromGlib converts a foreign GtkSortType, rejecting undeclared values.
func SortTypeFromGlib(v int32) (SortType, bool) { return sortTypeTable.FromGlib(v) }

// DragResult says why a drag operation failed.
type DragResult int32

const (
	DragResultSuccess        DragResult = 0
	DragResultNoTarget       DragResult = 1
	DragResultUserCancelled  DragResult = 2
	DragResultTimeoutExpired DragResult = 3
	DragResultGrabBroken     DragResult = 4
	DragResultError          DragResult = 5
)

var dragResultTable = enum.New("GtkDragResult", map[DragResult]string{
	DragResultSuccess:        "GTK_DRAG_RESULT_SUCCESS",
	DragResultNoTarget:       "GTK_DRAG_RESULT_NO_TARGET",
	DragResultUserCancelled:  "GTK_DRAG_RESULT_USER_CANCELLED",
	DragResultTimeoutExpired: "GTK_DRAG_RESULT_TIMEOUT_EXPIRED",
	DragResultGrabBroken:     "GTK_DRAG_RESULT_GRAB_BROKEN",
	DragResultError:          "GTK_DRAG_RESULT_ERROR",
})

func (v DragResult) String() string { return dragResultTable.String(v) }

// ToGlib returns the foreign constant.
func (v DragResult) ToGlib() int32 { return int32(v) }

// DragResultFromGlib converts a foreign GtkDragResult, rejecting undeclared values.
func DragResultFromGlib(v int32) (DragResult, bool) { return dragResultTable.FromGlib(v) }

// AccelFlags is GtkAccelFlags.
type AccelFlags uint32

const (
	AccelVisible AccelFlags = 1 << 0
	AccelLocked  AccelFlags = 1 << 1
	AccelMask    AccelFlags = 0x7
)

var accelFlagsTable = enum.NewFlags("GtkAccelFlags",
	enum.Flag[AccelFlags]{Value: AccelVisible, Name: "GTK_ACCEL_VISIBLE"},
	enum.Flag[AccelFlags]{Value: AccelLocked, Name: "GTK_ACCEL_LOCKED"},
	enum.Flag[AccelFlags]{Value: AccelMask, Name: "GTK_ACCEL_MASK"},
)

func (f AccelFlags) String() string { return accelFlagsTable.String(f) }

// ToGlib returns the foreign bit set.
func (f AccelFlags) ToGlib() uint32 { return uint32(f) }

// AccelFlagsFromGlib converts a foreign GtkAccelFlags. It returns false when
// undeclared bits are set.
func AccelFlagsFromGlib(v uint32) (AccelFlags, bool) { return accelFlagsTable.FromGlib(v) }

// Has reports whether every bit of want is set.
func (f AccelFlags) Has(want AccelFlags) bool { return enum.Has(f, want) }

func (f AccelFlags) Union(g AccelFlags) AccelFlags { return enum.Union(f, g) }

func (f AccelFlags) Intersect(g AccelFlags) AccelFlags { return enum.Intersect(f, g) }

func (f AccelFlags) Without(g AccelFlags) AccelFlags { return enum.Without(f, g) }

// PathPriorityType is the priority of a style path. The values are sparse.
type PathPriorityType int32

const (
	PathPrioLowest      PathPriorityType = 0
	PathPrioGTK         PathPriorityType = 4
	PathPrioApplication PathPriorityType = 8
	PathPrioTheme       PathPriorityType = 10
	PathPrioRC          PathPriorityType = 12
	PathPrioHighest     PathPriorityType = 15
)

var pathPriorityTypeTable = enum.New("GtkPathPriorityType", map[PathPriorityType]string{
	PathPrioLowest:      "GTK_PATH_PRIO_LOWEST",
	PathPrioGTK:         "GTK_PATH_PRIO_GTK",
	PathPrioApplication: "GTK_PATH_PRIO_APPLICATION",
	PathPrioTheme:       "GTK_PATH_PRIO_THEME",
	PathPrioRC:          "GTK_PATH_PRIO_RC",
	PathPrioHighest:     "GTK_PATH_PRIO_HIGHEST",
})

func (v PathPriorityType) String() string { return pathPriorityTypeTable.String(v) }

// ToGlib returns the foreign constant.
func (v PathPriorityType) ToGlib() int32 { return int32(v) }

// PathPriorityTypeFromGlib converts a foreign GtkPathPriorityType, rejecting undeclared values.
func PathPriorityTypeFromGlib(v int32) (PathPriorityType, bool) { return pathPriorityTypeTable.FromGlib(v) }

// PathType is GtkPathType.
type PathType int32

const (
	PathWidget      PathType = 0
	PathWidgetClass PathType = 1
	PathClass       PathType = 2
)

var pathTypeTable = enum.New("GtkPathType", map[PathType]string{
	PathWidget:      "GTK_PATH_WIDGET",
	PathWidgetClass: "GTK_PATH_WIDGET_CLASS",
	PathClass:       "GTK_PATH_CLASS",
})

func (v PathType) String() string { return pathTypeTable.String(v) }

// ToGlib returns the foreign constant.
func (v PathType) ToGlib() int32 { return int32(v) }

// PathTypeFromGlib converts a foreign GtkPathType, rejecting undeclared values.
func PathTypeFromGlib(v int32) (PathType, bool) { return pathTypeTable.FromGlib(v) }

// CalendarDisplayOptions control what a calendar shows. Bit 4 is unused.
type CalendarDisplayOptions uint32

const (
	CalendarShowHeading     CalendarDisplayOptions = 1 << 0
	CalendarShowDayNames    CalendarDisplayOptions = 1 << 1
	CalendarNoMonthChange   CalendarDisplayOptions = 1 << 2
	CalendarShowWeekNumbers CalendarDisplayOptions = 1 << 3
	CalendarShowDetails     CalendarDisplayOptions = 1 << 5
)

var calendarDisplayOptionsTable = enum.NewFlags("GtkCalendarDisplayOptions",
	enum.Flag[CalendarDisplayOptions]{Value: CalendarShowHeading, Name: "GTK_CALENDAR_SHOW_HEADING"},
	enum.Flag[CalendarDisplayOptions]{Value: CalendarShowDayNames, Name: "GTK_CALENDAR_SHOW_DAY_NAMES"},
	enum.Flag[CalendarDisplayOptions]{Value: CalendarNoMonthChange, Name: "GTK_CALENDAR_NO_MONTH_CHANGE"},
	enum.Flag[CalendarDisplayOptions]{Value: CalendarShowWeekNumbers, Name: "GTK_CALENDAR_SHOW_WEEK_NUMBERS"},
	enum.Flag[CalendarDisplayOptions]{Value: CalendarShowDetails, Name: "GTK_CALENDAR_SHOW_DETAILS"},
)

func (f CalendarDisplayOptions) String() string { return calendarDisplayOptionsTable.String(f) }

// ToGlib returns the foreign bit set.
func (f CalendarDisplayOptions) ToGlib() uint32 { return uint32(f) }

// CalendarDisplayOptionsFromGlib converts a foreign GtkCalendarDisplayOptions. It returns false when
// undeclared bits are set.
func CalendarDisplayOptionsFromGlib(v uint32) (CalendarDisplayOptions, bool) { return calendarDisplayOptionsTable.FromGlib(v) }

// Has reports whether every bit of want is set.
func (f CalendarDisplayOptions) Has(want CalendarDisplayOptions) bool { return enum.Has(f, want) }

func (f CalendarDisplayOptions) Union(g CalendarDisplayOptions) CalendarDisplayOptions { return enum.Union(f, g) }

func (f CalendarDisplayOptions) Intersect(g CalendarDisplayOptions) CalendarDisplayOptions { return enum.Intersect(f, g) }

func (f CalendarDisplayOptions) Without(g CalendarDisplayOptions) CalendarDisplayOptions { return enum.Without(f, g) }
