package gtk

import "github.com/wippyai/pangobind/enum"

// DirectionType is GtkDirectionType.
type DirectionType int32

const (
	DirTabForward  DirectionType = 0
	DirTabBackward DirectionType = 1
	DirUp          DirectionType = 2
	DirDown        DirectionType = 3
	DirLeft        DirectionType = 4
	DirRight       DirectionType = 5
)

var directionTypeTable = enum.New("GtkDirectionType", map[DirectionType]string{
	DirTabForward:  "GTK_DIR_TAB_FORWARD",
	DirTabBackward: "GTK_DIR_TAB_BACKWARD",
	DirUp:          "GTK_DIR_UP",
	DirDown:        "GTK_DIR_DOWN",
	DirLeft:        "GTK_DIR_LEFT",
	DirRight:       "GTK_DIR_RIGHT",
})

func (v DirectionType) String() string { return directionTypeTable.String(v) }

// ToGlib returns the foreign constant.
func (v DirectionType) ToGlib() int32 { return int32(v) }

// DirectionTypeFromGlib converts a foreign GtkDirectionType, rejecting undeclared values.
func DirectionTypeFromGlib(v int32) (DirectionType, bool) { return directionTypeTable.FromGlib(v) }

// MovementStep is GtkMovementStep.
type MovementStep int32

const (
	MovementLogicalPositions MovementStep = 0
	MovementVisualPositions  MovementStep = 1
	MovementWords            MovementStep = 2
	MovementDisplayLines     MovementStep = 3
	MovementDisplayLineEnds  MovementStep = 4
	MovementParagraphs       MovementStep = 5
	MovementParagraphEnds    MovementStep = 6
	MovementPages            MovementStep = 7
	MovementBufferEnds       MovementStep = 8
	MovementHorizontalPages  MovementStep = 9
)

var movementStepTable = enum.New("GtkMovementStep", map[MovementStep]string{
	MovementLogicalPositions: "GTK_MOVEMENT_LOGICAL_POSITIONS",
	MovementVisualPositions:  "GTK_MOVEMENT_VISUAL_POSITIONS",
	MovementWords:            "GTK_MOVEMENT_WORDS",
	MovementDisplayLines:     "GTK_MOVEMENT_DISPLAY_LINES",
	MovementDisplayLineEnds:  "GTK_MOVEMENT_DISPLAY_LINE_ENDS",
	MovementParagraphs:       "GTK_MOVEMENT_PARAGRAPHS",
	MovementParagraphEnds:    "GTK_MOVEMENT_PARAGRAPH_ENDS",
	MovementPages:            "GTK_MOVEMENT_PAGES",
	MovementBufferEnds:       "GTK_MOVEMENT_BUFFER_ENDS",
	MovementHorizontalPages:  "GTK_MOVEMENT_HORIZONTAL_PAGES",
})

func (v MovementStep) String() string { return movementStepTable.String(v) }

// ToGlib returns the foreign constant.
func (v MovementStep) ToGlib() int32 { return int32(v) }

// MovementStepFromGlib converts a foreign GtkMovementStep, rejecting undeclared values.
func MovementStepFromGlib(v int32) (MovementStep, bool) { return movementStepTable.FromGlib(v) }

// DeleteType is the unit of a delete operation in an editable.
type DeleteType int32

const (
	DeleteChars           DeleteType = 0
	DeleteWordEnds        DeleteType = 1
	DeleteWords           DeleteType = 2
	DeleteDisplayLines    DeleteType = 3
	DeleteDisplayLineEnds DeleteType = 4
	DeleteParagraphEnds   DeleteType = 5
	DeleteParagraphs      DeleteType = 6
	DeleteWhitespace      DeleteType = 7
)

var deleteTypeTable = enum.New("GtkDeleteType", map[DeleteType]string{
	DeleteChars:           "GTK_DELETE_CHARS",
	DeleteWordEnds:        "GTK_DELETE_WORD_ENDS",
	DeleteWords:           "GTK_DELETE_WORDS",
	DeleteDisplayLines:    "GTK_DELETE_DISPLAY_LINES",
	DeleteDisplayLineEnds: "GTK_DELETE_DISPLAY_LINE_ENDS",
	DeleteParagraphEnds:   "GTK_DELETE_PARAGRAPH_ENDS",
	DeleteParagraphs:      "GTK_DELETE_PARAGRAPHS",
	DeleteWhitespace:      "GTK_DELETE_WHITESPACE",
})

func (v DeleteType) String() string { return deleteTypeTable.String(v) }

// ToGlib returns the foreign constant.
func (v DeleteType) ToGlib() int32 { return int32(v) }

// DeleteTypeFromGlib converts a foreign GtkDeleteType, rejecting undeclared values.
func DeleteTypeFromGlib(v int32) (DeleteType, bool) { return deleteTypeTable.FromGlib(v) }

// ScrollStep is GtkScrollStep.
type ScrollStep int32

const (
	ScrollSteps           ScrollStep = 0
	ScrollPages           ScrollStep = 1
	ScrollEnds            ScrollStep = 2
	ScrollHorizontalSteps ScrollStep = 3
	ScrollHorizontalPages ScrollStep = 4
	ScrollHorizontalEnds  ScrollStep = 5
)

var scrollStepTable = enum.New("GtkScrollStep", map[ScrollStep]string{
	ScrollSteps:           "GTK_SCROLL_STEPS",
	ScrollPages:           "GTK_SCROLL_PAGES",
	ScrollEnds:            "GTK_SCROLL_ENDS",
	ScrollHorizontalSteps: "GTK_SCROLL_HORIZONTAL_STEPS",
	ScrollHorizontalPages: "GTK_SCROLL_HORIZONTAL_PAGES",
	ScrollHorizontalEnds:  "GTK_SCROLL_HORIZONTAL_ENDS",
})

func (v ScrollStep) String() string { return scrollStepTable.String(v) }

// ToGlib returns the foreign constant.
func (v ScrollStep) ToGlib() int32 { return int32(v) }

// ScrollStepFromGlib converts a foreign GtkScrollStep, rejecting undeclared values.
func ScrollStepFromGlib(v int32) (ScrollStep, bool) { return scrollStepTable.FromGlib(v) }

// ScrollType is GtkScrollType.
type ScrollType int32

const (
	ScrollNone         ScrollType = 0
	ScrollJump         ScrollType = 1
	ScrollStepBackward ScrollType = 2
	ScrollStepForward  ScrollType = 3
	ScrollPageBackward ScrollType = 4
	ScrollPageForward  ScrollType = 5
	ScrollStepUp       ScrollType = 6
	ScrollStepDown     ScrollType = 7
	ScrollPageUp       ScrollType = 8
	ScrollPageDown     ScrollType = 9
	ScrollStepLeft     ScrollType = 10
	ScrollStepRight    ScrollType = 11
	ScrollPageLeft     ScrollType = 12
	ScrollPageRight    ScrollType = 13
	ScrollStart        ScrollType = 14
	ScrollEnd          ScrollType = 15
)

var scrollTypeTable = enum.New("GtkScrollType", map[ScrollType]string{
	ScrollNone:         "GTK_SCROLL_NONE",
	ScrollJump:         "GTK_SCROLL_JUMP",
	ScrollStepBackward: "GTK_SCROLL_STEP_BACKWARD",
	ScrollStepForward:  "GTK_SCROLL_STEP_FORWARD",
	ScrollPageBackward: "GTK_SCROLL_PAGE_BACKWARD",
	ScrollPageForward:  "GTK_SCROLL_PAGE_FORWARD",
	ScrollStepUp:       "GTK_SCROLL_STEP_UP",
	ScrollStepDown:     "GTK_SCROLL_STEP_DOWN",
	ScrollPageUp:       "GTK_SCROLL_PAGE_UP",
	ScrollPageDown:     "GTK_SCROLL_PAGE_DOWN",
	ScrollStepLeft:     "GTK_SCROLL_STEP_LEFT",
	ScrollStepRight:    "GTK_SCROLL_STEP_RIGHT",
	ScrollPageLeft:     "GTK_SCROLL_PAGE_LEFT",
	ScrollPageRight:    "GTK_SCROLL_PAGE_RIGHT",
	ScrollStart:        "GTK_SCROLL_START",
	ScrollEnd:          "GTK_SCROLL_END",
})

func (v ScrollType) String() string { return scrollTypeTable.String(v) }

// ToGlib returns the foreign constant.
func (v ScrollType) ToGlib() int32 { return int32(v) }

// ScrollTypeFromGlib converts a foreign GtkScrollType, rejecting undeclared values.
func ScrollTypeFromGlib(v int32) (ScrollType, bool) { return scrollTypeTable.FromGlib(v) }

// IMPreeditStyle is GtkIMPreeditStyle.
type IMPreeditStyle int32

const (
	IMPreeditNothing  IMPreeditStyle = 0
	IMPreeditCallback IMPreeditStyle = 1
	IMPreeditNone     IMPreeditStyle = 2
)

var imPreeditStyleTable = enum.New("GtkIMPreeditStyle", map[IMPreeditStyle]string{
	IMPreeditNothing:  "GTK_IM_PREEDIT_NOTHING",
	IMPreeditCallback: "GTK_IM_PREEDIT_CALLBACK",
	IMPreeditNone:     "GTK_IM_PREEDIT_NONE",
})

func (v IMPreeditStyle) String() string { return imPreeditStyleTable.String(v) }

// ToGlib returns the foreign constant.
func (v IMPreeditStyle) ToGlib() int32 { return int32(v) }

// IMPreeditStyleFromGlib converts a foreign GtkIMPreeditStyle, rejecting undeclared values.
func IMPreeditStyleFromGlib(v int32) (IMPreeditStyle, bool) { return imPreeditStyleTable.FromGlib(v) }

// IMStatusStyle is GtkIMStatusStyle.
type IMStatusStyle int32

const (
	IMStatusNothing  IMStatusStyle = 0
	IMStatusCallback IMStatusStyle = 1
	IMStatusNone     IMStatusStyle = 2
)

var imStatusStyleTable = enum.New("GtkIMStatusStyle", map[IMStatusStyle]string{
	IMStatusNothing:  "GTK_IM_STATUS_NOTHING",
	IMStatusCallback: "GTK_IM_STATUS_CALLBACK",
	IMStatusNone:     "GTK_IM_STATUS_NONE",
})

func (v IMStatusStyle) String() string { return imStatusStyleTable.String(v) }

// ToGlib returns the foreign constant.
func (v IMStatusStyle) ToGlib() int32 { return int32(v) }

// IMStatusStyleFromGlib converts a foreign GtkIMStatusStyle, rejecting undeclared values.
func IMStatusStyleFromGlib(v int32) (IMStatusStyle, bool) { return imStatusStyleTable.FromGlib(v) }

// EntryIconPosition is GtkEntryIconPosition.
type EntryIconPosition int32

const (
	EntryIconPrimary   EntryIconPosition = 0
	EntryIconSecondary EntryIconPosition = 1
)

var entryIconPositionTable = enum.New("GtkEntryIconPosition", map[EntryIconPosition]string{
	EntryIconPrimary:   "GTK_ENTRY_ICON_PRIMARY",
	EntryIconSecondary: "GTK_ENTRY_ICON_SECONDARY",
})

func (v EntryIconPosition) String() string { return entryIconPositionTable.String(v) }

// ToGlib returns the foreign constant.
func (v EntryIconPosition) ToGlib() int32 { return int32(v) }

// EntryIconPositionFromGlib converts a foreign GtkEntryIconPosition, rejecting undeclared values.
func EntryIconPositionFromGlib(v int32) (EntryIconPosition, bool) { return entryIconPositionTable.FromGlib(v) }

// InputHints are suggestions to input methods.
type InputHints uint32

const (
	InputHintNone               InputHints = 0
	InputHintSpellcheck         InputHints = 1 << 0
	InputHintNoSpellcheck       InputHints = 1 << 1
	InputHintWordCompletion     InputHints = 1 << 2
	InputHintLowercase          InputHints = 1 << 3
	InputHintUppercaseChars     InputHints = 1 << 4
	InputHintUppercaseWords     InputHints = 1 << 5
	InputHintUppercaseSentences InputHints = 1 << 6
	InputHintInhibitOSK         InputHints = 1 << 7
)

var inputHintsTable = enum.NewFlags("GtkInputHints",
	enum.Flag[InputHints]{Value: InputHintNone, Name: "GTK_INPUT_HINT_NONE"},
	enum.Flag[InputHints]{Value: InputHintSpellcheck, Name: "GTK_INPUT_HINT_SPELLCHECK"},
	enum.Flag[InputHints]{Value: InputHintNoSpellcheck, Name: "GTK_INPUT_HINT_NO_SPELLCHECK"},
	enum.Flag[InputHints]{Value: InputHintWordCompletion, Name: "GTK_INPUT_HINT_WORD_COMPLETION"},
	enum.Flag[InputHints]{Value: InputHintLowercase, Name: "GTK_INPUT_HINT_LOWERCASE"},
	enum.Flag[InputHints]{Value: InputHintUppercaseChars, Name: "GTK_INPUT_HINT_UPPERCASE_CHARS"},
	enum.Flag[InputHints]{Value: InputHintUppercaseWords, Name: "GTK_INPUT_HINT_UPPERCASE_WORDS"},
	enum.Flag[InputHints]{Value: InputHintUppercaseSentences, Name: "GTK_INPUT_HINT_UPPERCASE_SENTENCES"},
	enum.Flag[InputHints]{Value: InputHintInhibitOSK, Name: "GTK_INPUT_HINT_INHIBIT_OSK"},
)

func (f InputHints) String() string { return inputHintsTable.String(f) }

// ToGlib returns the foreign bit set.
func (f InputHints) ToGlib() uint32 { return uint32(f) }

// InputHintsFromGlib converts a foreign GtkInputHints. It returns false when
// undeclared bits are set.
func InputHintsFromGlib(v uint32) (InputHints, bool) { return inputHintsTable.FromGlib(v) }

// Has reports whether every bit of want is set.
func (f InputHints) Has(want InputHints) bool { return enum.Has(f, want) }

func (f InputHints) Union(g InputHints) InputHints { return enum.Union(f, g) }

func (f InputHints) Intersect(g InputHints) InputHints { return enum.Intersect(f, g) }

func (f InputHints) Without(g InputHints) InputHints { return enum.Without(f, g) }

// InputPurpose tells on-screen keyboards what kind of text an entry expects.
type InputPurpose int32

const (
	InputPurposeFreeForm InputPurpose = 0
	InputPurposeAlpha    InputPurpose = 1
	InputPurposeDigits   InputPurpose = 2
	InputPurposeNumber   InputPurpose = 3
	InputPurposePhone    InputPurpose = 4
	InputPurposeURL      InputPurpose = 5
	InputPurposeEmail    InputPurpose = 6
	InputPurposeName     InputPurpose = 7
	InputPurposePassword InputPurpose = 8
	InputPurposePIN      InputPurpose = 9
)

var inputPurposeTable = enum.New("GtkInputPurpose", map[InputPurpose]string{
	InputPurposeFreeForm: "GTK_INPUT_PURPOSE_FREE_FORM",
	InputPurposeAlpha:    "GTK_INPUT_PURPOSE_ALPHA",
	InputPurposeDigits:   "GTK_INPUT_PURPOSE_DIGITS",
	InputPurposeNumber:   "GTK_INPUT_PURPOSE_NUMBER",
	InputPurposePhone:    "GTK_INPUT_PURPOSE_PHONE",
	InputPurposeURL:      "GTK_INPUT_PURPOSE_URL",
	InputPurposeEmail:    "GTK_INPUT_PURPOSE_EMAIL",
	InputPurposeName:     "GTK_INPUT_PURPOSE_NAME",
	InputPurposePassword: "GTK_INPUT_PURPOSE_PASSWORD",
	InputPurposePIN:      "GTK_INPUT_PURPOSE_PIN",
})

func (v InputPurpose) String() string { return inputPurposeTable.String(v) }

// ToGlib returns the foreign constant.
func (v InputPurpose) ToGlib() int32 { return int32(v) }

// InputPurposeFromGlib converts a foreign GtkInputPurpose, rejecting undeclared values.
func InputPurposeFromGlib(v int32) (InputPurpose, bool) { return inputPurposeTable.FromGlib(v) }

// SpinType is GtkSpinType.
type SpinType int32

const (
	SpinStepForward  SpinType = 0
	SpinStepBackward SpinType = 1
	SpinPageForward  SpinType = 2
	SpinPageBackward SpinType = 3
	SpinHome         SpinType = 4
	SpinEnd          SpinType = 5
	SpinUserDefined  SpinType = 6
)

var spinTypeTable = enum.New("GtkSpinType", map[SpinType]string{
	SpinStepForward:  "GTK_SPIN_STEP_FORWARD",
	SpinStepBackward: "GTK_SPIN_STEP_BACKWARD",
	SpinPageForward:  "GTK_SPIN_PAGE_FORWARD",
	SpinPageBackward: "GTK_SPIN_PAGE_BACKWARD",
	SpinHome:         "GTK_SPIN_HOME",
	SpinEnd:          "GTK_SPIN_END",
	SpinUserDefined:  "GTK_SPIN_USER_DEFINED",
})

func (v SpinType) String() string { return spinTypeTable.String(v) }

// ToGlib returns the foreign constant.
func (v SpinType) ToGlib() int32 { return int32(v) }

// SpinTypeFromGlib converts a foreign GtkSpinType, rejecting undeclared values.
func SpinTypeFromGlib(v int32) (SpinType, bool) { return spinTypeTable.FromGlib(v) }

// SpinButtonUpdatePolicy is GtkSpinButtonUpdatePolicy.
type SpinButtonUpdatePolicy int32

const (
	UpdateAlways  SpinButtonUpdatePolicy = 0
	UpdateIfValid SpinButtonUpdatePolicy = 1
)

var spinButtonUpdatePolicyTable = enum.New("GtkSpinButtonUpdatePolicy", map[SpinButtonUpdatePolicy]string{
	UpdateAlways:  "GTK_UPDATE_ALWAYS",
	UpdateIfValid: "GTK_UPDATE_IF_VALID",
})

func (v SpinButtonUpdatePolicy) String() string { return spinButtonUpdatePolicyTable.String(v) }

// ToGlib returns the foreign constant.
func (v SpinButtonUpdatePolicy) ToGlib() int32 { return int32(v) }

// SpinButtonUpdatePolicyFromGlib converts a foreign GtkSpinButtonUpdatePolicy, rejecting undeclared values.
func SpinButtonUpdatePolicyFromGlib(v int32) (SpinButtonUpdatePolicy, bool) { return spinButtonUpdatePolicyTable.FromGlib(v) }
