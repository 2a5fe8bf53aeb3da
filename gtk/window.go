package gtk

import "github.com/wippyai/pangobind/enum"

// WindowType distinguishes toplevel windows from popups such as menus and tooltips.
type WindowType int32

const (
	WindowToplevel WindowType = 0
	WindowPopup    WindowType = 1
)

var windowTypeTable = enum.New("GtkWindowType", map[WindowType]string{
	WindowToplevel: "GTK_WINDOW_TOPLEVEL",
	WindowPopup:    "GTK_WINDOW_POPUP",
})

func (v WindowType) String() string { return windowTypeTable.String(v) }

// ToGlib returns the foreign constant.
func (v WindowType) ToGlib() int32 { return int32(v) }

// WindowTypeFromGlib converts a foreign GtkWindowType, rejecting undeclared values.
func WindowTypeFromGlib(v int32) (WindowType, bool) { return windowTypeTable.FromGlib(v) }

// WindowPosition is GtkWindowPosition.
type WindowPosition int32

const (
	WinPosNone           WindowPosition = 0
	WinPosCenter         WindowPosition = 1
	WinPosMouse          WindowPosition = 2
	WinPosCenterAlways   WindowPosition = 3
	WinPosCenterOnParent WindowPosition = 4
)

var windowPositionTable = enum.New("GtkWindowPosition", map[WindowPosition]string{
	WinPosNone:           "GTK_WIN_POS_NONE",
	WinPosCenter:         "GTK_WIN_POS_CENTER",
	WinPosMouse:          "GTK_WIN_POS_MOUSE",
	WinPosCenterAlways:   "GTK_WIN_POS_CENTER_ALWAYS",
	WinPosCenterOnParent: "GTK_WIN_POS_CENTER_ON_PARENT",
})

func (v WindowPosition) String() string { return windowPositionTable.String(v) }

// ToGlib returns the foreign constant.
func (v WindowPosition) ToGlib() int32 { return int32(v) }

// WindowPositionFromGlib converts a foreign GtkWindowPosition, rejecting undeclared values.
func WindowPositionFromGlib(v int32) (WindowPosition, bool) { return windowPositionTable.FromGlib(v) }

// MessageType is the kind of message shown in a message dialog.
type MessageType int32

const (
	MessageInfo     MessageType = 0
	MessageWarning  MessageType = 1
	MessageQuestion MessageType = 2
	MessageError    MessageType = 3
	MessageOther    MessageType = 4
)

var messageTypeTable = enum.New("GtkMessageType", map[MessageType]string{
	MessageInfo:     "GTK_MESSAGE_INFO",
	MessageWarning:  "GTK_MESSAGE_WARNING",
	MessageQuestion: "GTK_MESSAGE_QUESTION",
	MessageError:    "GTK_MESSAGE_ERROR",
	MessageOther:    "GTK_MESSAGE_OTHER",
})

func (v MessageType) String() string { return messageTypeTable.String(v) }

// ToGlib returns the foreign constant.
func (v MessageType) ToGlib() int32 { return int32(v) }

// MessageTypeFromGlib converts a foreign GtkMessageType, rejecting undeclared values.
func MessageTypeFromGlib(v int32) (MessageType, bool) { return messageTypeTable.FromGlib(v) }

// DialogFlags influence dialog construction.
type DialogFlags uint32

const (
	DialogModal             DialogFlags = 1 << 0
	DialogDestroyWithParent DialogFlags = 1 << 1
	DialogUseHeaderBar      DialogFlags = 1 << 2
)

var dialogFlagsTable = enum.NewFlags("GtkDialogFlags",
	enum.Flag[DialogFlags]{Value: DialogModal, Name: "GTK_DIALOG_MODAL"},
	enum.Flag[DialogFlags]{Value: DialogDestroyWithParent, Name: "GTK_DIALOG_DESTROY_WITH_PARENT"},
	enum.Flag[DialogFlags]{Value: DialogUseHeaderBar, Name: "GTK_DIALOG_USE_HEADER_BAR"},
)

func (f DialogFlags) String() string { return dialogFlagsTable.String(f) }

// ToGlib returns the foreign bit set.
func (f DialogFlags) ToGlib() uint32 { return uint32(f) }

// DialogFlagsFromGlib converts a foreign GtkDialogFlags. It returns false when
// undeclared bits are set.
func DialogFlagsFromGlib(v uint32) (DialogFlags, bool) { return dialogFlagsTable.FromGlib(v) }

// Has reports whether every bit of want is set.
func (f DialogFlags) Has(want DialogFlags) bool { return enum.Has(f, want) }

func (f DialogFlags) Union(g DialogFlags) DialogFlags { return enum.Union(f, g) }

func (f DialogFlags) Intersect(g DialogFlags) DialogFlags { return enum.Intersect(f, g) }

func (f DialogFlags) Without(g DialogFlags) DialogFlags { return enum.Without(f, g) }

// ResponseType holds the predefined dialog response ids. They are all
// negative; positive ids are left to applications.
type ResponseType int32

const (
	ResponseNone        ResponseType = -1
	ResponseReject      ResponseType = -2
	ResponseAccept      ResponseType = -3
	ResponseDeleteEvent ResponseType = -4
	ResponseOK          ResponseType = -5
	ResponseCancel      ResponseType = -6
	ResponseClose       ResponseType = -7
	ResponseYes         ResponseType = -8
	ResponseNo          ResponseType = -9
	ResponseApply       ResponseType = -10
	ResponseHelp        ResponseType = -11
)

var responseTypeTable = enum.New("GtkResponseType", map[ResponseType]string{
	ResponseNone:        "GTK_RESPONSE_NONE",
	ResponseReject:      "GTK_RESPONSE_REJECT",
	ResponseAccept:      "GTK_RESPONSE_ACCEPT",
	ResponseDeleteEvent: "GTK_RESPONSE_DELETE_EVENT",
	ResponseOK:          "GTK_RESPONSE_OK",
	ResponseCancel:      "GTK_RESPONSE_CANCEL",
	ResponseClose:       "GTK_RESPONSE_CLOSE",
	ResponseYes:         "GTK_RESPONSE_YES",
	ResponseNo:          "GTK_RESPONSE_NO",
	ResponseApply:       "GTK_RESPONSE_APPLY",
	ResponseHelp:        "GTK_RESPONSE_HELP",
})

func (v ResponseType) String() string { return responseTypeTable.String(v) }

// ToGlib returns the foreign constant.
func (v ResponseType) ToGlib() int32 { return int32(v) }

// ResponseTypeFromGlib converts a foreign GtkResponseType, rejecting undeclared values.
func ResponseTypeFromGlib(v int32) (ResponseType, bool) { return responseTypeTable.FromGlib(v) }

// License is the license type of an application, as shown in an about dialog.
type License int32

const (
	LicenseUnknown    License = 0
	LicenseCustom     License = 1
	LicenseGPL20      License = 2
	LicenseGPL30      License = 3
	LicenseLGPL21     License = 4
	LicenseLGPL30     License = 5
	LicenseBSD        License = 6
	LicenseMITX11     License = 7
	LicenseArtistic   License = 8
	LicenseGPL20Only  License = 9
	LicenseGPL30Only  License = 10
	LicenseLGPL21Only License = 11
	LicenseLGPL30Only License = 12
)

var licenseTable = enum.New("GtkLicense", map[License]string{
	LicenseUnknown:    "GTK_LICENSE_UNKNOWN",
	LicenseCustom:     "GTK_LICENSE_CUSTOM",
	LicenseGPL20:      "GTK_LICENSE_GPL_2_0",
	LicenseGPL30:      "GTK_LICENSE_GPL_3_0",
	LicenseLGPL21:     "GTK_LICENSE_LGPL_2_1",
	LicenseLGPL30:     "GTK_LICENSE_LGPL_3_0",
	LicenseBSD:        "GTK_LICENSE_BSD",
	LicenseMITX11:     "GTK_LICENSE_MIT_X11",
	LicenseArtistic:   "GTK_LICENSE_ARTISTIC",
	LicenseGPL20Only:  "GTK_LICENSE_GPL_2_0_ONLY",
	LicenseGPL30Only:  "GTK_LICENSE_GPL_3_0_ONLY",
	LicenseLGPL21Only: "GTK_LICENSE_LGPL_2_1_ONLY",
	LicenseLGPL30Only: "GTK_LICENSE_LGPL_3_0_ONLY",
})

func (v License) String() string { return licenseTable.String(v) }

// ToGlib returns the foreign constant.
func (v License) ToGlib() int32 { return int32(v) }

// LicenseFromGlib converts a foreign GtkLicense, rejecting undeclared values.
func LicenseFromGlib(v int32) (License, bool) { return licenseTable.FromGlib(v) }
