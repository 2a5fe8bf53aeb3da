package gtk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/pangobind/enum"
)

func checkEnum[E ~int32](t *testing.T, tab *enum.Table[E], n int) {
	t.Helper()
	values := tab.Values()
	require.Len(t, values, n, tab.Name())
	for _, v := range values {
		got, ok := tab.FromGlib(tab.ToGlib(v))
		require.True(t, ok, "%s: %d", tab.Name(), v)
		assert.Equal(t, v, got)
		back, ok := tab.Lookup(tab.String(v))
		require.True(t, ok)
		assert.Equal(t, v, back)
	}
}

func checkFlags[F ~uint32](t *testing.T, tab *enum.FlagTable[F], n int) {
	t.Helper()
	flags := tab.Flags()
	require.Len(t, flags, n, tab.Name())
	for _, a := range flags {
		for _, b := range flags {
			u := enum.Union(a.Value, b.Value)
			assert.Equal(t, tab.ToGlib(a.Value)|tab.ToGlib(b.Value), tab.ToGlib(u))

			back, ok := tab.FromGlib(tab.ToGlib(u))
			require.True(t, ok)
			for _, x := range flags {
				if enum.Has(a.Value, x.Value) || enum.Has(b.Value, x.Value) {
					assert.True(t, enum.Has(back, x.Value), "%s: %s in %s", tab.Name(), x.Name, tab.String(back))
				}
			}
		}
	}
}

func TestAllTablesRoundTrip(t *testing.T) {
	checkAllTables(t)
}

func TestForeignValues(t *testing.T) {
	assert.Equal(t, int32(1), ButtonBoxSpread.ToGlib())
	assert.Equal(t, int32(5), ButtonBoxCenter.ToGlib())
	assert.Equal(t, int32(12), PathPrioRC.ToGlib())
	assert.Equal(t, int32(15), PathPrioHighest.ToGlib())
	assert.Equal(t, int32(-5), ResponseOK.ToGlib())
	assert.Equal(t, int32(-11), ResponseHelp.ToGlib())
	assert.Equal(t, uint32(32), CalendarShowDetails.ToGlib())
	assert.Equal(t, uint32(4), DialogUseHeaderBar.ToGlib())
	assert.Equal(t, uint32(7), AccelMask.ToGlib())
	assert.Equal(t, int32(3), PolicyExternal.ToGlib())
}

func TestFromGlibRejectsUndeclared(t *testing.T) {
	_, ok := ButtonBoxStyleFromGlib(0)
	assert.False(t, ok)
	_, ok = PathPriorityTypeFromGlib(5)
	assert.False(t, ok)
	_, ok = ResponseTypeFromGlib(0)
	assert.False(t, ok)
	_, ok = WindowTypeFromGlib(2)
	assert.False(t, ok)
	_, ok = CalendarDisplayOptionsFromGlib(16)
	assert.False(t, ok)

	v, ok := ResponseTypeFromGlib(-7)
	require.True(t, ok)
	assert.Equal(t, ResponseClose, v)
}

func TestEnumString(t *testing.T) {
	assert.Equal(t, "GTK_WINDOW_POPUP", WindowPopup.String())
	assert.Equal(t, "GTK_ICON_SIZE_DIALOG", IconSizeDialog.String())
	assert.Equal(t, "GTK_LICENSE_LGPL_2_1_ONLY", LicenseLGPL21Only.String())
	assert.Equal(t, "GtkTextDirection(9)", TextDirection(9).String())
}

func TestStateFlags(t *testing.T) {
	s := StateFlagActive.Union(StateFlagFocused)
	assert.Equal(t, "GTK_STATE_FLAG_ACTIVE|GTK_STATE_FLAG_FOCUSED", s.String())
	assert.True(t, s.Has(StateFlagFocused))
	assert.False(t, s.Has(StateFlagSelected))
	assert.Equal(t, StateFlagActive, s.Without(StateFlagFocused))
	assert.Equal(t, StateFlagNormal, s.Intersect(StateFlagDirRTL))
	assert.Equal(t, "GTK_STATE_FLAG_NORMAL", StateFlagNormal.String())
}

func TestJunctionSidesComposites(t *testing.T) {
	assert.Equal(t, JunctionTop, JunctionCornerTopLeft.Union(JunctionCornerTopRight))
	assert.Equal(t, "GTK_JUNCTION_TOP", JunctionTop.String())
	assert.True(t, JunctionLeft.Has(JunctionCornerBottomLeft))

	all := JunctionTop.Union(JunctionBottom)
	assert.Equal(t, JunctionLeft.Union(JunctionRight), all)
	assert.True(t, all.Has(JunctionTop))
	assert.Equal(t, JunctionBottom, all.Without(JunctionTop))

	v, ok := JunctionSidesFromGlib(0x10)
	assert.False(t, ok)
	assert.Equal(t, "0x10", v.String())
}

func TestInputHintsUnknownBits(t *testing.T) {
	v, ok := InputHintsFromGlib(uint32(InputHintSpellcheck) | 1<<12)
	assert.False(t, ok)
	assert.Equal(t, "GTK_INPUT_HINT_SPELLCHECK|0x1000", v.String())
}
