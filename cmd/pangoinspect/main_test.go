package main

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/pangobind/ffi"
	"github.com/wippyai/pangobind/ffi/hostlib"
	"github.com/wippyai/pangobind/pango"
)

func testBinding(t *testing.T) *pango.Binding {
	t.Helper()
	lib := hostlib.New()
	t.Cleanup(func() {
		assert.Empty(t, lib.Violations())
		assert.Zero(t, lib.Live(hostlib.TypeCoverage))
		assert.Zero(t, lib.Live(hostlib.TypeFontDescription))
		lib.Close()
	})
	return pango.New(lib)
}

func TestListFamilies(t *testing.T) {
	var out strings.Builder
	require.NoError(t, run(&out, plainStyles(), testBinding(t), options{families: true}))

	s := out.String()
	assert.Contains(t, s, "Sans\n")
	assert.Contains(t, s, "Monospace (monospace)\n")
	assert.Contains(t, s, "[synthesized]")
	assert.Contains(t, s, "sizes 8,10,12")
}

func TestDescribe(t *testing.T) {
	var out strings.Builder
	require.NoError(t, run(&out, plainStyles(), testBinding(t), options{describe: "Serif Bold 12"}))

	s := out.String()
	assert.Contains(t, s, "family   Serif\n")
	assert.Contains(t, s, "size     12pt\n")
	assert.Contains(t, s, "weight   PANGO_WEIGHT_BOLD\n")
	assert.Contains(t, s, "string   Serif Bold 12\n")
}

func TestCoverage(t *testing.T) {
	b := testBinding(t)
	file := filepath.Join(t.TempDir(), "cov.bin")

	var out strings.Builder
	require.NoError(t, run(&out, plainStyles(), b, options{
		chars: "A", runeRange: "0x61-0x62", level: "approximate", out: file,
	}))
	s := out.String()
	assert.Contains(t, s, "U+0041 A LATIN CAPITAL LETTER A PANGO_COVERAGE_APPROXIMATE\n")
	assert.Contains(t, s, "U+0062 b LATIN SMALL LETTER B PANGO_COVERAGE_APPROXIMATE\n")
	assert.NotContains(t, s, "U+0063")

	out.Reset()
	require.NoError(t, run(&out, plainStyles(), b, options{in: file, chars: "c", level: "exact"}))
	s = out.String()
	assert.Contains(t, s, "U+0041 A LATIN CAPITAL LETTER A PANGO_COVERAGE_APPROXIMATE\n")
	assert.Contains(t, s, "U+0063 c LATIN SMALL LETTER C PANGO_COVERAGE_EXACT\n")
}

func TestCoverage_Errors(t *testing.T) {
	b := testBinding(t)
	var out strings.Builder

	assert.Error(t, run(&out, plainStyles(), b, options{chars: "a", level: "bogus"}))
	assert.Error(t, run(&out, plainStyles(), b, options{runeRange: "0x62-0x61", level: "exact"}))
	assert.Error(t, run(&out, plainStyles(), b, options{in: filepath.Join(t.TempDir(), "none")}))
}

func TestCoverage_NotSerializable(t *testing.T) {
	lib := hostlib.New()
	defer lib.Close()
	b := pango.New(lib)
	file := filepath.Join(t.TempDir(), "cov.bin")

	var out strings.Builder
	lib.FailNext(ffi.SymCoverageToBytes, 1)
	err := run(&out, plainStyles(), b, options{chars: "A", level: "exact", out: file})
	require.Error(t, err)
	assert.NoFileExists(t, file)

	out.Reset()
	lib.FailNext(ffi.SymCoverageToBytes, 1)
	require.NoError(t, run(&out, plainStyles(), b, options{chars: "A", level: "exact"}))
	assert.Contains(t, out.String(), "U+0041 A LATIN CAPITAL LETTER A PANGO_COVERAGE_EXACT\n")
	assert.Contains(t, out.String(), "not serializable\n")
	assert.Zero(t, lib.Live(hostlib.TypeCoverage))
}

func TestParseRange(t *testing.T) {
	tests := []struct {
		in     string
		lo, hi rune
		ok     bool
	}{
		{"0x41-0x5a", 'A', 'Z', true},
		{"65", 'A', 'A', true},
		{" 97 - 98 ", 'a', 'b', true},
		{"0x110000", 0, 0, false},
		{"z-a", 0, 0, false},
		{"-1", 0, 0, false},
	}
	for _, tt := range tests {
		lo, hi, err := parseRange(tt.in)
		if !tt.ok {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.lo, lo, tt.in)
		assert.Equal(t, tt.hi, hi, tt.in)
	}
}

func TestInteractive_Describe(t *testing.T) {
	m := newInteractiveModel(testBinding(t), "")
	assert.Contains(t, m.View(), "builtin")

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	require.Equal(t, "describe", m.actions[m.selected].name)

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, stateInput, m.state)
	m.input.SetValue("Sans Italic 10")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	m.Update(cmd())

	require.Equal(t, stateShowResult, m.state)
	require.NoError(t, m.err)
	assert.Contains(t, m.result, "Sans Italic 10")

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, stateSelect, m.state)
}
