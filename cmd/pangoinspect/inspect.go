package main

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/unicode/runenames"

	"github.com/wippyai/pangobind/pango"
)

type options struct {
	families  bool
	describe  string
	chars     string
	runeRange string
	level     string
	in        string
	out       string
}

func (o options) any() bool {
	return o.families || o.describe != "" || o.coverage()
}

func (o options) coverage() bool {
	return o.chars != "" || o.runeRange != "" || o.in != ""
}

type styles struct {
	title lipgloss.Style
	name  lipgloss.Style
	value lipgloss.Style
	dim   lipgloss.Style
}

func plainStyles() styles {
	s := lipgloss.NewStyle()
	return styles{title: s, name: s, value: s, dim: s}
}

func colorStyles() styles {
	return styles{
		title: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4")),
		name:  lipgloss.NewStyle().Foreground(lipgloss.Color("#98FB98")),
		value: lipgloss.NewStyle().Foreground(lipgloss.Color("#87CEEB")),
		dim:   lipgloss.NewStyle().Foreground(lipgloss.Color("#666666")),
	}
}

func run(w io.Writer, st styles, b *pango.Binding, o options) error {
	if o.families {
		if err := listFamilies(w, st, b); err != nil {
			return err
		}
	}
	if o.describe != "" {
		if err := describeFont(w, st, b, o.describe); err != nil {
			return err
		}
	}
	if o.coverage() {
		return showCoverage(w, st, b, o)
	}
	return nil
}

func listFamilies(w io.Writer, st styles, b *pango.Binding) error {
	m, ok := b.DefaultFontMap()
	if !ok {
		return fmt.Errorf("no default font map")
	}
	defer m.Release()

	for _, f := range m.Families() {
		name, _ := f.Name()
		line := st.title.Render(name)
		if f.IsMonospace() {
			line += st.dim.Render(" (monospace)")
		}
		fmt.Fprintln(w, line)

		f.EachFace(func(face pango.FontFaceRef) bool {
			fmt.Fprintln(w, "  "+formatFace(st, face))
			return true
		})
		f.Release()
	}
	return nil
}

func formatFace(st styles, face pango.FontFaceRef) string {
	name, _ := face.FaceName()
	line := st.name.Render(name)
	if d, ok := face.Describe(); ok {
		line += "  " + st.value.Render(d.String())
		d.Release()
	}
	if face.IsSynthesized() {
		line += st.dim.Render(" [synthesized]")
	}
	if sizes := face.ListSizes(); len(sizes) > 0 {
		pts := make([]string, len(sizes))
		for i, s := range sizes {
			pts[i] = strconv.FormatFloat(float64(s)/pango.Scale, 'g', -1, 64)
		}
		line += st.dim.Render(" sizes " + strings.Join(pts, ","))
	}
	return line
}

func describeFont(w io.Writer, st styles, b *pango.Binding, s string) error {
	d, ok := b.ParseFontDescription(s)
	if !ok {
		return fmt.Errorf("cannot parse font description %q", s)
	}
	defer d.Release()

	family, ok := d.Family()
	if !ok {
		family = "(unset)"
	}
	rows := [][2]string{
		{"family", family},
		{"size", strconv.FormatFloat(d.SizePoints(), 'g', -1, 64) + "pt"},
		{"weight", d.Weight().String()},
		{"style", d.Style().String()},
		{"variant", d.Variant().String()},
		{"stretch", d.Stretch().String()},
		{"set", d.SetFields().String()},
		{"string", d.String()},
		{"hash", fmt.Sprintf("0x%08x", d.Hash())},
	}
	for _, r := range rows {
		pad := strings.Repeat(" ", 9-len(r[0]))
		fmt.Fprintf(w, "%s%s%s\n", st.name.Render(r[0]), pad, st.value.Render(r[1]))
	}
	return nil
}

func showCoverage(w io.Writer, st styles, b *pango.Binding, o options) error {
	var (
		c  *pango.Coverage
		ok bool
	)
	if o.in != "" {
		data, err := os.ReadFile(o.in)
		if err != nil {
			return fmt.Errorf("read coverage: %w", err)
		}
		if c, ok = b.CoverageFromBytes(data); !ok {
			return fmt.Errorf("%s: not a serialized coverage", o.in)
		}
	} else if c, ok = b.NewCoverage(); !ok {
		return fmt.Errorf("cannot create coverage")
	}
	defer c.Release()

	level, ok := pango.ParseCoverageLevel(o.level)
	if !ok {
		return fmt.Errorf("unknown coverage level %q", o.level)
	}

	runes := []rune(o.chars)
	if o.runeRange != "" {
		lo, hi, err := parseRange(o.runeRange)
		if err != nil {
			return err
		}
		for r := lo; r <= hi; r++ {
			runes = append(runes, r)
		}
	}
	for _, r := range runes {
		c.Set(int32(r), level)
	}

	data, ok := c.ToBytes()
	if !ok && o.out != "" {
		return fmt.Errorf("coverage could not be serialized")
	}
	if o.out != "" {
		if err := os.WriteFile(o.out, data, 0o644); err != nil {
			return fmt.Errorf("write coverage: %w", err)
		}
	}

	end := extent(data)
	for _, r := range runes {
		if int32(r) >= end {
			end = int32(r) + 1
		}
	}
	for i := int32(0); i < end; i++ {
		l := c.Get(i)
		if l == pango.CoverageNone {
			continue
		}
		fmt.Fprintln(w, formatRune(st, rune(i), l))
	}
	if ok {
		fmt.Fprintln(w, st.dim.Render(fmt.Sprintf("%d bytes serialized", len(data))))
	} else {
		fmt.Fprintln(w, st.dim.Render("not serializable"))
	}
	return nil
}

func formatRune(st styles, r rune, l pango.CoverageLevel) string {
	glyph := " "
	if unicode.IsPrint(r) {
		glyph = string(r)
	}
	name := runenames.Name(r)
	if name == "" {
		name = "<unnamed>"
	}
	return fmt.Sprintf("%s %s %s %s",
		st.name.Render(fmt.Sprintf("U+%04X", r)), glyph, name, st.value.Render(l.String()))
}

// extent reads the index count of the builtin serialization: a 4-byte
// magic then a big-endian count. Other formats yield 0.
func extent(data []byte) int32 {
	if len(data) < 8 || binary.BigEndian.Uint32(data) != 0xc89dbd5e {
		return 0
	}
	n := binary.BigEndian.Uint32(data[4:])
	if n > unicode.MaxRune+1 {
		return unicode.MaxRune + 1
	}
	return int32(n)
}

// parseRange parses "lo-hi" with Go integer literal syntax for each end.
func parseRange(s string) (rune, rune, error) {
	a, b, ok := strings.Cut(s, "-")
	if !ok {
		b = a
	}
	lo, err := strconv.ParseInt(strings.TrimSpace(a), 0, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("range %q: %w", s, err)
	}
	hi, err := strconv.ParseInt(strings.TrimSpace(b), 0, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("range %q: %w", s, err)
	}
	if lo < 0 || lo > hi || hi > unicode.MaxRune {
		return 0, 0, fmt.Errorf("range %q: want 0 <= lo <= hi <= 0x%X", s, unicode.MaxRune)
	}
	return rune(lo), rune(hi), nil
}
