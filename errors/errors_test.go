package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:  PhaseAcquire,
				Kind:   KindNullHandle,
				Symbol: "pango_coverage_new",
				Type:   "PangoCoverage",
				Detail: "constructor returned NULL",
			},
			contains: []string{"[acquire]", "null_handle", "pango_coverage_new", "PangoCoverage", "constructor returned NULL"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseBorrow,
				Kind:  KindExpired,
			},
			contains: []string{"[borrow]", "expired"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseCall,
				Kind:   KindTrap,
				Detail: "unreachable",
				Cause:  errors.New("wasm error: unreachable"),
			},
			contains: []string{"[call]", "trap", "unreachable", "caused by", "wasm error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseLoad,
		Kind:  KindInvalidData,
		Cause: cause,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}
	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Phase: PhaseRelease,
		Kind:  KindReleased,
		Type:  "PangoFontFace",
	}

	if !err.Is(&Error{Phase: PhaseRelease, Kind: KindReleased}) {
		t.Error("Is should match same phase and kind")
	}
	if err.Is(&Error{Phase: PhaseAcquire, Kind: KindReleased}) {
		t.Error("Is should not match different phase")
	}
	if err.Is(&Error{Phase: PhaseRelease, Kind: KindNullHandle}) {
		t.Error("Is should not match different kind")
	}

	target := &Error{Phase: PhaseRelease, Kind: KindReleased}
	if !errors.Is(err, target) {
		t.Error("errors.Is should match")
	}
}

func TestError_Precondition(t *testing.T) {
	tests := []struct {
		kind Kind
		want bool
	}{
		{KindNullHandle, true},
		{KindWrongMode, true},
		{KindWrongType, true},
		{KindReleased, true},
		{KindExpired, true},
		{KindUnsupported, true},
		{KindTrap, false},
		{KindMissingSymbol, false},
		{KindInvalidEnum, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			err := &Error{Phase: PhaseCall, Kind: tt.kind}
			if got := err.Precondition(); got != tt.want {
				t.Errorf("Precondition() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("root")
	err := New(PhaseCall, KindTrap).
		Type("PangoCoverage").
		Symbol("pango_coverage_max").
		Value(42).
		Cause(cause).
		Detail("trap in %s after %d calls", "pango_coverage_max", 3).
		Build()

	if err.Phase != PhaseCall {
		t.Errorf("Phase = %v, want %v", err.Phase, PhaseCall)
	}
	if err.Kind != KindTrap {
		t.Errorf("Kind = %v, want %v", err.Kind, KindTrap)
	}
	if err.Type != "PangoCoverage" {
		t.Errorf("Type = %v, want PangoCoverage", err.Type)
	}
	if err.Symbol != "pango_coverage_max" {
		t.Errorf("Symbol = %v, want pango_coverage_max", err.Symbol)
	}
	if err.Value != 42 {
		t.Errorf("Value = %v, want 42", err.Value)
	}
	if !errors.Is(err.Cause, cause) {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if err.Detail != "trap in pango_coverage_max after 3 calls" {
		t.Errorf("Detail = %v", err.Detail)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	t.Run("NullHandle", func(t *testing.T) {
		err := NullHandle(PhaseAcquire, "PangoCoverage")
		if err.Kind != KindNullHandle || err.Type != "PangoCoverage" {
			t.Errorf("Kind=%v Type=%v", err.Kind, err.Type)
		}
	})

	t.Run("WrongMode", func(t *testing.T) {
		err := WrongMode(PhaseAcquire, "PangoFontDescription", "shared", "full")
		if err.Kind != KindWrongMode {
			t.Errorf("Kind = %v, want %v", err.Kind, KindWrongMode)
		}
		if !strings.Contains(err.Detail, "shared") || !strings.Contains(err.Detail, "full") {
			t.Errorf("Detail = %v, should name both modes", err.Detail)
		}
	})

	t.Run("Released", func(t *testing.T) {
		err := Released(PhaseCall, "PangoFontFace")
		if err.Kind != KindReleased {
			t.Errorf("Kind = %v, want %v", err.Kind, KindReleased)
		}
	})

	t.Run("Expired", func(t *testing.T) {
		err := Expired("PangoFontFace")
		if err.Phase != PhaseBorrow || err.Kind != KindExpired {
			t.Errorf("Phase=%v Kind=%v", err.Phase, err.Kind)
		}
	})

	t.Run("Trap", func(t *testing.T) {
		err := Trap("pango_coverage_get", errors.New("oob"))
		if err.Kind != KindTrap || err.Symbol != "pango_coverage_get" {
			t.Errorf("Kind=%v Symbol=%v", err.Kind, err.Symbol)
		}
	})

	t.Run("InvalidEnum", func(t *testing.T) {
		err := InvalidEnum(int32(99), "GtkJustification")
		if err.Kind != KindInvalidEnum {
			t.Errorf("Kind = %v, want %v", err.Kind, KindInvalidEnum)
		}
		if err.Value != int32(99) {
			t.Errorf("Value = %v, want 99", err.Value)
		}
	})

	t.Run("AllocationFailed", func(t *testing.T) {
		err := AllocationFailed("g_malloc", 1024)
		if err.Kind != KindAllocation {
			t.Errorf("Kind = %v, want %v", err.Kind, KindAllocation)
		}
		if !strings.Contains(err.Detail, "1024") {
			t.Errorf("Detail = %v, should contain size", err.Detail)
		}
	})

	t.Run("OutOfBounds", func(t *testing.T) {
		err := OutOfBounds("memory.read", 0x10, 8)
		if err.Kind != KindOutOfBounds {
			t.Errorf("Kind = %v, want %v", err.Kind, KindOutOfBounds)
		}
		if err.Value != uint32(0x10) {
			t.Errorf("Value = %v, want 0x10", err.Value)
		}
	})
}

func TestMissingSymbolsError(t *testing.T) {
	t.Run("grouped by prefix", func(t *testing.T) {
		err := &MissingSymbolsError{
			Module: "libpango",
			Symbols: []string{
				"pango_coverage_ref",
				"g_free",
				"pango_font_face_describe",
				"pango_coverage_unref",
			},
		}
		msg := err.Error()
		for _, want := range []string{"libpango", "4 symbol(s)", "pango_coverage:", "pango_font_face:", "g:", "- pango_coverage_unref"} {
			if !strings.Contains(msg, want) {
				t.Errorf("error %q should contain %q", msg, want)
			}
		}
	})

	t.Run("empty symbols", func(t *testing.T) {
		err := &MissingSymbolsError{}
		if !strings.Contains(err.Error(), "no symbols specified") {
			t.Errorf("empty error should have specific message, got: %s", err.Error())
		}
	})

	t.Run("errors.Is", func(t *testing.T) {
		err := &MissingSymbolsError{Symbols: []string{"g_free"}}
		if !errors.Is(err, &MissingSymbolsError{}) {
			t.Error("errors.Is should match MissingSymbolsError")
		}
	})
}

func TestSymbolPrefix(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"g_free", "g"},
		{"g_object_unref", "g_object"},
		{"pango_coverage_set", "pango_coverage"},
		{"pango_font_description_get_family", "pango_font_description"},
		{"pango_cairo_font_map_get_default", "pango_cairo_font"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := symbolPrefix(tt.input); got != tt.expected {
				t.Errorf("symbolPrefix(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
