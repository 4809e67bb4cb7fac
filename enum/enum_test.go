package enum_test

import (
	"errors"
	"testing"

	"github.com/wippyai/vk-validation/enum"
)

type color int32

type access uint32

var (
	colors = enum.Range[color]("TestColor", 0, "TEST_COLOR_RED", "TEST_COLOR_GREEN", "TEST_COLOR_BLUE").
		Extend(1000, "TEST_COLOR_ULTRAVIOLET_EXT")

	shifted = enum.Range[color]("TestShifted", -2, "TEST_SHIFTED_A", "TEST_SHIFTED_B", "TEST_SHIFTED_C")

	accesses = enum.Bits[access]("TestAccess",
		"TEST_ACCESS_READ_BIT", "TEST_ACCESS_WRITE_BIT", "TEST_ACCESS_EXEC_BIT").
		Extend(1<<8, "TEST_ACCESS_TRACE_BIT_EXT")
)

func TestScalar_IsValid(t *testing.T) {
	tests := []struct {
		v    color
		want bool
	}{
		{0, true},
		{2, true},
		{3, false},
		{-1, false},
		{1000, true},
		{999, false},
	}
	for _, tt := range tests {
		if got := colors.IsValid(tt.v); got != tt.want {
			t.Errorf("IsValid(%d) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestScalar_NegativeBegin(t *testing.T) {
	if !shifted.IsValid(-2) || !shifted.IsValid(0) || shifted.IsValid(1) || shifted.IsValid(-3) {
		t.Fatal("range starting at -2 has wrong membership")
	}
	if got := shifted.Format(-1); got != "TEST_SHIFTED_B" {
		t.Errorf("Format(-1) = %q", got)
	}
	if shifted.First() != -2 || shifted.Last() != 0 {
		t.Errorf("First/Last = %d/%d", shifted.First(), shifted.Last())
	}
}

func TestScalar_Format(t *testing.T) {
	if got := colors.Format(1); got != "TEST_COLOR_GREEN" {
		t.Errorf("Format(1) = %q", got)
	}
	if got := colors.Format(1000); got != "TEST_COLOR_ULTRAVIOLET_EXT" {
		t.Errorf("Format(1000) = %q", got)
	}
	for _, v := range []color{3, -1, 1 << 30} {
		if got := colors.Format(v); got != enum.Unrecognized {
			t.Errorf("Format(%d) = %q, want %q", v, got, enum.Unrecognized)
		}
	}
}

func TestScalar_Parse(t *testing.T) {
	tests := []struct {
		in   string
		want color
	}{
		{"TEST_COLOR_BLUE", 2},
		{"blue", 2},
		{"ULTRAVIOLET_EXT", 1000},
		{"7", 7},
		{"0x10", 16},
	}
	for _, tt := range tests {
		got, err := colors.Parse(tt.in)
		if err != nil {
			t.Errorf("Parse(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}

	_, err := colors.Parse("purple")
	var pe *enum.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if pe.Type != "TestColor" {
		t.Errorf("ParseError.Type = %q", pe.Type)
	}
}

func TestFlags_IsValid(t *testing.T) {
	tests := []struct {
		v    access
		want bool
	}{
		{0, true},
		{1, true},
		{7, true},
		{1<<8 | 1, true},
		{1 << 3, false},
		{7 | 1<<3, false},
	}
	for _, tt := range tests {
		if got := accesses.IsValid(tt.v); got != tt.want {
			t.Errorf("IsValid(%#x) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestFlags_FormatDeclarationOrder(t *testing.T) {
	got := accesses.Format(1<<8 | 4 | 1)
	want := "TEST_ACCESS_READ_BIT|TEST_ACCESS_EXEC_BIT|TEST_ACCESS_TRACE_BIT_EXT"
	if got != want {
		t.Errorf("Format = %q, want %q", got, want)
	}
	if got := accesses.Format(0); got != "0" {
		t.Errorf("Format(0) = %q", got)
	}
}

func TestFlags_FormatAllOrNothing(t *testing.T) {
	// Three recognized bits plus one stray bit formats the same as only stray bits.
	mixed := accesses.Format(7 | 1<<4)
	stray := accesses.Format(1<<4 | 1<<5 | 1<<6)
	if mixed != enum.Unrecognized || stray != enum.Unrecognized {
		t.Errorf("mixed=%q stray=%q", mixed, stray)
	}
}

func TestFlags_Parse(t *testing.T) {
	got, err := accesses.Parse("READ_BIT | TEST_ACCESS_WRITE_BIT")
	if err != nil {
		t.Fatal(err)
	}
	if got != 3 {
		t.Errorf("Parse = %d, want 3", got)
	}
	if got, _ := accesses.Parse("0"); got != 0 {
		t.Errorf("Parse(0) = %d", got)
	}
	if _, err := accesses.Parse("READ_BIT|NOPE"); err == nil {
		t.Error("expected error for unknown bit")
	}
}

func TestSingleBit(t *testing.T) {
	for _, v := range []uint32{1, 2, 1 << 31} {
		if !enum.SingleBit(v) {
			t.Errorf("SingleBit(%#x) = false", v)
		}
	}
	for _, v := range []uint32{0, 3, 6} {
		if enum.SingleBit(v) {
			t.Errorf("SingleBit(%#x) = true", v)
		}
	}
}

func TestRegistry(t *testing.T) {
	d, ok := enum.Lookup("TestAccess")
	if !ok {
		t.Fatal("TestAccess not registered")
	}
	if d.Kind() != enum.KindFlags {
		t.Errorf("Kind = %v", d.Kind())
	}
	if len(d.Members()) != 4 {
		t.Errorf("Members = %d", len(d.Members()))
	}
	if d.ValidRaw(-1) || d.ValidRaw(1<<40) {
		t.Error("out-of-width raw values must be invalid")
	}

	names := make(map[string]bool)
	for _, d := range enum.All() {
		names[d.TypeName()] = true
	}
	for _, n := range []string{"TestColor", "TestShifted", "TestAccess"} {
		if !names[n] {
			t.Errorf("All() misses %s", n)
		}
	}
}

func TestRegistry_MembersRoundTrip(t *testing.T) {
	for _, d := range enum.All() {
		for _, m := range d.Members() {
			if !d.ValidRaw(m.Value) {
				t.Errorf("%s: member %s (%d) not valid", d.TypeName(), m.Name, m.Value)
			}
			if d.Kind() == enum.KindScalar {
				if got := d.FormatRaw(m.Value); got != m.Name {
					t.Errorf("%s: FormatRaw(%d) = %q, want %q", d.TypeName(), m.Value, got, m.Name)
				}
			}
			v, err := d.ParseRaw(m.Name)
			if err != nil || v != m.Value {
				t.Errorf("%s: ParseRaw(%q) = %d, %v", d.TypeName(), m.Name, v, err)
			}
		}
	}
}
