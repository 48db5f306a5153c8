package model

import (
	"errors"
	"testing"
)

func TestParseHours(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string // "" means nil
		wantErr bool
	}{
		{name: "blank", input: "   ", want: ""},
		{name: "whole number", input: "10", want: "10.00"},
		{name: "two places", input: "7.25", want: "7.25"},
		{name: "round half up", input: "12.345", want: "12.35"},
		{name: "round down", input: "12.344", want: "12.34"},
		{name: "round half away from zero", input: "-0.005", want: "-0.01"},
		{name: "surrounding spaces", input: " 3.5 ", want: "3.50"},
		{name: "not a number", input: "ten", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHours(tt.input)
			if tt.wantErr {
				var inputErr *InputError
				if !errors.As(err, &inputErr) {
					t.Fatalf("Expected InputError, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if tt.want == "" {
				if got != nil {
					t.Errorf("Expected nil, got %s", got)
				}
				return
			}
			if got == nil {
				t.Fatalf("Expected %s, got nil", tt.want)
			}
			if s := got.StringFixed(HoursScale); s != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, s)
			}
			// 保存される値の小数点以下の桁数は2桁以下
			if got.Exponent() < -HoursScale {
				t.Errorf("Expected scale <= %d, got exponent %d", HoursScale, got.Exponent())
			}
		})
	}
}

func TestParseDifficulty(t *testing.T) {
	for _, input := range []string{"1", "3", "5"} {
		v, err := ParseDifficulty(input)
		if err != nil || v == nil {
			t.Errorf("ParseDifficulty(%q) = %v, %v; expected a value", input, v, err)
		}
	}

	v, err := ParseDifficulty("")
	if err != nil || v != nil {
		t.Errorf("Expected blank difficulty to be nil, got %v, %v", v, err)
	}

	for _, input := range []string{"0", "6", "-1", "hard"} {
		if _, err := ParseDifficulty(input); err == nil {
			t.Errorf("Expected error for difficulty %q", input)
		}
	}
}

func TestParseProjectID(t *testing.T) {
	id, err := ParseProjectID(" 12 ")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if id != 12 {
		t.Errorf("Expected 12, got %d", id)
	}

	for _, input := range []string{"", "0", "-3", "abc", "1.5"} {
		if _, err := ParseProjectID(input); err == nil {
			t.Errorf("Expected error for project ID %q", input)
		}
	}
}

func TestParseProjectName(t *testing.T) {
	name, err := ParseProjectName("  Build shed ")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if name != "Build shed" {
		t.Errorf("Expected trimmed name, got %q", name)
	}

	if _, err := ParseProjectName("   "); err == nil {
		t.Error("Expected error for blank name")
	}
}

func TestParseIntAndText(t *testing.T) {
	v, err := ParseInt("42")
	if err != nil || v == nil || *v != 42 {
		t.Errorf("Expected 42, got %v, %v", v, err)
	}
	if _, err := ParseInt("4x"); err == nil {
		t.Error("Expected error for non-numeric input")
	}

	if ParseText("  ") != nil {
		t.Error("Expected blank text to be nil")
	}
	if s := ParseText(" paint it red "); s == nil || *s != "paint it red" {
		t.Errorf("Expected trimmed text, got %v", s)
	}
}

func TestOptional(t *testing.T) {
	var none Optional[int]
	if none.Ptr() != nil {
		t.Error("Expected nil pointer for absent optional")
	}
	if none.Or(9) != 9 {
		t.Error("Expected fallback for absent optional")
	}

	some := OptionalOf(ptr(4))
	if !some.Present || some.Or(9) != 4 {
		t.Errorf("Expected present optional holding 4, got %+v", some)
	}
	if OptionalOf[int](nil).Present {
		t.Error("Expected OptionalOf(nil) to be absent")
	}
}
