package issn

import (
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "pads short value", input: "123", expected: "00000123"},
		{name: "keeps absent marker", input: "-", expected: "-"},
		{name: "keeps eight digits", input: "12345678", expected: "12345678"},
		{name: "keeps check digit X", input: "1234567X", expected: "1234567X"},
		{name: "pads seven characters", input: "234567X", expected: "0234567X"},
		{name: "keeps longer values", input: "1234-5678", expected: "1234-5678"},
		{name: "pads empty string", input: "", expected: "00000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Normalize(tt.input)
			if result != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, result)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"1", "123", "1234567", "12345678", "-", "1234567X", "abc"}

	for _, input := range inputs {
		once := Normalize(input)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize(%q) not idempotent: %q then %q", input, once, twice)
		}
		if once != "-" && len(once) < Width {
			t.Errorf("Normalize(%q) = %q, shorter than %d", input, once, Width)
		}
	}
}

func TestKey(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "1234-5678", expected: "12345678"},
		{input: " 0028-0836 ", expected: "00280836"},
		{input: "１２３４-５６７８", expected: "12345678"},
		{input: "-", expected: ""},
		{input: "", expected: ""},
	}

	for _, tt := range tests {
		if result := Key(tt.input); result != tt.expected {
			t.Errorf("Key(%q): expected %q, got %q", tt.input, tt.expected, result)
		}
	}
}

func TestSplit(t *testing.T) {
	if got := Split("-"); len(got) != 0 {
		t.Errorf("Expected no identifiers for absent marker, got %v", got)
	}

	got := Split("12345678 87654321")
	expected := []string{"12345678", "87654321"}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestNormalizeField(t *testing.T) {
	tests := []struct {
		name         string
		field        string
		stripHyphens bool
		expected     string
	}{
		{name: "blank becomes absent", field: "  ", expected: "-"},
		{name: "absent stays absent", field: "-", expected: "-"},
		{name: "pads single token", field: "2345678", expected: "02345678"},
		{name: "pads every token", field: "123 87654321", expected: "00000123 87654321"},
		{name: "hyphens kept by default", field: "1234-5678", expected: "1234-5678"},
		{name: "hyphens stripped on request", field: "1234-5678", stripHyphens: true, expected: "12345678"},
		{name: "stripped short token padded", field: "123-45", stripHyphens: true, expected: "00012345"},
		{name: "lone hyphen token dropped", field: "- 12345678", expected: "12345678"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NormalizeField(tt.field, tt.stripHyphens)
			if result != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, result)
			}
		})
	}
}
