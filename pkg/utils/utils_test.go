package utils

import "testing"

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		input    uint64
		expected string
	}{
		{0, "0"},
		{123, "123"},
		{1234, "1,234"},
		{1234567, "1,234,567"},
	}

	for _, test := range tests {
		result := FormatNumber(test.input)
		if result != test.expected {
			t.Errorf("FormatNumber(%d) = %s; expected %s", test.input, result, test.expected)
		}
	}
}

func TestSortAttributesByCount(t *testing.T) {
	input := map[string]uint64{
		"distance": 100,
		"velocity": 50,
		"unmapped": 50,
	}

	result := SortAttributesByCount(input)

	// Sorted by count descending; for equal counts, by name ascending.
	expected := []AttributeCount{
		{Attribute: "distance", Count: 100},
		{Attribute: "unmapped", Count: 50},
		{Attribute: "velocity", Count: 50},
	}

	if len(result) != len(expected) {
		t.Fatalf("Expected %d items, got %d", len(expected), len(result))
	}

	for i, exp := range expected {
		if result[i].Attribute != exp.Attribute || result[i].Count != exp.Count {
			t.Errorf("At index %d: expected %+v, got %+v", i, exp, result[i])
		}
	}
}
