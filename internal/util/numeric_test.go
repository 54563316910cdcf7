package util

import "testing"

func TestParseNumeric(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  float64
	}{
		{name: "plain integer", input: "42", want: 42},
		{name: "decimal dot", input: "10.5", want: 10.5},
		{name: "decimal comma", input: "10,5", want: 10.5},
		{name: "currency prefix", input: "$1500.00", want: 1500},
		{name: "comma grouping", input: "1,234.5", want: 1234.5},
		{name: "comma grouping no decimals", input: "12,345", want: 12345},
		{name: "dot grouping", input: "1.234.567", want: 1234567},
		{name: "surrounding spaces", input: "  7.25  ", want: 7.25},
		{name: "negative", input: "-3.5", want: -3.5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ParseNumeric(tc.input)
			if !ok {
				t.Fatalf("not numeric: %q", tc.input)
			}
			if got != tc.want {
				t.Fatalf("got %v want %v", got, tc.want)
			}
		})
	}
}

func TestParseNumericRejects(t *testing.T) {
	for _, input := range []string{"", "  ", "N/A", "abc", "12x"} {
		if _, ok := ParseNumeric(input); ok {
			t.Fatalf("parsed %q", input)
		}
	}
}

func TestDerefFloat(t *testing.T) {
	if DerefFloat(nil) != 0 {
		t.Fatal("nil should read as zero")
	}
	if DerefFloat(FloatPtr(2.5)) != 2.5 {
		t.Fatal("deref lost the value")
	}
}
