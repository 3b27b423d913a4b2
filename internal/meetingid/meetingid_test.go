package meetingid

import (
	"strconv"
	"testing"
)

func TestGenerate(t *testing.T) {
	for i := 0; i < 100; i++ {
		id := Generate()
		if len(id) != CanonicalLength {
			t.Fatalf("Generate() = %q, want %d digits", id, CanonicalLength)
		}
		if _, err := strconv.ParseUint(string(id), 10, 64); err != nil {
			t.Fatalf("Generate() = %q, not numeric: %v", id, err)
		}
	}
}

func TestToDisplay(t *testing.T) {
	tests := []struct {
		id       ID
		expected string
	}{
		{"1234567890", "123-456-7890"},
		{"0000000000", "000-000-0000"},
		{"12345", "12345"},       // wrong length passes through
		{"", ""},                 // empty passes through
		{"12345678901", "12345678901"}, // too long passes through
	}

	for _, test := range tests {
		if got := ToDisplay(test.id); got != test.expected {
			t.Errorf("ToDisplay(%q) = %q, want %q", test.id, got, test.expected)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	ids := []ID{"1234567890", "0000000000", "9999999999"}
	for _, id := range ids {
		if got := ToCanonical(ToDisplay(id)); got != string(id) {
			t.Errorf("ToCanonical(ToDisplay(%q)) = %q, want %q", id, got, id)
		}
	}
	for i := 0; i < 100; i++ {
		id := Generate()
		if got := ToCanonical(ToDisplay(id)); got != string(id) {
			t.Errorf("ToCanonical(ToDisplay(%q)) = %q, want %q", id, got, id)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		candidate string
		expected  ID
		ok        bool
	}{
		{"1234567890", "1234567890", true},
		{"123-456-7890", "1234567890", true},
		{"---1234567890---", "1234567890", true},
		{"0000000000", "0000000000", true},
		{"123456789", "", false},    // too short
		{"12345678901", "", false},  // too long
		{"12345abcde", "", false},   // non-numeric
		{"123-456-789a", "", false}, // non-numeric after stripping
		{"", "", false},
		{"-", "", false},
	}

	for _, test := range tests {
		id, err := Validate(test.candidate)
		if test.ok && (err != nil || id != test.expected) {
			t.Errorf("Validate(%q) = (%q, %v), want (%q, nil)", test.candidate, id, err, test.expected)
		}
		if !test.ok && err == nil {
			t.Errorf("Validate(%q) = (%q, nil), want error", test.candidate, id)
		}
	}
}

func TestFormatInput(t *testing.T) {
	tests := []struct {
		text     string
		expected string
	}{
		{"", ""},
		{"1", "1"},
		{"123", "123"},
		{"1234", "123-4"},
		{"123456", "123-456"},
		{"1234567", "123-456-7"},
		{"1234567890", "123-456-7890"},
		{"123-456-7890", "123-456-7890"},
		{"123456789012345", "123-456-7890"}, // truncated to first 10 digits
		{"123-456-78901234", "123-456-7890"},
		{"12ab34", "123-4"}, // non-digits are dropped, not grouped
		{"(123) 456-7890", "123-456-7890"},
		{"1234567890abc123", "123-456-7890"},
		{"abc", ""},
	}

	for _, test := range tests {
		formatted, cursor := FormatInput(test.text)
		if formatted != test.expected {
			t.Errorf("FormatInput(%q) = %q, want %q", test.text, formatted, test.expected)
		}
		if cursor != len(formatted) {
			t.Errorf("FormatInput(%q) cursor = %d, want %d", test.text, cursor, len(formatted))
		}

		// formatting must be idempotent
		again, _ := FormatInput(formatted)
		if again != formatted {
			t.Errorf("FormatInput(FormatInput(%q)) = %q, want %q", test.text, again, formatted)
		}
	}
}
