package core

import "testing"

func TestParseColor(t *testing.T) {
	tests := []struct {
		in       string
		expected Color
	}{
		{"green", ColorGreen},
		{"Blue", ColorBlue},
		{" gold ", ColorGold},
		{"dark_green", ColorDarkGreen},
		{"bright-cyan", ColorBrightCyan},
	}

	for _, tc := range tests {
		got, err := ParseColor(tc.in)
		if err != nil {
			t.Errorf("ParseColor(%q) returned error: %v", tc.in, err)
			continue
		}
		if got != tc.expected {
			t.Errorf("ParseColor(%q) = %v, expected %v", tc.in, got, tc.expected)
		}
	}

	if _, err := ParseColor("chartreuse"); err == nil {
		t.Error("ParseColor should reject unknown names")
	}
}

func TestColorStringRoundTrip(t *testing.T) {
	for c := range colorNames {
		parsed, err := ParseColor(c.String())
		if err != nil || parsed != c {
			t.Errorf("color %d did not survive String/ParseColor: %v, %v", c, parsed, err)
		}
	}
}
