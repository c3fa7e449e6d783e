package webvtt

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"crlf", "a\r\nb\r\n", "a\nb\n"},
		{"lone cr", "a\rb\r", "a\nb\n"},
		{"mixed terminators", "a\r\nb\rc\n", "a\nb\nc\n"},
		{"nul byte", "a\x00b", "a�b"},
		{"nul and crlf", "a\x00\r\nb", "a�\nb"},
		{"already clean", "a\nb\n", "a\nb\n"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalize(tt.input)
			if got != tt.want {
				t.Errorf("normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	input := "WEBVTT\r\n\r\n00:00:01.000 --> 00:00:02.000\rHello\x00\r\n"
	once := normalize(input)
	twice := normalize(once)
	if once != twice {
		t.Errorf("normalize not idempotent: %q != %q", once, twice)
	}
}
