package cli

import "testing"

func TestDeriveOutputPath(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"captions.vtt", "captions.srt"},
		{"dir/captions.vtt", "dir/captions.srt"},
		{"captions.en.vtt", "captions.en.srt"},
		{"captions", "captions.srt"},
	}

	for _, tt := range tests {
		if got := deriveOutputPath(tt.input); got != tt.want {
			t.Errorf("deriveOutputPath(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
