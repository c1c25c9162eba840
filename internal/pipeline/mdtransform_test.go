package pipeline

import "testing"

func TestNormalizeLineEndings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "unix untouched", input: "a\nb\n", want: "a\nb\n"},
		{name: "windows collapsed", input: "a\r\nb\r\n", want: "a\nb\n"},
		{name: "old mac collapsed", input: "a\rb\r", want: "a\nb\n"},
		{name: "mixed endings", input: "a\r\nb\rc\n", want: "a\nb\nc\n"},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := NormalizeLineEndings(tt.input); got != tt.want {
				t.Errorf("NormalizeLineEndings(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
