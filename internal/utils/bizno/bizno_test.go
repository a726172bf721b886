package bizno

import (
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		number string
		want   bool
	}{
		{
			name:   "Valid number 1248100998",
			number: "1248100998",
			want:   true,
		},
		{
			name:   "Valid number 2208162517",
			number: "2208162517",
			want:   true,
		},
		{
			name:   "Valid number with hyphens",
			number: "124-81-00998",
			want:   true,
		},
		{
			name:   "Valid number 1234567891",
			number: "1234567891",
			want:   true,
		},
		{
			name:   "Invalid number 1234567890",
			number: "1234567890",
			want:   false,
		},
		{
			name:   "Invalid number 1018165296",
			number: "1018165296",
			want:   false,
		},
		{
			name:   "Invalid number 1068186510",
			number: "1068186510",
			want:   false,
		},
		{
			name:   "Empty string",
			number: "",
			want:   false,
		},
		{
			name:   "Too short",
			number: "124810099",
			want:   false,
		},
		{
			name:   "String with letters",
			number: "12481009a8",
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Validate(tt.number); got != tt.want {
				t.Errorf("Validate(%q) = %v, want %v", tt.number, got, tt.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	if got := Normalize(" 124-81-00998 "); got != "1248100998" {
		t.Errorf("Normalize() = %q", got)
	}
}
