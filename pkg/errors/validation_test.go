package errors

import (
	"strings"
	"testing"
)

func TestValidateID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "sidebar", false},
		{"with dash", "left-pane", false},
		{"with underscore", "left_pane", false},
		{"with dot", "pane.1", false},
		{"uuid", "0b8f6c2e-5d1a-4c47-9a0e-3f2b1c9d8e7a", false},
		{"digits first", "1st", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", MaxIDLength+1), true},
		{"path traversal", "a..b", true},
		{"slash", "a/b", true},
		{"backslash", "a\\b", true},
		{"null byte", "a\x00b", true},
		{"newline", "a\nb", true},
		{"space", "a b", true},
		{"leading dot", ".hidden", true},
		{"leading dash", "-flag", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateID("box", tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateID(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidArgument) {
				t.Errorf("ValidateID(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidArgument)
			}
		})
	}
}
