package errors

import (
	"testing"
)

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "octocat", false},
		{"with hyphen", "WJZ-P", false},
		{"digits", "a1b2", false},
		{"single char", "a", false},
		{"max length", "abcdefghijabcdefghijabcdefghijabcdefghi", false},

		{"empty", "", true},
		{"too long", "abcdefghijabcdefghijabcdefghijabcdefghij", true},
		{"leading hyphen", "-octo", true},
		{"trailing hyphen", "octo-", true},
		{"double hyphen", "oc--to", true},
		{"underscore", "oc_to", true},
		{"path traversal", "../etc", true},
		{"space", "octo cat", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUsername(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateUsername(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidUsername) {
				t.Errorf("ValidateUsername(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidUsername)
			}
		})
	}
}

func TestValidateDateRange(t *testing.T) {
	tests := []struct {
		name     string
		from, to string
		wantErr  bool
	}{
		{"both empty", "", "", false},
		{"only from", "2024-01-01", "", false},
		{"only to", "", "2024-12-31", false},
		{"full year", "2024-01-01", "2024-12-31", false},
		{"same day", "2024-03-05", "2024-03-05", false},

		{"bad from", "2024/01/01", "", true},
		{"bad to", "", "yesterday", true},
		{"reversed", "2024-02-01", "2024-01-01", true},
		{"too long", "2022-01-01", "2024-01-01", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDateRange(tt.from, tt.to)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDateRange(%q, %q) error = %v, wantErr %v", tt.from, tt.to, err, tt.wantErr)
			}
		})
	}
}

func TestValidateLabel(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"username", "octocat", false},
		{"spaces", "my team", false},
		{"unicode", "日本", false},

		{"empty", "", true},
		{"slash", "a/b", true},
		{"backslash", `a\b`, true},
		{"dots", "..", true},
		{"control", "a\x01b", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLabel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateLabel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateURL(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"https://cdn.example.com/textures/", false},
		{"http://localhost:8080/", false},
		{"", true},
		{"ftp://example.com", true},
		{"javascript:alert(1)", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			err := ValidateURL(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateURL(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
