package normalize

import (
	"reflect"
	"testing"
)

func TestEmail(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"user@example.com", "user@example.com"},
		{"USER@EXAMPLE.COM", "user@example.com"},
		{"  User@Ukim.Edu.MK  ", "user@ukim.edu.mk"},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := Email(tt.input)
			if got != tt.want {
				t.Errorf("Email(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"John Doe", "John Doe"},
		{"  John Doe  ", "John Doe"},
		{"", ""},
		{"UPPERCASE NAME", "UPPERCASE NAME"}, // Name preserves case
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := Name(tt.input)
			if got != tt.want {
				t.Errorf("Name(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestInitials(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Jane Q Public", "JQP"},
		{"madonna", "M"},
		{"  Ana   Marija  Petrova ", "AMP"},
		{"", ""},
		{"   ", ""},
		{"élodie durand", "ÉD"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := Initials(tt.input)
			if got != tt.want {
				t.Errorf("Initials(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSkills(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"Go, MongoDB, Docker", []string{"Go", "MongoDB", "Docker"}},
		{"solo", []string{"solo"}},
		{"a,,b, ,c", []string{"a", "b", "c"}},
		{"", nil},
		{"  ", nil},
		{",,,", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := Skills(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Skills(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
