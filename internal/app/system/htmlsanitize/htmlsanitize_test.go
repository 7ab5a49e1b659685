package htmlsanitize_test

import (
	"strings"
	"testing"

	"github.com/bmitrev/campusfolio/internal/app/system/htmlsanitize"
)

func TestSanitize_Empty(t *testing.T) {
	result := htmlsanitize.Sanitize("")
	if result != "" {
		t.Errorf("expected empty string, got %q", result)
	}
}

func TestSanitize_PlainText(t *testing.T) {
	result := htmlsanitize.Sanitize("Hello, World!")
	if result != "Hello, World!" {
		t.Errorf("expected plain text unchanged, got %q", result)
	}
}

func TestSanitize_TrimsWhitespace(t *testing.T) {
	result := htmlsanitize.Sanitize("  padded bio  ")
	if result != "padded bio" {
		t.Errorf("expected trimmed text, got %q", result)
	}
}

func TestSanitize_RemovesScript(t *testing.T) {
	input := "Hello<script>alert('xss')</script>"
	result := htmlsanitize.Sanitize(input)
	if result != "Hello" {
		t.Errorf("expected script removed, got %q", result)
	}
}

func TestSanitize_RemovesImgOnerror(t *testing.T) {
	input := `before<img src=x onerror="alert(1)">after`
	result := htmlsanitize.Sanitize(input)
	if result != "beforeafter" {
		t.Errorf("expected img tag removed, got %q", result)
	}
}

func TestSanitize_StripsFormattingTags(t *testing.T) {
	input := "<p><strong>Bold</strong> and <em>italic</em></p>"
	result := htmlsanitize.Sanitize(input)
	if result != "Bold and italic" {
		t.Errorf("expected tags stripped but text kept, got %q", result)
	}
}

func TestSanitize_NoAngleBracketsSurvive(t *testing.T) {
	inputs := []string{
		"<script>alert('xss')</script>",
		`<img src=x onerror=alert(1)>`,
		`<a href="javascript:alert(1)">click</a>`,
		"<div><span>nested</span></div>",
		"plain text stays plain",
	}
	for _, input := range inputs {
		result := htmlsanitize.Sanitize(input)
		if strings.ContainsAny(result, "<>") {
			t.Errorf("Sanitize(%q) = %q, contains raw angle brackets", input, result)
		}
	}
}

func TestSanitize_EscapesLooseAngleBrackets(t *testing.T) {
	result := htmlsanitize.Sanitize("1 < 2 and 3 > 2")
	if strings.ContainsAny(result, "<>") {
		t.Errorf("expected loose brackets escaped, got %q", result)
	}
	if !strings.Contains(result, "1") || !strings.Contains(result, "2") {
		t.Errorf("expected text content preserved, got %q", result)
	}
}
