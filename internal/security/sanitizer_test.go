package security

import (
	"strings"
	"testing"

	"clearview-web/internal/domain"
)

func TestEscapeHTML_SpecialCharacters(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"ampersand", "a & b", "a &amp; b"},
		{"angle brackets", "<script>", "&lt;script&gt;"},
		{"double quote", `say "hi"`, "say &quot;hi&quot;"},
		{"single quote", "it's", "it&#x27;s"},
		{"slash", "a/b", "a&#x2F;b"},
		{"empty", "", ""},
		{"plain text", "hello world", "hello world"},
		{"unicode untouched", "héllo wörld", "héllo wörld"},
		{
			"script injection",
			`<img src=x onerror="alert('xss')">`,
			"&lt;img src=x onerror=&quot;alert(&#x27;xss&#x27;)&quot;&gt;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EscapeHTML(tt.input); got != tt.want {
				t.Errorf("EscapeHTML(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestEscapeHTML_SinglePass(t *testing.T) {
	// A single left-to-right pass must not re-escape the ampersands of
	// entities it produced itself.
	got := EscapeHTML("<&>")
	want := "&lt;&amp;&gt;"
	if got != want {
		t.Errorf("EscapeHTML(%q) = %q, want %q", "<&>", got, want)
	}
}

func TestEscapeHTML_IdempotentOnPlainText(t *testing.T) {
	input := "just some plain text 123"
	if EscapeHTML(EscapeHTML(input)) != EscapeHTML(input) {
		t.Error("EscapeHTML should be idempotent on text with no special characters")
	}
}

func TestEscapeHTML_DoubleEscapeDiffers(t *testing.T) {
	// Applying the escape twice to input containing & must change the
	// result again: the pass is not idempotent on its own output.
	input := "a & b"
	once := EscapeHTML(input)
	twice := EscapeHTML(once)
	if once == twice {
		t.Errorf("EscapeHTML(EscapeHTML(%q)) = %q, expected it to differ from %q", input, twice, once)
	}
	if !strings.Contains(twice, "&amp;amp;") {
		t.Errorf("double escape = %q, want it to contain &amp;amp;", twice)
	}
}

func TestSanitizeSubmission(t *testing.T) {
	sub := domain.ContactSubmission{
		Name:    "Jane <Admin>",
		Email:   "jane@example.com",
		Phone:   "+1 555 0100",
		Company: "A&B Corp",
		Service: "Design/Build",
		Message: "hello \"world\"",
	}

	got := SanitizeSubmission(sub)

	if got.Name != "Jane &lt;Admin&gt;" {
		t.Errorf("Name = %q", got.Name)
	}
	if got.Email != "jane@example.com" {
		t.Errorf("Email = %q", got.Email)
	}
	if got.Company != "A&amp;B Corp" {
		t.Errorf("Company = %q", got.Company)
	}
	if got.Service != "Design&#x2F;Build" {
		t.Errorf("Service = %q", got.Service)
	}
	if got.Message != "hello &quot;world&quot;" {
		t.Errorf("Message = %q", got.Message)
	}
}
