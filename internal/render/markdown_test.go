package render

import (
	"strings"
	"testing"
)

func TestMarkdownLite_BoldThenItalicParagraphs(t *testing.T) {
	out := MarkdownLite("**Buy** more\n\n*Sell* less")

	if got := strings.Count(out, "<p>"); got != 2 {
		t.Errorf("expected 2 paragraphs, got %d: %s", got, out)
	}
	if !strings.Contains(out, "<strong>Buy</strong> more") {
		t.Errorf("bold not rendered: %s", out)
	}
	if !strings.Contains(out, "<em>Sell</em> less") {
		t.Errorf("italic not rendered: %s", out)
	}
}

func TestMarkdownLite_BoldBeforeItalic(t *testing.T) {
	out := MarkdownLite("**strong** and *soft*")

	if !strings.Contains(out, "<strong>strong</strong>") {
		t.Errorf("bold should win over italic inside double stars: %s", out)
	}
	if !strings.Contains(out, "<em>soft</em>") {
		t.Errorf("italic still applies to single stars: %s", out)
	}
	if strings.Contains(out, "<em><em>") {
		t.Errorf("nested emphasis artifact: %s", out)
	}
}

func TestMarkdownLite_SingleNewlineIsBreak(t *testing.T) {
	out := MarkdownLite("line one\nline two")

	if !strings.Contains(out, "line one<br>line two") {
		t.Errorf("single newline should render as <br>: %s", out)
	}
	if got := strings.Count(out, "<p>"); got != 1 {
		t.Errorf("expected 1 paragraph, got %d", got)
	}
}

func TestMarkdownLite_EscapesHTML(t *testing.T) {
	out := MarkdownLite("<script>alert(1)</script> **bold**")

	if strings.Contains(out, "<script>") {
		t.Errorf("input HTML must be escaped: %s", out)
	}
	if !strings.Contains(out, "<strong>bold</strong>") {
		t.Errorf("markup substitution should still apply after escaping: %s", out)
	}
}

func TestMarkdownLite_Empty(t *testing.T) {
	if out := MarkdownLite(""); out != "" {
		t.Errorf("empty input should render empty, got %q", out)
	}
}
