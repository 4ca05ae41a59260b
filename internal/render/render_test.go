package render

import (
	"strings"
	"testing"
)

func TestMarkdown(t *testing.T) {
	out, err := Markdown("# Daily plan\n\nDrink **water**.", DefaultOptions())
	if err != nil {
		t.Fatalf("Markdown() error = %v", err)
	}
	if !strings.Contains(out, "Daily plan") {
		t.Errorf("output missing heading text: %q", out)
	}
	if !strings.Contains(out, "water") {
		t.Errorf("output missing body text: %q", out)
	}
}

func TestMarkdownWithWidth(t *testing.T) {
	out, err := MarkdownWithWidth("plain text", 40)
	if err != nil {
		t.Fatalf("MarkdownWithWidth() error = %v", err)
	}
	if strings.HasSuffix(out, "\n") {
		t.Error("trailing newlines were not trimmed")
	}
}

func TestMarkdownZeroWidthFallsBack(t *testing.T) {
	if _, err := Markdown("text", Options{Style: "dark"}); err != nil {
		t.Fatalf("Markdown() with zero width error = %v", err)
	}
}

func TestOptionsBuilders(t *testing.T) {
	opts := DefaultOptions().WithWidth(100).WithStyle("light")
	if opts.Width != 100 || opts.Style != "light" {
		t.Errorf("unexpected options: %+v", opts)
	}
	// Builders copy, not mutate
	if DefaultOptions().Width != 80 {
		t.Error("DefaultOptions was mutated")
	}
}
