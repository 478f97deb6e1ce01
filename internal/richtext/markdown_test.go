package richtext

import (
	"strings"
	"testing"
)

func TestMarkdown(t *testing.T) {

	tests := []struct {
		name     string
		text     string
		contains []string
		excludes []string
	}{
		{
			name:     "hard wraps",
			text:     "first\nsecond",
			contains: []string{"first<br", "second"},
		},
		{
			name:     "emphasis and links",
			text:     "**bold** and [docs](https://example.com)",
			contains: []string{"<strong>bold</strong>", `href="https://example.com"`},
		},
		{
			name:     "raw html is dropped",
			text:     "hi <script>alert(1)</script>",
			excludes: []string{"<script>", "alert(1)</script>"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := string(Markdown(tt.text))

			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("got %q, want it to contain %q", got, want)
				}
			}

			for _, bad := range tt.excludes {
				if strings.Contains(got, bad) {
					t.Errorf("got %q, want it without %q", got, bad)
				}
			}
		})
	}
}

func TestMarkdownEmpty(t *testing.T) {
	if got := Markdown("  \n "); got != "" {
		t.Errorf("got %q, want empty", got)
	}
}

func TestInline(t *testing.T) {

	tests := []struct {
		name string
		text string
		want string
	}{
		{"plain", "Build faster", "Build faster"},
		{"newline", "Build\nfaster", "Build<br>faster"},
		{"windows newline", "Build\r\nfaster", "Build<br>faster"},
		{"markup stripped", "<b>Build</b> faster", "Build faster"},
		{"escaped", "Tom & Jerry", "Tom &amp; Jerry"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := string(Inline(tt.text)); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
