package style

import (
	"github.com/charmbracelet/glamour"
)

// RenderMarkdown renders a markdown document for terminal display
// using glamour's auto-detected style. On renderer failure the raw
// markdown is returned so the document is never lost to a styling
// problem.
func RenderMarkdown(content string, width int) string {
	if width <= 0 {
		width = 80
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return content
	}
	out, err := r.Render(content)
	if err != nil {
		return content
	}
	return out
}
