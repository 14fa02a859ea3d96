package statcard

import (
	"embed"
	"html/template"
	"io"
	"strings"
)

//go:embed templates/statcard.gohtml
var templateFS embed.FS

var cardTemplate = template.Must(template.ParseFS(templateFS, "templates/statcard.gohtml"))

// Render writes the card for p to w. The only possible error is one
// returned by w.
func Render(w io.Writer, p Props) error {
	return RenderView(w, Build(p))
}

// RenderView writes an already built view to w.
func RenderView(w io.Writer, v View) error {
	return cardTemplate.ExecuteTemplate(w, "statcard", v)
}

// HTML renders p into a fragment that can be embedded in a page template.
func HTML(p Props) (template.HTML, error) {
	var b strings.Builder
	if err := Render(&b, p); err != nil {
		return "", err
	}
	return template.HTML(b.String()), nil
}
