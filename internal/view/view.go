// Package view provides the service's own server-rendered pages: the editor,
// the built-in fallback profile layout, and the not-found page. Authored
// share page designs never pass through here; they are merged and hosted by
// the design and sandbox packages.
package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/microcosm-cc/bluemonday"
	"github.com/russross/blackfriday/v2"
	"github.com/shopspring/decimal"

	"github.com/givebridge/sharepage/internal/placeholder"
)

//go:embed templates/*.html
var templateFS embed.FS

// funcMap provides custom template functions.
var funcMap = template.FuncMap{
	"percentage": func(raised, goal decimal.Decimal) int64 {
		return placeholder.Percentage(raised, goal)
	},
	"barWidth": func(raised, goal decimal.Decimal) string {
		pct := placeholder.Percentage(raised, goal)
		if pct > 100 {
			pct = 100
		}
		if pct < 0 {
			pct = 0
		}
		return fmt.Sprintf("%d%%", pct)
	},
	"money": placeholder.FormatAmount,
	"markdown": func(s string) template.HTML {
		extensions := blackfriday.CommonExtensions | blackfriday.AutoHeadingIDs | blackfriday.Autolink
		renderer := blackfriday.NewHTMLRenderer(blackfriday.HTMLRendererParameters{
			Flags: blackfriday.CommonHTMLFlags,
		})
		unsafe := blackfriday.Run([]byte(s), blackfriday.WithRenderer(renderer), blackfriday.WithExtensions(extensions))
		// Descriptions come from the platform API, not from this service;
		// sanitize before trusting them as HTML.
		p := bluemonday.UGCPolicy()
		safe := p.SanitizeBytes(unsafe)
		return template.HTML(safe)
	},
}

// Templates holds parsed HTML templates.
type Templates struct {
	pages map[string]*template.Template
}

// New parses and returns all templates.
func New() (*Templates, error) {
	pages := make(map[string]*template.Template)

	base, err := template.New("base.html").Funcs(funcMap).ParseFS(templateFS, "templates/base.html")
	if err != nil {
		return nil, fmt.Errorf("parsing base template: %w", err)
	}

	pageNames := []string{"editor.html", "profile.html", "notfound.html"}

	for _, name := range pageNames {
		pageTemplate, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("cloning base for %s: %w", name, err)
		}

		_, err = pageTemplate.ParseFS(templateFS, "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", name, err)
		}

		pages[name] = pageTemplate
	}

	return &Templates{pages: pages}, nil
}

// Render executes the named template with the given data.
func (t *Templates) Render(w io.Writer, name string, data any) error {
	tmpl, ok := t.pages[name]
	if !ok {
		return fmt.Errorf("template %s not found", name)
	}
	return tmpl.ExecuteTemplate(w, "base", data)
}
