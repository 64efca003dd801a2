// Package templates holds the shared page shell for lesson pages and the
// course index. Components are hand-built templ components; the lessons
// themselves emit their fragments as escaped HTML strings.
package templates

import (
	"context"
	"html"
	"io"

	"github.com/a-h/templ"
)

// htmxScript pins the HTMX build every lesson page loads.
const htmxScript = `<script src="https://unpkg.com/htmx.org@1.9.12"></script>`

// Page wraps content in the courseware page shell.
func Page(title string, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, "<!doctype html><html lang=\"en\"><head><meta charset=\"utf-8\"><title>"+html.EscapeString(ComposeTitle(title))+"</title>"+htmxScript+"</head><body class=\"bg-slate-900 text-slate-100\"><header class=\"p-4 border-b border-slate-700\"><a href=\"/\" class=\"font-semibold\">HTMX Essentials</a></header><main id=\"lesson-root\" class=\"p-6\">"); err != nil {
			return err
		}
		if content != nil {
			if err := content.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</main></body></html>")
		return err
	})
}

// Raw adapts a pre-rendered HTML string into a templ component. Callers
// own escaping of any user input interpolated into the markup.
func Raw(markup string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, markup)
		return err
	})
}

// ComposeTitle joins a page title with the site name.
func ComposeTitle(title string) string {
	if title == "" {
		return "HTMX Essentials"
	}
	return title + " · HTMX Essentials"
}
