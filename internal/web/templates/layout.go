package templates

import (
	"context"
	"html"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/entrecherche/agent-web/internal/platform/branding"
)

// defaultLang is the document language used when a page carries none.
const defaultLang = "fr-FR"

// PageContext provides shared layout context for pages.
type PageContext struct {
	// Lang is the resolved document locale, e.g. "fr-FR".
	Lang string
	// Loc translates shell strings for the resolved locale.
	Loc Localizer
}

// ComposePageTitle appends the brand suffix to a page title.
func ComposePageTitle(title string) string {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return branding.AppName
	}
	suffix := " | " + branding.AppName
	if strings.HasSuffix(trimmed, suffix) {
		return trimmed
	}
	return trimmed + suffix
}

// PageLayout wraps body content in the full HTML document shell.
func PageLayout(page PageContext, title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		lang := strings.TrimSpace(page.Lang)
		if lang == "" {
			lang = defaultLang
		}
		head := `<!doctype html><html lang="` + html.EscapeString(lang) + `"><head>` +
			`<meta charset="utf-8">` +
			`<meta name="viewport" content="width=device-width, initial-scale=1">` +
			`<meta name="description" content="` + html.EscapeString(T(page.Loc, "web.meta.description")) + `">` +
			`<title>` + html.EscapeString(ComposePageTitle(title)) + `</title>` +
			`<link rel="stylesheet" href="/static/theme.css">` +
			`</head><body>`
		if _, err := io.WriteString(w, head); err != nil {
			return err
		}
		if body != nil {
			if err := body.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</body></html>`)
		return err
	})
}
