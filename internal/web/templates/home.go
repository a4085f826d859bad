package templates

import (
	"context"
	"html"
	"io"

	"github.com/a-h/templ"
)

// HomePage renders the landing page hosting the application header.
func HomePage(page PageContext) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := Header(HeaderProps{}).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w,
			`<footer class="app-footer"><p>`+
				html.EscapeString(T(page.Loc, "web.footer.notice"))+
				`</p></footer>`)
		return err
	})
	return PageLayout(page, T(page.Loc, "web.home.title"), body)
}
