package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// HeaderProps configures the page header.
type HeaderProps struct {
	// GlassStyle selects a glass effect treatment for the header container.
	// It is accepted from callers but not applied to any visual property.
	GlassStyle string
}

const (
	headerLogoSrc  = "/static/logo.svg"
	headerLogoAlt  = "Agent de recherche d'entreprise"
	headerLogoSize = "80"
	headerTitle    = "Agent de recherche d'entreprise"
	headerSubtitle = "Menez une analyse approfondie de l'entreprise"
)

// Header renders the static page header: logo, title, and subtitle.
//
// The output is identical for every input; HeaderProps.GlassStyle is
// reserved for the glass treatment that ships with the theme stylesheet.
// TODO: map GlassStyle onto the header container class once theme.css
// defines the glass variants.
func Header(props HeaderProps) templ.Component {
	_ = props.GlassStyle
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w,
			`<header class="app-header">`+
				`<img src="`+headerLogoSrc+`" alt="`+headerLogoAlt+`" width="`+headerLogoSize+`" height="`+headerLogoSize+`">`+
				`<h1>`+headerTitle+`</h1>`+
				`<p>`+headerSubtitle+`</p>`+
				`</header>`)
		return err
	})
}
