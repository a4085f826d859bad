package templates

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/entrecherche/agent-web/internal/platform/branding"
	"golang.org/x/text/message"
)

type shellLocalizer struct{}

func (shellLocalizer) Sprintf(key message.Reference, _ ...any) string {
	if s, ok := key.(string); ok {
		switch s {
		case "web.home.title":
			return "Accueil"
		case "web.meta.description":
			return "Analyse approfondie d'entreprise."
		case "web.footer.notice":
			return "Interface web."
		}
		return s
	}
	return ""
}

func TestComposePageTitleAddsBrandNameSuffix(t *testing.T) {
	got := ComposePageTitle("Accueil")
	want := "Accueil | " + branding.AppName
	if got != want {
		t.Fatalf("ComposePageTitle = %q, want %q", got, want)
	}
}

func TestComposePageTitleSkipsWhenAlreadySuffixed(t *testing.T) {
	got := ComposePageTitle("Accueil | " + branding.AppName)
	want := "Accueil | " + branding.AppName
	if got != want {
		t.Fatalf("ComposePageTitle = %q, want %q", got, want)
	}
}

func TestComposePageTitleFallsBackToBrandName(t *testing.T) {
	if got := ComposePageTitle("  "); got != branding.AppName {
		t.Fatalf("ComposePageTitle = %q, want %q", got, branding.AppName)
	}
}

func TestPageLayoutWrapsBody(t *testing.T) {
	content := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "<main>contenu</main>")
		return err
	})

	var b strings.Builder
	err := PageLayout(PageContext{Lang: "fr-FR", Loc: shellLocalizer{}}, "Accueil", content).Render(context.Background(), &b)
	if err != nil {
		t.Fatalf("PageLayout().Render() = %v", err)
	}
	got := b.String()
	if !strings.HasPrefix(got, "<!doctype html>") {
		t.Fatalf("expected doctype prefix, got %q", got)
	}
	if !strings.Contains(got, `<html lang="fr-FR">`) {
		t.Fatalf("expected lang attribute, got %q", got)
	}
	if !strings.Contains(got, "<title>Accueil | "+branding.AppName+"</title>") {
		t.Fatalf("expected composed title, got %q", got)
	}
	if !strings.Contains(got, "<main>contenu</main>") {
		t.Fatalf("expected body content, got %q", got)
	}
	if !strings.Contains(got, `href="/static/theme.css"`) {
		t.Fatalf("expected stylesheet link, got %q", got)
	}
	if !strings.HasSuffix(got, "</body></html>") {
		t.Fatalf("expected closed document, got %q", got)
	}
}

func TestPageLayoutDefaultsLanguage(t *testing.T) {
	var b strings.Builder
	err := PageLayout(PageContext{Loc: shellLocalizer{}}, "Accueil", nil).Render(context.Background(), &b)
	if err != nil {
		t.Fatalf("PageLayout().Render() = %v", err)
	}
	if !strings.Contains(b.String(), `<html lang="fr-FR">`) {
		t.Fatalf("expected default lang fr-FR, got %q", b.String())
	}
}
