package web

import (
	"bytes"
	"io"
	"log"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/entrecherche/agent-web/internal/platform/i18n/catalog"
	"github.com/entrecherche/agent-web/internal/web/static"
	"github.com/entrecherche/agent-web/internal/web/templates"
)

type handler struct {
	mux       *http.ServeMux
	tracer    trace.Tracer
	matcher   language.Matcher
	supported []string
}

// NewHandler builds the HTTP handler for the web server.
func NewHandler() http.Handler {
	h := &handler{tracer: otel.Tracer("agent-web/web")}
	h.matcher, h.supported = newLanguageMatcher(catalog.Default())

	mux := http.NewServeMux()
	mux.HandleFunc("/", h.handleHome)
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServerFS(static.FS)))
	mux.HandleFunc("/healthz", h.handleHealthz)
	h.mux = mux
	return h
}

// ServeHTTP wraps every request in a server span before dispatching.
func (h *handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), r.Method+" "+r.URL.Path,
		trace.WithSpanKind(trace.SpanKindServer))
	defer span.End()
	h.mux.ServeHTTP(w, r.WithContext(ctx))
}

func (h *handler) handleHome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	lang := h.resolveLanguage(r)
	page := templates.PageContext{Lang: lang, Loc: localizerFor(lang)}

	var buf bytes.Buffer
	if err := templates.HomePage(page).Render(r.Context(), &buf); err != nil {
		log.Printf("render home page: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

func (h *handler) handleHealthz(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, "ok")
}

// resolveLanguage picks a supported locale for the request, preferring the
// Accept-Language header and falling back to the base locale.
func (h *handler) resolveLanguage(r *http.Request) string {
	tags, _, err := language.ParseAcceptLanguage(r.Header.Get("Accept-Language"))
	if err != nil || len(tags) == 0 {
		return catalog.BaseLocale
	}
	_, index, confidence := h.matcher.Match(tags...)
	if confidence == language.No || index < 0 || index >= len(h.supported) {
		return catalog.BaseLocale
	}
	return h.supported[index]
}

// newLanguageMatcher builds a matcher over the bundle's locales with the
// base locale first so it wins ties and absent headers.
func newLanguageMatcher(bundle *catalog.Bundle) (language.Matcher, []string) {
	supported := []string{catalog.BaseLocale}
	tags := []language.Tag{language.MustParse(catalog.BaseLocale)}
	for _, locale := range bundle.Locales() {
		if locale == catalog.BaseLocale {
			continue
		}
		tag, err := language.Parse(locale)
		if err != nil {
			continue
		}
		supported = append(supported, locale)
		tags = append(tags, tag)
	}
	return language.NewMatcher(tags), supported
}

// localizerFor returns a printer bound to the resolved locale. Catalog
// messages are registered at init by the catalog package.
func localizerFor(lang string) templates.Localizer {
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.MustParse(catalog.BaseLocale)
	}
	return message.NewPrinter(tag)
}
