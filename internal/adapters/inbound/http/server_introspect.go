package http

import (
	"bytes"
	"embed"
	"html/template"
	"io"
	"net/http"

	"github.com/cleitonmarx/symbiont/depend"
)

// MermaidGraphName names the rendered dependency graph in the container.
const MermaidGraphName = "introspection-graph-mermaid"

//go:embed templates/introspect.gohtml
var templateFS embed.FS

var introspectPage = template.Must(template.ParseFS(templateFS, "templates/introspect.gohtml"))

// introspectHandler serves the dependency graph as an HTML page, or as raw
// Mermaid source with ?format=mermaid.
func introspectHandler(title string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		graph, err := depend.ResolveNamed[string](MermaidGraphName)
		if err != nil {
			http.Error(w, "Failed to resolve dependency graph", http.StatusInternalServerError)
			return
		}

		if r.URL.Query().Get("format") == "mermaid" {
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			_, _ = io.WriteString(w, graph)
			return
		}

		var page bytes.Buffer
		data := struct{ Title, Graph string }{Title: title, Graph: graph}
		if err := introspectPage.Execute(&page, data); err != nil {
			http.Error(w, "Failed to render introspection page", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = page.WriteTo(w)
	}
}
