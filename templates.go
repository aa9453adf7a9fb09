package main

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
)

//go:embed static/*.html
var staticFiles embed.FS

var pages = template.Must(template.ParseFS(staticFiles, "static/*.html"))

type formPage struct {
	Form    formView
	Preview string
	Gated   bool
}

type loginPage struct {
	Error string
}

// renderPage executes a template into a buffer so a failed render never
// leaves a half-written response.
func (s *server) renderPage(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	var buf bytes.Buffer
	if err := pages.ExecuteTemplate(&buf, name, data); err != nil {
		logError(s.requestLogger(r), "handlers", "renderPage", name, nil, err)
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}
