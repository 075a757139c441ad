// Package web renders the HTML pages of the site: month calendar, day
// detail, and the weekly schedule grid.
package web

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"

	log "github.com/sirupsen/logrus"
)

//go:embed templates
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// StaticFS exposes the embedded static assets rooted at their directory.
func StaticFS() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

func newTemplate(name string) *template.Template {
	funcMap := template.FuncMap{
		"times": func(n int) []int {
			out := make([]int, n)
			for i := range out {
				out[i] = i
			}
			return out
		},
	}
	t := template.New("empty").Funcs(funcMap)
	return template.Must(t.ParseFS(templateFS, "templates/"+name, "templates/base.html"))
}

func render(w http.ResponseWriter, t *template.Template, body any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := t.ExecuteTemplate(w, "base.html", body); err != nil {
		log.Errorf("failed to render page: %v", err)
	}
}
