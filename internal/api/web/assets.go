package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path/filepath"
)

//go:embed templates/*.html
var embeddedTemplates embed.FS

//go:embed static
var embeddedStatic embed.FS

// LoadTemplates parses the page templates. An empty dir selects the templates
// compiled into the binary; otherwise every *.html file in dir is parsed.
func LoadTemplates(dir string) (*template.Template, error) {
	var (
		tmpl *template.Template
		err  error
	)

	if dir == "" {
		tmpl, err = template.ParseFS(embeddedTemplates, "templates/*.html")
	} else {
		tmpl, err = template.ParseGlob(filepath.Join(dir, "*.html"))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	if tmpl.Lookup(HomeTemplate) == nil {
		return nil, fmt.Errorf("template %s not found", HomeTemplate)
	}

	return tmpl, nil
}

// StaticFS returns the embedded static assets rooted at the static directory.
func StaticFS() http.FileSystem {
	sub, err := fs.Sub(embeddedStatic, "static")
	if err != nil {
		panic("failed to create embedded static filesystem: " + err.Error())
	}
	return http.FS(sub)
}
