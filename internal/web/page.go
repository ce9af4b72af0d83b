package web

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
)

var (
	//go:embed templates/index.html.tmpl
	templates embed.FS

	//go:embed assets
	assets embed.FS
)

func parsePage() (*template.Template, error) {
	return template.ParseFS(templates, "templates/index.html.tmpl")
}

func assetHandler() http.Handler {
	sub, err := fs.Sub(assets, "assets")
	if err != nil {
		panic(err)
	}
	return http.FileServer(http.FS(sub))
}
