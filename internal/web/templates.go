package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var files embed.FS

// Templates parses the admin pages. All of them render through "base".
func Templates() *template.Template {
	return template.Must(template.ParseFS(files, "templates/*.html"))
}
