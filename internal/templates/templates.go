// Package templates embeds the page templates so the binary and the
// tests render the same markup regardless of working directory.
package templates

import (
	"embed"
	"html/template"
)

//go:embed *.html
var files embed.FS

// Load parses all embedded templates. Templates are addressed by file
// name (login.html, register.html, dashboard.html).
func Load() *template.Template {
	return template.Must(template.ParseFS(files, "*.html"))
}
