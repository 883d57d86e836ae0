// internal/app/features/acerca/templates.go
package acerca

import (
	"embed"

	"github.com/dalemusser/waffle/pantry/templates"
)

//go:embed templates/*.gohtml
var FS embed.FS

func init() {
	templates.Register(templates.Set{
		Name:     "acerca",
		FS:       FS,
		Patterns: []string{"templates/*.gohtml"},
	})
}
