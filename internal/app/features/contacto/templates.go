// internal/app/features/contacto/templates.go
package contacto

import (
	"embed"

	"github.com/dalemusser/waffle/pantry/templates"
)

//go:embed templates/*.gohtml
var FS embed.FS

func init() {
	templates.Register(templates.Set{
		Name:     "contacto",
		FS:       FS,
		Patterns: []string{"templates/*.gohtml"},
	})
}
