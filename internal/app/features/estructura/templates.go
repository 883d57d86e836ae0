// internal/app/features/estructura/templates.go
package estructura

import (
	"embed"

	"github.com/dalemusser/waffle/pantry/templates"
)

//go:embed templates/*.gohtml
var FS embed.FS

func init() {
	templates.Register(templates.Set{
		Name:     "estructura",
		FS:       FS,
		Patterns: []string{"templates/*.gohtml"},
	})
}
