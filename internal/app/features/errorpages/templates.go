// internal/app/features/errorpages/templates.go
package errorpages

import (
	"embed"

	"github.com/dalemusser/waffle/pantry/templates"
)

//go:embed templates/*.gohtml
var FS embed.FS

func init() {
	templates.Register(templates.Set{
		Name:     "errorpages",
		FS:       FS,
		Patterns: []string{"templates/*.gohtml"},
	})
}
