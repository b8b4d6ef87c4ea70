package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/emshaw/inkwell/internal/domain"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Base carries the fields every page needs: the viewer (nil when
// anonymous), whether they are the administrator, and a one-shot flash
// message.
type Base struct {
	User    *domain.User
	IsAdmin bool
	Flash   string
}

// Renderer renders the embedded HTML pages. Each page template is parsed
// together with the shared layout so pages cannot collide with each other.
type Renderer struct {
	pages map[string]*template.Template
}

var pageNames = []string{
	"index.html",
	"post.html",
	"register.html",
	"login.html",
	"make-post.html",
	"about.html",
	"contact.html",
}

// New parses all embedded templates.
func New() (*Renderer, error) {
	funcs := template.FuncMap{
		"markdown": Markdown,
		"gravatar": GravatarURL,
	}

	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		tmpl, err := template.New("layout.html").Funcs(funcs).ParseFS(templatesFS,
			"templates/layout.html", "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		pages[name] = tmpl
	}

	return &Renderer{pages: pages}, nil
}

// Render writes the named page with the given data.
func (r *Renderer) Render(w io.Writer, name string, data any) error {
	tmpl, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown template %q", name)
	}
	return tmpl.ExecuteTemplate(w, "layout.html", data)
}
