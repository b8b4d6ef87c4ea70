package handler

import (
	"net/http"

	"github.com/emshaw/inkwell/internal/service"
	"github.com/emshaw/inkwell/internal/view"
)

// PageHandler serves the static about and contact pages.
type PageHandler struct {
	guard    *service.Guard
	renderer *view.Renderer
}

// NewPageHandler creates a new PageHandler.
func NewPageHandler(guard *service.Guard, renderer *view.Renderer) *PageHandler {
	return &PageHandler{guard: guard, renderer: renderer}
}

type staticPage struct {
	view.Base
}

// HandleAbout renders the about page.
// GET /about
func (h *PageHandler) HandleAbout(w http.ResponseWriter, r *http.Request) {
	render(h.renderer, w, http.StatusOK, "about.html", staticPage{Base: pageBase(h.guard, w, r)})
}

// HandleContact renders the contact page.
// GET /contact
func (h *PageHandler) HandleContact(w http.ResponseWriter, r *http.Request) {
	render(h.renderer, w, http.StatusOK, "contact.html", staticPage{Base: pageBase(h.guard, w, r)})
}
