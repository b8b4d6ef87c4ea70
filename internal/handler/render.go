package handler

import (
	"log/slog"
	"net/http"

	"github.com/emshaw/inkwell/internal/service"
	"github.com/emshaw/inkwell/internal/view"
)

// render writes an HTML page. Render failures after the status line are
// logged; there is nothing more to send the client at that point.
func render(rd *view.Renderer, w http.ResponseWriter, status int, page string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := rd.Render(w, page, data); err != nil {
		slog.Error("render page", "page", page, "error", err)
	}
}

// pageBase assembles the fields shared by every page: the viewer, their
// admin status, and any pending flash message.
func pageBase(guard *service.Guard, w http.ResponseWriter, r *http.Request) view.Base {
	user := UserFromContext(r.Context())
	return view.Base{
		User:    user,
		IsAdmin: guard.IsAdmin(user),
		Flash:   popFlash(w, r),
	}
}
