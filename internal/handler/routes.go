package handler

import (
	"net/http"

	"github.com/emshaw/inkwell/internal/service"
	"github.com/emshaw/inkwell/internal/view"
)

// RegisterRoutes sets up all HTTP routes on the given mux. The admin routes
// are wrapped in the authorization gate so the protected handlers never run
// for anyone but the designated administrator.
func RegisterRoutes(mux *http.ServeMux, auth *service.AuthService, blog *service.BlogService, guard *service.Guard, renderer *view.Renderer, cookieSecure bool) {
	authHandler := NewAuthHandler(auth, guard, renderer, cookieSecure)
	postHandler := NewPostHandler(blog, guard, renderer)
	pageHandler := NewPageHandler(guard, renderer)

	public := func(next http.HandlerFunc) http.Handler {
		return WithUser(auth, next)
	}
	admin := func(next http.HandlerFunc) http.Handler {
		return WithUser(auth, RequireAdmin(guard, next))
	}

	mux.HandleFunc("GET /healthz", HandleHealthz)

	mux.Handle("GET /{$}", public(postHandler.HandleHome))
	mux.Handle("GET /about", public(pageHandler.HandleAbout))
	mux.Handle("GET /contact", public(pageHandler.HandleContact))

	mux.Handle("GET /register", public(authHandler.HandleRegisterPage))
	mux.Handle("POST /register", public(authHandler.HandleRegister))
	mux.Handle("GET /login", public(authHandler.HandleLoginPage))
	mux.Handle("POST /login", public(authHandler.HandleLogin))
	mux.Handle("GET /logout", public(authHandler.HandleLogout))

	mux.Handle("GET /post/{id}", public(postHandler.HandleShowPost))
	mux.Handle("POST /post/{id}", public(postHandler.HandleAddComment))

	mux.Handle("GET /new-post", admin(postHandler.HandleNewPost))
	mux.Handle("POST /new-post", admin(postHandler.HandleCreatePost))
	mux.Handle("GET /edit-post/{id}", admin(postHandler.HandleEditPost))
	mux.Handle("POST /edit-post/{id}", admin(postHandler.HandleUpdatePost))
	mux.Handle("GET /delete/{id}", admin(postHandler.HandleDeletePost))
}
