package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/emshaw/inkwell/internal/domain"
	"github.com/emshaw/inkwell/internal/service"
	"github.com/emshaw/inkwell/internal/view"
)

// AuthHandler handles registration, login, and logout.
type AuthHandler struct {
	auth         *service.AuthService
	guard        *service.Guard
	renderer     *view.Renderer
	cookieSecure bool
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth *service.AuthService, guard *service.Guard, renderer *view.Renderer, cookieSecure bool) *AuthHandler {
	return &AuthHandler{auth: auth, guard: guard, renderer: renderer, cookieSecure: cookieSecure}
}

type registerPage struct {
	view.Base
	Form   RegisterForm
	Errors map[string]string
}

type loginPage struct {
	view.Base
	Form   LoginForm
	Errors map[string]string
}

// HandleRegisterPage renders the sign-up form.
// GET /register
func (h *AuthHandler) HandleRegisterPage(w http.ResponseWriter, r *http.Request) {
	render(h.renderer, w, http.StatusOK, "register.html", registerPage{
		Base: pageBase(h.guard, w, r),
	})
}

// HandleRegister processes the sign-up form. On success the new user is
// logged in immediately and sent home.
// POST /register
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	form := parseRegisterForm(r)

	if errs := checkForm(form); errs != nil {
		render(h.renderer, w, http.StatusUnprocessableEntity, "register.html", registerPage{
			Base:   pageBase(h.guard, w, r),
			Form:   form,
			Errors: errs,
		})
		return
	}

	user, err := h.auth.Register(r.Context(), form.Name, form.Email, form.Password, form.ConfirmPassword)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateEmail):
			render(h.renderer, w, http.StatusUnprocessableEntity, "register.html", registerPage{
				Base:   pageBase(h.guard, w, r),
				Form:   form,
				Errors: map[string]string{"Email": "An account with that email already exists."},
			})
		case errors.Is(err, domain.ErrInvalidInput):
			render(h.renderer, w, http.StatusUnprocessableEntity, "register.html", registerPage{
				Base:   pageBase(h.guard, w, r),
				Form:   form,
				Errors: map[string]string{"": err.Error()},
			})
		default:
			slog.Error("register user", "error", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		}
		return
	}

	token, err := h.auth.TokenFor(user)
	if err != nil {
		slog.Error("issue session after register", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	h.setSession(w, token)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// HandleLoginPage renders the log-in form.
// GET /login
func (h *AuthHandler) HandleLoginPage(w http.ResponseWriter, r *http.Request) {
	render(h.renderer, w, http.StatusOK, "login.html", loginPage{
		Base: pageBase(h.guard, w, r),
	})
}

// HandleLogin processes the log-in form. A bad email and a bad password get
// the same flash so accounts cannot be enumerated.
// POST /login
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	form := parseLoginForm(r)

	if errs := checkForm(form); errs != nil {
		render(h.renderer, w, http.StatusUnprocessableEntity, "login.html", loginPage{
			Base:   pageBase(h.guard, w, r),
			Form:   form,
			Errors: errs,
		})
		return
	}

	token, err := h.auth.Login(r.Context(), form.Email, form.Password)
	if err != nil {
		if errors.Is(err, domain.ErrBadCredential) {
			setFlash(w, "User does not exist or Password Incorrect")
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		slog.Error("login user", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	h.setSession(w, token)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// HandleLogout clears the session and returns home.
// GET /logout
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// setSession stores the token in a browser-session cookie; it expires when
// the browser closes, and the token itself carries a server-side backstop.
func (h *AuthHandler) setSession(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}
