package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/emshaw/inkwell/internal/domain"
	"github.com/emshaw/inkwell/internal/service"
	"github.com/emshaw/inkwell/internal/view"
)

// PostHandler handles the post pages and the admin management routes.
type PostHandler struct {
	blog     *service.BlogService
	guard    *service.Guard
	renderer *view.Renderer
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(blog *service.BlogService, guard *service.Guard, renderer *view.Renderer) *PostHandler {
	return &PostHandler{blog: blog, guard: guard, renderer: renderer}
}

type indexPage struct {
	view.Base
	Posts []domain.Post
}

type postPage struct {
	view.Base
	Post     *domain.Post
	Comments []domain.Comment
	Errors   map[string]string
}

type makePostPage struct {
	view.Base
	Heading string
	Action  string
	Form    PostForm
	Errors  map[string]string
}

// HandleHome renders all posts.
// GET /
func (h *PostHandler) HandleHome(w http.ResponseWriter, r *http.Request) {
	posts, err := h.blog.ListPosts(r.Context())
	if err != nil {
		slog.Error("list posts", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	render(h.renderer, w, http.StatusOK, "index.html", indexPage{
		Base:  pageBase(h.guard, w, r),
		Posts: posts,
	})
}

// HandleShowPost renders a post with its comments and the comment form.
// GET /post/{id}
func (h *PostHandler) HandleShowPost(w http.ResponseWriter, r *http.Request) {
	post, ok := h.loadPost(w, r)
	if !ok {
		return
	}
	h.renderPost(w, r, http.StatusOK, post, nil)
}

// HandleAddComment appends a comment to a post. Anonymous visitors are sent
// to the login page without touching the store.
// POST /post/{id}
func (h *PostHandler) HandleAddComment(w http.ResponseWriter, r *http.Request) {
	post, ok := h.loadPost(w, r)
	if !ok {
		return
	}

	user := UserFromContext(r.Context())
	if err := h.guard.RequireAuthenticated(user); err != nil {
		setFlash(w, "Please Login before commenting.")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	form := parseCommentForm(r)
	if errs := checkForm(form); errs != nil {
		h.renderPost(w, r, http.StatusUnprocessableEntity, post, errs)
		return
	}

	if _, err := h.blog.AddComment(r.Context(), user, post.ID, form.Text); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			http.Error(w, "Not Found", http.StatusNotFound)
			return
		}
		slog.Error("add comment", "post_id", post.ID, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/post/"+strconv.FormatInt(post.ID, 10), http.StatusSeeOther)
}

// HandleNewPost renders the empty post form.
// GET /new-post (admin only)
func (h *PostHandler) HandleNewPost(w http.ResponseWriter, r *http.Request) {
	render(h.renderer, w, http.StatusOK, "make-post.html", makePostPage{
		Base:    pageBase(h.guard, w, r),
		Heading: "New Post",
		Action:  "/new-post",
	})
}

// HandleCreatePost creates a post authored by the administrator.
// POST /new-post (admin only)
func (h *PostHandler) HandleCreatePost(w http.ResponseWriter, r *http.Request) {
	form := parsePostForm(r)
	page := makePostPage{
		Base:    pageBase(h.guard, w, r),
		Heading: "New Post",
		Action:  "/new-post",
		Form:    form,
	}

	if errs := checkForm(form); errs != nil {
		page.Errors = errs
		render(h.renderer, w, http.StatusUnprocessableEntity, "make-post.html", page)
		return
	}

	user := UserFromContext(r.Context())
	_, err := h.blog.CreatePost(r.Context(), user, postFields(form))
	if err != nil {
		h.renderPostFormError(w, r, page, err, "create post")
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// HandleEditPost renders the post form pre-filled with the existing fields.
// GET /edit-post/{id} (admin only)
func (h *PostHandler) HandleEditPost(w http.ResponseWriter, r *http.Request) {
	post, ok := h.loadPost(w, r)
	if !ok {
		return
	}

	render(h.renderer, w, http.StatusOK, "make-post.html", makePostPage{
		Base:    pageBase(h.guard, w, r),
		Heading: "Edit Post",
		Action:  "/edit-post/" + strconv.FormatInt(post.ID, 10),
		Form: PostForm{
			Title:    post.Title,
			Subtitle: post.Subtitle,
			ImageURL: post.ImageURL,
			Body:     post.Body,
		},
	})
}

// HandleUpdatePost overwrites every editable field of the post.
// POST /edit-post/{id} (admin only)
func (h *PostHandler) HandleUpdatePost(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	form := parsePostForm(r)
	page := makePostPage{
		Base:    pageBase(h.guard, w, r),
		Heading: "Edit Post",
		Action:  "/edit-post/" + strconv.FormatInt(id, 10),
		Form:    form,
	}

	if errs := checkForm(form); errs != nil {
		page.Errors = errs
		render(h.renderer, w, http.StatusUnprocessableEntity, "make-post.html", page)
		return
	}

	user := UserFromContext(r.Context())
	_, err = h.blog.UpdatePost(r.Context(), id, user, postFields(form))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			http.Error(w, "Not Found", http.StatusNotFound)
			return
		}
		h.renderPostFormError(w, r, page, err, "update post")
		return
	}

	http.Redirect(w, r, "/post/"+strconv.FormatInt(id, 10), http.StatusSeeOther)
}

// HandleDeletePost removes a post and its comments.
// GET /delete/{id} (admin only)
func (h *PostHandler) HandleDeletePost(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	if err := h.blog.DeletePost(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			http.Error(w, "Not Found", http.StatusNotFound)
			return
		}
		slog.Error("delete post", "post_id", id, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func postFields(form PostForm) service.PostFields {
	return service.PostFields{
		Title:    form.Title,
		Subtitle: form.Subtitle,
		Body:     form.Body,
		ImageURL: form.ImageURL,
	}
}

func (h *PostHandler) loadPost(w http.ResponseWriter, r *http.Request) (*domain.Post, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return nil, false
	}

	post, err := h.blog.GetPost(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			http.Error(w, "Not Found", http.StatusNotFound)
			return nil, false
		}
		slog.Error("get post", "post_id", id, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return nil, false
	}
	return post, true
}

func (h *PostHandler) renderPost(w http.ResponseWriter, r *http.Request, status int, post *domain.Post, errs map[string]string) {
	comments, err := h.blog.CommentsForPost(r.Context(), post.ID)
	if err != nil {
		slog.Error("list comments", "post_id", post.ID, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	render(h.renderer, w, status, "post.html", postPage{
		Base:     pageBase(h.guard, w, r),
		Post:     post,
		Comments: comments,
		Errors:   errs,
	})
}

func (h *PostHandler) renderPostFormError(w http.ResponseWriter, r *http.Request, page makePostPage, err error, op string) {
	switch {
	case errors.Is(err, domain.ErrDuplicateTitle):
		page.Errors = map[string]string{"Title": "A post with that title already exists."}
		render(h.renderer, w, http.StatusUnprocessableEntity, "make-post.html", page)
	case errors.Is(err, domain.ErrInvalidInput):
		page.Errors = map[string]string{"": err.Error()}
		render(h.renderer, w, http.StatusUnprocessableEntity, "make-post.html", page)
	default:
		slog.Error(op, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
