package handler_test

import (
	"context"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"testing"

	"github.com/emshaw/inkwell/internal/domain"
	"github.com/emshaw/inkwell/internal/handler"
	"github.com/emshaw/inkwell/internal/repository/sqlite"
	"github.com/emshaw/inkwell/internal/service"
	"github.com/emshaw/inkwell/internal/view"
)

const testSecret = "test-secret-for-handler-tests-0123456789"

type testEnv struct {
	srv  *httptest.Server
	auth *service.AuthService
	blog *service.BlogService
	db   *sqlite.DB
}

// newTestEnv wires the full stack against a throwaway database. User id 1 is
// the administrator, matching the default configuration.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := sqlite.New(dbPath)
	if err != nil {
		t.Fatalf("New DB: %v", err)
	}
	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	renderer, err := view.New()
	if err != nil {
		t.Fatalf("view.New: %v", err)
	}

	// Cost 4 for fast tests; cookies insecure because httptest serves HTTP.
	auth := service.NewAuthService(db.Users(), testSecret, 4)
	blog := service.NewBlogService(db.Posts(), db.Comments())
	guard := service.NewGuard(1)

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, auth, blog, guard, renderer, false)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return &testEnv{srv: srv, auth: auth, blog: blog, db: db}
}

// newClient returns a cookie-carrying client that does not follow redirects,
// so tests can assert on the redirect responses themselves.
func newClient(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("create cookie jar: %v", err)
	}
	return &http.Client{
		Jar: jar,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

func (e *testEnv) register(t *testing.T, name, email, password string) *domain.User {
	t.Helper()
	user, err := e.auth.Register(context.Background(), name, email, password, password)
	if err != nil {
		t.Fatalf("register %s: %v", email, err)
	}
	return user
}

func (e *testEnv) createPost(t *testing.T, author *domain.User, title string) *domain.Post {
	t.Helper()
	post, err := e.blog.CreatePost(context.Background(), author, service.PostFields{
		Title:    title,
		Subtitle: "S",
		Body:     "B",
		ImageURL: "http://x/i.png",
	})
	if err != nil {
		t.Fatalf("create post %s: %v", title, err)
	}
	return post
}

// loginAs logs the client in through the real login route.
func (e *testEnv) loginAs(t *testing.T, client *http.Client, email, password string) {
	t.Helper()
	resp, err := client.PostForm(e.srv.URL+"/login", url.Values{
		"email":    {email},
		"password": {password},
	})
	if err != nil {
		t.Fatalf("POST /login: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("login: expected 303, got %d", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/" {
		t.Fatalf("login: expected redirect to /, got %s", loc)
	}
}
