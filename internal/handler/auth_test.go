package handler_test

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"
)

func TestRegister_Success_LogsUserIn(t *testing.T) {
	env := newTestEnv(t)
	client := newClient(t)

	resp, err := client.PostForm(env.srv.URL+"/register", url.Values{
		"name":             {"New User"},
		"email":            {"new@example.com"},
		"password":         {"password123"},
		"confirm_password": {"password123"},
	})
	if err != nil {
		t.Fatalf("POST /register: %v", err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/" {
		t.Fatalf("expected redirect to /, got %s", loc)
	}

	var found bool
	for _, c := range resp.Cookies() {
		if c.Name == "session" && c.Value != "" {
			found = true
		}
	}
	if !found {
		t.Fatal("expected session cookie after registration")
	}
}

func TestRegister_ValidationErrors(t *testing.T) {
	env := newTestEnv(t)
	client := newClient(t)

	tests := []struct {
		name string
		form url.Values
	}{
		{"short name", url.Values{"name": {"ab"}, "email": {"a@b.com"}, "password": {"password123"}, "confirm_password": {"password123"}}},
		{"bad email", url.Values{"name": {"alice"}, "email": {"not-an-email"}, "password": {"password123"}, "confirm_password": {"password123"}}},
		{"short password", url.Values{"name": {"alice"}, "email": {"a@b.com"}, "password": {"short"}, "confirm_password": {"short"}}},
		{"mismatched confirm", url.Values{"name": {"alice"}, "email": {"a@b.com"}, "password": {"password123"}, "confirm_password": {"password456"}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := client.PostForm(env.srv.URL+"/register", tc.form)
			if err != nil {
				t.Fatalf("POST /register: %v", err)
			}
			resp.Body.Close()
			if resp.StatusCode != http.StatusUnprocessableEntity {
				t.Fatalf("expected 422, got %d", resp.StatusCode)
			}
		})
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	client := newClient(t)
	env.register(t, "First", "dup@example.com", "password123")

	resp, err := client.PostForm(env.srv.URL+"/register", url.Values{
		"name":             {"Second"},
		"email":            {"dup@example.com"},
		"password":         {"password456"},
		"confirm_password": {"password456"},
	})
	if err != nil {
		t.Fatalf("POST /register: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "already exists") {
		t.Fatal("expected duplicate email message in response")
	}

	// Still exactly one stored account.
	if _, err := env.db.Users().GetByEmail(context.Background(), "dup@example.com"); err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
}

func TestLogin_WrongPassword_GenericFlash(t *testing.T) {
	env := newTestEnv(t)
	client := newClient(t)
	env.register(t, "alice", "a@x.com", "password1")

	resp, err := client.PostForm(env.srv.URL+"/login", url.Values{
		"email":    {"a@x.com"},
		"password": {"wrong123x"},
	})
	if err != nil {
		t.Fatalf("POST /login: %v", err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/login" {
		t.Fatalf("expected redirect back to /login, got %s", loc)
	}

	// The flash on the login page must not reveal which field was wrong.
	resp, err = client.Get(env.srv.URL + "/login")
	if err != nil {
		t.Fatalf("GET /login: %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "User does not exist or Password Incorrect") {
		t.Fatal("expected generic credential flash on login page")
	}
}

func TestLogin_UnknownEmail_SameResponse(t *testing.T) {
	env := newTestEnv(t)
	client := newClient(t)
	env.register(t, "alice", "a@x.com", "password1")

	resp, err := client.PostForm(env.srv.URL+"/login", url.Values{
		"email":    {"nobody@x.com"},
		"password": {"password1"},
	})
	if err != nil {
		t.Fatalf("POST /login: %v", err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusSeeOther || resp.Header.Get("Location") != "/login" {
		t.Fatalf("expected same redirect as wrong password, got %d %s",
			resp.StatusCode, resp.Header.Get("Location"))
	}
}

func TestLogin_Success(t *testing.T) {
	env := newTestEnv(t)
	client := newClient(t)
	env.register(t, "alice", "a@x.com", "password1")

	env.loginAs(t, client, "a@x.com", "password1")

	// The session survives across requests: the home page shows Log Out.
	resp, err := client.Get(env.srv.URL + "/")
	if err != nil {
		t.Fatalf("GET /: %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "Log Out") {
		t.Fatal("expected logged-in navigation after login")
	}
}

func TestLogout_ClearsSession(t *testing.T) {
	env := newTestEnv(t)
	client := newClient(t)
	env.register(t, "alice", "a@x.com", "password1")
	env.loginAs(t, client, "a@x.com", "password1")

	resp, err := client.Get(env.srv.URL + "/logout")
	if err != nil {
		t.Fatalf("GET /logout: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusSeeOther || resp.Header.Get("Location") != "/" {
		t.Fatalf("expected redirect home, got %d %s", resp.StatusCode, resp.Header.Get("Location"))
	}

	resp, err = client.Get(env.srv.URL + "/")
	if err != nil {
		t.Fatalf("GET /: %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "Log In") {
		t.Fatal("expected anonymous navigation after logout")
	}
}
