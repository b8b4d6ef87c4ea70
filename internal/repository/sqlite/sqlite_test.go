package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/emshaw/inkwell/internal/domain"
	"github.com/emshaw/inkwell/internal/repository/sqlite"
)

func newTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := sqlite.New(dbPath)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func createTestUser(t *testing.T, db *sqlite.DB, email string) *domain.User {
	t.Helper()
	user := &domain.User{
		Name:         "Test User",
		Email:        email,
		PasswordHash: "hashedpw",
	}
	if err := db.Users().Create(context.Background(), user); err != nil {
		t.Fatalf("create user %s: %v", email, err)
	}
	return user
}

func createTestPost(t *testing.T, db *sqlite.DB, authorID int64, title string) *domain.Post {
	t.Helper()
	post := &domain.Post{
		AuthorID:    authorID,
		Title:       title,
		Subtitle:    "A subtitle",
		Body:        "Some body text.",
		ImageURL:    "https://example.com/image.png",
		PublishedOn: "August 28, 2026",
	}
	if err := db.Posts().Create(context.Background(), post); err != nil {
		t.Fatalf("create post %s: %v", title, err)
	}
	return post
}
