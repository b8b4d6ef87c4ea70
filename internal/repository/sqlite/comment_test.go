package sqlite_test

import (
	"context"
	"testing"

	"github.com/emshaw/inkwell/internal/domain"
)

func TestCommentRepository_Create(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	author := createTestUser(t, db, "commenter@example.com")
	post := createTestPost(t, db, author.ID, "Commented Post")

	comment := &domain.Comment{
		PostID:   post.ID,
		AuthorID: author.ID,
		Text:     "nice post",
	}
	if err := db.Comments().Create(ctx, comment); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if comment.ID == 0 {
		t.Fatal("expected comment ID to be set after create")
	}
	if comment.CreatedAt.IsZero() {
		t.Fatal("expected CreatedAt to be set")
	}
}

func TestCommentRepository_Create_MissingPost(t *testing.T) {
	db := newTestDB(t)
	author := createTestUser(t, db, "commenter@example.com")

	comment := &domain.Comment{
		PostID:   9999,
		AuthorID: author.ID,
		Text:     "into the void",
	}
	if err := db.Comments().Create(context.Background(), comment); err == nil {
		t.Fatal("expected foreign key violation for missing post")
	}
}

func TestCommentRepository_ListByPost(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	author := createTestUser(t, db, "commenter@example.com")
	post := createTestPost(t, db, author.ID, "Busy Post")
	other := createTestPost(t, db, author.ID, "Quiet Post")

	for _, text := range []string{"first", "second"} {
		c := &domain.Comment{PostID: post.ID, AuthorID: author.ID, Text: text}
		if err := db.Comments().Create(ctx, c); err != nil {
			t.Fatalf("create comment %q: %v", text, err)
		}
	}

	comments, err := db.Comments().ListByPost(ctx, post.ID)
	if err != nil {
		t.Fatalf("ListByPost: %v", err)
	}
	if len(comments) != 2 {
		t.Fatalf("expected 2 comments, got %d", len(comments))
	}
	if comments[0].Text != "first" || comments[1].Text != "second" {
		t.Fatalf("expected insertion order, got %q then %q", comments[0].Text, comments[1].Text)
	}
	if comments[0].AuthorName != author.Name {
		t.Fatalf("expected author name joined, got %q", comments[0].AuthorName)
	}
	if comments[0].AuthorEmail != author.Email {
		t.Fatalf("expected author email joined, got %q", comments[0].AuthorEmail)
	}

	quiet, err := db.Comments().ListByPost(ctx, other.ID)
	if err != nil {
		t.Fatalf("ListByPost quiet: %v", err)
	}
	if len(quiet) != 0 {
		t.Fatalf("expected no comments on quiet post, got %d", len(quiet))
	}
}
