package domain

import (
	"context"
	"time"
)

// Comment represents a reader comment on a post. Comments are never edited
// or deleted individually; they disappear only when their post does.
type Comment struct {
	ID        int64
	PostID    int64
	AuthorID  int64
	Text      string
	CreatedAt time.Time

	// Populated on reads that join the author.
	AuthorName  string
	AuthorEmail string
}

// CommentRepository defines persistence operations for comments.
type CommentRepository interface {
	Create(ctx context.Context, comment *Comment) error
	ListByPost(ctx context.Context, postID int64) ([]Comment, error)
}
