package domain

import (
	"context"
	"time"
)

// Post represents a blog post. Posts reference their author by id only;
// the object graph carries no back-pointers.
type Post struct {
	ID       int64
	AuthorID int64
	Title    string
	Subtitle string
	Body     string
	ImageURL string
	// PublishedOn is the human-readable publication date, fixed when the
	// post is created and never rewritten by edits.
	PublishedOn string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// AuthorName is populated on reads that join the author; it is not a
	// stored column.
	AuthorName string
}

// PostRepository defines persistence operations for posts.
type PostRepository interface {
	Create(ctx context.Context, post *Post) error
	GetByID(ctx context.Context, id int64) (*Post, error)
	List(ctx context.Context) ([]Post, error)
	Update(ctx context.Context, post *Post) error
	// Delete removes a post and all comments attached to it.
	Delete(ctx context.Context, id int64) error
}
