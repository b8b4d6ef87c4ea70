package service

import (
	"context"
	"fmt"
	"time"

	"github.com/emshaw/inkwell/internal/domain"
)

// PostFields carries the editable fields of a post through create and edit.
type PostFields struct {
	Title    string
	Subtitle string
	Body     string
	ImageURL string
}

// BlogService handles post and comment operations. Authorization is the
// caller's job: handlers run the Guard before invoking the admin-only
// operations, and every mutation takes the acting user explicitly instead of
// reading ambient state.
type BlogService struct {
	posts    domain.PostRepository
	comments domain.CommentRepository
}

// NewBlogService creates a new BlogService.
func NewBlogService(posts domain.PostRepository, comments domain.CommentRepository) *BlogService {
	return &BlogService{posts: posts, comments: comments}
}

// ListPosts returns all posts in creation order.
func (s *BlogService) ListPosts(ctx context.Context) ([]domain.Post, error) {
	return s.posts.List(ctx)
}

// GetPost returns a post by id.
func (s *BlogService) GetPost(ctx context.Context, id int64) (*domain.Post, error) {
	return s.posts.GetByID(ctx, id)
}

// CommentsForPost returns a post's comments with author details resolved.
func (s *BlogService) CommentsForPost(ctx context.Context, postID int64) ([]domain.Comment, error) {
	return s.comments.ListByPost(ctx, postID)
}

// CreatePost creates a post authored by the given user. The publication date
// is fixed here and never rewritten by later edits.
func (s *BlogService) CreatePost(ctx context.Context, author *domain.User, fields PostFields) (*domain.Post, error) {
	if err := validateFields(fields); err != nil {
		return nil, err
	}

	post := &domain.Post{
		AuthorID:    author.ID,
		Title:       fields.Title,
		Subtitle:    fields.Subtitle,
		Body:        fields.Body,
		ImageURL:    fields.ImageURL,
		PublishedOn: time.Now().Format("January 2, 2006"),
	}

	if err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}
	post.AuthorName = author.Name
	return post, nil
}

// UpdatePost overwrites a post's title, subtitle, body, image, and author.
func (s *BlogService) UpdatePost(ctx context.Context, id int64, author *domain.User, fields PostFields) (*domain.Post, error) {
	if err := validateFields(fields); err != nil {
		return nil, err
	}

	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	post.AuthorID = author.ID
	post.Title = fields.Title
	post.Subtitle = fields.Subtitle
	post.Body = fields.Body
	post.ImageURL = fields.ImageURL

	if err := s.posts.Update(ctx, post); err != nil {
		return nil, err
	}
	post.AuthorName = author.Name
	return post, nil
}

// DeletePost removes a post and cascades to its comments, so no comment is
// left referencing a post that no longer exists.
func (s *BlogService) DeletePost(ctx context.Context, id int64) error {
	return s.posts.Delete(ctx, id)
}

// AddComment attaches a comment by the given user to an existing post.
func (s *BlogService) AddComment(ctx context.Context, author *domain.User, postID int64, text string) (*domain.Comment, error) {
	if text == "" {
		return nil, fmt.Errorf("%w: comment text is required", domain.ErrInvalidInput)
	}

	// The post must exist before we write the comment.
	if _, err := s.posts.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	comment := &domain.Comment{
		PostID:   postID,
		AuthorID: author.ID,
		Text:     text,
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}
	comment.AuthorName = author.Name
	comment.AuthorEmail = author.Email
	return comment, nil
}

func validateFields(fields PostFields) error {
	if fields.Title == "" || fields.Subtitle == "" || fields.Body == "" || fields.ImageURL == "" {
		return fmt.Errorf("%w: title, subtitle, body, and image URL are required", domain.ErrInvalidInput)
	}
	return nil
}
