package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/karunakaran31429-maker/blogboard-api/internal/models"
	"github.com/karunakaran31429-maker/blogboard-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrMissingPostFields = errors.New("title, body and user_id are required")
	ErrAuthorNotFound    = errors.New("user not found")
	ErrPostNotFound      = errors.New("post not found")
	ErrNotPostOwner      = errors.New("permission denied")
	ErrDeleteFailed      = errors.New("failed to delete")
)

// PostService handles post business logic
type PostService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
}

// NewPostService creates a new PostService
func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository) *PostService {
	return &PostService{
		postRepo: postRepo,
		userRepo: userRepo,
	}
}

// CreatePostInput represents input for creating a post
type CreatePostInput struct {
	Title  string
	Body   string
	UserID uint64
}

// UpdatePostInput represents input for partially updating a post.
// Nil fields keep their stored value.
type UpdatePostInput struct {
	Title *string
	Body  *string
}

// Create persists a new post owned by an existing user.
func (s *PostService) Create(input CreatePostInput) (*models.Post, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" || input.Body == "" || input.UserID == 0 {
		return nil, ErrMissingPostFields
	}

	if _, err := s.userRepo.FindByID(input.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	post := &models.Post{
		Title:  title,
		Body:   input.Body,
		UserID: input.UserID,
	}

	if err := s.postRepo.Create(post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	// Reload with the author so responses can resolve the username
	created, err := s.postRepo.FindByID(post.ID, "Author")
	if err != nil {
		return nil, fmt.Errorf("failed to load created post: %w", err)
	}

	return created, nil
}

// List returns all live posts.
func (s *PostService) List() ([]models.Post, error) {
	posts, err := s.postRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, nil
}

// ListByUsername returns all posts owned by the named user.
func (s *PostService) ListByUsername(username string) ([]models.Post, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	posts, err := s.postRepo.ListByUserID(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, nil
}

// Update applies the supplied fields to a post after checking ownership.
// The owner and creation timestamp are never modified.
func (s *PostService) Update(id, callerID uint64, input UpdatePostInput) (*models.Post, error) {
	post, err := s.findOwned(id, callerID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		post.Title = *input.Title
	}
	if input.Body != nil {
		post.Body = *input.Body
	}

	if err := s.postRepo.Update(post); err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	return post, nil
}

// Delete removes a post after checking ownership.
func (s *PostService) Delete(id, callerID uint64) error {
	if _, err := s.findOwned(id, callerID); err != nil {
		return err
	}

	if err := s.postRepo.Delete(id); err != nil {
		return fmt.Errorf("%w: %v", ErrDeleteFailed, err)
	}

	return nil
}

func (s *PostService) findOwned(id, callerID uint64) (*models.Post, error) {
	post, err := s.postRepo.FindByID(id, "Author")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to find post: %w", err)
	}

	if post.UserID != callerID {
		return nil, ErrNotPostOwner
	}

	return post, nil
}
