package dto

import (
	"github.com/karunakaran31429-maker/blogboard-api/internal/models"
)

// TimeFormat renders timestamps truncated to the minute, in UTC.
const TimeFormat = "2006-01-02 15:04"

// PostDTO represents a post in API responses
type PostDTO struct {
	ID        uint64 `json:"id"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	Author    string `json:"author"`
	UserID    uint64 `json:"user_id"`
	CreatedAt string `json:"created_at"`
}

// ToPostDTO converts a Post model to PostDTO.
// The Author relation must be preloaded to resolve the username.
func ToPostDTO(post models.Post) PostDTO {
	return PostDTO{
		ID:        post.ID,
		Title:     post.Title,
		Body:      post.Body,
		Author:    post.Author.Username,
		UserID:    post.UserID,
		CreatedAt: post.CreatedAt.UTC().Format(TimeFormat),
	}
}

// ToPostDTOs converts a slice of posts
func ToPostDTOs(posts []models.Post) []PostDTO {
	dtos := make([]PostDTO, len(posts))
	for i, post := range posts {
		dtos[i] = ToPostDTO(post)
	}
	return dtos
}
