package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/karunakaran31429-maker/blogboard-api/internal/dto"
	apierrors "github.com/karunakaran31429-maker/blogboard-api/internal/errors"
	"github.com/karunakaran31429-maker/blogboard-api/internal/services"
)

// PostHandler coordinates post-related HTTP handlers.
type PostHandler struct {
	postService *services.PostService
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(postService *services.PostService) *PostHandler {
	return &PostHandler{
		postService: postService,
	}
}

// CreatePost creates a new post owned by the supplied user.
func (h *PostHandler) CreatePost(c *gin.Context) {
	type CreatePostRequest struct {
		Title  string `json:"title" binding:"required"`
		Body   string `json:"body" binding:"required"`
		UserID uint64 `json:"user_id" binding:"required"`
	}

	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "title, body, user_id required")
		return
	}

	post, err := h.postService.Create(services.CreatePostInput{
		Title:  req.Title,
		Body:   req.Body,
		UserID: req.UserID,
	})
	if err != nil {
		respondPostError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToPostDTO(*post))
}

// ListPosts returns all posts.
func (h *PostHandler) ListPosts(c *gin.Context) {
	posts, err := h.postService.List()
	if err != nil {
		respondPostError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPostDTOs(posts))
}

// ListUserPosts returns all posts owned by the named user.
func (h *PostHandler) ListUserPosts(c *gin.Context) {
	posts, err := h.postService.ListByUsername(c.Param("username"))
	if err != nil {
		respondPostError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPostDTOs(posts))
}

// UpdatePost partially updates a post. Omitted fields keep their value.
func (h *PostHandler) UpdatePost(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	type UpdatePostRequest struct {
		UserID uint64  `json:"user_id" binding:"required"`
		Title  *string `json:"title"`
		Body   *string `json:"body"`
	}

	var req UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	post, err := h.postService.Update(id, req.UserID, services.UpdatePostInput{
		Title: req.Title,
		Body:  req.Body,
	})
	if err != nil {
		respondPostError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPostDTO(*post))
}

// DeletePost removes a post owned by the supplied user.
func (h *PostHandler) DeletePost(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	type DeletePostRequest struct {
		UserID uint64 `json:"user_id" binding:"required"`
	}

	var req DeletePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.postService.Delete(id, req.UserID); err != nil {
		respondPostError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Post deleted",
	})
}

func parseID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid id")
		return 0, false
	}
	return id, true
}

func respondPostError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrMissingPostFields):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrNotPostOwner):
		apierrors.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrPostNotFound),
		errors.Is(err, services.ErrAuthorNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrDeleteFailed):
		apierrors.InternalError(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
