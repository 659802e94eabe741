package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/karunakaran31429-maker/blogboard-api/internal/dto"
	"github.com/karunakaran31429-maker/blogboard-api/internal/models"
	"github.com/karunakaran31429-maker/blogboard-api/internal/repository"
	"github.com/karunakaran31429-maker/blogboard-api/internal/services"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// PostHandlerTestSuite defines the test suite for PostHandler
type PostHandlerTestSuite struct {
	suite.Suite
	db     *gorm.DB
	router *gin.Engine
}

// SetupTest runs before each test
func (suite *PostHandlerTestSuite) SetupTest() {
	var err error

	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	suite.Require().NoError(err)

	err = suite.db.AutoMigrate(&models.User{}, &models.Post{})
	suite.Require().NoError(err)

	userRepo := repository.NewUserRepository(suite.db)
	postRepo := repository.NewPostRepository(suite.db)
	postService := services.NewPostService(postRepo, userRepo)
	handler := NewPostHandler(postService)

	gin.SetMode(gin.TestMode)

	suite.router = gin.New()
	suite.router.POST("/posts", handler.CreatePost)
	suite.router.GET("/posts", handler.ListPosts)
	suite.router.PUT("/posts/:id", handler.UpdatePost)
	suite.router.DELETE("/posts/:id", handler.DeletePost)
	suite.router.GET("/users/:username/posts", handler.ListUserPosts)
}

// TearDownTest runs after each test
func (suite *PostHandlerTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *PostHandlerTestSuite) createTestUser(username string) *models.User {
	user := &models.User{
		Username:     username,
		PasswordHash: "hashedpassword",
	}
	suite.db.Create(user)
	return user
}

func (suite *PostHandlerTestSuite) createTestPost(title, body string, userID uint64) *models.Post {
	post := &models.Post{
		Title:  title,
		Body:   body,
		UserID: userID,
	}
	suite.db.Create(post)
	return post
}

func (suite *PostHandlerTestSuite) request(method, url string, payload interface{}) *httptest.ResponseRecorder {
	var req *http.Request
	if payload != nil {
		body, err := json.Marshal(payload)
		suite.Require().NoError(err)
		req = httptest.NewRequest(method, url, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, url, nil)
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *PostHandlerTestSuite) TestCreatePost() {
	user := suite.createTestUser("alice")

	w := suite.request(http.MethodPost, "/posts", gin.H{
		"title":   "T",
		"body":    "B",
		"user_id": user.ID,
	})

	suite.Equal(http.StatusCreated, w.Code)

	var response dto.PostDTO
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Equal(uint64(1), response.ID)
	suite.Equal("T", response.Title)
	suite.Equal("B", response.Body)
	suite.Equal("alice", response.Author)
	suite.Equal(user.ID, response.UserID)
	suite.Regexp(regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}$`), response.CreatedAt)
}

func (suite *PostHandlerTestSuite) TestCreatePost_UnknownAuthor() {
	w := suite.request(http.MethodPost, "/posts", gin.H{
		"title":   "T",
		"body":    "B",
		"user_id": 42,
	})

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *PostHandlerTestSuite) TestCreatePost_MissingFields() {
	suite.createTestUser("alice")

	w := suite.request(http.MethodPost, "/posts", gin.H{
		"title":   "T",
		"user_id": 1,
	})

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *PostHandlerTestSuite) TestListPosts() {
	user := suite.createTestUser("alice")
	suite.createTestPost("first", "body one", user.ID)
	suite.createTestPost("second", "body two", user.ID)

	w := suite.request(http.MethodGet, "/posts", nil)

	suite.Equal(http.StatusOK, w.Code)

	var response []dto.PostDTO
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Len(response, 2)
	suite.Equal("first", response[0].Title)
	suite.Equal("alice", response[0].Author)
}

func (suite *PostHandlerTestSuite) TestListUserPosts() {
	alice := suite.createTestUser("alice")
	bob := suite.createTestUser("bob")
	suite.createTestPost("alice post", "body", alice.ID)
	suite.createTestPost("bob post", "body", bob.ID)

	w := suite.request(http.MethodGet, "/users/alice/posts", nil)

	suite.Equal(http.StatusOK, w.Code)

	var response []dto.PostDTO
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Len(response, 1)
	suite.Equal("alice post", response[0].Title)
}

func (suite *PostHandlerTestSuite) TestListUserPosts_UnknownUsername() {
	w := suite.request(http.MethodGet, "/users/ghost/posts", nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *PostHandlerTestSuite) TestUpdatePost_PartialUpdate() {
	user := suite.createTestUser("alice")
	post := suite.createTestPost("T", "B", user.ID)

	w := suite.request(http.MethodPut, "/posts/1", gin.H{
		"user_id": user.ID,
		"title":   "X",
	})

	suite.Equal(http.StatusOK, w.Code)

	var response dto.PostDTO
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Equal("X", response.Title)
	suite.Equal("B", response.Body)
	suite.Equal(user.ID, response.UserID)

	var stored models.Post
	suite.Require().NoError(suite.db.First(&stored, post.ID).Error)
	suite.Equal("X", stored.Title)
	suite.Equal("B", stored.Body)
}

func (suite *PostHandlerTestSuite) TestUpdatePost_WrongOwner() {
	alice := suite.createTestUser("alice")
	suite.createTestUser("bob")
	suite.createTestPost("T", "B", alice.ID)

	w := suite.request(http.MethodPut, "/posts/1", gin.H{
		"user_id": 2,
		"title":   "X",
	})

	suite.Equal(http.StatusForbidden, w.Code)

	var stored models.Post
	suite.Require().NoError(suite.db.First(&stored, 1).Error)
	suite.Equal("T", stored.Title)
}

func (suite *PostHandlerTestSuite) TestUpdatePost_NotFound() {
	user := suite.createTestUser("alice")

	w := suite.request(http.MethodPut, "/posts/99", gin.H{
		"user_id": user.ID,
		"title":   "X",
	})

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *PostHandlerTestSuite) TestDeletePost() {
	user := suite.createTestUser("alice")
	post := suite.createTestPost("T", "B", user.ID)

	w := suite.request(http.MethodDelete, "/posts/1", gin.H{
		"user_id": user.ID,
	})

	suite.Equal(http.StatusOK, w.Code)

	var response map[string]string
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Equal("Post deleted", response["message"])

	// Deleted posts never reappear in lists
	w = suite.request(http.MethodGet, "/posts", nil)
	suite.Equal(http.StatusOK, w.Code)

	var posts []dto.PostDTO
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &posts))
	for _, p := range posts {
		suite.NotEqual(post.ID, p.ID)
	}
	suite.Empty(posts)
}

func (suite *PostHandlerTestSuite) TestDeletePost_WrongOwner() {
	alice := suite.createTestUser("alice")
	suite.createTestUser("bob")
	suite.createTestPost("T", "B", alice.ID)

	w := suite.request(http.MethodDelete, "/posts/1", gin.H{
		"user_id": 2,
	})

	suite.Equal(http.StatusForbidden, w.Code)

	var count int64
	suite.db.Model(&models.Post{}).Count(&count)
	suite.Equal(int64(1), count)
}

func (suite *PostHandlerTestSuite) TestDeletePost_NotFound() {
	user := suite.createTestUser("alice")

	w := suite.request(http.MethodDelete, "/posts/99", gin.H{
		"user_id": user.ID,
	})

	suite.Equal(http.StatusNotFound, w.Code)
}

func TestPostHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(PostHandlerTestSuite))
}
