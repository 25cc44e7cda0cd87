package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"devconnect/internal/models"
	"devconnect/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockPostRepository is a mock of the PostRepository interface
type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Create(ctx context.Context, post *models.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostRepository) List(ctx context.Context) ([]*models.Post, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*models.Post), args.Error(1)
}

func (m *MockPostRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPostRepository) DeleteByUserID(ctx context.Context, userID uint) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockPostRepository) Like(ctx context.Context, postID, userID uint) (bool, error) {
	args := m.Called(ctx, postID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPostRepository) Unlike(ctx context.Context, postID, userID uint) (bool, error) {
	args := m.Called(ctx, postID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPostRepository) Likes(ctx context.Context, postID uint) ([]models.Like, error) {
	args := m.Called(ctx, postID)
	return args.Get(0).([]models.Like), args.Error(1)
}

func (m *MockPostRepository) AddComment(ctx context.Context, comment *models.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockPostRepository) GetComment(ctx context.Context, postID, commentID uint) (*models.Comment, error) {
	args := m.Called(ctx, postID, commentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockPostRepository) DeleteComment(ctx context.Context, postID, commentID uint) error {
	args := m.Called(ctx, postID, commentID)
	return args.Error(0)
}

func (m *MockPostRepository) Comments(ctx context.Context, postID uint) ([]models.Comment, error) {
	args := m.Called(ctx, postID)
	return args.Get(0).([]models.Comment), args.Error(1)
}

// MockUserRepository is a mock of the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// newPostTestApp wires the post handlers behind a middleware that injects a
// fixed authenticated user.
func newPostTestApp(postRepo *MockPostRepository, userRepo *MockUserRepository, userID uint) *fiber.App {
	app := fiber.New()
	s := &Server{postService: service.NewPostService(postRepo, userRepo)}

	app.Use(func(c *fiber.Ctx) error {
		c.Locals("userID", userID)
		return c.Next()
	})
	app.Post("/api/posts", s.CreatePost)
	app.Get("/api/posts", s.GetPosts)
	app.Put("/api/posts/like/:id", s.LikePost)
	app.Put("/api/posts/unlike/:id", s.UnlikePost)
	app.Post("/api/posts/comment/:id", s.AddComment)
	app.Delete("/api/posts/comment/:id/:commentId", s.DeleteComment)
	app.Get("/api/posts/:id", s.GetPost)
	app.Delete("/api/posts/:id", s.DeletePost)
	return app
}

func decodeErrorBody(t *testing.T, resp *http.Response) models.ErrorResponse {
	t.Helper()
	var body models.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestCreatePostHandler(t *testing.T) {
	postRepo := new(MockPostRepository)
	userRepo := new(MockUserRepository)
	userRepo.On("GetByID", mock.Anything, uint(1)).
		Return(&models.User{ID: 1, Name: "Jess", Avatar: "//a"}, nil)
	postRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	app := newPostTestApp(postRepo, userRepo, 1)

	body, _ := json.Marshal(map[string]string{"text": "first post"})
	req := httptest.NewRequest(http.MethodPost, "/api/posts", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var post models.Post
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&post))
	assert.Equal(t, "first post", post.Text)
	assert.Equal(t, "Jess", post.Name)
}

func TestCreatePostHandlerEmptyText(t *testing.T) {
	app := newPostTestApp(new(MockPostRepository), new(MockUserRepository), 1)

	body, _ := json.Marshal(map[string]string{"text": ""})
	req := httptest.NewRequest(http.MethodPost, "/api/posts", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	errBody := decodeErrorBody(t, resp)
	require.Len(t, errBody.Errors, 1)
	assert.Equal(t, "Text is required", errBody.Errors[0].Message)
}

func TestGetPostHandlerMalformedID(t *testing.T) {
	app := newPostTestApp(new(MockPostRepository), new(MockUserRepository), 1)

	req := httptest.NewRequest(http.MethodGet, "/api/posts/not-a-number", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Post not found", decodeErrorBody(t, resp).Error)
}

func TestDeletePostHandlerNotAuthor(t *testing.T) {
	postRepo := new(MockPostRepository)
	postRepo.On("GetByID", mock.Anything, uint(5)).
		Return(&models.Post{ID: 5, UserID: 99}, nil)
	app := newPostTestApp(postRepo, new(MockUserRepository), 1)

	req := httptest.NewRequest(http.MethodDelete, "/api/posts/5", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Not authorized", decodeErrorBody(t, resp).Error)
	postRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestLikePostHandlerAlreadyLiked(t *testing.T) {
	postRepo := new(MockPostRepository)
	postRepo.On("GetByID", mock.Anything, uint(5)).Return(&models.Post{ID: 5}, nil)
	postRepo.On("Like", mock.Anything, uint(5), uint(1)).Return(false, nil)
	app := newPostTestApp(postRepo, new(MockUserRepository), 1)

	req := httptest.NewRequest(http.MethodPut, "/api/posts/like/5", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Post already liked", decodeErrorBody(t, resp).Error)
}

func TestUnlikePostHandlerNotYetLiked(t *testing.T) {
	postRepo := new(MockPostRepository)
	postRepo.On("GetByID", mock.Anything, uint(5)).Return(&models.Post{ID: 5}, nil)
	postRepo.On("Unlike", mock.Anything, uint(5), uint(1)).Return(false, nil)
	app := newPostTestApp(postRepo, new(MockUserRepository), 1)

	req := httptest.NewRequest(http.MethodPut, "/api/posts/unlike/5", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Post has not yet been liked", decodeErrorBody(t, resp).Error)
}

func TestLikePostHandlerReturnsLikes(t *testing.T) {
	postRepo := new(MockPostRepository)
	postRepo.On("GetByID", mock.Anything, uint(5)).Return(&models.Post{ID: 5}, nil)
	postRepo.On("Like", mock.Anything, uint(5), uint(1)).Return(true, nil)
	postRepo.On("Likes", mock.Anything, uint(5)).
		Return([]models.Like{{ID: 2, PostID: 5, UserID: 1}}, nil)
	app := newPostTestApp(postRepo, new(MockUserRepository), 1)

	req := httptest.NewRequest(http.MethodPut, "/api/posts/like/5", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var likes []models.Like
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&likes))
	require.Len(t, likes, 1)
	assert.Equal(t, uint(1), likes[0].UserID)
}

func TestDeleteCommentHandlerNotAuthor(t *testing.T) {
	postRepo := new(MockPostRepository)
	postRepo.On("GetByID", mock.Anything, uint(5)).Return(&models.Post{ID: 5, UserID: 9}, nil)
	postRepo.On("GetComment", mock.Anything, uint(5), uint(3)).
		Return(&models.Comment{ID: 3, PostID: 5, UserID: 42}, nil)
	app := newPostTestApp(postRepo, new(MockUserRepository), 1)

	req := httptest.NewRequest(http.MethodDelete, "/api/posts/comment/5/3", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "User not authorized", decodeErrorBody(t, resp).Error)
}

func TestDeleteCommentHandlerMissingComment(t *testing.T) {
	postRepo := new(MockPostRepository)
	postRepo.On("GetByID", mock.Anything, uint(5)).Return(&models.Post{ID: 5}, nil)
	postRepo.On("GetComment", mock.Anything, uint(5), uint(3)).
		Return(nil, models.NewNotFoundError("Comment not found"))
	app := newPostTestApp(postRepo, new(MockUserRepository), 1)

	req := httptest.NewRequest(http.MethodDelete, "/api/posts/comment/5/3", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Comment not found", decodeErrorBody(t, resp).Error)
}

func TestGetPostsHandler(t *testing.T) {
	postRepo := new(MockPostRepository)
	postRepo.On("List", mock.Anything).
		Return([]*models.Post{{ID: 2, Text: "newer"}, {ID: 1, Text: "older"}}, nil)
	app := newPostTestApp(postRepo, new(MockUserRepository), 1)

	req := httptest.NewRequest(http.MethodGet, "/api/posts", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var posts []models.Post
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&posts))
	require.Len(t, posts, 2)
	assert.Equal(t, "newer", posts[0].Text)
}
