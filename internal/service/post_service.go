package service

import (
	"context"
	"strings"

	"devconnect/internal/models"
	"devconnect/internal/repository"
)

type PostService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
}

type CreatePostInput struct {
	UserID uint
	Text   string
}

type AddCommentInput struct {
	UserID uint
	PostID uint
	Text   string
}

func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository) *PostService {
	return &PostService{
		postRepo: postRepo,
		userRepo: userRepo,
	}
}

// CreatePost stores a new post stamped with the author's current name and
// avatar.
func (s *PostService) CreatePost(ctx context.Context, input CreatePostInput) (*models.Post, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return nil, models.NewFieldValidationError([]models.FieldError{
			{Field: "text", Message: "Text is required"},
		})
	}

	user, err := s.userRepo.GetByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	post := &models.Post{
		Text:   text,
		Name:   user.Name,
		Avatar: user.Avatar,
		UserID: user.ID,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *PostService) GetPost(ctx context.Context, postID uint) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, postID)
}

// ListPosts returns all posts newest first.
func (s *PostService) ListPosts(ctx context.Context) ([]*models.Post, error) {
	return s.postRepo.List(ctx)
}

// DeletePost removes a post after checking it belongs to the caller.
func (s *PostService) DeletePost(ctx context.Context, postID, userID uint) error {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post.UserID != userID {
		return models.NewValidationError("Not authorized")
	}
	return s.postRepo.Delete(ctx, postID)
}

// LikePost records a like and returns the updated like list. Liking a post
// twice is a conflict.
func (s *PostService) LikePost(ctx context.Context, postID, userID uint) ([]models.Like, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}
	liked, err := s.postRepo.Like(ctx, postID, userID)
	if err != nil {
		return nil, err
	}
	if !liked {
		return nil, models.NewConflictError("Post already liked")
	}
	return s.postRepo.Likes(ctx, postID)
}

// UnlikePost removes a like and returns the updated like list. Unliking a
// post that was never liked is a conflict.
func (s *PostService) UnlikePost(ctx context.Context, postID, userID uint) ([]models.Like, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}
	unliked, err := s.postRepo.Unlike(ctx, postID, userID)
	if err != nil {
		return nil, err
	}
	if !unliked {
		return nil, models.NewConflictError("Post has not yet been liked")
	}
	return s.postRepo.Likes(ctx, postID)
}

// AddComment appends a comment and returns the post's full comment list,
// newest first.
func (s *PostService) AddComment(ctx context.Context, input AddCommentInput) ([]models.Comment, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return nil, models.NewFieldValidationError([]models.FieldError{
			{Field: "text", Message: "Text is required"},
		})
	}

	if _, err := s.postRepo.GetByID(ctx, input.PostID); err != nil {
		return nil, err
	}
	user, err := s.userRepo.GetByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		PostID: input.PostID,
		UserID: user.ID,
		Text:   text,
		Name:   user.Name,
		Avatar: user.Avatar,
	}
	if err := s.postRepo.AddComment(ctx, comment); err != nil {
		return nil, err
	}
	return s.postRepo.Comments(ctx, input.PostID)
}

// DeleteComment removes a comment and returns the remaining comments. The
// comment's author and the post's author may both delete it.
func (s *PostService) DeleteComment(ctx context.Context, postID, commentID, userID uint) ([]models.Comment, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	comment, err := s.postRepo.GetComment(ctx, postID, commentID)
	if err != nil {
		return nil, err
	}
	if comment.UserID != userID && post.UserID != userID {
		return nil, models.NewUnauthorizedError("User not authorized")
	}
	if err := s.postRepo.DeleteComment(ctx, postID, commentID); err != nil {
		return nil, err
	}
	return s.postRepo.Comments(ctx, postID)
}
