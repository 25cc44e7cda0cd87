package service

import (
	"context"
	"crypto/md5"
	"fmt"
	"strings"

	"devconnect/internal/models"
	"devconnect/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	userRepo    repository.UserRepository
	profileRepo repository.ProfileRepository
	postRepo    repository.PostRepository
}

type RegisterInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func NewUserService(
	userRepo repository.UserRepository,
	profileRepo repository.ProfileRepository,
	postRepo repository.PostRepository,
) *UserService {
	return &UserService{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		postRepo:    postRepo,
	}
}

// GravatarURL derives the avatar for an email address, falling back to the
// generic "mystery man" image when no gravatar exists.
func GravatarURL(email string) string {
	hash := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(email))))
	return fmt.Sprintf("https://gravatar.com/avatar/%x?s=200&r=pg&d=mm", hash)
}

// Register creates a new account with a hashed password and a gravatar-backed
// avatar. A taken email is a validation failure, not a conflict, to match the
// legacy client.
func (s *UserService) Register(ctx context.Context, input RegisterInput) (*models.User, error) {
	existing, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewFieldValidationError([]models.FieldError{
			{Field: "email", Message: "User already exists"},
		})
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &models.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: string(hashed),
		Avatar:   GravatarURL(input.Email),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate checks the credentials and returns the matching user. Wrong
// email and wrong password produce the same response.
func (s *UserService) Authenticate(ctx context.Context, input LoginInput) (*models.User, error) {
	invalid := models.NewFieldValidationError([]models.FieldError{
		{Field: "email", Message: "Invalid Credentials"},
	})

	user, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, invalid
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return nil, invalid
	}
	return user, nil
}

func (s *UserService) GetUser(ctx context.Context, userID uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// DeleteAccount removes the user's posts, profile, and account, in that
// order.
func (s *UserService) DeleteAccount(ctx context.Context, userID uint) error {
	if err := s.postRepo.DeleteByUserID(ctx, userID); err != nil {
		return err
	}
	if err := s.profileRepo.DeleteByUserID(ctx, userID); err != nil {
		return err
	}
	return s.userRepo.Delete(ctx, userID)
}
