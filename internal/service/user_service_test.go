package service

import (
	"context"
	"strings"
	"testing"

	"devconnect/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestGravatarURL(t *testing.T) {
	url := GravatarURL("  Dev@Example.COM ")
	assert.True(t, strings.HasPrefix(url, "https://gravatar.com/avatar/"))
	assert.Contains(t, url, "d=mm")
	// Hash is derived from the normalized address.
	assert.Equal(t, GravatarURL("dev@example.com"), url)
}

func TestRegisterHashesPasswordAndSetsAvatar(t *testing.T) {
	users := noopUserRepo()
	var created *models.User
	users.createFn = func(_ context.Context, u *models.User) error {
		created = u
		return nil
	}
	svc := NewUserService(users, noopProfileRepo(), noopPostRepo())

	user, err := svc.Register(context.Background(), RegisterInput{
		Name:     "Jess Dev",
		Email:    "jess@example.com",
		Password: "secret99",
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.NotEqual(t, "secret99", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret99")))
	assert.Contains(t, user.Avatar, "gravatar.com/avatar/")
}

func TestRegisterExistingEmail(t *testing.T) {
	users := noopUserRepo()
	users.getByEmailFn = func(_ context.Context, email string) (*models.User, error) {
		return &models.User{ID: 1, Email: email}, nil
	}
	svc := NewUserService(users, noopProfileRepo(), noopPostRepo())

	_, err := svc.Register(context.Background(), RegisterInput{
		Name:     "Jess Dev",
		Email:    "jess@example.com",
		Password: "secret99",
	})
	appErr := assertAppErrorCode(t, err, "VALIDATION_ERROR")
	require.Len(t, appErr.Fields, 1)
	assert.Equal(t, "User already exists", appErr.Fields[0].Message)
}

func TestAuthenticateWrongPassword(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("correct"), bcrypt.MinCost)
	users := noopUserRepo()
	users.getByEmailFn = func(_ context.Context, email string) (*models.User, error) {
		return &models.User{ID: 1, Email: email, Password: string(hash)}, nil
	}
	svc := NewUserService(users, noopProfileRepo(), noopPostRepo())

	_, err := svc.Authenticate(context.Background(), LoginInput{Email: "jess@example.com", Password: "wrong"})
	appErr := assertAppErrorCode(t, err, "VALIDATION_ERROR")
	assert.Equal(t, "Invalid Credentials", appErr.Message)
}

func TestAuthenticateUnknownEmailSameResponse(t *testing.T) {
	svc := NewUserService(noopUserRepo(), noopProfileRepo(), noopPostRepo())

	_, err := svc.Authenticate(context.Background(), LoginInput{Email: "nobody@example.com", Password: "whatever"})
	appErr := assertAppErrorCode(t, err, "VALIDATION_ERROR")
	assert.Equal(t, "Invalid Credentials", appErr.Message)
}

func TestAuthenticateSuccess(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("correct"), bcrypt.MinCost)
	users := noopUserRepo()
	users.getByEmailFn = func(_ context.Context, email string) (*models.User, error) {
		return &models.User{ID: 4, Email: email, Password: string(hash)}, nil
	}
	svc := NewUserService(users, noopProfileRepo(), noopPostRepo())

	user, err := svc.Authenticate(context.Background(), LoginInput{Email: "jess@example.com", Password: "correct"})
	require.NoError(t, err)
	assert.Equal(t, uint(4), user.ID)
}

func TestDeleteAccountCascades(t *testing.T) {
	var order []string
	posts := noopPostRepo()
	posts.deleteByUserIDFn = func(_ context.Context, _ uint) error {
		order = append(order, "posts")
		return nil
	}
	profiles := noopProfileRepo()
	profiles.deleteByUserIDFn = func(_ context.Context, _ uint) error {
		order = append(order, "profile")
		return nil
	}
	users := noopUserRepo()
	users.deleteFn = func(_ context.Context, _ uint) error {
		order = append(order, "user")
		return nil
	}
	svc := NewUserService(users, profiles, posts)

	require.NoError(t, svc.DeleteAccount(context.Background(), 1))
	assert.Equal(t, []string{"posts", "profile", "user"}, order)
}
