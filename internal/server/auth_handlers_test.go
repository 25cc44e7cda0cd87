package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"devconnect/internal/config"
	"devconnect/internal/models"
	"devconnect/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuthTestServer(userRepo *MockUserRepository) (*Server, *fiber.App) {
	s := &Server{
		config:      &config.Config{JWTSecret: "test-secret"},
		userService: service.NewUserService(userRepo, new(MockProfileRepository), new(MockPostRepository)),
	}
	app := fiber.New()
	app.Post("/api/users", s.Register)
	app.Post("/api/auth", s.Login)
	app.Get("/api/auth", s.AuthRequired(), s.GetCurrentUser)
	return s, app
}

func postJSON(t *testing.T, app *fiber.App, path string, payload any) *http.Response {
	t.Helper()
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestRegisterHandlerValidation(t *testing.T) {
	_, app := newAuthTestServer(new(MockUserRepository))

	resp := postJSON(t, app, "/api/users", map[string]string{
		"name":     "",
		"email":    "not-an-email",
		"password": "abc",
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	errBody := decodeErrorBody(t, resp)
	msgs := make([]string, 0, len(errBody.Errors))
	for _, fe := range errBody.Errors {
		msgs = append(msgs, fe.Message)
	}
	assert.Contains(t, msgs, "Name is required")
	assert.Contains(t, msgs, "Please include a valid email")
	assert.Contains(t, msgs, "Please enter a password with 6 or more characters")
}

func TestRegisterHandlerIssuesToken(t *testing.T) {
	userRepo := new(MockUserRepository)
	userRepo.On("GetByEmail", mock.Anything, "jess@example.com").Return(nil, nil)
	userRepo.On("Create", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			args.Get(1).(*models.User).ID = 12
		}).
		Return(nil)
	_, app := newAuthTestServer(userRepo)

	resp := postJSON(t, app, "/api/users", map[string]string{
		"name":     "Jess Dev",
		"email":    "jess@example.com",
		"password": "secret99",
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.NotEmpty(t, body.Token)
}

func TestRegisterHandlerExistingUser(t *testing.T) {
	userRepo := new(MockUserRepository)
	userRepo.On("GetByEmail", mock.Anything, "jess@example.com").
		Return(&models.User{ID: 1, Email: "jess@example.com"}, nil)
	_, app := newAuthTestServer(userRepo)

	resp := postJSON(t, app, "/api/users", map[string]string{
		"name":     "Jess Dev",
		"email":    "jess@example.com",
		"password": "secret99",
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	errBody := decodeErrorBody(t, resp)
	require.Len(t, errBody.Errors, 1)
	assert.Equal(t, "User already exists", errBody.Errors[0].Message)
}

func TestLoginHandlerInvalidCredentials(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("correct"), bcrypt.MinCost)
	userRepo := new(MockUserRepository)
	userRepo.On("GetByEmail", mock.Anything, "jess@example.com").
		Return(&models.User{ID: 1, Email: "jess@example.com", Password: string(hash)}, nil)
	_, app := newAuthTestServer(userRepo)

	resp := postJSON(t, app, "/api/auth", map[string]string{
		"email":    "jess@example.com",
		"password": "wrong",
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid Credentials", decodeErrorBody(t, resp).Error)
}

func TestAuthRequiredNoToken(t *testing.T) {
	_, app := newAuthTestServer(new(MockUserRepository))

	req := httptest.NewRequest(http.MethodGet, "/api/auth", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "No token, authorization denied", decodeErrorBody(t, resp).Error)
}

func TestAuthRequiredGarbageToken(t *testing.T) {
	_, app := newAuthTestServer(new(MockUserRepository))

	req := httptest.NewRequest(http.MethodGet, "/api/auth", nil)
	req.Header.Set("x-auth-token", "garbage")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Token is not valid", decodeErrorBody(t, resp).Error)
}

func TestAuthRoundTrip(t *testing.T) {
	userRepo := new(MockUserRepository)
	userRepo.On("GetByID", mock.Anything, uint(12)).
		Return(&models.User{ID: 12, Name: "Jess Dev", Email: "jess@example.com"}, nil)
	s, app := newAuthTestServer(userRepo)

	token, err := s.generateToken(12, "Jess Dev")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/auth", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var user models.User
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&user))
	assert.Equal(t, uint(12), user.ID)
	assert.Empty(t, user.Password, "password must never be serialized")
}
