package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"
)

// FieldError is one field-level failure in an API error response.
type FieldError struct {
	Field   string `json:"param"`
	Message string `json:"msg"`
}

// APIError is a non-2xx response from the server.
type APIError struct {
	Message    string       `json:"error"`
	StatusCode int          `json:"-"`
	Fields     []FieldError `json:"errors,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %s (status %d)", e.Message, e.StatusCode)
}

// API is a thin HTTP client for the DevConnect REST endpoints. The bearer
// token is attached to every request once set.
type API struct {
	baseURL string
	client  *http.Client

	mu    sync.RWMutex
	token string
}

// NewAPI creates an API client for the given base URL, e.g.
// "http://localhost:5000".
func NewAPI(baseURL string) *API {
	return &API{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

// SetToken stores the JWT used for authenticated requests.
func (a *API) SetToken(token string) {
	a.mu.Lock()
	a.token = token
	a.mu.Unlock()
}

// Token returns the stored JWT, empty when signed out.
func (a *API) Token() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.token
}

func (a *API) do(ctx context.Context, method, path string, body, dest any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := a.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if decodeErr := json.NewDecoder(resp.Body).Decode(apiErr); decodeErr != nil || apiErr.Message == "" {
			apiErr.Message = http.StatusText(resp.StatusCode)
		}
		return apiErr
	}

	if dest == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(dest)
}

// Register creates an account and returns the issued token.
func (a *API) Register(ctx context.Context, name, email, password string) (string, error) {
	var res struct {
		Token string `json:"token"`
	}
	err := a.do(ctx, http.MethodPost, "/api/users", map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
	}, &res)
	if err != nil {
		return "", err
	}
	a.SetToken(res.Token)
	return res.Token, nil
}

// Login authenticates and returns the issued token.
func (a *API) Login(ctx context.Context, email, password string) (string, error) {
	var res struct {
		Token string `json:"token"`
	}
	err := a.do(ctx, http.MethodPost, "/api/auth", map[string]string{
		"email":    email,
		"password": password,
	}, &res)
	if err != nil {
		return "", err
	}
	a.SetToken(res.Token)
	return res.Token, nil
}

// CurrentUser returns the signed-in user.
func (a *API) CurrentUser(ctx context.Context) (*User, error) {
	var user User
	if err := a.do(ctx, http.MethodGet, "/api/auth", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (a *API) GetPosts(ctx context.Context) ([]Post, error) {
	var posts []Post
	if err := a.do(ctx, http.MethodGet, "/api/posts", nil, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (a *API) GetPost(ctx context.Context, postID uint) (*Post, error) {
	var post Post
	if err := a.do(ctx, http.MethodGet, fmt.Sprintf("/api/posts/%d", postID), nil, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (a *API) CreatePost(ctx context.Context, text string) (*Post, error) {
	var post Post
	if err := a.do(ctx, http.MethodPost, "/api/posts", map[string]string{"text": text}, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (a *API) DeletePost(ctx context.Context, postID uint) error {
	return a.do(ctx, http.MethodDelete, fmt.Sprintf("/api/posts/%d", postID), nil, nil)
}

func (a *API) LikePost(ctx context.Context, postID uint) ([]Like, error) {
	var likes []Like
	if err := a.do(ctx, http.MethodPut, fmt.Sprintf("/api/posts/like/%d", postID), nil, &likes); err != nil {
		return nil, err
	}
	return likes, nil
}

func (a *API) UnlikePost(ctx context.Context, postID uint) ([]Like, error) {
	var likes []Like
	if err := a.do(ctx, http.MethodPut, fmt.Sprintf("/api/posts/unlike/%d", postID), nil, &likes); err != nil {
		return nil, err
	}
	return likes, nil
}

func (a *API) AddComment(ctx context.Context, postID uint, text string) ([]Comment, error) {
	var comments []Comment
	path := fmt.Sprintf("/api/posts/comment/%d", postID)
	if err := a.do(ctx, http.MethodPost, path, map[string]string{"text": text}, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

func (a *API) DeleteComment(ctx context.Context, postID, commentID uint) ([]Comment, error) {
	var comments []Comment
	path := fmt.Sprintf("/api/posts/comment/%d/%d", postID, commentID)
	if err := a.do(ctx, http.MethodDelete, path, nil, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

func (a *API) GetCurrentProfile(ctx context.Context) (*Profile, error) {
	var profile Profile
	if err := a.do(ctx, http.MethodGet, "/api/profile/me", nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (a *API) GetProfiles(ctx context.Context) ([]Profile, error) {
	var profiles []Profile
	if err := a.do(ctx, http.MethodGet, "/api/profile", nil, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

func (a *API) GetProfileByUser(ctx context.Context, userID uint) (*Profile, error) {
	var profile Profile
	if err := a.do(ctx, http.MethodGet, fmt.Sprintf("/api/profile/user/%d", userID), nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (a *API) CreateProfile(ctx context.Context, input ProfileInput) (*Profile, error) {
	var profile Profile
	if err := a.do(ctx, http.MethodPost, "/api/profile", input, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (a *API) AddExperience(ctx context.Context, input ExperienceInput) (*Profile, error) {
	var profile Profile
	if err := a.do(ctx, http.MethodPut, "/api/profile/experience", input, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (a *API) DeleteExperience(ctx context.Context, expID uint) (*Profile, error) {
	var profile Profile
	path := fmt.Sprintf("/api/profile/experience/%d", expID)
	if err := a.do(ctx, http.MethodDelete, path, nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (a *API) AddEducation(ctx context.Context, input EducationInput) (*Profile, error) {
	var profile Profile
	if err := a.do(ctx, http.MethodPut, "/api/profile/education", input, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (a *API) DeleteEducation(ctx context.Context, eduID uint) (*Profile, error) {
	var profile Profile
	path := fmt.Sprintf("/api/profile/education/%d", eduID)
	if err := a.do(ctx, http.MethodDelete, path, nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (a *API) DeleteAccount(ctx context.Context) error {
	return a.do(ctx, http.MethodDelete, "/api/profile", nil, nil)
}

func (a *API) GithubRepos(ctx context.Context, username string) ([]GithubRepo, error) {
	var repos []GithubRepo
	if err := a.do(ctx, http.MethodGet, "/api/profile/github/"+username, nil, &repos); err != nil {
		return nil, err
	}
	return repos, nil
}
