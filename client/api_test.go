package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIRegisterStoresToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/users", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "sara@example.com", body["email"])

		_ = json.NewEncoder(w).Encode(map[string]string{"token": "issued-jwt"})
	}))
	defer srv.Close()

	api := NewAPI(srv.URL)
	token, err := api.Register(context.Background(), "Sara", "sara@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "issued-jwt", token)
	assert.Equal(t, "issued-jwt", api.Token())
}

func TestAPISendsBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer stored-jwt", r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode([]Post{})
	}))
	defer srv.Close()

	api := NewAPI(srv.URL)
	api.SetToken("stored-jwt")
	_, err := api.GetPosts(context.Background())
	require.NoError(t, err)
}

func TestAPIDecodesFieldErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": "Validation failed",
			"errors": []map[string]string{
				{"param": "email", "msg": "Please include a valid email"},
			},
		})
	}))
	defer srv.Close()

	api := NewAPI(srv.URL)
	_, err := api.Login(context.Background(), "not-an-email", "pw")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "Validation failed", apiErr.Message)
	require.Len(t, apiErr.Fields, 1)
	assert.Equal(t, "email", apiErr.Fields[0].Field)
	assert.Equal(t, "Please include a valid email", apiErr.Fields[0].Message)
}

func TestAPIFallsBackToStatusText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	api := NewAPI(srv.URL)
	_, err := api.GetPosts(context.Background())

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Internal Server Error", apiErr.Message)
}

func TestAPILikeAndCommentPaths(t *testing.T) {
	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.Method+" "+r.URL.Path)
		switch {
		case r.URL.Path == "/api/posts/like/7":
			_ = json.NewEncoder(w).Encode([]Like{{ID: 1, UserID: 2}})
		default:
			_ = json.NewEncoder(w).Encode([]Comment{})
		}
	}))
	defer srv.Close()

	api := NewAPI(srv.URL)
	ctx := context.Background()

	likes, err := api.LikePost(ctx, 7)
	require.NoError(t, err)
	require.Len(t, likes, 1)

	_, err = api.DeleteComment(ctx, 7, 3)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"PUT /api/posts/like/7",
		"DELETE /api/posts/comment/7/3",
	}, paths)
}

func TestActionsLoadPostsDispatchesIntoStore(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode([]Post{{ID: 4, Text: "hello"}})
	}))
	defer srv.Close()

	store := NewStore()
	actions := NewActions(NewAPI(srv.URL), store)

	require.NoError(t, actions.LoadPosts(context.Background()))

	posts := store.State().Posts
	assert.False(t, posts.Loading)
	require.Len(t, posts.Posts, 1)
	assert.Equal(t, "hello", posts.Posts[0].Text)
}

func TestActionsLoadPostsFailureRecordsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "No token, authorization denied"})
	}))
	defer srv.Close()

	store := NewStore()
	actions := NewActions(NewAPI(srv.URL), store)

	require.Error(t, actions.LoadPosts(context.Background()))

	state := store.State().Posts
	require.NotNil(t, state.Error)
	assert.Equal(t, http.StatusUnauthorized, state.Error.StatusCode)
	assert.Equal(t, "No token, authorization denied", state.Error.Message)
}
