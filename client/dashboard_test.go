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

func TestDashboardRenderWhileLoading(t *testing.T) {
	store := NewStore()
	d := NewDashboard(nil, store)

	assert.Equal(t, "Loading...", d.Render())
}

func TestDashboardRenderWithoutProfile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "There is no profile for this user"})
	}))
	defer srv.Close()

	store := NewStore()
	actions := NewActions(NewAPI(srv.URL), store)
	d := NewDashboard(actions, store)

	require.Error(t, d.Mount(context.Background()))
	assert.Contains(t, d.Render(), "You have not yet set up a profile, please add some info")
}

func TestDashboardRenderWithProfile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(Profile{
			Status: "Senior Developer",
			Skills: []string{"Go", "SQL"},
			Experience: []Experience{
				{Title: "Engineer", Company: "Initech"},
			},
		})
	}))
	defer srv.Close()

	store := NewStore()
	store.Dispatch(Action{Type: UserLoaded, Payload: User{ID: 1, Name: "Sara"}})

	actions := NewActions(NewAPI(srv.URL), store)
	d := NewDashboard(actions, store)

	require.NoError(t, d.Mount(context.Background()))

	out := d.Render()
	assert.Contains(t, out, "Welcome Sara")
	assert.Contains(t, out, "Status: Senior Developer")
	assert.Contains(t, out, "Skills: Go, SQL")
	assert.Contains(t, out, "Experience entries: 1")
	assert.Contains(t, out, "Education entries: 0")
}
