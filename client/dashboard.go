package client

import (
	"context"
	"fmt"
	"strings"
)

// Dashboard renders the signed-in user's landing view. Mounting it loads the
// current profile, and Render reflects whatever the store holds.
type Dashboard struct {
	actions *Actions
	store   *Store
}

// NewDashboard creates a Dashboard bound to the actions and store.
func NewDashboard(actions *Actions, store *Store) *Dashboard {
	return &Dashboard{actions: actions, store: store}
}

// Mount triggers the profile load, like the original component did on its
// first render.
func (d *Dashboard) Mount(ctx context.Context) error {
	return d.actions.LoadCurrentProfile(ctx)
}

// Render produces a text rendition of the dashboard for the current state.
func (d *Dashboard) Render() string {
	state := d.store.State()

	if state.Profile.Loading && state.Profile.Profile == nil {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString("Dashboard\n")
	if state.Auth.User != nil {
		fmt.Fprintf(&b, "Welcome %s\n", state.Auth.User.Name)
	}

	profile := state.Profile.Profile
	if profile == nil {
		b.WriteString("You have not yet set up a profile, please add some info\n")
		return b.String()
	}

	fmt.Fprintf(&b, "Status: %s\n", profile.Status)
	if len(profile.Skills) > 0 {
		fmt.Fprintf(&b, "Skills: %s\n", strings.Join(profile.Skills, ", "))
	}
	fmt.Fprintf(&b, "Experience entries: %d\n", len(profile.Experience))
	fmt.Fprintf(&b, "Education entries: %d\n", len(profile.Education))
	return b.String()
}
