package client

import "context"

// LoadCurrentProfile fetches the signed-in user's profile into the store.
func (a *Actions) LoadCurrentProfile(ctx context.Context) error {
	profile, err := a.api.GetCurrentProfile(ctx)
	if err != nil {
		a.store.Dispatch(Action{Type: ProfileError, Payload: requestError(err)})
		return err
	}
	a.store.Dispatch(Action{Type: GetProfile, Payload: *profile})
	return nil
}

// CreateProfile creates or updates the caller's profile. edit selects the
// alert wording.
func (a *Actions) CreateProfile(ctx context.Context, input ProfileInput, edit bool) error {
	profile, err := a.api.CreateProfile(ctx, input)
	if err != nil {
		a.fieldAlerts(err)
		a.store.Dispatch(Action{Type: ProfileError, Payload: requestError(err)})
		return err
	}
	a.store.Dispatch(Action{Type: GetProfile, Payload: *profile})
	if edit {
		a.SetAlert("profile updated", "success", 0)
	} else {
		a.SetAlert("profile created", "success", 0)
	}
	return nil
}

// AddExperience appends a work history entry to the caller's profile.
func (a *Actions) AddExperience(ctx context.Context, input ExperienceInput) error {
	profile, err := a.api.AddExperience(ctx, input)
	if err != nil {
		a.fieldAlerts(err)
		a.store.Dispatch(Action{Type: ProfileError, Payload: requestError(err)})
		return err
	}
	a.store.Dispatch(Action{Type: UpdateProfile, Payload: *profile})
	a.SetAlert("Experience added", "success", 0)
	return nil
}

// AddEducation appends an education entry to the caller's profile.
func (a *Actions) AddEducation(ctx context.Context, input EducationInput) error {
	profile, err := a.api.AddEducation(ctx, input)
	if err != nil {
		a.fieldAlerts(err)
		a.store.Dispatch(Action{Type: ProfileError, Payload: requestError(err)})
		return err
	}
	a.store.Dispatch(Action{Type: UpdateProfile, Payload: *profile})
	a.SetAlert("Education added", "success", 0)
	return nil
}

// DeleteExperience removes a work history entry.
func (a *Actions) DeleteExperience(ctx context.Context, expID uint) error {
	profile, err := a.api.DeleteExperience(ctx, expID)
	if err != nil {
		a.store.Dispatch(Action{Type: ProfileError, Payload: requestError(err)})
		return err
	}
	a.store.Dispatch(Action{Type: UpdateProfile, Payload: *profile})
	a.SetAlert("Experience Deleted", "danger", 0)
	return nil
}

// DeleteEducation removes an education entry.
func (a *Actions) DeleteEducation(ctx context.Context, eduID uint) error {
	profile, err := a.api.DeleteEducation(ctx, eduID)
	if err != nil {
		a.store.Dispatch(Action{Type: ProfileError, Payload: requestError(err)})
		return err
	}
	a.store.Dispatch(Action{Type: UpdateProfile, Payload: *profile})
	a.SetAlert("Education Removed", "danger", 0)
	return nil
}

// LoadGithubRepos fetches a user's latest Github repositories into the
// store for display on their profile page.
func (a *Actions) LoadGithubRepos(ctx context.Context, username string) error {
	repos, err := a.api.GithubRepos(ctx, username)
	if err != nil {
		a.store.Dispatch(Action{Type: ProfileError, Payload: requestError(err)})
		return err
	}
	a.store.Dispatch(Action{Type: GetRepos, Payload: repos})
	return nil
}

// DeleteAccount permanently removes the caller's account, profile, and
// posts.
func (a *Actions) DeleteAccount(ctx context.Context) error {
	if err := a.api.DeleteAccount(ctx); err != nil {
		a.store.Dispatch(Action{Type: ProfileError, Payload: requestError(err)})
		return err
	}
	a.store.Dispatch(Action{Type: ClearProfile})
	a.store.Dispatch(Action{Type: AccountDeleted})
	a.SetAlert("Your account has been permanently deleted", "", 0)
	return nil
}
