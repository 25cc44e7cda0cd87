package client

import "context"

// LoadUser fetches the signed-in user into the store.
func (a *Actions) LoadUser(ctx context.Context) error {
	user, err := a.api.CurrentUser(ctx)
	if err != nil {
		a.store.Dispatch(Action{Type: AuthError})
		return err
	}
	a.store.Dispatch(Action{Type: UserLoaded, Payload: *user})
	return nil
}

// Register creates an account, stores the token, and loads the user.
func (a *Actions) Register(ctx context.Context, name, email, password string) error {
	token, err := a.api.Register(ctx, name, email, password)
	if err != nil {
		a.fieldAlerts(err)
		a.store.Dispatch(Action{Type: AuthError})
		return err
	}
	a.store.Dispatch(Action{Type: RegisterSuccess, Payload: token})
	return a.LoadUser(ctx)
}

// Login authenticates, stores the token, and loads the user.
func (a *Actions) Login(ctx context.Context, email, password string) error {
	token, err := a.api.Login(ctx, email, password)
	if err != nil {
		a.fieldAlerts(err)
		a.store.Dispatch(Action{Type: AuthError})
		return err
	}
	a.store.Dispatch(Action{Type: LoginSuccess, Payload: token})
	return a.LoadUser(ctx)
}

// SignOut clears the token and every user-scoped slice of state.
func (a *Actions) SignOut() {
	a.api.SetToken("")
	a.store.Dispatch(Action{Type: ClearProfile})
	a.store.Dispatch(Action{Type: Logout})
}
