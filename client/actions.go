package client

import "errors"

// Actions bundles the API client with the store. Each method performs one
// HTTP call and dispatches the resulting actions, the way the original
// frontend's action creators did.
type Actions struct {
	api   *API
	store *Store
}

// NewActions creates the action creators bound to api and store.
func NewActions(api *API, store *Store) *Actions {
	return &Actions{api: api, store: store}
}

// requestError normalizes an error into the payload carried by PostError and
// ProfileError actions.
func requestError(err error) RequestError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return RequestError{Message: apiErr.Message, StatusCode: apiErr.StatusCode}
	}
	return RequestError{Message: err.Error()}
}

// fieldAlerts raises one danger alert per field failure, matching the form
// feedback of the original frontend.
func (a *Actions) fieldAlerts(err error) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		for _, field := range apiErr.Fields {
			a.SetAlert(field.Message, "danger", 0)
		}
	}
}
