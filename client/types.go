// Package client is a Go client for the DevConnect API with a small
// dispatch-based state container, mirroring the flow of the original web
// frontend: action creators call the API and dispatch typed actions into a
// store that reducers fold into state.
package client

// ActionType identifies what a dispatched action means to the reducers.
type ActionType string

const (
	GetPosts      ActionType = "GET_POSTS"
	GetPost       ActionType = "GET_POST"
	AddPost       ActionType = "ADD_POST"
	DeletePost    ActionType = "DELETE_POST"
	UpdateLikes   ActionType = "UPDATE_LIKES"
	AddComment    ActionType = "ADD_COMMENT"
	RemoveComment ActionType = "REMOVE_COMMENT"
	PostError     ActionType = "POST_ERROR"

	GetProfile     ActionType = "GET_PROFILE"
	GetRepos       ActionType = "GET_REPOS"
	UpdateProfile  ActionType = "UPDATE_PROFILE"
	ClearProfile   ActionType = "CLEAR_PROFILE"
	AccountDeleted ActionType = "ACCOUNT_DELETED"
	ProfileError   ActionType = "PROFILE_ERROR"

	UserLoaded      ActionType = "USER_LOADED"
	LoginSuccess    ActionType = "LOGIN_SUCCESS"
	RegisterSuccess ActionType = "REGISTER_SUCCESS"
	AuthError       ActionType = "AUTH_ERROR"
	Logout          ActionType = "LOGOUT"

	SetAlert    ActionType = "SET_ALERT"
	RemoveAlert ActionType = "REMOVE_ALERT"
)

// Action is a typed message dispatched into the store.
type Action struct {
	Type    ActionType
	Payload any
}

// RequestError is the normalized failure payload carried by PostError and
// ProfileError actions.
type RequestError struct {
	Message    string
	StatusCode int
}

// LikesUpdate is the payload of an UpdateLikes action.
type LikesUpdate struct {
	PostID uint
	Likes  []Like
}
