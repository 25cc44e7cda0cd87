package client

import "sync"

// Alert is a transient UI notification.
type Alert struct {
	ID        string
	Message   string
	AlertType string
}

// AuthState tracks the signed-in user.
type AuthState struct {
	Token           string
	IsAuthenticated bool
	Loading         bool
	User            *User
}

// ProfileState holds the current profile slice of state.
type ProfileState struct {
	Profile *Profile
	Repos   []GithubRepo
	Loading bool
	Error   *RequestError
}

// PostState holds the posts slice of state.
type PostState struct {
	Posts   []Post
	Post    *Post
	Loading bool
	Error   *RequestError
}

// State is the full application state snapshot.
type State struct {
	Auth    AuthState
	Profile ProfileState
	Posts   PostState
	Alerts  []Alert
}

// Store folds dispatched actions into state and notifies subscribers. It is
// safe for concurrent use.
type Store struct {
	mu          sync.RWMutex
	state       State
	subscribers map[int]func(State)
	nextSubID   int
}

// NewStore creates a store with loading flags set, matching the initial
// state of the original frontend.
func NewStore() *Store {
	return &Store{
		state: State{
			Auth:    AuthState{Loading: true},
			Profile: ProfileState{Loading: true},
			Posts:   PostState{Loading: true},
		},
		subscribers: map[int]func(State){},
	}
}

// State returns a snapshot of the current state.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Subscribe registers fn to run after every dispatch and returns an
// unsubscribe function.
func (s *Store) Subscribe(fn func(State)) func() {
	s.mu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subscribers, id)
		s.mu.Unlock()
	}
}

// Dispatch applies the action to the state and notifies subscribers.
func (s *Store) Dispatch(action Action) {
	s.mu.Lock()
	s.state = reduce(s.state, action)
	snapshot := s.state
	fns := make([]func(State), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(snapshot)
	}
}

func reduce(state State, action Action) State {
	state.Auth = reduceAuth(state.Auth, action)
	state.Posts = reducePosts(state.Posts, action)
	state.Profile = reduceProfile(state.Profile, action)
	state.Alerts = reduceAlerts(state.Alerts, action)
	return state
}

func reduceAuth(state AuthState, action Action) AuthState {
	switch action.Type {
	case UserLoaded:
		user := action.Payload.(User)
		state.User = &user
		state.IsAuthenticated = true
		state.Loading = false
	case LoginSuccess, RegisterSuccess:
		state.Token = action.Payload.(string)
		state.IsAuthenticated = true
		state.Loading = false
	case AuthError, Logout, AccountDeleted:
		state = AuthState{}
	}
	return state
}

func reducePosts(state PostState, action Action) PostState {
	switch action.Type {
	case GetPosts:
		state.Posts = action.Payload.([]Post)
		state.Loading = false
		state.Error = nil
	case GetPost:
		post := action.Payload.(Post)
		state.Post = &post
		state.Loading = false
		state.Error = nil
	case AddPost:
		post := action.Payload.(Post)
		state.Posts = append([]Post{post}, state.Posts...)
		state.Loading = false
	case DeletePost:
		id := action.Payload.(uint)
		posts := make([]Post, 0, len(state.Posts))
		for _, p := range state.Posts {
			if p.ID != id {
				posts = append(posts, p)
			}
		}
		state.Posts = posts
		state.Loading = false
	case UpdateLikes:
		// Copy before mutating: snapshots handed out by State() share the
		// previous backing array and pointed-to Post.
		update := action.Payload.(LikesUpdate)
		posts := make([]Post, len(state.Posts))
		copy(posts, state.Posts)
		for i := range posts {
			if posts[i].ID == update.PostID {
				posts[i].Likes = update.Likes
			}
		}
		state.Posts = posts
		if state.Post != nil && state.Post.ID == update.PostID {
			post := *state.Post
			post.Likes = update.Likes
			state.Post = &post
		}
		state.Loading = false
	case AddComment:
		if state.Post != nil {
			post := *state.Post
			post.Comments = action.Payload.([]Comment)
			state.Post = &post
		}
		state.Loading = false
	case RemoveComment:
		if state.Post != nil {
			id := action.Payload.(uint)
			post := *state.Post
			comments := make([]Comment, 0, len(post.Comments))
			for _, cm := range post.Comments {
				if cm.ID != id {
					comments = append(comments, cm)
				}
			}
			post.Comments = comments
			state.Post = &post
		}
		state.Loading = false
	case PostError:
		err := action.Payload.(RequestError)
		state.Error = &err
		state.Loading = false
	}
	return state
}

func reduceProfile(state ProfileState, action Action) ProfileState {
	switch action.Type {
	case GetProfile, UpdateProfile:
		profile := action.Payload.(Profile)
		state.Profile = &profile
		state.Loading = false
		state.Error = nil
	case GetRepos:
		state.Repos = action.Payload.([]GithubRepo)
		state.Loading = false
	case ClearProfile, AccountDeleted:
		state.Profile = nil
		state.Repos = nil
		state.Loading = false
	case ProfileError:
		err := action.Payload.(RequestError)
		state.Error = &err
		state.Loading = false
	}
	return state
}

func reduceAlerts(alerts []Alert, action Action) []Alert {
	switch action.Type {
	case SetAlert:
		return append(alerts, action.Payload.(Alert))
	case RemoveAlert:
		id := action.Payload.(string)
		next := make([]Alert, 0, len(alerts))
		for _, a := range alerts {
			if a.ID != id {
				next = append(next, a)
			}
		}
		return next
	}
	return alerts
}
