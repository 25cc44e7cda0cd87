package client

import "context"

// LoadPosts fetches all posts into the store.
func (a *Actions) LoadPosts(ctx context.Context) error {
	posts, err := a.api.GetPosts(ctx)
	if err != nil {
		a.store.Dispatch(Action{Type: PostError, Payload: requestError(err)})
		return err
	}
	a.store.Dispatch(Action{Type: GetPosts, Payload: posts})
	return nil
}

// LoadPost fetches a single post into the store.
func (a *Actions) LoadPost(ctx context.Context, postID uint) error {
	post, err := a.api.GetPost(ctx, postID)
	if err != nil {
		a.store.Dispatch(Action{Type: PostError, Payload: requestError(err)})
		return err
	}
	a.store.Dispatch(Action{Type: GetPost, Payload: *post})
	return nil
}

// CreatePost publishes a post and raises a success alert.
func (a *Actions) CreatePost(ctx context.Context, text string) error {
	post, err := a.api.CreatePost(ctx, text)
	if err != nil {
		a.fieldAlerts(err)
		a.store.Dispatch(Action{Type: PostError, Payload: requestError(err)})
		return err
	}
	a.store.Dispatch(Action{Type: AddPost, Payload: *post})
	a.SetAlert("Post Added", "success", 0)
	return nil
}

// DeletePost removes the caller's post.
func (a *Actions) DeletePost(ctx context.Context, postID uint) error {
	if err := a.api.DeletePost(ctx, postID); err != nil {
		a.store.Dispatch(Action{Type: PostError, Payload: requestError(err)})
		return err
	}
	a.store.Dispatch(Action{Type: DeletePost, Payload: postID})
	a.SetAlert("Post Deleted", "success", 0)
	return nil
}

// AddLike likes a post and refreshes its like list in the store.
func (a *Actions) AddLike(ctx context.Context, postID uint) error {
	likes, err := a.api.LikePost(ctx, postID)
	if err != nil {
		a.store.Dispatch(Action{Type: PostError, Payload: requestError(err)})
		return err
	}
	a.store.Dispatch(Action{Type: UpdateLikes, Payload: LikesUpdate{PostID: postID, Likes: likes}})
	return nil
}

// RemoveLike removes the caller's like from a post.
func (a *Actions) RemoveLike(ctx context.Context, postID uint) error {
	likes, err := a.api.UnlikePost(ctx, postID)
	if err != nil {
		a.store.Dispatch(Action{Type: PostError, Payload: requestError(err)})
		return err
	}
	a.store.Dispatch(Action{Type: UpdateLikes, Payload: LikesUpdate{PostID: postID, Likes: likes}})
	return nil
}

// AddComment comments on a post and refreshes the comment list.
func (a *Actions) AddComment(ctx context.Context, postID uint, text string) error {
	comments, err := a.api.AddComment(ctx, postID, text)
	if err != nil {
		a.fieldAlerts(err)
		a.store.Dispatch(Action{Type: PostError, Payload: requestError(err)})
		return err
	}
	a.store.Dispatch(Action{Type: AddComment, Payload: comments})
	a.SetAlert("Comment added", "success", 0)
	return nil
}

// DeleteComment removes the caller's comment from a post.
func (a *Actions) DeleteComment(ctx context.Context, postID, commentID uint) error {
	if _, err := a.api.DeleteComment(ctx, postID, commentID); err != nil {
		a.store.Dispatch(Action{Type: PostError, Payload: requestError(err)})
		return err
	}
	a.store.Dispatch(Action{Type: RemoveComment, Payload: commentID})
	a.SetAlert("Comment deleted", "success", 0)
	return nil
}
