package service

import (
	"context"
	"io"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/pratikdhikale87/Social-media/apperr"
	"github.com/pratikdhikale87/Social-media/media"
	"github.com/pratikdhikale87/Social-media/models"
)

// CreatePost stores the image, inserts the post, then appends the post id
// to the author's list. Insert and append are independent writes; if the
// append fails the post exists but is not listed under its creator. That
// orphan is logged and the error is returned, never masked as success.
func (s *Social) CreatePost(ctx context.Context, actor primitive.ObjectID, body string, image io.Reader) (*models.Post, error) {
	if strings.TrimSpace(body) == "" {
		return nil, apperr.Validation("post body is required")
	}
	if image == nil {
		return nil, apperr.Validation("post image is required")
	}

	if _, err := s.users.FindByID(ctx, actor); err != nil {
		return nil, err
	}

	url, err := s.images.Upload(ctx, image, media.FolderPosts)
	if err != nil {
		s.log.WithError(err).Error("post image upload failed")
		return nil, apperr.Upload("failed to store image")
	}

	post := &models.Post{
		ID:        primitive.NewObjectID(),
		Creator:   actor,
		Body:      body,
		Image:     url,
		Likes:     []primitive.ObjectID{},
		Comments:  []primitive.ObjectID{},
		CreatedAt: time.Now().UnixMilli(),
	}

	if err := s.posts.Insert(ctx, post); err != nil {
		return nil, err
	}

	if err := s.users.AppendPost(ctx, actor, post.ID); err != nil {
		s.log.WithField("postId", post.ID.Hex()).
			WithError(err).
			Warn("post inserted but not appended to author's list")
		return nil, err
	}

	return post, nil
}

func (s *Social) GetPost(ctx context.Context, id primitive.ObjectID) (*models.Post, error) {
	return s.posts.FindByID(ctx, id)
}

func (s *Social) GetPosts(ctx context.Context) ([]models.Post, error) {
	return s.posts.FindAll(ctx)
}

// UpdatePost replaces the body. Creator, image and creation time are never
// touched, whatever the caller sends.
func (s *Social) UpdatePost(ctx context.Context, actor, postID primitive.ObjectID, body string) (*models.Post, error) {
	if strings.TrimSpace(body) == "" {
		return nil, apperr.Validation("post body is required")
	}

	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.Creator != actor {
		return nil, apperr.Forbidden("only the creator can edit this post")
	}

	return s.posts.UpdateBody(ctx, postID, body)
}

// DeletePost removes the post, pulls it from the creator's list, then
// sweeps the id out of every user's bookmarks. The sweep is best-effort:
// its failure is logged but the delete still reports success.
func (s *Social) DeletePost(ctx context.Context, actor, postID primitive.ObjectID) error {
	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return err
	}
	if post.Creator != actor {
		return apperr.Forbidden("only the creator can delete this post")
	}

	if err := s.posts.Delete(ctx, postID); err != nil {
		return err
	}

	if err := s.users.RemovePost(ctx, post.Creator, postID); err != nil {
		s.log.WithField("postId", postID.Hex()).
			WithError(err).
			Warn("post deleted but still listed under its creator")
		return err
	}

	if err := s.users.SweepBookmarks(ctx, postID); err != nil {
		s.log.WithField("postId", postID.Hex()).
			WithError(err).
			Warn("bookmark sweep failed, stale references remain")
	}

	return nil
}

// FollowingFeed returns the posts of everyone the actor follows, newest
// first. Following nobody yields an empty feed, not an error.
func (s *Social) FollowingFeed(ctx context.Context, actor primitive.ObjectID) ([]models.Post, error) {
	user, err := s.users.FindByID(ctx, actor)
	if err != nil {
		return nil, err
	}
	return s.posts.FindByCreators(ctx, user.Following)
}

// LikeUnlike toggles the actor's membership in the post's like set.
func (s *Social) LikeUnlike(ctx context.Context, actor, postID primitive.ObjectID) (*models.Post, error) {
	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.LikedBy(actor) {
		return s.posts.RemoveLike(ctx, postID, actor)
	}
	return s.posts.AddLike(ctx, postID, actor)
}

func (s *Social) UserPosts(ctx context.Context, userID primitive.ObjectID) ([]models.Post, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.posts.FindByCreators(ctx, []primitive.ObjectID{user.ID})
}

// ToggleBookmark toggles the post id in the actor's bookmark set. The post
// must exist; bookmarking a dangling id fails NotFound (the delete sweep
// handles references that go stale afterwards).
func (s *Social) ToggleBookmark(ctx context.Context, actor, postID primitive.ObjectID) (bookmarks []primitive.ObjectID, added bool, err error) {
	if _, err := s.posts.FindByID(ctx, postID); err != nil {
		return nil, false, err
	}

	user, err := s.users.FindByID(ctx, actor)
	if err != nil {
		return nil, false, err
	}

	if user.HasBookmarked(postID) {
		updated, err := s.users.RemoveBookmark(ctx, actor, postID)
		if err != nil {
			return nil, false, err
		}
		return updated.Bookmarks, false, nil
	}

	updated, err := s.users.AddBookmark(ctx, actor, postID)
	if err != nil {
		return nil, false, err
	}
	return updated.Bookmarks, true, nil
}

// Bookmarks returns the actor's bookmarked posts, newest first.
func (s *Social) Bookmarks(ctx context.Context, actor primitive.ObjectID) ([]models.Post, error) {
	user, err := s.users.FindByID(ctx, actor)
	if err != nil {
		return nil, err
	}
	return s.posts.FindByIDs(ctx, user.Bookmarks)
}
