// Package store persists User and Post documents. Each method is a single
// per-document atomic write or read; there are no cross-document
// transactions, so multi-document sequences are ordered by the service
// layer on top of these primitives.
package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/pratikdhikale87/Social-media/models"
)

// ProfileUpdate carries the mutable display fields of a user. Nil fields
// are left untouched.
type ProfileUpdate struct {
	FullName *string
	Bio      *string
}

type UserStore interface {
	Insert(ctx context.Context, u *models.User) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context, limit int64) ([]models.User, error)
	UpdateProfile(ctx context.Context, id primitive.ObjectID, upd ProfileUpdate) (*models.User, error)
	SetProfilePhoto(ctx context.Context, id primitive.ObjectID, url string) (*models.User, error)

	AddFollower(ctx context.Context, id, followerID primitive.ObjectID) error
	RemoveFollower(ctx context.Context, id, followerID primitive.ObjectID) error
	AddFollowing(ctx context.Context, id, targetID primitive.ObjectID) error
	RemoveFollowing(ctx context.Context, id, targetID primitive.ObjectID) error

	AddBookmark(ctx context.Context, id, postID primitive.ObjectID) (*models.User, error)
	RemoveBookmark(ctx context.Context, id, postID primitive.ObjectID) (*models.User, error)

	AppendPost(ctx context.Context, id, postID primitive.ObjectID) error
	RemovePost(ctx context.Context, id, postID primitive.ObjectID) error

	// SweepBookmarks removes a deleted post id from every user's bookmark
	// set. Best-effort cleanup, called after a post delete.
	SweepBookmarks(ctx context.Context, postID primitive.ObjectID) error
}

type PostStore interface {
	Insert(ctx context.Context, p *models.Post) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Post, error)
	FindAll(ctx context.Context) ([]models.Post, error)
	FindByCreators(ctx context.Context, creators []primitive.ObjectID) ([]models.Post, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Post, error)
	UpdateBody(ctx context.Context, id primitive.ObjectID, body string) (*models.Post, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	AddLike(ctx context.Context, postID, userID primitive.ObjectID) (*models.Post, error)
	RemoveLike(ctx context.Context, postID, userID primitive.ObjectID) (*models.Post, error)
}
