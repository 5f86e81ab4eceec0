package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/pratikdhikale87/Social-media/apperr"
	"github.com/pratikdhikale87/Social-media/media"
	"github.com/pratikdhikale87/Social-media/models"
	"github.com/pratikdhikale87/Social-media/store"
)

type RegisterInput struct {
	FullName        string
	Email           string
	Password        string
	ConfirmPassword string
}

// Register creates a new user. The email is lowercased before the
// duplicate check so lookups stay case-insensitive. The duplicate check
// and the insert are two steps with no unique index between them; two
// concurrent registrations can race past the check, which is accepted.
func (s *Social) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	if in.FullName == "" || in.Email == "" || in.Password == "" || in.ConfirmPassword == "" {
		return nil, apperr.Validation("please fill all fields in the form")
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))

	_, err := s.users.FindByEmail(ctx, email)
	if err == nil {
		return nil, apperr.Duplicate("email already exists")
	}
	if !errors.Is(err, apperr.ErrNotFound) {
		return nil, err
	}

	if in.Password != in.ConfirmPassword {
		return nil, apperr.Credentials("passwords do not match")
	}
	if len(in.Password) < 8 {
		return nil, apperr.Credentials("password must be at least 8 characters long")
	}

	digest, err := s.passwords.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:           primitive.NewObjectID(),
		FullName:     in.FullName,
		Email:        email,
		Password:     digest,
		ProfilePhoto: models.DefaultProfilePhoto,
		Followers:    []primitive.ObjectID{},
		Following:    []primitive.ObjectID{},
		Bookmarks:    []primitive.ObjectID{},
		Posts:        []primitive.ObjectID{},
		CreatedAt:    time.Now().UnixMilli(),
	}

	if err := s.users.Insert(ctx, user); err != nil {
		return nil, err
	}

	s.log.WithField("userId", user.ID.Hex()).Info("user registered")
	return user, nil
}

// Login verifies the credentials and issues a token. Unknown email and
// wrong password return the identical failure so callers cannot probe
// which addresses are registered.
func (s *Social) Login(ctx context.Context, email, password string) (token string, userID string, err error) {
	if email == "" || password == "" {
		return "", "", apperr.Validation("please check all fields")
	}

	user, err := s.users.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return "", "", apperr.Credentials("invalid email or password")
		}
		return "", "", err
	}

	if !s.passwords.Verify(password, user.Password) {
		return "", "", apperr.Credentials("invalid email or password")
	}

	token, err = s.tokens.Generate(user.ID.Hex())
	if err != nil {
		return "", "", err
	}
	return token, user.ID.Hex(), nil
}

func (s *Social) GetUser(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	return s.users.FindByID(ctx, id)
}

// ListUsers returns the ten newest users.
func (s *Social) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.users.List(ctx, 10)
}

func (s *Social) EditProfile(ctx context.Context, actor primitive.ObjectID, upd store.ProfileUpdate) (*models.User, error) {
	return s.users.UpdateProfile(ctx, actor, upd)
}

// ChangeAvatar stores the image first and only touches the profile once a
// usable URL came back, so an upload failure leaves the document as it was.
func (s *Social) ChangeAvatar(ctx context.Context, actor primitive.ObjectID, image io.Reader, size int64) (*models.User, error) {
	if image == nil {
		return nil, apperr.Validation("please select a file")
	}
	if size > s.maxAvatarBytes {
		return nil, apperr.TooLarge("file size is too big")
	}

	url, err := s.images.Upload(ctx, image, media.FolderAvatars)
	if err != nil {
		s.log.WithError(err).Error("avatar upload failed")
		return nil, apperr.Upload("failed to store avatar")
	}

	return s.users.SetProfilePhoto(ctx, actor, url)
}

// FollowUnfollow toggles the follow edge between actor and target. The
// edge lives on both documents; the target's followers set is written
// first, then the actor's following set. A failure between the two writes
// leaves the relation asymmetric, which is logged and surfaced.
func (s *Social) FollowUnfollow(ctx context.Context, actor, target primitive.ObjectID) (followed bool, err error) {
	if actor == target {
		return false, apperr.SelfFollow("you can't follow yourself")
	}

	current, err := s.users.FindByID(ctx, actor)
	if err != nil {
		return false, err
	}
	if _, err := s.users.FindByID(ctx, target); err != nil {
		return false, err
	}

	if !current.IsFollowing(target) {
		if err := s.users.AddFollower(ctx, target, actor); err != nil {
			return false, err
		}
		if err := s.users.AddFollowing(ctx, actor, target); err != nil {
			s.logDivergence("follow", actor, target, err)
			return false, err
		}
		return true, nil
	}

	if err := s.users.RemoveFollower(ctx, target, actor); err != nil {
		return false, err
	}
	if err := s.users.RemoveFollowing(ctx, actor, target); err != nil {
		s.logDivergence("unfollow", actor, target, err)
		return false, err
	}
	return false, nil
}

func (s *Social) logDivergence(op string, actor, target primitive.ObjectID, err error) {
	s.log.WithFields(logrus.Fields{
		"op":     op,
		"actor":  actor.Hex(),
		"target": target.Hex(),
	}).WithError(err).Warn("follow relation left asymmetric, second write failed")
}
