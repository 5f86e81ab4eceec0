package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/pratikdhikale87/Social-media/auth"
	"github.com/pratikdhikale87/Social-media/models"
	"github.com/pratikdhikale87/Social-media/store"
)

// fakeUploader stands in for the external image store.
type fakeUploader struct {
	url   string
	err   error
	calls int
}

func (f *fakeUploader) Upload(ctx context.Context, r io.Reader, folder string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.url, nil
}

type fixture struct {
	svc    *Social
	users  *store.MemoryUsers
	posts  *store.MemoryPosts
	images *fakeUploader
	tokens *auth.TokenService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)

	users := store.NewMemoryUsers()
	posts := store.NewMemoryPosts()
	images := &fakeUploader{url: "https://cdn.example.com/image.png"}
	tokens := auth.NewTokenService("test-secret", time.Hour)

	svc := NewSocial(users, posts, images, auth.NewPasswordService(), tokens, 500000, log)
	return &fixture{svc: svc, users: users, posts: posts, images: images, tokens: tokens}
}

// registerUser creates a user through the real registration path.
func (f *fixture) registerUser(t *testing.T, name, email string) *models.User {
	t.Helper()
	user, err := f.svc.Register(context.Background(), RegisterInput{
		FullName:        name,
		Email:           email,
		Password:        "password123",
		ConfirmPassword: "password123",
	})
	require.NoError(t, err)
	return user
}

// createPost creates a post with an image through the real path.
func (f *fixture) createPost(t *testing.T, creator *models.User, body string) *models.Post {
	t.Helper()
	post, err := f.svc.CreatePost(context.Background(), creator.ID, body, fakeImage())
	require.NoError(t, err)
	return post
}

func fakeImage() io.Reader {
	return bytes.NewReader([]byte("\x89PNG fake image bytes"))
}

func newID() primitive.ObjectID {
	return primitive.NewObjectID()
}

func fmtEmail(i int) string {
	return fmt.Sprintf("user%d@example.com", i)
}

// failingAppendUsers wraps a UserStore so the append step after a post
// insert fails, simulating a crash between the two writes of CreatePost.
type failingAppendUsers struct {
	store.UserStore
}

func (f *failingAppendUsers) AppendPost(ctx context.Context, id, postID primitive.ObjectID) error {
	return errors.New("append failed")
}
