package service

import (
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pratikdhikale87/Social-media/apperr"
)

func TestCreatePostListedUnderCreator(t *testing.T) {
	f := newFixture(t)
	alice := f.registerUser(t, "Alice", "alice@example.com")
	ctx := context.Background()

	post := f.createPost(t, alice, "hello world")

	assert.Equal(t, alice.ID, post.Creator)
	assert.Equal(t, f.images.url, post.Image)

	a, err := f.users.FindByID(ctx, alice.ID)
	require.NoError(t, err)
	assert.Contains(t, a.Posts, post.ID)
}

func TestCreatePostValidation(t *testing.T) {
	f := newFixture(t)
	alice := f.registerUser(t, "Alice", "alice@example.com")
	ctx := context.Background()

	_, err := f.svc.CreatePost(ctx, alice.ID, "   ", fakeImage())
	assert.ErrorIs(t, err, apperr.ErrValidation)

	_, err = f.svc.CreatePost(ctx, alice.ID, "no image", nil)
	assert.ErrorIs(t, err, apperr.ErrValidation)

	posts, _ := f.posts.FindAll(ctx)
	assert.Empty(t, posts)
}

func TestCreatePostUploadFailureStoresNothing(t *testing.T) {
	f := newFixture(t)
	alice := f.registerUser(t, "Alice", "alice@example.com")
	ctx := context.Background()

	f.images.err = assert.AnError
	_, err := f.svc.CreatePost(ctx, alice.ID, "hello", fakeImage())
	assert.ErrorIs(t, err, apperr.ErrUpload)

	posts, _ := f.posts.FindAll(ctx)
	assert.Empty(t, posts)
}

func TestCreatePostAppendFailureIsSurfaced(t *testing.T) {
	f := newFixture(t)
	alice := f.registerUser(t, "Alice", "alice@example.com")
	ctx := context.Background()

	log := logrus.New()
	log.SetOutput(io.Discard)
	svc := NewSocial(&failingAppendUsers{UserStore: f.users}, f.posts, f.images,
		nil, f.tokens, 500000, log)

	_, err := svc.CreatePost(ctx, alice.ID, "hello", fakeImage())
	require.Error(t, err)

	// the first write committed: the post exists but is not listed under
	// its creator — the partial state is observable, not hidden
	posts, _ := f.posts.FindAll(ctx)
	assert.Len(t, posts, 1)
	a, _ := f.users.FindByID(ctx, alice.ID)
	assert.Empty(t, a.Posts)
}

func TestGetPostNotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.GetPost(context.Background(), newID())
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestGetPostsNewestFirst(t *testing.T) {
	f := newFixture(t)
	alice := f.registerUser(t, "Alice", "alice@example.com")
	ctx := context.Background()

	first := f.createPost(t, alice, "first")
	second := f.createPost(t, alice, "second")

	posts, err := f.svc.GetPosts(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, second.ID, posts[0].ID)
	assert.Equal(t, first.ID, posts[1].ID)
}

func TestUpdatePostOnlyChangesBody(t *testing.T) {
	f := newFixture(t)
	alice := f.registerUser(t, "Alice", "alice@example.com")
	ctx := context.Background()

	post := f.createPost(t, alice, "original")

	updated, err := f.svc.UpdatePost(ctx, alice.ID, post.ID, "edited")
	require.NoError(t, err)
	assert.Equal(t, "edited", updated.Body)
	assert.Equal(t, post.Image, updated.Image)
	assert.Equal(t, post.Creator, updated.Creator)
	assert.Equal(t, post.CreatedAt, updated.CreatedAt)
}

func TestUpdatePostByNonCreatorForbidden(t *testing.T) {
	f := newFixture(t)
	alice := f.registerUser(t, "Alice", "alice@example.com")
	bob := f.registerUser(t, "Bob", "bob@example.com")
	ctx := context.Background()

	post := f.createPost(t, alice, "alice's post")

	_, err := f.svc.UpdatePost(ctx, bob.ID, post.ID, "hijacked")
	assert.ErrorIs(t, err, apperr.ErrForbidden)
}

func TestUpdatePostNotFound(t *testing.T) {
	f := newFixture(t)
	alice := f.registerUser(t, "Alice", "alice@example.com")

	_, err := f.svc.UpdatePost(context.Background(), alice.ID, newID(), "body")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestDeletePostByNonCreatorForbidden(t *testing.T) {
	f := newFixture(t)
	alice := f.registerUser(t, "Alice", "alice@example.com")
	bob := f.registerUser(t, "Bob", "bob@example.com")
	ctx := context.Background()

	post := f.createPost(t, alice, "keep me")

	err := f.svc.DeletePost(ctx, bob.ID, post.ID)
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	// post remains retrievable, unchanged
	got, err := f.svc.GetPost(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "keep me", got.Body)
}

func TestDeletePostNotFound(t *testing.T) {
	f := newFixture(t)
	alice := f.registerUser(t, "Alice", "alice@example.com")

	err := f.svc.DeletePost(context.Background(), alice.ID, newID())
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestDeletePostCleansUpReferences(t *testing.T) {
	f := newFixture(t)
	alice := f.registerUser(t, "Alice", "alice@example.com")
	bob := f.registerUser(t, "Bob", "bob@example.com")
	ctx := context.Background()

	post := f.createPost(t, alice, "to be deleted")

	_, _, err := f.svc.ToggleBookmark(ctx, bob.ID, post.ID)
	require.NoError(t, err)

	require.NoError(t, f.svc.DeletePost(ctx, alice.ID, post.ID))

	_, err = f.svc.GetPost(ctx, post.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	a, _ := f.users.FindByID(ctx, alice.ID)
	assert.NotContains(t, a.Posts, post.ID)

	b, _ := f.users.FindByID(ctx, bob.ID)
	assert.NotContains(t, b.Bookmarks, post.ID)
}

func TestLikeUnlikeIsItsOwnInverse(t *testing.T) {
	f := newFixture(t)
	alice := f.registerUser(t, "Alice", "alice@example.com")
	bob := f.registerUser(t, "Bob", "bob@example.com")
	ctx := context.Background()

	post := f.createPost(t, alice, "likeable")

	liked, err := f.svc.LikeUnlike(ctx, bob.ID, post.ID)
	require.NoError(t, err)
	assert.Contains(t, liked.Likes, bob.ID)

	unliked, err := f.svc.LikeUnlike(ctx, bob.ID, post.ID)
	require.NoError(t, err)
	assert.NotContains(t, unliked.Likes, bob.ID)
	assert.Len(t, unliked.Likes, len(post.Likes))
}

func TestLikeUnknownPost(t *testing.T) {
	f := newFixture(t)
	alice := f.registerUser(t, "Alice", "alice@example.com")

	_, err := f.svc.LikeUnlike(context.Background(), alice.ID, newID())
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestFollowingFeedEmptyWithoutFollowees(t *testing.T) {
	f := newFixture(t)
	alice := f.registerUser(t, "Alice", "alice@example.com")
	bob := f.registerUser(t, "Bob", "bob@example.com")
	f.createPost(t, bob, "not in alice's feed")

	feed, err := f.svc.FollowingFeed(context.Background(), alice.ID)
	require.NoError(t, err)
	assert.Empty(t, feed)
}

func TestFollowingFeedOnlyFollowedCreatorsNewestFirst(t *testing.T) {
	f := newFixture(t)
	alice := f.registerUser(t, "Alice", "alice@example.com")
	bob := f.registerUser(t, "Bob", "bob@example.com")
	carol := f.registerUser(t, "Carol", "carol@example.com")
	ctx := context.Background()

	older := f.createPost(t, bob, "older")
	newer := f.createPost(t, bob, "newer")
	f.createPost(t, carol, "carol's post")

	_, err := f.svc.FollowUnfollow(ctx, alice.ID, bob.ID)
	require.NoError(t, err)

	feed, err := f.svc.FollowingFeed(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, feed, 2)
	assert.Equal(t, newer.ID, feed[0].ID)
	assert.Equal(t, older.ID, feed[1].ID)
}

func TestToggleBookmarkRequiresExistingPost(t *testing.T) {
	// chosen policy: bookmarking a nonexistent post id is rejected
	f := newFixture(t)
	alice := f.registerUser(t, "Alice", "alice@example.com")

	_, _, err := f.svc.ToggleBookmark(context.Background(), alice.ID, newID())
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestToggleBookmarkAlternates(t *testing.T) {
	f := newFixture(t)
	alice := f.registerUser(t, "Alice", "alice@example.com")
	bob := f.registerUser(t, "Bob", "bob@example.com")
	ctx := context.Background()

	post := f.createPost(t, bob, "bookmarkable")

	bookmarks, added, err := f.svc.ToggleBookmark(ctx, alice.ID, post.ID)
	require.NoError(t, err)
	assert.True(t, added)
	assert.Contains(t, bookmarks, post.ID)

	bookmarks, added, err = f.svc.ToggleBookmark(ctx, alice.ID, post.ID)
	require.NoError(t, err)
	assert.False(t, added)
	assert.NotContains(t, bookmarks, post.ID)
}

func TestBookmarkOwnPostAllowed(t *testing.T) {
	f := newFixture(t)
	alice := f.registerUser(t, "Alice", "alice@example.com")
	ctx := context.Background()

	post := f.createPost(t, alice, "self bookmark")

	bookmarks, added, err := f.svc.ToggleBookmark(ctx, alice.ID, post.ID)
	require.NoError(t, err)
	assert.True(t, added)
	assert.Contains(t, bookmarks, post.ID)
}

func TestBookmarksNewestFirst(t *testing.T) {
	f := newFixture(t)
	alice := f.registerUser(t, "Alice", "alice@example.com")
	bob := f.registerUser(t, "Bob", "bob@example.com")
	ctx := context.Background()

	older := f.createPost(t, bob, "older")
	newer := f.createPost(t, bob, "newer")

	_, _, err := f.svc.ToggleBookmark(ctx, alice.ID, older.ID)
	require.NoError(t, err)
	_, _, err = f.svc.ToggleBookmark(ctx, alice.ID, newer.ID)
	require.NoError(t, err)

	posts, err := f.svc.Bookmarks(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, newer.ID, posts[0].ID)
	assert.Equal(t, older.ID, posts[1].ID)
}

func TestUserPosts(t *testing.T) {
	f := newFixture(t)
	alice := f.registerUser(t, "Alice", "alice@example.com")
	bob := f.registerUser(t, "Bob", "bob@example.com")
	ctx := context.Background()

	older := f.createPost(t, alice, "older")
	newer := f.createPost(t, alice, "newer")
	f.createPost(t, bob, "bob's post")

	posts, err := f.svc.UserPosts(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, newer.ID, posts[0].ID)
	assert.Equal(t, older.ID, posts[1].ID)
}

func TestUserPostsUnknownUser(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.UserPosts(context.Background(), newID())
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
