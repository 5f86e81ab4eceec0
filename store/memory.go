package store

import (
	"context"
	"sort"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/pratikdhikale87/Social-media/apperr"
	"github.com/pratikdhikale87/Social-media/models"
)

// MemoryUsers is an in-memory UserStore used by the tests in place of
// Mongo. Same per-document atomicity, same NotFound behavior.
type MemoryUsers struct {
	mu    sync.RWMutex
	users map[primitive.ObjectID]*models.User
	order []primitive.ObjectID
}

func NewMemoryUsers() *MemoryUsers {
	return &MemoryUsers{users: make(map[primitive.ObjectID]*models.User)}
}

func (s *MemoryUsers) Insert(ctx context.Context, u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := cloneUser(u)
	s.users[u.ID] = cp
	s.order = append(s.order, u.ID)
	return nil
}

func (s *MemoryUsers) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return nil, apperr.NotFound("user not found")
	}
	return cloneUser(u), nil
}

func (s *MemoryUsers) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			return cloneUser(u), nil
		}
	}
	return nil, apperr.NotFound("user not found")
}

func (s *MemoryUsers) List(ctx context.Context, limit int64) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.User, 0, len(s.order))
	// newest first: reverse insertion order, createdAt is monotonic here
	for i := len(s.order) - 1; i >= 0 && int64(len(out)) < limit; i-- {
		out = append(out, *cloneUser(s.users[s.order[i]]))
	}
	return out, nil
}

func (s *MemoryUsers) UpdateProfile(ctx context.Context, id primitive.ObjectID, upd ProfileUpdate) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, apperr.NotFound("user not found")
	}
	if upd.FullName != nil {
		u.FullName = *upd.FullName
	}
	if upd.Bio != nil {
		u.Bio = *upd.Bio
	}
	return cloneUser(u), nil
}

func (s *MemoryUsers) SetProfilePhoto(ctx context.Context, id primitive.ObjectID, url string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, apperr.NotFound("user not found")
	}
	u.ProfilePhoto = url
	return cloneUser(u), nil
}

func (s *MemoryUsers) AddFollower(ctx context.Context, id, followerID primitive.ObjectID) error {
	return s.mutate(id, func(u *models.User) { u.Followers = addToSet(u.Followers, followerID) })
}

func (s *MemoryUsers) RemoveFollower(ctx context.Context, id, followerID primitive.ObjectID) error {
	return s.mutate(id, func(u *models.User) { u.Followers = pull(u.Followers, followerID) })
}

func (s *MemoryUsers) AddFollowing(ctx context.Context, id, targetID primitive.ObjectID) error {
	return s.mutate(id, func(u *models.User) { u.Following = addToSet(u.Following, targetID) })
}

func (s *MemoryUsers) RemoveFollowing(ctx context.Context, id, targetID primitive.ObjectID) error {
	return s.mutate(id, func(u *models.User) { u.Following = pull(u.Following, targetID) })
}

func (s *MemoryUsers) AddBookmark(ctx context.Context, id, postID primitive.ObjectID) (*models.User, error) {
	if err := s.mutate(id, func(u *models.User) { u.Bookmarks = addToSet(u.Bookmarks, postID) }); err != nil {
		return nil, err
	}
	return s.FindByID(ctx, id)
}

func (s *MemoryUsers) RemoveBookmark(ctx context.Context, id, postID primitive.ObjectID) (*models.User, error) {
	if err := s.mutate(id, func(u *models.User) { u.Bookmarks = pull(u.Bookmarks, postID) }); err != nil {
		return nil, err
	}
	return s.FindByID(ctx, id)
}

func (s *MemoryUsers) AppendPost(ctx context.Context, id, postID primitive.ObjectID) error {
	return s.mutate(id, func(u *models.User) { u.Posts = append(u.Posts, postID) })
}

func (s *MemoryUsers) RemovePost(ctx context.Context, id, postID primitive.ObjectID) error {
	return s.mutate(id, func(u *models.User) { u.Posts = pull(u.Posts, postID) })
}

func (s *MemoryUsers) SweepBookmarks(ctx context.Context, postID primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		u.Bookmarks = pull(u.Bookmarks, postID)
	}
	return nil
}

func (s *MemoryUsers) mutate(id primitive.ObjectID, fn func(u *models.User)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return apperr.NotFound("user not found")
	}
	fn(u)
	return nil
}

// MemoryPosts is the in-memory PostStore counterpart.
type MemoryPosts struct {
	mu    sync.RWMutex
	posts map[primitive.ObjectID]*models.Post
	seq   map[primitive.ObjectID]int
	next  int
}

func NewMemoryPosts() *MemoryPosts {
	return &MemoryPosts{
		posts: make(map[primitive.ObjectID]*models.Post),
		seq:   make(map[primitive.ObjectID]int),
	}
}

func (s *MemoryPosts) Insert(ctx context.Context, p *models.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.posts[p.ID] = clonePost(p)
	s.seq[p.ID] = s.next
	s.next++
	return nil
}

func (s *MemoryPosts) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.posts[id]
	if !ok {
		return nil, apperr.NotFound("post not found")
	}
	return clonePost(p), nil
}

func (s *MemoryPosts) FindAll(ctx context.Context) ([]models.Post, error) {
	return s.filter(func(p *models.Post) bool { return true }), nil
}

func (s *MemoryPosts) FindByCreators(ctx context.Context, creators []primitive.ObjectID) ([]models.Post, error) {
	set := idSet(creators)
	return s.filter(func(p *models.Post) bool { return set[p.Creator] }), nil
}

func (s *MemoryPosts) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Post, error) {
	set := idSet(ids)
	return s.filter(func(p *models.Post) bool { return set[p.ID] }), nil
}

func (s *MemoryPosts) UpdateBody(ctx context.Context, id primitive.ObjectID, body string) (*models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.posts[id]
	if !ok {
		return nil, apperr.NotFound("post not found")
	}
	p.Body = body
	return clonePost(p), nil
}

func (s *MemoryPosts) Delete(ctx context.Context, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.posts[id]; !ok {
		return apperr.NotFound("post not found")
	}
	delete(s.posts, id)
	delete(s.seq, id)
	return nil
}

func (s *MemoryPosts) AddLike(ctx context.Context, postID, userID primitive.ObjectID) (*models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.posts[postID]
	if !ok {
		return nil, apperr.NotFound("post not found")
	}
	p.Likes = addToSet(p.Likes, userID)
	return clonePost(p), nil
}

func (s *MemoryPosts) RemoveLike(ctx context.Context, postID, userID primitive.ObjectID) (*models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.posts[postID]
	if !ok {
		return nil, apperr.NotFound("post not found")
	}
	p.Likes = pull(p.Likes, userID)
	return clonePost(p), nil
}

func (s *MemoryPosts) filter(keep func(p *models.Post) bool) []models.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Post{}
	for _, p := range s.posts {
		if keep(p) {
			out = append(out, *clonePost(p))
		}
	}
	// newest first; insertion sequence breaks createdAt ties so ordering
	// stays deterministic when posts land within the same millisecond
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt != out[j].CreatedAt {
			return out[i].CreatedAt > out[j].CreatedAt
		}
		return s.seq[out[i].ID] > s.seq[out[j].ID]
	})
	return out
}

func addToSet(ids []primitive.ObjectID, id primitive.ObjectID) []primitive.ObjectID {
	for _, v := range ids {
		if v == id {
			return ids
		}
	}
	return append(ids, id)
}

func pull(ids []primitive.ObjectID, id primitive.ObjectID) []primitive.ObjectID {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

func idSet(ids []primitive.ObjectID) map[primitive.ObjectID]bool {
	set := make(map[primitive.ObjectID]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}

func cloneUser(u *models.User) *models.User {
	cp := *u
	cp.Followers = append([]primitive.ObjectID(nil), u.Followers...)
	cp.Following = append([]primitive.ObjectID(nil), u.Following...)
	cp.Bookmarks = append([]primitive.ObjectID(nil), u.Bookmarks...)
	cp.Posts = append([]primitive.ObjectID(nil), u.Posts...)
	return &cp
}

func clonePost(p *models.Post) *models.Post {
	cp := *p
	cp.Likes = append([]primitive.ObjectID(nil), p.Likes...)
	cp.Comments = append([]primitive.ObjectID(nil), p.Comments...)
	return &cp
}
