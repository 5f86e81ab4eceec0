package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pratikdhikale87/Social-media/service"
	"github.com/pratikdhikale87/Social-media/store"
)

type registerRequest struct {
	FullName        string `json:"fullName"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type editUserRequest struct {
	FullName *string `json:"fullName"`
	Bio      *string `json:"bio"`
}

// Register handles POST /api/users/register.
func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "please fill all fields in the form"})
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	user, err := h.svc.Register(ctx, service.RegisterInput{
		FullName:        req.FullName,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		h.abortError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// Login handles POST /api/users/login.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "please check all fields"})
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	token, id, err := h.svc.Login(ctx, req.Email, req.Password)
	if err != nil {
		h.abortError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "id": id})
}

// GetUser handles GET /api/users/:id.
func (h *Handler) GetUser(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	user, err := h.svc.GetUser(ctx, id)
	if err != nil {
		h.abortError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// ListUsers handles GET /api/users.
func (h *Handler) ListUsers(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	users, err := h.svc.ListUsers(ctx)
	if err != nil {
		h.abortError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

// EditUser handles PATCH /api/users/edit.
func (h *Handler) EditUser(c *gin.Context) {
	actor, ok := h.actorID(c)
	if !ok {
		return
	}

	var req editUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid request body"})
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	user, err := h.svc.EditProfile(ctx, actor, store.ProfileUpdate{
		FullName: req.FullName,
		Bio:      req.Bio,
	})
	if err != nil {
		h.abortError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// FollowUnfollow handles PATCH /api/users/follow/:id.
func (h *Handler) FollowUnfollow(c *gin.Context) {
	actor, ok := h.actorID(c)
	if !ok {
		return
	}
	target, ok := h.pathID(c)
	if !ok {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	followed, err := h.svc.FollowUnfollow(ctx, actor, target)
	if err != nil {
		h.abortError(c, err)
		return
	}

	message := "user unfollowed successfully"
	if followed {
		message = "user followed successfully"
	}
	c.JSON(http.StatusOK, gin.H{"message": message})
}

// ChangeAvatar handles POST /api/users/avatar.
func (h *Handler) ChangeAvatar(c *gin.Context) {
	actor, ok := h.actorID(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "please select a file"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "please select a file"})
		return
	}
	defer file.Close()

	ctx, cancel := uploadContext(c)
	defer cancel()

	user, err := h.svc.ChangeAvatar(ctx, actor, file, fileHeader.Size)
	if err != nil {
		h.abortError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// UserPosts handles GET /api/users/:id/posts.
func (h *Handler) UserPosts(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	posts, err := h.svc.UserPosts(ctx, id)
	if err != nil {
		h.abortError(c, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

// Bookmarks handles GET /api/users/bookmarks.
func (h *Handler) Bookmarks(c *gin.Context) {
	actor, ok := h.actorID(c)
	if !ok {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	posts, err := h.svc.Bookmarks(ctx, actor)
	if err != nil {
		h.abortError(c, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

func requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), 10*time.Second)
}

// uploadContext allows more time for the external image store.
func uploadContext(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), 30*time.Second)
}
