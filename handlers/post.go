package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

type updatePostRequest struct {
	Body string `json:"body"`
}

// CreatePost handles POST /api/posts. Multipart form: "body" text field
// plus an "image" file.
func (h *Handler) CreatePost(c *gin.Context) {
	actor, ok := h.actorID(c)
	if !ok {
		return
	}

	body := c.PostForm("body")

	var image io.Reader
	if fileHeader, err := c.FormFile("image"); err == nil {
		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "post image is required"})
			return
		}
		defer file.Close()
		image = file
	}

	ctx, cancel := uploadContext(c)
	defer cancel()

	post, err := h.svc.CreatePost(ctx, actor, body, image)
	if err != nil {
		h.abortError(c, err)
		return
	}

	c.JSON(http.StatusCreated, post)
}

// GetPost handles GET /api/posts/:id.
func (h *Handler) GetPost(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	post, err := h.svc.GetPost(ctx, id)
	if err != nil {
		h.abortError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// GetPosts handles GET /api/posts.
func (h *Handler) GetPosts(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	posts, err := h.svc.GetPosts(ctx)
	if err != nil {
		h.abortError(c, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

// UpdatePost handles PATCH /api/posts/:id.
func (h *Handler) UpdatePost(c *gin.Context) {
	actor, ok := h.actorID(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	var req updatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "post body is required"})
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	post, err := h.svc.UpdatePost(ctx, actor, id, req.Body)
	if err != nil {
		h.abortError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// DeletePost handles DELETE /api/posts/:id.
func (h *Handler) DeletePost(c *gin.Context) {
	actor, ok := h.actorID(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.svc.DeletePost(ctx, actor, id); err != nil {
		h.abortError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "post deleted successfully"})
}

// FollowingFeed handles GET /api/posts/following.
func (h *Handler) FollowingFeed(c *gin.Context) {
	actor, ok := h.actorID(c)
	if !ok {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	posts, err := h.svc.FollowingFeed(ctx, actor)
	if err != nil {
		h.abortError(c, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

// LikeUnlike handles POST /api/posts/:id/like.
func (h *Handler) LikeUnlike(c *gin.Context) {
	actor, ok := h.actorID(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	post, err := h.svc.LikeUnlike(ctx, actor, id)
	if err != nil {
		h.abortError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// ToggleBookmark handles POST /api/posts/:id/bookmark.
func (h *Handler) ToggleBookmark(c *gin.Context) {
	actor, ok := h.actorID(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	bookmarks, added, err := h.svc.ToggleBookmark(ctx, actor, id)
	if err != nil {
		h.abortError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"bookmarks": bookmarks, "bookmarked": added})
}
