package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/pratikdhikale87/Social-media/auth"
	"github.com/pratikdhikale87/Social-media/config"
	"github.com/pratikdhikale87/Social-media/handlers"
	"github.com/pratikdhikale87/Social-media/middleware"
)

// Setup assembles the router: CORS, health endpoints, the public
// register/login routes and the authenticated API group.
func Setup(h *handlers.Handler, tokens *auth.TokenService, cfg *config.Config) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	// Public routes, rate limited per IP
	public := router.Group("/api")
	public.Use(middleware.RateLimit(cfg.RateLimit, cfg.RateWindow))
	public.POST("/users/register", h.Register)
	public.POST("/users/login", h.Login)

	protected := router.Group("/api")
	protected.Use(middleware.RequireAuth(tokens))

	// Users
	protected.GET("/users", h.ListUsers)
	protected.GET("/users/bookmarks", h.Bookmarks)
	protected.GET("/users/:id", h.GetUser)
	protected.GET("/users/:id/posts", h.UserPosts)
	protected.PATCH("/users/edit", h.EditUser)
	protected.PATCH("/users/follow/:id", h.FollowUnfollow)
	protected.POST("/users/avatar", h.ChangeAvatar)

	// Posts
	protected.POST("/posts", h.CreatePost)
	protected.GET("/posts", h.GetPosts)
	protected.GET("/posts/following", h.FollowingFeed)
	protected.GET("/posts/:id", h.GetPost)
	protected.PATCH("/posts/:id", h.UpdatePost)
	protected.DELETE("/posts/:id", h.DeletePost)
	protected.POST("/posts/:id/like", h.LikeUnlike)
	protected.POST("/posts/:id/bookmark", h.ToggleBookmark)

	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(http.StatusNotFound, gin.H{"error": "endpoint not found", "path": c.Request.URL.Path})
			return
		}
		c.String(http.StatusNotFound, "not found")
	})

	return router
}
