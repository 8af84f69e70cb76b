package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/weiawesome/wes-social/internal/service"
	pkglog "github.com/weiawesome/wes-social/pkg/log"
	"github.com/weiawesome/wes-social/pkg/middleware"
)

// Services groups the business services behind the HTTP API.
type Services struct {
	Accounts service.AccountService
	Posts    service.PostService
	Likes    service.LikeService
	Follows  service.FollowService
	Replies  service.ReplyService
}

// Handler handles HTTP requests for the social API.
type Handler struct {
	accounts       service.AccountService
	posts          service.PostService
	likes          service.LikeService
	follows        service.FollowService
	replies        service.ReplyService
	authMiddleware *middleware.AuthMiddleware
}

// NewHandler creates a new HTTP handler.
func NewHandler(svcs Services, authMiddleware *middleware.AuthMiddleware) *Handler {
	useJSONFieldNames()
	return &Handler{
		accounts:       svcs.Accounts,
		posts:          svcs.Posts,
		likes:          svcs.Likes,
		follows:        svcs.Follows,
		replies:        svcs.Replies,
		authMiddleware: authMiddleware,
	}
}

// NewRouter builds the gin engine with recovery, request logging and all routes.
func NewRouter(h *Handler, logger zerolog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(pkglog.GinMiddleware(logger))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	h.RegisterRoutes(r)
	return r
}

// RegisterRoutes registers all routes.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")
	{
		// Public routes
		api.POST("/auth/login", h.Login)
		api.POST("/accounts", h.Register)

		// Protected routes
		protected := api.Group("")
		protected.Use(h.authMiddleware.RequireAuth())

		accounts := protected.Group("/accounts")
		{
			accounts.GET("", h.ListAccounts)
			accounts.GET("/:id", h.GetAccount)
			accounts.PUT("/:id", h.UpdateAccount)
			accounts.DELETE("/:id", h.DeleteAccount)
			accounts.GET("/:id/posts", h.ListAccountPosts)
		}

		posts := protected.Group("/posts")
		{
			posts.POST("", h.CreatePost)
			posts.GET("", h.ListPosts)
			posts.GET("/:id", h.GetPost)
			posts.PUT("/:id", h.UpdatePost)
			posts.DELETE("/:id", h.DeletePost)
		}

		likes := protected.Group("/likes")
		{
			likes.POST("", h.CreateLike)
			likes.GET("", h.ListLikes)
			likes.GET("/:id", h.GetLike)
			likes.DELETE("/:id", h.DeleteLike)
		}

		follows := protected.Group("/follows")
		{
			follows.POST("", h.CreateFollow)
			follows.GET("", h.ListFollows)
			follows.GET("/:id", h.GetFollow)
			follows.DELETE("/:id", h.DeleteFollow)
		}

		replies := protected.Group("/replies")
		{
			replies.POST("", h.CreateReply)
			replies.GET("", h.ListReplies)
			replies.GET("/:id", h.GetReply)
			replies.PUT("/:id", h.UpdateReply)
			replies.DELETE("/:id", h.DeleteReply)
		}
	}
}
