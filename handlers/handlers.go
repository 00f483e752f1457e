package handlers

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/ryan-jm/gamecritic/config"
	"github.com/ryan-jm/gamecritic/database"
	"github.com/ryan-jm/gamecritic/store"
	"github.com/ryan-jm/gamecritic/validators"
)

type Handlers struct {
	cfg        *config.Config
	categories *store.CategoryStore
	reviews    *store.ReviewStore
	comments   *store.CommentStore
	users      *store.UserStore
	votes      *store.VoteStore
}

func New(db *database.DB, cfg *config.Config) *Handlers {
	validator := validators.New(db)

	return &Handlers{
		cfg:        cfg,
		categories: store.NewCategoryStore(db),
		reviews:    store.NewReviewStore(db, validator, cfg.StrictCategoryFilter),
		comments:   store.NewCommentStore(db, validator),
		users:      store.NewUserStore(db, validator),
		votes:      store.NewVoteStore(db, validator),
	}
}

// RegisterRoutes wires every endpoint under /api. The access gate runs on the
// whole group; it skips the info and auth endpoints itself.
func (h *Handlers) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api")
	api.Use(RequestLogger(), h.AuthMiddleware())

	api.GET("", h.GetAPIInfo)

	auth := api.Group("/auth")
	auth.Use(h.AuthRateLimiter())
	{
		auth.GET("", h.GetAuthInfo)
		auth.POST("", h.PostAuthInfo)
	}

	categories := api.Group("/categories")
	{
		categories.GET("", h.GetAllCategories)
		categories.POST("", h.PostCategory)
	}

	reviews := api.Group("/reviews")
	{
		reviews.GET("", h.GetAllReviews)
		reviews.POST("", h.PostReview)
		reviews.GET("/:id", h.GetReviewByID)
		reviews.PATCH("/:id", h.PatchReview)
		reviews.GET("/:id/comments", h.GetComments)
		reviews.POST("/:id/comments", h.PostComment)
	}

	comments := api.Group("/comments")
	{
		comments.PATCH("/:id", h.PatchComment)
		comments.DELETE("/:id", h.DeleteComment)
	}

	users := api.Group("/users")
	{
		users.GET("", h.GetAllUsers)
		users.GET("/:username", h.GetSingleUser)
		users.GET("/:username/votes", h.GetUserVotes)
		users.POST("/:username/votes", h.PostVote)
		users.DELETE("/:username/votes", h.DeleteVote)
	}
}

// respondError logs the failure and writes the tagged {message} body with its
// status. Unexpected errors surface as a 500 after mapping.
func respondError(c *gin.Context, err error) {
	reqErr := store.MapError(err)
	log.Printf("%s %s -> %d: %v", c.Request.Method, c.Request.URL.Path, reqErr.Status, err)
	c.JSON(reqErr.Status, gin.H{"message": reqErr.Message})
}
