package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetAPIInfo is the health/info endpoint: a liveness message plus a static
// description of every endpoint.
func (h *Handlers) GetAPIInfo(c *gin.Context) {
	endpoints := gin.H{
		"GET": gin.H{
			"/api": gin.H{
				"params":   []string{},
				"queries":  []string{},
				"response": "Lists all endpoints",
			},
			"/api/categories": gin.H{
				"params":   []string{},
				"queries":  []string{},
				"response": "All categories",
			},
			"/api/reviews": gin.H{
				"params":   []string{"/:id", "/:id/comments"},
				"queries":  []string{"?sort_by", "?order", "?limit", "?p", "?category"},
				"response": "All reviews or review(s) corresponding to params / queries",
			},
			"/api/users": gin.H{
				"params":   []string{"/:username", "/:username/votes"},
				"queries":  []string{},
				"response": "All users, a single user, or a user's votes",
			},
		},
		"POST": gin.H{
			"/api/categories": gin.H{
				"expected": gin.H{"slug": "A unique category name", "description": "What the category is"},
				"response": "The posted category",
			},
			"/api/reviews": gin.H{
				"expected": gin.H{"owner": "A valid username", "title": "Review title", "review_body": "The review", "designer": "Game designer", "category": "A valid category slug"},
				"response": "The posted review",
			},
			"/api/reviews/:id/comments": gin.H{
				"expected": gin.H{"username": "A unique, valid username", "body": "The comment body"},
				"response": "The posted comment",
			},
			"/api/users/:username/votes": gin.H{
				"expected": gin.H{"review_id": "<int>"},
				"response": "The cast vote",
			},
		},
		"PATCH": gin.H{
			"/api/reviews/:id": gin.H{
				"expected": gin.H{"inc_votes": "<int>"},
				"response": "The patched review",
			},
			"/api/comments/:id": gin.H{
				"expected": gin.H{"inc_votes": "<int>", "body": "(optional) replacement body"},
				"response": "The patched comment",
			},
		},
		"DELETE": gin.H{
			"/api/comments/:id": gin.H{
				"response": "Status code 204 & no content",
			},
			"/api/users/:username/votes": gin.H{
				"expected": gin.H{"review_id": "<int>"},
				"response": "Status code 204 & no content",
			},
		},
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "API Healthy",
		"version":   "1.0",
		"endpoints": endpoints,
	})
}
