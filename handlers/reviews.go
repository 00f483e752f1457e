package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ryan-jm/gamecritic/store"
)

func (h *Handlers) GetAllReviews(c *gin.Context) {
	params := store.ListParams{
		SortBy:   c.Query("sort_by"),
		Order:    c.Query("order"),
		Category: c.Query("category"),
		Limit:    c.Query("limit"),
		Page:     c.Query("p"),
	}

	reviews, limit, page, err := h.reviews.FetchAll(params)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"reviews": reviews, "limit": limit, "page": page})
}

func (h *Handlers) GetReviewByID(c *gin.Context) {
	review, err := h.reviews.FetchByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"review": review})
}

func (h *Handlers) PatchReview(c *gin.Context) {
	var req struct {
		IncVotes interface{} `json:"inc_votes"`
	}
	// An absent or empty body is a no-op update that still returns the row.
	_ = c.ShouldBindJSON(&req)

	review, err := h.reviews.Update(c.Param("id"), req.IncVotes)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"review": review})
}

func (h *Handlers) PostReview(c *gin.Context) {
	var req store.InsertParams
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No valid body provided"})
		return
	}

	review, err := h.reviews.Insert(req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"review": review})
}

func (h *Handlers) GetComments(c *gin.Context) {
	comments, err := h.reviews.FetchComments(c.Param("id"), c.Query("limit"), c.Query("p"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

func (h *Handlers) PostComment(c *gin.Context) {
	var req struct {
		Username interface{} `json:"username"`
		Body     string      `json:"body"`
	}
	_ = c.ShouldBindJSON(&req)

	// A non-string username is treated the same as a missing one.
	username, _ := req.Username.(string)

	comment, err := h.reviews.InsertComment(c.Param("id"), username, req.Body)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"comment": comment})
}
