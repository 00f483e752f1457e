package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handlers) GetAllUsers(c *gin.Context) {
	users, err := h.users.FetchAll()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users})
}

func (h *Handlers) GetSingleUser(c *gin.Context) {
	user, err := h.users.FetchSingle(c.Param("username"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (h *Handlers) GetUserVotes(c *gin.Context) {
	votes, err := h.votes.FetchByUser(c.Param("username"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"votes": votes})
}

func (h *Handlers) PostVote(c *gin.Context) {
	var req struct {
		ReviewID interface{} `json:"review_id"`
	}
	_ = c.ShouldBindJSON(&req)

	vote, err := h.votes.Insert(c.Param("username"), req.ReviewID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"vote": vote})
}

func (h *Handlers) DeleteVote(c *gin.Context) {
	var req struct {
		ReviewID interface{} `json:"review_id"`
	}
	_ = c.ShouldBindJSON(&req)

	if err := h.votes.Remove(c.Param("username"), req.ReviewID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
