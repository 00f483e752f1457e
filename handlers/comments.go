package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handlers) PatchComment(c *gin.Context) {
	var req struct {
		IncVotes interface{} `json:"inc_votes"`
		Body     string      `json:"body"`
	}
	_ = c.ShouldBindJSON(&req)

	comment, err := h.comments.Edit(c.Param("id"), req.IncVotes, req.Body)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"comment": comment})
}

func (h *Handlers) DeleteComment(c *gin.Context) {
	if err := h.comments.Remove(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
