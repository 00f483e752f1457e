package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handlers) GetAllCategories(c *gin.Context) {
	categories, err := h.categories.FetchAll()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

func (h *Handlers) PostCategory(c *gin.Context) {
	var req struct {
		Slug        string `json:"slug"`
		Description string `json:"description"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing slug or description"})
		return
	}

	category, err := h.categories.Insert(req.Slug, req.Description)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"category": category})
}
