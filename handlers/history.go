package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"feedback-analysis/database"
	"feedback-analysis/models"
)

// History lists the caller's analyses, newest first.
func History(c *gin.Context) {
	db := database.GetDB()

	var analyses []models.Analysis
	err := db.Where("user_id = ?", currentUserID(c)).
		Order("created_at DESC").
		Find(&analyses).Error
	if err != nil {
		c.HTML(http.StatusInternalServerError, "history.html", gin.H{
			"Username": currentUsername(c),
			"Error":    "Could not load your history.",
		})
		return
	}

	c.HTML(http.StatusOK, "history.html", gin.H{
		"Username": currentUsername(c),
		"Analyses": analyses,
	})
}
