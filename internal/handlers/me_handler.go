package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/AnarosBeauty/salon-scheduler/internal/middleware"
	"github.com/AnarosBeauty/salon-scheduler/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	userID := middleware.UserID(c)

	var profile models.Profile
	if err := h.db.
		Preload("Skills").
		First(&profile, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user_not_found"})
		return
	}

	skills := make([]uint, 0, len(profile.Skills))
	for _, s := range profile.Skills {
		skills = append(skills, s.CategoryID)
	}

	c.JSON(http.StatusOK, gin.H{
		"id":         profile.ID,
		"first_name": profile.FirstName,
		"last_name":  profile.LastName,
		"email":      profile.Email,
		"role":       profile.Role,
		"color_code": profile.ColorCode,
		"skills":     skills,
	})
}
