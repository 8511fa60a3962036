package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/AnarosBeauty/salon-scheduler/internal/domain/role"
	"github.com/AnarosBeauty/salon-scheduler/internal/httperr"
	"github.com/AnarosBeauty/salon-scheduler/internal/models"
	"github.com/AnarosBeauty/salon-scheduler/internal/validators"
)

type ProfileHandler struct {
	db *gorm.DB
}

func NewProfileHandler(db *gorm.DB) *ProfileHandler {
	return &ProfileHandler{db: db}
}

// --------- Requests ---------

type CreateProfileRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	Role      string `json:"role" binding:"required"`
	ColorCode string `json:"color_code"`
}

type UpdateProfileRequest struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	ColorCode *string `json:"color_code,omitempty"`
	Role      *string `json:"role,omitempty"`
}

type ReplaceSkillsRequest struct {
	CategoryIDs []uint `json:"category_ids" binding:"required"`
}

// ======================================================
// LIST / GET
// ======================================================

func (h *ProfileHandler) List(c *gin.Context) {
	q := h.db.Preload("Skills")

	if roleFilter := strings.TrimSpace(c.Query("role")); roleFilter != "" {
		if _, ok := role.Parse(roleFilter); !ok {
			httperr.BadRequest(c, "invalid_role", "Rôle inconnu.")
			return
		}
		q = q.Where("role = ?", roleFilter)
	}

	var profiles []models.Profile
	if err := q.
		Order("first_name ASC").
		Find(&profiles).Error; err != nil {

		httperr.Internal(c, "failed_to_list_profiles", "Impossible de lister les profils.")
		return
	}

	c.JSON(http.StatusOK, profiles)
}

func (h *ProfileHandler) Get(c *gin.Context) {
	var profile models.Profile
	if err := h.db.
		Preload("Skills").
		First(&profile, "id = ?", c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "profile_not_found", "Profil introuvable.")
		return
	}

	c.JSON(http.StatusOK, profile)
}

// ListServices renvoie les prestations réservables avec ce profil : celles
// dont la catégorie figure dans ses compétences. C'est la liste que
// l'étape 3 de l'assistant de réservation affiche.
func (h *ProfileHandler) ListServices(c *gin.Context) {
	profileID := c.Param("id")

	var profile models.Profile
	if err := h.db.First(&profile, "id = ?", profileID).Error; err != nil {
		httperr.NotFound(c, "profile_not_found", "Profil introuvable.")
		return
	}

	var services []models.Service
	if err := h.db.
		Preload("Category").
		Where(
			"category_id IN (?)",
			h.db.Model(&models.StaffSkill{}).
				Select("category_id").
				Where("profile_id = ?", profileID),
		).
		Order("name ASC").
		Find(&services).Error; err != nil {

		httperr.Internal(c, "failed_to_list_services", "Impossible de lister les prestations.")
		return
	}

	c.JSON(http.StatusOK, services)
}

// ======================================================
// CREATE / UPDATE
// ======================================================

func (h *ProfileHandler) Create(c *gin.Context) {
	var req CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Données invalides.")
		return
	}

	if _, ok := role.Parse(req.Role); !ok {
		httperr.BadRequest(c, "invalid_role", "Rôle inconnu.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !validators.IsEmailDomainValid(email) {
		httperr.BadRequest(c, "invalid_email_domain", "Le domaine de l'adresse e-mail semble invalide.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Erreur interne.")
		return
	}

	profile := models.Profile{
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		Email:        email,
		PasswordHash: string(hashed),
		Role:         req.Role,
	}
	if req.ColorCode != "" {
		profile.ColorCode = req.ColorCode
	}

	if err := h.db.Create(&profile).Error; err != nil {
		httperr.Conflict(c, "email_already_exists", "Un profil utilise déjà cette adresse e-mail.")
		return
	}

	c.JSON(http.StatusCreated, profile)
}

func (h *ProfileHandler) Update(c *gin.Context) {
	var profile models.Profile
	if err := h.db.First(&profile, "id = ?", c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "profile_not_found", "Profil introuvable.")
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Données invalides.")
		return
	}

	if req.Role != nil {
		if _, ok := role.Parse(*req.Role); !ok {
			httperr.BadRequest(c, "invalid_role", "Rôle inconnu.")
			return
		}
		profile.Role = *req.Role
	}
	if req.FirstName != nil {
		profile.FirstName = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		profile.LastName = strings.TrimSpace(*req.LastName)
	}
	if req.ColorCode != nil {
		profile.ColorCode = *req.ColorCode
	}

	if err := h.db.Save(&profile).Error; err != nil {
		httperr.Internal(c, "failed_to_update_profile", "Impossible de modifier le profil.")
		return
	}

	c.JSON(http.StatusOK, profile)
}

// ======================================================
// SKILLS
// ======================================================

// ReplaceSkills remplace l'ensemble des compétences en une transaction :
// jamais d'état partiel entre la suppression et la réinsertion.
func (h *ProfileHandler) ReplaceSkills(c *gin.Context) {
	profileID := c.Param("id")

	var profile models.Profile
	if err := h.db.First(&profile, "id = ?", profileID).Error; err != nil {
		httperr.NotFound(c, "profile_not_found", "Profil introuvable.")
		return
	}

	var req ReplaceSkillsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Données invalides.")
		return
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.
			Model(&models.ServiceCategory{}).
			Where("id IN ?", req.CategoryIDs).
			Count(&count).Error; err != nil {
			return err
		}
		if int(count) != len(req.CategoryIDs) {
			return httperr.ErrBusiness("category_not_found")
		}

		if err := tx.
			Where("profile_id = ?", profileID).
			Delete(&models.StaffSkill{}).Error; err != nil {
			return err
		}

		for _, categoryID := range req.CategoryIDs {
			skill := models.StaffSkill{
				ProfileID:  profileID,
				CategoryID: categoryID,
			}
			if err := tx.Create(&skill).Error; err != nil {
				return err
			}
		}

		return nil
	})

	if err != nil {
		if httperr.IsBusiness(err, "category_not_found") {
			httperr.BadRequest(c, "category_not_found", "Catégorie introuvable.")
			return
		}
		httperr.Internal(c, "failed_to_replace_skills", "Impossible de modifier les compétences.")
		return
	}

	var skills []models.StaffSkill
	h.db.Where("profile_id = ?", profileID).Find(&skills)

	c.JSON(http.StatusOK, skills)
}
