package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/AnarosBeauty/salon-scheduler/internal/httperr"
	"github.com/AnarosBeauty/salon-scheduler/internal/models"
)

// CatalogHandler gère les catégories et le catalogue de prestations.
type CatalogHandler struct {
	db *gorm.DB
}

func NewCatalogHandler(db *gorm.DB) *CatalogHandler {
	return &CatalogHandler{db: db}
}

// --------- Requests ---------

type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

type CreateServiceRequest struct {
	CategoryID uint   `json:"category_id" binding:"required"`
	Name       string `json:"name" binding:"required"`
	Price      int    `json:"price" binding:"required,min=0"`
	Duration   int    `json:"duration" binding:"required,min=1"`
}

type UpdateServiceRequest struct {
	CategoryID *uint   `json:"category_id,omitempty"`
	Name       *string `json:"name,omitempty"`
	Price      *int    `json:"price,omitempty"`
	Duration   *int    `json:"duration,omitempty"`
}

// ======================================================
// CATEGORIES
// ======================================================

func (h *CatalogHandler) ListCategories(c *gin.Context) {
	var categories []models.ServiceCategory
	if err := h.db.Order("name ASC").Find(&categories).Error; err != nil {
		httperr.Internal(c, "failed_to_list_categories", "Impossible de lister les catégories.")
		return
	}

	c.JSON(http.StatusOK, categories)
}

func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Données invalides.")
		return
	}

	category := models.ServiceCategory{Name: strings.TrimSpace(req.Name)}
	if err := h.db.Create(&category).Error; err != nil {
		httperr.Conflict(c, "category_already_exists", "Cette catégorie existe déjà.")
		return
	}

	c.JSON(http.StatusCreated, category)
}

// DeleteCategory refuse la suppression tant qu'une prestation référence la
// catégorie.
func (h *CatalogHandler) DeleteCategory(c *gin.Context) {
	id := c.Param("id")

	var category models.ServiceCategory
	if err := h.db.First(&category, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "category_not_found", "Catégorie introuvable.")
		return
	}

	var count int64
	if err := h.db.
		Model(&models.Service{}).
		Where("category_id = ?", category.ID).
		Count(&count).Error; err != nil {

		httperr.Internal(c, "failed_to_delete_category", "Impossible de supprimer la catégorie.")
		return
	}

	if count > 0 {
		httperr.Conflict(c, "category_in_use", "Des prestations utilisent encore cette catégorie.")
		return
	}

	if err := h.db.Delete(&category).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_category", "Impossible de supprimer la catégorie.")
		return
	}

	c.Status(http.StatusNoContent)
}

// ======================================================
// SERVICES
// ======================================================

func (h *CatalogHandler) ListServices(c *gin.Context) {
	q := h.db.Preload("Category")

	if categoryID := strings.TrimSpace(c.Query("category_id")); categoryID != "" {
		q = q.Where("category_id = ?", categoryID)
	}

	var services []models.Service
	if err := q.
		Order("name ASC").
		Find(&services).Error; err != nil {

		httperr.Internal(c, "failed_to_list_services", "Impossible de lister les prestations.")
		return
	}

	c.JSON(http.StatusOK, services)
}

func (h *CatalogHandler) CreateService(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Données invalides.")
		return
	}

	var category models.ServiceCategory
	if err := h.db.First(&category, "id = ?", req.CategoryID).Error; err != nil {
		httperr.BadRequest(c, "category_not_found", "Catégorie introuvable.")
		return
	}

	service := models.Service{
		CategoryID: category.ID,
		Name:       strings.TrimSpace(req.Name),
		Price:      req.Price,
		Duration:   req.Duration,
	}

	if err := h.db.Create(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "Impossible de créer la prestation.")
		return
	}

	service.Category = category
	c.JSON(http.StatusCreated, service)
}

func (h *CatalogHandler) UpdateService(c *gin.Context) {
	var service models.Service
	if err := h.db.
		Preload("Category").
		First(&service, "id = ?", c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Prestation introuvable.")
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Données invalides.")
		return
	}

	if req.CategoryID != nil {
		var category models.ServiceCategory
		if err := h.db.First(&category, "id = ?", *req.CategoryID).Error; err != nil {
			httperr.BadRequest(c, "category_not_found", "Catégorie introuvable.")
			return
		}
		service.CategoryID = category.ID
		service.Category = category
	}
	if req.Name != nil {
		service.Name = strings.TrimSpace(*req.Name)
	}
	if req.Price != nil {
		service.Price = *req.Price
	}
	if req.Duration != nil {
		service.Duration = *req.Duration
	}

	if err := h.db.Save(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Impossible de modifier la prestation.")
		return
	}

	c.JSON(http.StatusOK, service)
}
