package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/zaidJawa/salon/internal/httperr"
	"github.com/zaidJawa/salon/internal/httpresp"
	"github.com/zaidJawa/salon/internal/models"
)

type ServiceHandler struct {
	db *gorm.DB
}

func NewServiceHandler(db *gorm.DB) *ServiceHandler {
	return &ServiceHandler{db: db}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	Name          string  `json:"name" binding:"required"`
	Price         float64 `json:"price" binding:"min=0"`
	DurationInMin int     `json:"durationInMin" binding:"required,min=1"`
	SalonID       string  `json:"salonId" binding:"required"`
}

type UpdateServiceRequest struct {
	Name  string   `json:"name"`
	Price *float64 `json:"price"`
}

type PaginatedServices struct {
	Docs       []models.Service `json:"docs"`
	TotalDocs  int64            `json:"totalDocs"`
	Limit      int              `json:"limit"`
	Page       int              `json:"page"`
	TotalPages int64            `json:"totalPages"`
}

// --------- Handlers ---------

func (h *ServiceHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid service payload.")
		return
	}

	var count int64
	h.db.Model(&models.Salon{}).Where("id = ?", req.SalonID).Count(&count)
	if count == 0 {
		httperr.NotFound(c, "salon_not_found", "Beauty salon not found.")
		return
	}

	service := models.Service{
		Name:          req.Name,
		Price:         req.Price,
		DurationInMin: req.DurationInMin,
		SalonID:       req.SalonID,
	}

	if err := h.db.Create(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "Error creating service.")
		return
	}

	httpresp.Created(c, service)
}

func (h *ServiceHandler) List(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 {
		limit = 10
	}

	var total int64
	if err := h.db.Model(&models.Service{}).Count(&total).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Error fetching services.")
		return
	}

	var services []models.Service
	if err := h.db.
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Error fetching services.")
		return
	}

	totalPages := total / int64(limit)
	if total%int64(limit) != 0 {
		totalPages++
	}

	httpresp.OK(c, PaginatedServices{
		Docs:       services,
		TotalDocs:  total,
		Limit:      limit,
		Page:       page,
		TotalPages: totalPages,
	})
}

func (h *ServiceHandler) Get(c *gin.Context) {
	id := c.Param("id")

	var service models.Service
	if err := h.db.First(&service, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "service_not_found", "Service not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_service", "Error fetching service.")
		return
	}

	httpresp.OK(c, service)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid service payload.")
		return
	}

	var service models.Service
	if err := h.db.First(&service, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Service not found.")
		return
	}

	updates := map[string]any{}
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Price != nil {
		if *req.Price < 0 {
			httperr.BadRequest(c, "invalid_price", "Price must not be negative.")
			return
		}
		updates["price"] = *req.Price
	}

	if len(updates) > 0 {
		if err := h.db.Model(&service).Updates(updates).Error; err != nil {
			httperr.Internal(c, "failed_to_update_service", "Error updating service.")
			return
		}
	}

	httpresp.OK(c, service)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.db.Delete(&models.Service{}, "id = ?", id).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_service", "Error deleting service.")
		return
	}

	httpresp.OK(c, gin.H{"message": "Service deleted"})
}
