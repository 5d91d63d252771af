package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/zaidJawa/salon/internal/cache"
	"github.com/zaidJawa/salon/internal/httperr"
	"github.com/zaidJawa/salon/internal/httpresp"
	"github.com/zaidJawa/salon/internal/models"
)

type SalonHandler struct {
	db     *gorm.DB
	cache  *cache.SalonCache
	logger zerolog.Logger
}

func NewSalonHandler(db *gorm.DB, salonCache *cache.SalonCache, logger zerolog.Logger) *SalonHandler {
	return &SalonHandler{db: db, cache: salonCache, logger: logger}
}

// --------- Requests ---------

type SalonServiceInput struct {
	ID            string  `json:"id"`
	Name          string  `json:"name" binding:"required"`
	Price         float64 `json:"price" binding:"min=0"`
	DurationInMin int     `json:"durationInMin" binding:"min=1"`
}

type CreateSalonRequest struct {
	Name              string              `json:"name" binding:"required"`
	Location          string              `json:"location" binding:"required"`
	Phone             string              `json:"phone" binding:"required"`
	StartWorkingHours string              `json:"startWorkingHours" binding:"required"`
	EndWorkingHours   string              `json:"endWorkingHours" binding:"required"`
	Services          []SalonServiceInput `json:"services"`
}

type UpdateSalonRequest struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	Phone    string `json:"phone"`
}

// --------- Handlers ---------

func (h *SalonHandler) Create(c *gin.Context) {
	var req CreateSalonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid salon payload.")
		return
	}

	salon := models.Salon{
		Name:              req.Name,
		Location:          req.Location,
		Phone:             req.Phone,
		StartWorkingHours: req.StartWorkingHours,
		EndWorkingHours:   req.EndWorkingHours,
	}

	for _, s := range req.Services {
		salon.Services = append(salon.Services, models.Service{
			ID:            s.ID,
			Name:          s.Name,
			Price:         s.Price,
			DurationInMin: s.DurationInMin,
		})
	}

	if err := h.db.Create(&salon).Error; err != nil {
		h.logger.Error().Err(err).Msg("failed to create salon")
		httperr.Internal(c, "failed_to_create_salon", "Error creating beauty salon.")
		return
	}

	httpresp.Created(c, salon)
}

func (h *SalonHandler) List(c *gin.Context) {
	var salons []models.Salon
	if err := h.db.Find(&salons).Error; err != nil {
		httperr.Internal(c, "failed_to_list_salons", "Error fetching beauty salons.")
		return
	}

	httpresp.List(c, salons)
}

func (h *SalonHandler) Get(c *gin.Context) {
	id := c.Param("id")

	if salon, ok := h.cache.Get(c.Request.Context(), id); ok {
		httpresp.OK(c, salon)
		return
	}

	var salon models.Salon
	if err := h.db.Preload("Services").First(&salon, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "salon_not_found", "Beauty salon not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_salon", "Error fetching beauty salon.")
		return
	}

	h.cache.Set(c.Request.Context(), &salon)

	httpresp.OK(c, &salon)
}

func (h *SalonHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var req UpdateSalonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid salon payload.")
		return
	}

	var salon models.Salon
	if err := h.db.First(&salon, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "salon_not_found", "Beauty salon not found.")
		return
	}

	updates := map[string]any{}
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Location != "" {
		updates["location"] = req.Location
	}
	if req.Phone != "" {
		updates["phone"] = req.Phone
	}

	if len(updates) > 0 {
		if err := h.db.Model(&salon).Updates(updates).Error; err != nil {
			httperr.Internal(c, "failed_to_update_salon", "Error updating beauty salon.")
			return
		}
	}

	h.cache.Invalidate(c.Request.Context(), id)

	httpresp.OK(c, &salon)
}

func (h *SalonHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.db.Delete(&models.Salon{}, "id = ?", id).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_salon", "Error deleting beauty salon.")
		return
	}

	h.cache.Invalidate(c.Request.Context(), id)

	httpresp.OK(c, gin.H{"message": "Beauty salon deleted"})
}
