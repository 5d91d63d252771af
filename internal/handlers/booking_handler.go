package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	domain "github.com/zaidJawa/salon/internal/domain/booking"
	"github.com/zaidJawa/salon/internal/httperr"
	"github.com/zaidJawa/salon/internal/httpresp"
	"github.com/zaidJawa/salon/internal/metrics"
	"github.com/zaidJawa/salon/internal/models"
	"github.com/zaidJawa/salon/internal/report"
	ucBooking "github.com/zaidJawa/salon/internal/usecase/booking"
)

type BookingHandler struct {
	db       *gorm.DB
	createUC *ucBooking.CreateBooking
	logger   zerolog.Logger
}

func NewBookingHandler(
	db *gorm.DB,
	createUC *ucBooking.CreateBooking,
	logger zerolog.Logger,
) *BookingHandler {
	return &BookingHandler{
		db:       db,
		createUC: createUC,
		logger:   logger,
	}
}

// --------- Requests ---------

type BookingServiceInput struct {
	ServiceID string `json:"serviceId" binding:"required"`
}

type CreateBookingRequest struct {
	UserID   string                `json:"userId" binding:"required"`
	SalonID  string                `json:"beautySalonId" binding:"required"`
	Date     time.Time             `json:"date" binding:"required"`
	Services []BookingServiceInput `json:"services" binding:"required,min=1,dive"`
}

type UpdateBookingRequest struct {
	UserID   string                `json:"userId"`
	SalonID  string                `json:"beautySalonId"`
	Date     *time.Time            `json:"date"`
	Status   string                `json:"status"`
	Services []BookingServiceInput `json:"services"`
}

// --------- Create (admission engine) ---------

func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid booking payload.")
		return
	}

	serviceIDs := make([]string, len(req.Services))
	for i, s := range req.Services {
		serviceIDs[i] = s.ServiceID
	}

	created, err := h.createUC.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		UserID:     req.UserID,
		SalonID:    req.SalonID,
		Date:       req.Date,
		ServiceIDs: serviceIDs,
	})
	if err != nil {
		h.writeAdmissionError(c, err)
		return
	}

	metrics.BookingAdmitted()
	h.logger.Info().
		Str("booking_id", created.ID).
		Str("salon_id", created.SalonID).
		Time("date", created.Date).
		Msg("booking admitted")

	httpresp.Created(c, created)
}

func (h *BookingHandler) writeAdmissionError(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, domain.CodeServicesRequired):
		metrics.BookingRejected(domain.CodeServicesRequired)
		httperr.BadRequest(c, domain.CodeServicesRequired,
			"At least one service must be selected.")

	case httperr.IsBusiness(err, domain.CodeSalonNotFound):
		metrics.BookingRejected(domain.CodeSalonNotFound)
		httperr.NotFound(c, domain.CodeSalonNotFound, "Beauty salon not found.")

	case httperr.IsBusiness(err, domain.CodeOutsideWorkingHours):
		metrics.BookingRejected(domain.CodeOutsideWorkingHours)
		httperr.BadRequest(c, domain.CodeOutsideWorkingHours,
			"Booking time is outside of salon working hours.")

	case httperr.IsBusiness(err, domain.CodeNoAvailableStaff):
		metrics.BookingRejected(domain.CodeNoAvailableStaff)
		httperr.Conflict(c, domain.CodeNoAvailableStaff,
			"No available staff for the selected booking time.")

	case httperr.IsBusiness(err, domain.CodeInvalidServices):
		metrics.BookingRejected(domain.CodeInvalidServices)
		c.JSON(400, gin.H{
			"error_code":      domain.CodeInvalidServices,
			"message":         "One or more services are not provided by the salon.",
			"invalidServices": httperr.BusinessMeta(err),
		})

	default:
		// Storage faults stay opaque to the caller.
		h.logger.Error().Err(err).Msg("booking admission failed")
		httperr.Internal(c, "failed_to_create_booking", "Error creating booking.")
	}
}

// --------- Read ---------

func (h *BookingHandler) Get(c *gin.Context) {
	id := c.Param("id")

	var booking models.Booking
	if err := h.db.
		Preload("Services", func(db *gorm.DB) *gorm.DB {
			return db.Order("booking_services.id ASC")
		}).
		First(&booking, "id = ?", id).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "booking_not_found", "Booking not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_booking", "Error fetching booking.")
		return
	}

	c.JSON(200, booking)
}

// Search filters bookings by service name, service price range and booking
// date range (unix milliseconds, as the admin UI sends them).
func (h *BookingHandler) Search(c *gin.Context) {
	q := h.db.
		Preload("User").
		Preload("Salon").
		Preload("Services", func(db *gorm.DB) *gorm.DB {
			return db.Order("booking_services.id ASC")
		}).
		Preload("Services.Service").
		Model(&models.Booking{})

	name := c.Query("name")
	minPrice := c.Query("minPrice")
	maxPrice := c.Query("maxPrice")

	if name != "" || minPrice != "" || maxPrice != "" {
		sub := h.db.
			Table("booking_services bs").
			Select("bs.booking_id").
			Joins("JOIN services s ON s.id = bs.service_id")

		if name != "" {
			sub = sub.Where("s.name LIKE ?", "%"+name+"%")
		}
		if minPrice != "" {
			if v, err := strconv.ParseFloat(minPrice, 64); err == nil {
				sub = sub.Where("s.price >= ?", v)
			}
		}
		if maxPrice != "" {
			if v, err := strconv.ParseFloat(maxPrice, 64); err == nil {
				sub = sub.Where("s.price <= ?", v)
			}
		}

		q = q.Where("id IN (?)", sub)
	}

	if startDate := c.Query("startDate"); startDate != "" {
		ms, err := strconv.ParseInt(startDate, 10, 64)
		if err != nil {
			httperr.BadRequest(c, "invalid_start_date", "Invalid start date.")
			return
		}
		q = q.Where("date >= ?", time.UnixMilli(ms))
	}
	if endDate := c.Query("endDate"); endDate != "" {
		ms, err := strconv.ParseInt(endDate, 10, 64)
		if err != nil {
			httperr.BadRequest(c, "invalid_end_date", "Invalid end date.")
			return
		}
		q = q.Where("date <= ?", time.UnixMilli(ms))
	}

	var bookings []models.Booking
	if err := q.Order("date ASC").Find(&bookings).Error; err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Error fetching bookings.")
		return
	}

	c.JSON(200, bookings)
}

// --------- Update / Delete (admin CRUD, no admission checks) ---------

func (h *BookingHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var req UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid booking payload.")
		return
	}

	if req.Status != "" && !domain.IsValidStatus(domain.Status(req.Status)) {
		httperr.BadRequest(c, "invalid_status", "Invalid booking status.")
		return
	}

	var booking models.Booking
	if err := h.db.First(&booking, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "booking_not_found", "Booking not found.")
		return
	}

	updates := map[string]any{}
	if req.UserID != "" {
		updates["user_id"] = req.UserID
	}
	if req.SalonID != "" {
		updates["beauty_salon_id"] = req.SalonID
	}
	if req.Date != nil {
		updates["date"] = *req.Date
	}
	if req.Status != "" {
		updates["status"] = req.Status
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if len(updates) > 0 {
			if err := tx.Model(&booking).Updates(updates).Error; err != nil {
				return err
			}
		}

		// Line items are replaced wholesale when services is present.
		if req.Services != nil {
			if err := tx.Where("booking_id = ?", id).
				Delete(&models.BookingService{}).Error; err != nil {
				return err
			}

			items := make([]models.BookingService, len(req.Services))
			for i, s := range req.Services {
				items[i] = models.BookingService{
					BookingID: id,
					ServiceID: s.ServiceID,
				}
			}
			if len(items) > 0 {
				if err := tx.Create(&items).Error; err != nil {
					return err
				}
			}
		}

		return nil
	})
	if err != nil {
		h.logger.Error().Err(err).Str("booking_id", id).Msg("failed to update booking")
		httperr.Internal(c, "failed_to_update_booking", "Error updating booking.")
		return
	}

	var updated models.Booking
	if err := h.db.
		Preload("Services", func(db *gorm.DB) *gorm.DB {
			return db.Order("booking_services.id ASC")
		}).
		First(&updated, "id = ?", id).Error; err != nil {
		httperr.Internal(c, "failed_to_get_booking", "Error fetching booking.")
		return
	}

	c.JSON(200, updated)
}

func (h *BookingHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("booking_id = ?", id).
			Delete(&models.BookingService{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Booking{}, "id = ?", id).Error
	})
	if err != nil {
		httperr.Internal(c, "failed_to_delete_booking", "Error deleting booking.")
		return
	}

	c.JSON(200, gin.H{"message": "Booking deleted"})
}

// --------- PDF report ---------

func (h *BookingHandler) PDF(c *gin.Context) {
	var bookings []models.Booking
	if err := h.db.
		Preload("User").
		Preload("Salon").
		Preload("Services", func(db *gorm.DB) *gorm.DB {
			return db.Order("booking_services.id ASC")
		}).
		Preload("Services.Service").
		Order("date ASC").
		Find(&bookings).Error; err != nil {
		httperr.Internal(c, "failed_to_generate_pdf", "Error generating PDF.")
		return
	}

	var rows []report.Row
	for _, b := range bookings {
		for _, item := range b.Services {
			row := report.Row{Date: b.Date}
			if b.User != nil {
				row.UserName = b.User.Name
				row.UserEmail = b.User.Email
				row.UserPhone = b.User.Phone
			}
			if b.Salon != nil {
				row.SalonName = b.Salon.Name
				row.SalonLocation = b.Salon.Location
				row.SalonPhone = b.Salon.Phone
			}
			if item.Service != nil {
				row.ServiceName = item.Service.Name
				row.ServicePrice = item.Service.Price
			}
			rows = append(rows, row)
		}
	}

	pdf, err := report.BookingsPDF("Booking Details", rows)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to render bookings pdf")
		httperr.Internal(c, "failed_to_generate_pdf", "Error generating PDF.")
		return
	}

	c.Header("Content-Disposition", "attachment; filename=bookings.pdf")
	c.Data(200, "application/pdf", pdf)
}
