package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/zaidJawa/salon/internal/httperr"
	"github.com/zaidJawa/salon/internal/models"
)

type UserHandler struct {
	db *gorm.DB
}

func NewUserHandler(db *gorm.DB) *UserHandler {
	return &UserHandler{db: db}
}

type UpdateUserRequest struct {
	Phone    string   `json:"phone"`
	Password string   `json:"password"`
	Role     string   `json:"role"`
	SalonIDs []string `json:"salonIds"`
}

// Update edits a user's phone, password, role and salon assignments.
// Admin-gated in routes.
func (h *UserHandler) Update(c *gin.Context) {
	userID := c.Param("userId")

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	if req.Role != "" && !models.IsValidRole(req.Role) {
		httperr.BadRequest(c, "invalid_role", "Invalid role specified.")
		return
	}

	var user models.User
	if err := h.db.First(&user, "id = ?", userID).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "User not found.")
		return
	}

	updates := map[string]any{}

	if req.Phone != "" {
		var count int64
		h.db.Model(&models.User{}).
			Where("phone = ? AND id <> ?", req.Phone, userID).
			Count(&count)
		if count > 0 {
			httperr.BadRequest(c, "phone_in_use", "This phone number is already in use.")
			return
		}
		updates["phone"] = req.Phone
	}

	if req.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			httperr.Internal(c, "failed_to_hash_password", "Failed to update password.")
			return
		}
		updates["password_hash"] = string(hashed)
	}

	if req.Role != "" {
		updates["role"] = req.Role
	}

	if len(updates) > 0 {
		if err := h.db.Model(&user).Updates(updates).Error; err != nil {
			httperr.Internal(c, "failed_to_update_user", "Failed to update user.")
			return
		}
	}

	// Salon assignments are replaced wholesale when salonIds is present.
	if len(req.SalonIDs) > 0 {
		err := h.db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("user_id = ?", userID).
				Delete(&models.UserSalon{}).Error; err != nil {
				return err
			}

			now := time.Now()
			assignments := make([]models.UserSalon, len(req.SalonIDs))
			for i, salonID := range req.SalonIDs {
				assignments[i] = models.UserSalon{
					UserID:     userID,
					SalonID:    salonID,
					AssignedAt: now,
				}
			}
			return tx.Create(&assignments).Error
		})
		if err != nil {
			httperr.Internal(c, "failed_to_update_salons", "Failed to update salon assignments.")
			return
		}
	}

	if err := h.db.First(&user, "id = ?", userID).Error; err != nil {
		httperr.Internal(c, "failed_to_load_user", "Failed to load user.")
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"updatedUser": gin.H{
			"id":    user.ID,
			"phone": user.Phone,
			"role":  user.Role,
		},
	})
}
