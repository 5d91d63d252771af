package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/zaidJawa/salon/internal/domain/booking"
	"github.com/zaidJawa/salon/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

func (r *BookingGormRepository) GetSalonByID(
	ctx context.Context,
	id string,
) (*models.Salon, error) {

	var salon models.Salon
	err := r.db.WithContext(ctx).
		Preload("Services").
		Preload("Users").
		First(&salon, "id = ?", id).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &salon, nil
}

func (r *BookingGormRepository) CountCompletedBookingsInWindow(
	ctx context.Context,
	salonID string,
	from time.Time,
	to time.Time,
) (int64, error) {

	// Postgres does not allow FOR UPDATE together with count(*); lock the
	// matching ids and count them client-side instead.
	var ids []string
	err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(
			"beauty_salon_id = ? AND status = ? AND date >= ? AND date < ?",
			salonID, string(domain.StatusCompleted), from, to,
		).
		Pluck("id", &ids).Error
	if err != nil {
		return 0, err
	}

	return int64(len(ids)), nil
}

func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BookingGormRepository) InTx(
	ctx context.Context,
	fn func(domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&BookingGormRepository{db: tx})
	})
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
