package booking

import (
	"context"
	"time"

	"github.com/zaidJawa/salon/internal/models"
)

type Repository interface {
	// GetSalonByID loads the salon together with its offered services and
	// staff assignments. Returns (nil, nil) when the salon does not exist.
	GetSalonByID(
		ctx context.Context,
		id string,
	) (*models.Salon, error)

	// CountCompletedBookingsInWindow counts bookings at the salon whose
	// date falls in [from, to) and whose status is "completed". Inside a
	// transaction the counted rows are locked FOR UPDATE.
	CountCompletedBookingsInWindow(
		ctx context.Context,
		salonID string,
		from time.Time,
		to time.Time,
	) (int64, error)

	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// InTx runs fn against a repository bound to a single transaction, so
	// the capacity count and the insert commit atomically.
	InTx(
		ctx context.Context,
		fn func(Repository) error,
	) error
}
