package booking

import (
	"context"
	"time"

	domain "github.com/zaidJawa/salon/internal/domain/booking"
	"github.com/zaidJawa/salon/internal/models"
)

type CreateBookingInput struct {
	UserID     string
	SalonID    string
	Date       time.Time
	ServiceIDs []string
}

// CreateBooking admits or rejects a booking request. Checks run in a fixed
// order and the first failure wins; nothing is written unless every check
// passes.
type CreateBooking struct {
	repo domain.Repository
}

func NewCreateBooking(repo domain.Repository) *CreateBooking {
	return &CreateBooking{repo: repo}
}

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	// A booking with no line items is never valid, whatever the salon.
	if len(in.ServiceIDs) == 0 {
		return nil, domain.ErrServicesRequired()
	}

	salon, err := uc.repo.GetSalonByID(ctx, in.SalonID)
	if err != nil {
		return nil, err
	}
	if salon == nil {
		return nil, domain.ErrSalonNotFound()
	}

	ok, err := domain.WithinWorkingHours(
		salon.StartWorkingHours,
		salon.EndWorkingHours,
		in.Date,
	)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrOutsideWorkingHours()
	}

	items := make([]models.BookingService, len(in.ServiceIDs))
	for i, id := range in.ServiceIDs {
		items[i] = models.BookingService{ServiceID: id}
	}

	b := &models.Booking{
		UserID:   in.UserID,
		SalonID:  in.SalonID,
		Date:     in.Date,
		Status:   string(domain.InitialStatus()),
		Services: items,
	}

	capacity := len(salon.Users)

	// Capacity count and insert share one transaction so two concurrent
	// requests cannot both pass the check for the same window.
	err = uc.repo.InTx(ctx, func(tx domain.Repository) error {
		occupied, err := tx.CountCompletedBookingsInWindow(
			ctx,
			in.SalonID,
			in.Date,
			in.Date.Add(domain.CapacityWindow),
		)
		if err != nil {
			return err
		}
		if occupied >= int64(capacity) {
			return domain.ErrNoAvailableStaff()
		}

		if invalid := invalidServiceIDs(salon.Services, in.ServiceIDs); len(invalid) > 0 {
			return domain.ErrInvalidServices(invalid)
		}

		return tx.CreateBooking(ctx, b)
	})
	if err != nil {
		return nil, err
	}

	return b, nil
}

// invalidServiceIDs returns the requested ids the salon does not offer, in
// request order. A repeated unknown id appears once per occurrence.
func invalidServiceIDs(offered []models.Service, requested []string) []string {
	offeredSet := make(map[string]struct{}, len(offered))
	for _, s := range offered {
		offeredSet[s.ID] = struct{}{}
	}

	var invalid []string
	for _, id := range requested {
		if _, ok := offeredSet[id]; !ok {
			invalid = append(invalid, id)
		}
	}
	return invalid
}
