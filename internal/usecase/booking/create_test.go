package booking

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/zaidJawa/salon/internal/domain/booking"
	"github.com/zaidJawa/salon/internal/httperr"
	"github.com/zaidJawa/salon/internal/models"
)

// fakeRepo is an in-memory domain.Repository.
type fakeRepo struct {
	mu       sync.Mutex
	salons   map[string]*models.Salon
	bookings []*models.Booking

	countErr  error
	createErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{salons: make(map[string]*models.Salon)}
}

func (f *fakeRepo) GetSalonByID(ctx context.Context, id string) (*models.Salon, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.salons[id], nil
}

func (f *fakeRepo) CountCompletedBookingsInWindow(
	ctx context.Context,
	salonID string,
	from, to time.Time,
) (int64, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	var count int64
	for _, b := range f.bookings {
		if b.SalonID != salonID || b.Status != string(domain.StatusCompleted) {
			continue
		}
		if !b.Date.Before(from) && b.Date.Before(to) {
			count++
		}
	}
	return count, nil
}

func (f *fakeRepo) CreateBooking(ctx context.Context, b *models.Booking) error {
	if f.createErr != nil {
		return f.createErr
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	b.ID = uuid.NewString()
	f.bookings = append(f.bookings, b)
	return nil
}

func (f *fakeRepo) InTx(ctx context.Context, fn func(domain.Repository) error) error {
	return fn(f)
}

// --------- fixtures ---------

const (
	salonID    = "salon-1"
	userID     = "user-1"
	haircutID  = "svc-haircut"
	facialID   = "svc-facial"
	unknownID1 = "svc-unknown-1"
	unknownID2 = "svc-unknown-2"
)

// nineToSix returns a salon open 09:00-18:00 with the given staff capacity,
// offering haircut and facial.
func nineToSix(capacity int) *models.Salon {
	salon := &models.Salon{
		ID:                salonID,
		Name:              "Beauty Salon A",
		StartWorkingHours: "09:00:00",
		EndWorkingHours:   "18:00:00",
		Services: []models.Service{
			{ID: haircutID, Name: "Haircut", Price: 20, DurationInMin: 30, SalonID: salonID},
			{ID: facialID, Name: "Facial", Price: 30, DurationInMin: 45, SalonID: salonID},
		},
	}
	for i := 0; i < capacity; i++ {
		salon.Users = append(salon.Users, models.UserSalon{
			UserID:  uuid.NewString(),
			SalonID: salonID,
		})
	}
	return salon
}

func at(hour, min int) time.Time {
	return time.Date(2024, time.March, 11, hour, min, 0, 0, time.UTC)
}

func setup(capacity int) (*CreateBooking, *fakeRepo) {
	repo := newFakeRepo()
	repo.salons[salonID] = nineToSix(capacity)
	return NewCreateBooking(repo), repo
}

// --------- tests ---------

func TestCreateBookingSuccess(t *testing.T) {
	uc, repo := setup(1)

	created, err := uc.Execute(context.Background(), CreateBookingInput{
		UserID:     userID,
		SalonID:    salonID,
		Date:       at(10, 0),
		ServiceIDs: []string{haircutID, facialID},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, string(domain.StatusPending), created.Status)
	assert.Equal(t, userID, created.UserID)
	assert.Equal(t, salonID, created.SalonID)

	require.Len(t, created.Services, 2)
	assert.Equal(t, haircutID, created.Services[0].ServiceID)
	assert.Equal(t, facialID, created.Services[1].ServiceID)

	require.Len(t, repo.bookings, 1)
}

func TestCreateBookingDuplicateServicesKeptInOrder(t *testing.T) {
	uc, _ := setup(1)

	created, err := uc.Execute(context.Background(), CreateBookingInput{
		UserID:     userID,
		SalonID:    salonID,
		Date:       at(10, 0),
		ServiceIDs: []string{haircutID, facialID, haircutID},
	})
	require.NoError(t, err)

	require.Len(t, created.Services, 3)
	assert.Equal(t, haircutID, created.Services[0].ServiceID)
	assert.Equal(t, facialID, created.Services[1].ServiceID)
	assert.Equal(t, haircutID, created.Services[2].ServiceID)
}

func TestCreateBookingWithoutServicesRejected(t *testing.T) {
	uc, repo := setup(1)

	for _, ids := range [][]string{nil, {}} {
		_, err := uc.Execute(context.Background(), CreateBookingInput{
			UserID:     userID,
			SalonID:    salonID,
			Date:       at(10, 0),
			ServiceIDs: ids,
		})
		require.Error(t, err)
		assert.True(t, httperr.IsBusiness(err, domain.CodeServicesRequired))
	}

	// No zero-line-item booking ever reaches storage.
	assert.Empty(t, repo.bookings)
}

func TestCreateBookingSalonNotFound(t *testing.T) {
	uc, repo := setup(1)

	// Unknown salon wins over every later check, even with a time and
	// services that would also fail.
	_, err := uc.Execute(context.Background(), CreateBookingInput{
		UserID:     userID,
		SalonID:    "salon-missing",
		Date:       at(3, 0),
		ServiceIDs: []string{unknownID1},
	})
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, domain.CodeSalonNotFound))
	assert.Empty(t, repo.bookings)
}

func TestCreateBookingOutsideWorkingHours(t *testing.T) {
	uc, repo := setup(1)

	cases := []struct {
		name string
		date time.Time
	}{
		{"before opening", at(8, 0)},
		{"just before opening", at(8, 59)},
		{"at closing", at(18, 0)},
		{"after closing", at(21, 30)},
		{"other date before opening", time.Date(2025, time.December, 1, 7, 0, 0, 0, time.UTC)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), CreateBookingInput{
				UserID:     userID,
				SalonID:    salonID,
				Date:       tc.date,
				ServiceIDs: []string{haircutID},
			})
			require.Error(t, err)
			assert.True(t, httperr.IsBusiness(err, domain.CodeOutsideWorkingHours))
		})
	}

	assert.Empty(t, repo.bookings)
}

func TestCreateBookingAtOpeningIsAdmitted(t *testing.T) {
	uc, _ := setup(1)

	created, err := uc.Execute(context.Background(), CreateBookingInput{
		UserID:     userID,
		SalonID:    salonID,
		Date:       at(9, 0),
		ServiceIDs: []string{haircutID},
	})
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusPending), created.Status)
}

func TestCreateBookingNoAvailableStaff(t *testing.T) {
	uc, repo := setup(2)

	// Two completed bookings inside [10:00, 11:00) exhaust capacity 2.
	repo.bookings = append(repo.bookings,
		&models.Booking{ID: "b1", SalonID: salonID, Date: at(10, 0), Status: string(domain.StatusCompleted)},
		&models.Booking{ID: "b2", SalonID: salonID, Date: at(10, 30), Status: string(domain.StatusCompleted)},
	)

	_, err := uc.Execute(context.Background(), CreateBookingInput{
		UserID:     userID,
		SalonID:    salonID,
		Date:       at(10, 0),
		ServiceIDs: []string{haircutID},
	})
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, domain.CodeNoAvailableStaff))
	assert.Len(t, repo.bookings, 2)
}

func TestCreateBookingOneBelowCapacitySucceeds(t *testing.T) {
	uc, repo := setup(2)

	repo.bookings = append(repo.bookings,
		&models.Booking{ID: "b1", SalonID: salonID, Date: at(10, 30), Status: string(domain.StatusCompleted)},
	)

	created, err := uc.Execute(context.Background(), CreateBookingInput{
		UserID:     userID,
		SalonID:    salonID,
		Date:       at(10, 0),
		ServiceIDs: []string{haircutID},
	})
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusPending), created.Status)
}

func TestCreateBookingOnlyCompletedBookingsCount(t *testing.T) {
	uc, repo := setup(1)

	// Pending and cancelled bookings in the window do not occupy staff.
	repo.bookings = append(repo.bookings,
		&models.Booking{ID: "b1", SalonID: salonID, Date: at(10, 10), Status: string(domain.StatusPending)},
		&models.Booking{ID: "b2", SalonID: salonID, Date: at(10, 20), Status: string(domain.StatusCancelled)},
		&models.Booking{ID: "b3", SalonID: salonID, Date: at(10, 30), Status: string(domain.StatusApproved)},
	)

	_, err := uc.Execute(context.Background(), CreateBookingInput{
		UserID:     userID,
		SalonID:    salonID,
		Date:       at(10, 0),
		ServiceIDs: []string{haircutID},
	})
	require.NoError(t, err)
}

func TestCreateBookingWindowIsHalfOpen(t *testing.T) {
	uc, repo := setup(1)

	// A completed booking exactly 60 minutes later is outside the window.
	repo.bookings = append(repo.bookings,
		&models.Booking{ID: "b1", SalonID: salonID, Date: at(11, 0), Status: string(domain.StatusCompleted)},
	)

	_, err := uc.Execute(context.Background(), CreateBookingInput{
		UserID:     userID,
		SalonID:    salonID,
		Date:       at(10, 0),
		ServiceIDs: []string{haircutID},
	})
	require.NoError(t, err)
}

func TestCreateBookingInvalidServices(t *testing.T) {
	uc, repo := setup(1)

	_, err := uc.Execute(context.Background(), CreateBookingInput{
		UserID:     userID,
		SalonID:    salonID,
		Date:       at(10, 0),
		ServiceIDs: []string{haircutID, unknownID1, facialID, unknownID2},
	})
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, domain.CodeInvalidServices))

	// Exactly the unmatched ids, in request order.
	meta, ok := httperr.BusinessMeta(err).([]string)
	require.True(t, ok)
	assert.Equal(t, []string{unknownID1, unknownID2}, meta)

	assert.Empty(t, repo.bookings)
}

func TestCreateBookingCapacityCheckedBeforeServices(t *testing.T) {
	uc, repo := setup(1)

	repo.bookings = append(repo.bookings,
		&models.Booking{ID: "b1", SalonID: salonID, Date: at(10, 0), Status: string(domain.StatusCompleted)},
	)

	// The request also carries an unknown service, but the staffing check
	// runs first.
	_, err := uc.Execute(context.Background(), CreateBookingInput{
		UserID:     userID,
		SalonID:    salonID,
		Date:       at(10, 0),
		ServiceIDs: []string{unknownID1},
	})
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, domain.CodeNoAvailableStaff))
}

func TestCreateBookingCapacityScenario(t *testing.T) {
	// Salon open 09:00-18:00, capacity 2, no completed bookings.
	uc, _ := setup(2)
	ctx := context.Background()

	first, err := uc.Execute(ctx, CreateBookingInput{
		UserID:     userID,
		SalonID:    salonID,
		Date:       at(10, 0),
		ServiceIDs: []string{haircutID},
	})
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusPending), first.Status)

	// The first booking is completed externally; a second request in the
	// same window still finds a free slot (1/2).
	first.Status = string(domain.StatusCompleted)

	second, err := uc.Execute(ctx, CreateBookingInput{
		UserID:     "user-2",
		SalonID:    salonID,
		Date:       at(10, 30),
		ServiceIDs: []string{facialID},
	})
	require.NoError(t, err)

	// Both now completed: the window starting at 10:00 holds 2/2.
	second.Status = string(domain.StatusCompleted)

	_, err = uc.Execute(ctx, CreateBookingInput{
		UserID:     "user-3",
		SalonID:    salonID,
		Date:       at(10, 0),
		ServiceIDs: []string{haircutID},
	})
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, domain.CodeNoAvailableStaff))
}

func TestCreateBookingStorageFailurePropagates(t *testing.T) {
	uc, repo := setup(1)
	repo.countErr = errors.New("connection reset")

	_, err := uc.Execute(context.Background(), CreateBookingInput{
		UserID:     userID,
		SalonID:    salonID,
		Date:       at(10, 0),
		ServiceIDs: []string{haircutID},
	})
	require.Error(t, err)

	// Not a business rejection: the handler must surface it opaquely.
	var be httperr.BusinessError
	assert.False(t, errors.As(err, &be))
	assert.Empty(t, repo.bookings)
}
