package httperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsBusiness(t *testing.T) {
	err := ErrBusiness("time_conflict")

	assert.True(t, IsBusiness(err, "time_conflict"))
	assert.False(t, IsBusiness(err, "other_code"))
	assert.False(t, IsBusiness(errors.New("time_conflict"), "time_conflict"))
}

func TestIsBusinessWrapped(t *testing.T) {
	err := fmt.Errorf("create booking: %w", ErrBusiness("no_available_staff"))
	assert.True(t, IsBusiness(err, "no_available_staff"))
}

func TestBusinessMeta(t *testing.T) {
	err := ErrBusinessMeta("invalid_services", []string{"svc-1", "svc-2"})

	assert.True(t, IsBusiness(err, "invalid_services"))
	assert.Equal(t, []string{"svc-1", "svc-2"}, BusinessMeta(err))

	assert.Nil(t, BusinessMeta(ErrBusiness("invalid_services")))
	assert.Nil(t, BusinessMeta(errors.New("boom")))
}
