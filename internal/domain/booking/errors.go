package booking

import "github.com/zaidJawa/salon/internal/httperr"

// Admission rejection codes. Each maps to a 4xx response; anything else
// coming out of the engine is a storage failure and surfaces as a 500.
const (
	CodeServicesRequired    = "services_required"
	CodeSalonNotFound       = "salon_not_found"
	CodeOutsideWorkingHours = "outside_working_hours"
	CodeNoAvailableStaff    = "no_available_staff"
	CodeInvalidServices     = "invalid_services"
)

func ErrServicesRequired() error {
	return httperr.ErrBusiness(CodeServicesRequired)
}

func ErrSalonNotFound() error {
	return httperr.ErrBusiness(CodeSalonNotFound)
}

func ErrOutsideWorkingHours() error {
	return httperr.ErrBusiness(CodeOutsideWorkingHours)
}

func ErrNoAvailableStaff() error {
	return httperr.ErrBusiness(CodeNoAvailableStaff)
}

// ErrInvalidServices names exactly the service ids the salon does not offer.
func ErrInvalidServices(serviceIDs []string) error {
	return httperr.ErrBusinessMeta(CodeInvalidServices, serviceIDs)
}
