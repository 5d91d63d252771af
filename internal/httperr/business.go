package httperr

import "errors"

type BusinessError struct {
	Code string
	Meta any
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

// ErrBusinessMeta carries a detail payload the handler can surface, e.g. the
// list of rejected service ids.
func ErrBusinessMeta(code string, meta any) error {
	return BusinessError{Code: code, Meta: meta}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func BusinessMeta(err error) any {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Meta
	}
	return nil
}
