package httperr

import "errors"

// BusinessError porte un code métier stable (staff_not_skilled,
// invalid_status_transition, ...) que les handlers traduisent en réponse
// HTTP localisée.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}
