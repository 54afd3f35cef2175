package httperr

import "errors"

// BusinessError carrega um código de domínio ("slot_taken",
// "invalid_phone", ...) que os handlers traduzem para HTTP.
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
