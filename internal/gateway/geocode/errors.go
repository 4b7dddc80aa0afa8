package geocode

import "errors"

var (
	// ErrAddressNotFound геокодер не нашел ни одного кандидата по адресу.
	ErrAddressNotFound = errors.New("address not found")
	// ErrUnavailable геокодер недоступен или вернул 5xx/429.
	ErrUnavailable = errors.New("geocoder unavailable")
)
