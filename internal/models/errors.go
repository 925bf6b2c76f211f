package models

import "fmt"

// NoSuchCityError is returned when the location search has no airport for a city
type NoSuchCityError struct {
	City string
}

func (e *NoSuchCityError) Error() string {
	return fmt.Sprintf("%s city not found", e.City)
}

func NewNoSuchCityError(city string) *NoSuchCityError {
	return &NoSuchCityError{City: city}
}

// APIError represents a non-successful reply from a remote travel API
type APIError struct {
	Service    string
	StatusCode int
	Message    string
	Err        error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s API error (status %d): %s: %v", e.Service, e.StatusCode, e.Message, e.Err)
	}
	return fmt.Sprintf("%s API error (status %d): %s", e.Service, e.StatusCode, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// NewAPIError creates a new remote API error
func NewAPIError(service string, statusCode int, message string, err error) *APIError {
	return &APIError{
		Service:    service,
		StatusCode: statusCode,
		Message:    message,
		Err:        err,
	}
}
