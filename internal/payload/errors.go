package payload

import "fmt"

// APIError is returned for every non-2xx response of the content API
type APIError struct {
	StatusCode int
	Status     string
	Endpoint   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("payload API error: %d %s on '%s'", e.StatusCode, e.Status, e.Endpoint)
}
