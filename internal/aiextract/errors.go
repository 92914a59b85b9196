package aiextract

import "fmt"

// ExtractError is a failed call to the extraction backend: transport
// failure, non-success status, empty body, or an unusable response. The
// caller decides whether to retry; this package never does.
type ExtractError struct {
	Status  int // HTTP status, 0 when the request never completed
	Message string
}

func (e *ExtractError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("extraction backend: status %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("extraction backend: %s", e.Message)
}
