package client

import "fmt"

// noResponseBody replaces the body text in a StatusError when the response
// body was empty or unreadable.
const noResponseBody = "<no response body>"

// StatusError is returned when the catalog API answers with a non-2xx status.
type StatusError struct {
	Prefix     string
	URL        string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: GET %s returned status %d: %s", e.Prefix, e.URL, e.StatusCode, e.Body)
}
