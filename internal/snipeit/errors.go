package snipeit

import "fmt"

// NotFoundError reports that the requested entity or sub-resource does not
// exist on the Snipe-IT server.
type NotFoundError struct {
	Resource string // API resource, e.g. "hardware" or "consumables"
	Message  string
}

func (e *NotFoundError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s does not exist", e.Resource)
}

// AuthenticationError reports that the API token was rejected.
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "API token rejected"
}

// ValidationError reports that the server rejected the request payload.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "payload rejected by server"
}

// Error is any other Snipe-IT level fault: network failure, rate limit,
// server fault, or missing configuration.
type Error struct {
	StatusCode int // zero when the request never reached the server
	Message    string
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
	}
	return e.Message
}
