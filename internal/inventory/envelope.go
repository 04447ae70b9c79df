package inventory

// Envelope is the uniform result shape every tool returns. Success results
// never carry an error string; failure results carry no substantive data
// beyond the error string itself.
type Envelope struct {
	Success bool   `json:"success"`
	Action  string `json:"action,omitempty"`
	Error   string `json:"error,omitempty"`
}

func ok(action string) Envelope {
	return Envelope{Success: true, Action: action}
}
