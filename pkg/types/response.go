package types

// ErrorEnvelope is the wire shape for every error response: a single
// human-readable string under the "error" key.
type ErrorEnvelope struct {
	Error string `json:"error"`
}

// MessageEnvelope is the wire shape for mutation confirmations.
type MessageEnvelope struct {
	Message string `json:"message"`
}
