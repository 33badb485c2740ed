package dto

// PingResponse is the response body for GET /ping.
type PingResponse struct {
	Message *string `json:"message,omitempty"`
}
