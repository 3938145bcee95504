// Package responses provides shared HTTP response envelopes.
package responses

// ErrorResponse is the error body for all endpoints. Detail carries the
// client-safe message only; diagnostic traces stay in the server log.
type ErrorResponse struct {
	Code   string `json:"code,omitempty"`
	Detail string `json:"detail"`
}

// NewErrorResponse builds an error body.
func NewErrorResponse(code, detail string) ErrorResponse {
	return ErrorResponse{Code: code, Detail: detail}
}
