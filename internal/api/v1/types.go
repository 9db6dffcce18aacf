package v1

// errorResponse is the body of every non-2xx response.
type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    string `json:"code"`
}

// messageResponse acknowledges a write.
type messageResponse struct {
	Message string `json:"message"`
}

// healthResponse is the response for GET /health.
type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}
