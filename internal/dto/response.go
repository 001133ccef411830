package dto

// APIResponse is the uniform envelope returned by every endpoint
type APIResponse struct {
	StatusCode    int      `json:"statusCode"`       // HTTP status carried in the body
	IsSuccess     bool     `json:"isSuccess"`        // Success flag
	ErrorMessages []string `json:"errorMessages"`    // Error messages, empty on success
	Result        any      `json:"result,omitempty"` // Payload, omitted when absent
}

// Pagination is serialized into the X-Pagination response header on list endpoints
type Pagination struct {
	PageNumber int `json:"pageNumber"` // Requested page number
	PageSize   int `json:"pageSize"`   // Requested page size, 0 means no paging
}

// OK builds a success envelope with the given status and payload
func OK(statusCode int, result any) APIResponse {
	return APIResponse{
		StatusCode:    statusCode, // HTTP status
		IsSuccess:     true,       // Success flag set
		ErrorMessages: []string{}, // No errors
		Result:        result,     // Payload
	}
}

// Error builds a failure envelope with the given status and messages
func Error(statusCode int, messages ...string) APIResponse {
	if messages == nil {
		messages = []string{} // Keep the error list non-null on the wire
	}
	return APIResponse{
		StatusCode:    statusCode, // HTTP status
		IsSuccess:     false,      // Success flag cleared
		ErrorMessages: messages,   // Error messages
	}
}
