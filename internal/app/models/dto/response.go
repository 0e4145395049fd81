package dto

// APIResponse is the uniform envelope returned by every endpoint:
// lists carry count+data, detail endpoints carry data, deletions carry a
// message, failures carry success=false with message and optional detail.
type APIResponse struct {
	Success bool         `json:"success"`
	Count   *int         `json:"count,omitempty"`
	Data    interface{}  `json:"data,omitempty"`
	Message string       `json:"message,omitempty"`
	Error   *ErrorDetail `json:"error,omitempty"`
}

// NewSuccessResponse wraps a single record.
func NewSuccessResponse(data interface{}) APIResponse {
	return APIResponse{Success: true, Data: data}
}

// NewListResponse wraps a result set with its count.
func NewListResponse(count int, data interface{}) APIResponse {
	return APIResponse{Success: true, Count: &count, Data: data}
}

// NewMessageResponse wraps an operation acknowledged only by a message.
func NewMessageResponse(message string) APIResponse {
	return APIResponse{Success: true, Message: message}
}
