package dto

// SuccessResponse wraps a successful mutation's payload
type SuccessResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
}

// NewSuccessResponse creates a success envelope around data
func NewSuccessResponse(data interface{}) *SuccessResponse {
	return &SuccessResponse{Success: true, Data: data}
}
