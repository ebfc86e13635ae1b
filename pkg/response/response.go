package response

// Response represents a standard API response format
type Response struct {
	Status     string      `json:"status"`      // "success" or "error"
	StatusCode int         `json:"status_code"` // HTTP status code
	Data       interface{} `json:"data,omitempty"`
	Error      string      `json:"error,omitempty"`
}

// ListResponse wraps list payloads together with the total row count so
// paginated endpoints report totals uniformly.
type ListResponse struct {
	Items interface{} `json:"items"`
	Total int64       `json:"total"`
}

// Success returns a standard success response wrapping the data
func Success(statusCode int, data interface{}) Response {
	return Response{
		Status:     "success",
		StatusCode: statusCode,
		Data:       data,
	}
}

// List returns a success response wrapping a list payload with its total count
func List(statusCode int, items interface{}, total int64) Response {
	return Success(statusCode, ListResponse{Items: items, Total: total})
}

// Error returns a standard error response wrapping the error message
func Error(statusCode int, err string) Response {
	return Response{
		Status:     "error",
		StatusCode: statusCode,
		Error:      err,
	}
}
