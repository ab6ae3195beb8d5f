package res

type ErrorResponse struct {
	Status     string `json:"status"`
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
}

func Failed(statusCode int, message string) ErrorResponse {
	return ErrorResponse{
		Status:     StatusFailed,
		StatusCode: statusCode,
		Message:    message,
	}
}
