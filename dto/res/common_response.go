package res

type CommonResponse[T any] struct {
	Status     string `json:"status"`
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Data       T      `json:"data,omitempty"`
}

const (
	StatusSuccess = "SUCCESS"
	StatusFailed  = "FAILED"
)

func Success[T any](statusCode int, message string, data T) CommonResponse[T] {
	return CommonResponse[T]{
		Status:     StatusSuccess,
		StatusCode: statusCode,
		Message:    message,
		Data:       data,
	}
}
