package serverutils

// ResponseEnvelope is the uniform JSON body returned by every endpoint.
type ResponseEnvelope[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    T      `json:"data,omitempty"`
	Code    int    `json:"code,omitempty"`
}

func SuccessResponse[T any](message string, data T) ResponseEnvelope[T] {
	return ResponseEnvelope[T]{
		Success: true,
		Message: message,
		Data:    data,
	}
}

func ErrorResponse(code int, message string) ResponseEnvelope[any] {
	return ResponseEnvelope[any]{
		Success: false,
		Message: message,
		Code:    code,
	}
}
