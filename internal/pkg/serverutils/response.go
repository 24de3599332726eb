package serverutils

// BaseResponse is the envelope used by admin endpoints that follow the
// success/message/data shape. The legacy list endpoints (questions,
// categories, ...) return bare arrays instead; those are built directly
// in their controllers.
type BaseResponse[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    T      `json:"data,omitempty"`
}

func SuccessResponse[T any](message string, data T) BaseResponse[T] {
	return BaseResponse[T]{
		Success: true,
		Message: message,
		Data:    data,
	}
}

func ErrorResponse(message string) BaseResponse[any] {
	return BaseResponse[any]{
		Success: false,
		Message: message,
	}
}
