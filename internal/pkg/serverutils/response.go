// FILE: internal/pkg/serverutils/response.go
package serverutils

type Response[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    T      `json:"data,omitempty"`
}

type ErrResponse struct {
	Success bool        `json:"success"`
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Detail  interface{} `json:"detail,omitempty"`
}

func SuccessResponse[T any](message string, data T) Response[T] {
	return Response[T]{
		Success: true,
		Message: message,
		Data:    data,
	}
}

func ErrorResponse(code int, message string) ErrResponse {
	return ErrResponse{
		Success: false,
		Code:    code,
		Message: message,
	}
}

func ErrorResponseWithDetail(code int, message string, detail interface{}) ErrResponse {
	return ErrResponse{
		Success: false,
		Code:    code,
		Message: message,
		Detail:  detail,
	}
}
