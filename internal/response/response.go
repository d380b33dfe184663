package response

// Response is the uniform result envelope returned by every operation.
// IsSuccess=true means Data carries a meaningful payload; IsSuccess=false
// means Data is the zero value and Message explains the failure.
type Response[T any] struct {
	Data      T      `json:"data"`
	IsSuccess bool   `json:"isSuccess"`
	Message   string `json:"message"`
}

// Ok builds a success envelope.
func Ok[T any](data T, message string) Response[T] {
	return Response[T]{Data: data, IsSuccess: true, Message: message}
}

// Fail builds a failure envelope with a zero-value payload.
func Fail[T any](message string) Response[T] {
	var zero T
	return Response[T]{Data: zero, IsSuccess: false, Message: message}
}
