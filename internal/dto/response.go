package dto

// Response is the envelope every endpoint returns:
// { success, message?, data?, count? }.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Count   *int   `json:"count,omitempty"`
}

// OK wraps data in a successful envelope.
func OK(data any) Response {
	return Response{Success: true, Data: data}
}

// OKMessage wraps data with a human-readable message.
func OKMessage(message string, data any) Response {
	return Response{Success: true, Message: message, Data: data}
}

// OKList wraps a list payload together with its element count.
func OKList(data any, count int) Response {
	return Response{Success: true, Data: data, Count: &count}
}

// Fail builds the failure envelope with a human-readable message.
func Fail(message string) Response {
	return Response{Success: false, Message: message}
}
