package handler

// response is the success envelope shared by all routes.
type response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func ok(message string, data any) response {
	return response{Success: true, Message: message, Data: data}
}
