package response

type Response struct {
	OK      bool   `json:"ok"`
	Message string `json:"message,omitempty"`
}

func OK(msg string) Response {
	return Response{
		OK:      true,
		Message: msg,
	}
}

func Error(msg string) Response {
	return Response{
		OK:      false,
		Message: msg,
	}
}
