package dto

// Payload is a decoded request body. JSON numbers arrive as json.Number.
type Payload map[string]any

// Lookup returns the raw value for key and whether it was present.
func (p Payload) Lookup(key string) (any, bool) {
	v, ok := p[key]
	return v, ok
}

type LoginResponse[T any] struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	User    T      `json:"user"`
}

type UpdateResponse[T any] struct {
	Message     string `json:"message"`
	UpdatedUser *T     `json:"updatedUser"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
