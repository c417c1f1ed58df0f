package handler

import (
	"encoding/json"

	"github.com/labstack/echo/v4"
)

// payload is a decoded JSON object body. A missing, malformed or non-object
// body decodes to an empty payload so every field reads as absent.
type payload map[string]any

func readPayload(c echo.Context) payload {
	req := c.Request()
	if req.Body == nil {
		return payload{}
	}
	var body payload
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil || body == nil {
		return payload{}
	}
	return body
}

// field returns nil when key is absent. A present non-string value reads as
// the empty string.
func (p payload) field(key string) *string {
	v, ok := p[key]
	if !ok {
		return nil
	}
	s, _ := v.(string)
	return &s
}
