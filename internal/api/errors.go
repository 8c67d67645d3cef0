package api

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/mailrify/mailrify-go/internal/apierrors"
)

const maxErrorBodySize = 64 << 10

// errorBody accepts both the flat {"message","code"} shape and the nested
// {"error":{"message","code"}} shape.
type errorBody struct {
	Message string          `json:"message"`
	Code    json.RawMessage `json:"code"`
	Error   json.RawMessage `json:"error"`
}

func parseErrorResponse(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))

	message, code := extractErrorFields(body)
	if message == "" {
		message = http.StatusText(resp.StatusCode)
	}
	if message == "" {
		message = "request failed"
	}

	return &apierrors.APIError{
		StatusCode: resp.StatusCode,
		Message:    message,
		Code:       code,
	}
}

func extractErrorFields(body []byte) (message, code string) {
	var eb errorBody
	if len(body) == 0 || json.Unmarshal(body, &eb) != nil {
		return "", ""
	}
	message = eb.Message
	code = rawToString(eb.Code)

	if len(eb.Error) > 0 {
		var nested struct {
			Message string          `json:"message"`
			Code    json.RawMessage `json:"code"`
		}
		if json.Unmarshal(eb.Error, &nested) == nil {
			if message == "" {
				message = nested.Message
			}
			if code == "" {
				code = rawToString(nested.Code)
			}
		} else if message == "" {
			var s string
			if json.Unmarshal(eb.Error, &s) == nil {
				message = s
			}
		}
	}
	return message, code
}

// rawToString accepts a JSON string or number.
func rawToString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if json.Unmarshal(raw, &s) == nil {
		return s
	}
	var n json.Number
	if json.Unmarshal(raw, &n) == nil {
		return n.String()
	}
	return ""
}
