package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"

	"github.com/hongminglow/accounts-be/internal/http/respond"
	"github.com/hongminglow/accounts-be/internal/models/dto"
)

const maxBodyBytes = 1 << 20

var errInvalidJSON = errors.New("invalid JSON payload")

// decodePayload reads the request body into a payload. JSON bodies keep
// numbers as json.Number; form bodies keep the first value of each field.
// Other content types yield an empty payload. On failure it writes the 400
// response itself and reports false.
func decodePayload(w http.ResponseWriter, r *http.Request) (dto.Payload, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "application/json":
		payload, err := decodeJSON(r.Body)
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				respond.Error(w, http.StatusRequestEntityTooLarge, "request entity too large")
				return nil, false
			}
			respond.Error(w, http.StatusBadRequest, errInvalidJSON.Error())
			return nil, false
		}
		return payload, true
	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			respond.Error(w, http.StatusBadRequest, "invalid form payload")
			return nil, false
		}
		payload := make(dto.Payload, len(r.PostForm))
		for key := range r.PostForm {
			payload[key] = r.PostForm.Get(key)
		}
		return payload, true
	default:
		return dto.Payload{}, true
	}
}

func decodeJSON(body io.Reader) (dto.Payload, error) {
	raw, err := io.ReadAll(body)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return dto.Payload{}, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, errInvalidJSON
	}

	switch t := v.(type) {
	case map[string]any:
		return dto.Payload(t), nil
	case []any:
		// arrays parse but carry no named fields
		return dto.Payload{}, nil
	default:
		return nil, errInvalidJSON
	}
}
