package mailrify

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Ptr returns a pointer to v. It is meant for the optional fields of update
// requests, where a nil pointer means "leave unchanged".
func Ptr[T any](v T) *T {
	return &v
}

// RequestFromMap builds a typed request model from a plain map keyed by wire
// names, e.g. {"to": [...], "from": "...", "subject": "..."}. Unknown keys
// and values of the wrong type are rejected, and the result is validated, so
// a bad shape fails before any network call.
func RequestFromMap[T any](m map[string]any) (T, error) {
	var req T

	data, err := json.Marshal(m)
	if err != nil {
		return req, &ValidationError{Errors: []string{err.Error()}}
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		return req, &ValidationError{Errors: []string{err.Error()}}
	}

	if v, ok := any(&req).(interface{ Validate() error }); ok {
		if err := v.Validate(); err != nil {
			return req, err
		}
	}
	return req, nil
}

// violations collects validation failures for one request model.
type violations []string

func (v *violations) require(ok bool, format string, args ...any) {
	if !ok {
		*v = append(*v, fmt.Sprintf(format, args...))
	}
}

func (v *violations) requireString(field, value string) {
	v.require(strings.TrimSpace(value) != "", "%s is required", field)
}

func (v *violations) requireList(field string, values []string) {
	if len(values) == 0 {
		*v = append(*v, field+" must contain at least one address")
		return
	}
	for i, s := range values {
		v.require(strings.TrimSpace(s) != "", "%s[%d] must not be empty", field, i)
	}
}

func (v violations) err() error {
	if len(v) == 0 {
		return nil
	}
	return &ValidationError{Errors: v}
}

func requireID(field, id string) error {
	if strings.TrimSpace(id) == "" {
		return &ValidationError{Errors: []string{field + " is required"}}
	}
	return nil
}

func requireIntID(field string, id int) error {
	if id <= 0 {
		return &ValidationError{Errors: []string{field + " must be positive, got " + strconv.Itoa(id)}}
	}
	return nil
}
