package api

import (
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// Query holds query parameters for one call, keyed by wire name.
//
// Encoding rules:
//   - nil values, nil pointers, empty strings, empty slices and zero scalars
//     are omitted entirely
//   - slices are joined into a single comma-separated value, never repeated keys
//   - pointers are dereferenced and sent even when they point at a zero value
//   - time.Time is formatted as RFC 3339 in UTC
type Query map[string]any

// Encode returns the URL-encoded query string with keys sorted.
func (q Query) Encode() string {
	if len(q) == 0 {
		return ""
	}
	values := url.Values{}
	for key, v := range q {
		if s, ok := formatValue(v, true); ok {
			values.Set(key, s)
		}
	}
	return values.Encode()
}

func formatValue(v any, omitZero bool) (string, bool) {
	if v == nil {
		return "", false
	}

	switch t := v.(type) {
	case time.Time:
		if t.IsZero() {
			return "", false
		}
		return t.UTC().Format(time.RFC3339), true
	case fmt.Stringer:
		s := t.String()
		return s, s != ""
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() {
			return "", false
		}
		return formatValue(rv.Elem().Interface(), false)
	case reflect.Slice, reflect.Array:
		parts := make([]string, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			if s, ok := formatValue(rv.Index(i).Interface(), false); ok {
				parts = append(parts, s)
			}
		}
		if len(parts) == 0 {
			return "", false
		}
		return strings.Join(parts, ","), true
	case reflect.String:
		s := rv.String()
		return s, s != ""
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if omitZero && rv.Int() == 0 {
			return "", false
		}
		return strconv.FormatInt(rv.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if omitZero && rv.Uint() == 0 {
			return "", false
		}
		return strconv.FormatUint(rv.Uint(), 10), true
	case reflect.Float32, reflect.Float64:
		if omitZero && rv.Float() == 0 {
			return "", false
		}
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64), true
	case reflect.Bool:
		if omitZero && !rv.Bool() {
			return "", false
		}
		return strconv.FormatBool(rv.Bool()), true
	}
	return fmt.Sprint(v), true
}
