// Package validation schema-checks inbound write payloads before they reach
// a repository. Failures enumerate every violated field, not just the first.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError is one violated constraint.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// RequestError carries every violated constraint of one payload.
type RequestError struct {
	Fields []FieldError `json:"errors"`
}

func (e *RequestError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Field+": "+f.Message)
	}
	if len(msgs) == 0 {
		return "validation failed"
	}
	return strings.Join(msgs, "; ")
}

type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	return &Validator{v: validator.New(validator.WithRequiredStructEnabled())}
}

// Decode reads a JSON or form-encoded body into dst and validates it.
// A malformed body or a failing constraint yields a *RequestError.
func (val *Validator) Decode(r *http.Request, dst any) error {
	ct := r.Header.Get("Content-Type")
	if strings.HasPrefix(ct, "application/x-www-form-urlencoded") {
		if err := r.ParseForm(); err != nil {
			return &RequestError{Fields: []FieldError{{Field: "body", Message: "malformed form body"}}}
		}
		b, err := json.Marshal(formToMap(r.PostForm))
		if err != nil {
			return &RequestError{Fields: []FieldError{{Field: "body", Message: "malformed form body"}}}
		}
		if err := json.Unmarshal(b, dst); err != nil {
			return &RequestError{Fields: []FieldError{{Field: "body", Message: "malformed form body"}}}
		}
	} else {
		dec := json.NewDecoder(r.Body)
		if err := dec.Decode(dst); err != nil {
			return &RequestError{Fields: []FieldError{{Field: "body", Message: "malformed JSON body"}}}
		}
	}
	return val.Check(dst)
}

// Check validates an already-decoded payload.
func (val *Validator) Check(payload any) error {
	err := val.v.Struct(payload)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &RequestError{Fields: []FieldError{{Field: "body", Message: err.Error()}}}
	}
	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fieldName(fe), Message: message(fe)})
	}
	return &RequestError{Fields: out}
}

// fieldName lowercases the first rune so errors refer to the wire name.
func fieldName(fe validator.FieldError) string {
	f := fe.Field()
	if f == "" {
		return f
	}
	return strings.ToLower(f[:1]) + f[1:]
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "email":
		return "must be a valid email address"
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "datetime":
		return "must be a valid date"
	default:
		return "failed constraint " + fe.Tag()
	}
}

// formToMap coerces flat form values so numeric and boolean struct fields
// decode the same way they would from JSON.
func formToMap(form url.Values) map[string]any {
	m := make(map[string]any, len(form))
	for k, vs := range form {
		if len(vs) == 0 {
			continue
		}
		v := vs[0]
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			m[k] = n
			continue
		}
		if b, err := strconv.ParseBool(v); err == nil {
			m[k] = b
			continue
		}
		m[k] = v
	}
	return m
}
