package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"tour_ops/internal/domain"
	"tour_ops/internal/validation"
)

func writeText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write([]byte(body)); err != nil {
		log.Error().Err(err).Msg("write text response failed")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

func writeSuccess(w http.ResponseWriter) {
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

type validationReply struct {
	Success bool                    `json:"success"`
	Message string                  `json:"message"`
	Errors  []validation.FieldError `json:"errors"`
}

func writeValidation(w http.ResponseWriter, err error) {
	var re *validation.RequestError
	if !errors.As(err, &re) {
		re = &validation.RequestError{Fields: []validation.FieldError{{Field: "body", Message: err.Error()}}}
	}
	writeJSON(w, http.StatusBadRequest, validationReply{Message: "Validation failed", Errors: re.Fields})
}

// writeStoreErr maps a read failure: unknown row is 404, everything else is
// an opaque 500. Raw storage errors never reach the body.
func writeStoreErr(w http.ResponseWriter, err error) {
	if errors.Is(err, domain.ErrNotFound) {
		writeText(w, http.StatusNotFound, "Not found")
		return
	}
	log.Error().Err(err).Msg("storage failure")
	writeText(w, http.StatusInternalServerError, "Internal server error")
}

// ValidateBody decodes and schema-checks the request body before the gate
// and handler run, replying 400 with every violated field on failure.
func ValidateBody[T any](val *validation.Validator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p := new(T)
			if err := val.Decode(r, p); err != nil {
				writeValidation(w, err)
				return
			}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), payloadKey, p)))
		})
	}
}

func payload[T any](r *http.Request) *T {
	p, _ := r.Context().Value(payloadKey).(*T)
	return p
}
