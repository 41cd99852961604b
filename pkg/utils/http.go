package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

func WriteJSON(w http.ResponseWriter, payload any, code int) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	return json.NewEncoder(w).Encode(payload)
}

// DecodeBody decodes a JSON body, rejecting unknown fields and trailing data.
func DecodeBody(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return err
	}
	if dec.More() {
		return errors.New("unexpected data after JSON body")
	}
	return nil
}

// ValidationErrorResponse contains field-specific validation messages
// swagger:model ValidationErrorResponse
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

func WriteValidationError(w http.ResponseWriter, err error) error {
	res := ValidationErrorResponse{
		Error:  "invalid request",
		Fields: make(map[string]string),
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			res.Fields[fieldName(fe)] = fe.Tag()
		}
	} else if err != nil {
		res.Fields["body"] = err.Error()
	}

	return WriteJSON(w, res, http.StatusBadRequest)
}

func fieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

// ErrorCause names a business rule violation clients translate into a
// specific message.
type ErrorCause struct {
	Code string `json:"code"`
}

// ErrorResponse describes a standard error response
// swagger:model ErrorResponse
type ErrorResponse struct {
	Error   string      `json:"error"`
	Details string      `json:"details,omitempty"`
	Cause   *ErrorCause `json:"cause,omitempty"`
}

func WriteError(w http.ResponseWriter, message string, code int) error {
	return WriteJSON(w, ErrorResponse{Error: message}, code)
}

func WriteErrorDetails(w http.ResponseWriter, message, details string, code int) error {
	return WriteJSON(w, ErrorResponse{Error: message, Details: details}, code)
}

func WriteErrorCause(w http.ResponseWriter, message, cause string, code int) error {
	return WriteJSON(w, ErrorResponse{Error: message, Cause: &ErrorCause{Code: cause}}, code)
}
