package api

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validationErrorResponse is the body of a 400 caused by invalid fields.
type validationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// normalizer is implemented by requests that tidy their fields before
// validation.
type normalizer interface {
	normalize()
}

// decodeAndValidate decodes the body into req and validates it. On failure it
// writes the 400 response itself and returns false.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, req any) bool {
	if err := decodeJSON(w, r, req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	if n, ok := req.(normalizer); ok {
		n.normalize()
	}
	if err := validate.Struct(req); err != nil {
		jsonResponse(w, http.StatusBadRequest, validationErrorResponse{
			Error:  "validation failed",
			Fields: formatValidationError(err),
		})
		return false
	}
	return true
}

// formatValidationError turns validator errors into a field → message map
// without leaking Go struct names.
func formatValidationError(err error) map[string]string {
	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "invalid request"
		return errs
	}

	for _, e := range validationErrors {
		field := e.Field()
		switch e.Tag() {
		case "required":
			errs[field] = "this field is required"
		case "max":
			errs[field] = fmt.Sprintf("must be at most %s characters", e.Param())
		case "oneof":
			errs[field] = fmt.Sprintf("must be one of: %s", e.Param())
		default:
			errs[field] = "invalid value"
		}
	}
	return errs
}
