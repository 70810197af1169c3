package http

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"stockguard/internal/inventory"
	"stockguard/pkg/response"
)

// respondError translates domain errors into HTTP responses. Anything not
// recognized is a storage fault and surfaces as a generic 500.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, inventory.ErrItemNotFound):
		response.NotFound(c, "Item not found")
	default:
		response.InternalError(c)
	}
}

// bindingDetails turns a bind error into field-level messages for the 422
// body. Missing required fields and type mismatches are the two expected
// shapes; everything else reports the request format as invalid.
func bindingDetails(err error) []string {
	var vErrs validator.ValidationErrors
	if errors.As(err, &vErrs) {
		details := make([]string, 0, len(vErrs))
		for _, fe := range vErrs {
			field := strings.ToLower(fe.Field())
			if fe.Tag() == "required" {
				details = append(details, field+" is required")
				continue
			}
			details = append(details, field+" is invalid")
		}
		return details
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return []string{typeErr.Field + " must be of type " + typeErr.Type.String()}
	}

	return []string{"invalid request body"}
}
