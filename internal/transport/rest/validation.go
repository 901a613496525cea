package rest

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// requiredFieldMsg resolves a validation failure to the API's fixed missing-
// field message for that field. Messages are per-DTO because the same field
// name reads differently across endpoints.
func requiredFieldMsg(err error, messages map[string]string) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		if msg, ok := messages[verrs[0].StructField()]; ok {
			return msg
		}
	}
	return "Invalid request"
}
