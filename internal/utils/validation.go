package utils

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// RespondValidationError renders a binding error in the standard 422
// shape: {"message": ..., "errors": {"field": ["msg", ...]}}.
func RespondValidationError(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusUnprocessableEntity, gin.H{
		"message": "The given data was invalid.",
		"errors":  FormatValidationErrors(err),
	})
}

// FieldError adds a single field error in the same 422 shape, for checks
// that happen after binding (e.g. referenced record does not exist).
func FieldError(ctx *gin.Context, field, message string) {
	ctx.JSON(http.StatusUnprocessableEntity, gin.H{
		"message": "The given data was invalid.",
		"errors":  map[string][]string{field: {message}},
	})
}

func FormatValidationErrors(err error) map[string][]string {
	fieldErrors := make(map[string][]string)

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		fieldErrors["body"] = []string{"Request body could not be parsed."}
		return fieldErrors
	}

	for _, fe := range verrs {
		field := toSnakeCase(fe.Field())
		fieldErrors[field] = append(fieldErrors[field], messageFor(fe))
	}

	return fieldErrors
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Must be a valid email address."
	case "url":
		return "Must be a valid URL."
	case "oneof":
		return "Must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ") + "."
	case "min":
		return fmt.Sprintf("Must be at least %s characters.", fe.Param())
	case "max":
		return fmt.Sprintf("May not be greater than %s characters.", fe.Param())
	case "gte":
		return fmt.Sprintf("Must be at least %s.", fe.Param())
	case "datetime":
		return "Must be a valid date in the format " + fe.Param() + "."
	default:
		return "Invalid value."
	}
}

// toSnakeCase maps struct field names to their JSON form, keeping
// acronyms intact (ResumeURL -> resume_url, CompanyID -> company_id).
func toSnakeCase(s string) string {
	runes := []rune(s)

	var b strings.Builder

	for i, r := range runes {
		if unicode.IsUpper(r) {
			prevLower := i > 0 && !unicode.IsUpper(runes[i-1])
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if i > 0 && (prevLower || nextLower) {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}

	return b.String()
}
