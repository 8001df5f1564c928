package handler

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/mwirigi/salepoint-api/internal/presentation/http/dto/response"
	"github.com/mwirigi/salepoint-api/pkg/apperror"
)

// GetUserID extracts the user ID from the Gin context
func GetUserID(c *gin.Context) *uuid.UUID {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		return nil
	}
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return nil
	}
	return &userID
}

// bindJSON binds the request body and, on failure, writes a field-scoped
// validation response. Returns false when the request was already answered.
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			response.ValidationError(c, fieldErrors(validationErrs))
			return false
		}
		response.BadRequest(c, "Invalid request body")
		return false
	}
	return true
}

// fieldErrors converts validator errors into the API's field error shape.
func fieldErrors(errs validator.ValidationErrors) []apperror.FieldError {
	out := make([]apperror.FieldError, len(errs))
	for i, fe := range errs {
		out[i] = apperror.FieldError{
			Field:   strings.ToLower(fe.Field()),
			Message: validationMessage(fe),
		}
	}
	return out
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Must be a valid email address"
	case "min":
		return "Value is below the minimum of " + fe.Param()
	case "max":
		return "Value is above the maximum of " + fe.Param()
	case "oneof":
		return "Must be one of: " + fe.Param()
	}
	return "Invalid value"
}
