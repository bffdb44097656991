package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	domainerrors "github.com/mikiasgoitom/Storefront/internal/domain/errors"
	"github.com/mikiasgoitom/Storefront/internal/handler/http/dto"
)

// ErrorHandler centralizes error handling for HTTP responses
func ErrorHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{Error: message})
}

// SuccessHandler centralizes success responses
func SuccessHandler(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// MessageHandler centralizes message responses
func MessageHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.MessageResponse{Message: message})
}

// DomainErrorHandler maps usecase errors to HTTP status codes.
func DomainErrorHandler(c *gin.Context, err error) {
	if ve, ok := domainerrors.IsValidationError(err); ok {
		details := make([]dto.ErrorDetail, 0, len(ve.Details))
		for _, d := range ve.Details {
			details = append(details, dto.ErrorDetail{Field: d.Field, Message: d.Message})
		}
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: ve.Message, Details: details})
		return
	}

	switch {
	case domainerrors.IsNotFound(err):
		ErrorHandler(c, http.StatusNotFound, err.Error())
	case domainerrors.IsConflict(err):
		ErrorHandler(c, http.StatusConflict, err.Error())
	case errors.Is(err, domainerrors.ErrUnauthorized):
		ErrorHandler(c, http.StatusUnauthorized, "Invalid credentials")
	default:
		_ = c.Error(err)
		ErrorHandler(c, http.StatusInternalServerError, "Internal server error")
	}
}

// BindAndValidate binds JSON request and validates it
func BindAndValidate(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindJSON(req); err != nil {
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return err
	}
	return nil
}

// currentUserID returns the authenticated user's id set by the auth middleware.
func currentUserID(c *gin.Context) (string, bool) {
	userID, exists := c.Get("userID")
	if !exists {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return "", false
	}
	userIDStr, ok := userID.(string)
	if !ok || userIDStr == "" {
		ErrorHandler(c, http.StatusBadRequest, "Invalid user ID format in token")
		return "", false
	}
	return userIDStr, true
}
