package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	domainerrors "laundrylink.backend/internal/domain/errors"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Error sends an error response. Sentinel domain errors map to their HTTP
// status; anything unrecognized becomes a 500.
func Error(c *gin.Context, err error) {
	var appErr *domainerrors.AppError
	if !errors.As(err, &appErr) {
		appErr = fromSentinel(err)
	}

	c.JSON(appErr.Code, gin.H{
		"code":    appErr.Code,
		"message": appErr.Message,
		"error":   appErr.Message, // Backward compatibility
	})
}

// ErrorWithStatus sends an error response with a specific status and message
func ErrorWithStatus(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"code":    status,
		"message": message,
	})
}

func fromSentinel(err error) *domainerrors.AppError {
	switch {
	case errors.Is(err, domainerrors.ErrNotFound):
		return domainerrors.NotFound(err.Error())
	case errors.Is(err, domainerrors.ErrInvalidCredentials):
		return domainerrors.Unauthorized("invalid credentials")
	case errors.Is(err, domainerrors.ErrTokenExpired):
		return domainerrors.Unauthorized("token expired")
	case errors.Is(err, domainerrors.ErrUnauthorized):
		return domainerrors.Unauthorized(err.Error())
	case errors.Is(err, domainerrors.ErrForbidden):
		return domainerrors.Forbidden(err.Error())
	case errors.Is(err, domainerrors.ErrAlreadyExists):
		return domainerrors.Conflict(err.Error())
	case errors.Is(err, domainerrors.ErrOutOfStock):
		return domainerrors.Conflict(err.Error())
	case errors.Is(err, domainerrors.ErrInvalidInput),
		errors.Is(err, domainerrors.ErrBadRequest),
		errors.Is(err, domainerrors.ErrMerchantNotActive),
		errors.Is(err, domainerrors.ErrDraftStateInvalid),
		errors.Is(err, domainerrors.ErrMerchantNotChosen),
		errors.Is(err, domainerrors.ErrOrderNotCancelable),
		errors.Is(err, domainerrors.ErrQuoteExpired):
		return domainerrors.BadRequest(err.Error())
	default:
		return domainerrors.NewAppError(http.StatusInternalServerError, "internal server error", err)
	}
}
