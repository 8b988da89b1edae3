package httperr

import (
	"errors"
	"net/http"

	"hotel-admin/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// AbortUnauthorized adds the bearer challenge every 401 must carry.
func AbortUnauthorized(c *gin.Context, err error, msg string) {
	c.Header("WWW-Authenticate", "Bearer")
	AbortWithError(c, http.StatusUnauthorized, err, msg, nil)
}

// AbortValidation reports a request that failed binding or input checks.
// Field-level failures from the validator are listed in detail.
func AbortValidation(c *gin.Context, err error) {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		fields := make([]FieldError, len(ve))
		for i, fe := range ve {
			fields[i] = FieldError{Field: fe.Field(), Rule: fe.Tag()}
		}
		AbortWithError(c, http.StatusUnprocessableEntity, err, "Validation failed", fields)
		return
	}
	AbortWithError(c, http.StatusUnprocessableEntity, err, "Validation failed", err.Error())
}

// Handle maps a usecase error onto the HTTP error taxonomy.
func Handle(c *gin.Context, err error) {
	switch {
	case errs.Is(err, errs.ErrHotelNotFound):
		AbortWithError(c, http.StatusNotFound, err, "Hotel not found", nil)
	case errs.Is(err, errs.ErrRoomTypeNotFound):
		AbortWithError(c, http.StatusNotFound, err, "Room Type not found", nil)
	case errs.Is(err, errs.ErrRateAdjustmentNotFound):
		AbortWithError(c, http.StatusNotFound, err, "Rate Adjustment not found", nil)
	case errs.Is(err, errs.ErrUserNotFound):
		AbortWithError(c, http.StatusNotFound, err, "User not found", nil)
	case errs.Is(err, errs.ErrDuplicateHotelName):
		AbortWithError(c, http.StatusBadRequest, err, "Hotel name already registered", nil)
	case errs.Is(err, errs.ErrDuplicateUsername):
		AbortWithError(c, http.StatusBadRequest, err, "Username already registered", nil)
	case errs.Is(err, errs.ErrHotelInUse):
		AbortWithError(c, http.StatusBadRequest, err, "Hotel still has room types", nil)
	case errs.Is(err, errs.ErrDomainValidation):
		AbortWithError(c, http.StatusUnprocessableEntity, err, "Validation failed", rootMessage(err))
	case errs.Is(err, errs.ErrInvalidCredentials):
		AbortUnauthorized(c, err, "Incorrect username or password")
	case errs.Is(err, errs.ErrUnauthorized):
		AbortUnauthorized(c, err, "Could not validate credentials")
	default:
		AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

// rootMessage strips wrapping context so clients see only the domain rule.
func rootMessage(err error) string {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err.Error()
		}
		err = next
	}
}
