package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	analyticsdomain "github.com/featureblastlabs/featureblast/internal/analytics/domain"
	announcementdomain "github.com/featureblastlabs/featureblast/internal/announcement/domain"
	authdomain "github.com/featureblastlabs/featureblast/internal/auth/domain"
	embeddomain "github.com/featureblastlabs/featureblast/internal/embed/domain"
	featuredomain "github.com/featureblastlabs/featureblast/internal/feature/domain"
	impressiondomain "github.com/featureblastlabs/featureblast/internal/impression/domain"
	"github.com/featureblastlabs/featureblast/internal/providers/ai"
	settingsdomain "github.com/featureblastlabs/featureblast/internal/settings/domain"
	teamdomain "github.com/featureblastlabs/featureblast/internal/team/domain"
)

type ValidationError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

func (v ValidationErrors) Error() string {
	return "validation error"
}

type errorPayload struct {
	Type    string            `json:"type"`
	Message string            `json:"message"`
	Errors  []ValidationError `json:"errors,omitempty"`
}

type errorResponse struct {
	Error errorPayload `json:"error"`
}

var (
	ErrUnauthorized    = errors.New("unauthorized")
	ErrForbidden       = errors.New("forbidden")
	ErrConflict        = errors.New("conflict")
	ErrInternal        = errors.New("internal_error")
	ErrNotFound        = errors.New("not_found")
	ErrInvalidRequest  = errors.New("invalid_request")
	ErrTooManyRequests = errors.New("too_many_requests")
)

func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, payload := mapError(lastErr.Err)
		c.Header("Content-Type", "application/json")
		c.AbortWithStatusJSON(status, errorResponse{Error: payload})
	}
}

func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func invalidRequestError() error {
	return newValidationError("request", "invalid_request", "invalid request")
}

func newValidationError(field, code, message string) error {
	return &ValidationErrors{
		Errors: []ValidationError{
			{
				Field:   field,
				Code:    code,
				Message: message,
			},
		},
	}
}

func mapError(err error) (int, errorPayload) {
	if err == nil {
		return http.StatusInternalServerError, errorPayload{
			Type:    "internal_error",
			Message: "internal server error",
		}
	}

	if vErr := asValidationErrors(err); vErr != nil {
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: "validation error",
			Errors:  vErr.Errors,
		}
	}

	if isValidationError(err) {
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: "validation error",
			Errors: []ValidationError{
				{
					Field:   validationErrorField(err),
					Code:    validationErrorCode(err),
					Message: err.Error(),
				},
			},
		}
	}

	switch {
	case errors.Is(err, ErrUnauthorized),
		errors.Is(err, authdomain.ErrInvalidCredentials),
		errors.Is(err, authdomain.ErrSessionNotFound),
		errors.Is(err, authdomain.ErrSessionExpired):
		return http.StatusUnauthorized, errorPayload{
			Type:    "unauthorized",
			Message: "unauthorized",
		}
	case errors.Is(err, ErrForbidden),
		errors.Is(err, impressiondomain.ErrFeatureUnauthorized):
		return http.StatusForbidden, errorPayload{
			Type:    "forbidden",
			Message: "invalid feature or unauthorized",
		}
	case errors.Is(err, featuredomain.ErrQuotaExceeded):
		return http.StatusForbidden, errorPayload{
			Type:    "quota_exceeded",
			Message: featuredomain.ErrQuotaExceeded.Error(),
		}
	case errors.Is(err, ErrConflict),
		errors.Is(err, authdomain.ErrEmailTaken),
		errors.Is(err, authdomain.ErrUsernameTaken),
		errors.Is(err, teamdomain.ErrAlreadyInvited):
		return http.StatusConflict, errorPayload{
			Type:    "conflict",
			Message: err.Error(),
		}
	case errors.Is(err, ErrTooManyRequests),
		errors.Is(err, ai.ErrRateLimited):
		return http.StatusTooManyRequests, errorPayload{
			Type:    "too_many_requests",
			Message: "too many requests",
		}
	case isNotFoundError(err):
		return http.StatusNotFound, errorPayload{
			Type:    "not_found",
			Message: "not found",
		}
	default:
		return http.StatusInternalServerError, errorPayload{
			Type:    "internal_error",
			Message: "internal server error",
		}
	}
}

func asValidationErrors(err error) *ValidationErrors {
	var vErr *ValidationErrors
	if errors.As(err, &vErr) && vErr != nil {
		return vErr
	}
	return nil
}

func isValidationError(err error) bool {
	switch {
	case errors.Is(err, ErrInvalidRequest),
		errors.Is(err, authdomain.ErrWeakPassword),
		errors.Is(err, featuredomain.ErrTitleRequired),
		errors.Is(err, featuredomain.ErrTitleTooLong),
		errors.Is(err, featuredomain.ErrDescriptionMissing),
		errors.Is(err, featuredomain.ErrDescriptionTooLong),
		errors.Is(err, featuredomain.ErrInvalidFeatureType),
		errors.Is(err, featuredomain.ErrInvalidPageToken),
		errors.Is(err, settingsdomain.ErrInvalidColor),
		errors.Is(err, settingsdomain.ErrInvalidPlan),
		errors.Is(err, teamdomain.ErrEmailRequired),
		errors.Is(err, teamdomain.ErrInvalidEmail),
		errors.Is(err, teamdomain.ErrInvalidRole),
		errors.Is(err, announcementdomain.ErrMissingInput),
		errors.Is(err, impressiondomain.ErrMissingFields),
		errors.Is(err, impressiondomain.ErrInvalidType),
		errors.Is(err, analyticsdomain.ErrInvalidWindow),
		errors.Is(err, embeddomain.ErrMissingUID):
		return true
	default:
		return false
	}
}

func isNotFoundError(err error) bool {
	switch {
	case errors.Is(err, ErrNotFound),
		errors.Is(err, featuredomain.ErrFeatureNotFound),
		errors.Is(err, teamdomain.ErrMemberNotFound),
		errors.Is(err, authdomain.ErrUserNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return true
	default:
		return false
	}
}

func validationErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrInvalidRequest):
		return "invalid_request"
	case errors.Is(err, featuredomain.ErrTitleRequired),
		errors.Is(err, featuredomain.ErrTitleTooLong):
		return "invalid_title"
	case errors.Is(err, featuredomain.ErrDescriptionMissing),
		errors.Is(err, featuredomain.ErrDescriptionTooLong):
		return "invalid_description"
	case errors.Is(err, featuredomain.ErrInvalidFeatureType):
		return "invalid_feature_type"
	case errors.Is(err, featuredomain.ErrInvalidPageToken):
		return "invalid_page_token"
	case errors.Is(err, settingsdomain.ErrInvalidColor):
		return "invalid_primary_color"
	case errors.Is(err, settingsdomain.ErrInvalidPlan):
		return "invalid_plan"
	case errors.Is(err, teamdomain.ErrEmailRequired),
		errors.Is(err, teamdomain.ErrInvalidEmail):
		return "invalid_email"
	case errors.Is(err, teamdomain.ErrInvalidRole):
		return "invalid_role"
	case errors.Is(err, impressiondomain.ErrMissingFields):
		return "missing_fields"
	case errors.Is(err, impressiondomain.ErrInvalidType):
		return "invalid_type"
	case errors.Is(err, analyticsdomain.ErrInvalidWindow):
		return "invalid_days"
	case errors.Is(err, embeddomain.ErrMissingUID):
		return "missing_uid"
	case errors.Is(err, authdomain.ErrWeakPassword):
		return "invalid_password"
	case errors.Is(err, announcementdomain.ErrMissingInput):
		return "invalid_request"
	default:
		return "invalid_request"
	}
}

func validationErrorField(err error) string {
	code := validationErrorCode(err)
	if code == "invalid_request" || code == "missing_fields" {
		return "request"
	}
	field := strings.TrimPrefix(code, "invalid_")
	return strings.TrimPrefix(field, "missing_")
}
